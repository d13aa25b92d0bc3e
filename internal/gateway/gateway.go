package gateway

import (
	"log"
	"net/http/httputil"
	"net/url"

	"github.com/labstack/echo/v4"
)

type Gateway struct {
	server *echo.Echo
}

func NewGateway(catalogURL, userURL, adminURL string) *Gateway {
	gw := &Gateway{
		server: echo.New(),
	}
	gw.initRoutes(catalogURL, userURL, adminURL)
	return gw
}

func (g *Gateway) initRoutes(catalogURL, userURL, adminURL string) {
	g.server.Any("/catalog/*", g.proxyToService(catalogURL))
	g.server.Any("/users/*", g.proxyToService(userURL))
	g.server.Any("/admin/*", g.proxyToService(adminURL))
	// Неизвестные маршруты получают 404, клиент уводит на главную
}

func (g *Gateway) proxyToService(target string) echo.HandlerFunc {
	return func(c echo.Context) error {
		targetURL, err := url.Parse(target)
		if err != nil {
			return err
		}

		log.Println("Проксируем запрос на:", target+c.Request().URL.Path)

		proxy := httputil.NewSingleHostReverseProxy(targetURL)

		c.Request().Host = targetURL.Host
		c.Request().URL.Scheme = targetURL.Scheme
		c.Request().URL.Host = targetURL.Host

		proxy.ServeHTTP(c.Response(), c.Request())
		return nil
	}
}

func (g *Gateway) Start(port string) {
	g.server.Logger.Fatal(g.server.Start(port))
}
