package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// RequireAuth проверяет Bearer-токен и кладет данные сессии в контекст
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Токен отсутствует"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := ParseJWT(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Неверный токен"})
		}

		c.Set("id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		return next(c)
	}
}

// RequireAdmin пускает только администратора: роль admin и email
// из единственного разрешенного адреса
func RequireAdmin(adminEmail string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return RequireAuth(func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			email, _ := c.Get("email").(string)
			if role != "admin" || email == "" || email != adminEmail {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Доступ запрещен"})
			}
			return next(c)
		})
	}
}
