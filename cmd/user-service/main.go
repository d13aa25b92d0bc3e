package main

import (
	"log"

	"github.com/Bossnicks/lofi-music-service/config"
	"github.com/Bossnicks/lofi-music-service/internal/user"
	"github.com/Bossnicks/lofi-music-service/pkg/auth"
	"github.com/Bossnicks/lofi-music-service/pkg/database"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.LoadConfig()
	auth.Configure(cfg.JWTSecret, cfg.JWTResetSecret)

	// Подключение к БД
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Ошибка подключения к БД: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Ошибка миграций: %v", err)
	}

	e := echo.New()

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
	}))

	smtp := auth.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
	}

	repo := user.NewRepository(db)
	service := user.NewService(repo, cfg.AdminEmail, cfg.AllowedEmailDomain, smtp, cfg.ResetBaseURL)
	handler := user.NewHandler(service)

	e.POST("/users/signup", handler.Register)
	e.POST("/users/login", handler.Login)
	e.POST("/users/forgot-password", handler.RecoverPassword)
	e.POST("/users/reset-password", handler.ResetPassword)
	e.GET("/users/me", handler.GetMe, auth.RequireAuth)
	e.GET("/users/me/isadmin", handler.IsAdmin, auth.RequireAuth)

	log.Println("Запуск user-service на порту 12000")
	if err := e.Start(":12000"); err != nil {
		log.Fatal(err)
	}
}
