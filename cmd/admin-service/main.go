package main

import (
	"log"

	"github.com/Bossnicks/lofi-music-service/config"
	"github.com/Bossnicks/lofi-music-service/internal/admin"
	"github.com/Bossnicks/lofi-music-service/pkg/auth"
	"github.com/Bossnicks/lofi-music-service/pkg/database"
	"github.com/Bossnicks/lofi-music-service/pkg/storage"

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

	// Подключение к MinIO
	minioStorage, err := storage.NewMinioStorage(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.BucketName, cfg.PublicBaseURL, cfg.MinioUseSSL)
	if err != nil {
		log.Fatalf("Ошибка подключения к MinIO: %v", err)
	}

	e := echo.New()

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
	}))

	repo := admin.NewRepository(db)
	service := admin.NewService(repo, minioStorage)
	handler := admin.NewHandler(service)

	// Вся консоль только для администратора
	g := e.Group("/admin", auth.RequireAdmin(cfg.AdminEmail))
	g.GET("/overview", handler.GetOverview)
	g.POST("/songs", handler.UploadSong)
	g.DELETE("/songs/:id", handler.DeleteSong)
	g.POST("/banners", handler.UploadBanner)
	g.DELETE("/banners/:id", handler.DeleteBanner)
	g.POST("/ads", handler.CreateAd)
	g.DELETE("/ads/:id", handler.DeleteAd)
	g.PUT("/settings", handler.SaveSettings)

	log.Println("Запуск admin-service на порту 13000")
	if err := e.Start(":13000"); err != nil {
		log.Fatal(err)
	}
}
