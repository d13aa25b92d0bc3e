package main

import (
	"log"
	"time"

	"github.com/Bossnicks/lofi-music-service/config"
	"github.com/Bossnicks/lofi-music-service/internal/catalog"
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

	repo := catalog.NewRepository(db)
	service := catalog.NewService(repo)

	rotator := catalog.NewRotator(5 * time.Second)
	rotator.Start()

	handler := catalog.NewHandler(service, minioStorage, rotator)

	g := e.Group("/catalog", auth.RequireAuth)
	g.GET("/songs", handler.GetSongs)
	g.GET("/songs/:id/audio", handler.GetSongAudio)
	g.GET("/songs/:id/cover", handler.GetSongCover)
	g.GET("/banners", handler.GetBanners)
	g.POST("/banners/rotation", handler.SelectBanner)
	g.GET("/ads", handler.GetAds)
	g.GET("/ads/placement/:slot", handler.GetAdForPlacement)
	g.GET("/settings", handler.GetSettings)

	log.Println("Запуск catalog-service на порту 11000")
	if err := e.Start(":11000"); err != nil {
		rotator.Stop()
		log.Fatal(err)
	}
}
