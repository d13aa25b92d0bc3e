package catalog

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/Bossnicks/lofi-music-service/pkg/storage"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	service *Service
	storage *storage.MinioStorage
	rotator *Rotator
}

func NewHandler(service *Service, storage *storage.MinioStorage, rotator *Rotator) *Handler {
	return &Handler{service: service, storage: storage, rotator: rotator}
}

// Список песен, новые первыми, с поиском по названию через ?q=
func (h *Handler) GetSongs(c echo.Context) error {
	songs, err := h.service.ListSongs(c.QueryParam("q"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Ошибка сервера"})
	}
	if songs == nil {
		songs = []Song{}
	}
	return c.JSON(http.StatusOK, songs)
}

// Активные баннеры по порядку показа вместе с текущим индексом ротации
func (h *Handler) GetBanners(c echo.Context) error {
	banners, err := h.service.ListActiveBanners()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Ошибка сервера"})
	}
	if banners == nil {
		banners = []Banner{}
	}

	h.rotator.Resize(len(banners))

	return c.JSON(http.StatusOK, map[string]interface{}{
		"banners":       banners,
		"current_index": h.rotator.Index(),
	})
}

// Ручной выбор баннера перебивает автопролистывание
func (h *Handler) SelectBanner(c echo.Context) error {
	var req struct {
		Index int `json:"index"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Некорректные данные"})
	}

	if err := h.rotator.Select(req.Index); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Индекс вне диапазона"})
	}

	return c.JSON(http.StatusOK, map[string]int{"current_index": h.rotator.Index()})
}

func (h *Handler) GetAds(c echo.Context) error {
	ads, err := h.service.ListActiveAds()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Ошибка сервера"})
	}
	if ads == nil {
		ads = []Ad{}
	}
	return c.JSON(http.StatusOK, ads)
}

// GetAdForPlacement возвращает первое активное объявление слота.
// Content для type=html отдается как есть: это доверенный контент,
// который пишет только администратор, никакой очистки не выполняется
func (h *Handler) GetAdForPlacement(c echo.Context) error {
	placement := c.Param("slot")
	if placement != "top" && placement != "bottom" && placement != "feed" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Неизвестный слот"})
	}

	ads, err := h.service.ListActiveAds()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Ошибка сервера"})
	}

	ad := AdForPlacement(ads, placement)
	if ad == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Объявление не найдено"})
	}
	return c.JSON(http.StatusOK, ad)
}

func (h *Handler) GetSettings(c echo.Context) error {
	settings, err := h.service.GetSettings()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Ошибка сервера"})
	}
	return c.JSON(http.StatusOK, settings)
}

// Отдает аудиофайл песни для проигрывания и скачивания
func (h *Handler) GetSongAudio(c echo.Context) error {
	return h.streamSongFile(c, func(song *Song) string { return song.AudioURL })
}

// Отдает обложку песни
func (h *Handler) GetSongCover(c echo.Context) error {
	return h.streamSongFile(c, func(song *Song) string { return song.CoverURL })
}

func (h *Handler) streamSongFile(c echo.Context, pick func(*Song) string) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Некорректный ID"})
	}

	song, err := h.service.GetSong(id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Ошибка сервера"})
	}
	if song == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Песня не найдена"})
	}

	objectName, err := h.storage.ObjectKeyFromURL(pick(song))
	if err != nil {
		return c.String(http.StatusNotFound, "Файл не найден")
	}
	return h.streamFromMinIO(c, objectName)
}

// Отдает файл из MinIO
func (h *Handler) streamFromMinIO(c echo.Context, objectName string) error {
	obj, err := h.storage.GetFile(objectName)
	if err != nil {
		return c.String(http.StatusNotFound, "Файл не найден")
	}
	defer obj.Close()

	buf := new(bytes.Buffer)
	if _, err = io.Copy(buf, obj); err != nil {
		return c.String(http.StatusInternalServerError, "Ошибка чтения файла")
	}

	return c.Blob(http.StatusOK, http.DetectContentType(buf.Bytes()), buf.Bytes())
}
