package admin

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Все четыре коллекции одним ответом для полной перезагрузки консоли
func (h *Handler) GetOverview(c echo.Context) error {
	overview, err := h.service.GetOverview()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Ошибка сервера"})
	}
	return c.JSON(http.StatusOK, overview)
}

// Загрузка песни: multipart с полями title, artist и файлами cover, audio
func (h *Handler) UploadSong(c echo.Context) error {
	title := c.FormValue("title")
	artist := c.FormValue("artist")

	coverHeader, err := c.FormFile("cover")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Обложка обязательна"})
	}
	audioHeader, err := c.FormFile("audio")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Аудиофайл обязателен"})
	}

	cover, coverFile, err := openUpload(coverHeader)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Ошибка чтения файла"})
	}
	defer coverFile.Close()

	audio, audioFile, err := openUpload(audioHeader)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Ошибка чтения файла"})
	}
	defer audioFile.Close()

	song, err := h.service.UploadSong(title, artist, cover, audio)
	if err != nil {
		if errors.Is(err, ErrTitleRequired) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Название обязательно"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Не удалось загрузить песню"})
	}

	return c.JSON(http.StatusCreated, song)
}

func (h *Handler) DeleteSong(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Некорректный ID"})
	}

	if err := h.service.DeleteSong(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Песня не найдена"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Не удалось удалить песню"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Песня удалена"})
}

// Загрузка баннера: multipart с файлом image и необязательной ссылкой link
func (h *Handler) UploadBanner(c echo.Context) error {
	imageHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Картинка обязательна"})
	}

	image, imageFile, err := openUpload(imageHeader)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Ошибка чтения файла"})
	}
	defer imageFile.Close()

	banner, err := h.service.UploadBanner(c.FormValue("link"), image)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Не удалось добавить баннер"})
	}

	return c.JSON(http.StatusCreated, banner)
}

func (h *Handler) DeleteBanner(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Некорректный ID"})
	}

	if err := h.service.DeleteBanner(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Баннер не найден"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Не удалось удалить баннер"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Баннер удален"})
}

func (h *Handler) CreateAd(c echo.Context) error {
	var req CreateAdRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Некорректные данные"})
	}

	ad, err := h.service.CreateAd(req)
	if err != nil {
		if errors.Is(err, ErrBadAdType) || errors.Is(err, ErrBadPlacement) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Не удалось добавить объявление"})
	}

	return c.JSON(http.StatusCreated, ad)
}

func (h *Handler) DeleteAd(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Некорректный ID"})
	}

	if err := h.service.DeleteAd(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Объявление не найдено"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Не удалось удалить объявление"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Объявление удалено"})
}

func (h *Handler) SaveSettings(c echo.Context) error {
	var req SaveSettingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Некорректные данные"})
	}

	if err := h.service.SaveSettings(req); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Не удалось сохранить настройки"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Настройки сохранены"})
}

func openUpload(header *multipart.FileHeader) (FileUpload, multipart.File, error) {
	file, err := header.Open()
	if err != nil {
		return FileUpload{}, nil, err
	}
	upload := FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Reader:      file,
	}
	return upload, file, nil
}
