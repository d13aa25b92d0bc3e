package user

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Регистрация пользователя
func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Некорректные данные"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email и пароль обязательны"})
	}

	user := &User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		PhotoURL: req.PhotoURL,
	}

	err := h.service.RegisterUser(user)
	if err != nil {
		switch {
		case errors.Is(err, ErrDomainNotAllowed):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Домен почты не разрешен"})
		case errors.Is(err, ErrUserExists):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Пользователь уже существует!"})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Ошибка сервера"})
		}
	}

	return c.JSON(http.StatusCreated, map[string]string{"message": "Успешная регистрация"})
}

// Авторизация пользователя. Ошибки входа разделяются на три класса:
// запрещенный домен, неверные данные и все остальное
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Неверный формат запроса"})
	}

	token, user, err := h.service.Authenticate(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrDomainNotAllowed):
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Домен почты не разрешен"})
		case errors.Is(err, ErrBadCredentials):
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Неверные учетные данные"})
		default:
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Не удалось войти. Попробуйте еще раз"})
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// Получение информации о текущем пользователе
func (h *Handler) GetMe(c echo.Context) error {
	userID := c.Get("id").(int)

	user, err := h.service.GetUser(userID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Пользователь не найден"})
	}
	user.Password = ""
	return c.JSON(http.StatusOK, user)
}

// Проверка прав администратора по живой роли из БД
func (h *Handler) IsAdmin(c echo.Context) error {
	userID := c.Get("id").(int)

	isAdmin, err := h.service.CheckIsAdmin(userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Ошибка сервера"})
	}

	return c.JSON(http.StatusOK, map[string]bool{"is_admin": isAdmin})
}

// Запрос на восстановление пароля
func (h *Handler) RecoverPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Некорректные данные"})
	}

	if err := h.service.SendPasswordReset(req.Email); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Не удалось отправить письмо"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Письмо отправлено"})
}

// Установка нового пароля по токену сброса
func (h *Handler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Некорректные данные"})
	}

	if err := h.service.ResetPassword(req.Token, req.Password); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Неверный токен"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Пароль обновлен"})
}
