package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func callWithToken(t *testing.T, h echo.HandlerFunc, token string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h(c))
	return rec, c
}

func TestRequireAuth(t *testing.T) {
	h := RequireAuth(okHandler)

	t.Run("без токена", func(t *testing.T) {
		rec, _ := callWithToken(t, h, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("мусорный токен", func(t *testing.T) {
		rec, _ := callWithToken(t, h, "not.a.token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("валидный токен пропускает и кладет сессию в контекст", func(t *testing.T) {
		token, err := GenerateJWT(7, "user@example.com", "user")
		require.NoError(t, err)

		rec, c := callWithToken(t, h, token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 7, c.Get("id"))
		assert.Equal(t, "user@example.com", c.Get("email"))
		assert.Equal(t, "user", c.Get("role"))
	})
}

func TestRequireAdmin(t *testing.T) {
	const adminEmail = "admin@example.com"
	h := RequireAdmin(adminEmail)(okHandler)

	tests := []struct {
		name     string
		email    string
		role     string
		wantCode int
	}{
		{"обычный пользователь", "user@example.com", "user", http.StatusForbidden},
		{"нужный email без роли admin", adminEmail, "user", http.StatusForbidden},
		{"роль admin с чужим email", "other@example.com", "admin", http.StatusForbidden},
		{"администратор проходит", adminEmail, "admin", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateJWT(1, tt.email, tt.role)
			require.NoError(t, err)

			rec, _ := callWithToken(t, h, token)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}

	t.Run("без токена", func(t *testing.T) {
		rec, _ := callWithToken(t, h, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
