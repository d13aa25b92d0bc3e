package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAdmin(t *testing.T) {
	const adminEmail = "admin@example.com"

	tests := []struct {
		name string
		user *User
		want bool
	}{
		{"нет пользователя", nil, false},
		{"пустой email", &User{Email: "", Role: "admin"}, false},
		{"чужой email с ролью admin", &User{Email: "other@example.com", Role: "admin"}, false},
		{"нужный email без роли admin", &User{Email: adminEmail, Role: "user"}, false},
		{"нужный email без роли вообще", &User{Email: adminEmail}, false},
		{"email и роль совпадают", &User{Email: adminEmail, Role: "admin"}, true},
		{"регистр email значим", &User{Email: "Admin@example.com", Role: "admin"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAdmin(adminEmail, tt.user))
		})
	}
}

func TestDomainAllowed(t *testing.T) {
	tests := []struct {
		name    string
		allowed string
		email   string
		want    bool
	}{
		{"без ограничения пропускает всех", "", "anyone@anywhere.com", true},
		{"домен совпадает", "example.com", "user@example.com", true},
		{"домен совпадает без учета регистра", "example.com", "user@Example.COM", true},
		{"чужой домен", "example.com", "user@other.com", false},
		{"email без собаки", "example.com", "userexample.com", false},
		{"поддомен не проходит", "example.com", "user@mail.example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DomainAllowed(tt.allowed, tt.email))
		})
	}
}
