package user

import (
	"errors"
	"strings"

	"github.com/Bossnicks/lofi-music-service/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists       = errors.New("пользователь уже существует")
	ErrBadCredentials   = errors.New("неверные учетные данные")
	ErrDomainNotAllowed = errors.New("домен почты не разрешен")
)

type Service struct {
	repo *Repository

	adminEmail    string
	allowedDomain string
	smtp          auth.SMTPConfig
	resetBaseURL  string
}

func NewService(repo *Repository, adminEmail, allowedDomain string, smtp auth.SMTPConfig, resetBaseURL string) *Service {
	return &Service{
		repo:          repo,
		adminEmail:    adminEmail,
		allowedDomain: allowedDomain,
		smtp:          smtp,
		resetBaseURL:  resetBaseURL,
	}
}

func (s *Service) RegisterUser(user *User) error {
	if !DomainAllowed(s.allowedDomain, user.Email) {
		return ErrDomainNotAllowed
	}

	_, err := s.repo.GetUserByEmail(user.Email)
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)

	// Роль всегда user: повышение до admin выполняется только напрямую в БД
	return s.repo.CreateUser(user)
}

func (s *Service) Authenticate(email, password string) (string, *User, error) {
	if !DomainAllowed(s.allowedDomain, email) {
		return "", nil, ErrDomainNotAllowed
	}

	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		return "", nil, ErrBadCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		return "", nil, ErrBadCredentials
	}

	token, err := auth.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}

	sanitizedUser := &User{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Password:  "",
		PhotoURL:  user.PhotoURL,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}

	return token, sanitizedUser, nil
}

func (s *Service) GetUser(userID int) (*User, error) {
	return s.repo.GetUserByID(userID)
}

// CheckIsAdmin сверяет живую роль из БД, а не роль из токена
func (s *Service) CheckIsAdmin(userID int) (bool, error) {
	user, err := s.repo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return IsAdmin(s.adminEmail, user), nil
}

func (s *Service) SendPasswordReset(email string) error {
	if _, err := s.repo.GetUserByEmail(email); err != nil {
		return err
	}

	token, err := auth.GenerateResetToken(email)
	if err != nil {
		return err
	}

	resetLink := s.resetBaseURL + "?token=" + token
	return auth.SendResetEmail(s.smtp, email, resetLink)
}

func (s *Service) ResetPassword(token, newPassword string) error {
	claims, err := auth.ParseResetToken(token)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(claims.Email, string(hashedPassword))
}

// IsAdmin истинно только для единственного разрешенного адреса
// администратора с сохраненной ролью admin
func IsAdmin(adminEmail string, user *User) bool {
	if user == nil || user.Email == "" {
		return false
	}
	if user.Email != adminEmail {
		return false
	}
	return user.Role == "admin"
}

// DomainAllowed проверяет домен почты; пустое ограничение пропускает всех
func DomainAllowed(allowedDomain, email string) bool {
	if allowedDomain == "" {
		return true
	}
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	return strings.EqualFold(email[at+1:], allowedDomain)
}
