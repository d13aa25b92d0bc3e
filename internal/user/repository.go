package user

import (
	"database/sql"
	"errors"
)

var ErrNotFound = errors.New("пользователь не найден")

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateUser(user *User) error {
	query := "INSERT INTO users (username, email, password, photo_url) VALUES ($1, $2, $3, $4) RETURNING id, role, created_at"
	err := r.db.QueryRow(query, user.Username, user.Email, user.Password, user.PhotoURL).
		Scan(&user.ID, &user.Role, &user.CreatedAt)
	return err
}

func (r *Repository) GetUserByEmail(email string) (*User, error) {
	var user User
	query := "SELECT id, username, email, password, photo_url, role, created_at FROM users WHERE email = $1"
	err := r.db.QueryRow(query, email).Scan(&user.ID, &user.Username, &user.Email, &user.Password, &user.PhotoURL, &user.Role, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &user, err
}

func (r *Repository) GetUserByID(userID int) (*User, error) {
	var user User
	query := "SELECT id, username, email, password, photo_url, role, created_at FROM users WHERE id = $1"
	err := r.db.QueryRow(query, userID).Scan(&user.ID, &user.Username, &user.Email, &user.Password, &user.PhotoURL, &user.Role, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &user, err
}

func (r *Repository) UpdatePassword(email, hashedPassword string) error {
	_, err := r.db.Exec("UPDATE users SET password = $1 WHERE email = $2", hashedPassword, email)
	return err
}
