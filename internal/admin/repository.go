package admin

import (
	"database/sql"
	"errors"
)

var ErrNotFound = errors.New("запись не найдена")

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListSongs() ([]Song, error) {
	rows, err := r.db.Query("SELECT id, title, artist, cover_url, audio_url, created_at FROM songs ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var songs []Song
	for rows.Next() {
		var song Song
		if err := rows.Scan(&song.ID, &song.Title, &song.Artist, &song.CoverURL, &song.AudioURL, &song.CreatedAt); err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, rows.Err()
}

func (r *Repository) CreateSong(song *Song) error {
	query := "INSERT INTO songs (title, artist, cover_url, audio_url) VALUES ($1, $2, $3, $4) RETURNING id, created_at"
	return r.db.QueryRow(query, song.Title, song.Artist, song.CoverURL, song.AudioURL).
		Scan(&song.ID, &song.CreatedAt)
}

// DeleteSong удаляет запись и возвращает URL файлов для зачистки
func (r *Repository) DeleteSong(id int) (coverURL, audioURL string, err error) {
	query := "DELETE FROM songs WHERE id = $1 RETURNING cover_url, audio_url"
	err = r.db.QueryRow(query, id).Scan(&coverURL, &audioURL)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", ErrNotFound
	}
	return coverURL, audioURL, err
}

func (r *Repository) ListBanners() ([]Banner, error) {
	rows, err := r.db.Query(`SELECT id, image_url, link, active, "order" FROM banners ORDER BY "order" ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var banners []Banner
	for rows.Next() {
		var banner Banner
		if err := rows.Scan(&banner.ID, &banner.ImageURL, &banner.Link, &banner.Active, &banner.Order); err != nil {
			return nil, err
		}
		banners = append(banners, banner)
	}
	return banners, rows.Err()
}

func (r *Repository) CountBanners() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM banners").Scan(&count)
	return count, err
}

func (r *Repository) CreateBanner(banner *Banner) error {
	query := `INSERT INTO banners (image_url, link, active, "order") VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRow(query, banner.ImageURL, banner.Link, banner.Active, banner.Order).Scan(&banner.ID)
}

func (r *Repository) DeleteBanner(id int) (imageURL string, err error) {
	query := "DELETE FROM banners WHERE id = $1 RETURNING image_url"
	err = r.db.QueryRow(query, id).Scan(&imageURL)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return imageURL, err
}

func (r *Repository) ListAds() ([]Ad, error) {
	rows, err := r.db.Query("SELECT id, content, type, placement, active FROM ads ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ads []Ad
	for rows.Next() {
		var ad Ad
		if err := rows.Scan(&ad.ID, &ad.Content, &ad.Type, &ad.Placement, &ad.Active); err != nil {
			return nil, err
		}
		ads = append(ads, ad)
	}
	return ads, rows.Err()
}

func (r *Repository) CreateAd(ad *Ad) error {
	query := "INSERT INTO ads (content, type, placement, active) VALUES ($1, $2, $3, $4) RETURNING id"
	return r.db.QueryRow(query, ad.Content, ad.Type, ad.Placement, ad.Active).Scan(&ad.ID)
}

func (r *Repository) DeleteAd(id int) error {
	result, err := r.db.Exec("DELETE FROM ads WHERE id = $1", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) GetSettings() (Settings, error) {
	var settings Settings
	err := r.db.QueryRow("SELECT youtube, telegram FROM settings WHERE id = 'main'").
		Scan(&settings.YouTube, &settings.Telegram)
	if errors.Is(err, sql.ErrNoRows) {
		return Settings{}, nil
	}
	return settings, err
}

// SaveSettings перезаписывает единственную запись настроек.
// Повторный вызов с теми же значениями ничего не меняет
func (r *Repository) SaveSettings(settings Settings) error {
	query := `INSERT INTO settings (id, youtube, telegram) VALUES ('main', $1, $2)
		ON CONFLICT (id) DO UPDATE SET youtube = EXCLUDED.youtube, telegram = EXCLUDED.telegram`
	_, err := r.db.Exec(query, settings.YouTube, settings.Telegram)
	return err
}
