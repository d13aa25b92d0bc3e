package catalog

import (
	"database/sql"
	"errors"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// ListSongs возвращает все песни, новые первыми
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

func (r *Repository) GetSongByID(id int) (*Song, error) {
	var song Song
	query := "SELECT id, title, artist, cover_url, audio_url, created_at FROM songs WHERE id = $1"
	err := r.db.QueryRow(query, id).Scan(&song.ID, &song.Title, &song.Artist, &song.CoverURL, &song.AudioURL, &song.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &song, nil
}

// ListActiveBanners возвращает активные баннеры по порядку показа,
// равные значения порядка идут в порядке добавления
func (r *Repository) ListActiveBanners() ([]Banner, error) {
	rows, err := r.db.Query(`SELECT id, image_url, link, active, "order" FROM banners WHERE active ORDER BY "order" ASC, id ASC`)
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

// ListActiveAds возвращает активные объявления в порядке добавления
func (r *Repository) ListActiveAds() ([]Ad, error) {
	rows, err := r.db.Query("SELECT id, content, type, placement, active FROM ads WHERE active ORDER BY id ASC")
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

// GetSettings возвращает единственную запись настроек.
// Отсутствие записи не ошибка: возвращаются пустые значения
func (r *Repository) GetSettings() (Settings, error) {
	var settings Settings
	err := r.db.QueryRow("SELECT youtube, telegram FROM settings WHERE id = 'main'").
		Scan(&settings.YouTube, &settings.Telegram)
	if errors.Is(err, sql.ErrNoRows) {
		return Settings{}, nil
	}
	return settings, err
}
