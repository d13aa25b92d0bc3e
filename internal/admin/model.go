package admin

import "time"

type Song struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist,omitempty"`
	CoverURL  string    `json:"cover_url"`
	AudioURL  string    `json:"audio_url"`
	CreatedAt time.Time `json:"created_at"`
}

type Banner struct {
	ID       int    `json:"id"`
	ImageURL string `json:"image_url"`
	Link     string `json:"link,omitempty"`
	Active   bool   `json:"active"`
	Order    int    `json:"order"`
}

type Ad struct {
	ID        int    `json:"id"`
	Content   string `json:"content"`
	Type      string `json:"type"`
	Placement string `json:"placement"`
	Active    bool   `json:"active"`
}

type Settings struct {
	YouTube  string `json:"youtube"`
	Telegram string `json:"telegram"`
}

type CreateAdRequest struct {
	Content   string `json:"content"`
	Type      string `json:"type"`
	Placement string `json:"placement"`
}

type SaveSettingsRequest struct {
	YouTube  string `json:"youtube"`
	Telegram string `json:"telegram"`
}

// Overview собирает все четыре коллекции разом: после любой мутации
// консоль перезагружает все, без точечной инвалидации
type Overview struct {
	Songs    []Song   `json:"songs"`
	Banners  []Banner `json:"banners"`
	Ads      []Ad     `json:"ads"`
	Settings Settings `json:"settings"`
}
