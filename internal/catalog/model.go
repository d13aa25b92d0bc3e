package catalog

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

// Ad хранит либо HTML-фрагмент, либо URL картинки в зависимости от Type
type Ad struct {
	ID        int    `json:"id"`
	Content   string `json:"content"`
	Type      string `json:"type"`      // html | image
	Placement string `json:"placement"` // top | bottom | feed
	Active    bool   `json:"active"`
}

type Settings struct {
	YouTube  string `json:"youtube"`
	Telegram string `json:"telegram"`
}
