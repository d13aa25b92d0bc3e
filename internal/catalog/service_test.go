package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSongs(titles ...string) []Song {
	songs := make([]Song, 0, len(titles))
	for i, title := range titles {
		songs = append(songs, Song{
			ID:        i + 1,
			Title:     title,
			CreatedAt: time.Now(),
		})
	}
	return songs
}

func TestFilterSongs(t *testing.T) {
	songs := makeSongs("Midnight Rain", "Morning Dew", "rainy mood", "Silence")

	tests := []struct {
		name   string
		term   string
		titles []string
	}{
		{"пустая строка возвращает все", "", []string{"Midnight Rain", "Morning Dew", "rainy mood", "Silence"}},
		{"подстрока без учета регистра", "RAIN", []string{"Midnight Rain", "rainy mood"}},
		{"точное совпадение", "Silence", []string{"Silence"}},
		{"нет совпадений", "jazz", []string{}},
		{"совпадение в середине слова", "ni", []string{"Midnight Rain", "Morning Dew"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterSongs(songs, tt.term)
			titles := make([]string, 0, len(got))
			for _, song := range got {
				titles = append(titles, song.Title)
			}
			assert.Equal(t, tt.titles, titles)
		})
	}
}

func TestFilterSongsEmptyTermReturnsSameSlice(t *testing.T) {
	songs := makeSongs("a", "b")
	got := FilterSongs(songs, "")
	require.Len(t, got, 2)
	assert.Equal(t, songs, got)
}

func TestFilterSongsKeepsOrder(t *testing.T) {
	songs := makeSongs("new rain", "old rain")
	got := FilterSongs(songs, "rain")
	require.Len(t, got, 2)
	assert.Equal(t, "new rain", got[0].Title)
	assert.Equal(t, "old rain", got[1].Title)
}

func TestAdForPlacement(t *testing.T) {
	ads := []Ad{
		{ID: 1, Content: "<b>первый сверху</b>", Type: "html", Placement: "top", Active: true},
		{ID: 2, Content: "второй сверху", Type: "html", Placement: "top", Active: true},
		{ID: 3, Content: "третий сверху", Type: "html", Placement: "top", Active: true},
		{ID: 4, Content: "http://example.com/ad.png", Type: "image", Placement: "bottom", Active: true},
	}

	// Из трех активных объявлений слота top показывается только первое
	top := AdForPlacement(ads, "top")
	require.NotNil(t, top)
	assert.Equal(t, 1, top.ID)

	bottom := AdForPlacement(ads, "bottom")
	require.NotNil(t, bottom)
	assert.Equal(t, 4, bottom.ID)

	assert.Nil(t, AdForPlacement(ads, "feed"))
	assert.Nil(t, AdForPlacement(nil, "top"))
}

func TestAdForPlacementSkipsInactive(t *testing.T) {
	ads := []Ad{
		{ID: 1, Placement: "top", Active: false},
		{ID: 2, Placement: "top", Active: true},
	}

	got := AdForPlacement(ads, "top")
	require.NotNil(t, got)
	assert.Equal(t, 2, got.ID)
}
