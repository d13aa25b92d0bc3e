package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *MinioStorage {
	t.Helper()
	s, err := NewMinioStorage("localhost:9000", "minioadmin", "minioadmin", "lofi", "http://localhost:9000", false)
	require.NoError(t, err)
	return s
}

func TestBuildObjectKey(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	assert.Equal(t, "covers/1700000000000_cover.png", BuildObjectKey("covers", "cover.png", now))
	assert.Equal(t, "songs/1700000000000_track 01.mp3", BuildObjectKey("songs", "track 01.mp3", now))
	assert.Equal(t, "banners/1700000000000_b.jpg", BuildObjectKey("banners", "b.jpg", now))
}

func TestObjectKeyFromURL(t *testing.T) {
	s := newTestStorage(t)

	tests := []struct {
		name    string
		url     string
		key     string
		wantErr bool
	}{
		{"обычный URL", "http://localhost:9000/lofi/covers/123_cover.png", "covers/123_cover.png", false},
		{"URL с вложенным именем", "http://localhost:9000/lofi/songs/123_track 01.mp3", "songs/123_track 01.mp3", false},
		{"чужой bucket", "http://localhost:9000/other/covers/123_cover.png", "", true},
		{"без ключа", "http://localhost:9000/lofi/", "", true},
		{"мусор вместо URL", "://///", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := s.ObjectKeyFromURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestUploadKeyRoundtrip(t *testing.T) {
	// Ключ, зашитый в публичный URL после загрузки, разбирается обратно
	s := newTestStorage(t)

	key := BuildObjectKey("covers", "cover.png", time.Now())
	url := "http://localhost:9000/lofi/" + key

	parsed, err := s.ObjectKeyFromURL(url)
	require.NoError(t, err)
	assert.Equal(t, key, parsed)
}
