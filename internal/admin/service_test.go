package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAd(t *testing.T) {
	tests := []struct {
		name      string
		adType    string
		placement string
		wantErr   error
	}{
		{"html сверху", "html", "top", nil},
		{"html снизу", "html", "bottom", nil},
		{"картинка в ленте", "image", "feed", nil},
		{"неизвестный тип", "script", "top", ErrBadAdType},
		{"пустой тип", "", "top", ErrBadAdType},
		{"неизвестный слот", "html", "sidebar", ErrBadPlacement},
		{"пустой слот", "image", "", ErrBadPlacement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAd(tt.adType, tt.placement)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUploadSongRequiresTitle(t *testing.T) {
	s := NewService(nil, nil)

	// Проверка названия идет до любых загрузок файлов
	_, err := s.UploadSong("", "", FileUpload{}, FileUpload{})
	assert.ErrorIs(t, err, ErrTitleRequired)
}
