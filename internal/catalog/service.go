package catalog

import "strings"

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListSongs(term string) ([]Song, error) {
	songs, err := s.repo.ListSongs()
	if err != nil {
		return nil, err
	}
	return FilterSongs(songs, term), nil
}

func (s *Service) GetSong(id int) (*Song, error) {
	return s.repo.GetSongByID(id)
}

func (s *Service) ListActiveBanners() ([]Banner, error) {
	return s.repo.ListActiveBanners()
}

func (s *Service) ListActiveAds() ([]Ad, error) {
	return s.repo.ListActiveAds()
}

func (s *Service) GetSettings() (Settings, error) {
	return s.repo.GetSettings()
}

// FilterSongs оставляет песни, название которых содержит подстроку
// без учета регистра. Пустая строка поиска возвращает список целиком
func FilterSongs(songs []Song, term string) []Song {
	if term == "" {
		return songs
	}

	needle := strings.ToLower(term)
	filtered := make([]Song, 0, len(songs))
	for _, song := range songs {
		if strings.Contains(strings.ToLower(song.Title), needle) {
			filtered = append(filtered, song)
		}
	}
	return filtered
}

// AdForPlacement выбирает первое активное объявление для слота,
// остальные в том же слоте молча игнорируются
func AdForPlacement(ads []Ad, placement string) *Ad {
	for i := range ads {
		if ads[i].Active && ads[i].Placement == placement {
			return &ads[i]
		}
	}
	return nil
}
