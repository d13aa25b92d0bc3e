package admin

import (
	"errors"
	"io"

	"github.com/Bossnicks/lofi-music-service/pkg/storage"
)

var (
	ErrTitleRequired = errors.New("название обязательно")
	ErrBadAdType     = errors.New("неизвестный тип объявления")
	ErrBadPlacement  = errors.New("неизвестный слот объявления")
)

// FileUpload описывает один загружаемый файл
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type Service struct {
	repo    *Repository
	storage *storage.MinioStorage
}

func NewService(repo *Repository, storage *storage.MinioStorage) *Service {
	return &Service{repo: repo, storage: storage}
}

func (s *Service) GetOverview() (*Overview, error) {
	songs, err := s.repo.ListSongs()
	if err != nil {
		return nil, err
	}
	banners, err := s.repo.ListBanners()
	if err != nil {
		return nil, err
	}
	ads, err := s.repo.ListAds()
	if err != nil {
		return nil, err
	}
	settings, err := s.repo.GetSettings()
	if err != nil {
		return nil, err
	}

	if songs == nil {
		songs = []Song{}
	}
	if banners == nil {
		banners = []Banner{}
	}
	if ads == nil {
		ads = []Ad{}
	}

	return &Overview{Songs: songs, Banners: banners, Ads: ads, Settings: settings}, nil
}

// UploadSong выполняет загрузку в две фазы: сначала файлы, потом запись.
// Сбой на файлах прерывает все до создания записи. Если запись не
// создалась после успешной загрузки, только что загруженные файлы
// зачищаются, чтобы не копить висячие объекты
func (s *Service) UploadSong(title, artist string, cover, audio FileUpload) (*Song, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}

	coverURL, err := s.storage.UploadFile("covers", cover.Filename, cover.Reader, cover.Size, cover.ContentType)
	if err != nil {
		return nil, err
	}

	audioURL, err := s.storage.UploadFile("songs", audio.Filename, audio.Reader, audio.Size, audio.ContentType)
	if err != nil {
		s.storage.DeleteFile(coverURL)
		return nil, err
	}

	song := &Song{
		Title:    title,
		Artist:   artist,
		CoverURL: coverURL,
		AudioURL: audioURL,
	}
	if err := s.repo.CreateSong(song); err != nil {
		s.storage.DeleteFile(coverURL)
		s.storage.DeleteFile(audioURL)
		return nil, err
	}

	return song, nil
}

// DeleteSong сначала удаляет запись, затем пытается удалить файлы.
// Неудачное удаление файла не откатывает удаление записи
func (s *Service) DeleteSong(id int) error {
	coverURL, audioURL, err := s.repo.DeleteSong(id)
	if err != nil {
		return err
	}

	if audioURL != "" {
		s.storage.DeleteFile(audioURL)
	}
	if coverURL != "" {
		s.storage.DeleteFile(coverURL)
	}
	return nil
}

// UploadBanner загружает картинку и создает активный баннер
// в конце порядка показа
func (s *Service) UploadBanner(link string, image FileUpload) (*Banner, error) {
	imageURL, err := s.storage.UploadFile("banners", image.Filename, image.Reader, image.Size, image.ContentType)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountBanners()
	if err != nil {
		s.storage.DeleteFile(imageURL)
		return nil, err
	}

	banner := &Banner{
		ImageURL: imageURL,
		Link:     link,
		Active:   true,
		Order:    count + 1,
	}
	if err := s.repo.CreateBanner(banner); err != nil {
		s.storage.DeleteFile(imageURL)
		return nil, err
	}

	return banner, nil
}

func (s *Service) DeleteBanner(id int) error {
	imageURL, err := s.repo.DeleteBanner(id)
	if err != nil {
		return err
	}

	if imageURL != "" {
		s.storage.DeleteFile(imageURL)
	}
	return nil
}

func (s *Service) CreateAd(req CreateAdRequest) (*Ad, error) {
	if err := ValidateAd(req.Type, req.Placement); err != nil {
		return nil, err
	}

	ad := &Ad{
		Content:   req.Content,
		Type:      req.Type,
		Placement: req.Placement,
		Active:    true,
	}
	if err := s.repo.CreateAd(ad); err != nil {
		return nil, err
	}
	return ad, nil
}

func (s *Service) DeleteAd(id int) error {
	return s.repo.DeleteAd(id)
}

func (s *Service) GetSettings() (Settings, error) {
	return s.repo.GetSettings()
}

func (s *Service) SaveSettings(req SaveSettingsRequest) error {
	return s.repo.SaveSettings(Settings{YouTube: req.YouTube, Telegram: req.Telegram})
}

// ValidateAd проверяет допустимость типа и слота объявления
func ValidateAd(adType, placement string) error {
	if adType != "html" && adType != "image" {
		return ErrBadAdType
	}
	if placement != "top" && placement != "bottom" && placement != "feed" {
		return ErrBadPlacement
	}
	return nil
}
