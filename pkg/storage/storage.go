package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinioStorage(endpoint, accessKey, secretKey, bucket, publicURL string, useSSL bool) (*MinioStorage, error) {
	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к MinIO: %w", err)
	}

	return &MinioStorage{
		client:    minioClient,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// GetFile возвращает поток данных из MinIO
func (s *MinioStorage) GetFile(objectName string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(context.Background(), s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("ошибка получения файла %s: %w", objectName, err)
	}
	return obj, nil
}

// UploadFile загружает файл под ключом <category>/<timestamp>_<имя файла>
// и возвращает публичный URL
func (s *MinioStorage) UploadFile(category, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	objectName := BuildObjectKey(category, filename, time.Now())

	_, err := s.client.PutObject(context.Background(), s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки файла %s: %w", objectName, err)
	}

	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectName), nil
}

// DeleteFile удаляет файл по публичному URL. Ошибка не возвращается:
// висячий файл допустим, блокировать удаление записи из-за него нельзя
func (s *MinioStorage) DeleteFile(fileURL string) {
	objectName, err := s.ObjectKeyFromURL(fileURL)
	if err != nil {
		log.Printf("Не удалось разобрать URL файла %s: %v", fileURL, err)
		return
	}

	err = s.client.RemoveObject(context.Background(), s.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		log.Printf("Не удалось удалить файл %s: %v", objectName, err)
	}
}

// BuildObjectKey строит ключ объекта. Риск коллизии по метке времени принят
func BuildObjectKey(category, filename string, now time.Time) string {
	return fmt.Sprintf("%s/%d_%s", category, now.UnixMilli(), filename)
}

// ObjectKeyFromURL выделяет ключ объекта из публичного URL вида
// http://host/<bucket>/<category>/<timestamp>_<имя файла>
func (s *MinioStorage) ObjectKeyFromURL(fileURL string) (string, error) {
	u, err := url.Parse(fileURL)
	if err != nil {
		return "", err
	}

	path := strings.TrimPrefix(u.Path, "/")
	if !strings.HasPrefix(path, s.bucket+"/") {
		return "", fmt.Errorf("URL не указывает на bucket %s: %s", s.bucket, fileURL)
	}

	key := strings.TrimPrefix(path, s.bucket+"/")
	if key == "" {
		return "", fmt.Errorf("пустой ключ объекта в URL: %s", fileURL)
	}
	return key, nil
}
