package services

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"dreamforge-app/media-service/internal/models"

	"github.com/minio/minio-go/v7"
)

type MediaService struct {
	repo      MediaRepository
	minio     *minio.Client
	bucket    string
	publicURL string
}

type MediaRepository interface {
	Save(ctx context.Context, m *models.Media) error
	FindByID(ctx context.Context, id string) (*models.Media, error)
	FindByUser(ctx context.Context, userID string, mType models.MediaType) ([]models.Media, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

func NewMediaService(repo MediaRepository, m *minio.Client, bucket, publicURL string) *MediaService {
	return &MediaService{repo: repo, minio: m, bucket: bucket, publicURL: publicURL}
}

// Upload stores the file in the bucket under a timestamped key and records
// its metadata. The returned URL is publicly readable.
func (s *MediaService) Upload(ctx context.Context, reader io.Reader, size int64, contentType, filename string, mType models.MediaType, userID string) (string, error) {
	objectKey := fmt.Sprintf("%s/%s/%d_%s", mType, userID, time.Now().UnixNano(), filename)
	_, err := s.minio.PutObject(ctx, s.bucket, objectKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	fileURL := fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.publicURL, "/"), s.bucket, objectKey)

	media := &models.Media{
		FileName:  filename,
		ObjectKey: objectKey,
		URL:       fileURL,
		Type:      mType,
		UserID:    userID,
	}
	if err := s.repo.Save(ctx, media); err != nil {
		return "", err
	}
	return fileURL, nil
}

func (s *MediaService) GetMediaByID(ctx context.Context, id string) (*models.Media, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MediaService) GetAvatars(ctx context.Context, userID string) ([]models.Media, error) {
	return s.repo.FindByUser(ctx, userID, models.AvatarMedia)
}

func (s *MediaService) GetProjectImages(ctx context.Context, userID string) ([]models.Media, error) {
	return s.repo.FindByUser(ctx, userID, models.ProjectMedia)
}

// DeleteUserMedia removes every metadata record for a user. Objects in the
// bucket are left for a storage lifecycle rule to reap.
func (s *MediaService) DeleteUserMedia(ctx context.Context, userID string) (int64, error) {
	return s.repo.DeleteByUser(ctx, userID)
}

func (s *MediaService) GeneratePresignedURL(ctx context.Context, objectKey string) (string, error) {
	reqParams := make(url.Values)
	presignedURL, err := s.minio.PresignedGetObject(ctx, s.bucket, objectKey, time.Hour, reqParams)
	if err != nil {
		return "", err
	}
	return presignedURL.String(), nil
}
