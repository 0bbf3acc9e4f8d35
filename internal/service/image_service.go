package service

import (
	"context"
	"fmt"
	"mime"
	"mime/multipart"

	"github.com/1000kkannoo/dnd-8th-4-backend/internal/common"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/domain"
	pkglogger "github.com/1000kkannoo/dnd-8th-4-backend/pkg/logger"
	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/storage"
)

// ImageService stores content images in the object store
type ImageService interface {
	// Upload stores files one by one. On failure the objects already stored by this call are deleted.
	Upload(ctx context.Context, files []*multipart.FileHeader) ([]domain.ContentImage, error)

	// Delete removes objects by storage key; failures are logged, not returned
	Delete(ctx context.Context, names []string)
}

type imageService struct {
	backend storage.Backend
}

func NewImageService(backend storage.Backend) ImageService {
	return &imageService{backend: backend}
}

func (s *imageService) Upload(ctx context.Context, files []*multipart.FileHeader) ([]domain.ContentImage, error) {
	if len(files) == 0 {
		return nil, nil
	}

	// reject bad names before anything reaches the bucket
	keys := make([]string, len(files))
	for i, fh := range files {
		key, err := storage.GenerateKey(fh.Filename)
		if err != nil {
			return nil, fmt.Errorf("file %q: %w", fh.Filename, err)
		}
		keys[i] = key
	}

	images := make([]domain.ContentImage, 0, len(files))
	for i, fh := range files {
		url, err := s.uploadOne(ctx, keys[i], fh)
		if err != nil {
			s.Delete(ctx, imageNames(images))
			return nil, fmt.Errorf("%w: %s: %v", common.ErrImageUpload, fh.Filename, err)
		}
		images = append(images, domain.ContentImage{ImageName: keys[i], ImageURL: url})
	}

	pkglogger.GetLogger().Info().
		Int("count", len(images)).
		Msg("images uploaded")

	return images, nil
}

func (s *imageService) uploadOne(ctx context.Context, key string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		ext, _ := storage.FileExtension(key)
		contentType = mime.TypeByExtension(ext)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	result, err := s.backend.Upload(ctx, key, src, contentType, fh.Size)
	if err != nil {
		return "", err
	}
	return result.PublicURL(), nil
}

func (s *imageService) Delete(ctx context.Context, names []string) {
	for _, name := range names {
		if err := s.backend.Delete(ctx, name); err != nil {
			pkglogger.GetLogger().Warn().
				Err(err).
				Str("key", name).
				Msg("image delete failed")
		}
	}
}

func imageNames(images []domain.ContentImage) []string {
	names := make([]string, len(images))
	for i, img := range images {
		names[i] = img.ImageName
	}
	return names
}
