package storage

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidFileExtension 확장자를 알 수 없는 파일명
var ErrInvalidFileExtension = errors.New("invalid file extension")

// Backend object storage used for uploaded images
type Backend interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string, size int64) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// UploadResult contains the result of a file upload
type UploadResult struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	CDNURL      string `json:"cdn_url,omitempty"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// PublicURL CDN URL if present, otherwise the bucket URL
func (r *UploadResult) PublicURL() string {
	if r.CDNURL != "" {
		return r.CDNURL
	}
	return r.URL
}

// FileExtension returns the text from the last "." of filename (".png").
func FileExtension(filename string) (string, error) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return "", ErrInvalidFileExtension
	}
	return filename[idx:], nil
}

// GenerateKey creates a collision-resistant storage key: random UUID + original extension
func GenerateKey(filename string) (string, error) {
	ext, err := FileExtension(filename)
	if err != nil {
		return "", err
	}
	return uuid.NewString() + ext, nil
}
