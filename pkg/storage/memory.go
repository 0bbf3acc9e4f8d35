package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrObjectNotFound object key does not exist
var ErrObjectNotFound = errors.New("object not found")

// MemoryBackend in-memory Backend for local runs without S3 and for tests
type MemoryBackend struct {
	mu      sync.RWMutex
	objects map[string][]byte
	baseURL string

	// FailUploadAfter makes the n-th and later uploads fail (0 = never)
	FailUploadAfter int
	uploads         int
}

// NewMemoryBackend creates an in-memory backend serving URLs under baseURL
func NewMemoryBackend(baseURL string) *MemoryBackend {
	return &MemoryBackend{
		objects: make(map[string][]byte),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (b *MemoryBackend) Upload(_ context.Context, key string, body io.Reader, contentType string, _ int64) (*UploadResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.uploads++
	if b.FailUploadAfter > 0 && b.uploads >= b.FailUploadAfter {
		return nil, errors.New("memory upload failed")
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	b.objects[key] = data

	return &UploadResult{
		Key:         key,
		URL:         b.URL(key),
		ContentType: contentType,
		Size:        int64(len(data)),
	}, nil
}

func (b *MemoryBackend) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.objects[key]; !exists {
		return ErrObjectNotFound
	}
	delete(b.objects, key)
	return nil
}

func (b *MemoryBackend) URL(key string) string {
	return b.baseURL + "/" + key
}

// Has reports whether key is stored
func (b *MemoryBackend) Has(key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.objects[key]
	return ok
}

// Len number of stored objects
func (b *MemoryBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.objects)
}
