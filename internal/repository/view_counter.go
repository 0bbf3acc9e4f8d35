package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/cache"
)

// ViewCounter per-content view counters on the cache. Key is the decimal content id,
// value a string-encoded integer.
type ViewCounter interface {
	// Seed sets the counter (0 on content creation)
	Seed(ctx context.Context, contentID, value int64) error

	// Record counts one view. A missing key starts from persisted, so the result is persisted+1.
	Record(ctx context.Context, contentID, persisted int64) (int64, error)

	// Get returns 0 for a missing or non-integer key
	Get(ctx context.Context, contentID int64) (int64, error)

	// GetMany returns only the counters present in the cache
	GetMany(ctx context.Context, contentIDs []int64) (map[int64]int64, error)

	Delete(ctx context.Context, contentID int64) error
}

type viewCounter struct {
	cache cache.Service
}

func NewViewCounter(c cache.Service) ViewCounter {
	return &viewCounter{cache: c}
}

func viewKey(contentID int64) string {
	return strconv.FormatInt(contentID, 10)
}

func (v *viewCounter) Seed(ctx context.Context, contentID, value int64) error {
	return v.cache.SetString(ctx, viewKey(contentID), strconv.FormatInt(value, 10), 0)
}

func (v *viewCounter) Record(ctx context.Context, contentID, persisted int64) (int64, error) {
	key := viewKey(contentID)

	if _, err := v.cache.SetStringNX(ctx, key, strconv.FormatInt(persisted, 10)); err != nil {
		return 0, err
	}

	n, err := v.cache.Incr(ctx, key)
	if err == nil {
		return n, nil
	}
	if !isNotInteger(err) {
		return 0, err
	}

	// corrupted value: restart the counter at one
	if err := v.cache.SetString(ctx, key, "1", 0); err != nil {
		return 0, err
	}
	return 1, nil
}

func (v *viewCounter) Get(ctx context.Context, contentID int64) (int64, error) {
	val, ok, err := v.cache.GetString(ctx, viewKey(contentID))
	if err != nil || !ok {
		return 0, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, nil
	}
	return n, nil
}

func (v *viewCounter) GetMany(ctx context.Context, contentIDs []int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(contentIDs))
	if len(contentIDs) == 0 {
		return result, nil
	}

	keys := make([]string, len(contentIDs))
	for i, id := range contentIDs {
		keys[i] = viewKey(id)
	}
	vals, err := v.cache.MGet(ctx, keys...)
	if err != nil {
		return nil, err
	}
	for _, id := range contentIDs {
		raw, ok := vals[viewKey(id)]
		if !ok {
			continue
		}
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			result[id] = n
		}
	}
	return result, nil
}

func (v *viewCounter) Delete(ctx context.Context, contentID int64) error {
	return v.cache.Delete(ctx, viewKey(contentID))
}

func isNotInteger(err error) bool {
	return strings.Contains(err.Error(), "not an integer")
}
