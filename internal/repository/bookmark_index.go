package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/cache"
)

// ErrIndexMissing the user's index key does not exist and must be rebuilt
var ErrIndexMissing = errors.New("bookmark index missing")

// BookmarkLoader reads the authoritative bookmarked content ids of the user
type BookmarkLoader func(ctx context.Context) ([]int64, error)

// BookmarkIndex per-user list of bookmarked content ids, key "bookmark<email>".
// Derived from bookmark rows; a missing key is rebuilt on List.
type BookmarkIndex interface {
	// Add appends the id unless present; ErrIndexMissing when the key does not exist
	Add(ctx context.Context, email string, contentID int64) error

	// Remove rewrites the list without the id (DEL + RPUSH in one MULTI block);
	// ErrIndexMissing when the key does not exist
	Remove(ctx context.Context, email string, contentID int64) error

	// List returns the ids, rebuilding from load when the key is missing
	List(ctx context.Context, email string, load BookmarkLoader) ([]string, error)

	// Rebuild replaces the list with ids, oldest first
	Rebuild(ctx context.Context, email string, ids []int64) error

	// Drop deletes the key so the next List rebuilds it
	Drop(ctx context.Context, email string) error
}

type bookmarkIndex struct {
	cache cache.Service
}

func NewBookmarkIndex(c cache.Service) BookmarkIndex {
	return &bookmarkIndex{cache: c}
}

func bookmarkKey(email string) string {
	return "bookmark" + email
}

func (b *bookmarkIndex) Add(ctx context.Context, email string, contentID int64) error {
	key := bookmarkKey(email)
	ids, err := b.current(ctx, key)
	if err != nil {
		return err
	}

	id := strconv.FormatInt(contentID, 10)
	if slices.Contains(ids, id) {
		return nil
	}
	return b.cache.ListPush(ctx, key, id)
}

func (b *bookmarkIndex) Remove(ctx context.Context, email string, contentID int64) error {
	key := bookmarkKey(email)
	ids, err := b.current(ctx, key)
	if err != nil {
		return err
	}

	id := strconv.FormatInt(contentID, 10)
	remaining := slices.DeleteFunc(ids, func(s string) bool { return s == id })
	return b.cache.ReplaceList(ctx, key, remaining)
}

func (b *bookmarkIndex) List(ctx context.Context, email string, load BookmarkLoader) ([]string, error) {
	key := bookmarkKey(email)
	ids, err := b.current(ctx, key)
	if err == nil {
		return ids, nil
	}
	if !errors.Is(err, ErrIndexMissing) {
		return nil, err
	}

	rows, err := load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookmarks: %w", err)
	}
	if err := b.Rebuild(ctx, email, rows); err != nil {
		return nil, err
	}
	return formatIDs(rows), nil
}

func (b *bookmarkIndex) Rebuild(ctx context.Context, email string, ids []int64) error {
	bookmarkIndexRebuildsTotal.Inc()
	return b.cache.ReplaceList(ctx, bookmarkKey(email), formatIDs(ids))
}

func (b *bookmarkIndex) Drop(ctx context.Context, email string) error {
	return b.cache.Delete(ctx, bookmarkKey(email))
}

// current returns ErrIndexMissing when the key does not exist
func (b *bookmarkIndex) current(ctx context.Context, key string) ([]string, error) {
	exists, err := b.cache.Exists(ctx, key)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrIndexMissing
	}
	return b.cache.ListRange(ctx, key)
}

func formatIDs(ids []int64) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, strconv.FormatInt(id, 10))
	}
	return out
}
