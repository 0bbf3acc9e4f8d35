package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/1000kkannoo/dnd-8th-4-backend/internal/domain"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/repository"
)

type BookmarkService interface {
	// ToggleBookmark adds the bookmark when absent, removes it otherwise
	ToggleBookmark(ctx context.Context, email string, contentID int64) (*domain.BookmarkToggleResponse, error)

	// ListBookmarks bookmarked content ids from the index, oldest first
	ListBookmarks(ctx context.Context, email string) (*domain.BookmarkListResponse, error)
}

type bookmarkService struct {
	users     repository.UserRepository
	contents  repository.ContentRepository
	bookmarks repository.BookmarkRepository
	index     repository.BookmarkIndex
}

func NewBookmarkService(
	users repository.UserRepository,
	contents repository.ContentRepository,
	bookmarks repository.BookmarkRepository,
	index repository.BookmarkIndex,
) BookmarkService {
	return &bookmarkService{users: users, contents: contents, bookmarks: bookmarks, index: index}
}

func (s *bookmarkService) ToggleBookmark(ctx context.Context, email string, contentID int64) (*domain.BookmarkToggleResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if _, err := s.contents.FindByID(ctx, contentID); err != nil {
		return nil, err
	}

	existing, err := s.bookmarks.Find(ctx, user.ID, contentID)
	if err != nil {
		return nil, fmt.Errorf("find bookmark: %w", err)
	}

	if existing != nil {
		if err := s.bookmarks.Delete(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("delete bookmark: %w", err)
		}
		s.syncIndex(ctx, user, "bookmark_remove", s.index.Remove(ctx, email, contentID))
		return &domain.BookmarkToggleResponse{ContentID: contentID, Bookmarked: false}, nil
	}

	if err := s.bookmarks.Create(ctx, &domain.Bookmark{UserID: user.ID, ContentID: contentID}); err != nil {
		return nil, fmt.Errorf("create bookmark: %w", err)
	}
	s.syncIndex(ctx, user, "bookmark_add", s.index.Add(ctx, email, contentID))
	return &domain.BookmarkToggleResponse{ContentID: contentID, Bookmarked: true}, nil
}

// syncIndex handles the outcome of an index write after the row change committed.
// A missing key is rebuilt from rows; any other failure drops the key.
func (s *bookmarkService) syncIndex(ctx context.Context, user *domain.User, op string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, repository.ErrIndexMissing) {
		ids, loadErr := s.bookmarks.ContentIDsByUser(ctx, user.ID)
		if loadErr == nil {
			ids, loadErr = s.liveContentIDs(ctx, ids)
		}
		if loadErr == nil {
			err = s.index.Rebuild(ctx, user.Email, ids)
		} else {
			err = loadErr
		}
		if err == nil {
			return
		}
	}

	repository.CacheDegraded(op, err)
	if dropErr := s.index.Drop(ctx, user.Email); dropErr != nil {
		repository.CacheDegraded("bookmark_drop", dropErr)
	}
}

func (s *bookmarkService) ListBookmarks(ctx context.Context, email string) (*domain.BookmarkListResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	load := func(ctx context.Context) ([]int64, error) {
		rows, err := s.bookmarks.ContentIDsByUser(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		return s.liveContentIDs(ctx, rows)
	}

	ids, err := s.index.List(ctx, email, load)
	if err != nil {
		repository.CacheDegraded("bookmark_list", err)
		rows, loadErr := load(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		ids = make([]string, 0, len(rows))
		for _, id := range rows {
			ids = append(ids, strconv.FormatInt(id, 10))
		}
	}
	// the index may still hold contents deleted after it was built
	ids, err = s.dropDeleted(ctx, ids)
	if err != nil {
		return nil, err
	}
	return &domain.BookmarkListResponse{ContentIDs: ids}, nil
}

// liveContentIDs filters ids down to contents that are not soft-deleted, keeping order
func (s *bookmarkService) liveContentIDs(ctx context.Context, ids []int64) ([]int64, error) {
	live, err := s.contents.ExistingIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("filter bookmarked contents: %w", err)
	}
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if live[id] {
			out = append(out, id)
		}
	}
	return out, nil
}

func (s *bookmarkService) dropDeleted(ctx context.Context, ids []string) ([]string, error) {
	parsed := make([]int64, 0, len(ids))
	for _, raw := range ids {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		parsed = append(parsed, id)
	}
	live, err := s.liveContentIDs(ctx, parsed)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(live))
	for _, id := range live {
		out = append(out, strconv.FormatInt(id, 10))
	}
	return out, nil
}
