package repository

import (
	"context"
	"errors"

	"github.com/1000kkannoo/dnd-8th-4-backend/internal/domain"
	"gorm.io/gorm"
)

// BookmarkRepository authoritative bookmark rows
type BookmarkRepository interface {
	// Find returns nil when the user has not bookmarked the content
	Find(ctx context.Context, userID, contentID int64) (*domain.Bookmark, error)
	Create(ctx context.Context, bookmark *domain.Bookmark) error
	Delete(ctx context.Context, id int64) error

	// ContentIDsByUser bookmarked content ids, oldest bookmark first
	ContentIDsByUser(ctx context.Context, userID int64) ([]int64, error)

	// BookmarkedBy which of the contents the user bookmarked
	BookmarkedBy(ctx context.Context, userID int64, contentIDs []int64) (map[int64]bool, error)
}

type bookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

func (r *bookmarkRepository) Find(ctx context.Context, userID, contentID int64) (*domain.Bookmark, error) {
	var bookmark domain.Bookmark
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND content_id = ?", userID, contentID).
		First(&bookmark).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bookmark, nil
}

func (r *bookmarkRepository) Create(ctx context.Context, bookmark *domain.Bookmark) error {
	return r.db.WithContext(ctx).Create(bookmark).Error
}

func (r *bookmarkRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Bookmark{}, id).Error
}

func (r *bookmarkRepository) ContentIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&domain.Bookmark{}).
		Where("user_id = ?", userID).
		Order("id ASC").
		Pluck("content_id", &ids).Error
	return ids, err
}

func (r *bookmarkRepository) BookmarkedBy(ctx context.Context, userID int64, contentIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(contentIDs))
	if len(contentIDs) == 0 {
		return result, nil
	}

	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&domain.Bookmark{}).
		Where("user_id = ? AND content_id IN ?", userID, contentIDs).
		Pluck("content_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}
