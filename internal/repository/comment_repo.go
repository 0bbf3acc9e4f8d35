package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/1000kkannoo/dnd-8th-4-backend/internal/common"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/domain"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error

	// FindByID returns common.ErrCommentNotFound for missing or soft-deleted comments
	FindByID(ctx context.Context, id int64) (*domain.Comment, error)

	SoftDelete(ctx context.Context, id int64) error

	// ListByContent page of comments, newest first; page starts at 1
	ListByContent(ctx context.Context, contentID int64, page, limit int) ([]*domain.Comment, error)

	// CountByContentIDs live comment count per content
	CountByContentIDs(ctx context.Context, contentIDs []int64) (map[int64]int64, error)

	// FindLike returns nil when the user has not liked the comment
	FindLike(ctx context.Context, commentID, userID int64) (*domain.CommentLike, error)
	CreateLike(ctx context.Context, like *domain.CommentLike) error
	DeleteLike(ctx context.Context, id int64) error

	// LikeCounts like count per comment
	LikeCounts(ctx context.Context, commentIDs []int64) (map[int64]int64, error)

	// LikedBy which of the comments the user liked
	LikedBy(ctx context.Context, userID int64, commentIDs []int64) (map[int64]bool, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment domain.Comment
	err := r.db.WithContext(ctx).First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("comment %d: %w", id, common.ErrCommentNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Comment{}, id).Error
}

func (r *commentRepository) ListByContent(ctx context.Context, contentID int64, page, limit int) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	err := r.db.WithContext(ctx).
		Where("content_id = ?", contentID).
		Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

type idCount struct {
	ID    int64
	Count int64
}

func (r *commentRepository) CountByContentIDs(ctx context.Context, contentIDs []int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(contentIDs))
	if len(contentIDs) == 0 {
		return result, nil
	}

	var rows []idCount
	err := r.db.WithContext(ctx).
		Model(&domain.Comment{}).
		Select("content_id AS id, COUNT(*) AS count").
		Where("content_id IN ?", contentIDs).
		Group("content_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.ID] = row.Count
	}
	return result, nil
}

func (r *commentRepository) FindLike(ctx context.Context, commentID, userID int64) (*domain.CommentLike, error) {
	var like domain.CommentLike
	err := r.db.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *commentRepository) CreateLike(ctx context.Context, like *domain.CommentLike) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *commentRepository) DeleteLike(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.CommentLike{}, id).Error
}

func (r *commentRepository) LikeCounts(ctx context.Context, commentIDs []int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(commentIDs))
	if len(commentIDs) == 0 {
		return result, nil
	}

	var rows []idCount
	err := r.db.WithContext(ctx).
		Model(&domain.CommentLike{}).
		Select("comment_id AS id, COUNT(*) AS count").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.ID] = row.Count
	}
	return result, nil
}

func (r *commentRepository) LikedBy(ctx context.Context, userID int64, commentIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(commentIDs))
	if len(commentIDs) == 0 {
		return result, nil
	}

	var liked []int64
	err := r.db.WithContext(ctx).
		Model(&domain.CommentLike{}).
		Where("user_id = ? AND comment_id IN ?", userID, commentIDs).
		Pluck("comment_id", &liked).Error
	if err != nil {
		return nil, err
	}
	for _, id := range liked {
		result[id] = true
	}
	return result, nil
}
