package repository

import (
	"context"
	"errors"

	"github.com/1000kkannoo/dnd-8th-4-backend/internal/domain"
	"gorm.io/gorm"
)

// EmotionRepository handles emotion (reaction) data operations
type EmotionRepository struct {
	db *gorm.DB
}

// NewEmotionRepository creates a new EmotionRepository
func NewEmotionRepository(db *gorm.DB) *EmotionRepository {
	return &EmotionRepository{db: db}
}

// Find returns the user's emotion on the content, or nil when there is none
func (r *EmotionRepository) Find(ctx context.Context, userID, contentID int64) (*domain.Emotion, error) {
	var emotion domain.Emotion
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND content_id = ?", userID, contentID).
		First(&emotion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &emotion, nil
}

func (r *EmotionRepository) Create(ctx context.Context, emotion *domain.Emotion) error {
	return r.db.WithContext(ctx).Create(emotion).Error
}

func (r *EmotionRepository) UpdateStatus(ctx context.Context, id int64, status int) error {
	return r.db.WithContext(ctx).
		Model(&domain.Emotion{}).
		Where("id = ?", id).
		Update("emotion_status", status).Error
}

func (r *EmotionRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Emotion{}, id).Error
}

// ListByContentIDs all emotions of the contents, oldest first
func (r *EmotionRepository) ListByContentIDs(ctx context.Context, contentIDs []int64) ([]*domain.Emotion, error) {
	var emotions []*domain.Emotion
	if len(contentIDs) == 0 {
		return emotions, nil
	}
	err := r.db.WithContext(ctx).
		Where("content_id IN ?", contentIDs).
		Order("id ASC").
		Find(&emotions).Error
	return emotions, err
}
