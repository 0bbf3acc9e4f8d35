package service

import (
	"context"
	"fmt"

	"github.com/1000kkannoo/dnd-8th-4-backend/internal/common"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/domain"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/repository"
)

// EmotionService reactions on contents
type EmotionService struct {
	users    repository.UserRepository
	contents repository.ContentRepository
	emotions *repository.EmotionRepository
}

// NewEmotionService creates a new EmotionService
func NewEmotionService(users repository.UserRepository, contents repository.ContentRepository, emotions *repository.EmotionRepository) *EmotionService {
	return &EmotionService{users: users, contents: contents, emotions: emotions}
}

// React no record → insert; same status → removed (EmotionStatusNone); other status → updated
func (s *EmotionService) React(ctx context.Context, email string, contentID int64, status int) (*domain.EmotionResult, error) {
	if status < 0 || status > domain.EmotionStatusMax {
		return nil, fmt.Errorf("emotion status %d: %w", status, common.ErrInvalidInput)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if _, err := s.contents.FindByID(ctx, contentID); err != nil {
		return nil, err
	}

	existing, err := s.emotions.Find(ctx, user.ID, contentID)
	if err != nil {
		return nil, fmt.Errorf("find emotion: %w", err)
	}

	result := &domain.EmotionResult{ContentID: contentID, EmotionStatus: status}
	switch {
	case existing == nil:
		err = s.emotions.Create(ctx, &domain.Emotion{ContentID: contentID, UserID: user.ID, EmotionStatus: status})
	case existing.EmotionStatus == status:
		err = s.emotions.Delete(ctx, existing.ID)
		result.EmotionStatus = domain.EmotionStatusNone
	default:
		err = s.emotions.UpdateStatus(ctx, existing.ID, status)
	}
	if err != nil {
		return nil, fmt.Errorf("save emotion: %w", err)
	}
	return result, nil
}
