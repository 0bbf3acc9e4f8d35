package service

import (
	"context"

	"github.com/1000kkannoo/dnd-8th-4-backend/internal/domain"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/repository"
	pkglogger "github.com/1000kkannoo/dnd-8th-4-backend/pkg/logger"
)

// UserService account lifecycle of the caller
type UserService struct {
	users repository.UserRepository
	index repository.BookmarkIndex
}

// NewUserService creates a new UserService
func NewUserService(users repository.UserRepository, index repository.BookmarkIndex) *UserService {
	return &UserService{users: users, index: index}
}

// GetMe profile of the caller
func (s *UserService) GetMe(ctx context.Context, email string) (*domain.User, error) {
	return s.users.FindByEmail(ctx, email)
}

// Withdraw soft-deletes the caller; later lookups by email fail with ErrUserNotFound
func (s *UserService) Withdraw(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if err := s.users.SoftDelete(ctx, user.ID); err != nil {
		return err
	}

	if err := s.index.Drop(ctx, email); err != nil {
		repository.CacheDegraded("bookmark_drop", err)
	}

	pkglogger.GetLogger().Info().Int64("user_id", user.ID).Msg("user withdrawn")
	return nil
}
