package service

import (
	"context"
	"fmt"

	"github.com/1000kkannoo/dnd-8th-4-backend/internal/common"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/domain"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/repository"
	pkglogger "github.com/1000kkannoo/dnd-8th-4-backend/pkg/logger"
)

type NotificationService interface {
	// Notify stores a notification and raises the recipient's is_new_notification flag
	Notify(ctx context.Context, userID int64, notificationType, message string, contentID int64) error

	// List returns a page, newest first, and clears the caller's is_new_notification flag
	List(ctx context.Context, email string, page int) ([]*domain.Notification, *common.PageMeta, error)

	MarkAsRead(ctx context.Context, email string, id int64) error
}

type notificationService struct {
	users repository.UserRepository
	repo  *repository.NotificationRepository
}

func NewNotificationService(users repository.UserRepository, repo *repository.NotificationRepository) NotificationService {
	return &notificationService{users: users, repo: repo}
}

func (s *notificationService) Notify(ctx context.Context, userID int64, notificationType, message string, contentID int64) error {
	n := &domain.Notification{
		UserID:    userID,
		Type:      notificationType,
		Message:   message,
		ContentID: contentID,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	if err := s.users.SetNewNotification(ctx, userID, true); err != nil {
		return fmt.Errorf("flag user %d: %w", userID, err)
	}
	return nil
}

func (s *notificationService) List(ctx context.Context, email string, page int) ([]*domain.Notification, *common.PageMeta, error) {
	if page < 1 {
		page = 1
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	items, total, err := s.repo.GetList(ctx, user.ID, page, domain.NotificationPageSize)
	if err != nil {
		return nil, nil, err
	}

	if user.IsNewNotification {
		if err := s.users.SetNewNotification(ctx, user.ID, false); err != nil {
			pkglogger.GetLogger().Warn().Err(err).Int64("user_id", user.ID).Msg("clear notification flag failed")
		}
	}

	return items, common.NewPageMeta(page, domain.NotificationPageSize, total), nil
}

// MarkAsRead someone else's notification reads as not found
func (s *notificationService) MarkAsRead(ctx context.Context, email string, id int64) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if n.UserID != user.ID {
		return fmt.Errorf("notification %d: %w", id, common.ErrNotificationNotFound)
	}
	return s.repo.MarkAsRead(ctx, id)
}
