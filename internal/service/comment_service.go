package service

import (
	"context"
	"fmt"

	"github.com/1000kkannoo/dnd-8th-4-backend/internal/common"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/domain"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/repository"
	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/i18n"
	pkglogger "github.com/1000kkannoo/dnd-8th-4-backend/pkg/logger"
)

type CommentService interface {
	AddComment(ctx context.Context, email string, contentID int64, req *domain.CreateCommentRequest) (*domain.CommentResponse, error)
	ListComments(ctx context.Context, email string, contentID int64, page int) (*domain.CommentPageResponse, error)
	DeleteComment(ctx context.Context, email string, commentID int64) error
	ToggleCommentLike(ctx context.Context, email string, commentID int64) (*domain.CommentLikeResponse, error)
}

type commentService struct {
	users         repository.UserRepository
	contents      repository.ContentRepository
	repo          repository.CommentRepository
	emotions      *repository.EmotionRepository
	notifications NotificationService
}

func NewCommentService(
	users repository.UserRepository,
	contents repository.ContentRepository,
	repo repository.CommentRepository,
	emotions *repository.EmotionRepository,
	notifications NotificationService,
) CommentService {
	return &commentService{
		users:         users,
		contents:      contents,
		repo:          repo,
		emotions:      emotions,
		notifications: notifications,
	}
}

// AddComment stores the comment and notifies the content owner unless they wrote it
func (s *commentService) AddComment(ctx context.Context, email string, contentID int64, req *domain.CreateCommentRequest) (*domain.CommentResponse, error) {
	content, err := s.contents.FindByID(ctx, contentID)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ContentID: contentID,
		UserID:    user.ID,
		Note:      req.Note,
		StickerID: req.StickerID,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	if content.UserID != user.ID {
		// notifications are stored as rendered text in Korean only; the recipient's locale is unknown here
		msg := i18n.Default().T(i18n.LocaleKo, "notification.comment", user.Nickname)
		if err := s.notifications.Notify(ctx, content.UserID, domain.NotificationTypeComment, msg, contentID); err != nil {
			// the comment is already stored
			pkglogger.GetLogger().Warn().Err(err).Int64("content_id", contentID).Msg("comment notification failed")
		}
	}

	return &domain.CommentResponse{
		ID:        comment.ID,
		ContentID: comment.ContentID,
		Note:      comment.Note,
		StickerID: comment.StickerID,
		Writer:    user.ToResponse(),
		CreatedAt: comment.CreatedAt,
	}, nil
}

func (s *commentService) ListComments(ctx context.Context, email string, contentID int64, page int) (*domain.CommentPageResponse, error) {
	if page < 1 {
		page = 1
	}
	caller, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if _, err := s.contents.FindByID(ctx, contentID); err != nil {
		return nil, err
	}

	// one extra row tells whether a next page exists
	comments, err := s.repo.ListByContent(ctx, contentID, page, domain.CommentPageSize+1)
	if err != nil {
		return nil, err
	}
	hasNext := len(comments) > domain.CommentPageSize
	if hasNext {
		comments = comments[:domain.CommentPageSize]
	}

	commentIDs := make([]int64, len(comments))
	userIDs := make([]int64, 0, len(comments))
	for i, c := range comments {
		commentIDs[i] = c.ID
		userIDs = append(userIDs, c.UserID)
	}

	emotions, err := s.emotions.ListByContentIDs(ctx, []int64{contentID})
	if err != nil {
		return nil, err
	}
	for _, e := range emotions {
		userIDs = append(userIDs, e.UserID)
	}

	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	liked, err := s.repo.LikedBy(ctx, caller.ID, commentIDs)
	if err != nil {
		return nil, err
	}
	likeCounts, err := s.repo.LikeCounts(ctx, commentIDs)
	if err != nil {
		return nil, err
	}
	counts, err := s.repo.CountByContentIDs(ctx, []int64{contentID})
	if err != nil {
		return nil, err
	}

	resp := &domain.CommentPageResponse{
		Comments:     make([]domain.CommentResponse, 0, len(comments)),
		CommentCount: counts[contentID],
		Emotions:     groupEmotions(emotions, users)[contentID],
		Page:         page,
		HasNext:      hasNext,
	}
	if resp.Emotions == nil {
		resp.Emotions = []domain.EmotionResponse{}
	}
	resp.EmotionCount = int64(len(resp.Emotions))

	for _, c := range comments {
		item := domain.CommentResponse{
			ID:        c.ID,
			ContentID: c.ContentID,
			Note:      c.Note,
			StickerID: c.StickerID,
			LikeCount: likeCounts[c.ID],
			Liked:     liked[c.ID],
			CreatedAt: c.CreatedAt,
		}
		if u, ok := users[c.UserID]; ok {
			item.Writer = u.ToResponse()
		}
		resp.Comments = append(resp.Comments, item)
	}
	return resp, nil
}

func (s *commentService) DeleteComment(ctx context.Context, email string, commentID int64) error {
	comment, err := s.repo.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if comment.UserID != user.ID {
		return fmt.Errorf("comment %d: %w", commentID, common.ErrCommentNotMatched)
	}
	return s.repo.SoftDelete(ctx, commentID)
}

func (s *commentService) ToggleCommentLike(ctx context.Context, email string, commentID int64) (*domain.CommentLikeResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByID(ctx, commentID); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindLike(ctx, commentID, user.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := s.repo.DeleteLike(ctx, existing.ID); err != nil {
			return nil, err
		}
		return &domain.CommentLikeResponse{CommentID: commentID, Liked: false}, nil
	}

	if err := s.repo.CreateLike(ctx, &domain.CommentLike{CommentID: commentID, UserID: user.ID}); err != nil {
		return nil, err
	}
	return &domain.CommentLikeResponse{CommentID: commentID, Liked: true}, nil
}
