package service

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/1000kkannoo/dnd-8th-4-backend/internal/common"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/domain"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/repository"
	pkglogger "github.com/1000kkannoo/dnd-8th-4-backend/pkg/logger"
)

type ContentService interface {
	CreateContent(ctx context.Context, email string, groupID int64, req *domain.CreateContentRequest, files []*multipart.FileHeader) (*domain.ContentResponse, error)
	GetContentDetail(ctx context.Context, email string, contentID int64) (*domain.ContentView, error)
	UpdateContent(ctx context.Context, email string, contentID int64, req *domain.UpdateContentRequest, files []*multipart.FileHeader) (*domain.ContentResponse, error)
	DeleteContent(ctx context.Context, email string, contentID int64) error
	ListGroupContents(ctx context.Context, email string, groupID int64, page int) ([]*domain.ContentView, *common.PageMeta, error)
	ListGroupsContents(ctx context.Context, email string, groupIDs []int64, page int) ([]*domain.ContentView, *common.PageMeta, error)
}

type contentService struct {
	users     repository.UserRepository
	groups    repository.GroupRepository
	contents  repository.ContentRepository
	comments  repository.CommentRepository
	emotions  *repository.EmotionRepository
	bookmarks repository.BookmarkRepository
	views     repository.ViewCounter
	images    ImageService
}

func NewContentService(
	users repository.UserRepository,
	groups repository.GroupRepository,
	contents repository.ContentRepository,
	comments repository.CommentRepository,
	emotions *repository.EmotionRepository,
	bookmarks repository.BookmarkRepository,
	views repository.ViewCounter,
	images ImageService,
) ContentService {
	return &contentService{
		users:     users,
		groups:    groups,
		contents:  contents,
		comments:  comments,
		emotions:  emotions,
		bookmarks: bookmarks,
		views:     views,
		images:    images,
	}
}

// CreateContent uploads the images, then stores content + images and bumps the group in one transaction
func (s *contentService) CreateContent(
	ctx context.Context,
	email string,
	groupID int64,
	req *domain.CreateContentRequest,
	files []*multipart.FileHeader,
) (*domain.ContentResponse, error) {
	if _, err := s.groups.FindByID(ctx, groupID); err != nil {
		return nil, err
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	link := req.ContentLink
	if link == "" {
		link = common.FirstLink(req.Content)
	}
	link, err = common.NormalizeContentLink(link)
	if err != nil {
		return nil, err
	}

	images, err := s.images.Upload(ctx, files)
	if err != nil {
		return nil, err
	}

	content := &domain.Content{
		Text:        req.Content,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ContentLink: link,
		UserID:      user.ID,
		GroupID:     groupID,
		Images:      images,
	}
	if err := s.contents.Create(ctx, content); err != nil {
		s.images.Delete(ctx, imageNames(images))
		return nil, fmt.Errorf("create content: %w", err)
	}

	if err := s.views.Seed(ctx, content.ID, 0); err != nil {
		repository.CacheDegraded("view_seed", err)
	}

	return content.ToResponse(), nil
}

// GetContentDetail records one view and returns the aggregated view
func (s *contentService) GetContentDetail(ctx context.Context, email string, contentID int64) (*domain.ContentView, error) {
	caller, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	content, err := s.contents.FindByID(ctx, contentID)
	if err != nil {
		return nil, err
	}

	views, err := s.views.Record(ctx, content.ID, content.Views)
	if err != nil {
		repository.CacheDegraded("view_record", err)
		views = content.Views
	}

	result, err := s.assemble(ctx, caller, []*domain.Content{content})
	if err != nil {
		return nil, err
	}
	result[0].Views = views
	return result[0], nil
}

// UpdateContent validates ownership and image names before touching storage or rows
func (s *contentService) UpdateContent(
	ctx context.Context,
	email string,
	contentID int64,
	req *domain.UpdateContentRequest,
	files []*multipart.FileHeader,
) (*domain.ContentResponse, error) {
	content, err := s.contents.FindByID(ctx, contentID)
	if err != nil {
		return nil, err
	}
	caller, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if content.UserID != caller.ID {
		return nil, fmt.Errorf("content %d: %w", contentID, common.ErrContentNotMatched)
	}

	removeNames, err := validateImageNames(content.Images, req.DeleteImageNames)
	if err != nil {
		return nil, err
	}

	link := req.ContentLink
	if link == "" {
		link = common.FirstLink(req.Content)
	}
	link, err = common.NormalizeContentLink(link)
	if err != nil {
		return nil, err
	}

	added, err := s.images.Upload(ctx, files)
	if err != nil {
		return nil, err
	}

	// persist the live counter into the views column
	if n, err := s.views.Get(ctx, content.ID); err != nil {
		repository.CacheDegraded("view_get", err)
	} else if n > content.Views {
		content.Views = n
	}

	content.Text = req.Content
	content.Latitude = req.Latitude
	content.Longitude = req.Longitude
	content.ContentLink = link

	if err := s.contents.Update(ctx, content, removeNames, added); err != nil {
		s.images.Delete(ctx, imageNames(added))
		return nil, fmt.Errorf("update content: %w", err)
	}

	// rows are committed; stale objects go last
	s.images.Delete(ctx, removeNames)

	updated, err := s.contents.FindByID(ctx, content.ID)
	if err != nil {
		return nil, err
	}
	return updated.ToResponse(), nil
}

func (s *contentService) DeleteContent(ctx context.Context, email string, contentID int64) error {
	content, err := s.contents.FindByID(ctx, contentID)
	if err != nil {
		return err
	}
	caller, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if content.UserID != caller.ID {
		return fmt.Errorf("content %d: %w", contentID, common.ErrContentNotMatched)
	}

	if n, err := s.views.Get(ctx, content.ID); err != nil {
		repository.CacheDegraded("view_get", err)
	} else if n > content.Views {
		if err := s.contents.UpdateViews(ctx, content.ID, n); err != nil {
			return err
		}
	}

	if err := s.contents.SoftDelete(ctx, content.ID); err != nil {
		return err
	}
	if err := s.views.Delete(ctx, content.ID); err != nil {
		repository.CacheDegraded("view_delete", err)
	}

	pkglogger.GetLogger().Info().
		Int64("content_id", content.ID).
		Int64("user_id", caller.ID).
		Msg("content deleted")
	return nil
}

func (s *contentService) ListGroupContents(ctx context.Context, email string, groupID int64, page int) ([]*domain.ContentView, *common.PageMeta, error) {
	if _, err := s.groups.FindByID(ctx, groupID); err != nil {
		return nil, nil, err
	}
	return s.list(ctx, email, []int64{groupID}, page)
}

func (s *contentService) ListGroupsContents(ctx context.Context, email string, groupIDs []int64, page int) ([]*domain.ContentView, *common.PageMeta, error) {
	if _, err := s.groups.FindByIDs(ctx, groupIDs); err != nil {
		return nil, nil, err
	}
	return s.list(ctx, email, groupIDs, page)
}

func (s *contentService) list(ctx context.Context, email string, groupIDs []int64, page int) ([]*domain.ContentView, *common.PageMeta, error) {
	if page < 1 {
		page = 1
	}
	caller, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	contents, total, err := s.contents.ListByGroupIDs(ctx, groupIDs, page, domain.ContentPageSize)
	if err != nil {
		return nil, nil, err
	}

	views, err := s.assemble(ctx, caller, contents)
	if err != nil {
		return nil, nil, err
	}
	return views, common.NewPageMeta(page, domain.ContentPageSize, total), nil
}

// assemble batch-loads children of the page: one query per child kind, one MGET for counters
func (s *contentService) assemble(ctx context.Context, caller *domain.User, contents []*domain.Content) ([]*domain.ContentView, error) {
	result := make([]*domain.ContentView, 0, len(contents))
	if len(contents) == 0 {
		return result, nil
	}

	ids := make([]int64, len(contents))
	userIDs := make([]int64, 0, len(contents))
	for i, c := range contents {
		ids[i] = c.ID
		userIDs = append(userIDs, c.UserID)
	}

	commentCounts, err := s.comments.CountByContentIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}

	emotions, err := s.emotions.ListByContentIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load emotions: %w", err)
	}
	for _, e := range emotions {
		userIDs = append(userIDs, e.UserID)
	}

	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	bookmarked, err := s.bookmarks.BookmarkedBy(ctx, caller.ID, ids)
	if err != nil {
		return nil, fmt.Errorf("load bookmarks: %w", err)
	}

	counters, err := s.views.GetMany(ctx, ids)
	if err != nil {
		repository.CacheDegraded("view_get_many", err)
		counters = map[int64]int64{}
	}

	byContent := groupEmotions(emotions, users)

	for _, c := range contents {
		view := &domain.ContentView{
			ID:            c.ID,
			Content:       c.Text,
			Latitude:      c.Latitude,
			Longitude:     c.Longitude,
			ContentLink:   c.ContentLink,
			GroupID:       c.GroupID,
			Images:        domain.ImagesToResponse(c.Images),
			CommentCount:  commentCounts[c.ID],
			Emotions:      byContent[c.ID],
			EmotionStatus: domain.EmotionStatusNone,
			Bookmarked:    bookmarked[c.ID],
			Views:         c.Views,
			CreatedAt:     c.CreatedAt,
		}
		if view.Emotions == nil {
			view.Emotions = []domain.EmotionResponse{}
		}
		view.EmotionCount = int64(len(view.Emotions))
		if n, ok := counters[c.ID]; ok {
			view.Views = n
		}
		if writer, ok := users[c.UserID]; ok {
			view.Writer = writer.ToResponse()
		}
		for _, e := range view.Emotions {
			if e.UserID == caller.ID {
				view.EmotionStatus = e.EmotionStatus
				break
			}
		}
		result = append(result, view)
	}
	return result, nil
}

// groupEmotions keeps per-content order; withdrawn users keep their emotion with an empty profile image
func groupEmotions(emotions []*domain.Emotion, users map[int64]*domain.User) map[int64][]domain.EmotionResponse {
	out := make(map[int64][]domain.EmotionResponse)
	for _, e := range emotions {
		resp := domain.EmotionResponse{
			ID:            e.ID,
			EmotionStatus: e.EmotionStatus,
			UserID:        e.UserID,
		}
		if u, ok := users[e.UserID]; ok {
			resp.ProfileImage = u.ProfileImageURL
		}
		out[e.ContentID] = append(out[e.ContentID], resp)
	}
	return out
}

// validateImageNames every name must belong to the content; duplicates collapse
func validateImageNames(images []domain.ContentImage, names []string) ([]string, error) {
	owned := make(map[string]struct{}, len(images))
	for _, img := range images {
		owned[img.ImageName] = struct{}{}
	}

	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := owned[name]; !ok {
			return nil, fmt.Errorf("image %q: %w", name, common.ErrImageNotFound)
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out, nil
}
