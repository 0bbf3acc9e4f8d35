package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/1000kkannoo/dnd-8th-4-backend/internal/common"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/domain"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/repository"
)

type GroupService interface {
	// CreateGroup validates the name length and makes the caller host and first member
	CreateGroup(ctx context.Context, email string, req *domain.CreateGroupRequest) (*domain.GroupResponse, error)

	// JoinGroup is idempotent
	JoinGroup(ctx context.Context, email string, groupID int64) (*domain.GroupResponse, error)

	GetGroupDetail(ctx context.Context, groupID int64) (*domain.GroupDetailResponse, error)

	// ListMyGroups returns common.ErrNoJoinedGroups when the caller joined none
	ListMyGroups(ctx context.Context, email string) ([]domain.GroupResponse, error)
}

type groupService struct {
	users  repository.UserRepository
	groups repository.GroupRepository
}

func NewGroupService(users repository.UserRepository, groups repository.GroupRepository) GroupService {
	return &groupService{users: users, groups: groups}
}

// validateGroupName length counted in characters, not bytes
func validateGroupName(name string) error {
	n := utf8.RuneCountInString(name)
	switch {
	case n < domain.GroupNameMinLength:
		return common.ErrGroupNameTooShort
	case n > domain.GroupNameMaxLength:
		return fmt.Errorf("%d characters: %w", n, common.ErrGroupNameTooLong)
	}
	return nil
}

func (s *groupService) CreateGroup(ctx context.Context, email string, req *domain.CreateGroupRequest) (*domain.GroupResponse, error) {
	if err := validateGroupName(req.Name); err != nil {
		return nil, err
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	group := &domain.Group{
		Name:       req.Name,
		Note:       req.Note,
		ImageURL:   req.ImageURL,
		HostUserID: user.ID,
	}
	if err := s.groups.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}

	resp := group.ToResponse()
	return &resp, nil
}

func (s *groupService) JoinGroup(ctx context.Context, email string, groupID int64) (*domain.GroupResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if _, err := s.groups.Join(ctx, user.ID, groupID); err != nil {
		return nil, fmt.Errorf("join group: %w", err)
	}

	resp := group.ToResponse()
	return &resp, nil
}

func (s *groupService) GetGroupDetail(ctx context.Context, groupID int64) (*domain.GroupDetailResponse, error) {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	memberships, err := s.groups.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]int64, 0, len(memberships)+1)
	userIDs = append(userIDs, group.HostUserID)
	for _, m := range memberships {
		userIDs = append(userIDs, m.UserID)
	}
	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	detail := &domain.GroupDetailResponse{
		GroupResponse: group.ToResponse(),
		Members:       make([]domain.GroupMemberResponse, 0, len(memberships)),
	}
	if host, ok := users[group.HostUserID]; ok {
		detail.Host = host.ToResponse()
	}
	for _, m := range memberships {
		u, ok := users[m.UserID]
		if !ok {
			continue // withdrawn
		}
		detail.Members = append(detail.Members, domain.GroupMemberResponse{
			UserResponse: u.ToResponse(),
			JoinedAt:     m.CreatedAt,
		})
	}
	return detail, nil
}

func (s *groupService) ListMyGroups(ctx context.Context, email string) ([]domain.GroupResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	groups, err := s.groups.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("user %d: %w", user.ID, common.ErrNoJoinedGroups)
	}

	out := make([]domain.GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.ToResponse())
	}
	return out, nil
}
