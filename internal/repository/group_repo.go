package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/1000kkannoo/dnd-8th-4-backend/internal/common"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GroupRepository interface {
	// Create inserts the group and the host's membership in one transaction
	Create(ctx context.Context, group *domain.Group) error

	FindByID(ctx context.Context, id int64) (*domain.Group, error)

	// FindByIDs returns common.ErrGroupNotFound unless every id exists
	FindByIDs(ctx context.Context, ids []int64) ([]*domain.Group, error)

	// Join is idempotent; joined reports whether a new membership was created
	Join(ctx context.Context, userID, groupID int64) (joined bool, err error)

	ListMembers(ctx context.Context, groupID int64) ([]*domain.UserJoinGroup, error)

	// ListByUser groups the user joined, most recently updated first
	ListByUser(ctx context.Context, userID int64) ([]*domain.Group, error)
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(ctx context.Context, group *domain.Group) error {
	if group.RecentUpdatedAt.IsZero() {
		group.RecentUpdatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		return tx.Create(&domain.UserJoinGroup{UserID: group.HostUserID, GroupID: group.ID}).Error
	})
}

func (r *groupRepository) FindByID(ctx context.Context, id int64) (*domain.Group, error) {
	var group domain.Group
	err := r.db.WithContext(ctx).First(&group, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("group %d: %w", id, common.ErrGroupNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) FindByIDs(ctx context.Context, ids []int64) ([]*domain.Group, error) {
	unique := uniqueIDs(ids)
	if len(unique) == 0 {
		return nil, fmt.Errorf("no group ids: %w", common.ErrGroupNotFound)
	}

	var groups []*domain.Group
	if err := r.db.WithContext(ctx).Where("id IN ?", unique).Find(&groups).Error; err != nil {
		return nil, err
	}
	if len(groups) != len(unique) {
		return nil, fmt.Errorf("groups %v: %w", unique, common.ErrGroupNotFound)
	}
	return groups, nil
}

func (r *groupRepository) Join(ctx context.Context, userID, groupID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&domain.UserJoinGroup{UserID: userID, GroupID: groupID})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *groupRepository) ListMembers(ctx context.Context, groupID int64) ([]*domain.UserJoinGroup, error) {
	var members []*domain.UserJoinGroup
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at ASC, id ASC").
		Find(&members).Error
	return members, err
}

func (r *groupRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Group, error) {
	var groups []*domain.Group
	err := r.db.WithContext(ctx).
		Joins("JOIN user_join_groups ujg ON ujg.group_id = diary_groups.id").
		Where("ujg.user_id = ?", userID).
		Order("diary_groups.recent_updated_at DESC, diary_groups.id DESC").
		Find(&groups).Error
	return groups, err
}

// uniqueIDs drops duplicates, keeping first-seen order
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
