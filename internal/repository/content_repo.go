package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/1000kkannoo/dnd-8th-4-backend/internal/common"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/domain"
	"gorm.io/gorm"
)

type ContentRepository interface {
	// Create inserts the content with its images and bumps the group's recent_updated_at, atomically
	Create(ctx context.Context, content *domain.Content) error

	// FindByID loads a live content with its images
	FindByID(ctx context.Context, id int64) (*domain.Content, error)

	// Update saves content fields, drops images named in removeNames and inserts addImages, atomically
	Update(ctx context.Context, content *domain.Content, removeNames []string, addImages []domain.ContentImage) error

	// UpdateViews persists the view counter value
	UpdateViews(ctx context.Context, id, views int64) error

	SoftDelete(ctx context.Context, id int64) error

	// ListByGroupIDs page of contents, newest first; page starts at 1
	ListByGroupIDs(ctx context.Context, groupIDs []int64, page, limit int) ([]*domain.Content, int64, error)

	// ExistingIDs filters ids down to live contents
	ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(ctx context.Context, content *domain.Content) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// images are inserted through the association
		if err := tx.Create(content).Error; err != nil {
			return fmt.Errorf("insert content: %w", err)
		}

		result := tx.Model(&domain.Group{}).
			Where("id = ?", content.GroupID).
			Update("recent_updated_at", time.Now())
		if result.Error != nil {
			return fmt.Errorf("bump group: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("group %d: %w", content.GroupID, common.ErrGroupNotFound)
		}
		return nil
	})
}

func (r *contentRepository) FindByID(ctx context.Context, id int64) (*domain.Content, error) {
	var content domain.Content
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&content, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("content %d: %w", id, common.ErrContentNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *contentRepository) Update(ctx context.Context, content *domain.Content, removeNames []string, addImages []domain.ContentImage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(removeNames) > 0 {
			err := tx.Where("content_id = ? AND image_name IN ?", content.ID, removeNames).
				Delete(&domain.ContentImage{}).Error
			if err != nil {
				return fmt.Errorf("delete images: %w", err)
			}
		}

		if len(addImages) > 0 {
			for i := range addImages {
				addImages[i].ContentID = content.ID
			}
			if err := tx.Create(&addImages).Error; err != nil {
				return fmt.Errorf("insert images: %w", err)
			}
		}

		err := tx.Model(content).
			Select("content", "latitude", "longitude", "content_link", "views", "updated_at").
			Omit("Images").
			Updates(content).Error
		if err != nil {
			return fmt.Errorf("update content: %w", err)
		}
		return nil
	})
}

func (r *contentRepository) UpdateViews(ctx context.Context, id, views int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Content{}).
		Where("id = ?", id).
		UpdateColumn("views", views).Error
}

func (r *contentRepository) SoftDelete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Content{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("content %d: %w", id, common.ErrContentNotFound)
	}
	return nil
}

func (r *contentRepository) ListByGroupIDs(ctx context.Context, groupIDs []int64, page, limit int) ([]*domain.Content, int64, error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Content{}).Where("group_id IN ?", groupIDs)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contents []*domain.Content
	offset := (page - 1) * limit
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("group_id IN ?", groupIDs).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&contents).Error
	if err != nil {
		return nil, 0, err
	}
	return contents, total, nil
}

func (r *contentRepository) ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var found []int64
	if err := r.db.WithContext(ctx).Model(&domain.Content{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	for _, id := range found {
		result[id] = true
	}
	return result, nil
}
