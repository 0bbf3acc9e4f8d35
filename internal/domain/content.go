package domain

import (
	"time"

	"gorm.io/gorm"
)

// ContentPageSize fixed page size of content listings
const ContentPageSize = 10

// EmotionStatusNone caller has not reacted to the content
const EmotionStatusNone = -1

// Content diary post. Views holds the last counter value persisted from the cache.
type Content struct {
	ID          int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Text        string         `gorm:"column:content;type:text" json:"content"`
	Latitude    *float64       `gorm:"column:latitude" json:"latitude"`
	Longitude   *float64       `gorm:"column:longitude" json:"longitude"`
	Views       int64          `gorm:"column:views;default:0" json:"views"`
	ContentLink string         `gorm:"column:content_link;size:1024" json:"content_link"`
	UserID      int64          `gorm:"column:user_id;index" json:"user_id"`
	GroupID     int64          `gorm:"column:group_id;index:idx_group_created" json:"group_id"`
	Images      []ContentImage `gorm:"foreignKey:ContentID" json:"images"`
	CreatedAt   time.Time      `gorm:"column:created_at;index:idx_group_created" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Content) TableName() string {
	return "contents"
}

// ContentImage image attached to a content. ImageName is the storage key.
type ContentImage struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ContentID int64  `gorm:"column:content_id;index" json:"content_id"`
	ImageName string `gorm:"column:image_name;size:255;uniqueIndex" json:"image_name"`
	ImageURL  string `gorm:"column:image_url;size:1024" json:"image_url"`
}

func (ContentImage) TableName() string {
	return "content_images"
}

// CreateContentRequest multipart form of POST /groups/:group_id/contents (files under "images")
type CreateContentRequest struct {
	Content     string   `form:"content" binding:"required,max=5000"`
	Latitude    *float64 `form:"latitude" binding:"omitempty,latitude"`
	Longitude   *float64 `form:"longitude" binding:"omitempty,longitude"`
	ContentLink string   `form:"content_link"`
}

// UpdateContentRequest multipart form of PUT /contents/:content_id
type UpdateContentRequest struct {
	Content          string   `form:"content" binding:"required,max=5000"`
	Latitude         *float64 `form:"latitude" binding:"omitempty,latitude"`
	Longitude        *float64 `form:"longitude" binding:"omitempty,longitude"`
	ContentLink      string   `form:"content_link"`
	DeleteImageNames []string `form:"delete_image_names"`
}

// ImageResponse image of a content view
type ImageResponse struct {
	ImageName string `json:"image_name"`
	ImageURL  string `json:"image_url"`
}

// ContentResponse result of create/update
type ContentResponse struct {
	ID          int64           `json:"id"`
	Content     string          `json:"content"`
	Latitude    *float64        `json:"latitude"`
	Longitude   *float64        `json:"longitude"`
	ContentLink string          `json:"content_link"`
	GroupID     int64           `json:"group_id"`
	UserID      int64           `json:"user_id"`
	Images      []ImageResponse `json:"images"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ContentView aggregated read model of a content
type ContentView struct {
	ID            int64             `json:"id"`
	Content       string            `json:"content"`
	Latitude      *float64          `json:"latitude"`
	Longitude     *float64          `json:"longitude"`
	ContentLink   string            `json:"content_link"`
	GroupID       int64             `json:"group_id"`
	Writer        UserResponse      `json:"writer"`
	Images        []ImageResponse   `json:"images"`
	CommentCount  int64             `json:"comment_count"`
	EmotionCount  int64             `json:"emotion_count"`
	Emotions      []EmotionResponse `json:"emotions"`
	EmotionStatus int               `json:"emotion_status"`
	Bookmarked    bool              `json:"bookmarked"`
	Views         int64             `json:"views"`
	CreatedAt     time.Time         `json:"created_at"`
}

// ToResponse converts Content to ContentResponse
func (c *Content) ToResponse() *ContentResponse {
	return &ContentResponse{
		ID:          c.ID,
		Content:     c.Text,
		Latitude:    c.Latitude,
		Longitude:   c.Longitude,
		ContentLink: c.ContentLink,
		GroupID:     c.GroupID,
		UserID:      c.UserID,
		Images:      ImagesToResponse(c.Images),
		CreatedAt:   c.CreatedAt,
	}
}

// ImagesToResponse never returns nil so the payload is [] rather than null
func ImagesToResponse(images []ContentImage) []ImageResponse {
	out := make([]ImageResponse, 0, len(images))
	for _, img := range images {
		out = append(out, ImageResponse{ImageName: img.ImageName, ImageURL: img.ImageURL})
	}
	return out
}
