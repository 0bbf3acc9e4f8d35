package domain

import (
	"time"

	"gorm.io/gorm"
)

// CommentPageSize fixed page size of comment listings
const CommentPageSize = 10

// Comment comment on a content
type Comment struct {
	ID        int64          `gorm:"column:id;primaryKey;autoIncrement"`
	ContentID int64          `gorm:"column:content_id;index:idx_comment_content_created"`
	UserID    int64          `gorm:"column:user_id;index"`
	Note      string         `gorm:"column:note;size:1000"`
	StickerID *int64         `gorm:"column:sticker_id"`
	CreatedAt time.Time      `gorm:"column:created_at;index:idx_comment_content_created"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentLike like of a comment; one per (comment, user)
type CommentLike struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	CommentID int64     `gorm:"column:comment_id;uniqueIndex:idx_comment_like"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex:idx_comment_like"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}

// CreateCommentRequest body of POST /contents/:content_id/comments
type CreateCommentRequest struct {
	Note      string `json:"comment_note" binding:"required,max=1000"`
	StickerID *int64 `json:"sticker_id"`
}

// CommentResponse comment with its writer and the caller's like flag
type CommentResponse struct {
	ID        int64        `json:"id"`
	ContentID int64        `json:"content_id"`
	Note      string       `json:"comment_note"`
	StickerID *int64       `json:"sticker_id"`
	Writer    UserResponse `json:"writer"`
	LikeCount int64        `json:"like_count"`
	Liked     bool         `json:"liked"`
	CreatedAt time.Time    `json:"created_at"`
}

// CommentPageResponse comment page with the content's engagement summary
type CommentPageResponse struct {
	Comments     []CommentResponse `json:"comments"`
	CommentCount int64             `json:"comment_count"`
	EmotionCount int64             `json:"emotion_count"`
	Emotions     []EmotionResponse `json:"emotions"`
	Page         int               `json:"page"`
	HasNext      bool              `json:"has_next"`
}

// CommentLikeResponse result of POST /comments/:comment_id/like
type CommentLikeResponse struct {
	CommentID int64 `json:"comment_id"`
	Liked     bool  `json:"liked"`
}
