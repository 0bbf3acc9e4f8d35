package domain

import "time"

// Bookmark presence of a row means the user bookmarked the content
type Bookmark struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex:idx_bookmark_user_content"`
	ContentID int64     `gorm:"column:content_id;uniqueIndex:idx_bookmark_user_content;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

// BookmarkToggleResponse result of POST /contents/:content_id/bookmark
type BookmarkToggleResponse struct {
	ContentID  int64 `json:"content_id"`
	Bookmarked bool  `json:"bookmarked"`
}

// BookmarkListResponse bookmarked content ids, oldest first
type BookmarkListResponse struct {
	ContentIDs []string `json:"content_ids"`
}
