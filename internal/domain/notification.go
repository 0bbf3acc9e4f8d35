package domain

import "time"

// Notification types
const (
	NotificationTypeComment = "comment"
)

// NotificationPageSize fixed page size of notification listings
const NotificationPageSize = 20

// Notification represents a user notification (알림)
type Notification struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"column:user_id;index" json:"user_id"`
	Type      string    `gorm:"column:type;size:20" json:"type"`
	Message   string    `gorm:"column:message;size:255" json:"message"`
	ContentID int64     `gorm:"column:content_id" json:"content_id"`
	IsRead    bool      `gorm:"column:is_read;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
