package domain

import "time"

// Emotion status codes are 0..EmotionStatusMax
const EmotionStatusMax = 10

// Emotion reaction of a user to a content; one per (user, content)
type Emotion struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ContentID     int64     `gorm:"column:content_id;uniqueIndex:idx_emotion_user_content;index"`
	UserID        int64     `gorm:"column:user_id;uniqueIndex:idx_emotion_user_content"`
	EmotionStatus int       `gorm:"column:emotion_status"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (Emotion) TableName() string {
	return "emotions"
}

// EmotionRequest body of PUT /contents/:content_id/emotion
type EmotionRequest struct {
	EmotionStatus *int `json:"emotion_status" binding:"required,min=0,max=10"`
}

// EmotionResponse emotion entry of a content view
type EmotionResponse struct {
	ID            int64  `json:"id"`
	EmotionStatus int    `json:"emotion_status"`
	ProfileImage  string `json:"profile_image"`
	UserID        int64  `json:"user_id"`
}

// EmotionResult caller's status after a reaction; EmotionStatusNone when toggled off
type EmotionResult struct {
	ContentID     int64 `json:"content_id"`
	EmotionStatus int   `json:"emotion_status"`
}
