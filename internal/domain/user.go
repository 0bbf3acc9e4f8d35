package domain

import (
	"time"

	"gorm.io/gorm"
)

// User diary member. The caller is identified by Email (JWT claim).
type User struct {
	ID                int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email             string         `gorm:"column:email;size:255;uniqueIndex" json:"email"`
	Name              string         `gorm:"column:name;size:50" json:"name"`
	Nickname          string         `gorm:"column:nickname;size:50" json:"nickname"`
	PhoneNumber       string         `gorm:"column:phone_number;size:20" json:"phone_number,omitempty"`
	ProfileImageURL   string         `gorm:"column:profile_image_url;size:1024" json:"profile_image_url"`
	MainLevel         int            `gorm:"column:main_level;default:1" json:"main_level"`
	SubLevel          int            `gorm:"column:sub_level;default:0" json:"sub_level"`
	IsNewNotification bool           `gorm:"column:is_new_notification;default:false" json:"is_new_notification"`
	CreatedAt         time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse public profile embedded in other payloads
type UserResponse struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Nickname     string `json:"nickname"`
	ProfileImage string `json:"profile_image"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Nickname:     u.Nickname,
		ProfileImage: u.ProfileImageURL,
	}
}
