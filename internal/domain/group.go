package domain

import "time"

// Group name length bounds, counted in characters
const (
	GroupNameMinLength = 1
	GroupNameMaxLength = 12
)

// Group diary group (그룹). RecentUpdatedAt is bumped whenever content is posted.
type Group struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"column:name;size:48" json:"name"`
	Note            string    `gorm:"column:note;size:255" json:"note"`
	ImageURL        string    `gorm:"column:image_url;size:1024" json:"image_url"`
	HostUserID      int64     `gorm:"column:host_user_id;index" json:"host_user_id"`
	RecentUpdatedAt time.Time `gorm:"column:recent_updated_at" json:"recent_updated_at"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// "groups" is reserved in MySQL 8
func (Group) TableName() string {
	return "diary_groups"
}

// UserJoinGroup membership of a user in a group
type UserJoinGroup struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex:idx_user_group"`
	GroupID   int64     `gorm:"column:group_id;uniqueIndex:idx_user_group;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (UserJoinGroup) TableName() string {
	return "user_join_groups"
}

// CreateGroupRequest request body of POST /groups
type CreateGroupRequest struct {
	Name     string `json:"group_name"`
	Note     string `json:"group_note" binding:"max=255"`
	ImageURL string `json:"group_image_url" binding:"omitempty,url"`
}

// GroupResponse group summary
type GroupResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"group_name"`
	Note            string    `json:"group_note"`
	ImageURL        string    `json:"group_image_url"`
	HostUserID      int64     `json:"host_user_id"`
	RecentUpdatedAt time.Time `json:"recent_updated_at"`
	CreatedAt       time.Time `json:"created_at"`
}

// GroupMemberResponse member of a group with its join time
type GroupMemberResponse struct {
	UserResponse
	JoinedAt time.Time `json:"joined_at"`
}

// GroupDetailResponse group with host and members
type GroupDetailResponse struct {
	GroupResponse
	Host    UserResponse          `json:"host"`
	Members []GroupMemberResponse `json:"members"`
}

// ToResponse converts Group to GroupResponse
func (g *Group) ToResponse() GroupResponse {
	return GroupResponse{
		ID:              g.ID,
		Name:            g.Name,
		Note:            g.Note,
		ImageURL:        g.ImageURL,
		HostUserID:      g.HostUserID,
		RecentUpdatedAt: g.RecentUpdatedAt,
		CreatedAt:       g.CreatedAt,
	}
}
