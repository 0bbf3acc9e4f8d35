package migration

import (
	"fmt"
	"time"

	"github.com/1000kkannoo/dnd-8th-4-backend/internal/domain"
	"gorm.io/gorm"
)

// Models every table managed by AutoMigrate, in dependency order
func Models() []interface{} {
	return []interface{}{
		&domain.User{},
		&domain.Group{},
		&domain.UserJoinGroup{},
		&domain.Content{},
		&domain.ContentImage{},
		&domain.Emotion{},
		&domain.Bookmark{},
		&domain.Comment{},
		&domain.CommentLike{},
		&domain.Notification{},
	}
}

// Run executes AutoMigrate - 테이블 없으면 생성, 있으면 컬럼/인덱스만 추가
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Rollback drops all managed tables (reverse order)
func Rollback(db *gorm.DB) error {
	models := Models()
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(models[i]); err != nil {
			return fmt.Errorf("drop %T: %w", models[i], err)
		}
	}
	return nil
}

// Missing returns the managed tables absent from the database
func Missing(db *gorm.DB) []string {
	var missing []string
	for _, m := range Models() {
		if !db.Migrator().HasTable(m) {
			missing = append(missing, fmt.Sprintf("%T", m))
		}
	}
	return missing
}

// SeedLocal inserts a demo user and group when users is empty (local/dev only)
func SeedLocal(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		user := &domain.User{
			Email:    "demo@diary.local",
			Name:     "데모",
			Nickname: "demo",
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		group := &domain.Group{Name: "데모 그룹", Note: "로컬 개발용", HostUserID: user.ID, RecentUpdatedAt: time.Now()}
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		return tx.Create(&domain.UserJoinGroup{UserID: user.ID, GroupID: group.ID}).Error
	})
}
