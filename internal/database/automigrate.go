package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-board-api/internal/domain"
)

// models lists every domain model with its table name, in dependency order
// so foreign keys always reference an existing table.
var models = []struct {
	model     interface{}
	tableName string
}{
	{&domain.User{}, "users"},
	{&domain.Post{}, "posts"},
	{&domain.Comment{}, "comments"},
	{&domain.PostLike{}, "post_likes"},
	{&domain.CommentLike{}, "comment_likes"},
	{&domain.Scrap{}, "scraps"},
	{&domain.Notification{}, "notifications"},
}

// AutoMigrate runs GORM auto-migration for all domain models
func AutoMigrate(db *gorm.DB) error {
	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}
	}
	return nil
}

// SafeAutoMigrate runs auto-migration with per-table logging. Existing tables
// only receive schema updates; missing tables are created.
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()

	for _, m := range models {
		tableExists := migrator.HasTable(m.model)

		if err := db.AutoMigrate(m.model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", m.tableName),
				zap.Bool("table_existed", tableExists),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}

		logger.Info("Migrated table",
			zap.String("table", m.tableName),
			zap.Bool("was_existing", tableExists),
		)
	}

	return nil
}
