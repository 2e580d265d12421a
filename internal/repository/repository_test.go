package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"community-board-api/internal/domain"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
// TranslateError is enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey, matching the production configuration.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Post{},
		&domain.Comment{},
		&domain.PostLike{},
		&domain.CommentLike{},
		&domain.Scrap{},
		&domain.Notification{},
	)
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, userID, nickname string) *domain.User {
	t.Helper()

	user := &domain.User{
		UserID:   userID,
		Password: "hashed-password",
		Email:    userID + "@example.com",
		Name:     "Test " + nickname,
		Nickname: nickname,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", userID, err)
	}
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, userID, category, title string) *domain.Post {
	t.Helper()

	post := &domain.Post{
		UserID:   userID,
		Category: category,
		Title:    title,
		Content:  "content of " + title,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("failed to create post %q: %v", title, err)
	}
	return post
}

func createTestComment(t *testing.T, db *gorm.DB, userID string, postID int64, content string) *domain.Comment {
	t.Helper()

	comment := &domain.Comment{
		UserID:  userID,
		PostID:  postID,
		Content: content,
	}
	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("failed to create comment %q: %v", content, err)
	}
	return comment
}
