package repository

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"community-board-api/internal/domain"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		UserID:      "alice",
		Password:    "hashed",
		Email:       "alice@example.com",
		Name:        "Alice",
		PhoneNumber: "010-1234-5678",
		Nickname:    "wonder",
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := repo.FindByID(ctx, "alice")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.Nickname != "wonder" {
		t.Errorf("FindByID() Nickname = %q, want %q", found.Nickname, "wonder")
	}
	if found.HasProfilePicture() {
		t.Error("HasProfilePicture() = true for user without picture")
	}
}

func TestUserRepository_Create_DuplicateID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "alice", "wonder")

	err := repo.Create(ctx, &domain.User{UserID: "alice", Password: "x", Email: "a@b.c", Name: "A", Nickname: "other"})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("Create() with taken user_id error = %v, want gorm.ErrDuplicatedKey", err)
	}
}

func TestUserRepository_UpdateProfilePicture(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "alice", "wonder")

	picture := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	if err := repo.UpdateProfilePicture(ctx, "alice", picture); err != nil {
		t.Fatalf("UpdateProfilePicture() error = %v", err)
	}

	found, err := repo.FindByID(ctx, "alice")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if !found.HasProfilePicture() {
		t.Error("HasProfilePicture() = false after upload")
	}
	if !bytes.Equal(found.ProfilePicture, picture) {
		t.Errorf("ProfilePicture = %v, want %v", found.ProfilePicture, picture)
	}
}

func TestUserRepository_UpdateProfilePicture_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	err := repo.UpdateProfilePicture(ctx, "nobody", []byte{1})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("UpdateProfilePicture() error = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestUserRepository_Exists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "alice", "wonder")

	tests := []struct {
		name  string
		check func() (bool, error)
		want  bool
	}{
		{"existing ID", func() (bool, error) { return repo.ExistsByID(ctx, "alice") }, true},
		{"free ID", func() (bool, error) { return repo.ExistsByID(ctx, "bob") }, false},
		{"existing nickname", func() (bool, error) { return repo.ExistsByNickname(ctx, "wonder") }, true},
		{"free nickname", func() (bool, error) { return repo.ExistsByNickname(ctx, "builder") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.check()
			if err != nil {
				t.Fatalf("exists check error = %v", err)
			}
			if got != tt.want {
				t.Errorf("exists = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "alice", "wonder")

	if err := repo.Delete(ctx, "alice"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := repo.FindByID(ctx, "alice"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindByID() after delete error = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestUserRepository_Delete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	err := repo.Delete(ctx, "nobody")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Delete() error = %v, want gorm.ErrRecordNotFound", err)
	}
}
