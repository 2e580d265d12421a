package repository

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"community-board-api/internal/domain"
)

func postLikeCount(t *testing.T, db *gorm.DB, postID int64) int {
	t.Helper()
	var post domain.Post
	if err := db.First(&post, "post_id = ?", postID).Error; err != nil {
		t.Fatalf("failed to reload post: %v", err)
	}
	return post.LikeCount
}

func commentLikeCount(t *testing.T, db *gorm.DB, commentID int64) int {
	t.Helper()
	var comment domain.Comment
	if err := db.First(&comment, "comment_id = ?", commentID).Error; err != nil {
		t.Fatalf("failed to reload comment: %v", err)
	}
	return comment.LikeCount
}

func TestPostLikeRepository_Like(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostLikeRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "alice", "wonder")
	createTestUser(t, db, "bob", "builder")
	post := createTestPost(t, db, "alice", "free", "likeable")

	like, err := repo.Like(ctx, "bob", post.PostID)
	if err != nil {
		t.Fatalf("Like() error = %v", err)
	}
	if like.PostLikeID == 0 {
		t.Error("Like() did not assign a post_like_id")
	}
	if got := postLikeCount(t, db, post.PostID); got != 1 {
		t.Errorf("like_count = %d, want 1", got)
	}
}

func TestPostLikeRepository_Like_Duplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostLikeRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "alice", "wonder")
	createTestUser(t, db, "bob", "builder")
	post := createTestPost(t, db, "alice", "free", "likeable")

	if _, err := repo.Like(ctx, "bob", post.PostID); err != nil {
		t.Fatalf("first Like() error = %v", err)
	}

	_, err := repo.Like(ctx, "bob", post.PostID)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("second Like() error = %v, want gorm.ErrDuplicatedKey", err)
	}

	// The failed transaction must not have touched the record or counter
	var count int64
	db.Model(&domain.PostLike{}).Where("user_id = ? AND post_id = ?", "bob", post.PostID).Count(&count)
	if count != 1 {
		t.Errorf("post_like rows = %d, want 1", count)
	}
	if got := postLikeCount(t, db, post.PostID); got != 1 {
		t.Errorf("like_count = %d, want 1", got)
	}
}

func TestPostLikeRepository_Like_PostNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostLikeRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "bob", "builder")

	_, err := repo.Like(ctx, "bob", 9999)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("Like() error = %v, want gorm.ErrRecordNotFound", err)
	}

	// The like row from the rolled-back transaction must not persist
	var count int64
	db.Model(&domain.PostLike{}).Where("user_id = ?", "bob").Count(&count)
	if count != 0 {
		t.Errorf("post_like rows = %d, want 0", count)
	}
}

func TestPostLikeRepository_Unlike(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostLikeRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "alice", "wonder")
	createTestUser(t, db, "bob", "builder")
	post := createTestPost(t, db, "alice", "free", "likeable")

	if _, err := repo.Like(ctx, "bob", post.PostID); err != nil {
		t.Fatalf("Like() error = %v", err)
	}
	if err := repo.Unlike(ctx, "bob", post.PostID); err != nil {
		t.Fatalf("Unlike() error = %v", err)
	}
	if got := postLikeCount(t, db, post.PostID); got != 0 {
		t.Errorf("like_count = %d, want 0", got)
	}

	exists, err := repo.Exists(ctx, "bob", post.PostID)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() = true after Unlike(), want false")
	}
}

func TestPostLikeRepository_Unlike_NotLiked(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostLikeRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "alice", "wonder")
	createTestUser(t, db, "bob", "builder")
	post := createTestPost(t, db, "alice", "free", "likeable")

	err := repo.Unlike(ctx, "bob", post.PostID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Unlike() error = %v, want gorm.ErrRecordNotFound", err)
	}
	if got := postLikeCount(t, db, post.PostID); got != 0 {
		t.Errorf("like_count = %d, want 0", got)
	}
}

func TestCommentLikeRepository_LikeAndUnlike(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentLikeRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "alice", "wonder")
	createTestUser(t, db, "bob", "builder")
	post := createTestPost(t, db, "alice", "free", "commented")
	comment := createTestComment(t, db, "alice", post.PostID, "first")

	if _, err := repo.Like(ctx, "bob", comment.CommentID); err != nil {
		t.Fatalf("Like() error = %v", err)
	}
	if got := commentLikeCount(t, db, comment.CommentID); got != 1 {
		t.Errorf("like_count = %d, want 1", got)
	}

	if _, err := repo.Like(ctx, "bob", comment.CommentID); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("duplicate Like() error = %v, want gorm.ErrDuplicatedKey", err)
	}
	if got := commentLikeCount(t, db, comment.CommentID); got != 1 {
		t.Errorf("like_count after duplicate = %d, want 1", got)
	}

	if err := repo.Unlike(ctx, "bob", comment.CommentID); err != nil {
		t.Fatalf("Unlike() error = %v", err)
	}
	if got := commentLikeCount(t, db, comment.CommentID); got != 0 {
		t.Errorf("like_count after unlike = %d, want 0", got)
	}

	if err := repo.Unlike(ctx, "bob", comment.CommentID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("repeated Unlike() error = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestCommentLikeRepository_FindLikedCommentIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentLikeRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "alice", "wonder")
	createTestUser(t, db, "bob", "builder")
	post := createTestPost(t, db, "alice", "free", "commented")
	c1 := createTestComment(t, db, "alice", post.PostID, "first")
	c2 := createTestComment(t, db, "alice", post.PostID, "second")
	c3 := createTestComment(t, db, "alice", post.PostID, "third")

	if _, err := repo.Like(ctx, "bob", c1.CommentID); err != nil {
		t.Fatalf("Like() error = %v", err)
	}
	if _, err := repo.Like(ctx, "bob", c3.CommentID); err != nil {
		t.Fatalf("Like() error = %v", err)
	}

	ids := []int64{c1.CommentID, c2.CommentID, c3.CommentID}
	liked, err := repo.FindLikedCommentIDs(ctx, "bob", ids)
	if err != nil {
		t.Fatalf("FindLikedCommentIDs() error = %v", err)
	}
	if !liked[c1.CommentID] || liked[c2.CommentID] || !liked[c3.CommentID] {
		t.Errorf("FindLikedCommentIDs() = %v, want {%d, %d}", liked, c1.CommentID, c3.CommentID)
	}
}

func TestCommentLikeRepository_FindLikedCommentIDs_Anonymous(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentLikeRepository(db)
	ctx := context.Background()

	liked, err := repo.FindLikedCommentIDs(ctx, "", []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("FindLikedCommentIDs() error = %v", err)
	}
	if len(liked) != 0 {
		t.Errorf("FindLikedCommentIDs() for anonymous viewer = %v, want empty", liked)
	}
}
