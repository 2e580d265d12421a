package repository

import (
	"context"

	"gorm.io/gorm"

	"community-board-api/internal/domain"
)

// PostLikeRepository defines the interface for post-like data access.
// Like and Unlike run the join-record write and the denormalized counter
// update in one transaction; duplicate likes surface as
// gorm.ErrDuplicatedKey via the unique (user_id, post_id) index.
type PostLikeRepository interface {
	Like(ctx context.Context, userID string, postID int64) (*domain.PostLike, error)
	Unlike(ctx context.Context, userID string, postID int64) error
	Exists(ctx context.Context, userID string, postID int64) (bool, error)
}

// CommentLikeRepository defines the interface for comment-like data access
type CommentLikeRepository interface {
	Like(ctx context.Context, userID string, commentID int64) (*domain.CommentLike, error)
	Unlike(ctx context.Context, userID string, commentID int64) error
	FindLikedCommentIDs(ctx context.Context, userID string, commentIDs []int64) (map[int64]bool, error)
}

// postLikeRepositoryImpl is the GORM implementation of PostLikeRepository
type postLikeRepositoryImpl struct {
	db *gorm.DB
}

// NewPostLikeRepository creates a new instance of PostLikeRepository
func NewPostLikeRepository(db *gorm.DB) PostLikeRepository {
	return &postLikeRepositoryImpl{db: db}
}

func (r *postLikeRepositoryImpl) Like(ctx context.Context, userID string, postID int64) (*domain.PostLike, error) {
	like := &domain.PostLike{
		UserID: userID,
		PostID: postID,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(like).Error; err != nil {
			return err
		}

		result := tx.Model(&domain.Post{}).
			Where("post_id = ?", postID).
			UpdateColumn("like_count", gorm.Expr("like_count + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return like, nil
}

func (r *postLikeRepositoryImpl) Unlike(ctx context.Context, userID string, postID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&domain.PostLike{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&domain.Post{}).
			Where("post_id = ? AND like_count > 0", postID).
			UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error
	})
}

func (r *postLikeRepositoryImpl) Exists(ctx context.Context, userID string, postID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.PostLike{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// commentLikeRepositoryImpl is the GORM implementation of CommentLikeRepository
type commentLikeRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentLikeRepository creates a new instance of CommentLikeRepository
func NewCommentLikeRepository(db *gorm.DB) CommentLikeRepository {
	return &commentLikeRepositoryImpl{db: db}
}

func (r *commentLikeRepositoryImpl) Like(ctx context.Context, userID string, commentID int64) (*domain.CommentLike, error) {
	like := &domain.CommentLike{
		UserID:    userID,
		CommentID: commentID,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(like).Error; err != nil {
			return err
		}

		result := tx.Model(&domain.Comment{}).
			Where("comment_id = ?", commentID).
			UpdateColumn("like_count", gorm.Expr("like_count + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return like, nil
}

func (r *commentLikeRepositoryImpl) Unlike(ctx context.Context, userID string, commentID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("user_id = ? AND comment_id = ?", userID, commentID).
			Delete(&domain.CommentLike{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&domain.Comment{}).
			Where("comment_id = ? AND like_count > 0", commentID).
			UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error
	})
}

// FindLikedCommentIDs returns the subset of commentIDs the user has liked,
// as a set for the projection builders
func (r *commentLikeRepositoryImpl) FindLikedCommentIDs(ctx context.Context, userID string, commentIDs []int64) (map[int64]bool, error) {
	liked := make(map[int64]bool, len(commentIDs))
	if userID == "" || len(commentIDs) == 0 {
		return liked, nil
	}

	var ids []int64
	if err := r.db.WithContext(ctx).
		Model(&domain.CommentLike{}).
		Where("user_id = ? AND comment_id IN ?", userID, commentIDs).
		Pluck("comment_id", &ids).Error; err != nil {
		return nil, err
	}

	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}
