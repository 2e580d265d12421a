package repository

import (
	"context"

	"gorm.io/gorm"

	"community-board-api/internal/domain"
)

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByID(ctx context.Context, commentID int64) (*domain.Comment, error)
	FindByPostID(ctx context.Context, postID int64) ([]*domain.Comment, error)
	FindByUserID(ctx context.Context, userID string) ([]*domain.Comment, error)
	CountByPostIDs(ctx context.Context, postIDs []int64) (map[int64]int64, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, commentID int64) error
}

// commentRepositoryImpl is the GORM implementation of CommentRepository
type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// FindByID loads a comment with its owning user resolved
func (r *commentRepositoryImpl) FindByID(ctx context.Context, commentID int64) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&comment, "comment_id = ?", commentID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByPostID loads a post's comments in display order, each with its
// owning user resolved
func (r *commentRepositoryImpl) FindByPostID(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_date ASC, comment_id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// FindByUserID loads a user's own comments with their parent posts resolved
func (r *commentRepositoryImpl) FindByUserID(ctx context.Context, userID string) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := r.db.WithContext(ctx).
		Preload("Post").
		Where("user_id = ?", userID).
		Order("created_date DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// CountByPostIDs returns the comment count per post for list previews
func (r *commentRepositoryImpl) CountByPostIDs(ctx context.Context, postIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PostID int64
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&domain.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.PostID] = row.Count
	}
	return counts, nil
}

func (r *commentRepositoryImpl) Update(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *commentRepositoryImpl) Delete(ctx context.Context, commentID int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Comment{}, "comment_id = ?", commentID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
