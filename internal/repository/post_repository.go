package repository

import (
	"context"

	"gorm.io/gorm"

	"community-board-api/internal/domain"
)

// Post list sort codes, mirroring the frontend's sortCode query parameter
const (
	SortNewest    = 0
	SortMostLiked = 1
	SortMostViews = 2
)

// PostFilters narrows and pages the post list
type PostFilters struct {
	Category string
	Keyword  string
	SortCode int
	Page     int
	Size     int
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, postID int64) (*domain.Post, error)
	List(ctx context.Context, filters PostFilters) ([]*domain.Post, int64, error)
	FindByUserID(ctx context.Context, userID string) ([]*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, postID int64) error
	IncrementViewCount(ctx context.Context, postID int64) error
}

// postRepositoryImpl is the GORM implementation of PostRepository
type postRepositoryImpl struct {
	db *gorm.DB
}

// NewPostRepository creates a new instance of PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepositoryImpl{db: db}
}

func (r *postRepositoryImpl) Create(ctx context.Context, post *domain.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// FindByID loads a post with its owning user resolved
func (r *postRepositoryImpl) FindByID(ctx context.Context, postID int64) (*domain.Post, error) {
	var post domain.Post
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&post, "post_id = ?", postID).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepositoryImpl) List(ctx context.Context, filters PostFilters) ([]*domain.Post, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Post{})

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Keyword != "" {
		pattern := "%" + filters.Keyword + "%"
		query = query.Where("title LIKE ? OR content LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filters.SortCode {
	case SortMostLiked:
		query = query.Order("like_count DESC, post_id DESC")
	case SortMostViews:
		query = query.Order("view_count DESC, post_id DESC")
	default:
		query = query.Order("created_date DESC, post_id DESC")
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	size := filters.Size
	if size < 1 {
		size = 20
	}

	var posts []*domain.Post
	if err := query.
		Preload("User").
		Offset((page - 1) * size).
		Limit(size).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *postRepositoryImpl) FindByUserID(ctx context.Context, userID string) ([]*domain.Post, error) {
	var posts []*domain.Post
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_date DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepositoryImpl) Update(ctx context.Context, post *domain.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepositoryImpl) Delete(ctx context.Context, postID int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Post{}, "post_id = ?", postID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementViewCount bumps view_count in a single UPDATE so concurrent
// readers never lose increments
func (r *postRepositoryImpl) IncrementViewCount(ctx context.Context, postID int64) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Post{}).
		Where("post_id = ?", postID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
