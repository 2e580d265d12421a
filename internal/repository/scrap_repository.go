package repository

import (
	"context"

	"gorm.io/gorm"

	"community-board-api/internal/domain"
)

// ScrapRepository defines the interface for scrap data access.
// Duplicate scraps surface as gorm.ErrDuplicatedKey via the unique
// (user_id, post_id) index.
type ScrapRepository interface {
	Create(ctx context.Context, scrap *domain.Scrap) error
	Delete(ctx context.Context, userID string, postID int64) error
	FindByUserID(ctx context.Context, userID string) ([]domain.Scrap, error)
	Exists(ctx context.Context, userID string, postID int64) (bool, error)
}

// scrapRepositoryImpl is the GORM implementation of ScrapRepository
type scrapRepositoryImpl struct {
	db *gorm.DB
}

// NewScrapRepository creates a new instance of ScrapRepository
func NewScrapRepository(db *gorm.DB) ScrapRepository {
	return &scrapRepositoryImpl{db: db}
}

func (r *scrapRepositoryImpl) Create(ctx context.Context, scrap *domain.Scrap) error {
	return r.db.WithContext(ctx).Create(scrap).Error
}

func (r *scrapRepositoryImpl) Delete(ctx context.Context, userID string, postID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&domain.Scrap{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *scrapRepositoryImpl) FindByUserID(ctx context.Context, userID string) ([]domain.Scrap, error) {
	var scraps []domain.Scrap
	if err := r.db.WithContext(ctx).
		Preload("Post").
		Preload("Post.User").
		Where("user_id = ?", userID).
		Order("created_date DESC").
		Find(&scraps).Error; err != nil {
		return nil, err
	}
	return scraps, nil
}

func (r *scrapRepositoryImpl) Exists(ctx context.Context, userID string, postID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Scrap{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
