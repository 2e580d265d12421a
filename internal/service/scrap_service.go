package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-board-api/internal/domain"
	"community-board-api/internal/dto"
	"community-board-api/internal/repository"
	"community-board-api/internal/response"
)

// ScrapService defines the interface for scrap (bookmark) business logic
type ScrapService interface {
	Scrap(ctx context.Context, userID string, postID int64) (*dto.ScrapStateResponse, error)
	Unscrap(ctx context.Context, userID string, postID int64) (*dto.ScrapStateResponse, error)
	MyScraps(ctx context.Context, userID string) ([]*dto.ScrapResponse, error)
}

// scrapServiceImpl is the implementation of ScrapService
type scrapServiceImpl struct {
	scrapRepo repository.ScrapRepository
	postRepo  repository.PostRepository
	logger    *zap.Logger
}

// NewScrapService creates a new instance of ScrapService
func NewScrapService(
	scrapRepo repository.ScrapRepository,
	postRepo repository.PostRepository,
	logger *zap.Logger,
) ScrapService {
	return &scrapServiceImpl{
		scrapRepo: scrapRepo,
		postRepo:  postRepo,
		logger:    logger,
	}
}

func (s *scrapServiceImpl) Scrap(ctx context.Context, userID string, postID int64) (*dto.ScrapStateResponse, error) {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load post", err.Error())
	}

	scrap := &domain.Scrap{UserID: userID, PostID: postID}
	if err := s.scrapRepo.Create(ctx, scrap); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Post already scrapped", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to scrap post", err.Error())
	}

	return &dto.ScrapStateResponse{IsScrapped: true}, nil
}

func (s *scrapServiceImpl) Unscrap(ctx context.Context, userID string, postID int64) (*dto.ScrapStateResponse, error) {
	if err := s.scrapRepo.Delete(ctx, userID, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Scrap not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to unscrap post", err.Error())
	}

	return &dto.ScrapStateResponse{IsScrapped: false}, nil
}

func (s *scrapServiceImpl) MyScraps(ctx context.Context, userID string) ([]*dto.ScrapResponse, error) {
	scraps, err := s.scrapRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load scraps", err.Error())
	}

	responses := make([]*dto.ScrapResponse, 0, len(scraps))
	for i := range scraps {
		responses = append(responses, dto.NewScrapResponse(&scraps[i]))
	}
	return responses, nil
}
