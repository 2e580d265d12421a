package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-board-api/internal/domain"
	"community-board-api/internal/response"
)

func TestScrapService_Scrap(t *testing.T) {
	postRepo := &MockPostRepository{
		FindByIDFunc: func(ctx context.Context, postID int64) (*domain.Post, error) {
			return testPost(postID, "alice", "wonder"), nil
		},
	}
	var created *domain.Scrap
	scrapRepo := &MockScrapRepository{
		CreateFunc: func(ctx context.Context, scrap *domain.Scrap) error {
			scrap.ScrapID = 1
			created = scrap
			return nil
		},
	}

	svc := NewScrapService(scrapRepo, postRepo, zap.NewNop())
	resp, err := svc.Scrap(context.Background(), "bob", 1)
	if err != nil {
		t.Fatalf("Scrap() error = %v", err)
	}
	if !resp.IsScrapped {
		t.Error("IsScrapped = false after a scrap")
	}
	if created == nil || created.UserID != "bob" || created.PostID != 1 {
		t.Errorf("persisted scrap = %+v, want user bob post 1", created)
	}
}

func TestScrapService_Scrap_Duplicate(t *testing.T) {
	postRepo := &MockPostRepository{
		FindByIDFunc: func(ctx context.Context, postID int64) (*domain.Post, error) {
			return testPost(postID, "alice", "wonder"), nil
		},
	}
	scrapRepo := &MockScrapRepository{
		CreateFunc: func(ctx context.Context, scrap *domain.Scrap) error {
			return gorm.ErrDuplicatedKey
		},
	}

	svc := NewScrapService(scrapRepo, postRepo, zap.NewNop())
	_, err := svc.Scrap(context.Background(), "bob", 1)
	assertAppErrorCode(t, err, response.ErrCodeAlreadyExists)
}

func TestScrapService_Scrap_PostNotFound(t *testing.T) {
	postRepo := &MockPostRepository{
		FindByIDFunc: func(ctx context.Context, postID int64) (*domain.Post, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewScrapService(&MockScrapRepository{}, postRepo, zap.NewNop())
	_, err := svc.Scrap(context.Background(), "bob", 404)
	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}

func TestScrapService_Unscrap_NotFound(t *testing.T) {
	scrapRepo := &MockScrapRepository{
		DeleteFunc: func(ctx context.Context, userID string, postID int64) error {
			return gorm.ErrRecordNotFound
		},
	}

	svc := NewScrapService(scrapRepo, &MockPostRepository{}, zap.NewNop())
	_, err := svc.Unscrap(context.Background(), "bob", 1)
	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}

func TestScrapService_MyScraps(t *testing.T) {
	scrapRepo := &MockScrapRepository{
		FindByUserIDFunc: func(ctx context.Context, userID string) ([]domain.Scrap, error) {
			return []domain.Scrap{
				{
					ScrapID:     1,
					UserID:      userID,
					PostID:      2,
					CreatedDate: time.Now(),
					Post: domain.Post{
						PostID:  2,
						UserID:  "alice",
						Title:   "kept post",
						Content: "kept content",
						User:    domain.User{UserID: "alice", Nickname: "wonder"},
					},
				},
			}, nil
		},
	}

	svc := NewScrapService(scrapRepo, &MockPostRepository{}, zap.NewNop())
	scraps, err := svc.MyScraps(context.Background(), "bob")
	if err != nil {
		t.Fatalf("MyScraps() error = %v", err)
	}
	if len(scraps) != 1 {
		t.Fatalf("len = %d, want 1", len(scraps))
	}
	if scraps[0].PostTitle != "kept post" {
		t.Errorf("PostTitle = %q, want %q", scraps[0].PostTitle, "kept post")
	}
	if scraps[0].AuthorNickname != "wonder" {
		t.Errorf("AuthorNickname = %q, want %q", scraps[0].AuthorNickname, "wonder")
	}
}
