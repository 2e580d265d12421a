package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-board-api/internal/domain"
	"community-board-api/internal/dto"
	"community-board-api/internal/metrics"
	"community-board-api/internal/repository"
	"community-board-api/internal/response"
)

// PostService defines the interface for post business logic
type PostService interface {
	Create(ctx context.Context, userID string, req *dto.CreatePostRequest) (*dto.PostDetailResponse, error)
	GetDetail(ctx context.Context, postID int64, viewerID string) (*dto.PostDetailResponse, error)
	List(ctx context.Context, filters repository.PostFilters) (*dto.PostListResponse, error)
	Update(ctx context.Context, postID int64, userID string, req *dto.UpdatePostRequest) (*dto.PostDetailResponse, error)
	Delete(ctx context.Context, postID int64, userID string) error
	MyPosts(ctx context.Context, userID string) ([]*dto.PostPreviewResponse, error)
}

// postServiceImpl is the implementation of PostService
type postServiceImpl struct {
	postRepo        repository.PostRepository
	commentRepo     repository.CommentRepository
	commentLikeRepo repository.CommentLikeRepository
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewPostService creates a new instance of PostService
func NewPostService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	commentLikeRepo repository.CommentLikeRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) PostService {
	return &postServiceImpl{
		postRepo:        postRepo,
		commentRepo:     commentRepo,
		commentLikeRepo: commentLikeRepo,
		metrics:         m,
		logger:          logger,
	}
}

func (s *postServiceImpl) Create(ctx context.Context, userID string, req *dto.CreatePostRequest) (*dto.PostDetailResponse, error) {
	post := &domain.Post{
		UserID:   userID,
		Category: req.Category,
		Title:    req.Title,
		Content:  req.Content,
		Photo:    req.Photo,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create post", err.Error())
	}

	s.metrics.IncrementPostCreated()
	s.logger.Info("post created",
		zap.Int64("postId", post.PostID),
		zap.String("userId", userID),
	)

	// Reload with the owning user resolved for the projection
	created, err := s.postRepo.FindByID(ctx, post.PostID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load created post", err.Error())
	}
	return dto.NewPostDetailResponse(created, nil, userID, nil), nil
}

// GetDetail records the view and returns the post projected for the viewer,
// comments included
func (s *postServiceImpl) GetDetail(ctx context.Context, postID int64, viewerID string) (*dto.PostDetailResponse, error) {
	if err := s.postRepo.IncrementViewCount(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to record view", err.Error())
	}

	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load post", err.Error())
	}

	comments, err := s.commentRepo.FindByPostID(ctx, postID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load comments", err.Error())
	}

	likedIDs, err := s.likedCommentIDs(ctx, viewerID, comments)
	if err != nil {
		return nil, err
	}

	return dto.NewPostDetailResponse(post, comments, viewerID, likedIDs), nil
}

func (s *postServiceImpl) List(ctx context.Context, filters repository.PostFilters) (*dto.PostListResponse, error) {
	posts, total, err := s.postRepo.List(ctx, filters)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list posts", err.Error())
	}

	previews, err := s.buildPreviews(ctx, posts)
	if err != nil {
		return nil, err
	}

	return &dto.PostListResponse{
		Posts:          previews,
		TotalPostCount: total,
	}, nil
}

func (s *postServiceImpl) Update(ctx context.Context, postID int64, userID string, req *dto.UpdatePostRequest) (*dto.PostDetailResponse, error) {
	post, err := s.findOwnedPost(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Photo != nil {
		post.Photo = req.Photo
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update post", err.Error())
	}

	comments, err := s.commentRepo.FindByPostID(ctx, postID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load comments", err.Error())
	}

	likedIDs, err := s.likedCommentIDs(ctx, userID, comments)
	if err != nil {
		return nil, err
	}

	return dto.NewPostDetailResponse(post, comments, userID, likedIDs), nil
}

func (s *postServiceImpl) Delete(ctx context.Context, postID int64, userID string) error {
	if _, err := s.findOwnedPost(ctx, postID, userID); err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete post", err.Error())
	}

	s.logger.Info("post deleted",
		zap.Int64("postId", postID),
		zap.String("userId", userID),
	)
	return nil
}

func (s *postServiceImpl) MyPosts(ctx context.Context, userID string) ([]*dto.PostPreviewResponse, error) {
	posts, err := s.postRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load posts", err.Error())
	}
	return s.buildPreviews(ctx, posts)
}

// findOwnedPost loads a post and verifies the caller owns it
func (s *postServiceImpl) findOwnedPost(ctx context.Context, postID int64, userID string) (*domain.Post, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load post", err.Error())
	}
	if post.UserID != userID {
		return nil, response.NewAppError(response.ErrCodeForbidden, "Not the post owner", "")
	}
	return post, nil
}

func (s *postServiceImpl) buildPreviews(ctx context.Context, posts []*domain.Post) ([]*dto.PostPreviewResponse, error) {
	postIDs := make([]int64, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.PostID)
	}

	counts, err := s.commentRepo.CountByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count comments", err.Error())
	}

	previews := make([]*dto.PostPreviewResponse, 0, len(posts))
	for _, post := range posts {
		previews = append(previews, dto.NewPostPreviewResponse(post, counts[post.PostID]))
	}
	return previews, nil
}

func (s *postServiceImpl) likedCommentIDs(ctx context.Context, viewerID string, comments []*domain.Comment) (map[int64]bool, error) {
	commentIDs := make([]int64, 0, len(comments))
	for _, comment := range comments {
		commentIDs = append(commentIDs, comment.CommentID)
	}

	likedIDs, err := s.commentLikeRepo.FindLikedCommentIDs(ctx, viewerID, commentIDs)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load liked comments", err.Error())
	}
	return likedIDs, nil
}
