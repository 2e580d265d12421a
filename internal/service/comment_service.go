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

// CommentService defines the interface for comment business logic
type CommentService interface {
	Create(ctx context.Context, userID string, postID int64, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	ListByPost(ctx context.Context, postID int64, viewerID string) (*dto.CommentListResponse, error)
	Update(ctx context.Context, commentID int64, userID string, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	Delete(ctx context.Context, commentID int64, userID string) error
	MyComments(ctx context.Context, userID string) ([]*dto.MyCommentResponse, error)
}

// commentServiceImpl is the implementation of CommentService
type commentServiceImpl struct {
	commentRepo     repository.CommentRepository
	postRepo        repository.PostRepository
	userRepo        repository.UserRepository
	commentLikeRepo repository.CommentLikeRepository
	notifications   NotificationService
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	commentLikeRepo repository.CommentLikeRepository,
	notifications NotificationService,
	m *metrics.Metrics,
	logger *zap.Logger,
) CommentService {
	return &commentServiceImpl{
		commentRepo:     commentRepo,
		postRepo:        postRepo,
		userRepo:        userRepo,
		commentLikeRepo: commentLikeRepo,
		notifications:   notifications,
		metrics:         m,
		logger:          logger,
	}
}

// Create stores a comment and notifies the post owner. Notification
// failures are logged and never fail the comment itself.
func (s *commentServiceImpl) Create(ctx context.Context, userID string, postID int64, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load post", err.Error())
	}

	comment := &domain.Comment{
		UserID:  userID,
		PostID:  postID,
		Content: req.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	s.metrics.IncrementCommentCreated()
	s.logger.Info("comment created",
		zap.Int64("commentId", comment.CommentID),
		zap.Int64("postId", postID),
		zap.String("userId", userID),
	)

	// No notification when commenting on one's own post
	if post.UserID != userID {
		s.notifyPostOwner(ctx, post.UserID, userID, comment)
	}

	created, err := s.commentRepo.FindByID(ctx, comment.CommentID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load created comment", err.Error())
	}
	return dto.NewCommentResponse(created, userID, nil), nil
}

func (s *commentServiceImpl) ListByPost(ctx context.Context, postID int64, viewerID string) (*dto.CommentListResponse, error) {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load post", err.Error())
	}

	comments, err := s.commentRepo.FindByPostID(ctx, postID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load comments", err.Error())
	}

	commentIDs := make([]int64, 0, len(comments))
	for _, comment := range comments {
		commentIDs = append(commentIDs, comment.CommentID)
	}
	likedIDs, err := s.commentLikeRepo.FindLikedCommentIDs(ctx, viewerID, commentIDs)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load liked comments", err.Error())
	}

	responses := make([]*dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, dto.NewCommentResponse(comment, viewerID, likedIDs))
	}

	return &dto.CommentListResponse{
		Comments:   responses,
		TotalCount: int64(len(responses)),
	}, nil
}

func (s *commentServiceImpl) Update(ctx context.Context, commentID int64, userID string, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	comment, err := s.findOwnedComment(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}

	comment.Content = req.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update comment", err.Error())
	}

	likedIDs, err := s.commentLikeRepo.FindLikedCommentIDs(ctx, userID, []int64{commentID})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load liked comments", err.Error())
	}
	return dto.NewCommentResponse(comment, userID, likedIDs), nil
}

func (s *commentServiceImpl) Delete(ctx context.Context, commentID int64, userID string) error {
	if _, err := s.findOwnedComment(ctx, commentID, userID); err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete comment", err.Error())
	}

	s.logger.Info("comment deleted",
		zap.Int64("commentId", commentID),
		zap.String("userId", userID),
	)
	return nil
}

func (s *commentServiceImpl) MyComments(ctx context.Context, userID string) ([]*dto.MyCommentResponse, error) {
	comments, err := s.commentRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load comments", err.Error())
	}

	responses := make([]*dto.MyCommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, dto.NewMyCommentResponse(comment))
	}
	return responses, nil
}

// findOwnedComment loads a comment and verifies the caller owns it
func (s *commentServiceImpl) findOwnedComment(ctx context.Context, commentID int64, userID string) (*domain.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Comment not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load comment", err.Error())
	}
	if comment.UserID != userID {
		return nil, response.NewAppError(response.ErrCodeForbidden, "Not the comment owner", "")
	}
	return comment, nil
}

func (s *commentServiceImpl) notifyPostOwner(ctx context.Context, recipientID, actorID string, comment *domain.Comment) {
	actor, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		s.logger.Error("failed to load commenter for notification", zap.Error(err))
		return
	}

	notification := domain.NewCommentNotification(recipientID, actor.Nickname, comment)
	if err := s.notifications.Push(ctx, notification); err != nil {
		s.logger.Error("failed to push comment notification", zap.Error(err))
	}
}
