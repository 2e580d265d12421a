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

// LikeService defines the interface for post/comment like business logic.
// Likes are idempotent per (user, target): a duplicate like is a conflict
// and never double-increments the counter.
type LikeService interface {
	LikePost(ctx context.Context, userID string, postID int64) (*dto.LikeResponse, error)
	UnlikePost(ctx context.Context, userID string, postID int64) (*dto.LikeResponse, error)
	LikeComment(ctx context.Context, userID string, commentID int64) (*dto.LikeResponse, error)
	UnlikeComment(ctx context.Context, userID string, commentID int64) (*dto.LikeResponse, error)
}

// likeServiceImpl is the implementation of LikeService
type likeServiceImpl struct {
	postLikeRepo    repository.PostLikeRepository
	commentLikeRepo repository.CommentLikeRepository
	postRepo        repository.PostRepository
	commentRepo     repository.CommentRepository
	userRepo        repository.UserRepository
	notifications   NotificationService
	logger          *zap.Logger
}

// NewLikeService creates a new instance of LikeService
func NewLikeService(
	postLikeRepo repository.PostLikeRepository,
	commentLikeRepo repository.CommentLikeRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	notifications NotificationService,
	logger *zap.Logger,
) LikeService {
	return &likeServiceImpl{
		postLikeRepo:    postLikeRepo,
		commentLikeRepo: commentLikeRepo,
		postRepo:        postRepo,
		commentRepo:     commentRepo,
		userRepo:        userRepo,
		notifications:   notifications,
		logger:          logger,
	}
}

func (s *likeServiceImpl) LikePost(ctx context.Context, userID string, postID int64) (*dto.LikeResponse, error) {
	like, err := s.postLikeRepo.Like(ctx, userID, postID)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Post already liked", "")
		case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		default:
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to like post", err.Error())
		}
	}

	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load post", err.Error())
	}

	// No notification when liking one's own post
	if post.UserID != userID {
		s.notify(ctx, userID, func(nickname string) *domain.Notification {
			return domain.NewPostLikeNotification(post.UserID, nickname, like)
		})
	}

	return &dto.LikeResponse{IsLiked: true, LikeCount: post.LikeCount}, nil
}

func (s *likeServiceImpl) UnlikePost(ctx context.Context, userID string, postID int64) (*dto.LikeResponse, error) {
	if err := s.postLikeRepo.Unlike(ctx, userID, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Like not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to unlike post", err.Error())
	}

	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load post", err.Error())
	}

	return &dto.LikeResponse{IsLiked: false, LikeCount: post.LikeCount}, nil
}

func (s *likeServiceImpl) LikeComment(ctx context.Context, userID string, commentID int64) (*dto.LikeResponse, error) {
	like, err := s.commentLikeRepo.Like(ctx, userID, commentID)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Comment already liked", "")
		case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, response.NewAppError(response.ErrCodeNotFound, "Comment not found", "")
		default:
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to like comment", err.Error())
		}
	}

	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load comment", err.Error())
	}

	// No notification when liking one's own comment
	if comment.UserID != userID {
		s.notify(ctx, userID, func(nickname string) *domain.Notification {
			return domain.NewCommentLikeNotification(comment.UserID, nickname, like)
		})
	}

	return &dto.LikeResponse{IsLiked: true, LikeCount: comment.LikeCount}, nil
}

func (s *likeServiceImpl) UnlikeComment(ctx context.Context, userID string, commentID int64) (*dto.LikeResponse, error) {
	if err := s.commentLikeRepo.Unlike(ctx, userID, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Like not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to unlike comment", err.Error())
	}

	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load comment", err.Error())
	}

	return &dto.LikeResponse{IsLiked: false, LikeCount: comment.LikeCount}, nil
}

// notify resolves the actor's nickname and pushes the built notification,
// logging failures instead of surfacing them
func (s *likeServiceImpl) notify(ctx context.Context, actorID string, build func(nickname string) *domain.Notification) {
	actor, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		s.logger.Error("failed to load liker for notification", zap.Error(err))
		return
	}

	if err := s.notifications.Push(ctx, build(actor.Nickname)); err != nil {
		s.logger.Error("failed to push like notification", zap.Error(err))
	}
}
