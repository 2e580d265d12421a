package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-board-api/internal/domain"
	"community-board-api/internal/dto"
	"community-board-api/internal/metrics"
	"community-board-api/internal/repository"
	"community-board-api/internal/response"
)

const unreadCacheOp = "unread_count"

// NotificationService defines the interface for notification business logic
type NotificationService interface {
	Push(ctx context.Context, notification *domain.Notification) error
	List(ctx context.Context, userID string) ([]*dto.NotificationResponse, error)
	MarkRead(ctx context.Context, notificationID int64, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
	UnreadCount(ctx context.Context, userID string) (*dto.UnreadCountResponse, error)
	CleanupOld(ctx context.Context) (int64, error)
}

// notificationServiceImpl is the implementation of NotificationService
type notificationServiceImpl struct {
	notificationRepo repository.NotificationRepository
	redis            *redis.Client
	cacheTTL         time.Duration
	retention        time.Duration
	metrics          *metrics.Metrics
	logger           *zap.Logger
}

// NewNotificationService creates a new instance of NotificationService.
// redis may be nil; the unread counter then always hits the database.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	redisClient *redis.Client,
	cacheTTL time.Duration,
	retention time.Duration,
	m *metrics.Metrics,
	logger *zap.Logger,
) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		redis:            redisClient,
		cacheTTL:         cacheTTL,
		retention:        retention,
		metrics:          m,
		logger:           logger,
	}
}

// Push stores a notification for its recipient and invalidates the
// recipient's cached unread counter
func (s *notificationServiceImpl) Push(ctx context.Context, notification *domain.Notification) error {
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to create notification", err.Error())
	}

	s.metrics.IncrementNotificationCreated()
	s.invalidateUnreadCache(ctx, notification.UserID)

	s.logger.Info("notification created",
		zap.Int64("notificationId", notification.NotificationID),
		zap.String("userId", notification.UserID),
	)
	return nil
}

func (s *notificationServiceImpl) List(ctx context.Context, userID string) ([]*dto.NotificationResponse, error) {
	notifications, err := s.notificationRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load notifications", err.Error())
	}

	responses := make([]*dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, dto.NewNotificationResponse(&notifications[i]))
	}
	return responses, nil
}

func (s *notificationServiceImpl) MarkRead(ctx context.Context, notificationID int64, userID string) error {
	if err := s.notificationRepo.MarkAsRead(ctx, notificationID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Notification not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to mark notification as read", err.Error())
	}

	s.invalidateUnreadCache(ctx, userID)
	return nil
}

func (s *notificationServiceImpl) MarkAllRead(ctx context.Context, userID string) error {
	if err := s.notificationRepo.MarkAllAsRead(ctx, userID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to mark notifications as read", err.Error())
	}

	s.invalidateUnreadCache(ctx, userID)
	return nil
}

// UnreadCount serves the unread counter from redis when cached, falling
// back to the database and repopulating the cache on a miss
func (s *notificationServiceImpl) UnreadCount(ctx context.Context, userID string) (*dto.UnreadCountResponse, error) {
	key := unreadCacheKey(userID)

	if s.redis != nil {
		start := time.Now()
		cached, err := s.redis.Get(ctx, key).Int64()
		if err == nil {
			s.metrics.RecordCacheRequest(unreadCacheOp, metrics.CacheHit, time.Since(start))
			return &dto.UnreadCountResponse{Count: cached}, nil
		}
		if errors.Is(err, redis.Nil) {
			s.metrics.RecordCacheRequest(unreadCacheOp, metrics.CacheMiss, time.Since(start))
		} else {
			s.metrics.RecordCacheError(unreadCacheOp)
			s.logger.Warn("unread cache read failed", zap.Error(err))
		}
	}

	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count unread notifications", err.Error())
	}

	if s.redis != nil {
		if err := s.redis.Set(ctx, key, count, s.cacheTTL).Err(); err != nil {
			s.metrics.RecordCacheError(unreadCacheOp)
			s.logger.Warn("unread cache write failed", zap.Error(err))
		}
	}

	return &dto.UnreadCountResponse{Count: count}, nil
}

// CleanupOld deletes read notifications older than the configured retention
func (s *notificationServiceImpl) CleanupOld(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-s.retention)
	deleted, err := s.notificationRepo.DeleteOld(ctx, cutoff)
	if err != nil {
		return 0, response.NewAppError(response.ErrCodeInternal, "Failed to clean up notifications", err.Error())
	}
	return deleted, nil
}

func (s *notificationServiceImpl) invalidateUnreadCache(ctx context.Context, userID string) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, unreadCacheKey(userID)).Err(); err != nil {
		s.metrics.RecordCacheError(unreadCacheOp)
		s.logger.Warn("unread cache invalidation failed", zap.Error(err))
	}
}

func unreadCacheKey(userID string) string {
	return fmt.Sprintf("unread:%s", userID)
}
