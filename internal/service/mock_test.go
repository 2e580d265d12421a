package service

import (
	"context"
	"time"

	"community-board-api/internal/domain"
	"community-board-api/internal/dto"
	"community-board-api/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc               func(ctx context.Context, user *domain.User) error
	FindByIDFunc             func(ctx context.Context, userID string) (*domain.User, error)
	UpdateFunc               func(ctx context.Context, user *domain.User) error
	UpdateProfilePictureFunc func(ctx context.Context, userID string, picture []byte) error
	ExistsByIDFunc           func(ctx context.Context, userID string) (bool, error)
	ExistsByNicknameFunc     func(ctx context.Context, nickname string) (bool, error)
	DeleteFunc               func(ctx context.Context, userID string) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) UpdateProfilePicture(ctx context.Context, userID string, picture []byte) error {
	if m.UpdateProfilePictureFunc != nil {
		return m.UpdateProfilePictureFunc(ctx, userID, picture)
	}
	return nil
}

func (m *MockUserRepository) ExistsByID(ctx context.Context, userID string) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, userID)
	}
	return false, nil
}

func (m *MockUserRepository) ExistsByNickname(ctx context.Context, nickname string) (bool, error) {
	if m.ExistsByNicknameFunc != nil {
		return m.ExistsByNicknameFunc(ctx, nickname)
	}
	return false, nil
}

func (m *MockUserRepository) Delete(ctx context.Context, userID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID)
	}
	return nil
}

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository struct {
	CreateFunc             func(ctx context.Context, post *domain.Post) error
	FindByIDFunc           func(ctx context.Context, postID int64) (*domain.Post, error)
	ListFunc               func(ctx context.Context, filters repository.PostFilters) ([]*domain.Post, int64, error)
	FindByUserIDFunc       func(ctx context.Context, userID string) ([]*domain.Post, error)
	UpdateFunc             func(ctx context.Context, post *domain.Post) error
	DeleteFunc             func(ctx context.Context, postID int64) error
	IncrementViewCountFunc func(ctx context.Context, postID int64) error
}

func (m *MockPostRepository) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, post)
	}
	return nil
}

func (m *MockPostRepository) FindByID(ctx context.Context, postID int64) (*domain.Post, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, postID)
	}
	return nil, nil
}

func (m *MockPostRepository) List(ctx context.Context, filters repository.PostFilters) ([]*domain.Post, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, 0, nil
}

func (m *MockPostRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Post, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockPostRepository) Update(ctx context.Context, post *domain.Post) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, post)
	}
	return nil
}

func (m *MockPostRepository) Delete(ctx context.Context, postID int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, postID)
	}
	return nil
}

func (m *MockPostRepository) IncrementViewCount(ctx context.Context, postID int64) error {
	if m.IncrementViewCountFunc != nil {
		return m.IncrementViewCountFunc(ctx, postID)
	}
	return nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc         func(ctx context.Context, comment *domain.Comment) error
	FindByIDFunc       func(ctx context.Context, commentID int64) (*domain.Comment, error)
	FindByPostIDFunc   func(ctx context.Context, postID int64) ([]*domain.Comment, error)
	FindByUserIDFunc   func(ctx context.Context, userID string) ([]*domain.Comment, error)
	CountByPostIDsFunc func(ctx context.Context, postIDs []int64) (map[int64]int64, error)
	UpdateFunc         func(ctx context.Context, comment *domain.Comment) error
	DeleteFunc         func(ctx context.Context, commentID int64) error
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, commentID int64) (*domain.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, commentID)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByPostID(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	if m.FindByPostIDFunc != nil {
		return m.FindByPostIDFunc(ctx, postID)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Comment, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockCommentRepository) CountByPostIDs(ctx context.Context, postIDs []int64) (map[int64]int64, error) {
	if m.CountByPostIDsFunc != nil {
		return m.CountByPostIDsFunc(ctx, postIDs)
	}
	return map[int64]int64{}, nil
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, commentID int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, commentID)
	}
	return nil
}

// MockPostLikeRepository is a mock implementation of PostLikeRepository
type MockPostLikeRepository struct {
	LikeFunc   func(ctx context.Context, userID string, postID int64) (*domain.PostLike, error)
	UnlikeFunc func(ctx context.Context, userID string, postID int64) error
	ExistsFunc func(ctx context.Context, userID string, postID int64) (bool, error)
}

func (m *MockPostLikeRepository) Like(ctx context.Context, userID string, postID int64) (*domain.PostLike, error) {
	if m.LikeFunc != nil {
		return m.LikeFunc(ctx, userID, postID)
	}
	return &domain.PostLike{UserID: userID, PostID: postID}, nil
}

func (m *MockPostLikeRepository) Unlike(ctx context.Context, userID string, postID int64) error {
	if m.UnlikeFunc != nil {
		return m.UnlikeFunc(ctx, userID, postID)
	}
	return nil
}

func (m *MockPostLikeRepository) Exists(ctx context.Context, userID string, postID int64) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, userID, postID)
	}
	return false, nil
}

// MockCommentLikeRepository is a mock implementation of CommentLikeRepository
type MockCommentLikeRepository struct {
	LikeFunc                func(ctx context.Context, userID string, commentID int64) (*domain.CommentLike, error)
	UnlikeFunc              func(ctx context.Context, userID string, commentID int64) error
	FindLikedCommentIDsFunc func(ctx context.Context, userID string, commentIDs []int64) (map[int64]bool, error)
}

func (m *MockCommentLikeRepository) Like(ctx context.Context, userID string, commentID int64) (*domain.CommentLike, error) {
	if m.LikeFunc != nil {
		return m.LikeFunc(ctx, userID, commentID)
	}
	return &domain.CommentLike{UserID: userID, CommentID: commentID}, nil
}

func (m *MockCommentLikeRepository) Unlike(ctx context.Context, userID string, commentID int64) error {
	if m.UnlikeFunc != nil {
		return m.UnlikeFunc(ctx, userID, commentID)
	}
	return nil
}

func (m *MockCommentLikeRepository) FindLikedCommentIDs(ctx context.Context, userID string, commentIDs []int64) (map[int64]bool, error) {
	if m.FindLikedCommentIDsFunc != nil {
		return m.FindLikedCommentIDsFunc(ctx, userID, commentIDs)
	}
	return map[int64]bool{}, nil
}

// MockScrapRepository is a mock implementation of ScrapRepository
type MockScrapRepository struct {
	CreateFunc       func(ctx context.Context, scrap *domain.Scrap) error
	DeleteFunc       func(ctx context.Context, userID string, postID int64) error
	FindByUserIDFunc func(ctx context.Context, userID string) ([]domain.Scrap, error)
	ExistsFunc       func(ctx context.Context, userID string, postID int64) (bool, error)
}

func (m *MockScrapRepository) Create(ctx context.Context, scrap *domain.Scrap) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, scrap)
	}
	return nil
}

func (m *MockScrapRepository) Delete(ctx context.Context, userID string, postID int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, postID)
	}
	return nil
}

func (m *MockScrapRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Scrap, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockScrapRepository) Exists(ctx context.Context, userID string, postID int64) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, userID, postID)
	}
	return false, nil
}

// MockNotificationRepository is a mock implementation of NotificationRepository
type MockNotificationRepository struct {
	CreateFunc        func(ctx context.Context, notification *domain.Notification) error
	FindByUserIDFunc  func(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkAsReadFunc    func(ctx context.Context, notificationID int64, userID string) error
	MarkAllAsReadFunc func(ctx context.Context, userID string) error
	CountUnreadFunc   func(ctx context.Context, userID string) (int64, error)
	DeleteOldFunc     func(ctx context.Context, olderThan time.Time) (int64, error)
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, notification)
	}
	return nil
}

func (m *MockNotificationRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Notification, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockNotificationRepository) MarkAsRead(ctx context.Context, notificationID int64, userID string) error {
	if m.MarkAsReadFunc != nil {
		return m.MarkAsReadFunc(ctx, notificationID, userID)
	}
	return nil
}

func (m *MockNotificationRepository) MarkAllAsRead(ctx context.Context, userID string) error {
	if m.MarkAllAsReadFunc != nil {
		return m.MarkAllAsReadFunc(ctx, userID)
	}
	return nil
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, userID)
	}
	return 0, nil
}

func (m *MockNotificationRepository) DeleteOld(ctx context.Context, olderThan time.Time) (int64, error) {
	if m.DeleteOldFunc != nil {
		return m.DeleteOldFunc(ctx, olderThan)
	}
	return 0, nil
}

// MockNotificationService is a mock implementation of NotificationService
type MockNotificationService struct {
	PushFunc        func(ctx context.Context, notification *domain.Notification) error
	ListFunc        func(ctx context.Context, userID string) ([]*dto.NotificationResponse, error)
	MarkReadFunc    func(ctx context.Context, notificationID int64, userID string) error
	MarkAllReadFunc func(ctx context.Context, userID string) error
	UnreadCountFunc func(ctx context.Context, userID string) (*dto.UnreadCountResponse, error)
	CleanupOldFunc  func(ctx context.Context) (int64, error)
}

func (m *MockNotificationService) Push(ctx context.Context, notification *domain.Notification) error {
	if m.PushFunc != nil {
		return m.PushFunc(ctx, notification)
	}
	return nil
}

func (m *MockNotificationService) List(ctx context.Context, userID string) ([]*dto.NotificationResponse, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockNotificationService) MarkRead(ctx context.Context, notificationID int64, userID string) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, notificationID, userID)
	}
	return nil
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, userID string) error {
	if m.MarkAllReadFunc != nil {
		return m.MarkAllReadFunc(ctx, userID)
	}
	return nil
}

func (m *MockNotificationService) UnreadCount(ctx context.Context, userID string) (*dto.UnreadCountResponse, error) {
	if m.UnreadCountFunc != nil {
		return m.UnreadCountFunc(ctx, userID)
	}
	return &dto.UnreadCountResponse{}, nil
}

func (m *MockNotificationService) CleanupOld(ctx context.Context) (int64, error) {
	if m.CleanupOldFunc != nil {
		return m.CleanupOldFunc(ctx)
	}
	return 0, nil
}
