package dto

import (
	"time"

	"community-board-api/internal/domain"
)

// NotificationResponse represents a notification record for the recipient
type NotificationResponse struct {
	NotificationID int64     `json:"notificationId"`
	UserID         string    `json:"userId"`
	PostID         *int64    `json:"postId,omitempty"`
	CommentID      *int64    `json:"commentId,omitempty"`
	PostLikeID     *int64    `json:"postLikeId,omitempty"`
	CommentLikeID  *int64    `json:"commentLikeId,omitempty"`
	Message        string    `json:"message"`
	Read           bool      `json:"read"`
	CreatedDate    time.Time `json:"createdDate"`
}

// NewNotificationResponse builds a NotificationResponse from a record
func NewNotificationResponse(n *domain.Notification) *NotificationResponse {
	return &NotificationResponse{
		NotificationID: n.NotificationID,
		UserID:         n.UserID,
		PostID:         n.PostID,
		CommentID:      n.CommentID,
		PostLikeID:     n.PostLikeID,
		CommentLikeID:  n.CommentLikeID,
		Message:        n.Message,
		Read:           n.Read,
		CreatedDate:    n.CreatedDate,
	}
}

// UnreadCountResponse reports the number of unread notifications
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
