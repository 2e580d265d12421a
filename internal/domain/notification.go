package domain

import (
	"fmt"
	"time"
)

// Notification is a denormalized activity record for a recipient user.
// The schema keeps four nullable reference columns; the constructors below
// are the only places that populate them, so each row references the single
// entity relevant to its event.
type Notification struct {
	NotificationID int64     `gorm:"column:notification_id;primaryKey;autoIncrement" json:"notificationId"`
	UserID         string    `gorm:"column:user_id;size:100;not null;index:idx_notifications_user_id" json:"userId"`
	PostID         *int64    `gorm:"column:post_id" json:"postId,omitempty"`
	CommentID      *int64    `gorm:"column:comment_id" json:"commentId,omitempty"`
	PostLikeID     *int64    `gorm:"column:post_like_id" json:"postLikeId,omitempty"`
	CommentLikeID  *int64    `gorm:"column:comment_like_id" json:"commentLikeId,omitempty"`
	Message        string    `gorm:"column:message;size:255;not null" json:"message"`
	Read           bool      `gorm:"column:read;not null;default:false;index:idx_notifications_read" json:"read"`
	CreatedDate    time.Time `gorm:"column:created_date;not null;autoCreateTime" json:"createdDate"`

	User User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// TableName specifies the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}

// NewCommentNotification builds the record sent to a post owner when someone
// comments on their post.
func NewCommentNotification(recipientID string, actorNickname string, comment *Comment) *Notification {
	return &Notification{
		UserID:    recipientID,
		PostID:    &comment.PostID,
		CommentID: &comment.CommentID,
		Message:   fmt.Sprintf("%s commented on your post", actorNickname),
	}
}

// NewPostLikeNotification builds the record sent to a post owner when someone
// likes their post.
func NewPostLikeNotification(recipientID string, actorNickname string, like *PostLike) *Notification {
	return &Notification{
		UserID:     recipientID,
		PostID:     &like.PostID,
		PostLikeID: &like.PostLikeID,
		Message:    fmt.Sprintf("%s liked your post", actorNickname),
	}
}

// NewCommentLikeNotification builds the record sent to a comment owner when
// someone likes their comment.
func NewCommentLikeNotification(recipientID string, actorNickname string, like *CommentLike) *Notification {
	return &Notification{
		UserID:        recipientID,
		CommentID:     &like.CommentID,
		CommentLikeID: &like.CommentLikeID,
		Message:       fmt.Sprintf("%s liked your comment", actorNickname),
	}
}
