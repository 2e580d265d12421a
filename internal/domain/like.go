package domain

import "time"

// PostLike is a join record expressing a single user's approval of a post.
// The composite unique index makes a second like by the same user a
// constraint violation instead of a silent duplicate.
type PostLike struct {
	PostLikeID  int64     `gorm:"column:post_like_id;primaryKey;autoIncrement" json:"postLikeId"`
	UserID      string    `gorm:"column:user_id;size:100;not null;uniqueIndex:uq_post_likes_user_post" json:"userId"`
	PostID      int64     `gorm:"column:post_id;not null;index:idx_post_likes_post_id;uniqueIndex:uq_post_likes_user_post" json:"postId"`
	CreatedDate time.Time `gorm:"column:created_date;not null;autoCreateTime" json:"createdDate"`

	User User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Post Post `gorm:"foreignKey:PostID;references:PostID;constraint:OnDelete:CASCADE" json:"post,omitempty"`
}

// TableName specifies the table name for PostLike
func (PostLike) TableName() string {
	return "post_likes"
}

// CommentLike is a join record expressing a single user's approval of a comment
type CommentLike struct {
	CommentLikeID int64     `gorm:"column:comment_like_id;primaryKey;autoIncrement" json:"commentLikeId"`
	UserID        string    `gorm:"column:user_id;size:100;not null;uniqueIndex:uq_comment_likes_user_comment" json:"userId"`
	CommentID     int64     `gorm:"column:comment_id;not null;index:idx_comment_likes_comment_id;uniqueIndex:uq_comment_likes_user_comment" json:"commentId"`
	CreatedDate   time.Time `gorm:"column:created_date;not null;autoCreateTime" json:"createdDate"`

	User    User    `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Comment Comment `gorm:"foreignKey:CommentID;references:CommentID;constraint:OnDelete:CASCADE" json:"comment,omitempty"`
}

// TableName specifies the table name for CommentLike
func (CommentLike) TableName() string {
	return "comment_likes"
}
