package domain

import "time"

// Comment represents a comment attached to a post
type Comment struct {
	CommentID   int64     `gorm:"column:comment_id;primaryKey;autoIncrement" json:"commentId"`
	UserID      string    `gorm:"column:user_id;size:100;not null;index:idx_comments_user_id" json:"userId"`
	PostID      int64     `gorm:"column:post_id;not null;index:idx_comments_post_id" json:"postId"`
	Content     string    `gorm:"column:content;type:text;not null" json:"content"`
	LikeCount   int       `gorm:"column:like_count;not null;default:0" json:"likeCount"`
	CreatedDate time.Time `gorm:"column:created_date;not null;autoCreateTime" json:"createdDate"`

	User User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Post Post `gorm:"foreignKey:PostID;references:PostID;constraint:OnDelete:CASCADE" json:"post,omitempty"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
