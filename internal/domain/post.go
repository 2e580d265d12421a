package domain

import "time"

// Post represents an article on the community board
type Post struct {
	PostID      int64     `gorm:"column:post_id;primaryKey;autoIncrement" json:"postId"`
	UserID      string    `gorm:"column:user_id;size:100;not null;index:idx_posts_user_id" json:"userId"`
	Category    string    `gorm:"column:category;size:100;not null;index:idx_posts_category" json:"category"`
	Title       string    `gorm:"column:title;size:100;not null" json:"title"`
	Content     string    `gorm:"column:content;type:text" json:"content"`
	Photo       []byte    `gorm:"column:photo" json:"-"`
	LikeCount   int       `gorm:"column:like_count;not null;default:0" json:"likeCount"`
	ViewCount   int       `gorm:"column:view_count;not null;default:0" json:"viewCount"`
	CreatedDate time.Time `gorm:"column:created_date;not null;autoCreateTime;index:idx_posts_created_date" json:"createdDate"`

	// Load-only association, populated via Preload. Writes always go through UserID.
	User     User      `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Comments []Comment `gorm:"foreignKey:PostID;references:PostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "posts"
}

// HasPhoto reports whether the post carries an attached photo
func (p *Post) HasPhoto() bool {
	return len(p.Photo) > 0
}
