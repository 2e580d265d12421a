package domain

import "time"

// Scrap is a user's bookmark of a post
type Scrap struct {
	ScrapID     int64     `gorm:"column:scrap_id;primaryKey;autoIncrement" json:"scrapId"`
	UserID      string    `gorm:"column:user_id;size:100;not null;uniqueIndex:uq_scraps_user_post" json:"userId"`
	PostID      int64     `gorm:"column:post_id;not null;index:idx_scraps_post_id;uniqueIndex:uq_scraps_user_post" json:"postId"`
	CreatedDate time.Time `gorm:"column:created_date;not null;autoCreateTime" json:"createdDate"`

	User User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Post Post `gorm:"foreignKey:PostID;references:PostID;constraint:OnDelete:CASCADE" json:"post,omitempty"`
}

// TableName specifies the table name for Scrap
func (Scrap) TableName() string {
	return "scraps"
}
