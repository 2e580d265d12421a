package domain

import "time"

// User represents a registered member of the board
type User struct {
	UserID         string    `gorm:"column:user_id;primaryKey;size:100" json:"userId"`
	Password       string    `gorm:"column:password;size:64;not null" json:"-"`
	Email          string    `gorm:"column:email;size:100;not null" json:"email"`
	Name           string    `gorm:"column:name;size:100;not null" json:"name"`
	PhoneNumber    string    `gorm:"column:phone_number;size:20;not null" json:"phoneNumber"`
	Nickname       string    `gorm:"column:nickname;size:100;not null" json:"nickname"`
	Authority      string    `gorm:"column:authority;size:100;not null;default:'USER'" json:"authority"`
	ProfilePicture []byte    `gorm:"column:profile_picture" json:"-"`
	CreatedDate    time.Time `gorm:"column:created_date;not null;autoCreateTime" json:"createdDate"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// HasProfilePicture reports whether the user has uploaded a profile picture
func (u *User) HasProfilePicture() bool {
	return len(u.ProfilePicture) > 0
}
