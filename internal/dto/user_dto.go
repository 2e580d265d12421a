package dto

import (
	"time"

	"community-board-api/internal/domain"
)

// RegisterRequest represents the request to register a new user
type RegisterRequest struct {
	UserID      string `json:"userId" binding:"required,min=4,max=100"`
	Password    string `json:"password" binding:"required,min=8,max=64"`
	Email       string `json:"email" binding:"required,email,max=100"`
	Name        string `json:"name" binding:"required,max=100"`
	PhoneNumber string `json:"phoneNumber" binding:"required,max=20"`
	Nickname    string `json:"nickname" binding:"required,max=100"`
}

// UpdateUserRequest carries a partial profile update. Nil fields are
// left unchanged.
type UpdateUserRequest struct {
	Email       *string `json:"email" binding:"omitempty,email,max=100"`
	Name        *string `json:"name" binding:"omitempty,max=100"`
	PhoneNumber *string `json:"phoneNumber" binding:"omitempty,max=20"`
	Nickname    *string `json:"nickname" binding:"omitempty,max=100"`
	Password    *string `json:"password" binding:"omitempty,min=8,max=64"`
}

// DeleteAccountRequest confirms account deletion with the current password
type DeleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}

// UserResponse represents a user without credentials or raw picture bytes
type UserResponse struct {
	UserID            string    `json:"userId"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	PhoneNumber       string    `json:"phoneNumber"`
	Nickname          string    `json:"nickname"`
	Authority         string    `json:"authority"`
	ProfilePictureURL string    `json:"profilePictureUrl,omitempty"`
	CreatedDate       time.Time `json:"createdDate"`
}

// NewUserResponse builds a UserResponse from a user record
func NewUserResponse(user *domain.User) *UserResponse {
	return &UserResponse{
		UserID:            user.UserID,
		Email:             user.Email,
		Name:              user.Name,
		PhoneNumber:       user.PhoneNumber,
		Nickname:          user.Nickname,
		Authority:         user.Authority,
		ProfilePictureURL: profilePhotoURL(user),
		CreatedDate:       user.CreatedDate,
	}
}
