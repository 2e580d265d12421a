package dto

import (
	"time"

	"community-board-api/internal/domain"
)

// CreateCommentRequest represents the request to create a new comment
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}

// UpdateCommentRequest represents the request to update a comment
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}

// CommentResponse represents a comment projected for the requesting viewer.
// The isMine/isLiked json names are part of the wire contract with the
// frontend and must not change.
type CommentResponse struct {
	CommentID         int64     `json:"commentId"`
	Nickname          string    `json:"nickname"`
	ProfilePictureURL string    `json:"profilePictureUrl,omitempty"`
	Content           string    `json:"content"`
	LikeCount         int       `json:"likeCount"`
	CreatedDate       time.Time `json:"createdDate"`
	UserID            string    `json:"userId"`
	IsMine            bool      `json:"isMine"`
	IsLiked           bool      `json:"isLiked"`
}

// NewCommentResponse builds a CommentResponse from a comment whose owning
// User is already resolved. viewerID is empty for anonymous viewers;
// likedCommentIDs holds the ids of comments the viewer has liked.
func NewCommentResponse(comment *domain.Comment, viewerID string, likedCommentIDs map[int64]bool) *CommentResponse {
	return &CommentResponse{
		CommentID:         comment.CommentID,
		Nickname:          comment.User.Nickname,
		ProfilePictureURL: profilePhotoURL(&comment.User),
		Content:           comment.Content,
		LikeCount:         comment.LikeCount,
		CreatedDate:       comment.CreatedDate,
		UserID:            comment.UserID,
		IsMine:            viewerID != "" && viewerID == comment.UserID,
		IsLiked:           likedCommentIDs[comment.CommentID],
	}
}

// CommentListResponse represents the comment collection for a post
type CommentListResponse struct {
	Comments   []*CommentResponse `json:"comments"`
	TotalCount int64              `json:"totalCount"`
}

// MyCommentResponse represents one of the viewer's own comments together
// with the title of the post it belongs to
type MyCommentResponse struct {
	CommentID   int64     `json:"commentId"`
	PostID      int64     `json:"postId"`
	PostTitle   string    `json:"postTitle"`
	Content     string    `json:"content"`
	LikeCount   int       `json:"likeCount"`
	CreatedDate time.Time `json:"createdDate"`
}

// NewMyCommentResponse builds a MyCommentResponse from a comment whose Post
// association is resolved
func NewMyCommentResponse(comment *domain.Comment) *MyCommentResponse {
	return &MyCommentResponse{
		CommentID:   comment.CommentID,
		PostID:      comment.PostID,
		PostTitle:   comment.Post.Title,
		Content:     comment.Content,
		LikeCount:   comment.LikeCount,
		CreatedDate: comment.CreatedDate,
	}
}
