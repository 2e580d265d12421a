package dto

import (
	"fmt"
	"time"

	"community-board-api/internal/domain"
)

// photoURL derives the asset path for an owner's photo bytes. Raw bytes are
// never embedded in responses; empty bytes yield no URL at all.
func photoURL(ownerID string, data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return fmt.Sprintf("/users/%s/photo", ownerID)
}

func profilePhotoURL(u *domain.User) string {
	return photoURL(u.UserID, u.ProfilePicture)
}

// CreatePostRequest represents the request to create a new post
type CreatePostRequest struct {
	Category string `json:"category" binding:"required,min=1,max=100"`
	Title    string `json:"title" binding:"required,min=1,max=100"`
	Content  string `json:"content" binding:"required,min=1"`
	Photo    []byte `json:"photo,omitempty"`
}

// UpdatePostRequest represents the request to update a post. Nil fields are
// left unchanged.
type UpdatePostRequest struct {
	Category *string `json:"category,omitempty" binding:"omitempty,min=1,max=100"`
	Title    *string `json:"title,omitempty" binding:"omitempty,min=1,max=100"`
	Content  *string `json:"content,omitempty" binding:"omitempty,min=1"`
	Photo    []byte  `json:"photo,omitempty"`
}

// PostDetailResponse represents a post with its comments, projected for the
// requesting viewer. isMine carries an explicit json name as part of the
// wire contract.
type PostDetailResponse struct {
	PostID                  int64              `json:"postId"`
	CategoryName            string             `json:"categoryName"`
	Title                   string             `json:"title"`
	Content                 string             `json:"content"`
	PhotoURL                string             `json:"photoUrl,omitempty"`
	Nickname                string             `json:"nickname"`
	CreatedDate             time.Time          `json:"createdDate"`
	LikeCount               int                `json:"likeCount"`
	ViewCount               int                `json:"viewCount"`
	Comments                []*CommentResponse `json:"comments"`
	AuthorProfilePictureURL string             `json:"authorProfilePictureUrl,omitempty"`
	IsMine                  bool               `json:"isMine"`
	UserID                  string             `json:"userId"`
}

// NewPostDetailResponse builds a PostDetailResponse from a post whose owning
// User is resolved, the post's comments (each with its owning User resolved,
// in display order), the viewer's id (empty for anonymous) and the set of
// comment ids the viewer has liked.
func NewPostDetailResponse(post *domain.Post, comments []*domain.Comment, viewerID string, likedCommentIDs map[int64]bool) *PostDetailResponse {
	commentResponses := make([]*CommentResponse, 0, len(comments))
	for _, comment := range comments {
		commentResponses = append(commentResponses, NewCommentResponse(comment, viewerID, likedCommentIDs))
	}

	return &PostDetailResponse{
		PostID:                  post.PostID,
		CategoryName:            post.Category,
		Title:                   post.Title,
		Content:                 post.Content,
		PhotoURL:                photoURL(post.UserID, post.Photo),
		Nickname:                post.User.Nickname,
		CreatedDate:             post.CreatedDate,
		LikeCount:               post.LikeCount,
		ViewCount:               post.ViewCount,
		Comments:                commentResponses,
		AuthorProfilePictureURL: profilePhotoURL(&post.User),
		IsMine:                  viewerID != "" && viewerID == post.UserID,
		UserID:                  post.UserID,
	}
}

// PostPreviewResponse represents one entry of the post list
type PostPreviewResponse struct {
	PostID                int64     `json:"postId"`
	CategoryName          string    `json:"categoryName"`
	Title                 string    `json:"title"`
	Content               string    `json:"content"`
	PhotoURL              string    `json:"photoUrl,omitempty"`
	Nickname              string    `json:"nickname"`
	CreatedDate           time.Time `json:"createdDate"`
	LikeCount             int       `json:"likeCount"`
	ViewCount             int       `json:"viewCount"`
	CommentCount          int64     `json:"commentCount"`
	AuthorProfilePicture  string    `json:"authorProfilePicture,omitempty"`
}

// NewPostPreviewResponse builds a list entry from a post with its owning
// User resolved and a precomputed comment count
func NewPostPreviewResponse(post *domain.Post, commentCount int64) *PostPreviewResponse {
	return &PostPreviewResponse{
		PostID:               post.PostID,
		CategoryName:         post.Category,
		Title:                post.Title,
		Content:              post.Content,
		PhotoURL:             photoURL(post.UserID, post.Photo),
		Nickname:             post.User.Nickname,
		CreatedDate:          post.CreatedDate,
		LikeCount:            post.LikeCount,
		ViewCount:            post.ViewCount,
		CommentCount:         commentCount,
		AuthorProfilePicture: profilePhotoURL(&post.User),
	}
}

// PostListResponse represents a page of the post list
type PostListResponse struct {
	Posts          []*PostPreviewResponse `json:"posts"`
	TotalPostCount int64                  `json:"totalPostCount"`
}

// LikeResponse reports the like state after a like/unlike operation
type LikeResponse struct {
	IsLiked   bool `json:"isLiked"`
	LikeCount int  `json:"likeCount"`
}
