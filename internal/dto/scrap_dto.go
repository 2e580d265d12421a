package dto

import (
	"time"

	"community-board-api/internal/domain"
)

// ScrapResponse represents one of the viewer's scraps, carrying enough of
// the scrapped post for a bookmark list entry
type ScrapResponse struct {
	ScrapID               int64     `json:"scrapId"`
	PostID                int64     `json:"postId"`
	PostTitle             string    `json:"postTitle"`
	PostContent           string    `json:"postContent"`
	PostCreatedDate       time.Time `json:"postCreatedDate"`
	AuthorNickname        string    `json:"authorNickname"`
	PostPhotoURL          string    `json:"postPhotoUrl,omitempty"`
	AuthorProfilePicture  string    `json:"authorProfilePicture,omitempty"`
}

// NewScrapResponse builds a ScrapResponse from a scrap whose Post and the
// post's owning User are resolved
func NewScrapResponse(scrap *domain.Scrap) *ScrapResponse {
	return &ScrapResponse{
		ScrapID:              scrap.ScrapID,
		PostID:               scrap.PostID,
		PostTitle:            scrap.Post.Title,
		PostContent:          scrap.Post.Content,
		PostCreatedDate:      scrap.Post.CreatedDate,
		AuthorNickname:       scrap.Post.User.Nickname,
		PostPhotoURL:         photoURL(scrap.Post.UserID, scrap.Post.Photo),
		AuthorProfilePicture: profilePhotoURL(&scrap.Post.User),
	}
}

// ScrapStateResponse reports the scrap state after a scrap/unscrap operation
type ScrapStateResponse struct {
	IsScrapped bool `json:"isScrapped"`
}
