package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"community-board-api/internal/middleware"
	"community-board-api/internal/response"
	"community-board-api/internal/service"
)

type LikeHandler struct {
	likeService service.LikeService
}

func NewLikeHandler(likeService service.LikeService) *LikeHandler {
	return &LikeHandler{
		likeService: likeService,
	}
}

// LikePost godoc
// @Summary      Like a post
// @Description  Records the like and notifies the post author; liking twice is a conflict
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        postId path int true "Post ID"
// @Success      200 {object} response.SuccessResponse{data=dto.LikeResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Router       /posts/{postId}/like [post]
func (h *LikeHandler) LikePost(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	result, err := h.likeService.LikePost(c.Request.Context(), middleware.CurrentUserID(c), postID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// UnlikePost godoc
// @Summary      Remove a like from a post
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        postId path int true "Post ID"
// @Success      200 {object} response.SuccessResponse{data=dto.LikeResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /posts/{postId}/like [delete]
func (h *LikeHandler) UnlikePost(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	result, err := h.likeService.UnlikePost(c.Request.Context(), middleware.CurrentUserID(c), postID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// LikeComment godoc
// @Summary      Like a comment
// @Description  Records the like and notifies the comment author; liking twice is a conflict
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        postId path int true "Post ID"
// @Param        commentId path int true "Comment ID"
// @Success      200 {object} response.SuccessResponse{data=dto.LikeResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Router       /posts/{postId}/comments/{commentId}/likes [post]
func (h *LikeHandler) LikeComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	result, err := h.likeService.LikeComment(c.Request.Context(), middleware.CurrentUserID(c), commentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// UnlikeComment godoc
// @Summary      Remove a like from a comment
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        postId path int true "Post ID"
// @Param        commentId path int true "Comment ID"
// @Success      200 {object} response.SuccessResponse{data=dto.LikeResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /posts/{postId}/comments/{commentId}/likes [delete]
func (h *LikeHandler) UnlikeComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	result, err := h.likeService.UnlikeComment(c.Request.Context(), middleware.CurrentUserID(c), commentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}
