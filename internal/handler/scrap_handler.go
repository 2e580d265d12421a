package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"community-board-api/internal/middleware"
	"community-board-api/internal/response"
	"community-board-api/internal/service"
)

type ScrapHandler struct {
	scrapService service.ScrapService
}

func NewScrapHandler(scrapService service.ScrapService) *ScrapHandler {
	return &ScrapHandler{
		scrapService: scrapService,
	}
}

// ScrapPost godoc
// @Summary      Scrap a post
// @Description  Bookmarks the post for the current user; scrapping twice is a conflict
// @Tags         scraps
// @Produce      json
// @Security     BearerAuth
// @Param        postId path int true "Post ID"
// @Success      200 {object} response.SuccessResponse{data=dto.ScrapStateResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Router       /posts/{postId}/scrap [post]
func (h *ScrapHandler) ScrapPost(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	result, err := h.scrapService.Scrap(c.Request.Context(), middleware.CurrentUserID(c), postID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// UnscrapPost godoc
// @Summary      Remove a scrap
// @Tags         scraps
// @Produce      json
// @Security     BearerAuth
// @Param        postId path int true "Post ID"
// @Success      200 {object} response.SuccessResponse{data=dto.ScrapStateResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /posts/{postId}/scrap [delete]
func (h *ScrapHandler) UnscrapPost(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	result, err := h.scrapService.Unscrap(c.Request.Context(), middleware.CurrentUserID(c), postID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// MyScraps godoc
// @Summary      List the current user's scrapped posts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.SuccessResponse{data=[]dto.ScrapResponse}
// @Failure      401 {object} response.ErrorResponse
// @Router       /users/me/scraps [get]
func (h *ScrapHandler) MyScraps(c *gin.Context) {
	scraps, err := h.scrapService.MyScraps(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, scraps)
}
