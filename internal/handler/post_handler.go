package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"community-board-api/internal/dto"
	"community-board-api/internal/middleware"
	"community-board-api/internal/repository"
	"community-board-api/internal/response"
	"community-board-api/internal/service"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type PostHandler struct {
	postService service.PostService
}

func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// ListPosts godoc
// @Summary      List posts
// @Description  Returns a page of post previews, filtered and sorted
// @Tags         posts
// @Produce      json
// @Param        page query int false "Page number (1-based)"
// @Param        size query int false "Page size" default(20)
// @Param        category query string false "Category filter"
// @Param        keyword query string false "Title/content keyword"
// @Param        sortCode query int false "0 newest, 1 most liked, 2 most viewed"
// @Success      200 {object} response.SuccessResponse{data=dto.PostListResponse}
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	filters := repository.PostFilters{
		Category: c.Query("category"),
		Keyword:  c.Query("keyword"),
		SortCode: queryInt(c, "sortCode", repository.SortNewest),
		Page:     queryInt(c, "page", 1),
		Size:     queryInt(c, "size", defaultPageSize),
	}
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Size < 1 || filters.Size > maxPageSize {
		filters.Size = defaultPageSize
	}

	posts, err := h.postService.List(c.Request.Context(), filters)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, posts)
}

// GetPost godoc
// @Summary      Get post detail
// @Description  Returns the post with its comments and increments the view count
// @Tags         posts
// @Produce      json
// @Param        postId path int true "Post ID"
// @Success      200 {object} response.SuccessResponse{data=dto.PostDetailResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /posts/{postId} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	post, err := h.postService.GetDetail(c.Request.Context(), postID, middleware.CurrentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, post)
}

// CreatePost godoc
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreatePostRequest true "Post payload"
// @Success      201 {object} response.SuccessResponse{data=dto.PostDetailResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	post, err := h.postService.Create(c.Request.Context(), middleware.CurrentUserID(c), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, post)
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Applies the provided fields; omitted fields are left unchanged
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId path int true "Post ID"
// @Param        request body dto.UpdatePostRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.PostDetailResponse}
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /posts/{postId} [patch]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	post, err := h.postService.Update(c.Request.Context(), postID, middleware.CurrentUserID(c), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        postId path int true "Post ID"
// @Success      200 {object} response.SuccessResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /posts/{postId} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	if err := h.postService.Delete(c.Request.Context(), postID, middleware.CurrentUserID(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Post deleted"})
}

// MyPosts godoc
// @Summary      List the current user's posts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.SuccessResponse{data=[]dto.PostPreviewResponse}
// @Failure      401 {object} response.ErrorResponse
// @Router       /users/me/posts [get]
func (h *PostHandler) MyPosts(c *gin.Context) {
	posts, err := h.postService.MyPosts(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, posts)
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
