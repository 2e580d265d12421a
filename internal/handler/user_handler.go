package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"community-board-api/internal/dto"
	"community-board-api/internal/middleware"
	"community-board-api/internal/response"
	"community-board-api/internal/service"
)

// maxProfilePictureBytes caps the accepted upload body size.
const maxProfilePictureBytes = 5 << 20

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a user account with the given credentials and profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "Registration payload"
// @Success      201 {object} response.SuccessResponse{data=dto.UserResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Router       /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	user, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, user)
}

// GetMe godoc
// @Summary      Get current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.SuccessResponse{data=dto.UserResponse}
// @Failure      401 {object} response.ErrorResponse
// @Router       /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, user)
}

// CheckUserID godoc
// @Summary      Check user ID availability
// @Description  Returns 200 when the ID is free, 409 when already taken
// @Tags         users
// @Produce      json
// @Param        userId query string true "User ID to check"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Router       /users/checkId [get]
func (h *UserHandler) CheckUserID(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "userId is required")
		return
	}

	if err := h.userService.CheckUserIDAvailable(c.Request.Context(), userID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"available": true})
}

// CheckNickname godoc
// @Summary      Check nickname availability
// @Description  Returns 200 when the nickname is free, 409 when already taken
// @Tags         users
// @Produce      json
// @Param        nickname query string true "Nickname to check"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Router       /users/checkNickname [get]
func (h *UserHandler) CheckNickname(c *gin.Context) {
	nickname := c.Query("nickname")
	if nickname == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "nickname is required")
		return
	}

	if err := h.userService.CheckNicknameAvailable(c.Request.Context(), nickname); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"available": true})
}

// UpdateMe godoc
// @Summary      Update current user's profile
// @Description  Applies the provided fields only; omitted fields are unchanged
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpdateUserRequest true "Profile fields to change"
// @Success      200 {object} response.SuccessResponse{data=dto.UserResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Router       /users/me [patch]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), middleware.CurrentUserID(c), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, user)
}

// DeleteMe godoc
// @Summary      Delete current user's account
// @Description  Requires the current password; the user's content is removed with the account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.DeleteAccountRequest true "Password confirmation"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Router       /users/me [delete]
func (h *UserHandler) DeleteMe(c *gin.Context) {
	var req dto.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	userID := middleware.CurrentUserID(c)
	if err := h.userService.DeleteAccount(c.Request.Context(), userID, req.Password); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Account deleted"})
}

// GetProfilePicture godoc
// @Summary      Get a user's profile picture
// @Description  Streams the stored picture bytes
// @Tags         users
// @Produce      image/jpeg
// @Param        userId path string true "User ID"
// @Success      200 {file} binary
// @Failure      404 {object} response.ErrorResponse
// @Router       /users/{userId}/photo [get]
func (h *UserHandler) GetProfilePicture(c *gin.Context) {
	picture, err := h.userService.GetProfilePicture(c.Request.Context(), c.Param("userId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, http.DetectContentType(picture), picture)
}

// UpdateProfilePicture godoc
// @Summary      Replace the current user's profile picture
// @Description  Accepts raw image bytes as the request body
// @Tags         users
// @Accept       image/jpeg
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Router       /users/me/photo [put]
func (h *UserHandler) UpdateProfilePicture(c *gin.Context) {
	picture, err := io.ReadAll(io.LimitReader(c.Request.Body, maxProfilePictureBytes+1))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Failed to read request body")
		return
	}
	if len(picture) > maxProfilePictureBytes {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Profile picture too large")
		return
	}

	userID := middleware.CurrentUserID(c)
	if err := h.userService.UpdateProfilePicture(c.Request.Context(), userID, picture); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Profile picture updated"})
}
