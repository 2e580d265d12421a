package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"community-board-api/internal/domain"
	"community-board-api/internal/dto"
	"community-board-api/internal/repository"
	"community-board-api/internal/response"
)

// UserService defines the interface for user business logic
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	CheckUserIDAvailable(ctx context.Context, userID string) error
	CheckNicknameAvailable(ctx context.Context, nickname string) error
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteAccount(ctx context.Context, userID, password string) error
	GetProfilePicture(ctx context.Context, userID string) ([]byte, error)
	UpdateProfilePicture(ctx context.Context, userID string, picture []byte) error
}

// userServiceImpl is the implementation of UserService
type userServiceImpl struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo repository.UserRepository, logger *zap.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates an account with a bcrypt-hashed password
func (s *userServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to hash password", err.Error())
	}

	user := &domain.User{
		UserID:      req.UserID,
		Password:    string(hash),
		Email:       req.Email,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Nickname:    req.Nickname,
		Authority:   "USER",
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "User ID already taken", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create user", err.Error())
	}

	s.logger.Info("user registered", zap.String("userId", user.UserID))
	return dto.NewUserResponse(user), nil
}

func (s *userServiceImpl) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load user", err.Error())
	}
	return dto.NewUserResponse(user), nil
}

// CheckUserIDAvailable reports whether a user ID is free to register
func (s *userServiceImpl) CheckUserIDAvailable(ctx context.Context, userID string) error {
	taken, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to check user ID", err.Error())
	}
	if taken {
		return response.NewAppError(response.ErrCodeAlreadyExists, "User ID already taken", "")
	}
	return nil
}

// CheckNicknameAvailable reports whether a nickname is free to register
func (s *userServiceImpl) CheckNicknameAvailable(ctx context.Context, nickname string) error {
	taken, err := s.userRepo.ExistsByNickname(ctx, nickname)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to check nickname", err.Error())
	}
	if taken {
		return response.NewAppError(response.ErrCodeAlreadyExists, "Nickname already taken", "")
	}
	return nil
}

// UpdateProfile applies the non-nil fields of the request to the
// caller's account. A new password is rehashed before storage.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load user", err.Error())
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Nickname != nil {
		user.Nickname = *req.Nickname
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to hash password", err.Error())
		}
		user.Password = string(hash)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Nickname already taken", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update user", err.Error())
	}

	s.logger.Info("user profile updated", zap.String("userId", userID))
	return dto.NewUserResponse(user), nil
}

// DeleteAccount removes the account after verifying the current
// password. The user's content goes with it via FK cascade.
func (s *userServiceImpl) DeleteAccount(ctx context.Context, userID, password string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load user", err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return response.NewAppError(response.ErrCodeUnauthorized, "Password does not match", "")
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete user", err.Error())
	}

	s.logger.Info("user account deleted", zap.String("userId", userID))
	return nil
}

// GetProfilePicture returns the stored picture bytes. A user without a
// picture is indistinguishable from a missing user on this endpoint.
func (s *userServiceImpl) GetProfilePicture(ctx context.Context, userID string) ([]byte, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load user", err.Error())
	}
	if !user.HasProfilePicture() {
		return nil, response.NewAppError(response.ErrCodeNotFound, "Profile picture not found", "")
	}
	return user.ProfilePicture, nil
}

func (s *userServiceImpl) UpdateProfilePicture(ctx context.Context, userID string, picture []byte) error {
	if len(picture) == 0 {
		return response.NewAppError(response.ErrCodeValidation, "Picture data is required", "")
	}

	if err := s.userRepo.UpdateProfilePicture(ctx, userID, picture); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to update profile picture", err.Error())
	}
	return nil
}
