package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"community-board-api/internal/dto"
	"community-board-api/internal/response"
)

// MockLikeService is a mock implementation of LikeService
type MockLikeService struct {
	LikePostFunc      func(ctx context.Context, userID string, postID int64) (*dto.LikeResponse, error)
	UnlikePostFunc    func(ctx context.Context, userID string, postID int64) (*dto.LikeResponse, error)
	LikeCommentFunc   func(ctx context.Context, userID string, commentID int64) (*dto.LikeResponse, error)
	UnlikeCommentFunc func(ctx context.Context, userID string, commentID int64) (*dto.LikeResponse, error)
}

func (m *MockLikeService) LikePost(ctx context.Context, userID string, postID int64) (*dto.LikeResponse, error) {
	if m.LikePostFunc != nil {
		return m.LikePostFunc(ctx, userID, postID)
	}
	return nil, nil
}

func (m *MockLikeService) UnlikePost(ctx context.Context, userID string, postID int64) (*dto.LikeResponse, error) {
	if m.UnlikePostFunc != nil {
		return m.UnlikePostFunc(ctx, userID, postID)
	}
	return nil, nil
}

func (m *MockLikeService) LikeComment(ctx context.Context, userID string, commentID int64) (*dto.LikeResponse, error) {
	if m.LikeCommentFunc != nil {
		return m.LikeCommentFunc(ctx, userID, commentID)
	}
	return nil, nil
}

func (m *MockLikeService) UnlikeComment(ctx context.Context, userID string, commentID int64) (*dto.LikeResponse, error) {
	if m.UnlikeCommentFunc != nil {
		return m.UnlikeCommentFunc(ctx, userID, commentID)
	}
	return nil, nil
}

func TestLikeHandler_LikePost(t *testing.T) {
	tests := []struct {
		name           string
		mockService    func(*MockLikeService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "likes and returns the new count",
			mockService: func(m *MockLikeService) {
				m.LikePostFunc = func(ctx context.Context, userID string, postID int64) (*dto.LikeResponse, error) {
					if userID != "bob" || postID != 42 {
						t.Errorf("LikePost called with userID=%s postID=%d", userID, postID)
					}
					return &dto.LikeResponse{IsLiked: true, LikeCount: 3}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var result dto.LikeResponse
				unwrapData(t, w.Body.Bytes(), &result)
				if !result.IsLiked || result.LikeCount != 3 {
					t.Errorf("Unexpected result: %+v", result)
				}
			},
		},
		{
			name: "duplicate like is a conflict",
			mockService: func(m *MockLikeService) {
				m.LikePostFunc = func(ctx context.Context, userID string, postID int64) (*dto.LikeResponse, error) {
					return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Post already liked", "")
				}
			},
			expectedStatus: http.StatusConflict,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				if code := errorCode(t, w.Body.Bytes()); code != response.ErrCodeAlreadyExists {
					t.Errorf("Expected code ALREADY_EXISTS, got %s", code)
				}
			},
		},
		{
			name: "missing post",
			mockService: func(m *MockLikeService) {
				m.LikePostFunc = func(ctx context.Context, userID string, postID int64) (*dto.LikeResponse, error) {
					return nil, response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockLikeService{}
			tt.mockService(mockService)
			handler := NewLikeHandler(mockService)

			router := setupTestRouter()
			router.POST("/posts/:postId/like", authAs("bob"), handler.LikePost)

			req := httptest.NewRequest(http.MethodPost, "/posts/42/like", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("LikePost() status = %v, want %v, body: %s", w.Code, tt.expectedStatus, w.Body.String())
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestLikeHandler_UnlikePost(t *testing.T) {
	mockService := &MockLikeService{
		UnlikePostFunc: func(ctx context.Context, userID string, postID int64) (*dto.LikeResponse, error) {
			return &dto.LikeResponse{IsLiked: false, LikeCount: 2}, nil
		},
	}
	handler := NewLikeHandler(mockService)

	router := setupTestRouter()
	router.DELETE("/posts/:postId/like", authAs("bob"), handler.UnlikePost)

	req := httptest.NewRequest(http.MethodDelete, "/posts/42/like", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("UnlikePost() status = %v, body: %s", w.Code, w.Body.String())
	}

	var result dto.LikeResponse
	unwrapData(t, w.Body.Bytes(), &result)
	if result.IsLiked {
		t.Errorf("Expected isLiked false after unlike")
	}
}

func TestLikeHandler_LikeComment(t *testing.T) {
	mockService := &MockLikeService{
		LikeCommentFunc: func(ctx context.Context, userID string, commentID int64) (*dto.LikeResponse, error) {
			if commentID != 5 {
				t.Errorf("Expected commentID 5, got %d", commentID)
			}
			return &dto.LikeResponse{IsLiked: true, LikeCount: 1}, nil
		},
	}
	handler := NewLikeHandler(mockService)

	router := setupTestRouter()
	router.POST("/posts/:postId/comments/:commentId/likes", authAs("bob"), handler.LikeComment)

	req := httptest.NewRequest(http.MethodPost, "/posts/42/comments/5/likes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("LikeComment() status = %v, body: %s", w.Code, w.Body.String())
	}
}

func TestLikeHandler_UnlikeComment_NotLiked(t *testing.T) {
	mockService := &MockLikeService{
		UnlikeCommentFunc: func(ctx context.Context, userID string, commentID int64) (*dto.LikeResponse, error) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Like not found", "")
		},
	}
	handler := NewLikeHandler(mockService)

	router := setupTestRouter()
	router.DELETE("/posts/:postId/comments/:commentId/likes", authAs("bob"), handler.UnlikeComment)

	req := httptest.NewRequest(http.MethodDelete, "/posts/42/comments/5/likes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("UnlikeComment() status = %v, want %v", w.Code, http.StatusNotFound)
	}
}
