package rest_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/forumapi/go-forum-api/domain"
	"github.com/forumapi/go-forum-api/internal/rest"
)

type mockCommentUsecase struct {
	mock.Mock
}

func (m *mockCommentUsecase) Add(ctx context.Context, p domain.Payload) (domain.AddedComment, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.AddedComment), args.Error(1)
}

func (m *mockCommentUsecase) Delete(ctx context.Context, p domain.Payload) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func newCommentRouter(svc *mockCommentUsecase, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := rest.NewCommentHandler(svc)
	r.POST("/threads/:thread_id/comments", authStub(userID), handler.Store)
	r.DELETE("/threads/:thread_id/comments/:comment_id", authStub(userID), handler.Delete)
	return r
}

func TestCommentHandler_Store(t *testing.T) {
	svc := new(mockCommentUsecase)
	svc.On("Add", mock.Anything, domain.Payload{
		"threadId": "thread-123",
		"content":  "sebuah comment",
		"owner":    "user-123",
	}).Return(domain.AddedComment{ID: "comment-123", Content: "sebuah comment", Owner: "user-123"}, nil)

	r := newCommentRouter(svc, "user-123")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/threads/thread-123/comments",
		strings.NewReader(`{"content": "sebuah comment"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "addedComment")
	svc.AssertExpectations(t)
}

func TestCommentHandler_Store_MissingThread(t *testing.T) {
	svc := new(mockCommentUsecase)
	svc.On("Add", mock.Anything, mock.Anything).
		Return(domain.AddedComment{}, domain.ErrNotFound)

	r := newCommentRouter(svc, "user-123")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/threads/thread-xxx/comments",
		strings.NewReader(`{"content": "sebuah comment"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCommentHandler_Delete(t *testing.T) {
	svc := new(mockCommentUsecase)
	svc.On("Delete", mock.Anything, domain.Payload{
		"commentId": "comment-123",
		"threadId":  "thread-123",
		"owner":     "user-123",
	}).Return(nil)

	r := newCommentRouter(svc, "user-123")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/threads/thread-123/comments/comment-123", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestCommentHandler_Delete_NotOwner(t *testing.T) {
	svc := new(mockCommentUsecase)
	svc.On("Delete", mock.Anything, mock.Anything).Return(domain.ErrForbidden)

	r := newCommentRouter(svc, "user-456")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/threads/thread-123/comments/comment-123", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCommentHandler_Delete_InvalidPayload(t *testing.T) {
	svc := new(mockCommentUsecase)
	svc.On("Delete", mock.Anything, mock.Anything).
		Return(&domain.ValidationError{Kind: domain.KindMissingProperty, Field: "commentId"})

	r := newCommentRouter(svc, "user-123")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/threads/thread-123/comments/comment-123", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
