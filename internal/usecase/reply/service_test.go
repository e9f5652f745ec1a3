package reply_test

import (
	"context"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/forumapi/go-forum-api/domain"
	"github.com/forumapi/go-forum-api/domain/mocks"
	ucase "github.com/forumapi/go-forum-api/internal/usecase/reply"
)

func newService() (*ucase.Service, *mocks.ReplyRepository, *mocks.CommentRepository, *mocks.ThreadRepository) {
	replyRepo := new(mocks.ReplyRepository)
	commentRepo := new(mocks.CommentRepository)
	threadRepo := new(mocks.ThreadRepository)
	return ucase.NewService(replyRepo, commentRepo, threadRepo), replyRepo, commentRepo, threadRepo
}

func TestAdd(t *testing.T) {
	payload := domain.Payload{
		"content":   faker.Sentence(),
		"commentId": "comment-123",
		"threadId":  "thread-123",
		"owner":     "user-123",
	}

	t.Run("success fills comment id and owner", func(t *testing.T) {
		svc, replyRepo, commentRepo, threadRepo := newService()
		threadRepo.On("Exists", mock.Anything, "thread-123").Return(nil).Once()
		commentRepo.On("GetByID", mock.Anything, "comment-123").
			Return(domain.Comment{ID: "comment-123", Owner: "user-2"}, nil).Once()
		replyRepo.On("Store", mock.Anything, mock.MatchedBy(func(r *domain.AddReply) bool {
			return r.CommentID == "comment-123" && r.Owner == "user-123"
		})).Return(domain.AddedReply{ID: "reply-123", Content: payload["content"].(string), Owner: "user-123"}, nil).Once()

		added, err := svc.Add(context.Background(), payload)

		require.NoError(t, err)
		assert.Equal(t, "reply-123", added.ID)
		replyRepo.AssertExpectations(t)
	})

	t.Run("thread is checked before the comment", func(t *testing.T) {
		svc, replyRepo, commentRepo, threadRepo := newService()
		threadRepo.On("Exists", mock.Anything, "thread-123").Return(domain.ErrNotFound).Once()

		_, err := svc.Add(context.Background(), payload)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		commentRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		replyRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	})

	t.Run("unknown comment stops before the write", func(t *testing.T) {
		svc, replyRepo, commentRepo, threadRepo := newService()
		threadRepo.On("Exists", mock.Anything, "thread-123").Return(nil).Once()
		commentRepo.On("GetByID", mock.Anything, "comment-123").
			Return(domain.Comment{}, domain.ErrNotFound).Once()

		_, err := svc.Add(context.Background(), payload)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		replyRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	})

	t.Run("all four fields are required before storage", func(t *testing.T) {
		svc, replyRepo, _, threadRepo := newService()

		_, err := svc.Add(context.Background(), domain.Payload{
			"content":  "a reply",
			"threadId": "thread-123",
			"owner":    "user-123",
		})

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, domain.KindMissingProperty, vErr.Kind)
		threadRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
		replyRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	})

	t.Run("wrong-typed comment id never becomes not-found", func(t *testing.T) {
		svc, _, _, threadRepo := newService()

		_, err := svc.Add(context.Background(), domain.Payload{
			"content":   "a reply",
			"commentId": float64(5),
			"threadId":  "thread-123",
			"owner":     "user-123",
		})

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, domain.KindTypeMismatch, vErr.Kind)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
		threadRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	})
}

func TestDelete(t *testing.T) {
	payload := domain.Payload{
		"replyId": "reply-123",
		"owner":   "user-123",
	}

	t.Run("exists then owner then soft delete", func(t *testing.T) {
		svc, replyRepo, _, _ := newService()
		replyRepo.On("GetByID", mock.Anything, "reply-123").
			Return(domain.Reply{ID: "reply-123", Owner: "user-123"}, nil).Once()
		replyRepo.On("VerifyOwner", mock.Anything, "reply-123", "user-123").Return(nil).Once()
		replyRepo.On("SoftDeleteByID", mock.Anything, "reply-123").Return(nil).Once()

		err := svc.Delete(context.Background(), payload)

		require.NoError(t, err)
		replyRepo.AssertExpectations(t)
	})

	t.Run("foreign owner never reaches soft delete", func(t *testing.T) {
		svc, replyRepo, _, _ := newService()
		replyRepo.On("GetByID", mock.Anything, "reply-123").
			Return(domain.Reply{ID: "reply-123", Owner: "user-2"}, nil).Once()
		replyRepo.On("VerifyOwner", mock.Anything, "reply-123", "user-123").
			Return(domain.ErrForbidden).Once()

		err := svc.Delete(context.Background(), payload)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		replyRepo.AssertNotCalled(t, "SoftDeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("missing reply id skips repositories", func(t *testing.T) {
		svc, replyRepo, _, _ := newService()

		err := svc.Delete(context.Background(), domain.Payload{"owner": "user-123"})

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, domain.KindMissingProperty, vErr.Kind)
		replyRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}
