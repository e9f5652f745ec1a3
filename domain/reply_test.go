package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forumapi/go-forum-api/domain"
)

func TestNewAddReply(t *testing.T) {
	t.Run("missing content", func(t *testing.T) {
		_, err := domain.NewAddReply(domain.Payload{})
		assertValidationKind(t, err, domain.KindMissingProperty)
	})

	t.Run("wrong data type", func(t *testing.T) {
		_, err := domain.NewAddReply(domain.Payload{"content": float64(42)})
		assertValidationKind(t, err, domain.KindTypeMismatch)
	})

	t.Run("only content is shape-checked", func(t *testing.T) {
		got, err := domain.NewAddReply(domain.Payload{"content": "some reply"})
		require.NoError(t, err)
		assert.Equal(t, "some reply", got.Content)
		assert.Empty(t, got.CommentID)
		assert.Empty(t, got.Owner)
	})
}

func TestNewDeleteReply(t *testing.T) {
	t.Run("missing reply id", func(t *testing.T) {
		_, err := domain.NewDeleteReply(domain.Payload{"owner": "user-123"})
		assertValidationKind(t, err, domain.KindMissingProperty)
	})

	t.Run("wrong data type", func(t *testing.T) {
		_, err := domain.NewDeleteReply(domain.Payload{"replyId": float64(1)})
		assertValidationKind(t, err, domain.KindTypeMismatch)
	})

	t.Run("valid payload", func(t *testing.T) {
		got, err := domain.NewDeleteReply(domain.Payload{
			"replyId": "reply-123",
			"owner":   "user-123",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.DeleteReply{ReplyID: "reply-123", Owner: "user-123"}, got)
	})
}

func TestNewAddedReply(t *testing.T) {
	t.Run("missing property", func(t *testing.T) {
		_, err := domain.NewAddedReply("reply-123", "some reply", "")
		assertValidationKind(t, err, domain.KindMissingProperty)
	})

	t.Run("valid projection", func(t *testing.T) {
		got, err := domain.NewAddedReply("reply-123", "some reply", "user-123")
		require.NoError(t, err)
		assert.Equal(t, domain.AddedReply{
			ID:      "reply-123",
			Content: "some reply",
			Owner:   "user-123",
		}, got)
	})
}
