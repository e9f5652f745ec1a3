package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forumapi/go-forum-api/domain"
)

func assertValidationKind(t *testing.T, err error, kind string) {
	t.Helper()
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, kind, vErr.Kind)
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestNewAddThread(t *testing.T) {
	t.Run("missing property", func(t *testing.T) {
		_, err := domain.NewAddThread(domain.Payload{
			"title": "test thread",
			"owner": "user-123",
		})
		assertValidationKind(t, err, domain.KindMissingProperty)
	})

	t.Run("empty string counts as missing", func(t *testing.T) {
		_, err := domain.NewAddThread(domain.Payload{
			"title": "",
			"body":  "test body",
			"owner": "user-123",
		})
		assertValidationKind(t, err, domain.KindMissingProperty)
	})

	t.Run("wrong data type", func(t *testing.T) {
		_, err := domain.NewAddThread(domain.Payload{
			"title": float64(123),
			"body":  "test body",
			"owner": "user-123",
		})
		assertValidationKind(t, err, domain.KindTypeMismatch)
	})

	t.Run("valid payload", func(t *testing.T) {
		got, err := domain.NewAddThread(domain.Payload{
			"title": "test thread",
			"body":  "test body",
			"owner": "user-123",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.AddThread{
			Title: "test thread",
			Body:  "test body",
			Owner: "user-123",
		}, got)
	})
}

func TestNewAddedThread(t *testing.T) {
	t.Run("missing property", func(t *testing.T) {
		_, err := domain.NewAddedThread("thread-123", "", "user-123")
		assertValidationKind(t, err, domain.KindMissingProperty)
	})

	t.Run("valid projection", func(t *testing.T) {
		got, err := domain.NewAddedThread("thread-123", "test thread", "user-123")
		require.NoError(t, err)
		assert.Equal(t, "thread-123", got.ID)
		assert.Equal(t, "test thread", got.Title)
		assert.Equal(t, "user-123", got.Owner)
	})
}

func TestNewGetThread(t *testing.T) {
	detail := domain.ThreadDetail{
		ID:       "thread-123",
		Title:    "test thread",
		Body:     "test body",
		Date:     time.Date(2023, 3, 26, 7, 0, 0, 0, time.UTC),
		Username: "dicoding",
	}

	t.Run("missing detail property", func(t *testing.T) {
		incomplete := detail
		incomplete.Username = ""
		_, err := domain.NewGetThread(incomplete, []domain.CommentDetail{})
		assertValidationKind(t, err, domain.KindMissingProperty)
	})

	t.Run("zero date counts as missing", func(t *testing.T) {
		incomplete := detail
		incomplete.Date = time.Time{}
		_, err := domain.NewGetThread(incomplete, []domain.CommentDetail{})
		assertValidationKind(t, err, domain.KindMissingProperty)
	})

	t.Run("nil comments rejected", func(t *testing.T) {
		_, err := domain.NewGetThread(detail, nil)
		assertValidationKind(t, err, domain.KindMissingProperty)
	})

	t.Run("empty comments kept as empty slice", func(t *testing.T) {
		got, err := domain.NewGetThread(detail, []domain.CommentDetail{})
		require.NoError(t, err)
		assert.NotNil(t, got.Comments)
		assert.Empty(t, got.Comments)
		assert.Equal(t, detail, got.ThreadDetail)
	})
}
