package repository

import "github.com/google/uuid"

// IDGenerator produces the random part of an entity id; repositories
// prepend their entity prefix ("thread-", "comment-", "reply-",
// "like-"). Injected so tests can pin ids.
type IDGenerator func() string

// NewUUIDGenerator returns the production generator.
func NewUUIDGenerator() IDGenerator {
	return uuid.NewString
}
