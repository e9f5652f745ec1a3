package domain

import (
	"context"
	"time"
)

// User belongs to the account system; the forum core only reads it to
// resolve usernames on owner foreign keys and to confirm that a token's
// subject still exists.
type User struct {
	ID        string
	Username  string
	CreatedAt time.Time
}

// UserRepository defines the read-only contract on the users table.
type UserRepository interface {
	// GetByID retrieves a user by id.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id string) (User, error)

	// GetByUsername retrieves a user by username.
	GetByUsername(ctx context.Context, username string) (User, error)
}
