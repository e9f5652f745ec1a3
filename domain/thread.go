package domain

import (
	"context"
	"time"
)

// Thread is a top-level discussion topic. Immutable after creation;
// comments hang off it and are soft-deleted independently.
type Thread struct {
	ID        string    // Unique identifier, "thread-" prefixed
	Title     string    // Thread title, unique at creation time
	Body      string    // Thread body content
	Owner     string    // User id of the author
	CreatedAt time.Time // Creation timestamp
}

// AddThread is the validated payload for thread creation.
type AddThread struct {
	Title string
	Body  string
	Owner string
}

// NewAddThread validates the raw payload before any storage access.
func NewAddThread(p Payload) (AddThread, error) {
	var a AddThread
	var err error
	if a.Title, err = p.GetString("title"); err != nil {
		return AddThread{}, err
	}
	if a.Body, err = p.GetString("body"); err != nil {
		return AddThread{}, err
	}
	if a.Owner, err = p.GetString("owner"); err != nil {
		return AddThread{}, err
	}
	return a, nil
}

// AddedThread is the creation projection handed back to callers.
type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewAddedThread(id, title, owner string) (AddedThread, error) {
	if id == "" {
		return AddedThread{}, &ValidationError{Kind: KindMissingProperty, Field: "id"}
	}
	if title == "" {
		return AddedThread{}, &ValidationError{Kind: KindMissingProperty, Field: "title"}
	}
	if owner == "" {
		return AddedThread{}, &ValidationError{Kind: KindMissingProperty, Field: "owner"}
	}
	return AddedThread{ID: id, Title: title, Owner: owner}, nil
}

// ThreadDetail is the read projection with the owner's username
// already resolved through the users table.
type ThreadDetail struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Date     time.Time `json:"date"`
	Username string    `json:"username"`
}

// GetThread is the assembled thread view: the detail projection plus
// its comments in creation order. Comments is always present, an empty
// slice when the thread has none.
type GetThread struct {
	ThreadDetail
	Comments []CommentDetail `json:"comments"`
}

// NewGetThread shapes the detail output and guards against half-built
// projections reaching callers.
func NewGetThread(detail ThreadDetail, comments []CommentDetail) (GetThread, error) {
	if detail.ID == "" {
		return GetThread{}, &ValidationError{Kind: KindMissingProperty, Field: "id"}
	}
	if detail.Title == "" {
		return GetThread{}, &ValidationError{Kind: KindMissingProperty, Field: "title"}
	}
	if detail.Body == "" {
		return GetThread{}, &ValidationError{Kind: KindMissingProperty, Field: "body"}
	}
	if detail.Date.IsZero() {
		return GetThread{}, &ValidationError{Kind: KindMissingProperty, Field: "date"}
	}
	if detail.Username == "" {
		return GetThread{}, &ValidationError{Kind: KindMissingProperty, Field: "username"}
	}
	if comments == nil {
		return GetThread{}, &ValidationError{Kind: KindMissingProperty, Field: "comments"}
	}
	return GetThread{ThreadDetail: detail, Comments: comments}, nil
}

// ThreadRepository defines the contract for thread persistence.
type ThreadRepository interface {
	// Store creates a thread with a generated "thread-" id and returns
	// the creation projection.
	Store(ctx context.Context, t *AddThread) (AddedThread, error)

	// Exists returns ErrNotFound when no thread carries the given id.
	Exists(ctx context.Context, id string) error

	// GetByTitle retrieves a thread by its exact title.
	// Returns ErrNotFound when no thread carries it.
	GetByTitle(ctx context.Context, title string) (Thread, error)

	// GetDetailByID returns the read projection with the owner's
	// username resolved. Returns ErrNotFound when absent.
	GetDetailByID(ctx context.Context, id string) (ThreadDetail, error)
}

// ThreadUsecase is the business contract exposed to transports.
type ThreadUsecase interface {
	// Add validates the payload, rejects duplicate titles with
	// ErrConflict and persists the thread.
	Add(ctx context.Context, p Payload) (AddedThread, error)

	// GetDetail returns the thread with nested comments and replies in
	// creation order, soft-deleted content masked.
	GetDetail(ctx context.Context, p Payload) (GetThread, error)
}
