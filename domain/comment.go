package domain

import (
	"context"
	"time"
)

// CommentDeletedPlaceholder replaces the content of a soft-deleted
// comment at read time. The original content never leaves storage.
const CommentDeletedPlaceholder = "**komentar telah dihapus**"

// Comment is a first-level reply attached to a thread. Deletion is a
// soft flag; the row stays for referential and display purposes.
type Comment struct {
	ID        string
	Content   string
	ThreadID  string
	Owner     string
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AddComment is the validated payload for comment creation.
type AddComment struct {
	ThreadID string
	Content  string
	Owner    string
}

func NewAddComment(p Payload) (AddComment, error) {
	var a AddComment
	var err error
	if a.ThreadID, err = p.GetString("threadId"); err != nil {
		return AddComment{}, err
	}
	if a.Content, err = p.GetString("content"); err != nil {
		return AddComment{}, err
	}
	if a.Owner, err = p.GetString("owner"); err != nil {
		return AddComment{}, err
	}
	return a, nil
}

// AddedComment is the creation projection handed back to callers.
type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedComment(id, content, owner string) (AddedComment, error) {
	if id == "" {
		return AddedComment{}, &ValidationError{Kind: KindMissingProperty, Field: "id"}
	}
	if content == "" {
		return AddedComment{}, &ValidationError{Kind: KindMissingProperty, Field: "content"}
	}
	if owner == "" {
		return AddedComment{}, &ValidationError{Kind: KindMissingProperty, Field: "owner"}
	}
	return AddedComment{ID: id, Content: content, Owner: owner}, nil
}

// DeleteComment is the validated payload for comment deletion. Owner
// passes through unvalidated; the use case checks it against the
// stored owner, not against the payload shape.
type DeleteComment struct {
	CommentID string
	ThreadID  string
	Owner     string
}

func NewDeleteComment(p Payload) (DeleteComment, error) {
	var d DeleteComment
	var err error
	if d.CommentID, err = p.GetString("commentId"); err != nil {
		return DeleteComment{}, err
	}
	if d.ThreadID, err = p.GetString("threadId"); err != nil {
		return DeleteComment{}, err
	}
	d.Owner = p.OptionalString("owner")
	return d, nil
}

// CommentDetail is one comment inside a thread view. IsDeleted is the
// storage flag consumed by the masking step; it is never serialized.
type CommentDetail struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	Date      time.Time     `json:"date"`
	Username  string        `json:"username"`
	LikeCount int64         `json:"likeCount"`
	Replies   []ReplyDetail `json:"replies"`
	IsDeleted bool          `json:"-"`
}

// CommentRepository defines the contract for comment persistence.
type CommentRepository interface {
	// Store creates a comment with a generated "comment-" id.
	Store(ctx context.Context, c *AddComment) (AddedComment, error)

	// GetByID retrieves a comment's identity and owner.
	// Returns ErrNotFound if the comment doesn't exist.
	GetByID(ctx context.Context, id string) (Comment, error)

	// VerifyOwner returns ErrForbidden when the comment is owned by
	// someone else, ErrNotFound when it doesn't exist.
	VerifyOwner(ctx context.Context, id, owner string) error

	// SoftDeleteByID flags the comment as deleted without removing the
	// row. Returns ErrNotFound when no row matches.
	SoftDeleteByID(ctx context.Context, id string) error

	// FetchByThreadID returns the thread's comments ordered by creation
	// time ascending, content unmasked, usernames resolved. An empty
	// thread yields an empty, non-nil slice.
	FetchByThreadID(ctx context.Context, threadID string) ([]CommentDetail, error)
}

// CommentUsecase is the business contract exposed to transports.
type CommentUsecase interface {
	// Add persists a comment after verifying the target thread exists.
	Add(ctx context.Context, p Payload) (AddedComment, error)

	// Delete soft-deletes a comment after existence and ownership
	// checks, in that order.
	Delete(ctx context.Context, p Payload) error
}
