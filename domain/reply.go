package domain

import (
	"context"
	"time"
)

// ReplyDeletedPlaceholder replaces the content of a soft-deleted reply
// at read time.
const ReplyDeletedPlaceholder = "**balasan telah dihapus**"

// Reply is a second-level reply attached to a comment. Same soft-delete
// pattern as Comment, one level deeper in the hierarchy.
type Reply struct {
	ID        string
	Content   string
	CommentID string
	Owner     string
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AddReply is the validated payload for reply creation. Only content is
// shape-checked here; the thread and comment ids are verified against
// storage by the use case, which fills CommentID and Owner afterwards.
type AddReply struct {
	Content   string
	CommentID string
	Owner     string
}

func NewAddReply(p Payload) (AddReply, error) {
	content, err := p.GetString("content")
	if err != nil {
		return AddReply{}, err
	}
	return AddReply{Content: content}, nil
}

// AddedReply is the creation projection handed back to callers.
type AddedReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedReply(id, content, owner string) (AddedReply, error) {
	if id == "" {
		return AddedReply{}, &ValidationError{Kind: KindMissingProperty, Field: "id"}
	}
	if content == "" {
		return AddedReply{}, &ValidationError{Kind: KindMissingProperty, Field: "content"}
	}
	if owner == "" {
		return AddedReply{}, &ValidationError{Kind: KindMissingProperty, Field: "owner"}
	}
	return AddedReply{ID: id, Content: content, Owner: owner}, nil
}

// DeleteReply is the validated payload for reply deletion.
type DeleteReply struct {
	ReplyID string
	Owner   string
}

func NewDeleteReply(p Payload) (DeleteReply, error) {
	replyID, err := p.GetString("replyId")
	if err != nil {
		return DeleteReply{}, err
	}
	return DeleteReply{ReplyID: replyID, Owner: p.OptionalString("owner")}, nil
}

// ReplyDetail is one reply inside a thread view.
type ReplyDetail struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Date      time.Time `json:"date"`
	Username  string    `json:"username"`
	IsDeleted bool      `json:"-"`
}

// ReplyRepository mirrors CommentRepository, scoped by comment id.
type ReplyRepository interface {
	// Store creates a reply with a generated "reply-" id.
	Store(ctx context.Context, r *AddReply) (AddedReply, error)

	// GetByID retrieves a reply's identity and owner.
	// Returns ErrNotFound if the reply doesn't exist.
	GetByID(ctx context.Context, id string) (Reply, error)

	// VerifyOwner returns ErrForbidden when the reply is owned by
	// someone else, ErrNotFound when it doesn't exist.
	VerifyOwner(ctx context.Context, id, owner string) error

	// SoftDeleteByID flags the reply as deleted.
	// Returns ErrNotFound when no row matches.
	SoftDeleteByID(ctx context.Context, id string) error

	// FetchByCommentID returns the comment's replies ordered by
	// creation time ascending, content unmasked, usernames resolved.
	FetchByCommentID(ctx context.Context, commentID string) ([]ReplyDetail, error)
}

// ReplyUsecase is the business contract exposed to transports.
type ReplyUsecase interface {
	// Add persists a reply after verifying thread then comment exist.
	Add(ctx context.Context, p Payload) (AddedReply, error)

	// Delete soft-deletes a reply after existence and ownership checks.
	Delete(ctx context.Context, p Payload) error
}
