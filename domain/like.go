package domain

import "context"

// Like is a join row between a user and a comment. The liked state is
// the presence of the row, one per (comment, user); counts are derived
// by counting rows, never kept as a denormalized counter.
type Like struct {
	ID        string
	UserID    string
	CommentID string
}

// LikeRepository defines the contract for like persistence. Like rows
// are created and destroyed, never soft-deleted.
type LikeRepository interface {
	// IsLiked reports whether the user currently likes the comment.
	IsLiked(ctx context.Context, commentID, userID string) (bool, error)

	// Store inserts the like row with a generated "like-" id. Inserting
	// an already-present pair is a no-op.
	Store(ctx context.Context, commentID, userID string) error

	// Remove deletes the like row for the pair, if any.
	Remove(ctx context.Context, commentID, userID string) error

	// CountByCommentID derives the like count for a comment.
	CountByCommentID(ctx context.Context, commentID string) (int64, error)
}

// LikeUsecase is the business contract exposed to transports.
type LikeUsecase interface {
	// Toggle flips the liked state for (commentId, userId): a present
	// row is removed, an absent one inserted. Each invocation flips;
	// there is no "set liked" operation.
	Toggle(ctx context.Context, p Payload) error
}
