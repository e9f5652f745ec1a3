package comment

import (
	"context"

	"github.com/forumapi/go-forum-api/domain"
)

// Service orchestrates comment creation and soft deletion.
type Service struct {
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
}

var _ domain.CommentUsecase = (*Service)(nil)

// NewService will create a new comment service object
func NewService(c domain.CommentRepository, t domain.ThreadRepository) *Service {
	return &Service{
		commentRepo: c,
		threadRepo:  t,
	}
}

func (s *Service) Add(ctx context.Context, p domain.Payload) (domain.AddedComment, error) {
	addComment, err := domain.NewAddComment(p)
	if err != nil {
		return domain.AddedComment{}, err
	}

	// the thread must exist before any write; the not-found error
	// propagates unchanged
	if err := s.threadRepo.Exists(ctx, addComment.ThreadID); err != nil {
		return domain.AddedComment{}, err
	}

	return s.commentRepo.Store(ctx, &addComment)
}

func (s *Service) Delete(ctx context.Context, p domain.Payload) error {
	del, err := domain.NewDeleteComment(p)
	if err != nil {
		return err
	}

	if _, err := s.commentRepo.GetByID(ctx, del.CommentID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyOwner(ctx, del.CommentID, del.Owner); err != nil {
		return err
	}
	return s.commentRepo.SoftDeleteByID(ctx, del.CommentID)
}
