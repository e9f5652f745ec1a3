package reply

import (
	"context"

	"github.com/forumapi/go-forum-api/domain"
)

// Service orchestrates reply creation and soft deletion. Preconditions
// run in a fixed order: thread first, then comment, then the write.
type Service struct {
	replyRepo   domain.ReplyRepository
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
}

var _ domain.ReplyUsecase = (*Service)(nil)

// NewService will create a new reply service object
func NewService(r domain.ReplyRepository, c domain.CommentRepository, t domain.ThreadRepository) *Service {
	return &Service{
		replyRepo:   r,
		commentRepo: c,
		threadRepo:  t,
	}
}

func (s *Service) Add(ctx context.Context, p domain.Payload) (domain.AddedReply, error) {
	addReply, err := domain.NewAddReply(p)
	if err != nil {
		return domain.AddedReply{}, err
	}
	threadID, err := p.GetString("threadId")
	if err != nil {
		return domain.AddedReply{}, err
	}
	commentID, err := p.GetString("commentId")
	if err != nil {
		return domain.AddedReply{}, err
	}
	owner, err := p.GetString("owner")
	if err != nil {
		return domain.AddedReply{}, err
	}

	if err := s.threadRepo.Exists(ctx, threadID); err != nil {
		return domain.AddedReply{}, err
	}
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return domain.AddedReply{}, err
	}

	addReply.CommentID = commentID
	addReply.Owner = owner
	return s.replyRepo.Store(ctx, &addReply)
}

func (s *Service) Delete(ctx context.Context, p domain.Payload) error {
	del, err := domain.NewDeleteReply(p)
	if err != nil {
		return err
	}

	if _, err := s.replyRepo.GetByID(ctx, del.ReplyID); err != nil {
		return err
	}
	if err := s.replyRepo.VerifyOwner(ctx, del.ReplyID, del.Owner); err != nil {
		return err
	}
	return s.replyRepo.SoftDeleteByID(ctx, del.ReplyID)
}
