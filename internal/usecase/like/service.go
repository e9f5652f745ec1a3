package like

import (
	"context"

	"github.com/forumapi/go-forum-api/domain"
)

// Service implements the like toggle. The liked state is the presence
// of the join row, so flipping is a read followed by an insert or a
// delete; the insert is conflict-tolerant at the storage layer.
type Service struct {
	likeRepo    domain.LikeRepository
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
}

var _ domain.LikeUsecase = (*Service)(nil)

// NewService will create a new like service object
func NewService(l domain.LikeRepository, c domain.CommentRepository, t domain.ThreadRepository) *Service {
	return &Service{
		likeRepo:    l,
		commentRepo: c,
		threadRepo:  t,
	}
}

func (s *Service) Toggle(ctx context.Context, p domain.Payload) error {
	commentID, err := p.GetString("commentId")
	if err != nil {
		return err
	}
	threadID, err := p.GetString("threadId")
	if err != nil {
		return err
	}
	userID, err := p.GetString("userId")
	if err != nil {
		return err
	}

	if err := s.threadRepo.Exists(ctx, threadID); err != nil {
		return err
	}
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return err
	}

	liked, err := s.likeRepo.IsLiked(ctx, commentID, userID)
	if err != nil {
		return err
	}
	if liked {
		return s.likeRepo.Remove(ctx, commentID, userID)
	}
	return s.likeRepo.Store(ctx, commentID, userID)
}
