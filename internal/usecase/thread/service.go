package thread

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/forumapi/go-forum-api/domain"
)

// Service orchestrates thread creation and the nested detail view.
type Service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
	likeRepo    domain.LikeRepository
}

var _ domain.ThreadUsecase = (*Service)(nil)

// NewService will create a new thread service object
func NewService(t domain.ThreadRepository, c domain.CommentRepository, r domain.ReplyRepository, l domain.LikeRepository) *Service {
	return &Service{
		threadRepo:  t,
		commentRepo: c,
		replyRepo:   r,
		likeRepo:    l,
	}
}

func (s *Service) Add(ctx context.Context, p domain.Payload) (domain.AddedThread, error) {
	addThread, err := domain.NewAddThread(p)
	if err != nil {
		return domain.AddedThread{}, err
	}

	existing, err := s.threadRepo.GetByTitle(ctx, addThread.Title)
	if err == nil && existing != (domain.Thread{}) {
		return domain.AddedThread{}, domain.ErrConflict
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.AddedThread{}, err
	}

	return s.threadRepo.Store(ctx, &addThread)
}

func (s *Service) GetDetail(ctx context.Context, p domain.Payload) (domain.GetThread, error) {
	threadID, err := p.GetString("threadId")
	if err != nil {
		return domain.GetThread{}, err
	}

	if err := s.threadRepo.Exists(ctx, threadID); err != nil {
		return domain.GetThread{}, err
	}

	detail, err := s.threadRepo.GetDetailByID(ctx, threadID)
	if err != nil {
		return domain.GetThread{}, err
	}

	comments, err := s.commentRepo.FetchByThreadID(ctx, threadID)
	if err != nil {
		logrus.Warnf("failed to fetch comments for %s: %v", threadID, err)
		return domain.GetThread{}, err
	}

	comments, err = s.enrichComments(ctx, comments)
	if err != nil {
		return domain.GetThread{}, err
	}

	return domain.NewGetThread(detail, comments)
}

// enrichComments resolves replies and like counts for every comment.
// Replies of different comments are independent reads, so the fan-out
// runs concurrently; indexed slots keep the creation order handed over
// by storage.
func (s *Service) enrichComments(ctx context.Context, comments []domain.CommentDetail) ([]domain.CommentDetail, error) {
	out := make([]domain.CommentDetail, len(comments))
	g, ctx := errgroup.WithContext(ctx)
	for i := range comments {
		g.Go(func() error {
			c := comments[i]

			replies, err := s.replyRepo.FetchByCommentID(ctx, c.ID)
			if err != nil {
				return err
			}
			likes, err := s.likeRepo.CountByCommentID(ctx, c.ID)
			if err != nil {
				return err
			}

			c.Replies = maskReplies(replies)
			c.LikeCount = likes
			if c.IsDeleted {
				c.Content = domain.CommentDeletedPlaceholder
			}
			out[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func maskReplies(replies []domain.ReplyDetail) []domain.ReplyDetail {
	out := make([]domain.ReplyDetail, len(replies))
	for i, r := range replies {
		if r.IsDeleted {
			r.Content = domain.ReplyDeletedPlaceholder
		}
		out[i] = r
	}
	return out
}
