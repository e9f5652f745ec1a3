package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/forumapi/go-forum-api/domain"
)

type ReplyRepository struct {
	mock.Mock
}

func (_m *ReplyRepository) Store(ctx context.Context, r *domain.AddReply) (domain.AddedReply, error) {
	ret := _m.Called(ctx, r)
	return ret.Get(0).(domain.AddedReply), ret.Error(1)
}

func (_m *ReplyRepository) GetByID(ctx context.Context, id string) (domain.Reply, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Reply), ret.Error(1)
}

func (_m *ReplyRepository) VerifyOwner(ctx context.Context, id string, owner string) error {
	ret := _m.Called(ctx, id, owner)
	return ret.Error(0)
}

func (_m *ReplyRepository) SoftDeleteByID(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *ReplyRepository) FetchByCommentID(ctx context.Context, commentID string) ([]domain.ReplyDetail, error) {
	ret := _m.Called(ctx, commentID)
	var r0 []domain.ReplyDetail
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.ReplyDetail)
	}
	return r0, ret.Error(1)
}

var _ domain.ReplyRepository = (*ReplyRepository)(nil)
