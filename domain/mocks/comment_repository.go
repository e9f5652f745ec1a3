package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/forumapi/go-forum-api/domain"
)

type CommentRepository struct {
	mock.Mock
}

func (_m *CommentRepository) Store(ctx context.Context, c *domain.AddComment) (domain.AddedComment, error) {
	ret := _m.Called(ctx, c)
	return ret.Get(0).(domain.AddedComment), ret.Error(1)
}

func (_m *CommentRepository) GetByID(ctx context.Context, id string) (domain.Comment, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Comment), ret.Error(1)
}

func (_m *CommentRepository) VerifyOwner(ctx context.Context, id string, owner string) error {
	ret := _m.Called(ctx, id, owner)
	return ret.Error(0)
}

func (_m *CommentRepository) SoftDeleteByID(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *CommentRepository) FetchByThreadID(ctx context.Context, threadID string) ([]domain.CommentDetail, error) {
	ret := _m.Called(ctx, threadID)
	var r0 []domain.CommentDetail
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.CommentDetail)
	}
	return r0, ret.Error(1)
}

var _ domain.CommentRepository = (*CommentRepository)(nil)
