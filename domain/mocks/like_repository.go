package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/forumapi/go-forum-api/domain"
)

type LikeRepository struct {
	mock.Mock
}

func (_m *LikeRepository) IsLiked(ctx context.Context, commentID string, userID string) (bool, error) {
	ret := _m.Called(ctx, commentID, userID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *LikeRepository) Store(ctx context.Context, commentID string, userID string) error {
	ret := _m.Called(ctx, commentID, userID)
	return ret.Error(0)
}

func (_m *LikeRepository) Remove(ctx context.Context, commentID string, userID string) error {
	ret := _m.Called(ctx, commentID, userID)
	return ret.Error(0)
}

func (_m *LikeRepository) CountByCommentID(ctx context.Context, commentID string) (int64, error) {
	ret := _m.Called(ctx, commentID)
	return ret.Get(0).(int64), ret.Error(1)
}

var _ domain.LikeRepository = (*LikeRepository)(nil)
