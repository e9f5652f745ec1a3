// Package mocks holds testify mocks for the domain repository
// contracts, shared by the use case test suites.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/forumapi/go-forum-api/domain"
)

type ThreadRepository struct {
	mock.Mock
}

func (_m *ThreadRepository) Store(ctx context.Context, t *domain.AddThread) (domain.AddedThread, error) {
	ret := _m.Called(ctx, t)
	return ret.Get(0).(domain.AddedThread), ret.Error(1)
}

func (_m *ThreadRepository) Exists(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *ThreadRepository) GetByTitle(ctx context.Context, title string) (domain.Thread, error) {
	ret := _m.Called(ctx, title)
	return ret.Get(0).(domain.Thread), ret.Error(1)
}

func (_m *ThreadRepository) GetDetailByID(ctx context.Context, id string) (domain.ThreadDetail, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.ThreadDetail), ret.Error(1)
}

var _ domain.ThreadRepository = (*ThreadRepository)(nil)
