package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/forumapi/go-forum-api/domain"
	"github.com/forumapi/go-forum-api/internal/repository"
	"github.com/forumapi/go-forum-api/internal/repository/mysql/model"
)

const threadIDPrefix = "thread-"

type threadRepository struct {
	DB    *gorm.DB
	idGen repository.IDGenerator
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

// NewThreadRepository will create an implementation of domain.ThreadRepository
func NewThreadRepository(db *gorm.DB, idGen repository.IDGenerator) *threadRepository {
	return &threadRepository{
		DB:    db,
		idGen: idGen,
	}
}

func (m *threadRepository) Store(ctx context.Context, t *domain.AddThread) (domain.AddedThread, error) {
	threadModel := model.Thread{
		ID:    threadIDPrefix + m.idGen(),
		Title: t.Title,
		Body:  t.Body,
		Owner: t.Owner,
	}
	if err := m.DB.WithContext(ctx).Create(&threadModel).Error; err != nil {
		return domain.AddedThread{}, err
	}
	return domain.NewAddedThread(threadModel.ID, threadModel.Title, threadModel.Owner)
}

func (m *threadRepository) Exists(ctx context.Context, id string) error {
	var count int64
	err := m.DB.WithContext(ctx).Model(&model.Thread{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *threadRepository) GetByTitle(ctx context.Context, title string) (domain.Thread, error) {
	var thread model.Thread
	if err := m.DB.WithContext(ctx).First(&thread, "title = ?", title).Error; err != nil {
		return domain.Thread{}, domain.ErrNotFound
	}
	return thread.ToDomain(), nil
}

func (m *threadRepository) GetDetailByID(ctx context.Context, id string) (domain.ThreadDetail, error) {
	var row struct {
		ID       string
		Title    string
		Body     string
		Date     time.Time
		Username string
	}
	err := m.DB.WithContext(ctx).
		Table("threads").
		Select("threads.id, threads.title, threads.body, threads.created_at AS date, users.username").
		Joins("LEFT JOIN users ON users.id = threads.owner").
		Where("threads.id = ?", id).
		Take(&row).Error
	if err != nil {
		return domain.ThreadDetail{}, domain.ErrNotFound
	}
	return domain.ThreadDetail{
		ID:       row.ID,
		Title:    row.Title,
		Body:     row.Body,
		Date:     row.Date,
		Username: row.Username,
	}, nil
}
