package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/forumapi/go-forum-api/domain"
	"github.com/forumapi/go-forum-api/internal/repository"
	"github.com/forumapi/go-forum-api/internal/repository/mysql/model"
)

const commentIDPrefix = "comment-"

type commentRepository struct {
	DB    *gorm.DB
	idGen repository.IDGenerator
}

var _ domain.CommentRepository = (*commentRepository)(nil)

// NewCommentRepository will create an implementation of domain.CommentRepository
func NewCommentRepository(db *gorm.DB, idGen repository.IDGenerator) *commentRepository {
	return &commentRepository{
		DB:    db,
		idGen: idGen,
	}
}

func (m *commentRepository) Store(ctx context.Context, c *domain.AddComment) (domain.AddedComment, error) {
	commentModel := model.Comment{
		ID:       commentIDPrefix + m.idGen(),
		Content:  c.Content,
		ThreadID: c.ThreadID,
		Owner:    c.Owner,
	}
	if err := m.DB.WithContext(ctx).Create(&commentModel).Error; err != nil {
		return domain.AddedComment{}, err
	}
	return domain.NewAddedComment(commentModel.ID, commentModel.Content, commentModel.Owner)
}

func (m *commentRepository) GetByID(ctx context.Context, id string) (domain.Comment, error) {
	var comment model.Comment
	err := m.DB.WithContext(ctx).
		Select("id", "owner", "is_delete").
		First(&comment, "id = ?", id).Error
	if err != nil {
		return domain.Comment{}, domain.ErrNotFound
	}
	return comment.ToDomain(), nil
}

func (m *commentRepository) VerifyOwner(ctx context.Context, id string, owner string) error {
	comment, err := m.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment.Owner != owner {
		return domain.ErrForbidden
	}
	return nil
}

func (m *commentRepository) SoftDeleteByID(ctx context.Context, id string) error {
	res := m.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Update("is_delete", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *commentRepository) FetchByThreadID(ctx context.Context, threadID string) ([]domain.CommentDetail, error) {
	var rows []struct {
		ID       string
		Content  string
		Date     time.Time
		Username string
		IsDelete bool
	}
	err := m.DB.WithContext(ctx).
		Table("comment_threads").
		Select("comment_threads.id, comment_threads.content, comment_threads.created_at AS date, users.username, comment_threads.is_delete").
		Joins("LEFT JOIN users ON users.id = comment_threads.owner").
		Where("comment_threads.thread_id = ?", threadID).
		Order("comment_threads.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	comments := make([]domain.CommentDetail, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, domain.CommentDetail{
			ID:        row.ID,
			Content:   row.Content,
			Date:      row.Date,
			Username:  row.Username,
			Replies:   []domain.ReplyDetail{},
			IsDeleted: row.IsDelete,
		})
	}
	return comments, nil
}
