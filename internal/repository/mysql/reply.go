package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/forumapi/go-forum-api/domain"
	"github.com/forumapi/go-forum-api/internal/repository"
	"github.com/forumapi/go-forum-api/internal/repository/mysql/model"
)

const replyIDPrefix = "reply-"

type replyRepository struct {
	DB    *gorm.DB
	idGen repository.IDGenerator
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

// NewReplyRepository will create an implementation of domain.ReplyRepository
func NewReplyRepository(db *gorm.DB, idGen repository.IDGenerator) *replyRepository {
	return &replyRepository{
		DB:    db,
		idGen: idGen,
	}
}

func (m *replyRepository) Store(ctx context.Context, r *domain.AddReply) (domain.AddedReply, error) {
	replyModel := model.Reply{
		ID:        replyIDPrefix + m.idGen(),
		Content:   r.Content,
		CommentID: r.CommentID,
		Owner:     r.Owner,
	}
	if err := m.DB.WithContext(ctx).Create(&replyModel).Error; err != nil {
		return domain.AddedReply{}, err
	}
	return domain.NewAddedReply(replyModel.ID, replyModel.Content, replyModel.Owner)
}

func (m *replyRepository) GetByID(ctx context.Context, id string) (domain.Reply, error) {
	var reply model.Reply
	err := m.DB.WithContext(ctx).
		Select("id", "owner", "is_delete").
		First(&reply, "id = ?", id).Error
	if err != nil {
		return domain.Reply{}, domain.ErrNotFound
	}
	return reply.ToDomain(), nil
}

func (m *replyRepository) VerifyOwner(ctx context.Context, id string, owner string) error {
	reply, err := m.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if reply.Owner != owner {
		return domain.ErrForbidden
	}
	return nil
}

func (m *replyRepository) SoftDeleteByID(ctx context.Context, id string) error {
	res := m.DB.WithContext(ctx).
		Model(&model.Reply{}).
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

func (m *replyRepository) FetchByCommentID(ctx context.Context, commentID string) ([]domain.ReplyDetail, error) {
	var rows []struct {
		ID       string
		Content  string
		Date     time.Time
		Username string
		IsDelete bool
	}
	err := m.DB.WithContext(ctx).
		Table("replies").
		Select("replies.id, replies.content, replies.created_at AS date, users.username, replies.is_delete").
		Joins("LEFT JOIN users ON users.id = replies.owner").
		Where("replies.comment_id = ?", commentID).
		Order("replies.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	replies := make([]domain.ReplyDetail, 0, len(rows))
	for _, row := range rows {
		replies = append(replies, domain.ReplyDetail{
			ID:        row.ID,
			Content:   row.Content,
			Date:      row.Date,
			Username:  row.Username,
			IsDeleted: row.IsDelete,
		})
	}
	return replies, nil
}
