package model

import (
	"time"

	"github.com/forumapi/go-forum-api/domain"
)

type Reply struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	Content   string    `gorm:"type:text;not null"`
	CommentID string    `gorm:"column:comment_id;type:varchar(50);not null"`
	Owner     string    `gorm:"type:varchar(50);not null"`
	IsDelete  bool      `gorm:"column:is_delete;default:false"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (Reply) TableName() string {
	return "replies"
}

func (m *Reply) ToDomain() domain.Reply {
	return domain.Reply{
		ID:        m.ID,
		Content:   m.Content,
		CommentID: m.CommentID,
		Owner:     m.Owner,
		IsDeleted: m.IsDelete,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
