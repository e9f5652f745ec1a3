package model

import (
	"time"

	"github.com/forumapi/go-forum-api/domain"
)

type Comment struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	Content   string    `gorm:"type:text;not null"`
	ThreadID  string    `gorm:"column:thread_id;type:varchar(50);not null"`
	Owner     string    `gorm:"type:varchar(50);not null"`
	IsDelete  bool      `gorm:"column:is_delete;default:false"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "comment_threads"
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		Content:   m.Content,
		ThreadID:  m.ThreadID,
		Owner:     m.Owner,
		IsDeleted: m.IsDelete,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
