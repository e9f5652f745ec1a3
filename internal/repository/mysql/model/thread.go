package model

import (
	"time"

	"github.com/forumapi/go-forum-api/domain"
)

type Thread struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Body      string    `gorm:"type:text;not null"`
	Owner     string    `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Thread) TableName() string {
	return "threads"
}

func (m *Thread) ToDomain() domain.Thread {
	return domain.Thread{
		ID:        m.ID,
		Title:     m.Title,
		Body:      m.Body,
		Owner:     m.Owner,
		CreatedAt: m.CreatedAt,
	}
}
