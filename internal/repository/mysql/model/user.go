package model

import (
	"time"

	"github.com/forumapi/go-forum-api/domain"
)

// User is owned by the account system; the forum only reads it.
type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	Username  string    `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (User) TableName() string {
	return "users"
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:        m.ID,
		Username:  m.Username,
		CreatedAt: m.CreatedAt,
	}
}
