package model

import "github.com/forumapi/go-forum-api/domain"

// Like rows carry a unique (comment_id, user_id) pair so a lost
// check-then-insert race degrades to a no-op instead of a duplicate.
type Like struct {
	ID        string `gorm:"primaryKey;type:varchar(50)"`
	UserID    string `gorm:"column:user_id;type:varchar(50);not null;uniqueIndex:uniq_comment_user"`
	CommentID string `gorm:"column:comment_id;type:varchar(50);not null;uniqueIndex:uniq_comment_user"`
}

func (Like) TableName() string {
	return "likes_comment"
}

func (m *Like) ToDomain() domain.Like {
	return domain.Like{
		ID:        m.ID,
		UserID:    m.UserID,
		CommentID: m.CommentID,
	}
}
