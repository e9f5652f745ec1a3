package response

import (
	"time"

	"github.com/forumapi/go-forum-api/domain"
)

const DateTimeFormat = time.RFC3339

type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

// NewAddedThreadFromDomain: Domain -> Response
func NewAddedThreadFromDomain(t domain.AddedThread) AddedThread {
	return AddedThread{
		ID:    t.ID,
		Title: t.Title,
		Owner: t.Owner,
	}
}

type ThreadDetail struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Date     string    `json:"date"`
	Username string    `json:"username"`
	Comments []Comment `json:"comments"`
}

// NewThreadDetailFromDomain: Domain -> Response
func NewThreadDetailFromDomain(t domain.GetThread) ThreadDetail {
	comments := make([]Comment, 0, len(t.Comments))
	for i := range t.Comments {
		comments = append(comments, NewCommentFromDomain(&t.Comments[i]))
	}
	return ThreadDetail{
		ID:       t.ID,
		Title:    t.Title,
		Body:     t.Body,
		Date:     t.Date.Format(DateTimeFormat),
		Username: t.Username,
		Comments: comments,
	}
}
