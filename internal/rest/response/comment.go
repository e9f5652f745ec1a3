package response

import "github.com/forumapi/go-forum-api/domain"

type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// NewAddedCommentFromDomain: Domain -> Response
func NewAddedCommentFromDomain(c domain.AddedComment) AddedComment {
	return AddedComment{
		ID:      c.ID,
		Content: c.Content,
		Owner:   c.Owner,
	}
}

type Comment struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Date      string  `json:"date"`
	Content   string  `json:"content"`
	LikeCount int64   `json:"likeCount"`
	Replies   []Reply `json:"replies"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.CommentDetail) Comment {
	replies := make([]Reply, 0, len(c.Replies))
	for i := range c.Replies {
		replies = append(replies, NewReplyFromDomain(&c.Replies[i]))
	}
	return Comment{
		ID:        c.ID,
		Username:  c.Username,
		Date:      c.Date.Format(DateTimeFormat),
		Content:   c.Content,
		LikeCount: c.LikeCount,
		Replies:   replies,
	}
}
