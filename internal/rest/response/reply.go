package response

import "github.com/forumapi/go-forum-api/domain"

type AddedReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// NewAddedReplyFromDomain: Domain -> Response
func NewAddedReplyFromDomain(r domain.AddedReply) AddedReply {
	return AddedReply{
		ID:      r.ID,
		Content: r.Content,
		Owner:   r.Owner,
	}
}

type Reply struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Username string `json:"username"`
}

// NewReplyFromDomain: Domain -> Response
func NewReplyFromDomain(r *domain.ReplyDetail) Reply {
	return Reply{
		ID:       r.ID,
		Content:  r.Content,
		Date:     r.Date.Format(DateTimeFormat),
		Username: r.Username,
	}
}
