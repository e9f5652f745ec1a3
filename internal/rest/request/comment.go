package request

import "github.com/forumapi/go-forum-api/domain"

type Comment struct {
	Content string `json:"content" validate:"required"`
}

// ToPayload: Request -> Domain payload
func (r *Comment) ToPayload(threadID, owner string) domain.Payload {
	return domain.Payload{
		"threadId": threadID,
		"content":  r.Content,
		"owner":    owner,
	}
}
