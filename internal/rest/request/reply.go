package request

import "github.com/forumapi/go-forum-api/domain"

type Reply struct {
	Content string `json:"content" validate:"required"`
}

// ToPayload: Request -> Domain payload
func (r *Reply) ToPayload(threadID, commentID, owner string) domain.Payload {
	return domain.Payload{
		"threadId":  threadID,
		"commentId": commentID,
		"content":   r.Content,
		"owner":     owner,
	}
}
