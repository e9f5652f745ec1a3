package request

import "github.com/forumapi/go-forum-api/domain"

type Thread struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// ToPayload: Request -> Domain payload
func (r *Thread) ToPayload(owner string) domain.Payload {
	return domain.Payload{
		"title": r.Title,
		"body":  r.Body,
		"owner": owner,
	}
}
