package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forumapi/go-forum-api/domain"
)

type likeHandler struct {
	Service domain.LikeUsecase
}

func NewLikeHandler(svc domain.LikeUsecase) *likeHandler {
	return &likeHandler{
		Service: svc,
	}
}

// Toggle flips the liked state of a comment for the caller
func (h *likeHandler) Toggle(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	p := domain.Payload{
		"commentId": c.Param("comment_id"),
		"threadId":  c.Param("thread_id"),
		"userId":    userID,
	}

	ctx := c.Request.Context()
	if err := h.Service.Toggle(ctx, p); err != nil {
		c.JSON(getStatusCode(err), newResponseError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
