package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forumapi/go-forum-api/domain"
	"github.com/forumapi/go-forum-api/internal/rest/request"
	"github.com/forumapi/go-forum-api/internal/rest/response"
)

type replyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *replyHandler {
	return &replyHandler{
		Service: svc,
	}
}

func (h *replyHandler) Store(c *gin.Context) {
	var req request.Reply
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newResponseError(err))
		return
	}
	if ok, err := isRequestValid(&req); !ok {
		c.JSON(http.StatusBadRequest, newResponseError(err))
		return
	}

	owner, ok := authenticatedUser(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	added, err := h.Service.Add(ctx, req.ToPayload(c.Param("thread_id"), c.Param("comment_id"), owner))
	if err != nil {
		c.JSON(getStatusCode(err), newResponseError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   gin.H{"addedReply": response.NewAddedReplyFromDomain(added)},
	})
}

func (h *replyHandler) Delete(c *gin.Context) {
	owner, ok := authenticatedUser(c)
	if !ok {
		return
	}

	p := domain.Payload{
		"replyId":   c.Param("reply_id"),
		"commentId": c.Param("comment_id"),
		"threadId":  c.Param("thread_id"),
		"owner":     owner,
	}

	ctx := c.Request.Context()
	if err := h.Service.Delete(ctx, p); err != nil {
		c.JSON(getStatusCode(err), newResponseError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
