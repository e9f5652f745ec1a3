package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forumapi/go-forum-api/domain"
	"github.com/forumapi/go-forum-api/internal/rest/request"
	"github.com/forumapi/go-forum-api/internal/rest/response"
)

type commentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *commentHandler {
	return &commentHandler{
		Service: svc,
	}
}

func (h *commentHandler) Store(c *gin.Context) {
	var req request.Comment
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
	added, err := h.Service.Add(ctx, req.ToPayload(c.Param("thread_id"), owner))
	if err != nil {
		c.JSON(getStatusCode(err), newResponseError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   gin.H{"addedComment": response.NewAddedCommentFromDomain(added)},
	})
}

func (h *commentHandler) Delete(c *gin.Context) {
	owner, ok := authenticatedUser(c)
	if !ok {
		return
	}

	p := domain.Payload{
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
