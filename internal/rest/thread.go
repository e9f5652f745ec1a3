package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/forumapi/go-forum-api/domain"
	"github.com/forumapi/go-forum-api/internal/rest/request"
	"github.com/forumapi/go-forum-api/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func newResponseError(err error) ResponseError {
	return ResponseError{Status: "fail", Message: err.Error()}
}

// ThreadHandler represent the httphandler for threads
type ThreadHandler struct {
	Service domain.ThreadUsecase
}

func NewThreadHandler(svc domain.ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{
		Service: svc,
	}
}

// Store will store the thread by given request body
func (h *ThreadHandler) Store(c *gin.Context) {
	var req request.Thread
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
	added, err := h.Service.Add(ctx, req.ToPayload(owner))
	if err != nil {
		c.JSON(getStatusCode(err), newResponseError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   gin.H{"addedThread": response.NewAddedThreadFromDomain(added)},
	})
}

// GetByID returns the thread detail with its comments, replies and
// like counts
func (h *ThreadHandler) GetByID(c *gin.Context) {
	p := domain.Payload{
		"threadId": c.Param("thread_id"),
	}

	ctx := c.Request.Context()
	thread, err := h.Service.GetDetail(ctx, p)
	if err != nil {
		c.JSON(getStatusCode(err), newResponseError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"thread": response.NewThreadDetailFromDomain(thread)},
	})
}

var validate = validator.New()

func isRequestValid(req any) (bool, error) {
	if err := validate.Struct(req); err != nil {
		return false, err
	}
	return true, nil
}

// authenticatedUser reads the user id placed on the context by the auth
// middleware. Writes the 401 response itself when absent.
func authenticatedUser(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "User not authenticated"})
		return "", false
	}
	return userID.(string), true
}

// getStatusCode maps usecase errors to HTTP status codes
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch {
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
