package post_http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PostRemover interface {
	RemovePost(ctx context.Context, executorID, id string) error
}

type DeletePostHandler struct {
	postService PostRemover
}

func NewDeletePostHandler(postService PostRemover) *DeletePostHandler {
	return &DeletePostHandler{postService: postService}
}

func (h *DeletePostHandler) Handle(c *gin.Context) {
	executor, ok := executorID(c)
	if !ok {
		return
	}

	if err := h.postService.RemovePost(c.Request.Context(), executor, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
