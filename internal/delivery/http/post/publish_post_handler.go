package post_http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell-post-service/internal/model"
)

type PostPublisher interface {
	PublishPost(ctx context.Context, executorID, id string) (*model.PostDTO, error)
}

type PublishPostHandler struct {
	postService PostPublisher
}

func NewPublishPostHandler(postService PostPublisher) *PublishPostHandler {
	return &PublishPostHandler{postService: postService}
}

func (h *PublishPostHandler) Handle(c *gin.Context) {
	executor, ok := executorID(c)
	if !ok {
		return
	}

	post, err := h.postService.PublishPost(c.Request.Context(), executor, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}
