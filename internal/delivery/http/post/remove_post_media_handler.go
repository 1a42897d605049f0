package post_http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell-post-service/internal/model"
)

type PostMediaRemover interface {
	RemovePostMedia(ctx context.Context, dto *model.RemovePostMediaDTO) (*model.PostDTO, error)
}

type RemovePostMediaHandler struct {
	postService PostMediaRemover
}

func NewRemovePostMediaHandler(postService PostMediaRemover) *RemovePostMediaHandler {
	return &RemovePostMediaHandler{postService: postService}
}

func (h *RemovePostMediaHandler) Handle(c *gin.Context) {
	executor, ok := executorID(c)
	if !ok {
		return
	}

	post, err := h.postService.RemovePostMedia(c.Request.Context(), &model.RemovePostMediaDTO{
		ExecutorID: executor,
		PostID:     c.Param("id"),
		MediaID:    c.Param("mediaId"),
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}
