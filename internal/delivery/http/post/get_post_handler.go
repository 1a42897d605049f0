package post_http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell-post-service/internal/model"
)

type PostGetter interface {
	GetPost(ctx context.Context, id string) (*model.PostDTO, error)
}

type GetPostHandler struct {
	postService PostGetter
}

func NewGetPostHandler(postService PostGetter) *GetPostHandler {
	return &GetPostHandler{postService: postService}
}

func (h *GetPostHandler) Handle(c *gin.Context) {
	post, err := h.postService.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}
