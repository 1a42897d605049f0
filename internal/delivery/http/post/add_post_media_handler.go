package post_http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"inkwell-post-service/internal/model"
)

type PostMediaAdder interface {
	AddPostMedia(ctx context.Context, dto *model.AddPostMediaDTO) (*model.PostDTO, error)
}

type AddPostMediaHandler struct {
	postService PostMediaAdder
	validate    *validator.Validate
}

func NewAddPostMediaHandler(postService PostMediaAdder, validate *validator.Validate) *AddPostMediaHandler {
	return &AddPostMediaHandler{
		postService: postService,
		validate:    validate,
	}
}

type AddPostMediaRequest struct {
	MediaID   string `json:"media_id" validate:"required,uuid4"`
	Type      string `json:"type" validate:"required,oneof=COVER GALLERY"`
	SortOrder *int32 `json:"sort_order" validate:"omitempty,gte=0"`
}

func (h *AddPostMediaHandler) Handle(c *gin.Context) {
	executor, ok := executorID(c)
	if !ok {
		return
	}

	var req AddPostMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postService.AddPostMedia(c.Request.Context(), &model.AddPostMediaDTO{
		ExecutorID: executor,
		PostID:     c.Param("id"),
		MediaID:    req.MediaID,
		Type:       model.PostMediaType(req.Type),
		SortOrder:  req.SortOrder,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}
