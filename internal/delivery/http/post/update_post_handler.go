package post_http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"inkwell-post-service/internal/model"
)

type PostUpdater interface {
	EditPost(ctx context.Context, dto *model.EditPostDTO) (*model.PostDTO, error)
}

type UpdatePostHandler struct {
	postService PostUpdater
	validate    *validator.Validate
}

func NewUpdatePostHandler(postService PostUpdater, validate *validator.Validate) *UpdatePostHandler {
	return &UpdatePostHandler{
		postService: postService,
		validate:    validate,
	}
}

// UpdatePostRequest keeps absent fields as nil so the service can tell
// "not supplied" apart from "supplied empty".
type UpdatePostRequest struct {
	Title           *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Content         *string  `json:"content" validate:"omitempty,max=65535"`
	ImageID         *string  `json:"image_id" validate:"omitempty,uuid4"`
	CoverImageID    *string  `json:"cover_image_id" validate:"omitempty,uuid4"`
	GalleryImageIDs []string `json:"gallery_image_ids" validate:"omitempty,dive,uuid4"`
}

func (h *UpdatePostHandler) Handle(c *gin.Context) {
	executor, ok := executorID(c)
	if !ok {
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postService.EditPost(c.Request.Context(), &model.EditPostDTO{
		ExecutorID:      executor,
		PostID:          c.Param("id"),
		Title:           req.Title,
		Content:         req.Content,
		ImageID:         req.ImageID,
		CoverImageID:    req.CoverImageID,
		GalleryImageIDs: req.GalleryImageIDs,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}
