package post_http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"inkwell-post-service/internal/model"
)

type PostCreator interface {
	CreatePost(ctx context.Context, dto *model.CreatePostDTO) (*model.PostDTO, error)
}

type CreatePostHandler struct {
	postService PostCreator
	validate    *validator.Validate
}

func NewCreatePostHandler(postService PostCreator, validate *validator.Validate) *CreatePostHandler {
	return &CreatePostHandler{
		postService: postService,
		validate:    validate,
	}
}

type CreatePostRequest struct {
	Title           string   `json:"title" validate:"required,min=1,max=255"`
	Content         *string  `json:"content" validate:"omitempty,max=65535"`
	ImageID         *string  `json:"image_id" validate:"omitempty,uuid4"`
	CoverImageID    *string  `json:"cover_image_id" validate:"omitempty,uuid4"`
	GalleryImageIDs []string `json:"gallery_image_ids" validate:"omitempty,dive,uuid4"`
}

func (h *CreatePostHandler) Handle(c *gin.Context) {
	executor, ok := executorID(c)
	if !ok {
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), &model.CreatePostDTO{
		ExecutorID:      executor,
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

	c.JSON(http.StatusCreated, post)
}
