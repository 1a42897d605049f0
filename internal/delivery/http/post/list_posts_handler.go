package post_http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"inkwell-post-service/internal/model"
)

type PostLister interface {
	ListPosts(ctx context.Context, filters *model.PostFilters) ([]*model.PostDTO, int, error)
}

type ListPostsHandler struct {
	postService PostLister
	validate    *validator.Validate
}

func NewListPostsHandler(postService PostLister, validate *validator.Validate) *ListPostsHandler {
	return &ListPostsHandler{
		postService: postService,
		validate:    validate,
	}
}

type ListPostsRequest struct {
	OwnerID *string `form:"owner_id" validate:"omitempty,uuid4"`
	Status  *string `form:"status" validate:"omitempty,oneof=DRAFT PUBLISHED"`
	Limit   *int    `form:"limit" validate:"omitempty,gte=1,lte=100"`
	Offset  *int    `form:"offset" validate:"omitempty,gte=0"`
}

func (h *ListPostsHandler) Handle(c *gin.Context) {
	var req ListPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filters := &model.PostFilters{
		OwnerID: req.OwnerID,
		Limit:   req.Limit,
		Offset:  req.Offset,
	}
	if req.Status != nil {
		status := model.PostStatus(*req.Status)
		filters.Status = &status
	}

	posts, total, err := h.postService.ListPosts(c.Request.Context(), filters)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"total": total,
	})
}
