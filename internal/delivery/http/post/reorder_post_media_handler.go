package post_http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"inkwell-post-service/internal/model"
)

type PostMediaReorderer interface {
	ReorderPostMedia(ctx context.Context, dto *model.ReorderPostMediaDTO) (*model.PostDTO, error)
}

type ReorderPostMediaHandler struct {
	postService PostMediaReorderer
	validate    *validator.Validate
}

func NewReorderPostMediaHandler(postService PostMediaReorderer, validate *validator.Validate) *ReorderPostMediaHandler {
	return &ReorderPostMediaHandler{
		postService: postService,
		validate:    validate,
	}
}

type MediaOrderInput struct {
	MediaID   string `json:"media_id" validate:"required,uuid4"`
	SortOrder int32  `json:"sort_order" validate:"gte=0"`
}

type ReorderPostMediaRequest struct {
	MediaOrders []MediaOrderInput `json:"media_orders" validate:"required,min=1,dive"`
}

func (h *ReorderPostMediaHandler) Handle(c *gin.Context) {
	executor, ok := executorID(c)
	if !ok {
		return
	}

	var req ReorderPostMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orders := make([]model.MediaOrder, 0, len(req.MediaOrders))
	for _, order := range req.MediaOrders {
		orders = append(orders, model.MediaOrder{
			MediaID:   order.MediaID,
			SortOrder: order.SortOrder,
		})
	}

	post, err := h.postService.ReorderPostMedia(c.Request.Context(), &model.ReorderPostMediaDTO{
		ExecutorID:  executor,
		PostID:      c.Param("id"),
		MediaOrders: orders,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}
