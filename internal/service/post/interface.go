package post_service

import (
	"context"

	"inkwell-post-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/service --outpkg mocks --filename PostService.go
type Service interface {
	CreatePost(ctx context.Context, dto *model.CreatePostDTO) (*model.PostDTO, error)
	GetPost(ctx context.Context, id string) (*model.PostDTO, error)
	ListPosts(ctx context.Context, filters *model.PostFilters) ([]*model.PostDTO, int, error)
	EditPost(ctx context.Context, dto *model.EditPostDTO) (*model.PostDTO, error)
	PublishPost(ctx context.Context, executorID, id string) (*model.PostDTO, error)
	RemovePost(ctx context.Context, executorID, id string) error

	AddPostMedia(ctx context.Context, dto *model.AddPostMediaDTO) (*model.PostDTO, error)
	RemovePostMedia(ctx context.Context, dto *model.RemovePostMediaDTO) (*model.PostDTO, error)
	ReorderPostMedia(ctx context.Context, dto *model.ReorderPostMediaDTO) (*model.PostDTO, error)
}
