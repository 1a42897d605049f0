package cache

import (
	"context"

	"inkwell-post-service/internal/model"
)

//go:generate mockery --name PostCache --dir . --output ../../mocks/cache --outpkg mocks --filename PostCache.go
type PostCache interface {
	GetPost(ctx context.Context, postID string) (*model.PostDTO, error)
	SetPost(ctx context.Context, post *model.PostDTO) error
	DeletePost(ctx context.Context, postID string) error
}
