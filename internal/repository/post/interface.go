package post_repository

import (
	"context"

	"inkwell-post-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/post --outpkg mocks --filename PostRepository.go
type Repository interface {
	// Create persists the post row and returns the post with the issued id
	// and timestamps filled in. Media rows are not touched.
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id string) (*model.Post, error)
	GetByOwner(ctx context.Context, ownerID string) ([]*model.Post, error)
	List(ctx context.Context, filters model.PostFilters) ([]*model.Post, int, error)
	Update(ctx context.Context, post *model.Post) error
}
