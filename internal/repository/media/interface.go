package media_repository

import (
	"context"

	"inkwell-post-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/media --outpkg mocks --filename MediaRepository.go
type Repository interface {
	// Attach inserts the given associations for the post.
	Attach(ctx context.Context, postID string, media []*model.PostMedia) error
	// Replace removes every association of the post and inserts the given
	// set in one pass; used by the edit flow's wholesale rebuild.
	Replace(ctx context.Context, postID string, media []*model.PostMedia) error
	// Remove deletes one association. Removing an absent association is not
	// an error; the bool reports whether a row was actually deleted.
	Remove(ctx context.Context, postID, mediaID string) (bool, error)
	// Reorder updates only the sort order of existing associations.
	Reorder(ctx context.Context, postID string, orders []model.MediaOrder) error
	GetByPost(ctx context.Context, postID string) ([]*model.PostMedia, error)
	GetByPosts(ctx context.Context, postIDs []string) (map[string][]*model.PostMedia, error)
}
