package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/model"
)

func TestMediaRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMediaRepository(logger.New("test"))

	cover := model.NewPostMedia("post-1", "media-a", model.PostMediaTypeCover, 0, nil)
	gallery := model.NewPostMedia("post-1", "media-b", model.PostMediaTypeGallery, 1, nil)

	require.NoError(t, repo.Attach(ctx, "post-1", []*model.PostMedia{gallery, cover}))

	items, err := repo.GetByPost(ctx, "post-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	// cover sorts first
	assert.Equal(t, "media-a", items[0].MediaID)

	t.Run("remove is idempotent", func(t *testing.T) {
		removed, err := repo.Remove(ctx, "post-1", "media-b")
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = repo.Remove(ctx, "post-1", "media-b")
		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("replace swaps the whole set", func(t *testing.T) {
		replacement := []*model.PostMedia{
			model.NewPostMedia("post-1", "media-c", model.PostMediaTypeGallery, 1, nil),
			model.NewPostMedia("post-1", "media-d", model.PostMediaTypeGallery, 2, nil),
		}
		require.NoError(t, repo.Replace(ctx, "post-1", replacement))

		items, err := repo.GetByPost(ctx, "post-1")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "media-c", items[0].MediaID)
	})

	t.Run("reorder updates only sort orders", func(t *testing.T) {
		require.NoError(t, repo.Reorder(ctx, "post-1", []model.MediaOrder{
			{MediaID: "media-c", SortOrder: 2},
			{MediaID: "media-d", SortOrder: 1},
		}))

		items, err := repo.GetByPost(ctx, "post-1")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "media-d", items[0].MediaID)
		assert.Equal(t, "media-c", items[1].MediaID)
	})

	t.Run("get by posts groups by post id", func(t *testing.T) {
		other := model.NewPostMedia("post-2", "media-z", model.PostMediaTypeGallery, 1, nil)
		require.NoError(t, repo.Attach(ctx, "post-2", []*model.PostMedia{other}))

		byPost, err := repo.GetByPosts(ctx, []string{"post-1", "post-2", "post-3"})
		require.NoError(t, err)
		assert.Len(t, byPost["post-1"], 2)
		assert.Len(t, byPost["post-2"], 1)
		assert.Empty(t, byPost["post-3"])
	})
}
