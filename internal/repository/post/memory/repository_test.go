package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/model"
)

func strPtr(s string) *string { return &s }

func TestPostRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(logger.New("test"))

	created, err := repo.Create(ctx, model.NewPost(model.PostOwner{ID: "user-1", Name: "tester"}, "First", nil, nil, nil))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "First", got.Title)

		_, err = repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})

	t.Run("update", func(t *testing.T) {
		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)

		got.Edit(strPtr("Renamed"), nil)
		require.NoError(t, repo.Update(ctx, got))

		updated, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
	})

	t.Run("list filters by owner and status", func(t *testing.T) {
		other, err := repo.Create(ctx, model.NewPost(model.PostOwner{ID: "user-2"}, "Second", nil, nil, nil))
		require.NoError(t, err)

		other.Publish()
		require.NoError(t, repo.Update(ctx, other))

		ownerID := "user-1"
		posts, total, err := repo.List(ctx, model.PostFilters{OwnerID: &ownerID})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, posts, 1)
		assert.Equal(t, created.ID, posts[0].ID)

		published := model.PostStatusPublished
		posts, total, err = repo.List(ctx, model.PostFilters{Status: &published})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, posts, 1)
		assert.Equal(t, other.ID, posts[0].ID)
	})

	t.Run("removed posts are hidden", func(t *testing.T) {
		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)

		got.Remove()
		require.NoError(t, repo.Update(ctx, got))

		_, err = repo.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)

		_, total, err := repo.List(ctx, model.PostFilters{})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})
}
