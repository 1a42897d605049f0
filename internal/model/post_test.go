package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func detailedItem(mediaID string, mediaType PostMediaType, sortOrder int32, path string) *PostMedia {
	return NewPostMedia("post-1", mediaID, mediaType, sortOrder, &MediaDetails{
		Name:         mediaID + ".jpg",
		Type:         MediaTypeImage,
		RelativePath: path,
	})
}

func TestPost_Image(t *testing.T) {
	t.Run("cover wins over legacy reference", func(t *testing.T) {
		collection, err := NewPostMediaCollection([]*PostMedia{
			detailedItem("media-a", PostMediaTypeCover, 0, "/a.jpg"),
		})
		require.NoError(t, err)

		post := NewPost(PostOwner{ID: "user-1"}, "title", nil, strPtr("legacy-media"), collection)

		image := post.Image()
		require.NotNil(t, image)
		assert.Equal(t, "media-a", image.ID)
		assert.Equal(t, "/a.jpg", image.RelativePath)
	})

	t.Run("falls back to legacy reference without cover", func(t *testing.T) {
		post := NewPost(PostOwner{ID: "user-1"}, "title", nil, strPtr("legacy-media"), nil)

		image := post.Image()
		require.NotNil(t, image)
		assert.Equal(t, "legacy-media", image.ID)
	})

	t.Run("nil without cover or legacy reference", func(t *testing.T) {
		post := NewPost(PostOwner{ID: "user-1"}, "title", nil, nil, nil)
		assert.Nil(t, post.Image())
	})
}

func TestPost_GalleryImages(t *testing.T) {
	collection, err := NewPostMediaCollection([]*PostMedia{
		detailedItem("media-a", PostMediaTypeCover, 0, "/a.jpg"),
		detailedItem("media-b", PostMediaTypeGallery, 1, "/b.jpg"),
		detailedItem("media-c", PostMediaTypeGallery, 2, "/c.jpg"),
	})
	require.NoError(t, err)

	post := NewPost(PostOwner{ID: "user-1"}, "title", nil, nil, collection)

	gallery := post.GalleryImages()
	require.Len(t, gallery, 2)
	assert.Equal(t, "media-b", gallery[0].ID)
	assert.Equal(t, "media-c", gallery[1].ID)
}

func TestPost_Edit(t *testing.T) {
	post := NewPost(PostOwner{ID: "user-1"}, "old title", strPtr("old content"), nil, nil)

	post.Edit(strPtr("new title"), nil)
	assert.Equal(t, "new title", post.Title)
	require.NotNil(t, post.Content)
	assert.Equal(t, "old content", *post.Content)
	assert.True(t, post.EditedAt.Valid)

	post.Edit(nil, strPtr("new content"))
	assert.Equal(t, "new title", post.Title)
	assert.Equal(t, "new content", *post.Content)
}

func TestPost_ReplaceMedia(t *testing.T) {
	post := NewPost(PostOwner{ID: "user-1"}, "title", nil, strPtr("legacy-media"), nil)

	withCover, err := NewPostMediaCollection([]*PostMedia{
		detailedItem("media-a", PostMediaTypeCover, 0, "/a.jpg"),
	})
	require.NoError(t, err)

	post.ReplaceMedia(withCover)
	require.NotNil(t, post.ImageID)
	assert.Equal(t, "media-a", *post.ImageID)

	post.ReplaceMedia(EmptyPostMediaCollection())
	assert.Nil(t, post.ImageID)
	assert.Nil(t, post.Image())
}

func TestPost_Lifecycle(t *testing.T) {
	post := NewPost(PostOwner{ID: "user-1"}, "title", nil, nil, nil)
	assert.Equal(t, PostStatusDraft, post.Status)
	assert.True(t, post.CreatedAt.Valid)
	assert.False(t, post.IsRemoved())

	post.Publish()
	assert.Equal(t, PostStatusPublished, post.Status)
	assert.True(t, post.PublishedAt.Valid)

	post.Remove()
	assert.True(t, post.IsRemoved())

	assert.True(t, post.IsOwnedBy("user-1"))
	assert.False(t, post.IsOwnedBy("user-2"))
}
