package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell-post-service/internal/custom_errors"
)

func galleryItem(mediaID string, sortOrder int32) *PostMedia {
	return NewPostMedia("post-1", mediaID, PostMediaTypeGallery, sortOrder, nil)
}

func coverItem(mediaID string) *PostMedia {
	return NewPostMedia("post-1", mediaID, PostMediaTypeCover, 0, nil)
}

func TestNewPostMediaCollection(t *testing.T) {
	tests := []struct {
		name    string
		items   []*PostMedia
		wantErr error
	}{
		{
			name:  "empty collection",
			items: nil,
		},
		{
			name: "cover and gallery",
			items: []*PostMedia{
				coverItem("media-a"),
				galleryItem("media-b", 1),
				galleryItem("media-c", 2),
			},
		},
		{
			name: "duplicate media id",
			items: []*PostMedia{
				galleryItem("media-a", 1),
				galleryItem("media-a", 2),
			},
			wantErr: custom_errors.ErrDuplicateMedia,
		},
		{
			name: "two covers",
			items: []*PostMedia{
				coverItem("media-a"),
				coverItem("media-b"),
			},
			wantErr: custom_errors.ErrCoverAlreadyExists,
		},
		{
			name: "duplicate across cover and gallery",
			items: []*PostMedia{
				coverItem("media-a"),
				galleryItem("media-a", 1),
			},
			wantErr: custom_errors.ErrDuplicateMedia,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collection, err := NewPostMediaCollection(tt.items)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, collection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.items), collection.Count())
		})
	}
}

func TestPostMediaCollection_Ordering(t *testing.T) {
	collection, err := NewPostMediaCollection([]*PostMedia{
		galleryItem("media-c", 2),
		galleryItem("media-b", 1),
		coverItem("media-a"),
	})
	require.NoError(t, err)

	all := collection.All()
	require.Len(t, all, 3)
	assert.Equal(t, "media-a", all[0].MediaID)
	assert.Equal(t, "media-b", all[1].MediaID)
	assert.Equal(t, "media-c", all[2].MediaID)

	require.NotNil(t, collection.Cover())
	assert.Equal(t, "media-a", collection.Cover().MediaID)

	gallery := collection.Gallery()
	require.Len(t, gallery, 2)
	assert.Equal(t, "media-b", gallery[0].MediaID)
	assert.Equal(t, "media-c", gallery[1].MediaID)
}

func TestPostMediaCollection_Accessors(t *testing.T) {
	empty := EmptyPostMediaCollection()
	assert.True(t, empty.IsEmpty())
	assert.False(t, empty.HasCover())
	assert.Nil(t, empty.Cover())
	assert.Empty(t, empty.MediaIDs())

	collection, err := NewPostMediaCollection([]*PostMedia{
		coverItem("media-a"),
		galleryItem("media-b", 1),
	})
	require.NoError(t, err)

	assert.True(t, collection.HasCover())
	assert.True(t, collection.Has("media-b"))
	assert.False(t, collection.Has("media-z"))
	assert.Equal(t, []string{"media-a", "media-b"}, collection.MediaIDs())
}

func TestPostMediaCollection_WithPostID(t *testing.T) {
	collection, err := NewPostMediaCollection([]*PostMedia{
		coverItem("media-a"),
		galleryItem("media-b", 1),
	})
	require.NoError(t, err)

	filled := collection.WithPostID("post-42")
	for _, item := range filled.All() {
		assert.Equal(t, "post-42", item.PostID)
	}
	// the original stays untouched
	for _, item := range collection.All() {
		assert.Equal(t, "post-1", item.PostID)
	}
}
