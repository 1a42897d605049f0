package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PostMediaType string

const (
	PostMediaTypeCover   PostMediaType = "COVER"
	PostMediaTypeGallery PostMediaType = "GALLERY"
)

func (t PostMediaType) IsValid() bool {
	switch t {
	case PostMediaTypeCover, PostMediaTypeGallery:
		return true
	}
	return false
}

// MediaDetails is a denormalized snapshot of media metadata captured at
// association time. It is never re-fetched once the association exists.
type MediaDetails struct {
	Name         string    `json:"name"`
	Type         MediaType `json:"type"`
	RelativePath string    `json:"relative_path"`
	Size         int64     `json:"size"`
	Ext          string    `json:"ext"`
	Mimetype     string    `json:"mimetype"`
}

// PostMedia is one association between a post and a media item. The PostID is
// empty until the owning post is persisted and is back-filled afterwards.
type PostMedia struct {
	ID           string             `json:"id"`
	PostID       string             `json:"post_id"`
	MediaID      string             `json:"media_id"`
	Type         PostMediaType      `json:"type"`
	SortOrder    int32              `json:"sort_order"`
	MediaDetails *MediaDetails      `json:"media_details,omitempty"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}

func NewPostMedia(postID, mediaID string, mediaType PostMediaType, sortOrder int32, details *MediaDetails) *PostMedia {
	return &PostMedia{
		ID:           uuid.NewString(),
		PostID:       postID,
		MediaID:      mediaID,
		Type:         mediaType,
		SortOrder:    sortOrder,
		MediaDetails: details,
		CreatedAt:    pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}

func (m *PostMedia) IsCover() bool {
	return m.Type == PostMediaTypeCover
}

func (m *PostMedia) IsGallery() bool {
	return m.Type == PostMediaTypeGallery
}

// WithPostID returns a copy bound to the given post id. Associations are
// immutable, so back-filling the owner produces a new value.
func (m *PostMedia) WithPostID(postID string) *PostMedia {
	clone := *m
	clone.PostID = postID
	return &clone
}
