package model

import (
	"sort"

	"inkwell-post-service/internal/custom_errors"
)

// PostMediaCollection is the full set of media associations of one post.
// It is immutable: add, remove and reorder all go through constructing a new
// collection, so the invariants are checked in exactly one place.
//
// Invariants: at most one cover, no duplicate media ids, gallery totally
// ordered by sort order with insertion order breaking ties.
type PostMediaCollection struct {
	items []*PostMedia
}

func NewPostMediaCollection(items []*PostMedia) (*PostMediaCollection, error) {
	seen := make(map[string]struct{}, len(items))
	coverCount := 0
	for _, item := range items {
		if _, dup := seen[item.MediaID]; dup {
			return nil, custom_errors.ErrDuplicateMedia
		}
		seen[item.MediaID] = struct{}{}
		if item.IsCover() {
			coverCount++
			if coverCount > 1 {
				return nil, custom_errors.ErrCoverAlreadyExists
			}
		}
	}

	ordered := make([]*PostMedia, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].IsCover() != ordered[j].IsCover() {
			return ordered[i].IsCover()
		}
		return ordered[i].SortOrder < ordered[j].SortOrder
	})

	return &PostMediaCollection{items: ordered}, nil
}

func EmptyPostMediaCollection() *PostMediaCollection {
	return &PostMediaCollection{}
}

func (c *PostMediaCollection) All() []*PostMedia {
	out := make([]*PostMedia, len(c.items))
	copy(out, c.items)
	return out
}

func (c *PostMediaCollection) Cover() *PostMedia {
	for _, item := range c.items {
		if item.IsCover() {
			return item
		}
	}
	return nil
}

func (c *PostMediaCollection) Gallery() []*PostMedia {
	var gallery []*PostMedia
	for _, item := range c.items {
		if item.IsGallery() {
			gallery = append(gallery, item)
		}
	}
	return gallery
}

func (c *PostMediaCollection) Count() int {
	return len(c.items)
}

func (c *PostMediaCollection) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *PostMediaCollection) HasCover() bool {
	return c.Cover() != nil
}

func (c *PostMediaCollection) Has(mediaID string) bool {
	for _, item := range c.items {
		if item.MediaID == mediaID {
			return true
		}
	}
	return false
}

func (c *PostMediaCollection) MediaIDs() []string {
	ids := make([]string, 0, len(c.items))
	for _, item := range c.items {
		ids = append(ids, item.MediaID)
	}
	return ids
}

// WithPostID back-fills the owning post id into every association once the
// post row exists, producing a new collection.
func (c *PostMediaCollection) WithPostID(postID string) *PostMediaCollection {
	items := make([]*PostMedia, len(c.items))
	for i, item := range c.items {
		items[i] = item.WithPostID(postID)
	}
	return &PostMediaCollection{items: items}
}
