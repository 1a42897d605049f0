package model

// EditPostDTO distinguishes "field absent" from "field present but empty":
// a nil pointer or nil slice means the field was not supplied and the current
// value is kept; a non-nil empty value clears it. Any non-nil media field
// triggers a full rebuild of the media collection.
type EditPostDTO struct {
	ExecutorID string  `json:"executor_id"`
	PostID     string  `json:"post_id"`
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`

	ImageID         *string  `json:"image_id,omitempty"`
	CoverImageID    *string  `json:"cover_image_id,omitempty"`
	GalleryImageIDs []string `json:"gallery_image_ids,omitempty"`
}

func (d *EditPostDTO) HasMediaFields() bool {
	return d.ImageID != nil || d.CoverImageID != nil || d.GalleryImageIDs != nil
}
