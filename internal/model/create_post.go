package model

type CreatePostDTO struct {
	ExecutorID string  `json:"executor_id"`
	Title      string  `json:"title"`
	Content    *string `json:"content,omitempty"`

	// ImageID is the legacy single-image field; CoverImageID wins when both
	// are supplied.
	ImageID         *string  `json:"image_id,omitempty"`
	CoverImageID    *string  `json:"cover_image_id,omitempty"`
	GalleryImageIDs []string `json:"gallery_image_ids,omitempty"`
}
