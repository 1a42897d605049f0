package model

type PostImageDTO struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type PostMediaItemDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Type     string `json:"type"`
	Size     int64  `json:"size"`
	Ext      string `json:"ext"`
	Mimetype string `json:"mimetype"`
}

type PostMediaDTO struct {
	ID        string           `json:"id"`
	MediaID   string           `json:"media_id"`
	Type      PostMediaType    `json:"type"`
	SortOrder int32            `json:"sort_order"`
	Media     PostMediaItemDTO `json:"media"`
}

type PostOwnerDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// PostDTO always carries the legacy image view, the cover/gallery views and
// the flattened media collection, independent of which request fields were
// used to produce the post.
type PostDTO struct {
	ID              string         `json:"id"`
	Owner           PostOwnerDTO   `json:"owner"`
	Title           string         `json:"title"`
	Content         *string        `json:"content,omitempty"`
	Status          PostStatus     `json:"status"`
	Image           *PostImageDTO  `json:"image,omitempty"`
	CoverImage      *PostImageDTO  `json:"cover_image,omitempty"`
	GalleryImages   []PostImageDTO `json:"gallery_images"`
	MediaCollection []PostMediaDTO `json:"media_collection"`
	CreatedAt       int64          `json:"created_at"`
	EditedAt        *int64         `json:"edited_at,omitempty"`
	PublishedAt     *int64         `json:"published_at,omitempty"`
}
