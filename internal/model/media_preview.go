package model

type MediaType string

const (
	MediaTypeImage MediaType = "IMAGE"
	MediaTypeVideo MediaType = "VIDEO"
)

// MediaPreview is the metadata the media service returns for a stored item.
type MediaPreview struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         MediaType `json:"type"`
	RelativePath string    `json:"relative_path"`
	Size         int64     `json:"size"`
	Ext          string    `json:"ext"`
	Mimetype     string    `json:"mimetype"`
}
