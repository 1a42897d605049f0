package model

type AddPostMediaDTO struct {
	ExecutorID string        `json:"executor_id"`
	PostID     string        `json:"post_id"`
	MediaID    string        `json:"media_id"`
	Type       PostMediaType `json:"type"`
	SortOrder  *int32        `json:"sort_order,omitempty"`
}

type RemovePostMediaDTO struct {
	ExecutorID string `json:"executor_id"`
	PostID     string `json:"post_id"`
	MediaID    string `json:"media_id"`
}

type MediaOrder struct {
	MediaID   string `json:"media_id"`
	SortOrder int32  `json:"sort_order"`
}

type ReorderPostMediaDTO struct {
	ExecutorID  string       `json:"executor_id"`
	PostID      string       `json:"post_id"`
	MediaOrders []MediaOrder `json:"media_orders"`
}
