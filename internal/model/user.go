package model

// UserPreview is the owner snapshot the user service returns.
type UserPreview struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
