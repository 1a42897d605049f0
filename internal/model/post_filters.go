package model

type PostFilters struct {
	OwnerID        *string
	Status         *PostStatus
	IncludeRemoved bool
	Limit          *int
	Offset         *int
}
