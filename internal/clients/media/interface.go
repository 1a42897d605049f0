package media_client

import (
	"context"

	"inkwell-post-service/internal/model"
)

//go:generate mockery --name Client --dir . --output ../../../mocks/media_client --outpkg mocks --filename MediaClient.go
type Client interface {
	GetPreview(ctx context.Context, mediaID string) (*model.MediaPreview, error)
}
