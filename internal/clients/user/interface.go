package user_client

import (
	"context"

	"inkwell-post-service/internal/model"
)

//go:generate mockery --name Client --dir . --output ../../../mocks/user_client --outpkg mocks --filename UserClient.go
type Client interface {
	GetPreview(ctx context.Context, userID string) (*model.UserPreview, error)
}
