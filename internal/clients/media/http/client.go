package media_client_http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/infrastructure/config"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/model"
)

type MediaClient struct {
	client *resty.Client
	log    *logger.Logger
}

func NewMediaClient(cfg config.MediaService, log *logger.Logger) *MediaClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.Timeout) * time.Second)

	return &MediaClient{client: client, log: log}
}

func (c *MediaClient) GetPreview(ctx context.Context, mediaID string) (*model.MediaPreview, error) {
	var preview model.MediaPreview

	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("id", mediaID).
		SetResult(&preview).
		Get("/api/medias/{id}/preview")
	if err != nil {
		c.log.Error("Failed to call media service",
			slog.String("media_id", mediaID),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrExternalServiceError
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return &preview, nil
	case http.StatusNotFound:
		c.log.Debug("Media not found in media service", slog.String("media_id", mediaID))
		return nil, custom_errors.ErrMediaNotFound
	default:
		c.log.Error("Unexpected media service response",
			slog.String("media_id", mediaID),
			slog.Int("status", resp.StatusCode()))
		return nil, custom_errors.ErrExternalServiceError
	}
}
