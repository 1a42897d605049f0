package user_client_http

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

type UserClient struct {
	client *resty.Client
	log    *logger.Logger
}

func NewUserClient(cfg config.UserService, log *logger.Logger) *UserClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.Timeout) * time.Second)

	return &UserClient{client: client, log: log}
}

func (c *UserClient) GetPreview(ctx context.Context, userID string) (*model.UserPreview, error) {
	var preview model.UserPreview

	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("id", userID).
		SetResult(&preview).
		Get("/api/users/{id}/preview")
	if err != nil {
		c.log.Error("Failed to call user service",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrExternalServiceError
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return &preview, nil
	case http.StatusNotFound:
		c.log.Debug("User not found in user service", slog.String("user_id", userID))
		return nil, custom_errors.ErrUserNotFound
	default:
		c.log.Error("Unexpected user service response",
			slog.String("user_id", userID),
			slog.Int("status", resp.StatusCode()))
		return nil, custom_errors.ErrExternalServiceError
	}
}
