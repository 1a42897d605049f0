package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/model"
)

const (
	postCacheKeyPrefix = "post:"
	postCacheTTL       = 30 * time.Minute
)

type PostCache struct {
	client *Client
	log    *logger.Logger
}

func NewPostCache(client *Client, log *logger.Logger) *PostCache {
	return &PostCache{
		client: client,
		log:    log,
	}
}

func (p *PostCache) GetPost(ctx context.Context, postID string) (*model.PostDTO, error) {
	key := postCacheKeyPrefix + postID

	var post model.PostDTO
	err := p.client.Get(ctx, key, &post)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			p.log.Debug("Post cache miss", slog.String("post_id", postID))
			return nil, custom_errors.ErrCacheMiss
		}
		p.log.Error("Failed to get post from cache",
			slog.String("post_id", postID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get post from cache: %w", err)
	}

	p.log.Debug("Post cache hit", slog.String("post_id", postID))
	return &post, nil
}

func (p *PostCache) SetPost(ctx context.Context, post *model.PostDTO) error {
	if post == nil {
		return fmt.Errorf("post cannot be nil")
	}

	key := postCacheKeyPrefix + post.ID

	if err := p.client.Set(ctx, key, post, postCacheTTL); err != nil {
		p.log.Error("Failed to set post cache",
			slog.String("post_id", post.ID),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to set post cache: %w", err)
	}

	p.log.Debug("Post cached successfully",
		slog.String("post_id", post.ID),
		slog.Duration("ttl", postCacheTTL))
	return nil
}

func (p *PostCache) DeletePost(ctx context.Context, postID string) error {
	key := postCacheKeyPrefix + postID

	if err := p.client.Delete(ctx, key); err != nil {
		p.log.Error("Failed to delete post from cache",
			slog.String("post_id", postID),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete post from cache: %w", err)
	}

	p.log.Debug("Post deleted from cache", slog.String("post_id", postID))
	return nil
}
