package post_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"inkwell-post-service/internal/cache"
	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/metrics"
	"inkwell-post-service/internal/model"
)

// PostServiceCacheDecorator caches assembled post DTOs. Every mutation goes
// through the wrapped service first and refreshes or invalidates the entry
// afterwards, so the cache never holds a post the database rejected.
type PostServiceCacheDecorator struct {
	service   Service
	postCache cache.PostCache
	log       *logger.Logger
	metrics   metrics.Provider
}

func NewPostServiceCacheDecorator(
	service Service,
	postCache cache.PostCache,
	log *logger.Logger,
	metrics metrics.Provider,
) Service {
	return &PostServiceCacheDecorator{
		service:   service,
		postCache: postCache,
		log:       log,
		metrics:   metrics,
	}
}

func (d *PostServiceCacheDecorator) CreatePost(ctx context.Context, dto *model.CreatePostDTO) (*model.PostDTO, error) {
	result, err := d.service.CreatePost(ctx, dto)
	d.metrics.IncrementPostOperations("create", err == nil)
	if err != nil {
		return nil, err
	}
	d.storePost(ctx, result)
	return result, nil
}

func (d *PostServiceCacheDecorator) GetPost(ctx context.Context, id string) (*model.PostDTO, error) {
	cacheStart := time.Now()
	cachedPost, err := d.postCache.GetPost(ctx, id)
	d.metrics.RecordCacheOperationDuration("post_get", time.Since(cacheStart))
	if err == nil {
		d.metrics.IncrementCacheHits()
		d.metrics.IncrementPostOperations("get", true)
		return cachedPost, nil
	}

	if errors.Is(err, custom_errors.ErrCacheMiss) {
		d.metrics.IncrementCacheMisses()
	} else {
		d.log.Warn("Failed to get post from cache",
			slog.String("post_id", id),
			slog.String("error", err.Error()))
	}

	post, err := d.service.GetPost(ctx, id)
	d.metrics.IncrementPostOperations("get", err == nil)
	if err != nil {
		return nil, err
	}
	d.storePost(ctx, post)
	return post, nil
}

func (d *PostServiceCacheDecorator) ListPosts(ctx context.Context, filters *model.PostFilters) ([]*model.PostDTO, int, error) {
	posts, total, err := d.service.ListPosts(ctx, filters)
	d.metrics.IncrementPostOperations("list", err == nil)
	return posts, total, err
}

func (d *PostServiceCacheDecorator) EditPost(ctx context.Context, dto *model.EditPostDTO) (*model.PostDTO, error) {
	result, err := d.service.EditPost(ctx, dto)
	d.metrics.IncrementPostOperations("edit", err == nil)
	if err != nil {
		return nil, err
	}
	d.storePost(ctx, result)
	return result, nil
}

func (d *PostServiceCacheDecorator) PublishPost(ctx context.Context, executorID, id string) (*model.PostDTO, error) {
	result, err := d.service.PublishPost(ctx, executorID, id)
	d.metrics.IncrementPostOperations("publish", err == nil)
	if err != nil {
		return nil, err
	}
	d.storePost(ctx, result)
	return result, nil
}

func (d *PostServiceCacheDecorator) RemovePost(ctx context.Context, executorID, id string) error {
	err := d.service.RemovePost(ctx, executorID, id)
	d.metrics.IncrementPostOperations("remove", err == nil)
	if err != nil {
		return err
	}
	d.dropPost(ctx, id)
	return nil
}

func (d *PostServiceCacheDecorator) AddPostMedia(ctx context.Context, dto *model.AddPostMediaDTO) (*model.PostDTO, error) {
	result, err := d.service.AddPostMedia(ctx, dto)
	d.metrics.IncrementMediaOperations("add", err == nil)
	if err != nil {
		return nil, err
	}
	d.storePost(ctx, result)
	return result, nil
}

func (d *PostServiceCacheDecorator) RemovePostMedia(ctx context.Context, dto *model.RemovePostMediaDTO) (*model.PostDTO, error) {
	result, err := d.service.RemovePostMedia(ctx, dto)
	d.metrics.IncrementMediaOperations("remove", err == nil)
	if err != nil {
		return nil, err
	}
	d.storePost(ctx, result)
	return result, nil
}

func (d *PostServiceCacheDecorator) ReorderPostMedia(ctx context.Context, dto *model.ReorderPostMediaDTO) (*model.PostDTO, error) {
	result, err := d.service.ReorderPostMedia(ctx, dto)
	d.metrics.IncrementMediaOperations("reorder", err == nil)
	if err != nil {
		return nil, err
	}
	d.storePost(ctx, result)
	return result, nil
}

func (d *PostServiceCacheDecorator) storePost(ctx context.Context, post *model.PostDTO) {
	start := time.Now()
	if err := d.postCache.SetPost(ctx, post); err != nil {
		d.log.Warn("Failed to cache post",
			slog.String("post_id", post.ID),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_set", time.Since(start))
}

func (d *PostServiceCacheDecorator) dropPost(ctx context.Context, postID string) {
	start := time.Now()
	if err := d.postCache.DeletePost(ctx, postID); err != nil {
		d.log.Warn("Failed to invalidate post cache",
			slog.String("post_id", postID),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_delete", time.Since(start))
}
