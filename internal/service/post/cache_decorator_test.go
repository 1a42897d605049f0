package post_service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/model"
	cache_mock "inkwell-post-service/mocks/cache"
	metrics_mock "inkwell-post-service/mocks/metrics"
	service_mock "inkwell-post-service/mocks/service"
)

func TestPostServiceCacheDecorator_GetPost(t *testing.T) {
	ctx := context.Background()
	log := logger.New("test")

	t.Run("cache hit skips the service", func(t *testing.T) {
		svc := service_mock.NewService(t)
		postCache := cache_mock.NewPostCache(t)
		metrics := metrics_mock.NewProvider(t)

		cached := &model.PostDTO{ID: "post-1", Title: "cached"}
		postCache.On("GetPost", mock.Anything, "post-1").Return(cached, nil)
		metrics.On("RecordCacheOperationDuration", "post_get", mock.Anything)
		metrics.On("IncrementCacheHits")
		metrics.On("IncrementPostOperations", "get", true)

		decorator := NewPostServiceCacheDecorator(svc, postCache, log, metrics)

		result, err := decorator.GetPost(ctx, "post-1")
		require.NoError(t, err)
		assert.Equal(t, cached, result)
		svc.AssertNotCalled(t, "GetPost", mock.Anything, mock.Anything)
	})

	t.Run("cache miss falls through and refills", func(t *testing.T) {
		svc := service_mock.NewService(t)
		postCache := cache_mock.NewPostCache(t)
		metrics := metrics_mock.NewProvider(t)

		fresh := &model.PostDTO{ID: "post-1", Title: "fresh"}
		postCache.On("GetPost", mock.Anything, "post-1").Return(nil, custom_errors.ErrCacheMiss)
		metrics.On("RecordCacheOperationDuration", "post_get", mock.Anything)
		metrics.On("IncrementCacheMisses")
		metrics.On("IncrementPostOperations", "get", true)
		svc.On("GetPost", mock.Anything, "post-1").Return(fresh, nil)
		postCache.On("SetPost", mock.Anything, fresh).Return(nil)
		metrics.On("RecordCacheOperationDuration", "post_set", mock.Anything)

		decorator := NewPostServiceCacheDecorator(svc, postCache, log, metrics)

		result, err := decorator.GetPost(ctx, "post-1")
		require.NoError(t, err)
		assert.Equal(t, fresh, result)
	})
}

func TestPostServiceCacheDecorator_Invalidation(t *testing.T) {
	ctx := context.Background()
	log := logger.New("test")

	t.Run("remove drops the cached post", func(t *testing.T) {
		svc := service_mock.NewService(t)
		postCache := cache_mock.NewPostCache(t)
		metrics := metrics_mock.NewProvider(t)

		svc.On("RemovePost", mock.Anything, "user-1", "post-1").Return(nil)
		metrics.On("IncrementPostOperations", "remove", true)
		postCache.On("DeletePost", mock.Anything, "post-1").Return(nil)
		metrics.On("RecordCacheOperationDuration", "post_delete", mock.Anything)

		decorator := NewPostServiceCacheDecorator(svc, postCache, log, metrics)

		require.NoError(t, decorator.RemovePost(ctx, "user-1", "post-1"))
	})

	t.Run("failed edit leaves the cache untouched", func(t *testing.T) {
		svc := service_mock.NewService(t)
		postCache := cache_mock.NewPostCache(t)
		metrics := metrics_mock.NewProvider(t)

		svc.On("EditPost", mock.Anything, mock.AnythingOfType("*model.EditPostDTO")).Return(nil, custom_errors.ErrForbidden)
		metrics.On("IncrementPostOperations", "edit", false)

		decorator := NewPostServiceCacheDecorator(svc, postCache, log, metrics)

		_, err := decorator.EditPost(ctx, &model.EditPostDTO{ExecutorID: "user-1", PostID: "post-1"})
		assert.ErrorIs(t, err, custom_errors.ErrForbidden)
		postCache.AssertNotCalled(t, "SetPost", mock.Anything, mock.Anything)
	})

	t.Run("media mutation refreshes the cached post", func(t *testing.T) {
		svc := service_mock.NewService(t)
		postCache := cache_mock.NewPostCache(t)
		metrics := metrics_mock.NewProvider(t)

		updated := &model.PostDTO{ID: "post-1"}
		svc.On("AddPostMedia", mock.Anything, mock.AnythingOfType("*model.AddPostMediaDTO")).Return(updated, nil)
		metrics.On("IncrementMediaOperations", "add", true)
		postCache.On("SetPost", mock.Anything, updated).Return(nil)
		metrics.On("RecordCacheOperationDuration", "post_set", mock.Anything)

		decorator := NewPostServiceCacheDecorator(svc, postCache, log, metrics)

		result, err := decorator.AddPostMedia(ctx, &model.AddPostMediaDTO{PostID: "post-1", MediaID: "media-a", Type: model.PostMediaTypeGallery})
		require.NoError(t, err)
		assert.Equal(t, updated, result)
	})
}
