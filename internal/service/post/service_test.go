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
	media_repository_mock "inkwell-post-service/mocks/media"
	media_client_mock "inkwell-post-service/mocks/media_client"
	post_repository_mock "inkwell-post-service/mocks/post"
	postgres_mock "inkwell-post-service/mocks/postgres"
	user_client_mock "inkwell-post-service/mocks/user_client"
)

type serviceMocks struct {
	postRepo    *post_repository_mock.Repository
	mediaRepo   *media_repository_mock.Repository
	uow         *postgres_mock.UnitOfWork
	tx          *postgres_mock.Transaction
	userClient  *user_client_mock.Client
	mediaClient *media_client_mock.Client
}

func newTestService(t *testing.T) (*PostService, *serviceMocks) {
	m := &serviceMocks{
		postRepo:    post_repository_mock.NewRepository(t),
		mediaRepo:   media_repository_mock.NewRepository(t),
		uow:         postgres_mock.NewUnitOfWork(t),
		tx:          postgres_mock.NewTransaction(t),
		userClient:  user_client_mock.NewClient(t),
		mediaClient: media_client_mock.NewClient(t),
	}
	svc := NewPostService(m.postRepo, m.mediaRepo, m.uow, logger.New("test"), m.userClient, m.mediaClient)
	return svc, m
}

func ownedPost(id, ownerID string) *model.Post {
	return &model.Post{
		ID:     id,
		Owner:  model.PostOwner{ID: ownerID, Name: "tester", Role: "user"},
		Title:  "Test Post",
		Status: model.PostStatusDraft,
		Media:  model.EmptyPostMediaCollection(),
	}
}

func storedCover(postID, mediaID string) *model.PostMedia {
	return model.NewPostMedia(postID, mediaID, model.PostMediaTypeCover, 0, &model.MediaDetails{
		Type:         model.MediaTypeImage,
		RelativePath: "/media/" + mediaID + ".jpg",
	})
}

func storedGallery(postID, mediaID string, sortOrder int32) *model.PostMedia {
	return model.NewPostMedia(postID, mediaID, model.PostMediaTypeGallery, sortOrder, &model.MediaDetails{
		Type:         model.MediaTypeImage,
		RelativePath: "/media/" + mediaID + ".jpg",
	})
}

func TestPostService_CreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("success with cover and gallery", func(t *testing.T) {
		svc, m := newTestService(t)

		m.userClient.On("GetPreview", mock.Anything, "user-1").Return(&model.UserPreview{ID: "user-1", Name: "tester", Role: "user"}, nil)
		m.mediaClient.On("GetPreview", mock.Anything, "media-a").Return(imagePreview("media-a"), nil)
		m.mediaClient.On("GetPreview", mock.Anything, "media-b").Return(imagePreview("media-b"), nil)

		m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
		m.tx.On("PostRepository").Return(m.postRepo)
		m.tx.On("MediaRepository").Return(m.mediaRepo)
		m.postRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(func(_ context.Context, post *model.Post) *model.Post {
			created := *post
			created.ID = "post-1"
			return &created
		}, nil)
		m.mediaRepo.On("Attach", mock.Anything, "post-1", mock.AnythingOfType("[]*model.PostMedia")).Return(nil)
		m.tx.On("Commit", mock.Anything).Return(nil)

		result, err := svc.CreatePost(ctx, &model.CreatePostDTO{
			ExecutorID:      "user-1",
			Title:           "Test Post",
			CoverImageID:    strPtr("media-a"),
			GalleryImageIDs: []string{"media-b"},
		})
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, "post-1", result.ID)
		assert.Equal(t, model.PostStatusDraft, result.Status)
		require.NotNil(t, result.CoverImage)
		assert.Equal(t, "media-a", result.CoverImage.ID)
		require.NotNil(t, result.Image)
		assert.Equal(t, "media-a", result.Image.ID)
		require.Len(t, result.GalleryImages, 1)
		assert.Equal(t, "media-b", result.GalleryImages[0].ID)
		require.Len(t, result.MediaCollection, 2)
		assert.Equal(t, "media-a", result.MediaCollection[0].MediaID)
		assert.Equal(t, "media-b", result.MediaCollection[1].MediaID)
	})

	t.Run("empty title is rejected", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.CreatePost(ctx, &model.CreatePostDTO{ExecutorID: "user-1", Title: "   "})
		assert.ErrorIs(t, err, custom_errors.ErrPostValidation)
	})

	t.Run("unknown owner", func(t *testing.T) {
		svc, m := newTestService(t)
		m.userClient.On("GetPreview", mock.Anything, "ghost").Return(nil, custom_errors.ErrUserNotFound)

		_, err := svc.CreatePost(ctx, &model.CreatePostDTO{ExecutorID: "ghost", Title: "Test Post"})
		assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)
	})

	t.Run("invalid media rejects before any write", func(t *testing.T) {
		svc, m := newTestService(t)
		m.userClient.On("GetPreview", mock.Anything, "user-1").Return(&model.UserPreview{ID: "user-1"}, nil)
		m.mediaClient.On("GetPreview", mock.Anything, "media-video").Return(&model.MediaPreview{ID: "media-video", Type: model.MediaTypeVideo}, nil)

		_, err := svc.CreatePost(ctx, &model.CreatePostDTO{
			ExecutorID:   "user-1",
			Title:        "Test Post",
			CoverImageID: strPtr("media-video"),
		})
		assert.ErrorIs(t, err, custom_errors.ErrInvalidMediaType)
		m.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("attach failure rolls back", func(t *testing.T) {
		svc, m := newTestService(t)
		m.userClient.On("GetPreview", mock.Anything, "user-1").Return(&model.UserPreview{ID: "user-1"}, nil)
		m.mediaClient.On("GetPreview", mock.Anything, "media-a").Return(imagePreview("media-a"), nil)

		m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
		m.tx.On("PostRepository").Return(m.postRepo)
		m.tx.On("MediaRepository").Return(m.mediaRepo)
		m.postRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(ownedPost("post-1", "user-1"), nil)
		m.mediaRepo.On("Attach", mock.Anything, "post-1", mock.AnythingOfType("[]*model.PostMedia")).Return(custom_errors.ErrDatabaseQuery)
		m.tx.On("Rollback", mock.Anything).Return(nil)

		_, err := svc.CreatePost(ctx, &model.CreatePostDTO{
			ExecutorID:   "user-1",
			Title:        "Test Post",
			CoverImageID: strPtr("media-a"),
		})
		assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
		m.tx.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestPostService_GetPost(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, m := newTestService(t)
		m.postRepo.On("GetByID", mock.Anything, "post-1").Return(ownedPost("post-1", "user-1"), nil)
		m.mediaRepo.On("GetByPost", mock.Anything, "post-1").Return([]*model.PostMedia{
			storedCover("post-1", "media-a"),
			storedGallery("post-1", "media-b", 1),
		}, nil)

		result, err := svc.GetPost(ctx, "post-1")
		require.NoError(t, err)
		require.NotNil(t, result.CoverImage)
		assert.Equal(t, "media-a", result.CoverImage.ID)
		assert.Len(t, result.MediaCollection, 2)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newTestService(t)
		m.postRepo.On("GetByID", mock.Anything, "missing").Return(nil, custom_errors.ErrPostNotFound)

		_, err := svc.GetPost(ctx, "missing")
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})
}

func TestPostService_EditPost(t *testing.T) {
	ctx := context.Background()

	t.Run("title edit keeps media collection", func(t *testing.T) {
		svc, m := newTestService(t)

		m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
		m.tx.On("PostRepository").Return(m.postRepo)
		m.tx.On("MediaRepository").Return(m.mediaRepo)
		m.postRepo.On("GetByID", mock.Anything, "post-1").Return(ownedPost("post-1", "user-1"), nil)
		m.mediaRepo.On("GetByPost", mock.Anything, "post-1").Return([]*model.PostMedia{
			storedCover("post-1", "media-a"),
		}, nil)
		m.postRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Post")).Return(nil)
		m.tx.On("Commit", mock.Anything).Return(nil)

		result, err := svc.EditPost(ctx, &model.EditPostDTO{
			ExecutorID: "user-1",
			PostID:     "post-1",
			Title:      strPtr("New Title"),
		})
		require.NoError(t, err)
		assert.Equal(t, "New Title", result.Title)
		require.NotNil(t, result.CoverImage)
		assert.Equal(t, "media-a", result.CoverImage.ID)
		m.mediaRepo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty gallery clears the collection", func(t *testing.T) {
		svc, m := newTestService(t)

		m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
		m.tx.On("PostRepository").Return(m.postRepo)
		m.tx.On("MediaRepository").Return(m.mediaRepo)
		m.postRepo.On("GetByID", mock.Anything, "post-1").Return(ownedPost("post-1", "user-1"), nil)
		m.mediaRepo.On("GetByPost", mock.Anything, "post-1").Return([]*model.PostMedia{
			storedCover("post-1", "media-a"),
			storedGallery("post-1", "media-b", 1),
		}, nil)
		m.mediaRepo.On("Replace", mock.Anything, "post-1", mock.AnythingOfType("[]*model.PostMedia")).Return(nil)
		m.postRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Post")).Return(nil)
		m.tx.On("Commit", mock.Anything).Return(nil)

		result, err := svc.EditPost(ctx, &model.EditPostDTO{
			ExecutorID:      "user-1",
			PostID:          "post-1",
			GalleryImageIDs: []string{},
		})
		require.NoError(t, err)
		assert.Nil(t, result.Image)
		assert.Nil(t, result.CoverImage)
		assert.Empty(t, result.MediaCollection)
	})

	t.Run("media rebuild replaces the whole collection", func(t *testing.T) {
		svc, m := newTestService(t)

		m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
		m.tx.On("PostRepository").Return(m.postRepo)
		m.tx.On("MediaRepository").Return(m.mediaRepo)
		m.postRepo.On("GetByID", mock.Anything, "post-1").Return(ownedPost("post-1", "user-1"), nil)
		m.mediaRepo.On("GetByPost", mock.Anything, "post-1").Return([]*model.PostMedia{
			storedCover("post-1", "media-old"),
		}, nil)
		m.mediaClient.On("GetPreview", mock.Anything, "media-new").Return(imagePreview("media-new"), nil)
		m.mediaRepo.On("Replace", mock.Anything, "post-1", mock.AnythingOfType("[]*model.PostMedia")).Return(nil)
		m.postRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Post")).Return(nil)
		m.tx.On("Commit", mock.Anything).Return(nil)

		result, err := svc.EditPost(ctx, &model.EditPostDTO{
			ExecutorID:   "user-1",
			PostID:       "post-1",
			CoverImageID: strPtr("media-new"),
		})
		require.NoError(t, err)
		require.NotNil(t, result.CoverImage)
		assert.Equal(t, "media-new", result.CoverImage.ID)
		require.Len(t, result.MediaCollection, 1)
	})

	t.Run("forbidden for non-owner", func(t *testing.T) {
		svc, m := newTestService(t)

		m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
		m.tx.On("PostRepository").Return(m.postRepo)
		m.tx.On("MediaRepository").Return(m.mediaRepo)
		m.postRepo.On("GetByID", mock.Anything, "post-1").Return(ownedPost("post-1", "user-2"), nil)
		m.tx.On("Rollback", mock.Anything).Return(nil)

		_, err := svc.EditPost(ctx, &model.EditPostDTO{
			ExecutorID: "user-1",
			PostID:     "post-1",
			Title:      strPtr("New Title"),
		})
		assert.ErrorIs(t, err, custom_errors.ErrForbidden)
	})
}

func TestPostService_AddPostMedia(t *testing.T) {
	ctx := context.Background()

	t.Run("gallery item gets the next sort order", func(t *testing.T) {
		svc, m := newTestService(t)

		m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
		m.tx.On("PostRepository").Return(m.postRepo)
		m.tx.On("MediaRepository").Return(m.mediaRepo)
		m.postRepo.On("GetByID", mock.Anything, "post-1").Return(ownedPost("post-1", "user-1"), nil)
		m.mediaRepo.On("GetByPost", mock.Anything, "post-1").Return([]*model.PostMedia{
			storedCover("post-1", "media-a"),
			storedGallery("post-1", "media-b", 1),
		}, nil)
		m.mediaClient.On("GetPreview", mock.Anything, "media-c").Return(imagePreview("media-c"), nil)
		m.mediaRepo.On("Attach", mock.Anything, "post-1", mock.MatchedBy(func(items []*model.PostMedia) bool {
			return len(items) == 1 && items[0].MediaID == "media-c" && items[0].SortOrder == 2
		})).Return(nil)
		m.tx.On("Commit", mock.Anything).Return(nil)

		result, err := svc.AddPostMedia(ctx, &model.AddPostMediaDTO{
			ExecutorID: "user-1",
			PostID:     "post-1",
			MediaID:    "media-c",
			Type:       model.PostMediaTypeGallery,
		})
		require.NoError(t, err)
		assert.Len(t, result.MediaCollection, 3)
		m.postRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("adding a cover updates the legacy reference", func(t *testing.T) {
		svc, m := newTestService(t)

		m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
		m.tx.On("PostRepository").Return(m.postRepo)
		m.tx.On("MediaRepository").Return(m.mediaRepo)
		m.postRepo.On("GetByID", mock.Anything, "post-1").Return(ownedPost("post-1", "user-1"), nil)
		m.mediaRepo.On("GetByPost", mock.Anything, "post-1").Return([]*model.PostMedia{}, nil)
		m.mediaClient.On("GetPreview", mock.Anything, "media-a").Return(imagePreview("media-a"), nil)
		m.mediaRepo.On("Attach", mock.Anything, "post-1", mock.AnythingOfType("[]*model.PostMedia")).Return(nil)
		m.postRepo.On("Update", mock.Anything, mock.MatchedBy(func(post *model.Post) bool {
			return post.ImageID != nil && *post.ImageID == "media-a"
		})).Return(nil)
		m.tx.On("Commit", mock.Anything).Return(nil)

		result, err := svc.AddPostMedia(ctx, &model.AddPostMediaDTO{
			ExecutorID: "user-1",
			PostID:     "post-1",
			MediaID:    "media-a",
			Type:       model.PostMediaTypeCover,
		})
		require.NoError(t, err)
		require.NotNil(t, result.CoverImage)
		assert.Equal(t, "media-a", result.CoverImage.ID)
	})

	t.Run("second cover is a conflict", func(t *testing.T) {
		svc, m := newTestService(t)

		m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
		m.tx.On("PostRepository").Return(m.postRepo)
		m.tx.On("MediaRepository").Return(m.mediaRepo)
		m.postRepo.On("GetByID", mock.Anything, "post-1").Return(ownedPost("post-1", "user-1"), nil)
		m.mediaRepo.On("GetByPost", mock.Anything, "post-1").Return([]*model.PostMedia{
			storedCover("post-1", "media-a"),
		}, nil)
		m.tx.On("Rollback", mock.Anything).Return(nil)

		_, err := svc.AddPostMedia(ctx, &model.AddPostMediaDTO{
			ExecutorID: "user-1",
			PostID:     "post-1",
			MediaID:    "media-b",
			Type:       model.PostMediaTypeCover,
		})
		assert.ErrorIs(t, err, custom_errors.ErrCoverAlreadyExists)
		m.mediaRepo.AssertNotCalled(t, "Attach", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("already attached media is a conflict", func(t *testing.T) {
		svc, m := newTestService(t)

		m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
		m.tx.On("PostRepository").Return(m.postRepo)
		m.tx.On("MediaRepository").Return(m.mediaRepo)
		m.postRepo.On("GetByID", mock.Anything, "post-1").Return(ownedPost("post-1", "user-1"), nil)
		m.mediaRepo.On("GetByPost", mock.Anything, "post-1").Return([]*model.PostMedia{
			storedGallery("post-1", "media-b", 1),
		}, nil)
		m.tx.On("Rollback", mock.Anything).Return(nil)

		_, err := svc.AddPostMedia(ctx, &model.AddPostMediaDTO{
			ExecutorID: "user-1",
			PostID:     "post-1",
			MediaID:    "media-b",
			Type:       model.PostMediaTypeGallery,
		})
		assert.ErrorIs(t, err, custom_errors.ErrMediaAlreadyAttached)
	})

	t.Run("unknown type is invalid input", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.AddPostMedia(ctx, &model.AddPostMediaDTO{
			ExecutorID: "user-1",
			PostID:     "post-1",
			MediaID:    "media-b",
			Type:       "BANNER",
		})
		assert.ErrorIs(t, err, custom_errors.ErrInvalidInput)
	})
}

func TestPostService_RemovePostMedia(t *testing.T) {
	ctx := context.Background()

	t.Run("removing the cover clears the legacy reference", func(t *testing.T) {
		svc, m := newTestService(t)

		m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
		m.tx.On("PostRepository").Return(m.postRepo)
		m.tx.On("MediaRepository").Return(m.mediaRepo)
		m.postRepo.On("GetByID", mock.Anything, "post-1").Return(ownedPost("post-1", "user-1"), nil)
		m.mediaRepo.On("GetByPost", mock.Anything, "post-1").Return([]*model.PostMedia{
			storedCover("post-1", "media-a"),
			storedGallery("post-1", "media-b", 1),
		}, nil)
		m.mediaRepo.On("Remove", mock.Anything, "post-1", "media-a").Return(true, nil)
		m.postRepo.On("Update", mock.Anything, mock.MatchedBy(func(post *model.Post) bool {
			return post.ImageID == nil
		})).Return(nil)
		m.tx.On("Commit", mock.Anything).Return(nil)

		result, err := svc.RemovePostMedia(ctx, &model.RemovePostMediaDTO{
			ExecutorID: "user-1",
			PostID:     "post-1",
			MediaID:    "media-a",
		})
		require.NoError(t, err)
		assert.Nil(t, result.CoverImage)
		assert.Nil(t, result.Image)
		assert.Len(t, result.MediaCollection, 1)
	})

	t.Run("removing an absent association is a no-op", func(t *testing.T) {
		svc, m := newTestService(t)

		m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
		m.tx.On("PostRepository").Return(m.postRepo)
		m.tx.On("MediaRepository").Return(m.mediaRepo)
		m.postRepo.On("GetByID", mock.Anything, "post-1").Return(ownedPost("post-1", "user-1"), nil)
		m.mediaRepo.On("GetByPost", mock.Anything, "post-1").Return([]*model.PostMedia{
			storedGallery("post-1", "media-b", 1),
		}, nil)
		m.mediaRepo.On("Remove", mock.Anything, "post-1", "media-z").Return(false, nil)
		m.tx.On("Commit", mock.Anything).Return(nil)

		result, err := svc.RemovePostMedia(ctx, &model.RemovePostMediaDTO{
			ExecutorID: "user-1",
			PostID:     "post-1",
			MediaID:    "media-z",
		})
		require.NoError(t, err)
		assert.Len(t, result.MediaCollection, 1)
	})
}

func TestPostService_ReorderPostMedia(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, m := newTestService(t)

		orders := []model.MediaOrder{
			{MediaID: "media-c", SortOrder: 1},
			{MediaID: "media-b", SortOrder: 2},
		}

		m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
		m.tx.On("PostRepository").Return(m.postRepo)
		m.tx.On("MediaRepository").Return(m.mediaRepo)
		m.postRepo.On("GetByID", mock.Anything, "post-1").Return(ownedPost("post-1", "user-1"), nil)
		m.mediaRepo.On("GetByPost", mock.Anything, "post-1").Return([]*model.PostMedia{
			storedGallery("post-1", "media-b", 1),
			storedGallery("post-1", "media-c", 2),
		}, nil).Once()
		m.mediaRepo.On("Reorder", mock.Anything, "post-1", orders).Return(nil)
		m.mediaRepo.On("GetByPost", mock.Anything, "post-1").Return([]*model.PostMedia{
			storedGallery("post-1", "media-c", 1),
			storedGallery("post-1", "media-b", 2),
		}, nil).Once()
		m.tx.On("Commit", mock.Anything).Return(nil)

		result, err := svc.ReorderPostMedia(ctx, &model.ReorderPostMediaDTO{
			ExecutorID:  "user-1",
			PostID:      "post-1",
			MediaOrders: orders,
		})
		require.NoError(t, err)
		require.Len(t, result.MediaCollection, 2)
		assert.Equal(t, "media-c", result.MediaCollection[0].MediaID)
		assert.Equal(t, "media-b", result.MediaCollection[1].MediaID)
	})

	t.Run("one unknown media id rejects the whole request", func(t *testing.T) {
		svc, m := newTestService(t)

		m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
		m.tx.On("PostRepository").Return(m.postRepo)
		m.tx.On("MediaRepository").Return(m.mediaRepo)
		m.postRepo.On("GetByID", mock.Anything, "post-1").Return(ownedPost("post-1", "user-1"), nil)
		m.mediaRepo.On("GetByPost", mock.Anything, "post-1").Return([]*model.PostMedia{
			storedGallery("post-1", "media-b", 1),
		}, nil)
		m.tx.On("Rollback", mock.Anything).Return(nil)

		_, err := svc.ReorderPostMedia(ctx, &model.ReorderPostMediaDTO{
			ExecutorID: "user-1",
			PostID:     "post-1",
			MediaOrders: []model.MediaOrder{
				{MediaID: "media-b", SortOrder: 2},
				{MediaID: "media-z", SortOrder: 1},
			},
		})
		assert.ErrorIs(t, err, custom_errors.ErrPostMediaNotFound)
		m.mediaRepo.AssertNotCalled(t, "Reorder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("duplicate media id in request is invalid input", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.ReorderPostMedia(ctx, &model.ReorderPostMediaDTO{
			ExecutorID: "user-1",
			PostID:     "post-1",
			MediaOrders: []model.MediaOrder{
				{MediaID: "media-b", SortOrder: 1},
				{MediaID: "media-b", SortOrder: 2},
			},
		})
		assert.ErrorIs(t, err, custom_errors.ErrInvalidInput)
	})
}

func TestPostService_PublishAndRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("publish stamps the published time", func(t *testing.T) {
		svc, m := newTestService(t)

		m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
		m.tx.On("PostRepository").Return(m.postRepo)
		m.tx.On("MediaRepository").Return(m.mediaRepo)
		m.postRepo.On("GetByID", mock.Anything, "post-1").Return(ownedPost("post-1", "user-1"), nil)
		m.mediaRepo.On("GetByPost", mock.Anything, "post-1").Return([]*model.PostMedia{}, nil)
		m.postRepo.On("Update", mock.Anything, mock.MatchedBy(func(post *model.Post) bool {
			return post.Status == model.PostStatusPublished && post.PublishedAt.Valid
		})).Return(nil)
		m.tx.On("Commit", mock.Anything).Return(nil)

		result, err := svc.PublishPost(ctx, "user-1", "post-1")
		require.NoError(t, err)
		assert.Equal(t, model.PostStatusPublished, result.Status)
		require.NotNil(t, result.PublishedAt)
	})

	t.Run("remove is a soft delete", func(t *testing.T) {
		svc, m := newTestService(t)

		m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
		m.tx.On("PostRepository").Return(m.postRepo)
		m.postRepo.On("GetByID", mock.Anything, "post-1").Return(ownedPost("post-1", "user-1"), nil)
		m.postRepo.On("Update", mock.Anything, mock.MatchedBy(func(post *model.Post) bool {
			return post.IsRemoved()
		})).Return(nil)
		m.tx.On("Commit", mock.Anything).Return(nil)

		err := svc.RemovePost(ctx, "user-1", "post-1")
		require.NoError(t, err)
	})

	t.Run("remove by non-owner is forbidden", func(t *testing.T) {
		svc, m := newTestService(t)

		m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
		m.tx.On("PostRepository").Return(m.postRepo)
		m.postRepo.On("GetByID", mock.Anything, "post-1").Return(ownedPost("post-1", "user-2"), nil)
		m.tx.On("Rollback", mock.Anything).Return(nil)

		err := svc.RemovePost(ctx, "user-1", "post-1")
		assert.ErrorIs(t, err, custom_errors.ErrForbidden)
	})
}
