package post_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	media_client "inkwell-post-service/internal/clients/media"
	user_client "inkwell-post-service/internal/clients/user"
	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/model"
	media_repository "inkwell-post-service/internal/repository/media"
	post_repository "inkwell-post-service/internal/repository/post"
	"inkwell-post-service/internal/repository/postgres"
)

type PostService struct {
	postRepo    post_repository.Repository
	mediaRepo   media_repository.Repository
	uow         postgres.UnitOfWork
	log         *logger.Logger
	userClient  user_client.Client
	mediaClient media_client.Client
	assembler   *mediaAssembler
}

func NewPostService(
	postRepo post_repository.Repository,
	mediaRepo media_repository.Repository,
	uow postgres.UnitOfWork,
	log *logger.Logger,
	userClient user_client.Client,
	mediaClient media_client.Client,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		mediaRepo:   mediaRepo,
		uow:         uow,
		log:         log,
		userClient:  userClient,
		mediaClient: mediaClient,
		assembler:   &mediaAssembler{media: mediaClient, log: log},
	}
}

func (s *PostService) CreatePost(ctx context.Context, dto *model.CreatePostDTO) (result *model.PostDTO, err error) {
	if strings.TrimSpace(dto.Title) == "" {
		s.log.Debug("Rejected post with empty title", slog.String("executor_id", dto.ExecutorID))
		return nil, custom_errors.ErrPostValidation
	}

	owner, err := s.userClient.GetPreview(ctx, dto.ExecutorID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("Post owner not found", slog.String("executor_id", dto.ExecutorID))
			return nil, custom_errors.ErrUserNotFound
		}
		s.log.Error("Failed to get owner from user service", slog.String("error", err.Error()))
		return nil, custom_errors.ErrExternalServiceError
	}

	// All media ids are resolved and validated before the transaction opens,
	// so the post row is never written when any referenced media is invalid.
	collection, err := s.assembler.BuildCollection(ctx, "", mediaSelection{
		CoverImageID:    dto.CoverImageID,
		ImageID:         dto.ImageID,
		GalleryImageIDs: dto.GalleryImageIDs,
	})
	if err != nil {
		return nil, err
	}

	var legacyImageID *string
	if cover := collection.Cover(); cover != nil {
		coverID := cover.MediaID
		legacyImageID = &coverID
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil {
				if !strings.Contains(rollbackErr.Error(), "tx is closed") && !strings.Contains(rollbackErr.Error(), "commit unexpectedly resulted in rollback") {
					s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
				} else {
					s.log.Debug("Transaction already closed during rollback", slog.String("error", rollbackErr.Error()))
				}
			}
		}
	}()

	postRepo := tx.PostRepository()
	mediaRepo := tx.MediaRepository()

	newPost := model.NewPost(model.PostOwner{ID: owner.ID, Name: owner.Name, Role: owner.Role}, dto.Title, dto.Content, legacyImageID, collection)
	createdPost, err := postRepo.Create(ctx, newPost)
	if err != nil {
		s.log.Error("Failed to create post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	createdPost.Media = collection.WithPostID(createdPost.ID)
	if !createdPost.Media.IsEmpty() {
		if err = mediaRepo.Attach(ctx, createdPost.ID, createdPost.Media.All()); err != nil {
			s.log.Error("Failed to attach media to post",
				slog.String("error", err.Error()),
				slog.String("post_id", createdPost.ID))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	err = tx.Commit(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "commit unexpectedly resulted in rollback") {
			s.log.Warn("Transaction commit resulted in rollback", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	return buildPostDTO(createdPost), nil
}

func (s *PostService) GetPost(ctx context.Context, id string) (*model.PostDTO, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found", slog.String("id", id))
			return nil, custom_errors.ErrPostNotFound
		default:
			s.log.Error("Failed to get post by id",
				slog.String("error", err.Error()),
				slog.String("id", id))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	collection, err := s.loadMedia(ctx, s.mediaRepo, id)
	if err != nil {
		return nil, err
	}
	post.Media = collection

	return buildPostDTO(post), nil
}

func (s *PostService) ListPosts(ctx context.Context, filters *model.PostFilters) ([]*model.PostDTO, int, error) {
	posts, total, err := s.postRepo.List(ctx, *filters)
	if err != nil {
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	postIDs := make([]string, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
	}

	mediaByPost, err := s.mediaRepo.GetByPosts(ctx, postIDs)
	if err != nil {
		s.log.Error("Failed to get media for posts", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	result := make([]*model.PostDTO, 0, len(posts))
	for _, post := range posts {
		collection, err := model.NewPostMediaCollection(mediaByPost[post.ID])
		if err != nil {
			s.log.Error("Stored media rows violate collection invariants",
				slog.String("error", err.Error()),
				slog.String("post_id", post.ID))
			return nil, 0, custom_errors.ErrDatabaseScan
		}
		post.Media = collection
		result = append(result, buildPostDTO(post))
	}
	return result, total, nil
}

func (s *PostService) EditPost(ctx context.Context, dto *model.EditPostDTO) (result *model.PostDTO, err error) {
	if dto.Title != nil && strings.TrimSpace(*dto.Title) == "" {
		s.log.Debug("Rejected edit with empty title", slog.String("post_id", dto.PostID))
		return nil, custom_errors.ErrPostValidation
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil {
				if !strings.Contains(rollbackErr.Error(), "tx is closed") && !strings.Contains(rollbackErr.Error(), "commit unexpectedly resulted in rollback") {
					s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
				} else {
					s.log.Debug("Transaction already closed during rollback", slog.String("error", rollbackErr.Error()))
				}
			}
		}
	}()

	postRepo := tx.PostRepository()
	mediaRepo := tx.MediaRepository()

	post, err := s.loadOwnedPost(ctx, postRepo, dto.PostID, dto.ExecutorID)
	if err != nil {
		return nil, err
	}

	collection, err := s.loadMedia(ctx, mediaRepo, post.ID)
	if err != nil {
		return nil, err
	}
	post.Media = collection

	// Any supplied media field triggers a wholesale rebuild of the
	// collection from the request; absent fields keep the current state.
	if dto.HasMediaFields() {
		rebuilt, err := s.assembler.BuildCollection(ctx, post.ID, mediaSelection{
			CoverImageID:    dto.CoverImageID,
			ImageID:         dto.ImageID,
			GalleryImageIDs: dto.GalleryImageIDs,
		})
		if err != nil {
			return nil, err
		}
		if err = mediaRepo.Replace(ctx, post.ID, rebuilt.All()); err != nil {
			s.log.Error("Failed to replace post media",
				slog.String("error", err.Error()),
				slog.String("post_id", post.ID))
			return nil, custom_errors.ErrDatabaseQuery
		}
		post.ReplaceMedia(rebuilt)
	}

	if dto.Title != nil || dto.Content != nil {
		post.Edit(dto.Title, dto.Content)
	}

	if err = postRepo.Update(ctx, post); err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for update", slog.String("id", post.ID))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to update post", slog.String("error", err.Error()), slog.String("id", post.ID))
		return nil, custom_errors.ErrDatabaseQuery
	}

	err = tx.Commit(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "commit unexpectedly resulted in rollback") {
			s.log.Warn("Transaction commit resulted in rollback", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	return buildPostDTO(post), nil
}

func (s *PostService) PublishPost(ctx context.Context, executorID, id string) (result *model.PostDTO, err error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil {
				if !strings.Contains(rollbackErr.Error(), "tx is closed") && !strings.Contains(rollbackErr.Error(), "commit unexpectedly resulted in rollback") {
					s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
				} else {
					s.log.Debug("Transaction already closed during rollback", slog.String("error", rollbackErr.Error()))
				}
			}
		}
	}()

	postRepo := tx.PostRepository()
	mediaRepo := tx.MediaRepository()

	post, err := s.loadOwnedPost(ctx, postRepo, id, executorID)
	if err != nil {
		return nil, err
	}

	collection, err := s.loadMedia(ctx, mediaRepo, post.ID)
	if err != nil {
		return nil, err
	}
	post.Media = collection

	if post.Status != model.PostStatusPublished {
		post.Publish()
		if err = postRepo.Update(ctx, post); err != nil {
			s.log.Error("Failed to publish post", slog.String("error", err.Error()), slog.String("id", id))
			return nil, custom_errors.ErrDatabaseQuery
		}
	} else {
		s.log.Debug("Post already published", slog.String("id", id))
	}

	err = tx.Commit(ctx)
	if err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	return buildPostDTO(post), nil
}

func (s *PostService) RemovePost(ctx context.Context, executorID, id string) (err error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil {
				if !strings.Contains(rollbackErr.Error(), "tx is closed") && !strings.Contains(rollbackErr.Error(), "commit unexpectedly resulted in rollback") {
					s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
				} else {
					s.log.Debug("Transaction already closed during rollback", slog.String("error", rollbackErr.Error()))
				}
			}
		}
	}()

	postRepo := tx.PostRepository()

	post, err := s.loadOwnedPost(ctx, postRepo, id, executorID)
	if err != nil {
		return err
	}

	// Soft delete: the row and its media associations stay in place, reads
	// filter on removed_at.
	post.Remove()
	if err = postRepo.Update(ctx, post); err != nil {
		s.log.Error("Failed to remove post", slog.String("error", err.Error()), slog.String("id", id))
		return custom_errors.ErrDatabaseQuery
	}

	err = tx.Commit(ctx)
	if err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	return nil
}

func (s *PostService) AddPostMedia(ctx context.Context, dto *model.AddPostMediaDTO) (result *model.PostDTO, err error) {
	if !dto.Type.IsValid() {
		s.log.Debug("Rejected unknown media type",
			slog.String("post_id", dto.PostID),
			slog.String("type", string(dto.Type)))
		return nil, custom_errors.ErrInvalidInput
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil {
				if !strings.Contains(rollbackErr.Error(), "tx is closed") && !strings.Contains(rollbackErr.Error(), "commit unexpectedly resulted in rollback") {
					s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
				} else {
					s.log.Debug("Transaction already closed during rollback", slog.String("error", rollbackErr.Error()))
				}
			}
		}
	}()

	postRepo := tx.PostRepository()
	mediaRepo := tx.MediaRepository()

	post, err := s.loadOwnedPost(ctx, postRepo, dto.PostID, dto.ExecutorID)
	if err != nil {
		return nil, err
	}

	collection, err := s.loadMedia(ctx, mediaRepo, post.ID)
	if err != nil {
		return nil, err
	}

	if collection.Has(dto.MediaID) {
		s.log.Debug("Media already attached to post",
			slog.String("post_id", post.ID),
			slog.String("media_id", dto.MediaID))
		return nil, custom_errors.ErrMediaAlreadyAttached
	}
	if dto.Type == model.PostMediaTypeCover && collection.HasCover() {
		s.log.Debug("Post already has a cover", slog.String("post_id", post.ID))
		return nil, custom_errors.ErrCoverAlreadyExists
	}

	details, err := s.assembler.resolveImage(ctx, dto.MediaID)
	if err != nil {
		return nil, err
	}

	sortOrder := nextSortOrder(collection, dto.Type)
	if dto.SortOrder != nil {
		sortOrder = *dto.SortOrder
	}

	item := model.NewPostMedia(post.ID, dto.MediaID, dto.Type, sortOrder, details)
	updated, err := model.NewPostMediaCollection(append(collection.All(), item))
	if err != nil {
		return nil, err
	}

	if err = mediaRepo.Attach(ctx, post.ID, []*model.PostMedia{item}); err != nil {
		s.log.Error("Failed to attach media to post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if item.IsCover() {
		post.ReplaceMedia(updated)
		if err = postRepo.Update(ctx, post); err != nil {
			s.log.Error("Failed to update post cover reference",
				slog.String("error", err.Error()),
				slog.String("post_id", post.ID))
			return nil, custom_errors.ErrDatabaseQuery
		}
	} else {
		post.Media = updated
	}

	err = tx.Commit(ctx)
	if err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	return buildPostDTO(post), nil
}

func (s *PostService) RemovePostMedia(ctx context.Context, dto *model.RemovePostMediaDTO) (result *model.PostDTO, err error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil {
				if !strings.Contains(rollbackErr.Error(), "tx is closed") && !strings.Contains(rollbackErr.Error(), "commit unexpectedly resulted in rollback") {
					s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
				} else {
					s.log.Debug("Transaction already closed during rollback", slog.String("error", rollbackErr.Error()))
				}
			}
		}
	}()

	postRepo := tx.PostRepository()
	mediaRepo := tx.MediaRepository()

	post, err := s.loadOwnedPost(ctx, postRepo, dto.PostID, dto.ExecutorID)
	if err != nil {
		return nil, err
	}

	collection, err := s.loadMedia(ctx, mediaRepo, post.ID)
	if err != nil {
		return nil, err
	}

	wasCover := false
	if cover := collection.Cover(); cover != nil && cover.MediaID == dto.MediaID {
		wasCover = true
	}

	// Removing an association that does not exist is a no-op.
	removed, err := mediaRepo.Remove(ctx, post.ID, dto.MediaID)
	if err != nil {
		s.log.Error("Failed to remove post media",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID),
			slog.String("media_id", dto.MediaID))
		return nil, custom_errors.ErrDatabaseQuery
	}
	if !removed {
		s.log.Debug("Media was not attached to post",
			slog.String("post_id", post.ID),
			slog.String("media_id", dto.MediaID))
	}

	remaining := make([]*model.PostMedia, 0, collection.Count())
	for _, item := range collection.All() {
		if item.MediaID == dto.MediaID {
			continue
		}
		remaining = append(remaining, item)
	}
	updated, err := model.NewPostMediaCollection(remaining)
	if err != nil {
		return nil, err
	}

	if wasCover {
		post.ReplaceMedia(updated)
		if err = postRepo.Update(ctx, post); err != nil {
			s.log.Error("Failed to clear post cover reference",
				slog.String("error", err.Error()),
				slog.String("post_id", post.ID))
			return nil, custom_errors.ErrDatabaseQuery
		}
	} else {
		post.Media = updated
	}

	err = tx.Commit(ctx)
	if err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	return buildPostDTO(post), nil
}

func (s *PostService) ReorderPostMedia(ctx context.Context, dto *model.ReorderPostMediaDTO) (result *model.PostDTO, err error) {
	if len(dto.MediaOrders) == 0 {
		return nil, custom_errors.ErrInvalidInput
	}
	seen := make(map[string]struct{}, len(dto.MediaOrders))
	for _, order := range dto.MediaOrders {
		if _, dup := seen[order.MediaID]; dup {
			s.log.Debug("Duplicate media id in reorder request",
				slog.String("post_id", dto.PostID),
				slog.String("media_id", order.MediaID))
			return nil, custom_errors.ErrInvalidInput
		}
		seen[order.MediaID] = struct{}{}
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil {
				if !strings.Contains(rollbackErr.Error(), "tx is closed") && !strings.Contains(rollbackErr.Error(), "commit unexpectedly resulted in rollback") {
					s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
				} else {
					s.log.Debug("Transaction already closed during rollback", slog.String("error", rollbackErr.Error()))
				}
			}
		}
	}()

	postRepo := tx.PostRepository()
	mediaRepo := tx.MediaRepository()

	post, err := s.loadOwnedPost(ctx, postRepo, dto.PostID, dto.ExecutorID)
	if err != nil {
		return nil, err
	}

	collection, err := s.loadMedia(ctx, mediaRepo, post.ID)
	if err != nil {
		return nil, err
	}

	// Every referenced association must exist before any order is written;
	// one unknown media id rejects the whole request.
	for _, order := range dto.MediaOrders {
		if !collection.Has(order.MediaID) {
			s.log.Debug("Reorder references media not attached to post",
				slog.String("post_id", post.ID),
				slog.String("media_id", order.MediaID))
			return nil, custom_errors.ErrPostMediaNotFound
		}
	}

	if err = mediaRepo.Reorder(ctx, post.ID, dto.MediaOrders); err != nil {
		s.log.Error("Failed to reorder post media",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID))
		return nil, custom_errors.ErrDatabaseQuery
	}

	collection, err = s.loadMedia(ctx, mediaRepo, post.ID)
	if err != nil {
		return nil, err
	}
	post.Media = collection

	err = tx.Commit(ctx)
	if err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	return buildPostDTO(post), nil
}

func (s *PostService) loadOwnedPost(ctx context.Context, repo post_repository.Repository, postID, executorID string) (*model.Post, error) {
	post, err := repo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found", slog.String("id", postID))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post by id",
			slog.String("error", err.Error()),
			slog.String("id", postID))
		return nil, custom_errors.ErrDatabaseQuery
	}
	if !post.IsOwnedBy(executorID) {
		s.log.Debug("Executor is not the post owner",
			slog.String("executor_id", executorID),
			slog.String("owner_id", post.Owner.ID))
		return nil, custom_errors.ErrForbidden
	}
	return post, nil
}

func (s *PostService) loadMedia(ctx context.Context, repo media_repository.Repository, postID string) (*model.PostMediaCollection, error) {
	rows, err := repo.GetByPost(ctx, postID)
	if err != nil {
		s.log.Error("Failed to get media by post",
			slog.String("error", err.Error()),
			slog.String("post_id", postID))
		return nil, custom_errors.ErrDatabaseQuery
	}
	collection, err := model.NewPostMediaCollection(rows)
	if err != nil {
		s.log.Error("Stored media rows violate collection invariants",
			slog.String("error", err.Error()),
			slog.String("post_id", postID))
		return nil, custom_errors.ErrDatabaseScan
	}
	return collection, nil
}

func nextSortOrder(collection *model.PostMediaCollection, mediaType model.PostMediaType) int32 {
	if mediaType == model.PostMediaTypeCover {
		return 0
	}
	var max int32
	for _, item := range collection.All() {
		if item.SortOrder > max {
			max = item.SortOrder
		}
	}
	return max + 1
}
