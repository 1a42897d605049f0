package post_service

import (
	"context"
	"log/slog"

	media_client "inkwell-post-service/internal/clients/media"
	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/model"
)

// mediaAssembler turns caller-supplied media ids into a validated
// PostMediaCollection, resolving each id against the media service and
// snapshotting its metadata at association time.
type mediaAssembler struct {
	media media_client.Client
	log   *logger.Logger
}

type mediaSelection struct {
	// CoverImageID takes precedence over the legacy ImageID when both are
	// supplied.
	CoverImageID    *string
	ImageID         *string
	GalleryImageIDs []string
}

func (a *mediaAssembler) BuildCollection(ctx context.Context, postID string, sel mediaSelection) (*model.PostMediaCollection, error) {
	var items []*model.PostMedia

	coverID := a.effectiveCoverID(sel)
	if coverID != "" {
		details, err := a.resolveImage(ctx, coverID)
		if err != nil {
			return nil, err
		}
		items = append(items, model.NewPostMedia(postID, coverID, model.PostMediaTypeCover, 0, details))
	}

	// Gallery ids keep their first-occurrence order; the cover id wins over
	// a duplicate gallery entry. Sort order starts at 1 whether or not a
	// cover exists, keeping slot 0 free for a later cover insertion.
	seen := make(map[string]struct{}, len(sel.GalleryImageIDs))
	sortOrder := int32(0)
	for _, mediaID := range sel.GalleryImageIDs {
		if mediaID == coverID {
			continue
		}
		if _, dup := seen[mediaID]; dup {
			continue
		}
		seen[mediaID] = struct{}{}

		details, err := a.resolveImage(ctx, mediaID)
		if err != nil {
			return nil, err
		}
		sortOrder++
		items = append(items, model.NewPostMedia(postID, mediaID, model.PostMediaTypeGallery, sortOrder, details))
	}

	return model.NewPostMediaCollection(items)
}

func (a *mediaAssembler) effectiveCoverID(sel mediaSelection) string {
	if sel.CoverImageID != nil {
		return *sel.CoverImageID
	}
	if sel.ImageID != nil {
		return *sel.ImageID
	}
	return ""
}

func (a *mediaAssembler) resolveImage(ctx context.Context, mediaID string) (*model.MediaDetails, error) {
	preview, err := a.media.GetPreview(ctx, mediaID)
	if err != nil {
		a.log.Debug("Failed to resolve media", slog.String("media_id", mediaID), slog.String("error", err.Error()))
		return nil, err
	}
	if preview.Type != model.MediaTypeImage {
		a.log.Debug("Referenced media is not an image",
			slog.String("media_id", mediaID),
			slog.String("type", string(preview.Type)))
		return nil, custom_errors.ErrInvalidMediaType
	}

	return &model.MediaDetails{
		Name:         preview.Name,
		Type:         preview.Type,
		RelativePath: preview.RelativePath,
		Size:         preview.Size,
		Ext:          preview.Ext,
		Mimetype:     preview.Mimetype,
	}, nil
}
