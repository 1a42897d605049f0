package post_service

import (
	"inkwell-post-service/internal/model"
)

func buildPostDTO(post *model.Post) *model.PostDTO {
	dto := &model.PostDTO{
		ID: post.ID,
		Owner: model.PostOwnerDTO{
			ID:   post.Owner.ID,
			Name: post.Owner.Name,
			Role: post.Owner.Role,
		},
		Title:           post.Title,
		Content:         post.Content,
		Status:          post.Status,
		GalleryImages:   []model.PostImageDTO{},
		MediaCollection: []model.PostMediaDTO{},
		CreatedAt:       post.CreatedAt.Time.UnixMilli(),
	}

	if post.EditedAt.Valid {
		editedAt := post.EditedAt.Time.UnixMilli()
		dto.EditedAt = &editedAt
	}
	if post.PublishedAt.Valid {
		publishedAt := post.PublishedAt.Time.UnixMilli()
		dto.PublishedAt = &publishedAt
	}

	if image := post.Image(); image != nil {
		dto.Image = &model.PostImageDTO{ID: image.ID, URL: image.RelativePath}
	}
	if cover := post.CoverImage(); cover != nil {
		dto.CoverImage = &model.PostImageDTO{ID: cover.ID, URL: cover.RelativePath}
	}
	for _, img := range post.GalleryImages() {
		dto.GalleryImages = append(dto.GalleryImages, model.PostImageDTO{ID: img.ID, URL: img.RelativePath})
	}

	for _, item := range post.Media.All() {
		mediaDTO := model.PostMediaDTO{
			ID:        item.ID,
			MediaID:   item.MediaID,
			Type:      item.Type,
			SortOrder: item.SortOrder,
			Media:     model.PostMediaItemDTO{ID: item.MediaID},
		}
		if item.MediaDetails != nil {
			mediaDTO.Media = model.PostMediaItemDTO{
				ID:       item.MediaID,
				Name:     item.MediaDetails.Name,
				URL:      item.MediaDetails.RelativePath,
				Type:     string(item.MediaDetails.Type),
				Size:     item.MediaDetails.Size,
				Ext:      item.MediaDetails.Ext,
				Mimetype: item.MediaDetails.Mimetype,
			}
		}
		dto.MediaCollection = append(dto.MediaCollection, mediaDTO)
	}

	return dto
}
