package model

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type PostStatus string

const (
	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusPublished PostStatus = "PUBLISHED"
)

type PostOwner struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type PostImage struct {
	ID           string `json:"id"`
	RelativePath string `json:"relative_path"`
}

// Post is the aggregate root owning a media collection. ImageID is the raw
// legacy single-image reference kept for posts that predate the collection;
// reads derive the legacy view from the collection cover and only fall back
// to ImageID, writes never touch it directly.
type Post struct {
	ID          string
	Owner       PostOwner
	Title       string
	Content     *string
	Status      PostStatus
	ImageID     *string
	Media       *PostMediaCollection
	CreatedAt   pgtype.Timestamptz
	EditedAt    pgtype.Timestamptz
	PublishedAt pgtype.Timestamptz
	RemovedAt   pgtype.Timestamptz
}

func NewPost(owner PostOwner, title string, content *string, imageID *string, media *PostMediaCollection) *Post {
	if media == nil {
		media = EmptyPostMediaCollection()
	}
	return &Post{
		Owner:     owner,
		Title:     title,
		Content:   content,
		Status:    PostStatusDraft,
		ImageID:   imageID,
		Media:     media,
		CreatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}

// Image is the legacy single-image view: the collection cover when present,
// otherwise the raw legacy reference.
func (p *Post) Image() *PostImage {
	if cover := p.CoverImage(); cover != nil {
		return cover
	}
	if p.ImageID != nil {
		return &PostImage{ID: *p.ImageID}
	}
	return nil
}

func (p *Post) CoverImage() *PostImage {
	cover := p.Media.Cover()
	if cover == nil || cover.MediaDetails == nil {
		return nil
	}
	return &PostImage{ID: cover.MediaID, RelativePath: cover.MediaDetails.RelativePath}
}

func (p *Post) GalleryImages() []*PostImage {
	var images []*PostImage
	for _, item := range p.Media.Gallery() {
		if item.MediaDetails == nil {
			continue
		}
		images = append(images, &PostImage{ID: item.MediaID, RelativePath: item.MediaDetails.RelativePath})
	}
	return images
}

func (p *Post) Edit(title *string, content *string) {
	if title != nil {
		p.Title = *title
	}
	if content != nil {
		p.Content = content
	}
	p.EditedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
}

// ReplaceMedia swaps the whole collection and keeps the legacy reference in
// sync with the new cover.
func (p *Post) ReplaceMedia(media *PostMediaCollection) {
	if media == nil {
		media = EmptyPostMediaCollection()
	}
	p.Media = media
	if cover := media.Cover(); cover != nil {
		coverID := cover.MediaID
		p.ImageID = &coverID
	} else {
		p.ImageID = nil
	}
	p.EditedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
}

func (p *Post) Publish() {
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	p.Status = PostStatusPublished
	p.PublishedAt = now
	p.EditedAt = now
}

func (p *Post) Remove() {
	p.RemovedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
}

func (p *Post) IsRemoved() bool {
	return p.RemovedAt.Valid
}

func (p *Post) IsOwnedBy(userID string) bool {
	return p.Owner.ID == userID
}
