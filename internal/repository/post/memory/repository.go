package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/model"
)

type PostRepository struct {
	log   *logger.Logger
	mu    sync.RWMutex
	posts map[string]*model.Post
}

func NewPostRepository(log *logger.Logger) *PostRepository {
	return &PostRepository{
		log:   log,
		posts: make(map[string]*model.Post),
	}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	newPost := *post
	newPost.ID = uuid.NewString()
	if !newPost.CreatedAt.Valid {
		newPost.CreatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
	}

	stored := newPost
	p.posts[newPost.ID] = &stored

	result := newPost
	return &result, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	post, exists := p.posts[id]
	if !exists || post.IsRemoved() {
		p.log.Debug("Post not found by id", slog.String("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	return &result, nil
}

func (p *PostRepository) GetByOwner(ctx context.Context, ownerID string) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var result []*model.Post
	for _, post := range p.posts {
		if post.Owner.ID != ownerID || post.IsRemoved() {
			continue
		}
		postCopy := *post
		result = append(result, &postCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Time.After(result[j].CreatedAt.Time)
	})

	return result, nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var filtered []*model.Post
	for _, post := range p.posts {
		if post.IsRemoved() && !filters.IncludeRemoved {
			continue
		}
		if filters.OwnerID != nil && post.Owner.ID != *filters.OwnerID {
			continue
		}
		if filters.Status != nil && post.Status != *filters.Status {
			continue
		}
		postCopy := *post
		filtered = append(filtered, &postCopy)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.Time.After(filtered[j].CreatedAt.Time)
	})

	total := len(filtered)

	offset := 0
	if filters.Offset != nil {
		offset = *filters.Offset
	}
	if offset > len(filtered) {
		offset = len(filtered)
	}
	filtered = filtered[offset:]

	if filters.Limit != nil && *filters.Limit < len(filtered) {
		filtered = filtered[:*filters.Limit]
	}

	return filtered, total, nil
}

func (p *PostRepository) Update(ctx context.Context, post *model.Post) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.posts[post.ID]; !exists {
		return custom_errors.ErrPostNotFound
	}

	stored := *post
	p.posts[post.ID] = &stored
	return nil
}
