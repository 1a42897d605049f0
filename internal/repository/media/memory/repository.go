package memory

import (
	"context"
	"sort"
	"sync"

	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/model"
)

type MediaRepository struct {
	log           *logger.Logger
	mu            sync.RWMutex
	mediaByPostID map[string][]*model.PostMedia
}

func NewMediaRepository(log *logger.Logger) *MediaRepository {
	return &MediaRepository{
		log:           log,
		mediaByPostID: make(map[string][]*model.PostMedia),
	}
}

func (m *MediaRepository) Attach(ctx context.Context, postID string, media []*model.PostMedia) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, item := range media {
		itemCopy := *item
		itemCopy.PostID = postID
		m.mediaByPostID[postID] = append(m.mediaByPostID[postID], &itemCopy)
	}
	m.sortLocked(postID)
	return nil
}

func (m *MediaRepository) Replace(ctx context.Context, postID string, media []*model.PostMedia) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	replacement := make([]*model.PostMedia, 0, len(media))
	for _, item := range media {
		itemCopy := *item
		itemCopy.PostID = postID
		replacement = append(replacement, &itemCopy)
	}
	m.mediaByPostID[postID] = replacement
	m.sortLocked(postID)
	return nil
}

func (m *MediaRepository) Remove(ctx context.Context, postID, mediaID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := m.mediaByPostID[postID]
	for i, item := range items {
		if item.MediaID == mediaID {
			m.mediaByPostID[postID] = append(items[:i], items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *MediaRepository) Reorder(ctx context.Context, postID string, orders []model.MediaOrder) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	byMediaID := make(map[string]int32, len(orders))
	for _, order := range orders {
		byMediaID[order.MediaID] = order.SortOrder
	}
	for _, item := range m.mediaByPostID[postID] {
		if sortOrder, ok := byMediaID[item.MediaID]; ok {
			item.SortOrder = sortOrder
		}
	}
	m.sortLocked(postID)
	return nil
}

func (m *MediaRepository) GetByPost(ctx context.Context, postID string) ([]*model.PostMedia, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := m.mediaByPostID[postID]
	result := make([]*model.PostMedia, 0, len(items))
	for _, item := range items {
		itemCopy := *item
		result = append(result, &itemCopy)
	}
	return result, nil
}

func (m *MediaRepository) GetByPosts(ctx context.Context, postIDs []string) (map[string][]*model.PostMedia, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string][]*model.PostMedia, len(postIDs))
	for _, postID := range postIDs {
		items := m.mediaByPostID[postID]
		copies := make([]*model.PostMedia, 0, len(items))
		for _, item := range items {
			itemCopy := *item
			copies = append(copies, &itemCopy)
		}
		result[postID] = copies
	}
	return result, nil
}

func (m *MediaRepository) sortLocked(postID string) {
	items := m.mediaByPostID[postID]
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].IsCover() != items[j].IsCover() {
			return items[i].IsCover()
		}
		return items[i].SortOrder < items[j].SortOrder
	})
}
