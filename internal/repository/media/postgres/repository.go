package media_repository_postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/metrics"
	"inkwell-post-service/internal/model"
	"inkwell-post-service/internal/repository/postgres/db"
)

type MediaRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.Provider
}

func NewMediaRepository(db db.PgDB, log *logger.Logger, metrics metrics.Provider) *MediaRepository {
	return &MediaRepository{db: db, log: log, metrics: metrics}
}

const insertQuery = `
	INSERT INTO post_media (id, post_id, media_id, type, sort_order,
		media_name, media_type, media_path, media_size, media_ext, media_mimetype, created_at)
	VALUES (@id, @post_id, @media_id, @type, @sort_order,
		@media_name, @media_type, @media_path, @media_size, @media_ext, @media_mimetype, @created_at)`

func insertArgs(md *model.PostMedia) pgx.NamedArgs {
	args := pgx.NamedArgs{
		"id":         md.ID,
		"post_id":    md.PostID,
		"media_id":   md.MediaID,
		"type":       md.Type,
		"sort_order": md.SortOrder,
		"created_at": md.CreatedAt,
	}
	if md.MediaDetails != nil {
		args["media_name"] = md.MediaDetails.Name
		args["media_type"] = md.MediaDetails.Type
		args["media_path"] = md.MediaDetails.RelativePath
		args["media_size"] = md.MediaDetails.Size
		args["media_ext"] = md.MediaDetails.Ext
		args["media_mimetype"] = md.MediaDetails.Mimetype
	} else {
		args["media_name"] = nil
		args["media_type"] = nil
		args["media_path"] = nil
		args["media_size"] = nil
		args["media_ext"] = nil
		args["media_mimetype"] = nil
	}
	return args
}

func (m *MediaRepository) Attach(ctx context.Context, postID string, media []*model.PostMedia) error {
	if len(media) == 0 {
		return nil
	}
	start := time.Now()

	batch := &pgx.Batch{}
	for _, md := range media {
		batch.Queue(insertQuery, insertArgs(md))
	}

	result := m.db.SendBatch(ctx, batch)
	defer func(result pgx.BatchResults) {
		if err := result.Close(); err != nil {
			m.log.Error("Failed to close batch result in Attach", slog.String("error", err.Error()), slog.String("post_id", postID))
		}
	}(result)

	for range media {
		if _, err := result.Exec(); err != nil {
			m.metrics.RecordDatabaseQueryDuration("media_attach", time.Since(start))
			m.metrics.IncrementDatabaseQueries("media_attach", false)
			m.log.Error("Media attach failed", slog.String("error", err.Error()), slog.String("post_id", postID))
			return custom_errors.ErrDatabaseQuery
		}
	}
	m.metrics.RecordDatabaseQueryDuration("media_attach", time.Since(start))
	m.metrics.IncrementDatabaseQueries("media_attach", true)
	return nil
}

func (m *MediaRepository) Replace(ctx context.Context, postID string, media []*model.PostMedia) error {
	start := time.Now()

	_, err := m.db.Exec(ctx, `DELETE FROM post_media WHERE post_id = @post_id`, pgx.NamedArgs{"post_id": postID})
	if err != nil {
		m.metrics.RecordDatabaseQueryDuration("media_replace", time.Since(start))
		m.metrics.IncrementDatabaseQueries("media_replace", false)
		m.log.Error("Media replace failed clearing old rows", slog.String("error", err.Error()), slog.String("post_id", postID))
		return custom_errors.ErrDatabaseQuery
	}

	m.metrics.RecordDatabaseQueryDuration("media_replace", time.Since(start))
	m.metrics.IncrementDatabaseQueries("media_replace", true)
	return m.Attach(ctx, postID, media)
}

func (m *MediaRepository) Remove(ctx context.Context, postID, mediaID string) (bool, error) {
	start := time.Now()

	result, err := m.db.Exec(ctx,
		`DELETE FROM post_media WHERE post_id = @post_id AND media_id = @media_id`,
		pgx.NamedArgs{"post_id": postID, "media_id": mediaID})
	m.metrics.RecordDatabaseQueryDuration("media_remove", time.Since(start))
	if err != nil {
		m.metrics.IncrementDatabaseQueries("media_remove", false)
		m.log.Error("Media remove failed", slog.String("error", err.Error()),
			slog.String("post_id", postID), slog.String("media_id", mediaID))
		return false, custom_errors.ErrDatabaseQuery
	}
	m.metrics.IncrementDatabaseQueries("media_remove", true)
	return result.RowsAffected() > 0, nil
}

func (m *MediaRepository) Reorder(ctx context.Context, postID string, orders []model.MediaOrder) error {
	if len(orders) == 0 {
		return nil
	}
	start := time.Now()

	batch := &pgx.Batch{}
	for _, order := range orders {
		batch.Queue(
			`UPDATE post_media SET sort_order = @sort_order WHERE post_id = @post_id AND media_id = @media_id`,
			pgx.NamedArgs{"sort_order": order.SortOrder, "post_id": postID, "media_id": order.MediaID},
		)
	}

	result := m.db.SendBatch(ctx, batch)
	defer func(result pgx.BatchResults) {
		if err := result.Close(); err != nil {
			m.log.Error("Failed to close batch result in Reorder", slog.String("error", err.Error()), slog.String("post_id", postID))
		}
	}(result)

	for range orders {
		if _, err := result.Exec(); err != nil {
			m.metrics.RecordDatabaseQueryDuration("media_reorder", time.Since(start))
			m.metrics.IncrementDatabaseQueries("media_reorder", false)
			m.log.Error("Media reorder failed", slog.String("error", err.Error()), slog.String("post_id", postID))
			return custom_errors.ErrDatabaseQuery
		}
	}
	m.metrics.RecordDatabaseQueryDuration("media_reorder", time.Since(start))
	m.metrics.IncrementDatabaseQueries("media_reorder", true)
	return nil
}

const selectColumns = `id, post_id, media_id, type, sort_order,
	media_name, media_type, media_path, media_size, media_ext, media_mimetype, created_at`

func (m *MediaRepository) GetByPost(ctx context.Context, postID string) ([]*model.PostMedia, error) {
	start := time.Now()

	rows, err := m.db.Query(ctx,
		`SELECT `+selectColumns+` FROM post_media WHERE post_id = @post_id ORDER BY sort_order, created_at`,
		pgx.NamedArgs{"post_id": postID})
	if err != nil {
		m.metrics.RecordDatabaseQueryDuration("media_get_by_post", time.Since(start))
		m.metrics.IncrementDatabaseQueries("media_get_by_post", false)
		m.log.Error("Media query failed", slog.String("error", err.Error()), slog.String("post_id", postID))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var media []*model.PostMedia
	for rows.Next() {
		pm, err := scanPostMedia(rows)
		if err != nil {
			m.metrics.RecordDatabaseQueryDuration("media_get_by_post", time.Since(start))
			m.metrics.IncrementDatabaseQueries("media_get_by_post", false)
			m.log.Error("Media scan failed", slog.String("error", err.Error()), slog.String("post_id", postID))
			return nil, custom_errors.ErrDatabaseScan
		}
		media = append(media, pm)
	}
	if err := rows.Err(); err != nil {
		m.metrics.IncrementDatabaseQueries("media_get_by_post", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	m.metrics.RecordDatabaseQueryDuration("media_get_by_post", time.Since(start))
	m.metrics.IncrementDatabaseQueries("media_get_by_post", true)
	m.log.Debug("Retrieved media for post", slog.String("post_id", postID), slog.Int("count", len(media)))
	return media, nil
}

func (m *MediaRepository) GetByPosts(ctx context.Context, postIDs []string) (map[string][]*model.PostMedia, error) {
	if len(postIDs) == 0 {
		return map[string][]*model.PostMedia{}, nil
	}
	start := time.Now()

	rows, err := m.db.Query(ctx,
		`SELECT `+selectColumns+` FROM post_media WHERE post_id = ANY(@post_ids) ORDER BY post_id, sort_order, created_at`,
		pgx.NamedArgs{"post_ids": postIDs})
	if err != nil {
		m.metrics.RecordDatabaseQueryDuration("media_get_by_posts", time.Since(start))
		m.metrics.IncrementDatabaseQueries("media_get_by_posts", false)
		m.log.Error("Batch media query failed", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	result := make(map[string][]*model.PostMedia)
	for rows.Next() {
		pm, err := scanPostMedia(rows)
		if err != nil {
			m.metrics.IncrementDatabaseQueries("media_get_by_posts", false)
			return nil, custom_errors.ErrDatabaseScan
		}
		result[pm.PostID] = append(result[pm.PostID], pm)
	}
	if err := rows.Err(); err != nil {
		m.metrics.IncrementDatabaseQueries("media_get_by_posts", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	m.metrics.RecordDatabaseQueryDuration("media_get_by_posts", time.Since(start))
	m.metrics.IncrementDatabaseQueries("media_get_by_posts", true)
	return result, nil
}

func scanPostMedia(row pgx.Row) (*model.PostMedia, error) {
	var pm model.PostMedia
	var name, path, ext, mimetype *string
	var mediaType *model.MediaType
	var size *int64

	err := row.Scan(
		&pm.ID,
		&pm.PostID,
		&pm.MediaID,
		&pm.Type,
		&pm.SortOrder,
		&name,
		&mediaType,
		&path,
		&size,
		&ext,
		&mimetype,
		&pm.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if name != nil && mediaType != nil {
		pm.MediaDetails = &model.MediaDetails{
			Name:         *name,
			Type:         *mediaType,
			RelativePath: derefString(path),
			Size:         derefInt64(size),
			Ext:          derefString(ext),
			Mimetype:     derefString(mimetype),
		}
	}
	return &pm, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt64(i *int64) int64 {
	if i == nil {
		return 0
	}
	return *i
}
