package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/metrics"
	"inkwell-post-service/internal/model"
	"inkwell-post-service/internal/repository/postgres/db"
)

type PostRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.Provider
}

func NewPostRepository(db db.PgDB, log *logger.Logger, metrics metrics.Provider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

const postColumns = `id, owner_id, owner_name, owner_role, title, content, status, image_id,
		created_at, edited_at, published_at, removed_at`

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()

	args := pgx.NamedArgs{
		"owner_id":   post.Owner.ID,
		"owner_name": post.Owner.Name,
		"owner_role": post.Owner.Role,
		"title":      post.Title,
		"content":    post.Content,
		"status":     post.Status,
		"image_id":   post.ImageID,
		"created_at": post.CreatedAt,
	}

	query := `
		INSERT INTO posts (owner_id, owner_name, owner_role, title, content, status, image_id, created_at)
		VALUES (@owner_id, @owner_name, @owner_role, @title, @content, @status, @image_id, @created_at)
		RETURNING ` + postColumns

	created, err := p.scanPost(p.db.QueryRow(ctx, query, args))
	p.metrics.RecordDatabaseQueryDuration("post_create", time.Since(start))
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_create", false)
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	p.metrics.IncrementDatabaseQueries("post_create", true)

	created.Media = post.Media
	return created, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	start := time.Now()
	args := pgx.NamedArgs{"id": id}
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = @id AND removed_at IS NULL`

	post, err := p.scanPost(p.db.QueryRow(ctx, query, args))
	p.metrics.RecordDatabaseQueryDuration("post_get_by_id", time.Since(start))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.metrics.IncrementDatabaseQueries("post_get_by_id", true)
			p.log.Debug("Post not found by id", slog.String("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.metrics.IncrementDatabaseQueries("post_get_by_id", false)
		p.log.Error("Error getting post by id", slog.String("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	p.metrics.IncrementDatabaseQueries("post_get_by_id", true)
	return post, nil
}

func (p *PostRepository) GetByOwner(ctx context.Context, ownerID string) ([]*model.Post, error) {
	args := pgx.NamedArgs{"owner_id": ownerID}
	query := `SELECT ` + postColumns + ` FROM posts
		WHERE owner_id = @owner_id AND removed_at IS NULL ORDER BY created_at DESC`

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.log.Error("Error getting posts by owner", slog.String("owner_id", ownerID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	return p.collectPosts(rows)
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, int, error) {
	args := pgx.NamedArgs{}
	whereClauses := []string{}

	if filters.OwnerID != nil {
		whereClauses = append(whereClauses, "owner_id = @owner_id")
		args["owner_id"] = *filters.OwnerID
	}
	if filters.Status != nil {
		whereClauses = append(whereClauses, "status = @status")
		args["status"] = *filters.Status
	}
	if !filters.IncludeRemoved {
		whereClauses = append(whereClauses, "removed_at IS NULL")
	}

	condition := ""
	if len(whereClauses) > 0 {
		condition = " WHERE " + strings.Join(whereClauses, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM posts" + condition
	if err := p.db.QueryRow(ctx, countQuery, args).Scan(&total); err != nil {
		p.log.Error("Error counting posts", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	query := "SELECT " + postColumns + " FROM posts" + condition + " ORDER BY created_at DESC"
	if filters.Limit != nil {
		query += " LIMIT @limit"
		args["limit"] = *filters.Limit
	}
	if filters.Offset != nil {
		query += " OFFSET @offset"
		args["offset"] = *filters.Offset
	}

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	posts, err := p.collectPosts(rows)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (p *PostRepository) Update(ctx context.Context, post *model.Post) error {
	start := time.Now()
	args := pgx.NamedArgs{
		"id":           post.ID,
		"title":        post.Title,
		"content":      post.Content,
		"status":       post.Status,
		"image_id":     post.ImageID,
		"edited_at":    post.EditedAt,
		"published_at": post.PublishedAt,
		"removed_at":   post.RemovedAt,
	}

	query := `
		UPDATE posts
		SET title = @title, content = @content, status = @status, image_id = @image_id,
			edited_at = @edited_at, published_at = @published_at, removed_at = @removed_at
		WHERE id = @id`

	result, err := p.db.Exec(ctx, query, args)
	p.metrics.RecordDatabaseQueryDuration("post_update", time.Since(start))
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_update", false)
		p.log.Error("Error updating post", slog.String("id", post.ID), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		p.metrics.IncrementDatabaseQueries("post_update", true)
		return custom_errors.ErrPostNotFound
	}
	p.metrics.IncrementDatabaseQueries("post_update", true)
	return nil
}

func (p *PostRepository) scanPost(row pgx.Row) (*model.Post, error) {
	post := &model.Post{Media: model.EmptyPostMediaCollection()}
	err := row.Scan(
		&post.ID,
		&post.Owner.ID,
		&post.Owner.Name,
		&post.Owner.Role,
		&post.Title,
		&post.Content,
		&post.Status,
		&post.ImageID,
		&post.CreatedAt,
		&post.EditedAt,
		&post.PublishedAt,
		&post.RemovedAt,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (p *PostRepository) collectPosts(rows pgx.Rows) ([]*model.Post, error) {
	var posts []*model.Post
	for rows.Next() {
		post, err := p.scanPost(rows)
		if err != nil {
			p.log.Error("Error scanning post row", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		p.log.Error("Error iterating post rows", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return posts, nil
}
