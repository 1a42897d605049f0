package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/metrics"
	media_repository "inkwell-post-service/internal/repository/media"
	media_repository_postgres "inkwell-post-service/internal/repository/media/postgres"
	post_repository "inkwell-post-service/internal/repository/post"
	post_repository_postgres "inkwell-post-service/internal/repository/post/postgres"
)

// UnitOfWork scopes post and media repositories to one database transaction,
// so a use case either commits the post row and its media rows together or
// rolls them back together.
//
//go:generate mockery --name UnitOfWork --dir . --output ../../../mocks/postgres --outpkg mocks --filename UnitOfWork.go
type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

//go:generate mockery --name Transaction --dir . --output ../../../mocks/postgres --outpkg mocks --filename Transaction.go
type Transaction interface {
	PostRepository() post_repository.Repository
	MediaRepository() media_repository.Repository
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type PostgresUnitOfWork struct {
	pool    *pgxpool.Pool
	log     *logger.Logger
	metrics metrics.Provider
}

func NewPostgresUOW(pool *pgxpool.Pool, log *logger.Logger, metrics metrics.Provider) UnitOfWork {
	return &PostgresUnitOfWork{pool: pool, log: log, metrics: metrics}
}

func (uow *PostgresUnitOfWork) Begin(ctx context.Context) (Transaction, error) {
	tx, err := uow.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	return &PostgresTransaction{tx: tx, log: uow.log, metrics: uow.metrics}, nil
}

type PostgresTransaction struct {
	tx      pgx.Tx
	log     *logger.Logger
	metrics metrics.Provider
}

func (t *PostgresTransaction) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *PostgresTransaction) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *PostgresTransaction) PostRepository() post_repository.Repository {
	return post_repository_postgres.NewPostRepository(t.tx, t.log, t.metrics)
}

func (t *PostgresTransaction) MediaRepository() media_repository.Repository {
	return media_repository_postgres.NewMediaRepository(t.tx, t.log, t.metrics)
}
