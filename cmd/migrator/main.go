package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"inkwell-post-service/internal/infrastructure/config"
	"inkwell-post-service/internal/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)

	m, err := migrate.New("file://"+cfg.Database.MigrationsPath, dsn)
	if err != nil {
		log.Error("Failed to create migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("No migrations to apply")
			return
		}
		log.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("Migrations applied")
}
