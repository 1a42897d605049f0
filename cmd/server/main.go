package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	redis_cache "inkwell-post-service/internal/cache/redis"
	media_client_http "inkwell-post-service/internal/clients/media/http"
	user_client_http "inkwell-post-service/internal/clients/user/http"
	delivery_http "inkwell-post-service/internal/delivery/http"
	post_http "inkwell-post-service/internal/delivery/http/post"
	metrics_server "inkwell-post-service/internal/delivery/metrics"
	"inkwell-post-service/internal/infrastructure/config"
	"inkwell-post-service/internal/logger"
	prometheus_metrics "inkwell-post-service/internal/metrics/prometheus"
	media_postgres "inkwell-post-service/internal/repository/media/postgres"
	post_postgres "inkwell-post-service/internal/repository/post/postgres"
	"inkwell-post-service/internal/repository/postgres"
	post_service "inkwell-post-service/internal/service/post"
)

func main() {
	cfg := config.MustLoad()
	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)
	ctx := context.Background()
	log := logger.New(cfg.Env)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	userClient := user_client_http.NewUserClient(cfg.UserService, log)
	mediaClient := media_client_http.NewMediaClient(cfg.MediaService, log)

	log.Info("Connecting to Redis",
		slog.String("address", cfg.Redis.Address),
		slog.Int("port", cfg.Redis.Port),
		slog.Int("db", cfg.Redis.DB))
	redisClient, err := redis_cache.NewClient(cfg.Redis, log)
	if err != nil {
		log.Error("Failed to create Redis client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		}
	}()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	metrics.SetServiceHealth(true)

	postCache := redis_cache.NewPostCache(redisClient, log)

	unitOfWork := postgres.NewPostgresUOW(pool, log, metrics)
	postRepo := post_postgres.NewPostRepository(pool, log, metrics)
	mediaRepo := media_postgres.NewMediaRepository(pool, log, metrics)

	originalPostService := post_service.NewPostService(postRepo, mediaRepo, unitOfWork, log, userClient, mediaClient)

	postService := post_service.NewPostServiceCacheDecorator(
		originalPostService,
		postCache,
		log,
		metrics,
	)

	postAPI := post_http.NewPostHTTPService(postService, log)
	httpServer := delivery_http.NewServer(postAPI, cfg.HTTPServer.Address, cfg.HTTPServer.Port, cfg.Env, log, metrics)

	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}
