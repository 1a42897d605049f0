package delivery_http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	post_http "inkwell-post-service/internal/delivery/http/post"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/metrics"
	"inkwell-post-service/internal/middleware"
)

type Server struct {
	postAPI *post_http.PostHTTPService
	server  *http.Server
	address string
	port    int
	log     *logger.Logger
	metrics metrics.Provider
	env     string
}

func NewServer(postAPI *post_http.PostHTTPService, address string, port int, env string, log *logger.Logger, metrics metrics.Provider) *Server {
	return &Server{
		postAPI: postAPI,
		address: address,
		port:    port,
		log:     log,
		metrics: metrics,
		env:     env,
	}
}

func (s *Server) Run() error {
	if s.env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(s.log))
	router.Use(middleware.RequestMetrics(s.metrics))

	s.postAPI.RegisterRoutes(router)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.address, s.port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.log.Info("Starting HTTP server", slog.Int("port", s.port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
