package post_http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/model"
	service_mock "inkwell-post-service/mocks/service"
)

func setupRouter(t *testing.T) (*gin.Engine, *service_mock.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service_mock.NewService(t)
	api := NewPostHTTPService(svc, logger.New("test"))

	router := gin.New()
	api.RegisterRoutes(router)
	return router, svc
}

const coverID = "7b8e1f7c-2f4a-4d2c-9a1b-3c5d7e9f1a2b"

func TestCreatePostHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, svc := setupRouter(t)

		svc.On("CreatePost", mock.Anything, mock.MatchedBy(func(dto *model.CreatePostDTO) bool {
			return dto.ExecutorID == "user-1" && dto.Title == "Test Post" && *dto.CoverImageID == coverID
		})).Return(&model.PostDTO{ID: "post-1", Title: "Test Post", Status: model.PostStatusDraft}, nil)

		body, _ := json.Marshal(map[string]interface{}{
			"title":          "Test Post",
			"cover_image_id": coverID,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/posts", bytes.NewReader(body))
		req.Header.Set(executorHeader, "user-1")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp model.PostDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "post-1", resp.ID)
	})

	t.Run("missing identity header", func(t *testing.T) {
		router, _ := setupRouter(t)

		body, _ := json.Marshal(map[string]interface{}{"title": "Test Post"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/posts", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing title", func(t *testing.T) {
		router, _ := setupRouter(t)

		body, _ := json.Marshal(map[string]interface{}{"content": "no title"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/posts", bytes.NewReader(body))
		req.Header.Set(executorHeader, "user-1")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid media type maps to bad request", func(t *testing.T) {
		router, svc := setupRouter(t)

		svc.On("CreatePost", mock.Anything, mock.AnythingOfType("*model.CreatePostDTO")).Return(nil, custom_errors.ErrInvalidMediaType)

		body, _ := json.Marshal(map[string]interface{}{
			"title":          "Test Post",
			"cover_image_id": coverID,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/posts", bytes.NewReader(body))
		req.Header.Set(executorHeader, "user-1")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetPostHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		router, svc := setupRouter(t)
		svc.On("GetPost", mock.Anything, "post-1").Return(&model.PostDTO{ID: "post-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/posts/post-1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router, svc := setupRouter(t)
		svc.On("GetPost", mock.Anything, "missing").Return(nil, custom_errors.ErrPostNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/posts/missing", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeletePostHandler(t *testing.T) {
	t.Run("no content", func(t *testing.T) {
		router, svc := setupRouter(t)
		svc.On("RemovePost", mock.Anything, "user-1", "post-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/posts/post-1", nil)
		req.Header.Set(executorHeader, "user-1")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("forbidden", func(t *testing.T) {
		router, svc := setupRouter(t)
		svc.On("RemovePost", mock.Anything, "user-1", "post-1").Return(custom_errors.ErrForbidden)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/posts/post-1", nil)
		req.Header.Set(executorHeader, "user-1")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
