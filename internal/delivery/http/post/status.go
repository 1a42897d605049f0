package post_http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell-post-service/internal/custom_errors"
)

const executorHeader = "X-User-ID"

// executorID reads the authenticated user id injected by the API gateway.
func executorID(c *gin.Context) (string, bool) {
	id := c.GetHeader(executorHeader)
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return "", false
	}
	return id, true
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, custom_errors.ErrPostNotFound),
		errors.Is(err, custom_errors.ErrUserNotFound),
		errors.Is(err, custom_errors.ErrMediaNotFound),
		errors.Is(err, custom_errors.ErrPostMediaNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, custom_errors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, custom_errors.ErrDuplicateMedia),
		errors.Is(err, custom_errors.ErrCoverAlreadyExists),
		errors.Is(err, custom_errors.ErrMediaAlreadyAttached):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, custom_errors.ErrInvalidMediaType),
		errors.Is(err, custom_errors.ErrPostValidation),
		errors.Is(err, custom_errors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, custom_errors.ErrExternalServiceError):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
