package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"inkwell-post-service/internal/metrics"
)

func RequestMetrics(provider metrics.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		provider.IncrementHTTPRequests(c.Request.Method, path, strconv.Itoa(c.Writer.Status()))
		provider.RecordHTTPRequestDuration(c.Request.Method, path, time.Since(start))
	}
}
