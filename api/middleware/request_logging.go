package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"crypto-pulse/logger"
	"crypto-pulse/metrics"
)

// RequestLogging logs every request with its duration and feeds the HTTP
// Prometheus metrics.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		duration := time.Since(start)

		metrics.HttpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		metrics.HttpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())

		logger.InfoWithFields("completed request", logger.Fields{
			"method":     method,
			"path":       path,
			"status":     status,
			"duration":   duration.String(),
			"request_id": c.Writer.Header().Get(headerRequestID),
		})
	}
}
