// Package middleware provides the gin middleware chain.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"carmarket/logging/logger"
	"carmarket/metrics"
)

// Trace ensures every request carries a trace id, echoing it back in the
// X-Trace-Id header.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if incoming := c.GetHeader("X-Trace-Id"); incoming != "" {
			ctx = logger.SetTraceID(ctx, incoming)
		}
		ctx, traceID := logger.EnsureTraceID(ctx)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set("X-Trace-Id", traceID)
		c.Next()
	}
}

// Logging logs one line per request with method, path, status and latency.
func Logging(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info(c.Request.Context(), "Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// Metrics records request counters and latency per route template.
func Metrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		collector.RecordRequest(c.Request.Method+" "+route, c.Writer.Status(), time.Since(start))
	}
}
