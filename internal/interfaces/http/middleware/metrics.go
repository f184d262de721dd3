package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"invest-portal.backend/internal/metrics"
)

// MetricsMiddleware records request counts and latency per route. The route
// template (not the raw path) is the label, so IDs don't explode cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		metrics.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, route, status).Observe(time.Since(start).Seconds())
	}
}
