package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uenr-dev/uenr-student-api/internal/service"
)

// unmatchedRoute groups requests that hit no registered route, keeping probe
// scans from growing the per-path metric cardinality.
const unmatchedRoute = "unmatched"

// Metrics records request counts and latencies labeled by route template.
// Scrapes of /metrics itself are not recorded.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil || c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
