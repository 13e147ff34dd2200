package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"buglens/internal/metrics"
)

// MetricsMiddleware считает запросы и их длительность по маршрутам.
// В метку path идёт шаблон маршрута, а не сырой URL, чтобы не раздувать кардинальность.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}
