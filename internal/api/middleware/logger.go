package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	RequestIDKey string = "request_id"
)

// LoggerMiddleware присваивает каждому запросу request_id и логирует
// начало и завершение обработки. Пришедший заголовок X-Request-ID
// переиспользуется, чтобы не рвать сквозную трассировку.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		ctx := context.WithValue(c.Request.Context(), RequestIDKey, requestID)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()

		log.Info().
			Str("request_id", requestID).
			Str("layer", "middleware").
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("client_ip", c.ClientIP()).
			Msg("request started")

		c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("layer", "middleware").
			Dur("latency", time.Since(start)).
			Int("status", c.Writer.Status()).
			Int("response_size", c.Writer.Size()).
			Msg("request completed")
	}
}
