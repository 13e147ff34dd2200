package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"buglens/internal/api"
	"buglens/internal/api/middleware"
	"buglens/internal/domain"
)

// handleDomainError обрабатывает domain ошибки и возвращает правильный HTTP response
func handleDomainError(c *gin.Context, err error) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		c.JSON(domainErr.Status, api.ErrorResponse{
			Error: api.Error{
				Code:    string(domainErr.Code),
				Message: domainErr.Message,
			},
		})
		return
	}

	// Fallback на internal error
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{
		Error: api.Error{
			Code:    api.ErrCodeInternalError,
			Message: "internal server error",
		},
	})
}

// badRequest отвечает 400 с описанием ошибки парсинга
func badRequest(c *gin.Context, err error) {
	log.Error().
		Err(err).
		Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
		Str("layer", "handler").
		Msg("failed to parse request")

	c.JSON(http.StatusBadRequest, api.ErrorResponse{
		Error: api.Error{
			Code:    api.ErrCodeInvalidRequest,
			Message: "Failed to parse request: " + err.Error(),
		},
	})
}

// actorID достаёт ID актора из контекста; пустой ID - 400
func actorID(c *gin.Context) (string, bool) {
	id := c.GetString(middleware.ActorIDKey)
	if id == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error: api.Error{
				Code:    api.ErrCodeInvalidRequest,
				Message: "X-User-ID header is required",
			},
		})
		return "", false
	}
	return id, true
}
