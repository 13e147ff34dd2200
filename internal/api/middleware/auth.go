package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// RoleKey - ключ роли токена в контексте gin
	RoleKey = "role"
	// ActorIDKey - ключ идентификатора актора в контексте gin
	ActorIDKey = "actor_id"
	// ActorIDHeader - заголовок с идентификатором пользователя-актора
	ActorIDHeader = "X-User-ID"
)

// AuthMiddleware проверяет bearer токен (ADMIN_TOKEN/USER_TOKEN из окружения)
// и кладёт роль и ID актора в контекст запроса
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
				c.Abort()
				return
			}

			token := parts[1]

			adminToken := os.Getenv("ADMIN_TOKEN")
			userToken := os.Getenv("USER_TOKEN")

			switch token {
			case adminToken:
				c.Set(RoleKey, "admin")
			case userToken:
				c.Set(RoleKey, "user")
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				c.Abort()
				return
			}
		}

		if actorID := c.GetHeader(ActorIDHeader); actorID != "" {
			c.Set(ActorIDKey, actorID)
		}

		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(RoleKey)
		if role != "admin" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "admin token required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(RoleKey)
		if role != "user" && role != "admin" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user token required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
