package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListNotifications возвращает уведомления актора, непрочитанные первыми
func (h *Handler) ListNotifications(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	onlyUnread := c.Query("unread") == "true"

	notifications, err := h.service.ListNotifications(c.Request.Context(), actor, onlyUnread)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	mapped := make([]map[string]interface{}, len(notifications))
	for i := range notifications {
		mapped[i] = mapNotificationToAPI(&notifications[i])
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"notifications": mapped,
	})
}

// MarkNotificationRead помечает уведомление прочитанным
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.service.MarkNotificationRead(c.Request.Context(), c.Param("notificationId"), actor); err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"read": true,
	})
}

// MarkAllNotificationsRead помечает все уведомления актора прочитанными
func (h *Handler) MarkAllNotificationsRead(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	affected, err := h.service.MarkAllNotificationsRead(c.Request.Context(), actor)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"marked": affected,
	})
}
