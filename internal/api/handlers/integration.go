package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"buglens/internal/api/middleware"
	"buglens/internal/domain"
)

// ConfigureIntegration обрабатывает настройку интеграции организации
func (h *Handler) ConfigureIntegration(c *gin.Context) {
	var req struct {
		Provider    string `json:"provider" binding:"required"`
		Credentials struct {
			BaseURL    string `json:"base_url"`
			Email      string `json:"email"`
			Token      string `json:"token"`
			APIKey     string `json:"api_key"`
			ProjectRef string `json:"project_ref"`
			WebhookURL string `json:"webhook_url"`
		} `json:"credentials" binding:"required"`
		FieldMapping struct {
			Status   map[string]string `json:"status"`
			Severity map[string]string `json:"severity"`
			Priority map[string]string `json:"priority"`
		} `json:"field_mapping"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	actor, ok := actorID(c)
	if !ok {
		return
	}

	log.Info().
		Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
		Str("layer", "handler").
		Str("org_id", c.Param("orgId")).
		Str("provider", req.Provider).
		Msg("configuring integration")

	integ, err := h.service.ConfigureIntegration(c.Request.Context(), &domain.ConfigureIntegrationInput{
		OrgID:    c.Param("orgId"),
		Provider: domain.IntegrationProvider(req.Provider),
		Credentials: domain.IntegrationCredentials{
			BaseURL:    req.Credentials.BaseURL,
			Email:      req.Credentials.Email,
			Token:      req.Credentials.Token,
			APIKey:     req.Credentials.APIKey,
			ProjectRef: req.Credentials.ProjectRef,
			WebhookURL: req.Credentials.WebhookURL,
		},
		FieldMapping: domain.FieldMapping{
			Status:   req.FieldMapping.Status,
			Severity: req.FieldMapping.Severity,
			Priority: req.FieldMapping.Priority,
		},
		ActorID: actor,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"integration": mapIntegrationToAPI(integ),
	})
}

// ListIntegrations возвращает интеграции организации
func (h *Handler) ListIntegrations(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	list, err := h.service.ListIntegrations(c.Request.Context(), c.Param("orgId"), actor)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	mapped := make([]map[string]interface{}, len(list))
	for i := range list {
		mapped[i] = mapIntegrationToAPI(&list[i])
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"integrations": mapped,
	})
}

// DeactivateIntegration выключает интеграцию
func (h *Handler) DeactivateIntegration(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.service.DeactivateIntegration(c.Request.Context(), c.Param("integrationId"), actor); err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"active": false,
	})
}

// PushBugToTracker создаёт задачу во внешнем трекере для бага
func (h *Handler) PushBugToTracker(c *gin.Context) {
	var req struct {
		Provider string `json:"provider" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	actor, ok := actorID(c)
	if !ok {
		return
	}

	link, err := h.service.PushBugToTracker(c.Request.Context(), &domain.PushBugInput{
		BugID:    c.Param("bugId"),
		Provider: domain.IntegrationProvider(req.Provider),
		ActorID:  actor,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"external_link": map[string]interface{}{
			"bug_id":       link.BugID,
			"provider":     string(link.Provider),
			"external_id":  link.ExternalID,
			"external_key": link.ExternalKey,
			"external_url": link.ExternalURL,
		},
	})
}

// JiraWebhook принимает вебхук Jira о смене статуса задачи.
// Неизвестные задачи и события без смены статуса подтверждаются без действий.
func (h *Handler) JiraWebhook(c *gin.Context) {
	var payload struct {
		Issue struct {
			Key string `json:"key"`
		} `json:"issue"`
		Changelog struct {
			Items []struct {
				Field    string `json:"field"`
				ToString string `json:"toString"`
			} `json:"items"`
		} `json:"changelog"`
	}

	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, err)
		return
	}

	var remoteStatus string
	for _, item := range payload.Changelog.Items {
		if item.Field == "status" {
			remoteStatus = item.ToString
			break
		}
	}
	if payload.Issue.Key == "" || remoteStatus == "" {
		c.JSON(http.StatusOK, map[string]interface{}{"matched": false, "applied": false})
		return
	}

	result, err := h.service.HandleTrackerWebhook(c.Request.Context(), &domain.TrackerWebhookInput{
		Provider:     domain.ProviderJira,
		ExternalID:   payload.Issue.Key,
		RemoteStatus: remoteStatus,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, webhookResultToAPI(result))
}

// TrelloWebhook принимает вебхук Trello о перемещении карточки между списками
func (h *Handler) TrelloWebhook(c *gin.Context) {
	var payload struct {
		Action struct {
			Type string `json:"type"`
			Data struct {
				Card struct {
					ID string `json:"id"`
				} `json:"card"`
				ListAfter struct {
					Name string `json:"name"`
				} `json:"listAfter"`
			} `json:"data"`
		} `json:"action"`
	}

	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, err)
		return
	}

	if payload.Action.Type != "updateCard" ||
		payload.Action.Data.Card.ID == "" ||
		payload.Action.Data.ListAfter.Name == "" {
		c.JSON(http.StatusOK, map[string]interface{}{"matched": false, "applied": false})
		return
	}

	result, err := h.service.HandleTrackerWebhook(c.Request.Context(), &domain.TrackerWebhookInput{
		Provider:     domain.ProviderTrello,
		ExternalID:   payload.Action.Data.Card.ID,
		RemoteStatus: payload.Action.Data.ListAfter.Name,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, webhookResultToAPI(result))
}

func webhookResultToAPI(result *domain.TrackerWebhookResult) map[string]interface{} {
	response := map[string]interface{}{
		"matched": result.Matched,
		"applied": result.Applied,
	}
	if result.Matched {
		response["bug_id"] = result.BugID
	}
	if result.Applied {
		response["new_status"] = string(result.NewStatus)
	}
	return response
}
