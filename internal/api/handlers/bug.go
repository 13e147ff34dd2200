package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"buglens/internal/api/middleware"
	"buglens/internal/domain"
)

// CreateBug обрабатывает создание бага
func (h *Handler) CreateBug(c *gin.Context) {
	var req struct {
		ModuleID    *string `json:"module_id"`
		TestCaseID  *string `json:"test_case_id"`
		Title       string  `json:"title" binding:"required"`
		Description string  `json:"description"`
		Severity    string  `json:"severity" binding:"required"`
		Priority    string  `json:"priority" binding:"required"`
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
		Str("project_id", c.Param("projectId")).
		Str("severity", req.Severity).
		Msg("creating bug")

	bug, err := h.service.CreateBug(c.Request.Context(), &domain.CreateBugInput{
		ProjectID:   c.Param("projectId"),
		ModuleID:    req.ModuleID,
		TestCaseID:  req.TestCaseID,
		Title:       req.Title,
		Description: req.Description,
		Severity:    domain.BugSeverity(req.Severity),
		Priority:    domain.Priority(req.Priority),
		ReportedBy:  actor,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"bug": mapBugToAPI(bug),
	})
}

// GetBug возвращает карточку бага со скриншотами и комментариями
func (h *Handler) GetBug(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	bug, err := h.service.GetBug(c.Request.Context(), c.Param("bugId"), actor)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"bug": mapBugDetailToAPI(bug),
	})
}

// ListBugs возвращает баги проекта с фильтрами
func (h *Handler) ListBugs(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	filter := &domain.BugFilter{
		ProjectID: c.Param("projectId"),
		ActorID:   actor,
	}
	if status := c.Query("status"); status != "" {
		s := domain.BugStatus(status)
		filter.Status = &s
	}
	if severity := c.Query("severity"); severity != "" {
		s := domain.BugSeverity(severity)
		filter.Severity = &s
	}
	if assignedTo := c.Query("assigned_to"); assignedTo != "" {
		filter.AssignedTo = &assignedTo
	}
	if moduleID := c.Query("module_id"); moduleID != "" {
		filter.ModuleID = &moduleID
	}

	bugs, err := h.service.ListBugs(c.Request.Context(), filter)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	mapped := make([]map[string]interface{}, len(bugs))
	for i, bug := range bugs {
		mapped[i] = mapBugShortToAPI(bug)
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"bugs": mapped,
	})
}

// UpdateBug обрабатывает редактирование бага
func (h *Handler) UpdateBug(c *gin.Context) {
	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Severity    *string `json:"severity"`
		Priority    *string `json:"priority"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	actor, ok := actorID(c)
	if !ok {
		return
	}

	var severity *domain.BugSeverity
	if req.Severity != nil {
		s := domain.BugSeverity(*req.Severity)
		severity = &s
	}
	var priority *domain.Priority
	if req.Priority != nil {
		p := domain.Priority(*req.Priority)
		priority = &p
	}

	bug, err := h.service.UpdateBug(c.Request.Context(), &domain.UpdateBugInput{
		BugID:       c.Param("bugId"),
		Title:       req.Title,
		Description: req.Description,
		Severity:    severity,
		Priority:    priority,
		ActorID:     actor,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"bug": mapBugToAPI(bug),
	})
}

// AssignBug обрабатывает назначение исполнителя.
// null в assignee_id снимает назначение.
func (h *Handler) AssignBug(c *gin.Context) {
	var req struct {
		AssigneeID *string `json:"assignee_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	actor, ok := actorID(c)
	if !ok {
		return
	}

	bug, err := h.service.AssignBug(c.Request.Context(), &domain.AssignBugInput{
		BugID:      c.Param("bugId"),
		AssigneeID: req.AssigneeID,
		ActorID:    actor,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"bug": mapBugToAPI(bug),
	})
}

// SetBugStatus обрабатывает смену статуса бага
func (h *Handler) SetBugStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
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
		Str("bug_id", c.Param("bugId")).
		Str("status", req.Status).
		Msg("changing bug status")

	bug, err := h.service.SetBugStatus(c.Request.Context(), &domain.SetBugStatusInput{
		BugID:   c.Param("bugId"),
		Status:  domain.BugStatus(req.Status),
		ActorID: actor,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"bug": mapBugToAPI(bug),
	})
}
