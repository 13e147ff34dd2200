package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"buglens/internal/api/middleware"
	"buglens/internal/domain"
)

// CreateProject обрабатывает создание проекта
func (h *Handler) CreateProject(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Key         string `json:"key" binding:"required,alphanum,uppercase,max=10"`
		Description string `json:"description"`
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
		Str("key", req.Key).
		Msg("creating project")

	project, err := h.service.CreateProject(c.Request.Context(), &domain.CreateProjectInput{
		OrgID:       c.Param("orgId"),
		Name:        req.Name,
		Key:         req.Key,
		Description: req.Description,
		ActorID:     actor,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"project": mapProjectToAPI(project),
	})
}

// ListProjects возвращает проекты организации
func (h *Handler) ListProjects(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	projects, err := h.service.ListProjects(c.Request.Context(), c.Param("orgId"), actor)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	mapped := make([]map[string]interface{}, len(projects))
	for i := range projects {
		mapped[i] = mapProjectToAPI(&projects[i])
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"projects": mapped,
	})
}

// UpdateProject обрабатывает обновление проекта
func (h *Handler) UpdateProject(c *gin.Context) {
	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	actor, ok := actorID(c)
	if !ok {
		return
	}

	project, err := h.service.UpdateProject(c.Request.Context(), &domain.UpdateProjectInput{
		ProjectID:   c.Param("projectId"),
		Name:        req.Name,
		Description: req.Description,
		ActorID:     actor,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"project": mapProjectToAPI(project),
	})
}

// ArchiveProject обрабатывает архивацию проекта
func (h *Handler) ArchiveProject(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	project, err := h.service.ArchiveProject(c.Request.Context(), c.Param("projectId"), actor)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"project": mapProjectToAPI(project),
	})
}

// CreateModule обрабатывает создание модуля
func (h *Handler) CreateModule(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		SortOrder   int    `json:"sort_order"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	actor, ok := actorID(c)
	if !ok {
		return
	}

	module, err := h.service.CreateModule(c.Request.Context(), &domain.CreateModuleInput{
		ProjectID:   c.Param("projectId"),
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		ActorID:     actor,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"module": mapModuleToAPI(module),
	})
}

// ListModules возвращает модули проекта
func (h *Handler) ListModules(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	modules, err := h.service.ListModules(c.Request.Context(), c.Param("projectId"), actor)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	mapped := make([]map[string]interface{}, len(modules))
	for i := range modules {
		mapped[i] = mapModuleToAPI(&modules[i])
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"modules": mapped,
	})
}

// UpdateModule обрабатывает обновление модуля
func (h *Handler) UpdateModule(c *gin.Context) {
	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		SortOrder   *int    `json:"sort_order"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	actor, ok := actorID(c)
	if !ok {
		return
	}

	module, err := h.service.UpdateModule(c.Request.Context(), &domain.UpdateModuleInput{
		ModuleID:    c.Param("moduleId"),
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		ActorID:     actor,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"module": mapModuleToAPI(module),
	})
}

// DeleteModule обрабатывает удаление модуля
func (h *Handler) DeleteModule(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteModule(c.Request.Context(), c.Param("moduleId"), actor); err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"deleted": true,
	})
}
