package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"buglens/internal/api/middleware"
	"buglens/internal/domain"
)

// CreateOrganization обрабатывает создание организации
func (h *Handler) CreateOrganization(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Slug     string `json:"slug" binding:"required"`
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
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
		Str("slug", req.Slug).
		Msg("creating organization")

	org, err := h.service.CreateOrganization(c.Request.Context(), &domain.CreateOrganizationInput{
		Name:     req.Name,
		Slug:     req.Slug,
		ActorID:  actor,
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"org": mapOrganizationToAPI(org),
	})
}

// GetOrganization возвращает организацию с участниками
func (h *Handler) GetOrganization(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	org, err := h.service.GetOrganization(c.Request.Context(), c.Param("orgId"), actor)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"org": mapOrganizationToAPI(org),
	})
}

// InviteMember обрабатывает приглашение участника по email
func (h *Handler) InviteMember(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
		Role  string `json:"role" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	actor, ok := actorID(c)
	if !ok {
		return
	}

	invitation, err := h.service.InviteMember(c.Request.Context(), &domain.InviteMemberInput{
		OrgID:   c.Param("orgId"),
		Email:   req.Email,
		Role:    domain.OrgRole(req.Role),
		ActorID: actor,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"invitation": mapInvitationToAPI(invitation),
	})
}

// AcceptInvitation обрабатывает принятие приглашения по токену
func (h *Handler) AcceptInvitation(c *gin.Context) {
	var req struct {
		Token    string `json:"token" binding:"required"`
		Username string `json:"username" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	actor, ok := actorID(c)
	if !ok {
		return
	}

	member, err := h.service.AcceptInvitation(c.Request.Context(), &domain.AcceptInvitationInput{
		Token:    req.Token,
		UserID:   actor,
		Username: req.Username,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"member": mapMemberToAPI(member),
	})
}

// RevokeInvitation обрабатывает отзыв приглашения
func (h *Handler) RevokeInvitation(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	err := h.service.RevokeInvitation(c.Request.Context(), &domain.RevokeInvitationInput{
		OrgID:        c.Param("orgId"),
		InvitationID: c.Param("invitationId"),
		ActorID:      actor,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"revoked": true,
	})
}

// ChangeMemberRole обрабатывает смену роли участника
func (h *Handler) ChangeMemberRole(c *gin.Context) {
	var req struct {
		Role string `json:"role" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	actor, ok := actorID(c)
	if !ok {
		return
	}

	member, err := h.service.ChangeMemberRole(c.Request.Context(), &domain.ChangeMemberRoleInput{
		OrgID:   c.Param("orgId"),
		UserID:  c.Param("userId"),
		Role:    domain.OrgRole(req.Role),
		ActorID: actor,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"member": mapMemberToAPI(member),
	})
}

// DeactivateMember обрабатывает деактивацию участника
func (h *Handler) DeactivateMember(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	member, err := h.service.DeactivateMember(c.Request.Context(), &domain.DeactivateMemberInput{
		OrgID:   c.Param("orgId"),
		UserID:  c.Param("userId"),
		ActorID: actor,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"member": mapMemberToAPI(member),
	})
}
