package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"buglens/internal/domain"
)

// AddComment обрабатывает добавление комментария к багу
func (h *Handler) AddComment(c *gin.Context) {
	var req struct {
		Body string `json:"body" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	actor, ok := actorID(c)
	if !ok {
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), &domain.AddCommentInput{
		BugID:    c.Param("bugId"),
		AuthorID: actor,
		Body:     req.Body,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"comment": mapCommentToAPI(comment),
	})
}

// ListComments возвращает комментарии бага
func (h *Handler) ListComments(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	comments, err := h.service.ListComments(c.Request.Context(), c.Param("bugId"), actor)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	mapped := make([]map[string]interface{}, len(comments))
	for i := range comments {
		mapped[i] = mapCommentToAPI(&comments[i])
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"comments": mapped,
	})
}

// EditComment обрабатывает правку комментария
func (h *Handler) EditComment(c *gin.Context) {
	var req struct {
		Body string `json:"body" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	actor, ok := actorID(c)
	if !ok {
		return
	}

	comment, err := h.service.EditComment(c.Request.Context(), &domain.EditCommentInput{
		CommentID: c.Param("commentId"),
		Body:      req.Body,
		ActorID:   actor,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"comment": mapCommentToAPI(comment),
	})
}

// DeleteComment обрабатывает удаление комментария
func (h *Handler) DeleteComment(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteComment(c.Request.Context(), c.Param("commentId"), actor); err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"deleted": true,
	})
}
