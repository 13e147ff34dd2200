package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"buglens/internal/api"
	"buglens/internal/domain"
)

// StartExport запускает фоновую выгрузку багов или тест-кейсов проекта
func (h *Handler) StartExport(c *gin.Context) {
	var req struct {
		Entity string `json:"entity" binding:"required"`
		Format string `json:"format" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	actor, ok := actorID(c)
	if !ok {
		return
	}

	job, err := h.service.StartExport(c.Request.Context(), &domain.StartExportInput{
		ProjectID: c.Param("projectId"),
		Entity:    domain.ExportEntity(req.Entity),
		Format:    domain.ExportFormat(req.Format),
		ActorID:   actor,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, map[string]interface{}{
		"job": mapExportJobToAPI(job),
	})
}

// GetExportJob возвращает состояние задачи выгрузки
func (h *Handler) GetExportJob(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	job, err := h.service.GetExportJob(c.Request.Context(), c.Param("jobId"), actor)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"job": mapExportJobToAPI(job),
	})
}

// DownloadExport отдаёт файл завершённой выгрузки
func (h *Handler) DownloadExport(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	job, err := h.service.GetExportJob(c.Request.Context(), c.Param("jobId"), actor)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	if job.Status != domain.ExportJobDone {
		c.JSON(http.StatusConflict, api.ErrorResponse{
			Error: api.Error{
				Code:    api.ErrCodeInvalidRequest,
				Message: "export job is not finished",
			},
		})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+job.FileName)
	c.Data(http.StatusOK, job.ContentType, job.Data)
}
