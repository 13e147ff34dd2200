package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"buglens/internal/api/middleware"
	"buglens/internal/domain"
)

// maxScreenshotSize ограничивает размер загружаемого файла (10 МБ)
const maxScreenshotSize = 10 << 20

// UploadScreenshot обрабатывает multipart-загрузку скриншота для бага.
// Размеры изображения клиент передаёт полями width/height.
func (h *Handler) UploadScreenshot(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequest(c, err)
		return
	}
	if fileHeader.Size > maxScreenshotSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file is too large"})
		return
	}

	width, _ := strconv.Atoi(c.PostForm("width"))
	height, _ := strconv.Atoi(c.PostForm("height"))

	file, err := fileHeader.Open()
	if err != nil {
		badRequest(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxScreenshotSize))
	if err != nil {
		badRequest(c, err)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	log.Info().
		Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
		Str("layer", "handler").
		Str("bug_id", c.Param("bugId")).
		Str("file_name", fileHeader.Filename).
		Int64("size", fileHeader.Size).
		Msg("uploading screenshot")

	shot, err := h.service.UploadScreenshot(c.Request.Context(), &domain.UploadScreenshotInput{
		BugID:       c.Param("bugId"),
		FileName:    fileHeader.Filename,
		ContentType: contentType,
		Data:        data,
		Width:       width,
		Height:      height,
		ActorID:     actor,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"screenshot": mapScreenshotToAPI(shot),
	})
}

// GetScreenshot возвращает метаданные скриншота с аннотациями
func (h *Handler) GetScreenshot(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	shot, err := h.service.GetScreenshot(c.Request.Context(), c.Param("screenshotId"), actor)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"screenshot": mapScreenshotToAPI(shot),
	})
}

// DeleteScreenshot удаляет скриншот вместе с файлом и аннотациями
func (h *Handler) DeleteScreenshot(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteScreenshot(c.Request.Context(), c.Param("screenshotId"), actor); err != nil {
		handleDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ScreenshotDownloadURL возвращает presigned ссылку на файл скриншота
func (h *Handler) ScreenshotDownloadURL(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	url, err := h.service.ScreenshotDownloadURL(c.Request.Context(), c.Param("screenshotId"), actor)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"url": url,
	})
}

// ReplaceAnnotations обрабатывает батч-замену аннотаций скриншота
func (h *Handler) ReplaceAnnotations(c *gin.Context) {
	var req struct {
		Annotations []struct {
			ID          string          `json:"annotation_id"`
			Kind        string          `json:"kind" binding:"required"`
			Geometry    domain.Geometry `json:"geometry"`
			Color       string          `json:"color"`
			StrokeWidth float64         `json:"stroke_width"`
		} `json:"annotations"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	actor, ok := actorID(c)
	if !ok {
		return
	}

	annotations := make([]domain.AnnotationInput, len(req.Annotations))
	for i, a := range req.Annotations {
		annotations[i] = domain.AnnotationInput{
			ID:          a.ID,
			Kind:        domain.AnnotationKind(a.Kind),
			Geometry:    a.Geometry,
			Color:       a.Color,
			StrokeWidth: a.StrokeWidth,
		}
	}

	result, err := h.service.ReplaceAnnotations(c.Request.Context(), &domain.ReplaceAnnotationsInput{
		ScreenshotID: c.Param("screenshotId"),
		Annotations:  annotations,
		ActorID:      actor,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	mapped := make([]map[string]interface{}, len(result))
	for i := range result {
		mapped[i] = mapAnnotationToAPI(&result[i])
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"annotations": mapped,
	})
}
