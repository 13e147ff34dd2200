package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"buglens/internal/domain"
)

// CreateTestCase обрабатывает создание тест-кейса
func (h *Handler) CreateTestCase(c *gin.Context) {
	var req struct {
		Title          string `json:"title" binding:"required"`
		Description    string `json:"description"`
		Steps          []struct {
			Action   string `json:"action" binding:"required"`
			Expected string `json:"expected"`
		} `json:"steps"`
		ExpectedResult string `json:"expected_result"`
		Priority       string `json:"priority" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	actor, ok := actorID(c)
	if !ok {
		return
	}

	steps := make([]domain.TestStep, len(req.Steps))
	for i, step := range req.Steps {
		steps[i] = domain.TestStep{Action: step.Action, Expected: step.Expected}
	}

	tc, err := h.service.CreateTestCase(c.Request.Context(), &domain.CreateTestCaseInput{
		ModuleID:       c.Param("moduleId"),
		Title:          req.Title,
		Description:    req.Description,
		Steps:          steps,
		ExpectedResult: req.ExpectedResult,
		Priority:       domain.Priority(req.Priority),
		ActorID:        actor,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"test_case": mapTestCaseToAPI(tc),
	})
}

// GetTestCase возвращает тест-кейс по ID
func (h *Handler) GetTestCase(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	tc, err := h.service.GetTestCase(c.Request.Context(), c.Param("testCaseId"), actor)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"test_case": mapTestCaseToAPI(tc),
	})
}

// UpdateTestCase обрабатывает обновление тест-кейса
func (h *Handler) UpdateTestCase(c *gin.Context) {
	var req struct {
		Title          *string `json:"title"`
		Description    *string `json:"description"`
		Steps          []struct {
			Action   string `json:"action" binding:"required"`
			Expected string `json:"expected"`
		} `json:"steps"`
		ExpectedResult *string `json:"expected_result"`
		Priority       *string `json:"priority"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	actor, ok := actorID(c)
	if !ok {
		return
	}

	var steps []domain.TestStep
	if req.Steps != nil {
		steps = make([]domain.TestStep, len(req.Steps))
		for i, step := range req.Steps {
			steps[i] = domain.TestStep{Action: step.Action, Expected: step.Expected}
		}
	}

	var priority *domain.Priority
	if req.Priority != nil {
		p := domain.Priority(*req.Priority)
		priority = &p
	}

	tc, err := h.service.UpdateTestCase(c.Request.Context(), &domain.UpdateTestCaseInput{
		TestCaseID:     c.Param("testCaseId"),
		Title:          req.Title,
		Description:    req.Description,
		Steps:          steps,
		ExpectedResult: req.ExpectedResult,
		Priority:       priority,
		ActorID:        actor,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"test_case": mapTestCaseToAPI(tc),
	})
}

// SetTestCaseStatus обрабатывает смену статуса тест-кейса
func (h *Handler) SetTestCaseStatus(c *gin.Context) {
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

	tc, err := h.service.SetTestCaseStatus(c.Request.Context(),
		c.Param("testCaseId"), domain.TestCaseStatus(req.Status), actor)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"test_case": mapTestCaseToAPI(tc),
	})
}

// ListTestCases возвращает тест-кейсы модуля с фильтрами
func (h *Handler) ListTestCases(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	filter := &domain.TestCaseFilter{
		ModuleID: c.Param("moduleId"),
		ActorID:  actor,
	}
	if status := c.Query("status"); status != "" {
		s := domain.TestCaseStatus(status)
		filter.Status = &s
	}
	if priority := c.Query("priority"); priority != "" {
		p := domain.Priority(priority)
		filter.Priority = &p
	}

	testCases, err := h.service.ListTestCases(c.Request.Context(), filter)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	mapped := make([]map[string]interface{}, len(testCases))
	for i := range testCases {
		mapped[i] = mapTestCaseToAPI(&testCases[i])
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"test_cases": mapped,
	})
}

// DeleteTestCase обрабатывает удаление тест-кейса
func (h *Handler) DeleteTestCase(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteTestCase(c.Request.Context(), c.Param("testCaseId"), actor); err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"deleted": true,
	})
}
