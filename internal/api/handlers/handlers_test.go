package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"buglens/internal/api/handlers"
	"buglens/internal/domain"
	"buglens/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter(mockService *mocks.TrackerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	_ = os.Setenv("USER_TOKEN", "test-user-token")
	handler := handlers.NewHandler(mockService)
	return handler.InitRoutes()
}

func TestCreateOrganizationHandler_Success(t *testing.T) {
	// Arrange
	mockService := mocks.NewTrackerService(t)
	router := setupTestRouter(mockService)

	requestBody := map[string]interface{}{
		"name":     "Acme QA",
		"slug":     "acme-qa",
		"username": "alice",
		"email":    "alice@acme.test",
	}

	expectedOrg := &domain.Organization{
		ID:   "org-1",
		Name: "Acme QA",
		Slug: "acme-qa",
		Members: []domain.Member{
			{OrgID: "org-1", UserID: "user-1", Username: "alice", Role: domain.OrgRoleOwner, IsActive: true},
		},
	}

	mockService.On("CreateOrganization", mock.Anything, mock.MatchedBy(func(input *domain.CreateOrganizationInput) bool {
		return input.Slug == "acme-qa" && input.ActorID == "user-1"
	})).Return(expectedOrg, nil)

	// Act
	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/orgs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test-user-token")
	req.Header.Set("X-User-ID", "user-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)

	org := response["org"].(map[string]interface{})
	assert.Equal(t, "org-1", org["org_id"])
	assert.Equal(t, "acme-qa", org["slug"])
	members := org["members"].([]interface{})
	assert.Equal(t, 1, len(members))

	mockService.AssertExpectations(t)
}

func TestCreateOrganizationHandler_InvalidRequest(t *testing.T) {
	// Arrange
	mockService := mocks.NewTrackerService(t)
	router := setupTestRouter(mockService)

	// Невалидный запрос (нет slug)
	requestBody := map[string]interface{}{
		"name":     "Acme QA",
		"username": "alice",
		"email":    "alice@acme.test",
	}

	// Act
	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/orgs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test-user-token")
	req.Header.Set("X-User-ID", "user-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)

	errorObj := response["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_REQUEST", errorObj["code"])
}

func TestCreateOrganizationHandler_MissingActor(t *testing.T) {
	// Arrange
	mockService := mocks.NewTrackerService(t)
	router := setupTestRouter(mockService)

	requestBody := map[string]interface{}{
		"name":     "Acme QA",
		"slug":     "acme-qa",
		"username": "alice",
		"email":    "alice@acme.test",
	}

	// Act: без заголовка X-User-ID
	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/orgs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test-user-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CreateOrganization", mock.Anything, mock.Anything)
}

func TestGetBugHandler_NotFound(t *testing.T) {
	// Arrange
	mockService := mocks.NewTrackerService(t)
	router := setupTestRouter(mockService)

	mockService.On("GetBug", mock.Anything, "bug-missing", "user-1").
		Return(nil, domain.ErrResourceNotFound)

	// Act
	req := httptest.NewRequest(http.MethodGet, "/bugs/bug-missing", nil)
	req.Header.Set("Authorization", "Bearer test-user-token")
	req.Header.Set("X-User-ID", "user-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)

	errorObj := response["error"].(map[string]interface{})
	assert.Equal(t, "NOT_FOUND", errorObj["code"])

	mockService.AssertExpectations(t)
}

func TestSetBugStatusHandler_Success(t *testing.T) {
	// Arrange
	mockService := mocks.NewTrackerService(t)
	router := setupTestRouter(mockService)

	requestBody := map[string]interface{}{
		"status": "RESOLVED",
	}

	expectedBug := &domain.Bug{
		ID:         "bug-1",
		ProjectID:  "proj-1",
		Title:      "Broken layout",
		Status:     domain.BugStatusResolved,
		ReportedBy: "user-1",
	}

	mockService.On("SetBugStatus", mock.Anything, mock.MatchedBy(func(input *domain.SetBugStatusInput) bool {
		return input.BugID == "bug-1" &&
			input.Status == domain.BugStatusResolved &&
			input.ActorID == "user-2"
	})).Return(expectedBug, nil)

	// Act
	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/bugs/bug-1/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test-user-token")
	req.Header.Set("X-User-ID", "user-2")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)

	bug := response["bug"].(map[string]interface{})
	assert.Equal(t, "bug-1", bug["bug_id"])
	assert.Equal(t, "RESOLVED", bug["status"])

	mockService.AssertExpectations(t)
}

func TestSetBugStatusHandler_InvalidTransition(t *testing.T) {
	// Arrange
	mockService := mocks.NewTrackerService(t)
	router := setupTestRouter(mockService)

	requestBody := map[string]interface{}{
		"status": "RESOLVED",
	}

	mockService.On("SetBugStatus", mock.Anything, mock.Anything).
		Return(nil, domain.ErrInvalidTransition)

	// Act
	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/bugs/bug-1/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test-user-token")
	req.Header.Set("X-User-ID", "user-2")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusConflict, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)

	errorObj := response["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_TRANSITION", errorObj["code"])

	mockService.AssertExpectations(t)
}

func TestHandlers_Unauthorized(t *testing.T) {
	// Arrange
	mockService := mocks.NewTrackerService(t)
	router := setupTestRouter(mockService)

	// Act: неизвестный токен
	req := httptest.NewRequest(http.MethodGet, "/bugs/bug-1", nil)
	req.Header.Set("Authorization", "Bearer wrong-token")
	req.Header.Set("X-User-ID", "user-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "GetBug", mock.Anything, mock.Anything, mock.Anything)
}

func TestJiraWebhookHandler_NoStatusChange(t *testing.T) {
	// Arrange
	mockService := mocks.NewTrackerService(t)
	router := setupTestRouter(mockService)

	// Событие без смены статуса подтверждается без обращения к сервису
	requestBody := map[string]interface{}{
		"issue": map[string]interface{}{"key": "QA-42"},
		"changelog": map[string]interface{}{
			"items": []map[string]interface{}{
				{"field": "assignee", "toString": "bob"},
			},
		},
	}

	// Act
	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/webhooks/jira", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)

	assert.False(t, response["matched"].(bool))
	assert.False(t, response["applied"].(bool))
	mockService.AssertNotCalled(t, "HandleTrackerWebhook", mock.Anything, mock.Anything)
}

func TestJiraWebhookHandler_Applied(t *testing.T) {
	// Arrange
	mockService := mocks.NewTrackerService(t)
	router := setupTestRouter(mockService)

	requestBody := map[string]interface{}{
		"issue": map[string]interface{}{"key": "QA-42"},
		"changelog": map[string]interface{}{
			"items": []map[string]interface{}{
				{"field": "status", "toString": "Done"},
			},
		},
	}

	mockService.On("HandleTrackerWebhook", mock.Anything, mock.MatchedBy(func(input *domain.TrackerWebhookInput) bool {
		return input.Provider == domain.ProviderJira &&
			input.ExternalID == "QA-42" &&
			input.RemoteStatus == "Done"
	})).Return(&domain.TrackerWebhookResult{
		Matched:   true,
		Applied:   true,
		BugID:     "bug-1",
		NewStatus: domain.BugStatusResolved,
	}, nil)

	// Act
	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/webhooks/jira", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)

	assert.True(t, response["matched"].(bool))
	assert.True(t, response["applied"].(bool))
	assert.Equal(t, "bug-1", response["bug_id"])
	assert.Equal(t, "RESOLVED", response["new_status"])

	mockService.AssertExpectations(t)
}

func TestTrelloWebhookHandler_IgnoresOtherActions(t *testing.T) {
	// Arrange
	mockService := mocks.NewTrackerService(t)
	router := setupTestRouter(mockService)

	requestBody := map[string]interface{}{
		"action": map[string]interface{}{
			"type": "commentCard",
			"data": map[string]interface{}{
				"card": map[string]interface{}{"id": "card-789"},
			},
		},
	}

	// Act
	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/webhooks/trello", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)

	assert.False(t, response["matched"].(bool))
	mockService.AssertNotCalled(t, "HandleTrackerWebhook", mock.Anything, mock.Anything)
}

func TestStartExportHandler_Accepted(t *testing.T) {
	// Arrange
	mockService := mocks.NewTrackerService(t)
	router := setupTestRouter(mockService)

	requestBody := map[string]interface{}{
		"entity": "bugs",
		"format": "csv",
	}

	expectedJob := &domain.ExportJob{
		ID:        "job-1",
		ProjectID: "proj-1",
		Entity:    domain.ExportEntityBugs,
		Format:    domain.ExportFormatCSV,
		Status:    domain.ExportJobPending,
		StartedBy: "user-1",
	}

	mockService.On("StartExport", mock.Anything, mock.MatchedBy(func(input *domain.StartExportInput) bool {
		return input.ProjectID == "proj-1" &&
			input.Entity == domain.ExportEntityBugs &&
			input.Format == domain.ExportFormatCSV
	})).Return(expectedJob, nil)

	// Act
	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/projects/proj-1/export", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test-user-token")
	req.Header.Set("X-User-ID", "user-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusAccepted, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)

	job := response["job"].(map[string]interface{})
	assert.Equal(t, "job-1", job["job_id"])
	assert.Equal(t, "PENDING", job["status"])

	mockService.AssertExpectations(t)
}
