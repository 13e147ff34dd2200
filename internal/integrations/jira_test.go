package integrations_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"buglens/internal/domain"
	"buglens/internal/integrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jiraIntegration(baseURL string) *domain.Integration {
	return &domain.Integration{
		ID:       "integ-1",
		OrgID:    "org-1",
		Provider: domain.ProviderJira,
		Active:   true,
		Credentials: domain.IntegrationCredentials{
			BaseURL:    baseURL,
			Email:      "qa@acme.test",
			Token:      "jira-token",
			ProjectRef: "QA",
		},
		FieldMapping: domain.FieldMapping{
			Priority: map[string]string{"HIGH": "High"},
		},
	}
}

func TestJiraCreateIssue_Success(t *testing.T) {
	// Arrange
	var gotPath, gotUser, gotPass string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"id":  "10042",
			"key": "QA-42",
		})
	}))
	defer srv.Close()

	client := integrations.NewJiraClient(srv.Client())
	bug := &domain.Bug{
		ID:          "bug-1",
		Title:       "Broken layout",
		Description: "Кнопка уезжает за край экрана",
		Priority:    domain.PriorityHigh,
	}

	// Act
	issue, err := client.CreateIssue(context.Background(), jiraIntegration(srv.URL), bug)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, issue)
	assert.Equal(t, "QA-42", issue.ExternalID)
	assert.Equal(t, srv.URL+"/browse/QA-42", issue.URL)

	assert.Equal(t, "/rest/api/2/issue", gotPath)
	assert.Equal(t, "qa@acme.test", gotUser)
	assert.Equal(t, "jira-token", gotPass)

	fields := gotBody["fields"].(map[string]any)
	assert.Equal(t, "Broken layout", fields["summary"])
	assert.Equal(t, "QA", fields["project"].(map[string]any)["key"])
	assert.Equal(t, "Bug", fields["issuetype"].(map[string]any)["name"])
	// Приоритет идёт через маппинг полей
	assert.Equal(t, "High", fields["priority"].(map[string]any)["name"])
}

func TestJiraCreateIssue_UnexpectedStatus(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errorMessages":["project key invalid"]}`))
	}))
	defer srv.Close()

	client := integrations.NewJiraClient(srv.Client())

	// Act
	issue, err := client.CreateIssue(context.Background(), jiraIntegration(srv.URL), &domain.Bug{Title: "x"})

	// Assert
	require.Error(t, err)
	assert.Nil(t, issue)
	assert.Contains(t, err.Error(), "unexpected status 400")
}

func TestJiraPing(t *testing.T) {
	// Arrange
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if _, _, ok := r.BasicAuth(); !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := integrations.NewJiraClient(srv.Client())

	// Act
	err := client.Ping(context.Background(), jiraIntegration(srv.URL))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/rest/api/2/myself", gotPath)
}

func TestJiraPing_BadCredentials(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := integrations.NewJiraClient(srv.Client())

	// Act
	err := client.Ping(context.Background(), jiraIntegration(srv.URL))

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 401")
}
