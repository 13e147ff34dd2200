package integrations_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"buglens/internal/domain"
	"buglens/internal/integrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func azureIntegration(baseURL string) *domain.Integration {
	return &domain.Integration{
		ID:       "integ-3",
		OrgID:    "org-1",
		Provider: domain.ProviderAzureDevOps,
		Active:   true,
		Credentials: domain.IntegrationCredentials{
			BaseURL:    baseURL,
			Token:      "azure-pat",
			ProjectRef: "WebApp",
		},
		FieldMapping: domain.FieldMapping{
			Severity: map[string]string{"MAJOR": "2 - High"},
		},
	}
}

func TestAzureCreateIssue_Success(t *testing.T) {
	// Arrange
	var gotPath, gotContentType, gotAuth string
	var gotOps []map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotOps))

		json.NewEncoder(w).Encode(map[string]any{
			"id": 7001,
			"_links": map[string]any{
				"html": map[string]string{"href": "https://dev.azure.com/acme/WebApp/_workitems/edit/7001"},
			},
		})
	}))
	defer srv.Close()

	client := integrations.NewAzureDevOpsClient(srv.Client())
	bug := &domain.Bug{
		ID:          "bug-1",
		Title:       "Broken layout",
		Description: "Кнопка уезжает за край экрана",
		Severity:    domain.BugSeverityMajor,
	}

	// Act
	issue, err := client.CreateIssue(context.Background(), azureIntegration(srv.URL), bug)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, issue)
	assert.Equal(t, "7001", issue.ExternalID)
	assert.Equal(t, "https://dev.azure.com/acme/WebApp/_workitems/edit/7001", issue.URL)

	assert.Equal(t, "/WebApp/_apis/wit/workitems/$Bug", gotPath)
	assert.Equal(t, "application/json-patch+json", gotContentType)

	// PAT кодируется как base64(":" + token)
	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte(":azure-pat"))
	assert.Equal(t, wantAuth, gotAuth)

	require.GreaterOrEqual(t, len(gotOps), 3)
	assert.Equal(t, "add", gotOps[0]["op"])
	assert.Equal(t, "/fields/System.Title", gotOps[0]["path"])
	assert.Equal(t, "Broken layout", gotOps[0]["value"])
	assert.Equal(t, "/fields/Microsoft.VSTS.Common.Severity", gotOps[2]["path"])
	assert.Equal(t, "2 - High", gotOps[2]["value"])
}

func TestAzureCreateIssue_UnexpectedStatus(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNonAuthoritativeInfo)
		w.Write([]byte("sign-in page"))
	}))
	defer srv.Close()

	client := integrations.NewAzureDevOpsClient(srv.Client())

	// Act
	issue, err := client.CreateIssue(context.Background(), azureIntegration(srv.URL), &domain.Bug{Title: "x"})

	// Assert
	require.Error(t, err)
	assert.Nil(t, issue)
	assert.Contains(t, err.Error(), "unexpected status 203")
}

func TestAzurePing(t *testing.T) {
	// Arrange
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]string{"id": "proj-guid", "name": "WebApp"})
	}))
	defer srv.Close()

	client := integrations.NewAzureDevOpsClient(srv.Client())

	// Act
	err := client.Ping(context.Background(), azureIntegration(srv.URL))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/_apis/projects/WebApp", gotPath)
}
