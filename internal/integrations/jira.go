package integrations

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"buglens/internal/domain"
	"buglens/internal/logger"
)

// jiraClient - клиент Jira Cloud REST API v2 с basic-auth (email + API token)
type jiraClient struct {
	httpClient *http.Client
}

// NewJiraClient создаёт клиент Jira
func NewJiraClient(httpClient *http.Client) IssueTracker {
	return &jiraClient{httpClient: httpClient}
}

type jiraCreateRequest struct {
	Fields jiraFields `json:"fields"`
}

type jiraFields struct {
	Project     jiraProjectRef `json:"project"`
	Summary     string         `json:"summary"`
	Description string         `json:"description"`
	IssueType   jiraIssueType  `json:"issuetype"`
	Priority    *jiraPriority  `json:"priority,omitempty"`
}

type jiraProjectRef struct {
	Key string `json:"key"`
}

type jiraIssueType struct {
	Name string `json:"name"`
}

type jiraPriority struct {
	Name string `json:"name"`
}

type jiraCreateResponse struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self"`
}

// CreateIssue создаёт задачу типа Bug в проекте из credentials.ProjectRef
func (c *jiraClient) CreateIssue(ctx context.Context, integ *domain.Integration, bug *domain.Bug) (*RemoteIssue, error) {
	creds := integ.Credentials

	priority := mapRemoteValue(integ.FieldMapping.Priority, string(bug.Priority))

	reqBody := jiraCreateRequest{
		Fields: jiraFields{
			Project:     jiraProjectRef{Key: creds.ProjectRef},
			Summary:     bug.Title,
			Description: bug.Description,
			IssueType:   jiraIssueType{Name: "Bug"},
		},
	}
	if priority != "" {
		reqBody.Fields.Priority = &jiraPriority{Name: priority}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := strings.TrimRight(creds.BaseURL, "/") + "/rest/api/2/issue"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(creds.Email, creds.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jira request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Error().
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "integrations").
			Int("status_code", resp.StatusCode).
			Str("body", string(body)).
			Msg("jira create issue failed")
		return nil, fmt.Errorf("jira create issue: unexpected status %d", resp.StatusCode)
	}

	var created jiraCreateResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("jira response decode: %w", err)
	}

	return &RemoteIssue{
		ExternalID: created.Key,
		URL:        strings.TrimRight(creds.BaseURL, "/") + "/browse/" + created.Key,
	}, nil
}

// Ping дергает /rest/api/2/myself, чтобы проверить реквизиты
func (c *jiraClient) Ping(ctx context.Context, integ *domain.Integration) error {
	creds := integ.Credentials

	url := strings.TrimRight(creds.BaseURL, "/") + "/rest/api/2/myself"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(creds.Email, creds.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("jira ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jira ping: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// mapRemoteValue возвращает значение из маппинга или пустую строку
func mapRemoteValue(mapping map[string]string, local string) string {
	if mapping == nil {
		return ""
	}
	return mapping[local]
}
