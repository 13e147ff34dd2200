package integrations

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"buglens/internal/domain"
	"buglens/internal/logger"
)

const azureAPIVersion = "7.0"

// azureDevOpsClient - клиент Azure DevOps Work Items API.
// credentials.BaseURL - https://dev.azure.com/{organization},
// credentials.ProjectRef - имя проекта, credentials.Token - PAT.
type azureDevOpsClient struct {
	httpClient *http.Client
}

// NewAzureDevOpsClient создаёт клиент Azure DevOps
func NewAzureDevOpsClient(httpClient *http.Client) IssueTracker {
	return &azureDevOpsClient{httpClient: httpClient}
}

// patchOp - операция JSON Patch, которыми Azure описывает поля work item
type patchOp struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value string `json:"value"`
}

type azureWorkItem struct {
	ID    int `json:"id"`
	Links struct {
		HTML struct {
			Href string `json:"href"`
		} `json:"html"`
	} `json:"_links"`
}

// CreateIssue создаёт work item типа Bug
func (c *azureDevOpsClient) CreateIssue(ctx context.Context, integ *domain.Integration, bug *domain.Bug) (*RemoteIssue, error) {
	creds := integ.Credentials

	ops := []patchOp{
		{Op: "add", Path: "/fields/System.Title", Value: bug.Title},
		{Op: "add", Path: "/fields/Microsoft.VSTS.TCM.ReproSteps", Value: bug.Description},
	}
	if severity := mapRemoteValue(integ.FieldMapping.Severity, string(bug.Severity)); severity != "" {
		ops = append(ops, patchOp{Op: "add", Path: "/fields/Microsoft.VSTS.Common.Severity", Value: severity})
	}
	if priority := mapRemoteValue(integ.FieldMapping.Priority, string(bug.Priority)); priority != "" {
		ops = append(ops, patchOp{Op: "add", Path: "/fields/Microsoft.VSTS.Common.Priority", Value: priority})
	}

	payload, err := json.Marshal(ops)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%s/_apis/wit/workitems/$Bug?api-version=%s",
		strings.TrimRight(creds.BaseURL, "/"), creds.ProjectRef, azureAPIVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json-patch+json")
	req.Header.Set("Authorization", "Basic "+basicPAT(creds.Token))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("azure devops request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Error().
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "integrations").
			Int("status_code", resp.StatusCode).
			Str("body", string(body)).
			Msg("azure devops create work item failed")
		return nil, fmt.Errorf("azure devops create work item: unexpected status %d", resp.StatusCode)
	}

	var item azureWorkItem
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return nil, fmt.Errorf("azure devops response decode: %w", err)
	}

	return &RemoteIssue{
		ExternalID: strconv.Itoa(item.ID),
		URL:        item.Links.HTML.Href,
	}, nil
}

// Ping проверяет доступность проекта
func (c *azureDevOpsClient) Ping(ctx context.Context, integ *domain.Integration) error {
	creds := integ.Credentials

	endpoint := fmt.Sprintf("%s/_apis/projects/%s?api-version=%s",
		strings.TrimRight(creds.BaseURL, "/"), creds.ProjectRef, azureAPIVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Basic "+basicPAT(creds.Token))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("azure devops ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("azure devops ping: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// basicPAT кодирует personal access token для basic-авторизации Azure
func basicPAT(token string) string {
	return base64.StdEncoding.EncodeToString([]byte(":" + token))
}
