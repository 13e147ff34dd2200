package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"buglens/internal/domain"
	"buglens/internal/logger"
)

// trelloBaseURL - адрес API по умолчанию, credentials.BaseURL его переопределяет
const trelloBaseURL = "https://api.trello.com/1"

// trelloClient - клиент Trello REST API (key + token в query,
// credentials.ProjectRef хранит id списка для новых карточек)
type trelloClient struct {
	httpClient *http.Client
}

// NewTrelloClient создаёт клиент Trello
func NewTrelloClient(httpClient *http.Client) IssueTracker {
	return &trelloClient{httpClient: httpClient}
}

type trelloCard struct {
	ID       string `json:"id"`
	ShortURL string `json:"shortUrl"`
}

// CreateIssue создаёт карточку в списке credentials.ProjectRef
func (c *trelloClient) CreateIssue(ctx context.Context, integ *domain.Integration, bug *domain.Bug) (*RemoteIssue, error) {
	creds := integ.Credentials

	base := creds.BaseURL
	if base == "" {
		base = trelloBaseURL
	}

	params := url.Values{}
	params.Set("key", creds.APIKey)
	params.Set("token", creds.Token)
	params.Set("idList", creds.ProjectRef)
	params.Set("name", fmt.Sprintf("[%s] %s", strings.ToUpper(string(bug.Severity)), bug.Title))
	params.Set("desc", bug.Description)

	endpoint := strings.TrimRight(base, "/") + "/cards?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trello request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Error().
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "integrations").
			Int("status_code", resp.StatusCode).
			Str("body", string(body)).
			Msg("trello create card failed")
		return nil, fmt.Errorf("trello create card: unexpected status %d", resp.StatusCode)
	}

	var card trelloCard
	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		return nil, fmt.Errorf("trello response decode: %w", err)
	}

	return &RemoteIssue{ExternalID: card.ID, URL: card.ShortURL}, nil
}

// Ping проверяет доступ к списку credentials.ProjectRef
func (c *trelloClient) Ping(ctx context.Context, integ *domain.Integration) error {
	creds := integ.Credentials

	base := creds.BaseURL
	if base == "" {
		base = trelloBaseURL
	}

	params := url.Values{}
	params.Set("key", creds.APIKey)
	params.Set("token", creds.Token)

	endpoint := strings.TrimRight(base, "/") + "/lists/" + creds.ProjectRef + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("trello ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("trello ping: unexpected status %d", resp.StatusCode)
	}
	return nil
}
