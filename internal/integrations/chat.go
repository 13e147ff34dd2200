package integrations

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"buglens/internal/domain"
	"buglens/internal/logger"
)

// slackNotifier отправляет сообщения в Slack incoming webhook
type slackNotifier struct {
	httpClient *http.Client
}

// NewSlackNotifier создаёт Slack-нотификатор
func NewSlackNotifier(httpClient *http.Client) ChatNotifier {
	return &slackNotifier{httpClient: httpClient}
}

// PostMessage отправляет текстовое сообщение в настроенный webhook
func (n *slackNotifier) PostMessage(ctx context.Context, integ *domain.Integration, text string) error {
	return postWebhook(ctx, n.httpClient, integ.Credentials.WebhookURL, map[string]string{
		"text": text,
	})
}

// teamsNotifier отправляет сообщения в Microsoft Teams incoming webhook
type teamsNotifier struct {
	httpClient *http.Client
}

// NewTeamsNotifier создаёт Teams-нотификатор
func NewTeamsNotifier(httpClient *http.Client) ChatNotifier {
	return &teamsNotifier{httpClient: httpClient}
}

// PostMessage отправляет текстовое сообщение в настроенный webhook
func (n *teamsNotifier) PostMessage(ctx context.Context, integ *domain.Integration, text string) error {
	return postWebhook(ctx, n.httpClient, integ.Credentials.WebhookURL, map[string]string{
		"text": text,
	})
}

func postWebhook(ctx context.Context, client *http.Client, webhookURL string, payload any) error {
	if webhookURL == "" {
		return fmt.Errorf("webhook url is not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook post failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn().
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "integrations").
			Int("status_code", resp.StatusCode).
			Msg("webhook post returned non-2xx status")
		return fmt.Errorf("webhook post: unexpected status %d", resp.StatusCode)
	}

	return nil
}
