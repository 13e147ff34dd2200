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

func TestSlackPostMessage_Success(t *testing.T) {
	// Arrange
	var gotContentType string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	notifier := integrations.NewSlackNotifier(srv.Client())
	integ := &domain.Integration{
		Provider:    domain.ProviderSlack,
		Credentials: domain.IntegrationCredentials{WebhookURL: srv.URL},
	}

	// Act
	err := notifier.PostMessage(context.Background(), integ, "Новый баг: Broken layout")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Новый баг: Broken layout", gotBody["text"])
}

func TestTeamsPostMessage_Success(t *testing.T) {
	// Arrange
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte("1"))
	}))
	defer srv.Close()

	notifier := integrations.NewTeamsNotifier(srv.Client())
	integ := &domain.Integration{
		Provider:    domain.ProviderTeams,
		Credentials: domain.IntegrationCredentials{WebhookURL: srv.URL},
	}

	// Act
	err := notifier.PostMessage(context.Background(), integ, "Статус бага изменён")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Статус бага изменён", gotBody["text"])
}

func TestPostMessage_NonOKStatus(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("no_service"))
	}))
	defer srv.Close()

	notifier := integrations.NewSlackNotifier(srv.Client())
	integ := &domain.Integration{
		Provider:    domain.ProviderSlack,
		Credentials: domain.IntegrationCredentials{WebhookURL: srv.URL},
	}

	// Act
	err := notifier.PostMessage(context.Background(), integ, "hello")

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestPostMessage_MissingWebhookURL(t *testing.T) {
	// Arrange
	notifier := integrations.NewSlackNotifier(http.DefaultClient)
	integ := &domain.Integration{Provider: domain.ProviderSlack}

	// Act
	err := notifier.PostMessage(context.Background(), integ, "hello")

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "webhook url is not configured")
}
