// Package integrations содержит клиенты внешних трекеров задач и
// чат-сервисов, к которым организации подключают свои интеграции.
package integrations

import (
	"context"
	"net/http"
	"time"

	"buglens/internal/domain"
)

// RemoteIssue - созданная во внешнем трекере задача
type RemoteIssue struct {
	ExternalID string
	URL        string
}

// IssueTracker - порт клиента внешнего трекера задач.
//
//go:generate mockery --name=IssueTracker --output=../mocks --outpkg=mocks --filename=issue_tracker.go --structname=IssueTracker
type IssueTracker interface {
	// CreateIssue создаёт задачу во внешнем трекере по данным бага
	CreateIssue(ctx context.Context, integ *domain.Integration, bug *domain.Bug) (*RemoteIssue, error)

	// Ping проверяет доступность внешнего сервиса с текущими реквизитами
	Ping(ctx context.Context, integ *domain.Integration) error
}

// ChatNotifier - порт чат-сервиса с incoming webhook.
//
//go:generate mockery --name=ChatNotifier --output=../mocks --outpkg=mocks --filename=chat_notifier.go --structname=ChatNotifier
type ChatNotifier interface {
	// PostMessage отправляет текстовое сообщение в настроенный webhook
	PostMessage(ctx context.Context, integ *domain.Integration, text string) error
}

// Registry хранит клиенты по провайдерам. Провайдеры без клиента
// (неподдерживаемые) дают ошибку на этапе сервиса, не здесь.
type Registry struct {
	trackers  map[domain.IntegrationProvider]IssueTracker
	notifiers map[domain.IntegrationProvider]ChatNotifier
}

// NewRegistry создаёт реестр со стандартным набором клиентов
func NewRegistry() *Registry {
	httpClient := &http.Client{Timeout: 10 * time.Second}

	return &Registry{
		trackers: map[domain.IntegrationProvider]IssueTracker{
			domain.ProviderJira:        NewJiraClient(httpClient),
			domain.ProviderTrello:      NewTrelloClient(httpClient),
			domain.ProviderAzureDevOps: NewAzureDevOpsClient(httpClient),
		},
		notifiers: map[domain.IntegrationProvider]ChatNotifier{
			domain.ProviderSlack: NewSlackNotifier(httpClient),
			domain.ProviderTeams: NewTeamsNotifier(httpClient),
		},
	}
}

// NewRegistryWith создаёт реестр с переданными клиентами (для тестов)
func NewRegistryWith(
	trackers map[domain.IntegrationProvider]IssueTracker,
	notifiers map[domain.IntegrationProvider]ChatNotifier,
) *Registry {
	return &Registry{trackers: trackers, notifiers: notifiers}
}

// Tracker возвращает клиент трекера для провайдера
func (r *Registry) Tracker(provider domain.IntegrationProvider) (IssueTracker, bool) {
	t, ok := r.trackers[provider]
	return t, ok
}

// Notifier возвращает чат-клиент для провайдера
func (r *Registry) Notifier(provider domain.IntegrationProvider) (ChatNotifier, bool) {
	n, ok := r.notifiers[provider]
	return n, ok
}
