package storage

import (
	"context"

	"buglens/internal/domain"
)

// TxManager управляет транзакциями базы данных
//
//go:generate mockery --name=TxManager --output=../mocks --outpkg=mocks --filename=tx_manager_mock.go
type TxManager interface {
	// Do выполняет функцию fn внутри транзакции
	// Если fn возвращает ошибку, транзакция откатывается
	// Иначе транзакция коммитится
	Do(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx представляет транзакцию с доступом к репозиториям
//
//go:generate mockery --name=Tx --output=../mocks --outpkg=mocks --filename=tx_mock.go
type Tx interface {
	OrgRepo() OrganizationRepository
	ProjectRepo() ProjectRepository
	TestCaseRepo() TestCaseRepository
	BugRepo() BugRepository
	ScreenshotRepo() ScreenshotRepository
	CommentRepo() CommentRepository
	NotificationRepo() NotificationRepository
	IntegrationRepo() IntegrationRepository
}

// OrganizationRepository определяет операции с организациями, участниками и приглашениями
//
//go:generate mockery --name=OrganizationRepository --output=../mocks --outpkg=mocks --filename=organization_repository_mock.go
type OrganizationRepository interface {
	// Create создаёт организацию вместе с участником-владельцем
	Create(ctx context.Context, org *domain.Organization, owner *domain.Member) error

	// GetByID возвращает организацию с участниками
	GetByID(ctx context.Context, orgID string) (*domain.Organization, error)

	// GetMember возвращает участника организации
	GetMember(ctx context.Context, orgID, userID string) (*domain.Member, error)

	// CreateMember добавляет участника организации
	CreateMember(ctx context.Context, member *domain.Member) error

	// UpdateMember обновляет роль/активность участника
	UpdateMember(ctx context.Context, member *domain.Member) error

	// FindMemberByUsername ищет участника организации по username (для @упоминаний)
	FindMemberByUsername(ctx context.Context, orgID, username string) (*domain.Member, error)

	// CreateInvitation создаёт приглашение
	CreateInvitation(ctx context.Context, inv *domain.Invitation) error

	// GetInvitationByID возвращает приглашение по ID
	GetInvitationByID(ctx context.Context, invitationID string) (*domain.Invitation, error)

	// GetInvitationByToken возвращает приглашение по токену
	GetInvitationByToken(ctx context.Context, token string) (*domain.Invitation, error)

	// FindPendingInvitation ищет активное приглашение на email внутри организации
	FindPendingInvitation(ctx context.Context, orgID, email string) (*domain.Invitation, error)

	// UpdateInvitation обновляет статус приглашения
	UpdateInvitation(ctx context.Context, inv *domain.Invitation) error
}

// ProjectRepository определяет операции с проектами и модулями
//
//go:generate mockery --name=ProjectRepository --output=../mocks --outpkg=mocks --filename=project_repository_mock.go
type ProjectRepository interface {
	// Create создаёт проект
	Create(ctx context.Context, project *domain.Project) error

	// GetByID возвращает проект по ID
	GetByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListByOrg возвращает проекты организации
	ListByOrg(ctx context.Context, orgID string) ([]domain.Project, error)

	// Update обновляет проект
	Update(ctx context.Context, project *domain.Project) error

	// CreateModule создаёт модуль
	CreateModule(ctx context.Context, module *domain.Module) error

	// GetModule возвращает модуль по ID
	GetModule(ctx context.Context, moduleID string) (*domain.Module, error)

	// ListModules возвращает модули проекта по возрастанию sort_order
	ListModules(ctx context.Context, projectID string) ([]domain.Module, error)

	// UpdateModule обновляет модуль
	UpdateModule(ctx context.Context, module *domain.Module) error

	// DeleteModule удаляет модуль
	DeleteModule(ctx context.Context, moduleID string) error

	// CountTestCases возвращает число тест-кейсов, ссылающихся на модуль
	CountTestCases(ctx context.Context, moduleID string) (int64, error)

	// CountBugs возвращает число багов, ссылающихся на модуль
	CountBugs(ctx context.Context, moduleID string) (int64, error)
}

// TestCaseRepository определяет операции с тест-кейсами
//
//go:generate mockery --name=TestCaseRepository --output=../mocks --outpkg=mocks --filename=test_case_repository_mock.go
type TestCaseRepository interface {
	// Create создаёт тест-кейс
	Create(ctx context.Context, tc *domain.TestCase) error

	// GetByID возвращает тест-кейс по ID
	GetByID(ctx context.Context, testCaseID string) (*domain.TestCase, error)

	// List возвращает тест-кейсы модуля с фильтрами
	List(ctx context.Context, filter *domain.TestCaseFilter) ([]domain.TestCase, error)

	// ListByProject возвращает все тест-кейсы проекта (для выгрузки)
	ListByProject(ctx context.Context, projectID string) ([]domain.TestCase, error)

	// Update обновляет тест-кейс
	Update(ctx context.Context, tc *domain.TestCase) error

	// Delete удаляет тест-кейс
	Delete(ctx context.Context, testCaseID string) error
}

// BugRepository определяет операции с багами и внешними связями
//
//go:generate mockery --name=BugRepository --output=../mocks --outpkg=mocks --filename=bug_repository_mock.go
type BugRepository interface {
	// Create создаёт баг
	Create(ctx context.Context, bug *domain.Bug) error

	// GetByID возвращает баг с внешними связями
	GetByID(ctx context.Context, bugID string) (*domain.Bug, error)

	// List возвращает баги проекта с фильтрами
	List(ctx context.Context, filter *domain.BugFilter) ([]domain.BugShort, error)

	// ListByProject возвращает все баги проекта (для выгрузки)
	ListByProject(ctx context.Context, projectID string) ([]domain.Bug, error)

	// Update обновляет баг
	Update(ctx context.Context, bug *domain.Bug) error

	// CreateExternalLink сохраняет связь бага с задачей внешнего трекера
	CreateExternalLink(ctx context.Context, link *domain.BugExternalLink) error

	// GetByExternalID ищет баг по (provider, external_id) через таблицу связей
	GetByExternalID(ctx context.Context, provider domain.IntegrationProvider, externalID string) (*domain.Bug, error)
}

// ScreenshotRepository определяет операции со скриншотами и аннотациями
//
//go:generate mockery --name=ScreenshotRepository --output=../mocks --outpkg=mocks --filename=screenshot_repository_mock.go
type ScreenshotRepository interface {
	// Create создаёт метаданные скриншота
	Create(ctx context.Context, shot *domain.Screenshot) error

	// GetByID возвращает скриншот с аннотациями
	GetByID(ctx context.Context, screenshotID string) (*domain.Screenshot, error)

	// ListByBug возвращает скриншоты бага
	ListByBug(ctx context.Context, bugID string) ([]domain.Screenshot, error)

	// Delete удаляет скриншот, аннотации удаляются каскадно
	Delete(ctx context.Context, screenshotID string) error

	// ListAnnotations возвращает аннотации скриншота
	ListAnnotations(ctx context.Context, screenshotID string) ([]domain.Annotation, error)

	// CreateAnnotation создаёт аннотацию
	CreateAnnotation(ctx context.Context, a *domain.Annotation) error

	// UpdateAnnotation обновляет аннотацию
	UpdateAnnotation(ctx context.Context, a *domain.Annotation) error

	// DeleteAnnotations удаляет аннотации по списку ID
	DeleteAnnotations(ctx context.Context, screenshotID string, ids []string) error
}

// CommentRepository определяет операции с комментариями
//
//go:generate mockery --name=CommentRepository --output=../mocks --outpkg=mocks --filename=comment_repository_mock.go
type CommentRepository interface {
	// Create создаёт комментарий
	Create(ctx context.Context, comment *domain.Comment) error

	// GetByID возвращает комментарий по ID
	GetByID(ctx context.Context, commentID string) (*domain.Comment, error)

	// ListByBug возвращает комментарии бага по возрастанию created_at
	ListByBug(ctx context.Context, bugID string) ([]domain.Comment, error)

	// Update обновляет текст комментария
	Update(ctx context.Context, comment *domain.Comment) error

	// Delete удаляет комментарий
	Delete(ctx context.Context, commentID string) error
}

// NotificationRepository определяет операции с уведомлениями
//
//go:generate mockery --name=NotificationRepository --output=../mocks --outpkg=mocks --filename=notification_repository_mock.go
type NotificationRepository interface {
	// Create создаёт уведомление
	Create(ctx context.Context, n *domain.Notification) error

	// ListByRecipient возвращает уведомления получателя, непрочитанные первыми
	ListByRecipient(ctx context.Context, recipientID string, onlyUnread bool) ([]domain.Notification, error)

	// MarkRead помечает уведомление прочитанным
	MarkRead(ctx context.Context, notificationID, recipientID string) error

	// MarkAllRead помечает все уведомления получателя прочитанными, возвращает число строк
	MarkAllRead(ctx context.Context, recipientID string) (int, error)
}

// IntegrationRepository определяет операции с интеграциями
//
//go:generate mockery --name=IntegrationRepository --output=../mocks --outpkg=mocks --filename=integration_repository_mock.go
type IntegrationRepository interface {
	// Upsert создаёт или обновляет интеграцию (уникальность по org+provider)
	Upsert(ctx context.Context, integ *domain.Integration) error

	// GetByID возвращает интеграцию по ID
	GetByID(ctx context.Context, integrationID string) (*domain.Integration, error)

	// GetActive возвращает активную интеграцию провайдера для организации
	GetActive(ctx context.Context, orgID string, provider domain.IntegrationProvider) (*domain.Integration, error)

	// ListByOrg возвращает интеграции организации
	ListByOrg(ctx context.Context, orgID string) ([]domain.Integration, error)

	// ListActiveChat возвращает активные чат-интеграции (slack/teams) организации
	ListActiveChat(ctx context.Context, orgID string) ([]domain.Integration, error)

	// Update обновляет интеграцию
	Update(ctx context.Context, integ *domain.Integration) error
}
