package domain

import "context"

// TrackerService - интерфейс бизнес-логики BugLens
//
//go:generate mockery --name=TrackerService --output=../mocks --outpkg=mocks --filename=tracker_service_mock.go
type TrackerService interface {
	// CreateOrganization создаёт организацию, автор становится owner
	CreateOrganization(ctx context.Context, input *CreateOrganizationInput) (*Organization, error)

	// GetOrganization возвращает организацию с участниками
	GetOrganization(ctx context.Context, orgID, actorID string) (*Organization, error)

	// InviteMember создаёт приглашение по email со случайным токеном
	InviteMember(ctx context.Context, input *InviteMemberInput) (*Invitation, error)

	// AcceptInvitation принимает приглашение по токену и создаёт участника
	AcceptInvitation(ctx context.Context, input *AcceptInvitationInput) (*Member, error)

	// RevokeInvitation отзывает ожидающее приглашение
	RevokeInvitation(ctx context.Context, input *RevokeInvitationInput) error

	// ChangeMemberRole меняет роль участника организации
	ChangeMemberRole(ctx context.Context, input *ChangeMemberRoleInput) (*Member, error)

	// DeactivateMember деактивирует участника организации
	DeactivateMember(ctx context.Context, input *DeactivateMemberInput) (*Member, error)

	// CreateProject создаёт проект с уникальным ключом внутри организации
	CreateProject(ctx context.Context, input *CreateProjectInput) (*Project, error)

	// ListProjects возвращает проекты организации
	ListProjects(ctx context.Context, orgID, actorID string) ([]Project, error)

	// UpdateProject обновляет имя/описание проекта
	UpdateProject(ctx context.Context, input *UpdateProjectInput) (*Project, error)

	// ArchiveProject архивирует проект вместо удаления
	ArchiveProject(ctx context.Context, projectID, actorID string) (*Project, error)

	// CreateModule создаёт модуль в проекте
	CreateModule(ctx context.Context, input *CreateModuleInput) (*Module, error)

	// ListModules возвращает модули проекта в порядке sort_order
	ListModules(ctx context.Context, projectID, actorID string) ([]Module, error)

	// UpdateModule обновляет модуль
	UpdateModule(ctx context.Context, input *UpdateModuleInput) (*Module, error)

	// DeleteModule удаляет модуль; запрещено пока на него ссылаются тест-кейсы или баги
	DeleteModule(ctx context.Context, moduleID, actorID string) error

	// CreateTestCase создаёт тест-кейс в статусе DRAFT
	CreateTestCase(ctx context.Context, input *CreateTestCaseInput) (*TestCase, error)

	// GetTestCase возвращает тест-кейс по ID
	GetTestCase(ctx context.Context, testCaseID, actorID string) (*TestCase, error)

	// UpdateTestCase обновляет поля тест-кейса
	UpdateTestCase(ctx context.Context, input *UpdateTestCaseInput) (*TestCase, error)

	// SetTestCaseStatus меняет статус тест-кейса; любой переход разрешён
	SetTestCaseStatus(ctx context.Context, testCaseID string, status TestCaseStatus, actorID string) (*TestCase, error)

	// ListTestCases возвращает тест-кейсы модуля с фильтрами
	ListTestCases(ctx context.Context, filter *TestCaseFilter) ([]TestCase, error)

	// DeleteTestCase удаляет тест-кейс
	DeleteTestCase(ctx context.Context, testCaseID, actorID string) error

	// CreateBug создаёт баг в статусе OPEN с рассылкой уведомлений
	CreateBug(ctx context.Context, input *CreateBugInput) (*Bug, error)

	// GetBug возвращает баг со скриншотами, комментариями и внешними связями
	GetBug(ctx context.Context, bugID, actorID string) (*BugDetail, error)

	// ListBugs возвращает баги проекта с фильтрами
	ListBugs(ctx context.Context, filter *BugFilter) ([]BugShort, error)

	// UpdateBug редактирует заголовок/описание/серьёзность/приоритет
	UpdateBug(ctx context.Context, input *UpdateBugInput) (*Bug, error)

	// AssignBug назначает или снимает исполнителя
	AssignBug(ctx context.Context, input *AssignBugInput) (*Bug, error)

	// SetBugStatus меняет статус бага, сверяясь с таблицей переходов
	SetBugStatus(ctx context.Context, input *SetBugStatusInput) (*Bug, error)

	// UploadScreenshot кладёт файл в объектное хранилище и создаёт метаданные
	UploadScreenshot(ctx context.Context, input *UploadScreenshotInput) (*Screenshot, error)

	// GetScreenshot возвращает метаданные скриншота с аннотациями
	GetScreenshot(ctx context.Context, screenshotID, actorID string) (*Screenshot, error)

	// ScreenshotDownloadURL возвращает presigned URL на файл скриншота
	ScreenshotDownloadURL(ctx context.Context, screenshotID, actorID string) (string, error)

	// ReplaceAnnotations атомарно заменяет список аннотаций скриншота:
	// известные ID обновляются, новые создаются, отсутствующие удаляются
	ReplaceAnnotations(ctx context.Context, input *ReplaceAnnotationsInput) ([]Annotation, error)

	// DeleteScreenshot удаляет скриншот вместе с файлом в объектном хранилище
	DeleteScreenshot(ctx context.Context, screenshotID, actorID string) error

	// AddComment добавляет комментарий с обработкой @упоминаний
	AddComment(ctx context.Context, input *AddCommentInput) (*Comment, error)

	// EditComment правит текст комментария, разрешено только автору
	EditComment(ctx context.Context, input *EditCommentInput) (*Comment, error)

	// DeleteComment удаляет комментарий, разрешено только автору
	DeleteComment(ctx context.Context, commentID, actorID string) error

	// ListComments возвращает комментарии бага по возрастанию времени
	ListComments(ctx context.Context, bugID, actorID string) ([]Comment, error)

	// ListNotifications возвращает уведомления получателя, непрочитанные первыми
	ListNotifications(ctx context.Context, recipientID string, onlyUnread bool) ([]Notification, error)

	// MarkNotificationRead помечает уведомление прочитанным
	MarkNotificationRead(ctx context.Context, notificationID, recipientID string) error

	// MarkAllNotificationsRead помечает все уведомления получателя прочитанными
	MarkAllNotificationsRead(ctx context.Context, recipientID string) (int, error)

	// ConfigureIntegration создаёт или обновляет интеграцию организации
	ConfigureIntegration(ctx context.Context, input *ConfigureIntegrationInput) (*Integration, error)

	// ListIntegrations возвращает интеграции организации
	ListIntegrations(ctx context.Context, orgID, actorID string) ([]Integration, error)

	// DeactivateIntegration выключает интеграцию
	DeactivateIntegration(ctx context.Context, integrationID, actorID string) error

	// PushBugToTracker создаёт задачу во внешнем трекере и сохраняет связь
	PushBugToTracker(ctx context.Context, input *PushBugInput) (*BugExternalLink, error)

	// HandleTrackerWebhook применяет смену статуса из вебхука внешнего трекера.
	// Неизвестный external id и запрещённый переход не являются ошибками.
	HandleTrackerWebhook(ctx context.Context, input *TrackerWebhookInput) (*TrackerWebhookResult, error)

	// StartExport запускает фоновую выгрузку и возвращает задачу
	StartExport(ctx context.Context, input *StartExportInput) (*ExportJob, error)

	// GetExportJob возвращает состояние задачи выгрузки её инициатору
	GetExportJob(ctx context.Context, jobID, actorID string) (*ExportJob, error)
}
