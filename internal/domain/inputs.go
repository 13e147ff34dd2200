package domain

// Input/Output DTOs для методов сервиса

// CreateOrganizationInput - входные данные для создания организации
type CreateOrganizationInput struct {
	Name     string
	Slug     string
	ActorID  string
	Username string
	Email    string
}

// InviteMemberInput - входные данные для приглашения по email
type InviteMemberInput struct {
	OrgID   string
	Email   string
	Role    OrgRole
	ActorID string
}

// AcceptInvitationInput - входные данные для принятия приглашения
type AcceptInvitationInput struct {
	Token    string
	UserID   string
	Username string
}

// RevokeInvitationInput - входные данные для отзыва приглашения
type RevokeInvitationInput struct {
	OrgID        string
	InvitationID string
	ActorID      string
}

// ChangeMemberRoleInput - входные данные для смены роли участника
type ChangeMemberRoleInput struct {
	OrgID   string
	UserID  string
	Role    OrgRole
	ActorID string
}

// DeactivateMemberInput - входные данные для деактивации участника
type DeactivateMemberInput struct {
	OrgID   string
	UserID  string
	ActorID string
}

// CreateProjectInput - входные данные для создания проекта
type CreateProjectInput struct {
	OrgID       string
	Name        string
	Key         string
	Description string
	ActorID     string
}

// UpdateProjectInput - входные данные для обновления проекта
type UpdateProjectInput struct {
	ProjectID   string
	Name        *string
	Description *string
	ActorID     string
}

// CreateModuleInput - входные данные для создания модуля
type CreateModuleInput struct {
	ProjectID   string
	Name        string
	Description string
	SortOrder   int
	ActorID     string
}

// UpdateModuleInput - входные данные для обновления модуля
type UpdateModuleInput struct {
	ModuleID    string
	Name        *string
	Description *string
	SortOrder   *int
	ActorID     string
}

// CreateTestCaseInput - входные данные для создания тест-кейса
type CreateTestCaseInput struct {
	ModuleID       string
	Title          string
	Description    string
	Steps          []TestStep
	ExpectedResult string
	Priority       Priority
	ActorID        string
}

// UpdateTestCaseInput - входные данные для обновления тест-кейса
type UpdateTestCaseInput struct {
	TestCaseID     string
	Title          *string
	Description    *string
	Steps          []TestStep
	ExpectedResult *string
	Priority       *Priority
	ActorID        string
}

// TestCaseFilter - фильтры списка тест-кейсов модуля
type TestCaseFilter struct {
	ModuleID string
	Status   *TestCaseStatus
	Priority *Priority
	ActorID  string
}

// CreateBugInput - входные данные для создания бага
type CreateBugInput struct {
	ProjectID   string
	ModuleID    *string
	TestCaseID  *string
	Title       string
	Description string
	Severity    BugSeverity
	Priority    Priority
	ReportedBy  string
}

// UpdateBugInput - входные данные для редактирования бага
type UpdateBugInput struct {
	BugID       string
	Title       *string
	Description *string
	Severity    *BugSeverity
	Priority    *Priority
	ActorID     string
}

// AssignBugInput - входные данные для назначения исполнителя.
// AssigneeID == nil снимает назначение.
type AssignBugInput struct {
	BugID      string
	AssigneeID *string
	ActorID    string
}

// SetBugStatusInput - входные данные для смены статуса бага
type SetBugStatusInput struct {
	BugID   string
	Status  BugStatus
	ActorID string
}

// BugFilter - фильтры списка багов проекта
type BugFilter struct {
	ProjectID  string
	Status     *BugStatus
	Severity   *BugSeverity
	AssignedTo *string
	ModuleID   *string
	ActorID    string
}

// UploadScreenshotInput - входные данные для загрузки скриншота
type UploadScreenshotInput struct {
	BugID       string
	FileName    string
	ContentType string
	Data        []byte
	Width       int
	Height      int
	ActorID     string
}

// AnnotationInput - одна аннотация в батче. Пустой ID означает создание.
type AnnotationInput struct {
	ID          string
	Kind        AnnotationKind
	Geometry    Geometry
	Color       string
	StrokeWidth float64
}

// ReplaceAnnotationsInput - входные данные батч-замены аннотаций скриншота
type ReplaceAnnotationsInput struct {
	ScreenshotID string
	Annotations  []AnnotationInput
	ActorID      string
}

// AddCommentInput - входные данные для добавления комментария
type AddCommentInput struct {
	BugID    string
	AuthorID string
	Body     string
}

// EditCommentInput - входные данные для правки комментария
type EditCommentInput struct {
	CommentID string
	Body      string
	ActorID   string
}

// ConfigureIntegrationInput - входные данные для настройки интеграции
type ConfigureIntegrationInput struct {
	OrgID        string
	Provider     IntegrationProvider
	Credentials  IntegrationCredentials
	FieldMapping FieldMapping
	ActorID      string
}

// PushBugInput - входные данные для создания задачи во внешнем трекере
type PushBugInput struct {
	BugID    string
	Provider IntegrationProvider
	ActorID  string
}

// TrackerWebhookInput - нормализованное событие вебхука внешнего трекера
type TrackerWebhookInput struct {
	Provider     IntegrationProvider
	ExternalID   string
	RemoteStatus string
}

// TrackerWebhookResult - результат обработки вебхука
type TrackerWebhookResult struct {
	Matched   bool
	Applied   bool
	BugID     string
	NewStatus BugStatus
}

// StartExportInput - входные данные для запуска выгрузки
type StartExportInput struct {
	ProjectID string
	Entity    ExportEntity
	Format    ExportFormat
	ActorID   string
}
