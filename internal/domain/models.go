package domain

import "time"

// OrgRole - роль участника внутри организации
type OrgRole string

const (
	OrgRoleOwner  OrgRole = "owner"
	OrgRoleAdmin  OrgRole = "admin"
	OrgRoleMember OrgRole = "member"
	OrgRoleViewer OrgRole = "viewer"
)

// ValidOrgRole проверяет, что строка является известной ролью
func ValidOrgRole(r OrgRole) bool {
	switch r {
	case OrgRoleOwner, OrgRoleAdmin, OrgRoleMember, OrgRoleViewer:
		return true
	}
	return false
}

// InvitationStatus - статус приглашения в организацию
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "PENDING"
	InvitationStatusAccepted InvitationStatus = "ACCEPTED"
	InvitationStatusRevoked  InvitationStatus = "REVOKED"
	InvitationStatusExpired  InvitationStatus = "EXPIRED"
)

// BugStatus - статус бага
type BugStatus string

const (
	BugStatusOpen       BugStatus = "OPEN"
	BugStatusInProgress BugStatus = "IN_PROGRESS"
	BugStatusResolved   BugStatus = "RESOLVED"
	BugStatusClosed     BugStatus = "CLOSED"
	BugStatusReopened   BugStatus = "REOPENED"
)

// BugSeverity - серьёзность бага
type BugSeverity string

const (
	BugSeverityTrivial  BugSeverity = "TRIVIAL"
	BugSeverityMinor    BugSeverity = "MINOR"
	BugSeverityMajor    BugSeverity = "MAJOR"
	BugSeverityCritical BugSeverity = "CRITICAL"
	BugSeverityBlocker  BugSeverity = "BLOCKER"
)

// ValidBugSeverity проверяет, что строка является известной серьёзностью
func ValidBugSeverity(s BugSeverity) bool {
	switch s {
	case BugSeverityTrivial, BugSeverityMinor, BugSeverityMajor, BugSeverityCritical, BugSeverityBlocker:
		return true
	}
	return false
}

// Priority - приоритет (общий для багов и тест-кейсов)
type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

// ValidPriority проверяет, что строка является известным приоритетом
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// TestCaseStatus - статус тест-кейса
type TestCaseStatus string

const (
	TestCaseStatusDraft      TestCaseStatus = "DRAFT"
	TestCaseStatusReady      TestCaseStatus = "READY"
	TestCaseStatusInReview   TestCaseStatus = "IN_REVIEW"
	TestCaseStatusApproved   TestCaseStatus = "APPROVED"
	TestCaseStatusDeprecated TestCaseStatus = "DEPRECATED"
)

// IntegrationProvider - внешний сервис интеграции
type IntegrationProvider string

const (
	ProviderJira        IntegrationProvider = "jira"
	ProviderTrello      IntegrationProvider = "trello"
	ProviderSlack       IntegrationProvider = "slack"
	ProviderTeams       IntegrationProvider = "teams"
	ProviderAzureDevOps IntegrationProvider = "azure_devops"
)

// IsIssueTracker сообщает, умеет ли провайдер хранить задачи (а не только чат)
func (p IntegrationProvider) IsIssueTracker() bool {
	return p == ProviderJira || p == ProviderTrello || p == ProviderAzureDevOps
}

// NotificationKind - тип уведомления
type NotificationKind string

const (
	NotificationBugCreated       NotificationKind = "bug_created"
	NotificationBugAssigned      NotificationKind = "bug_assigned"
	NotificationBugStatusChanged NotificationKind = "bug_status_changed"
	NotificationCommentAdded     NotificationKind = "comment_added"
	NotificationMention          NotificationKind = "mention"
	NotificationInvitation       NotificationKind = "invitation"
)

// Organization - domain модель организации (tenant)
type Organization struct {
	ID        string
	Name      string
	Slug      string
	Members   []Member
	CreatedAt *time.Time
}

// Member - участник организации
type Member struct {
	OrgID    string
	UserID   string
	Username string
	Email    string
	Role     OrgRole
	IsActive bool
}

// Invitation - приглашение в организацию по email
type Invitation struct {
	ID        string
	OrgID     string
	Email     string
	Role      OrgRole
	Token     string
	InvitedBy string
	Status    InvitationStatus
	ExpiresAt time.Time
	CreatedAt *time.Time
}

// Project - проект внутри организации
type Project struct {
	ID          string
	OrgID       string
	Name        string
	Key         string
	Description string
	Archived    bool
	CreatedAt   *time.Time
}

// Module - функциональный модуль проекта, группирует тест-кейсы и баги
type Module struct {
	ID          string
	ProjectID   string
	Name        string
	Description string
	SortOrder   int
}

// TestStep - один шаг тест-кейса
type TestStep struct {
	Action   string `json:"action"`
	Expected string `json:"expected"`
}

// TestCase - domain модель тест-кейса
type TestCase struct {
	ID             string
	ModuleID       string
	Title          string
	Description    string
	Steps          []TestStep
	ExpectedResult string
	Priority       Priority
	Status         TestCaseStatus
	CreatedAt      *time.Time
	UpdatedAt      *time.Time
}

// Bug - domain модель бага
type Bug struct {
	ID            string
	ProjectID     string
	ModuleID      *string
	TestCaseID    *string
	Title         string
	Description   string
	Severity      BugSeverity
	Priority      Priority
	Status        BugStatus
	ReportedBy    string
	AssignedTo    *string
	ExternalLinks []BugExternalLink
	CreatedAt     *time.Time
	UpdatedAt     *time.Time
	ResolvedAt    *time.Time
}

// BugDetail - баг вместе со скриншотами и комментариями для карточки бага
type BugDetail struct {
	Bug
	Screenshots []Screenshot
	Comments    []Comment
}

// BugShort - краткая информация о баге для списков
type BugShort struct {
	ID         string
	Title      string
	Severity   BugSeverity
	Priority   Priority
	Status     BugStatus
	AssignedTo *string
}

// BugExternalLink - связь бага с задачей во внешнем трекере
type BugExternalLink struct {
	BugID       string
	Provider    IntegrationProvider
	ExternalID  string
	ExternalKey string
	ExternalURL string
}

// Screenshot - метаданные скриншота, сам файл лежит в объектном хранилище
type Screenshot struct {
	ID          string
	BugID       string
	FileName    string
	ObjectKey   string
	ContentType string
	Width       int
	Height      int
	UploadedBy  string
	Annotations []Annotation
	CreatedAt   *time.Time
}

// Annotation - нарисованная фигура на скриншоте, координаты нормализованы в [0,1]
type Annotation struct {
	ID           string
	ScreenshotID string
	Kind         AnnotationKind
	Geometry     Geometry
	Color        string
	StrokeWidth  float64
	CreatedBy    string
}

// Comment - комментарий к багу
type Comment struct {
	ID        string
	BugID     string
	AuthorID  string
	Body      string
	CreatedAt *time.Time
	EditedAt  *time.Time
}

// Notification - уведомление для участника организации
type Notification struct {
	ID          string
	OrgID       string
	RecipientID string
	Kind        NotificationKind
	Payload     map[string]any
	Read        bool
	CreatedAt   *time.Time
}

// Integration - настроенная интеграция организации с внешним сервисом
type Integration struct {
	ID           string
	OrgID        string
	Provider     IntegrationProvider
	Credentials  IntegrationCredentials
	FieldMapping FieldMapping
	Active       bool
	CreatedAt    *time.Time
}

// IntegrationCredentials - реквизиты доступа к внешнему сервису.
// Для чат-провайдеров используется только WebhookURL.
type IntegrationCredentials struct {
	BaseURL    string `json:"base_url,omitempty"`
	Email      string `json:"email,omitempty"`
	Token      string `json:"token,omitempty"`
	APIKey     string `json:"api_key,omitempty"`
	ProjectRef string `json:"project_ref,omitempty"`
	WebhookURL string `json:"webhook_url,omitempty"`
}

// FieldMapping - соответствие статусов/приоритетов BugLens значениям внешнего трекера
type FieldMapping struct {
	Status   map[string]string `json:"status,omitempty"`
	Severity map[string]string `json:"severity,omitempty"`
	Priority map[string]string `json:"priority,omitempty"`
}

// RemoteStatusFor возвращает статус внешнего трекера для локального статуса бага
func (m FieldMapping) RemoteStatusFor(status BugStatus) (string, bool) {
	remote, ok := m.Status[string(status)]
	return remote, ok
}

// LocalStatusFor выполняет обратный поиск: локальный статус по статусу внешнего трекера
func (m FieldMapping) LocalStatusFor(remote string) (BugStatus, bool) {
	for local, r := range m.Status {
		if r == remote {
			return BugStatus(local), true
		}
	}
	return "", false
}

// ExportEntity - что выгружаем
type ExportEntity string

const (
	ExportEntityBugs      ExportEntity = "bugs"
	ExportEntityTestCases ExportEntity = "test_cases"
)

// ExportFormat - формат выгрузки
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatJSON ExportFormat = "json"
)

// ExportJobStatus - статус задачи выгрузки
type ExportJobStatus string

const (
	ExportJobPending ExportJobStatus = "PENDING"
	ExportJobRunning ExportJobStatus = "RUNNING"
	ExportJobDone    ExportJobStatus = "DONE"
	ExportJobFailed  ExportJobStatus = "FAILED"
)

// ExportJob - задача выгрузки, живёт только в памяти процесса
type ExportJob struct {
	ID          string
	ProjectID   string
	Entity      ExportEntity
	Format      ExportFormat
	Status      ExportJobStatus
	FileName    string
	ContentType string
	Data        []byte
	Error       string
	StartedBy   string
	CreatedAt   time.Time
	FinishedAt  *time.Time
}
