package gorm

import (
	"time"

	"gorm.io/datatypes"
)

// Organization - модель БД для организации
type Organization struct {
	OrgID     string    `gorm:"column:org_id;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Slug      string    `gorm:"column:slug;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	Members   []Member  `gorm:"foreignKey:OrgID;references:OrgID"`
}

func (Organization) TableName() string {
	return "organizations"
}

// Member - модель БД для участника организации
type Member struct {
	OrgID    string `gorm:"column:org_id;primaryKey"`
	UserID   string `gorm:"column:user_id;primaryKey"`
	Username string `gorm:"column:username;not null"`
	Email    string `gorm:"column:email;not null"`
	Role     string `gorm:"column:role;not null;default:member"`
	IsActive bool   `gorm:"column:is_active;not null;default:true"`
}

func (Member) TableName() string {
	return "members"
}

// Invitation - модель БД для приглашения
type Invitation struct {
	InvitationID string    `gorm:"column:invitation_id;primaryKey"`
	OrgID        string    `gorm:"column:org_id;not null;index"`
	Email        string    `gorm:"column:email;not null"`
	Role         string    `gorm:"column:role;not null"`
	Token        string    `gorm:"column:token;not null;uniqueIndex"`
	InvitedBy    string    `gorm:"column:invited_by;not null"`
	Status       string    `gorm:"column:status;not null;default:PENDING"`
	ExpiresAt    time.Time `gorm:"column:expires_at;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

func (Invitation) TableName() string {
	return "invitations"
}

// Project - модель БД для проекта
type Project struct {
	ProjectID   string    `gorm:"column:project_id;primaryKey"`
	OrgID       string    `gorm:"column:org_id;not null;uniqueIndex:idx_projects_org_key"`
	Name        string    `gorm:"column:name;not null"`
	Key         string    `gorm:"column:key;not null;uniqueIndex:idx_projects_org_key"`
	Description string    `gorm:"column:description"`
	Archived    bool      `gorm:"column:archived;not null;default:false"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

func (Project) TableName() string {
	return "projects"
}

// Module - модель БД для модуля проекта
type Module struct {
	ModuleID    string `gorm:"column:module_id;primaryKey"`
	ProjectID   string `gorm:"column:project_id;not null;index"`
	Name        string `gorm:"column:name;not null"`
	Description string `gorm:"column:description"`
	SortOrder   int    `gorm:"column:sort_order;not null;default:0"`
}

func (Module) TableName() string {
	return "modules"
}

// TestCase - модель БД для тест-кейса, шаги хранятся как JSONB
type TestCase struct {
	TestCaseID     string         `gorm:"column:test_case_id;primaryKey"`
	ModuleID       string         `gorm:"column:module_id;not null;index"`
	Title          string         `gorm:"column:title;not null"`
	Description    string         `gorm:"column:description"`
	Steps          datatypes.JSON `gorm:"column:steps"`
	ExpectedResult string         `gorm:"column:expected_result"`
	Priority       string         `gorm:"column:priority;not null;default:MEDIUM"`
	Status         string         `gorm:"column:status;not null;default:DRAFT"`
	CreatedAt      time.Time      `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP"`
}

func (TestCase) TableName() string {
	return "test_cases"
}

// Bug - модель БД для бага
type Bug struct {
	BugID       string     `gorm:"column:bug_id;primaryKey"`
	ProjectID   string     `gorm:"column:project_id;not null;index"`
	ModuleID    *string    `gorm:"column:module_id"`
	TestCaseID  *string    `gorm:"column:test_case_id"`
	Title       string     `gorm:"column:title;not null"`
	Description string     `gorm:"column:description"`
	Severity    string     `gorm:"column:severity;not null"`
	Priority    string     `gorm:"column:priority;not null"`
	Status      string     `gorm:"column:status;not null;default:OPEN"`
	ReportedBy  string     `gorm:"column:reported_by;not null"`
	AssignedTo  *string    `gorm:"column:assigned_to"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP"`
	ResolvedAt  *time.Time `gorm:"column:resolved_at"`
}

func (Bug) TableName() string {
	return "bugs"
}

// BugExternalLink - модель БД для связи бага с внешним трекером.
// Уникальный индекс по (provider, external_id) даёт вебхукам indexed lookup.
type BugExternalLink struct {
	BugID       string `gorm:"column:bug_id;primaryKey"`
	Provider    string `gorm:"column:provider;primaryKey;uniqueIndex:idx_external_links_provider_id"`
	ExternalID  string `gorm:"column:external_id;not null;uniqueIndex:idx_external_links_provider_id"`
	ExternalKey string `gorm:"column:external_key"`
	ExternalURL string `gorm:"column:external_url"`
}

func (BugExternalLink) TableName() string {
	return "bug_external_links"
}

// Screenshot - модель БД для метаданных скриншота
type Screenshot struct {
	ScreenshotID string    `gorm:"column:screenshot_id;primaryKey"`
	BugID        string    `gorm:"column:bug_id;not null;index"`
	FileName     string    `gorm:"column:file_name;not null"`
	ObjectKey    string    `gorm:"column:object_key;not null"`
	ContentType  string    `gorm:"column:content_type;not null"`
	Width        int       `gorm:"column:width;not null"`
	Height       int       `gorm:"column:height;not null"`
	UploadedBy   string    `gorm:"column:uploaded_by;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

func (Screenshot) TableName() string {
	return "screenshots"
}

// Annotation - модель БД для аннотации, геометрия хранится как JSONB
type Annotation struct {
	AnnotationID string         `gorm:"column:annotation_id;primaryKey"`
	ScreenshotID string         `gorm:"column:screenshot_id;not null;index"`
	Kind         string         `gorm:"column:kind;not null"`
	Geometry     datatypes.JSON `gorm:"column:geometry;not null"`
	Color        string         `gorm:"column:color;not null;default:#ff0000"`
	StrokeWidth  float64        `gorm:"column:stroke_width;not null;default:2"`
	CreatedBy    string         `gorm:"column:created_by;not null"`
}

func (Annotation) TableName() string {
	return "annotations"
}

// Comment - модель БД для комментария
type Comment struct {
	CommentID string     `gorm:"column:comment_id;primaryKey"`
	BugID     string     `gorm:"column:bug_id;not null;index"`
	AuthorID  string     `gorm:"column:author_id;not null"`
	Body      string     `gorm:"column:body;not null"`
	CreatedAt time.Time  `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	EditedAt  *time.Time `gorm:"column:edited_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// Notification - модель БД для уведомления
type Notification struct {
	NotificationID string         `gorm:"column:notification_id;primaryKey"`
	OrgID          string         `gorm:"column:org_id;not null"`
	RecipientID    string         `gorm:"column:recipient_id;not null;index"`
	Kind           string         `gorm:"column:kind;not null"`
	Payload        datatypes.JSON `gorm:"column:payload"`
	Read           bool           `gorm:"column:read;not null;default:false"`
	CreatedAt      time.Time      `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

func (Notification) TableName() string {
	return "notifications"
}

// Integration - модель БД для интеграции, реквизиты и маппинг как JSONB
type Integration struct {
	IntegrationID string         `gorm:"column:integration_id;primaryKey"`
	OrgID         string         `gorm:"column:org_id;not null;uniqueIndex:idx_integrations_org_provider"`
	Provider      string         `gorm:"column:provider;not null;uniqueIndex:idx_integrations_org_provider"`
	Credentials   datatypes.JSON `gorm:"column:credentials;not null"`
	FieldMapping  datatypes.JSON `gorm:"column:field_mapping"`
	Active        bool           `gorm:"column:active;not null;default:true"`
	CreatedAt     time.Time      `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

func (Integration) TableName() string {
	return "integrations"
}
