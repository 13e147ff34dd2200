package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Bug Metrics
var (
	// BugCreatedTotal - количество созданных багов
	BugCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bug_created_total",
		Help: "Total number of bugs created",
	})

	// BugStatusTransitionsTotal - переходы статусов багов
	BugStatusTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bug_status_transitions_total",
		Help: "Total number of bug status transitions",
	}, []string{"from", "to"})

	// InvalidTransitionTotal - отклонённые переходы статусов
	InvalidTransitionTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "invalid_transition_total",
		Help: "Total number of rejected bug status transitions",
	})

	// BugOpenCount - текущее количество открытых багов по проектам
	BugOpenCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "bug_open_count",
		Help: "Current number of open bugs by project",
	}, []string{"project_id"})
)

// Notification Metrics
var (
	// NotificationCreatedTotal - созданные уведомления по типам
	NotificationCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notification_created_total",
		Help: "Total number of notifications created",
	}, []string{"kind"})

	// ChatDeliveryTotal - доставка сообщений в Slack/Teams
	ChatDeliveryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_delivery_total",
		Help: "Total number of chat webhook deliveries",
	}, []string{"provider", "status"})
)

// Integration Metrics
var (
	// IntegrationPushTotal - создание задач во внешних трекерах
	IntegrationPushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "integration_push_total",
		Help: "Total number of issues pushed to external trackers",
	}, []string{"provider", "status"})

	// WebhookReceivedTotal - принятые вебхуки внешних трекеров
	WebhookReceivedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webhook_received_total",
		Help: "Total number of tracker webhooks received",
	}, []string{"provider"})

	// WebhookAppliedTotal - вебхуки, применившие смену статуса
	WebhookAppliedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webhook_applied_total",
		Help: "Total number of tracker webhooks that changed a bug status",
	}, []string{"provider"})
)

// Export Metrics
var (
	// ExportJobsTotal - задачи выгрузки по итоговому статусу
	ExportJobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "export_jobs_total",
		Help: "Total number of export jobs by final status",
	}, []string{"status"})

	// ExportDuration - время выполнения выгрузки
	ExportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "export_duration_seconds",
		Help:    "Duration of export job execution in seconds",
		Buckets: prometheus.DefBuckets,
	})
)

// Screenshot Metrics
var (
	// ScreenshotUploadTotal - загрузки скриншотов
	ScreenshotUploadTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "screenshot_upload_total",
		Help: "Total number of screenshot uploads",
	}, []string{"status"})

	// ScreenshotUploadBytes - размеры загружаемых скриншотов
	ScreenshotUploadBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "screenshot_upload_bytes",
		Help:    "Size of uploaded screenshots in bytes",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
	})

	// AnnotationBatchSize - размер батча при замене аннотаций
	AnnotationBatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "annotation_batch_size",
		Help:    "Number of annotations in a batch replace call",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50},
	})
)

// HTTP Metrics
var (
	// HTTPRequestsTotal - общее количество HTTP запросов
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration - время обработки запроса
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP request in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

// Database Metrics
var (
	// DBTransactionDuration - время выполнения транзакций
	DBTransactionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "db_transaction_duration_seconds",
		Help:    "Duration of database transaction in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// DBTransactionTotal - количество транзакций
	DBTransactionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "db_transaction_total",
		Help: "Total number of database transactions",
	}, []string{"status"})

	// DBConnectionPoolActive - активные соединения
	DBConnectionPoolActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_connection_pool_active",
		Help: "Number of active database connections",
	})

	// DBConnectionPoolIdle - idle соединения
	DBConnectionPoolIdle = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_connection_pool_idle",
		Help: "Number of idle database connections",
	})
)

// Service Layer Metrics
var (
	// ServiceOperationDuration - время операций сервиса
	ServiceOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "service_operation_duration_seconds",
		Help:    "Duration of service operation in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// DomainErrorsTotal - доменные ошибки
	DomainErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "domain_errors_total",
		Help: "Total number of domain errors",
	}, []string{"error_code"})
)
