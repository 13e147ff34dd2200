package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"buglens/internal/api/middleware"
	"buglens/internal/domain"
)

const (
	OrgPathRoute          = "/orgs"
	ProjectPathRoute      = "/projects"
	ModulePathRoute       = "/modules"
	TestCasePathRoute     = "/testCases"
	BugPathRoute          = "/bugs"
	ScreenshotPathRoute   = "/screenshots"
	CommentPathRoute      = "/comments"
	NotificationPathRoute = "/notifications"
	IntegrationPathRoute  = "/integrations"
	InvitationPathRoute   = "/invitations"
	WebhookPathRoute      = "/webhooks"
	ExportPathRoute       = "/exports"
)

type Handler struct {
	service domain.TrackerService
}

func NewHandler(service domain.TrackerService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.LoggerMiddleware(),
		middleware.RecoveryMiddleware(),
		middleware.CORSMiddleware(),
		middleware.MetricsMiddleware(),
	)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Вебхуки внешних трекеров аутентифицируются не bearer токеном
	webhookGroup := r.Group(WebhookPathRoute)
	{
		webhookGroup.POST("/jira", h.JiraWebhook)
		webhookGroup.POST("/trello", h.TrelloWebhook)
	}

	authed := r.Group("", middleware.AuthMiddleware())

	orgGroup := authed.Group(OrgPathRoute)
	{
		orgGroup.POST("", middleware.RequireUser(), h.CreateOrganization)
		orgGroup.GET("/:orgId", middleware.RequireUser(), h.GetOrganization)
		orgGroup.POST("/:orgId/invitations", middleware.RequireUser(), h.InviteMember)
		orgGroup.POST("/:orgId/invitations/:invitationId/revoke", middleware.RequireUser(), h.RevokeInvitation)
		orgGroup.PATCH("/:orgId/members/:userId/role", middleware.RequireUser(), h.ChangeMemberRole)
		orgGroup.POST("/:orgId/members/:userId/deactivate", middleware.RequireAdmin(), h.DeactivateMember)
		orgGroup.POST("/:orgId/projects", middleware.RequireUser(), h.CreateProject)
		orgGroup.GET("/:orgId/projects", middleware.RequireUser(), h.ListProjects)
		orgGroup.POST("/:orgId/integrations", middleware.RequireUser(), h.ConfigureIntegration)
		orgGroup.GET("/:orgId/integrations", middleware.RequireUser(), h.ListIntegrations)
	}

	invitationGroup := authed.Group(InvitationPathRoute)
	{
		invitationGroup.POST("/accept", middleware.RequireUser(), h.AcceptInvitation)
	}

	projectGroup := authed.Group(ProjectPathRoute, middleware.RequireUser())
	{
		projectGroup.PATCH("/:projectId", h.UpdateProject)
		projectGroup.POST("/:projectId/archive", h.ArchiveProject)
		projectGroup.POST("/:projectId/modules", h.CreateModule)
		projectGroup.GET("/:projectId/modules", h.ListModules)
		projectGroup.POST("/:projectId/bugs", h.CreateBug)
		projectGroup.GET("/:projectId/bugs", h.ListBugs)
		projectGroup.POST("/:projectId/export", h.StartExport)
	}

	moduleGroup := authed.Group(ModulePathRoute, middleware.RequireUser())
	{
		moduleGroup.PATCH("/:moduleId", h.UpdateModule)
		moduleGroup.DELETE("/:moduleId", h.DeleteModule)
		moduleGroup.POST("/:moduleId/testCases", h.CreateTestCase)
		moduleGroup.GET("/:moduleId/testCases", h.ListTestCases)
	}

	testCaseGroup := authed.Group(TestCasePathRoute, middleware.RequireUser())
	{
		testCaseGroup.GET("/:testCaseId", h.GetTestCase)
		testCaseGroup.PATCH("/:testCaseId", h.UpdateTestCase)
		testCaseGroup.POST("/:testCaseId/status", h.SetTestCaseStatus)
		testCaseGroup.DELETE("/:testCaseId", h.DeleteTestCase)
	}

	bugGroup := authed.Group(BugPathRoute, middleware.RequireUser())
	{
		bugGroup.GET("/:bugId", h.GetBug)
		bugGroup.PATCH("/:bugId", h.UpdateBug)
		bugGroup.POST("/:bugId/assign", h.AssignBug)
		bugGroup.POST("/:bugId/status", h.SetBugStatus)
		bugGroup.POST("/:bugId/screenshots", h.UploadScreenshot)
		bugGroup.POST("/:bugId/comments", h.AddComment)
		bugGroup.GET("/:bugId/comments", h.ListComments)
		bugGroup.POST("/:bugId/push", h.PushBugToTracker)
	}

	screenshotGroup := authed.Group(ScreenshotPathRoute, middleware.RequireUser())
	{
		screenshotGroup.GET("/:screenshotId", h.GetScreenshot)
		screenshotGroup.DELETE("/:screenshotId", h.DeleteScreenshot)
		screenshotGroup.GET("/:screenshotId/download", h.ScreenshotDownloadURL)
		screenshotGroup.PUT("/:screenshotId/annotations", h.ReplaceAnnotations)
	}

	commentGroup := authed.Group(CommentPathRoute, middleware.RequireUser())
	{
		commentGroup.PATCH("/:commentId", h.EditComment)
		commentGroup.DELETE("/:commentId", h.DeleteComment)
	}

	notificationGroup := authed.Group(NotificationPathRoute, middleware.RequireUser())
	{
		notificationGroup.GET("", h.ListNotifications)
		notificationGroup.POST("/:notificationId/read", h.MarkNotificationRead)
		notificationGroup.POST("/readAll", h.MarkAllNotificationsRead)
	}

	integrationGroup := authed.Group(IntegrationPathRoute, middleware.RequireUser())
	{
		integrationGroup.POST("/:integrationId/deactivate", h.DeactivateIntegration)
	}

	exportGroup := authed.Group(ExportPathRoute, middleware.RequireUser())
	{
		exportGroup.GET("/:jobId", h.GetExportJob)
		exportGroup.GET("/:jobId/download", h.DownloadExport)
	}

	return r
}
