package service_test

import (
	"context"
	"errors"
	"testing"

	"buglens/internal/domain"
	"buglens/internal/integrations"
	"buglens/internal/mocks"
	"buglens/internal/service"
	"buglens/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, txmgr storage.TxManager) *service.Service {
	return service.New(txmgr, mocks.NewObjectStore(t), integrations.NewRegistryWith(nil, nil))
}

func TestCreateBug_Success(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockProjectRepo := mocks.NewProjectRepository(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)
	mockBugRepo := mocks.NewBugRepository(t)
	mockIntegRepo := mocks.NewIntegrationRepository(t)

	svc := newTestService(t, mockTxMgr)

	input := &domain.CreateBugInput{
		ProjectID:   "proj-1",
		Title:       "Login button unresponsive",
		Description: "Nothing happens on click",
		Severity:    domain.BugSeverityMajor,
		Priority:    domain.PriorityHigh,
		ReportedBy:  "user-1",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("ProjectRepo").Return(mockProjectRepo)
			mockTx.On("OrgRepo").Return(mockOrgRepo)
			mockTx.On("BugRepo").Return(mockBugRepo)
			mockTx.On("IntegrationRepo").Return(mockIntegRepo)

			mockProjectRepo.On("GetByID", mock.Anything, "proj-1").
				Return(&domain.Project{ID: "proj-1", OrgID: "org-1"}, nil)

			// Репортёр - активный участник организации
			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "user-1").
				Return(&domain.Member{OrgID: "org-1", UserID: "user-1", Role: domain.OrgRoleMember, IsActive: true}, nil)

			mockBugRepo.On("Create", mock.Anything, mock.MatchedBy(func(bug *domain.Bug) bool {
				return bug.ProjectID == "proj-1" &&
					bug.Status == domain.BugStatusOpen &&
					bug.ReportedBy == "user-1" &&
					bug.ID != ""
			})).Return(nil)

			mockIntegRepo.On("ListActiveChat", mock.Anything, "org-1").
				Return([]domain.Integration{}, nil)

			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	bug, err := svc.CreateBug(context.Background(), input)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, bug)
	assert.Equal(t, domain.BugStatusOpen, bug.Status)
	assert.Equal(t, "user-1", bug.ReportedBy)
	assert.Nil(t, bug.AssignedTo)
}

func TestCreateBug_ModuleFromAnotherProject(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockProjectRepo := mocks.NewProjectRepository(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)

	svc := newTestService(t, mockTxMgr)

	moduleID := "mod-alien"
	input := &domain.CreateBugInput{
		ProjectID:  "proj-1",
		ModuleID:   &moduleID,
		Title:      "Crash",
		Severity:   domain.BugSeverityCritical,
		Priority:   domain.PriorityCritical,
		ReportedBy: "user-1",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("ProjectRepo").Return(mockProjectRepo)
			mockTx.On("OrgRepo").Return(mockOrgRepo)

			mockProjectRepo.On("GetByID", mock.Anything, "proj-1").
				Return(&domain.Project{ID: "proj-1", OrgID: "org-1"}, nil)
			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "user-1").
				Return(&domain.Member{OrgID: "org-1", UserID: "user-1", Role: domain.OrgRoleMember, IsActive: true}, nil)

			// Модуль принадлежит другому проекту
			mockProjectRepo.On("GetModule", mock.Anything, "mod-alien").
				Return(&domain.Module{ID: "mod-alien", ProjectID: "proj-other"}, nil)

			fn(context.Background(), mockTx)
		}).Return(domain.ErrInvalidInput)

	// Act
	bug, err := svc.CreateBug(context.Background(), input)

	// Assert
	require.Error(t, err)
	assert.Nil(t, bug)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestCreateBug_ViewerForbidden(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockProjectRepo := mocks.NewProjectRepository(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)

	svc := newTestService(t, mockTxMgr)

	input := &domain.CreateBugInput{
		ProjectID:  "proj-1",
		Title:      "Typo",
		Severity:   domain.BugSeverityTrivial,
		Priority:   domain.PriorityLow,
		ReportedBy: "viewer-1",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("ProjectRepo").Return(mockProjectRepo)
			mockTx.On("OrgRepo").Return(mockOrgRepo)

			mockProjectRepo.On("GetByID", mock.Anything, "proj-1").
				Return(&domain.Project{ID: "proj-1", OrgID: "org-1"}, nil)

			// viewer не может создавать баги
			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "viewer-1").
				Return(&domain.Member{OrgID: "org-1", UserID: "viewer-1", Role: domain.OrgRoleViewer, IsActive: true}, nil)

			fn(context.Background(), mockTx)
		}).Return(domain.ErrForbidden)

	// Act
	bug, err := svc.CreateBug(context.Background(), input)

	// Assert
	require.Error(t, err)
	assert.Nil(t, bug)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

func TestSetBugStatus_ResolvedSetsResolvedAt(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockProjectRepo := mocks.NewProjectRepository(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)
	mockBugRepo := mocks.NewBugRepository(t)
	mockNotifRepo := mocks.NewNotificationRepository(t)
	mockIntegRepo := mocks.NewIntegrationRepository(t)

	svc := newTestService(t, mockTxMgr)

	assignee := "user-2"
	existing := &domain.Bug{
		ID:         "bug-1",
		ProjectID:  "proj-1",
		Title:      "Broken layout",
		Status:     domain.BugStatusInProgress,
		ReportedBy: "user-1",
		AssignedTo: &assignee,
	}

	input := &domain.SetBugStatusInput{
		BugID:   "bug-1",
		Status:  domain.BugStatusResolved,
		ActorID: "user-2",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("BugRepo").Return(mockBugRepo)
			mockTx.On("ProjectRepo").Return(mockProjectRepo)
			mockTx.On("OrgRepo").Return(mockOrgRepo)
			mockTx.On("NotificationRepo").Return(mockNotifRepo)
			mockTx.On("IntegrationRepo").Return(mockIntegRepo)

			mockBugRepo.On("GetByID", mock.Anything, "bug-1").Return(existing, nil)
			mockProjectRepo.On("GetByID", mock.Anything, "proj-1").
				Return(&domain.Project{ID: "proj-1", OrgID: "org-1"}, nil)
			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "user-2").
				Return(&domain.Member{OrgID: "org-1", UserID: "user-2", Role: domain.OrgRoleMember, IsActive: true}, nil)

			mockBugRepo.On("Update", mock.Anything, mock.MatchedBy(func(bug *domain.Bug) bool {
				return bug.Status == domain.BugStatusResolved && bug.ResolvedAt != nil
			})).Return(nil)

			// Актор-исполнитель исключается, уведомление только репортёру
			mockNotifRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
				return n.RecipientID == "user-1" && n.Kind == domain.NotificationBugStatusChanged
			})).Return(nil)

			mockIntegRepo.On("ListActiveChat", mock.Anything, "org-1").
				Return([]domain.Integration{}, nil)

			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	bug, err := svc.SetBugStatus(context.Background(), input)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, bug)
	assert.Equal(t, domain.BugStatusResolved, bug.Status)
	assert.NotNil(t, bug.ResolvedAt)
}

func TestSetBugStatus_InvalidTransition(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockProjectRepo := mocks.NewProjectRepository(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)
	mockBugRepo := mocks.NewBugRepository(t)

	svc := newTestService(t, mockTxMgr)

	existing := &domain.Bug{
		ID:         "bug-1",
		ProjectID:  "proj-1",
		Title:      "Old bug",
		Status:     domain.BugStatusClosed,
		ReportedBy: "user-1",
	}

	input := &domain.SetBugStatusInput{
		BugID:   "bug-1",
		Status:  domain.BugStatusResolved,
		ActorID: "user-1",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("BugRepo").Return(mockBugRepo)
			mockTx.On("ProjectRepo").Return(mockProjectRepo)
			mockTx.On("OrgRepo").Return(mockOrgRepo)

			mockBugRepo.On("GetByID", mock.Anything, "bug-1").Return(existing, nil)
			mockProjectRepo.On("GetByID", mock.Anything, "proj-1").
				Return(&domain.Project{ID: "proj-1", OrgID: "org-1"}, nil)
			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "user-1").
				Return(&domain.Member{OrgID: "org-1", UserID: "user-1", Role: domain.OrgRoleAdmin, IsActive: true}, nil)

			// CLOSED -> RESOLVED запрещён, Update вызываться не должен
			fn(context.Background(), mockTx)
		}).Return(domain.ErrInvalidTransition)

	// Act
	bug, err := svc.SetBugStatus(context.Background(), input)

	// Assert
	require.Error(t, err)
	assert.Nil(t, bug)
	assert.True(t, errors.Is(err, domain.ErrInvalidTransition))
	mockBugRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSetBugStatus_UnknownStatus(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)

	svc := newTestService(t, mockTxMgr)

	input := &domain.SetBugStatusInput{
		BugID:   "bug-1",
		Status:  "SLEEPING",
		ActorID: "user-1",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)
			fn(context.Background(), mockTx)
		}).Return(domain.ErrInvalidInput)

	// Act
	bug, err := svc.SetBugStatus(context.Background(), input)

	// Assert
	require.Error(t, err)
	assert.Nil(t, bug)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestAssignBug_NotifiesAssignee(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockProjectRepo := mocks.NewProjectRepository(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)
	mockBugRepo := mocks.NewBugRepository(t)
	mockNotifRepo := mocks.NewNotificationRepository(t)

	svc := newTestService(t, mockTxMgr)

	assignee := "user-2"
	existing := &domain.Bug{
		ID:         "bug-1",
		ProjectID:  "proj-1",
		Title:      "Broken layout",
		Status:     domain.BugStatusOpen,
		ReportedBy: "user-1",
	}

	input := &domain.AssignBugInput{
		BugID:      "bug-1",
		AssigneeID: &assignee,
		ActorID:    "user-1",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("BugRepo").Return(mockBugRepo)
			mockTx.On("ProjectRepo").Return(mockProjectRepo)
			mockTx.On("OrgRepo").Return(mockOrgRepo)
			mockTx.On("NotificationRepo").Return(mockNotifRepo)

			mockBugRepo.On("GetByID", mock.Anything, "bug-1").Return(existing, nil)
			mockProjectRepo.On("GetByID", mock.Anything, "proj-1").
				Return(&domain.Project{ID: "proj-1", OrgID: "org-1"}, nil)
			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "user-1").
				Return(&domain.Member{OrgID: "org-1", UserID: "user-1", Role: domain.OrgRoleMember, IsActive: true}, nil)
			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "user-2").
				Return(&domain.Member{OrgID: "org-1", UserID: "user-2", Role: domain.OrgRoleMember, IsActive: true}, nil)

			mockBugRepo.On("Update", mock.Anything, mock.MatchedBy(func(bug *domain.Bug) bool {
				return bug.AssignedTo != nil && *bug.AssignedTo == "user-2"
			})).Return(nil)

			mockNotifRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
				return n.RecipientID == "user-2" && n.Kind == domain.NotificationBugAssigned
			})).Return(nil)

			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	bug, err := svc.AssignBug(context.Background(), input)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, bug)
	require.NotNil(t, bug.AssignedTo)
	assert.Equal(t, "user-2", *bug.AssignedTo)
}

func TestAssignBug_InactiveAssignee(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockProjectRepo := mocks.NewProjectRepository(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)
	mockBugRepo := mocks.NewBugRepository(t)

	svc := newTestService(t, mockTxMgr)

	assignee := "user-gone"
	existing := &domain.Bug{
		ID:         "bug-1",
		ProjectID:  "proj-1",
		Status:     domain.BugStatusOpen,
		ReportedBy: "user-1",
	}

	input := &domain.AssignBugInput{
		BugID:      "bug-1",
		AssigneeID: &assignee,
		ActorID:    "user-1",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("BugRepo").Return(mockBugRepo)
			mockTx.On("ProjectRepo").Return(mockProjectRepo)
			mockTx.On("OrgRepo").Return(mockOrgRepo)

			mockBugRepo.On("GetByID", mock.Anything, "bug-1").Return(existing, nil)
			mockProjectRepo.On("GetByID", mock.Anything, "proj-1").
				Return(&domain.Project{ID: "proj-1", OrgID: "org-1"}, nil)
			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "user-1").
				Return(&domain.Member{OrgID: "org-1", UserID: "user-1", Role: domain.OrgRoleMember, IsActive: true}, nil)

			// Деактивированного участника назначать нельзя
			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "user-gone").
				Return(&domain.Member{OrgID: "org-1", UserID: "user-gone", Role: domain.OrgRoleMember, IsActive: false}, nil)

			fn(context.Background(), mockTx)
		}).Return(domain.ErrInvalidInput)

	// Act
	bug, err := svc.AssignBug(context.Background(), input)

	// Assert
	require.Error(t, err)
	assert.Nil(t, bug)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	mockBugRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestGetBug_NotFound(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockBugRepo := mocks.NewBugRepository(t)

	svc := newTestService(t, mockTxMgr)

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("BugRepo").Return(mockBugRepo)
			mockBugRepo.On("GetByID", mock.Anything, "missing").
				Return(nil, storage.ErrNotFound)

			fn(context.Background(), mockTx)
		}).Return(storage.ErrNotFound)

	// Act
	bug, err := svc.GetBug(context.Background(), "missing", "user-1")

	// Assert
	require.Error(t, err)
	assert.Nil(t, bug)
	assert.True(t, errors.Is(err, domain.ErrResourceNotFound))
}

func TestGetBug_IncludesScreenshotsAndComments(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockBugRepo := mocks.NewBugRepository(t)
	mockProjectRepo := mocks.NewProjectRepository(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)
	mockShotRepo := mocks.NewScreenshotRepository(t)
	mockCommentRepo := mocks.NewCommentRepository(t)

	svc := newTestService(t, mockTxMgr)

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("BugRepo").Return(mockBugRepo)
			mockTx.On("ProjectRepo").Return(mockProjectRepo)
			mockTx.On("OrgRepo").Return(mockOrgRepo)
			mockTx.On("ScreenshotRepo").Return(mockShotRepo)
			mockTx.On("CommentRepo").Return(mockCommentRepo)

			mockBugRepo.On("GetByID", mock.Anything, "bug-1").
				Return(&domain.Bug{ID: "bug-1", ProjectID: "proj-1", Title: "Broken layout"}, nil)
			mockProjectRepo.On("GetByID", mock.Anything, "proj-1").
				Return(&domain.Project{ID: "proj-1", OrgID: "org-1"}, nil)
			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "user-1").
				Return(&domain.Member{OrgID: "org-1", UserID: "user-1", Role: domain.OrgRoleViewer, IsActive: true}, nil)
			mockShotRepo.On("ListByBug", mock.Anything, "bug-1").
				Return([]domain.Screenshot{{ID: "shot-1", BugID: "bug-1"}}, nil)
			mockCommentRepo.On("ListByBug", mock.Anything, "bug-1").
				Return([]domain.Comment{{ID: "comment-1", BugID: "bug-1"}, {ID: "comment-2", BugID: "bug-1"}}, nil)

			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	detail, err := svc.GetBug(context.Background(), "bug-1", "user-1")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, "bug-1", detail.ID)
	require.Len(t, detail.Screenshots, 1)
	assert.Equal(t, "shot-1", detail.Screenshots[0].ID)
	require.Len(t, detail.Comments, 2)
	assert.Equal(t, "comment-1", detail.Comments[0].ID)
}

func TestCreateBug_UnknownSeverityRejected(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockBugRepo := mocks.NewBugRepository(t)

	svc := newTestService(t, mockTxMgr)

	input := &domain.CreateBugInput{
		ProjectID:  "proj-1",
		Title:      "Broken layout",
		Severity:   domain.BugSeverity("catastrophic"),
		Priority:   domain.PriorityHigh,
		ReportedBy: "user-1",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)
			fn(context.Background(), mockTx)
		}).Return(domain.ErrInvalidInput)

	// Act
	bug, err := svc.CreateBug(context.Background(), input)

	// Assert
	require.Error(t, err)
	assert.Nil(t, bug)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	mockBugRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
