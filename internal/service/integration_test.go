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

func TestConfigureIntegration_PingFails(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTracker := mocks.NewIssueTracker(t)

	registry := integrations.NewRegistryWith(
		map[domain.IntegrationProvider]integrations.IssueTracker{
			domain.ProviderJira: mockTracker,
		}, nil)
	svc := service.New(mockTxMgr, mocks.NewObjectStore(t), registry)

	input := &domain.ConfigureIntegrationInput{
		OrgID:    "org-1",
		Provider: domain.ProviderJira,
		Credentials: domain.IntegrationCredentials{
			BaseURL: "https://broken.atlassian.net",
			Email:   "qa@acme.test",
			Token:   "bad-token",
		},
		ActorID: "user-1",
	}

	// Реквизиты не проходят пробный запрос, запись не выполняется
	mockTracker.On("Ping", mock.Anything, mock.MatchedBy(func(integ *domain.Integration) bool {
		return integ.Provider == domain.ProviderJira
	})).Return(errors.New("401 unauthorized"))

	// Act
	integ, err := svc.ConfigureIntegration(context.Background(), input)

	// Assert
	require.Error(t, err)
	assert.Nil(t, integ)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	mockTxMgr.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
}

func TestConfigureIntegration_ChatSkipsPing(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)
	mockIntegRepo := mocks.NewIntegrationRepository(t)

	svc := newTestService(t, mockTxMgr)

	input := &domain.ConfigureIntegrationInput{
		OrgID:    "org-1",
		Provider: domain.ProviderSlack,
		Credentials: domain.IntegrationCredentials{
			WebhookURL: "https://hooks.slack.test/T0/B0/xyz",
		},
		ActorID: "user-1",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("OrgRepo").Return(mockOrgRepo)
			mockTx.On("IntegrationRepo").Return(mockIntegRepo)

			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "user-1").
				Return(&domain.Member{OrgID: "org-1", UserID: "user-1", Role: domain.OrgRoleOwner, IsActive: true}, nil)

			mockIntegRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(integ *domain.Integration) bool {
				return integ.Provider == domain.ProviderSlack && integ.Active
			})).Return(nil)

			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	integ, err := svc.ConfigureIntegration(context.Background(), input)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, integ)
	assert.True(t, integ.Active)
}

func TestPushBugToTracker_Success(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockBugRepo := mocks.NewBugRepository(t)
	mockProjectRepo := mocks.NewProjectRepository(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)
	mockIntegRepo := mocks.NewIntegrationRepository(t)
	mockTracker := mocks.NewIssueTracker(t)

	registry := integrations.NewRegistryWith(
		map[domain.IntegrationProvider]integrations.IssueTracker{
			domain.ProviderJira: mockTracker,
		}, nil)
	svc := service.New(mockTxMgr, mocks.NewObjectStore(t), registry)

	bug := &domain.Bug{
		ID:         "bug-1",
		ProjectID:  "proj-1",
		Title:      "Broken layout",
		Status:     domain.BugStatusOpen,
		ReportedBy: "user-1",
	}
	integ := &domain.Integration{
		ID:       "integ-1",
		OrgID:    "org-1",
		Provider: domain.ProviderJira,
		Active:   true,
	}

	input := &domain.PushBugInput{
		BugID:    "bug-1",
		Provider: domain.ProviderJira,
		ActorID:  "user-1",
	}

	// Setup expectations: первая транзакция читает баг и интеграцию
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("BugRepo").Return(mockBugRepo)
			mockTx.On("ProjectRepo").Return(mockProjectRepo)
			mockTx.On("OrgRepo").Return(mockOrgRepo)
			mockTx.On("IntegrationRepo").Return(mockIntegRepo)

			mockBugRepo.On("GetByID", mock.Anything, "bug-1").Return(bug, nil)
			mockProjectRepo.On("GetByID", mock.Anything, "proj-1").
				Return(&domain.Project{ID: "proj-1", OrgID: "org-1"}, nil)
			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "user-1").
				Return(&domain.Member{OrgID: "org-1", UserID: "user-1", Role: domain.OrgRoleMember, IsActive: true}, nil)
			mockIntegRepo.On("GetActive", mock.Anything, "org-1", domain.ProviderJira).
				Return(integ, nil)

			fn(context.Background(), mockTx)
		}).Return(nil).Once()

	mockTracker.On("CreateIssue", mock.Anything, integ, bug).
		Return(&integrations.RemoteIssue{
			ExternalID: "QA-123",
			URL:        "https://acme.atlassian.net/browse/QA-123",
		}, nil)

	// Вторая транзакция сохраняет связь
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockBugRepo.On("CreateExternalLink", mock.Anything, mock.MatchedBy(func(link *domain.BugExternalLink) bool {
				return link.BugID == "bug-1" &&
					link.Provider == domain.ProviderJira &&
					link.ExternalID == "QA-123"
			})).Return(nil)

			fn(context.Background(), mockTx)
		}).Return(nil).Once()

	// Act
	link, err := svc.PushBugToTracker(context.Background(), input)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, link)
	assert.Equal(t, "QA-123", link.ExternalID)
	assert.Contains(t, link.ExternalURL, "QA-123")
}

func TestPushBugToTracker_AlreadyLinked(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockBugRepo := mocks.NewBugRepository(t)
	mockProjectRepo := mocks.NewProjectRepository(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)

	svc := newTestService(t, mockTxMgr)

	bug := &domain.Bug{
		ID:         "bug-1",
		ProjectID:  "proj-1",
		Status:     domain.BugStatusOpen,
		ReportedBy: "user-1",
		ExternalLinks: []domain.BugExternalLink{
			{BugID: "bug-1", Provider: domain.ProviderJira, ExternalID: "QA-1"},
		},
	}

	input := &domain.PushBugInput{
		BugID:    "bug-1",
		Provider: domain.ProviderJira,
		ActorID:  "user-1",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("BugRepo").Return(mockBugRepo)
			mockTx.On("ProjectRepo").Return(mockProjectRepo)
			mockTx.On("OrgRepo").Return(mockOrgRepo)

			mockBugRepo.On("GetByID", mock.Anything, "bug-1").Return(bug, nil)
			mockProjectRepo.On("GetByID", mock.Anything, "proj-1").
				Return(&domain.Project{ID: "proj-1", OrgID: "org-1"}, nil)
			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "user-1").
				Return(&domain.Member{OrgID: "org-1", UserID: "user-1", Role: domain.OrgRoleMember, IsActive: true}, nil)

			fn(context.Background(), mockTx)
		}).Return(domain.ErrAlreadyLinked)

	// Act
	link, err := svc.PushBugToTracker(context.Background(), input)

	// Assert
	require.Error(t, err)
	assert.Nil(t, link)
	assert.True(t, errors.Is(err, domain.ErrAlreadyLinked))
}

func TestPushBugToTracker_NoIntegration(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockBugRepo := mocks.NewBugRepository(t)
	mockProjectRepo := mocks.NewProjectRepository(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)
	mockIntegRepo := mocks.NewIntegrationRepository(t)

	svc := newTestService(t, mockTxMgr)

	bug := &domain.Bug{
		ID:         "bug-1",
		ProjectID:  "proj-1",
		Status:     domain.BugStatusOpen,
		ReportedBy: "user-1",
	}

	input := &domain.PushBugInput{
		BugID:    "bug-1",
		Provider: domain.ProviderTrello,
		ActorID:  "user-1",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("BugRepo").Return(mockBugRepo)
			mockTx.On("ProjectRepo").Return(mockProjectRepo)
			mockTx.On("OrgRepo").Return(mockOrgRepo)
			mockTx.On("IntegrationRepo").Return(mockIntegRepo)

			mockBugRepo.On("GetByID", mock.Anything, "bug-1").Return(bug, nil)
			mockProjectRepo.On("GetByID", mock.Anything, "proj-1").
				Return(&domain.Project{ID: "proj-1", OrgID: "org-1"}, nil)
			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "user-1").
				Return(&domain.Member{OrgID: "org-1", UserID: "user-1", Role: domain.OrgRoleMember, IsActive: true}, nil)

			// Активной интеграции trello у организации нет
			mockIntegRepo.On("GetActive", mock.Anything, "org-1", domain.ProviderTrello).
				Return(nil, storage.ErrNotFound)

			fn(context.Background(), mockTx)
		}).Return(domain.ErrNoIntegration)

	// Act
	link, err := svc.PushBugToTracker(context.Background(), input)

	// Assert
	require.Error(t, err)
	assert.Nil(t, link)
	assert.True(t, errors.Is(err, domain.ErrNoIntegration))
}

func TestPushBugToTracker_ChatProviderRejected(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)

	svc := newTestService(t, mockTxMgr)

	// Act
	link, err := svc.PushBugToTracker(context.Background(), &domain.PushBugInput{
		BugID:    "bug-1",
		Provider: domain.ProviderSlack,
		ActorID:  "user-1",
	})

	// Assert
	require.Error(t, err)
	assert.Nil(t, link)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	mockTxMgr.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
}

func TestHandleTrackerWebhook_UnknownExternalID(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockBugRepo := mocks.NewBugRepository(t)

	svc := newTestService(t, mockTxMgr)

	input := &domain.TrackerWebhookInput{
		Provider:     domain.ProviderJira,
		ExternalID:   "QA-999",
		RemoteStatus: "Done",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("BugRepo").Return(mockBugRepo)

			// Никакой баг не связан с этой задачей
			mockBugRepo.On("GetByExternalID", mock.Anything, domain.ProviderJira, "QA-999").
				Return(nil, storage.ErrNotFound)

			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	result, err := svc.HandleTrackerWebhook(context.Background(), input)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Matched)
	assert.False(t, result.Applied)
}

func TestHandleTrackerWebhook_AppliesMappedStatus(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockBugRepo := mocks.NewBugRepository(t)
	mockProjectRepo := mocks.NewProjectRepository(t)
	mockIntegRepo := mocks.NewIntegrationRepository(t)
	mockNotifRepo := mocks.NewNotificationRepository(t)

	svc := newTestService(t, mockTxMgr)

	bug := &domain.Bug{
		ID:         "bug-1",
		ProjectID:  "proj-1",
		Title:      "Broken layout",
		Status:     domain.BugStatusInProgress,
		ReportedBy: "user-1",
	}
	integ := &domain.Integration{
		ID:       "integ-1",
		OrgID:    "org-1",
		Provider: domain.ProviderJira,
		Active:   true,
		FieldMapping: domain.FieldMapping{
			Status: map[string]string{
				"RESOLVED": "Done",
				"OPEN":     "To Do",
			},
		},
	}

	input := &domain.TrackerWebhookInput{
		Provider:     domain.ProviderJira,
		ExternalID:   "QA-123",
		RemoteStatus: "Done",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("BugRepo").Return(mockBugRepo)
			mockTx.On("ProjectRepo").Return(mockProjectRepo)
			mockTx.On("IntegrationRepo").Return(mockIntegRepo)
			mockTx.On("NotificationRepo").Return(mockNotifRepo)

			mockBugRepo.On("GetByExternalID", mock.Anything, domain.ProviderJira, "QA-123").
				Return(bug, nil)
			mockProjectRepo.On("GetByID", mock.Anything, "proj-1").
				Return(&domain.Project{ID: "proj-1", OrgID: "org-1"}, nil)
			mockIntegRepo.On("GetActive", mock.Anything, "org-1", domain.ProviderJira).
				Return(integ, nil)

			mockBugRepo.On("Update", mock.Anything, mock.MatchedBy(func(b *domain.Bug) bool {
				return b.Status == domain.BugStatusResolved && b.ResolvedAt != nil
			})).Return(nil)

			// Репортёр получает уведомление, актора у вебхука нет
			mockNotifRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
				return n.RecipientID == "user-1" && n.Kind == domain.NotificationBugStatusChanged
			})).Return(nil)

			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	result, err := svc.HandleTrackerWebhook(context.Background(), input)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Matched)
	assert.True(t, result.Applied)
	assert.Equal(t, "bug-1", result.BugID)
	assert.Equal(t, domain.BugStatusResolved, result.NewStatus)
}

func TestHandleTrackerWebhook_IllegalTransitionSkipped(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockBugRepo := mocks.NewBugRepository(t)
	mockProjectRepo := mocks.NewProjectRepository(t)
	mockIntegRepo := mocks.NewIntegrationRepository(t)

	svc := newTestService(t, mockTxMgr)

	bug := &domain.Bug{
		ID:         "bug-1",
		ProjectID:  "proj-1",
		Status:     domain.BugStatusClosed,
		ReportedBy: "user-1",
	}
	integ := &domain.Integration{
		ID:       "integ-1",
		OrgID:    "org-1",
		Provider: domain.ProviderJira,
		Active:   true,
		FieldMapping: domain.FieldMapping{
			Status: map[string]string{"RESOLVED": "Done"},
		},
	}

	input := &domain.TrackerWebhookInput{
		Provider:     domain.ProviderJira,
		ExternalID:   "QA-123",
		RemoteStatus: "Done",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("BugRepo").Return(mockBugRepo)
			mockTx.On("ProjectRepo").Return(mockProjectRepo)
			mockTx.On("IntegrationRepo").Return(mockIntegRepo)

			mockBugRepo.On("GetByExternalID", mock.Anything, domain.ProviderJira, "QA-123").
				Return(bug, nil)
			mockProjectRepo.On("GetByID", mock.Anything, "proj-1").
				Return(&domain.Project{ID: "proj-1", OrgID: "org-1"}, nil)
			mockIntegRepo.On("GetActive", mock.Anything, "org-1", domain.ProviderJira).
				Return(integ, nil)

			// CLOSED -> RESOLVED запрещён, вебхук подтверждается без изменений
			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	result, err := svc.HandleTrackerWebhook(context.Background(), input)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Matched)
	assert.False(t, result.Applied)
	mockBugRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestHandleTrackerWebhook_UnmappedStatusSkipped(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockBugRepo := mocks.NewBugRepository(t)
	mockProjectRepo := mocks.NewProjectRepository(t)
	mockIntegRepo := mocks.NewIntegrationRepository(t)

	svc := newTestService(t, mockTxMgr)

	bug := &domain.Bug{
		ID:         "bug-1",
		ProjectID:  "proj-1",
		Status:     domain.BugStatusOpen,
		ReportedBy: "user-1",
	}
	integ := &domain.Integration{
		ID:           "integ-1",
		OrgID:        "org-1",
		Provider:     domain.ProviderJira,
		Active:       true,
		FieldMapping: domain.FieldMapping{Status: map[string]string{"RESOLVED": "Done"}},
	}

	input := &domain.TrackerWebhookInput{
		Provider:     domain.ProviderJira,
		ExternalID:   "QA-123",
		RemoteStatus: "Blocked",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("BugRepo").Return(mockBugRepo)
			mockTx.On("ProjectRepo").Return(mockProjectRepo)
			mockTx.On("IntegrationRepo").Return(mockIntegRepo)

			mockBugRepo.On("GetByExternalID", mock.Anything, domain.ProviderJira, "QA-123").
				Return(bug, nil)
			mockProjectRepo.On("GetByID", mock.Anything, "proj-1").
				Return(&domain.Project{ID: "proj-1", OrgID: "org-1"}, nil)
			mockIntegRepo.On("GetActive", mock.Anything, "org-1", domain.ProviderJira).
				Return(integ, nil)

			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	result, err := svc.HandleTrackerWebhook(context.Background(), input)

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.False(t, result.Applied)
	mockBugRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
