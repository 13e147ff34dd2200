package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"buglens/internal/domain"
	"buglens/internal/mocks"
	"buglens/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrganization_Success(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)

	svc := newTestService(t, mockTxMgr)

	input := &domain.CreateOrganizationInput{
		Name:     "Acme QA",
		Slug:     "acme-qa",
		ActorID:  "user-1",
		Username: "alice",
		Email:    "alice@acme.test",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("OrgRepo").Return(mockOrgRepo)

			// Организация создаётся вместе с владельцем
			mockOrgRepo.On("Create", mock.Anything,
				mock.MatchedBy(func(org *domain.Organization) bool {
					return org.Slug == "acme-qa" && org.ID != ""
				}),
				mock.MatchedBy(func(owner *domain.Member) bool {
					return owner.UserID == "user-1" &&
						owner.Role == domain.OrgRoleOwner &&
						owner.IsActive
				})).Return(nil)

			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	org, err := svc.CreateOrganization(context.Background(), input)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, org)
	assert.Equal(t, "acme-qa", org.Slug)
	require.Len(t, org.Members, 1)
	assert.Equal(t, domain.OrgRoleOwner, org.Members[0].Role)
}

func TestCreateOrganization_SlugTaken(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)

	svc := newTestService(t, mockTxMgr)

	input := &domain.CreateOrganizationInput{
		Name:    "Acme QA",
		Slug:    "acme-qa",
		ActorID: "user-1",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("OrgRepo").Return(mockOrgRepo)
			mockOrgRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).
				Return(storage.ErrAlreadyExists)

			fn(context.Background(), mockTx)
		}).Return(storage.ErrAlreadyExists)

	// Act
	org, err := svc.CreateOrganization(context.Background(), input)

	// Assert
	require.Error(t, err)
	assert.Nil(t, org)
	assert.True(t, errors.Is(err, domain.ErrOrgExists))
}

func TestGetOrganization_NonMemberForbidden(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)

	svc := newTestService(t, mockTxMgr)

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("OrgRepo").Return(mockOrgRepo)
			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "stranger").
				Return(nil, storage.ErrNotFound)

			fn(context.Background(), mockTx)
		}).Return(domain.ErrForbidden)

	// Act
	org, err := svc.GetOrganization(context.Background(), "org-1", "stranger")

	// Assert
	require.Error(t, err)
	assert.Nil(t, org)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
	mockOrgRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestInviteMember_PendingInviteConflict(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)

	svc := newTestService(t, mockTxMgr)

	input := &domain.InviteMemberInput{
		OrgID:   "org-1",
		Email:   "bob@acme.test",
		Role:    domain.OrgRoleMember,
		ActorID: "user-1",
	}

	pending := &domain.Invitation{
		ID:        "inv-1",
		OrgID:     "org-1",
		Email:     "bob@acme.test",
		Status:    domain.InvitationStatusPending,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("OrgRepo").Return(mockOrgRepo)

			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "user-1").
				Return(&domain.Member{OrgID: "org-1", UserID: "user-1", Role: domain.OrgRoleAdmin, IsActive: true}, nil)

			// Активное приглашение на тот же email уже есть
			mockOrgRepo.On("FindPendingInvitation", mock.Anything, "org-1", "bob@acme.test").
				Return(pending, nil)

			fn(context.Background(), mockTx)
		}).Return(domain.ErrInviteExists)

	// Act
	invitation, err := svc.InviteMember(context.Background(), input)

	// Assert
	require.Error(t, err)
	assert.Nil(t, invitation)
	assert.True(t, errors.Is(err, domain.ErrInviteExists))
	mockOrgRepo.AssertNotCalled(t, "CreateInvitation", mock.Anything, mock.Anything)
}

func TestInviteMember_OwnerRoleRejected(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)

	svc := newTestService(t, mockTxMgr)

	input := &domain.InviteMemberInput{
		OrgID:   "org-1",
		Email:   "bob@acme.test",
		Role:    domain.OrgRoleOwner,
		ActorID: "user-1",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("OrgRepo").Return(mockOrgRepo)
			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "user-1").
				Return(&domain.Member{OrgID: "org-1", UserID: "user-1", Role: domain.OrgRoleOwner, IsActive: true}, nil)

			fn(context.Background(), mockTx)
		}).Return(domain.ErrInvalidInput)

	// Act
	invitation, err := svc.InviteMember(context.Background(), input)

	// Assert
	require.Error(t, err)
	assert.Nil(t, invitation)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestInviteMember_UnknownRoleRejected(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)

	svc := newTestService(t, mockTxMgr)

	input := &domain.InviteMemberInput{
		OrgID:   "org-1",
		Email:   "bob@acme.test",
		Role:    domain.OrgRole("superuser"),
		ActorID: "user-1",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("OrgRepo").Return(mockOrgRepo)
			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "user-1").
				Return(&domain.Member{OrgID: "org-1", UserID: "user-1", Role: domain.OrgRoleOwner, IsActive: true}, nil)

			fn(context.Background(), mockTx)
		}).Return(domain.ErrInvalidInput)

	// Act
	invitation, err := svc.InviteMember(context.Background(), input)

	// Assert
	require.Error(t, err)
	assert.Nil(t, invitation)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	mockOrgRepo.AssertNotCalled(t, "CreateInvitation", mock.Anything, mock.Anything)
}

func TestAcceptInvitation_Success(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)
	mockNotifRepo := mocks.NewNotificationRepository(t)

	svc := newTestService(t, mockTxMgr)

	invitation := &domain.Invitation{
		ID:        "inv-1",
		OrgID:     "org-1",
		Email:     "bob@acme.test",
		Role:      domain.OrgRoleMember,
		Token:     "token-123",
		InvitedBy: "user-1",
		Status:    domain.InvitationStatusPending,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	input := &domain.AcceptInvitationInput{
		Token:    "token-123",
		UserID:   "user-2",
		Username: "bob",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("OrgRepo").Return(mockOrgRepo)
			mockTx.On("NotificationRepo").Return(mockNotifRepo)

			mockOrgRepo.On("GetInvitationByToken", mock.Anything, "token-123").
				Return(invitation, nil)

			mockOrgRepo.On("CreateMember", mock.Anything, mock.MatchedBy(func(m *domain.Member) bool {
				return m.OrgID == "org-1" &&
					m.UserID == "user-2" &&
					m.Role == domain.OrgRoleMember &&
					m.IsActive
			})).Return(nil)

			mockOrgRepo.On("UpdateInvitation", mock.Anything, mock.MatchedBy(func(inv *domain.Invitation) bool {
				return inv.Status == domain.InvitationStatusAccepted
			})).Return(nil)

			// Пригласивший получает уведомление
			mockNotifRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
				return n.RecipientID == "user-1" && n.Kind == domain.NotificationInvitation
			})).Return(nil)

			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	member, err := svc.AcceptInvitation(context.Background(), input)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, member)
	assert.Equal(t, "org-1", member.OrgID)
	assert.Equal(t, "bob@acme.test", member.Email)
	assert.Equal(t, domain.OrgRoleMember, member.Role)
}

func TestAcceptInvitation_Expired(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)

	svc := newTestService(t, mockTxMgr)

	invitation := &domain.Invitation{
		ID:        "inv-1",
		OrgID:     "org-1",
		Token:     "token-old",
		Status:    domain.InvitationStatusPending,
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	input := &domain.AcceptInvitationInput{
		Token:  "token-old",
		UserID: "user-2",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("OrgRepo").Return(mockOrgRepo)

			mockOrgRepo.On("GetInvitationByToken", mock.Anything, "token-old").
				Return(invitation, nil)

			// Просроченное приглашение помечается EXPIRED
			mockOrgRepo.On("UpdateInvitation", mock.Anything, mock.MatchedBy(func(inv *domain.Invitation) bool {
				return inv.Status == domain.InvitationStatusExpired
			})).Return(nil)

			fn(context.Background(), mockTx)
		}).Return(domain.ErrInviteUnusable)

	// Act
	member, err := svc.AcceptInvitation(context.Background(), input)

	// Assert
	require.Error(t, err)
	assert.Nil(t, member)
	assert.True(t, errors.Is(err, domain.ErrInviteUnusable))
	mockOrgRepo.AssertNotCalled(t, "CreateMember", mock.Anything, mock.Anything)
}

func TestAcceptInvitation_AlreadyAccepted(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)

	svc := newTestService(t, mockTxMgr)

	invitation := &domain.Invitation{
		ID:        "inv-1",
		OrgID:     "org-1",
		Token:     "token-used",
		Status:    domain.InvitationStatusAccepted,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("OrgRepo").Return(mockOrgRepo)
			mockOrgRepo.On("GetInvitationByToken", mock.Anything, "token-used").
				Return(invitation, nil)

			fn(context.Background(), mockTx)
		}).Return(domain.ErrInviteUnusable)

	// Act
	member, err := svc.AcceptInvitation(context.Background(), &domain.AcceptInvitationInput{
		Token:  "token-used",
		UserID: "user-2",
	})

	// Assert
	require.Error(t, err)
	assert.Nil(t, member)
	assert.True(t, errors.Is(err, domain.ErrInviteUnusable))
}

func TestRevokeInvitation_WrongOrg(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)

	svc := newTestService(t, mockTxMgr)

	invitation := &domain.Invitation{
		ID:     "inv-1",
		OrgID:  "org-other",
		Status: domain.InvitationStatusPending,
	}

	input := &domain.RevokeInvitationInput{
		OrgID:        "org-1",
		InvitationID: "inv-1",
		ActorID:      "user-1",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("OrgRepo").Return(mockOrgRepo)

			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "user-1").
				Return(&domain.Member{OrgID: "org-1", UserID: "user-1", Role: domain.OrgRoleOwner, IsActive: true}, nil)

			// Приглашение чужой организации выглядит как несуществующее
			mockOrgRepo.On("GetInvitationByID", mock.Anything, "inv-1").
				Return(invitation, nil)

			fn(context.Background(), mockTx)
		}).Return(storage.ErrNotFound)

	// Act
	err := svc.RevokeInvitation(context.Background(), input)

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrResourceNotFound))
	mockOrgRepo.AssertNotCalled(t, "UpdateInvitation", mock.Anything, mock.Anything)
}

func TestChangeMemberRole_OwnerProtected(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)

	svc := newTestService(t, mockTxMgr)

	input := &domain.ChangeMemberRoleInput{
		OrgID:   "org-1",
		UserID:  "owner-1",
		Role:    domain.OrgRoleViewer,
		ActorID: "admin-1",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("OrgRepo").Return(mockOrgRepo)

			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "admin-1").
				Return(&domain.Member{OrgID: "org-1", UserID: "admin-1", Role: domain.OrgRoleAdmin, IsActive: true}, nil)

			// Понизить владельца может только он сам
			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "owner-1").
				Return(&domain.Member{OrgID: "org-1", UserID: "owner-1", Role: domain.OrgRoleOwner, IsActive: true}, nil)

			fn(context.Background(), mockTx)
		}).Return(domain.ErrForbidden)

	// Act
	member, err := svc.ChangeMemberRole(context.Background(), input)

	// Assert
	require.Error(t, err)
	assert.Nil(t, member)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
	mockOrgRepo.AssertNotCalled(t, "UpdateMember", mock.Anything, mock.Anything)
}

func TestChangeMemberRole_OwnerSelfDemote(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)

	svc := newTestService(t, mockTxMgr)

	input := &domain.ChangeMemberRoleInput{
		OrgID:   "org-1",
		UserID:  "owner-1",
		Role:    domain.OrgRoleAdmin,
		ActorID: "owner-1",
	}

	// Setup expectations: в организации остаётся второй активный владелец
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("OrgRepo").Return(mockOrgRepo)

			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "owner-1").
				Return(&domain.Member{OrgID: "org-1", UserID: "owner-1", Role: domain.OrgRoleOwner, IsActive: true}, nil)
			mockOrgRepo.On("GetByID", mock.Anything, "org-1").
				Return(&domain.Organization{ID: "org-1", Members: []domain.Member{
					{OrgID: "org-1", UserID: "owner-1", Role: domain.OrgRoleOwner, IsActive: true},
					{OrgID: "org-1", UserID: "owner-2", Role: domain.OrgRoleOwner, IsActive: true},
				}}, nil)
			mockOrgRepo.On("UpdateMember", mock.Anything, mock.MatchedBy(func(m *domain.Member) bool {
				return m.UserID == "owner-1" && m.Role == domain.OrgRoleAdmin
			})).Return(nil)

			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	member, err := svc.ChangeMemberRole(context.Background(), input)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, member)
	assert.Equal(t, domain.OrgRoleAdmin, member.Role)
}

func TestChangeMemberRole_LastOwnerDemoteBlocked(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)

	svc := newTestService(t, mockTxMgr)

	input := &domain.ChangeMemberRoleInput{
		OrgID:   "org-1",
		UserID:  "owner-1",
		Role:    domain.OrgRoleAdmin,
		ActorID: "owner-1",
	}

	// Setup expectations: других активных владельцев нет
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("OrgRepo").Return(mockOrgRepo)

			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "owner-1").
				Return(&domain.Member{OrgID: "org-1", UserID: "owner-1", Role: domain.OrgRoleOwner, IsActive: true}, nil)
			mockOrgRepo.On("GetByID", mock.Anything, "org-1").
				Return(&domain.Organization{ID: "org-1", Members: []domain.Member{
					{OrgID: "org-1", UserID: "owner-1", Role: domain.OrgRoleOwner, IsActive: true},
					{OrgID: "org-1", UserID: "admin-1", Role: domain.OrgRoleAdmin, IsActive: true},
				}}, nil)

			fn(context.Background(), mockTx)
		}).Return(domain.ErrForbidden)

	// Act
	member, err := svc.ChangeMemberRole(context.Background(), input)

	// Assert
	require.Error(t, err)
	assert.Nil(t, member)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
	mockOrgRepo.AssertNotCalled(t, "UpdateMember", mock.Anything, mock.Anything)
}

func TestDeactivateMember_Success(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockOrgRepo := mocks.NewOrganizationRepository(t)

	svc := newTestService(t, mockTxMgr)

	input := &domain.DeactivateMemberInput{
		OrgID:   "org-1",
		UserID:  "user-2",
		ActorID: "user-1",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("OrgRepo").Return(mockOrgRepo)

			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "user-1").
				Return(&domain.Member{OrgID: "org-1", UserID: "user-1", Role: domain.OrgRoleOwner, IsActive: true}, nil)
			mockOrgRepo.On("GetMember", mock.Anything, "org-1", "user-2").
				Return(&domain.Member{OrgID: "org-1", UserID: "user-2", Role: domain.OrgRoleMember, IsActive: true}, nil)

			mockOrgRepo.On("UpdateMember", mock.Anything, mock.MatchedBy(func(m *domain.Member) bool {
				return m.UserID == "user-2" && !m.IsActive
			})).Return(nil)

			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	member, err := svc.DeactivateMember(context.Background(), input)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, member)
	assert.False(t, member.IsActive)
}
