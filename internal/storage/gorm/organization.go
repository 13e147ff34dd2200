package gorm

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"buglens/internal/domain"
	"buglens/internal/logger"
	"buglens/internal/storage"
)

type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository создаёт новый репозиторий организаций
func NewOrganizationRepository(db *gorm.DB) storage.OrganizationRepository {
	return &organizationRepository{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == storage.UniqueViolation {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Create создаёт организацию вместе с участником-владельцем
func (r *organizationRepository) Create(ctx context.Context, org *domain.Organization, owner *domain.Member) error {
	requestID := logger.GetRequestID(ctx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Str("org_id", org.ID).
		Str("slug", org.Slug).
		Msg("creating organization in database")

	dbOrg := &Organization{
		OrgID: org.ID,
		Name:  org.Name,
		Slug:  org.Slug,
	}

	if err := r.db.WithContext(ctx).Create(dbOrg).Error; err != nil {
		if isUniqueViolation(err) {
			log.Warn().
				Str("request_id", requestID).
				Str("layer", "storage").
				Str("slug", org.Slug).
				Msg("organization slug already taken")
			return storage.ErrAlreadyExists
		}
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("org_id", org.ID).
			Msg("error creating organization")
		return err
	}

	org.CreatedAt = &dbOrg.CreatedAt

	dbOwner := &Member{
		OrgID:    org.ID,
		UserID:   owner.UserID,
		Username: owner.Username,
		Email:    owner.Email,
		Role:     string(owner.Role),
		IsActive: true,
	}

	if err := r.db.WithContext(ctx).Create(dbOwner).Error; err != nil {
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("org_id", org.ID).
			Msg("error creating owner member")
		return err
	}

	return nil
}

// GetByID возвращает организацию с участниками
func (r *organizationRepository) GetByID(ctx context.Context, orgID string) (*domain.Organization, error) {
	var dbOrg Organization
	err := r.db.WithContext(ctx).Preload("Members").First(&dbOrg, "org_id = ?", orgID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().
				Str("request_id", logger.GetRequestID(ctx)).
				Str("layer", "storage").
				Str("org_id", orgID).
				Msg("organization not found")
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	members := make([]domain.Member, len(dbOrg.Members))
	for i, m := range dbOrg.Members {
		members[i] = mapMemberToDomain(&m)
	}

	return &domain.Organization{
		ID:        dbOrg.OrgID,
		Name:      dbOrg.Name,
		Slug:      dbOrg.Slug,
		Members:   members,
		CreatedAt: &dbOrg.CreatedAt,
	}, nil
}

// GetMember возвращает участника организации
func (r *organizationRepository) GetMember(ctx context.Context, orgID, userID string) (*domain.Member, error) {
	var dbMember Member
	err := r.db.WithContext(ctx).
		Where("org_id = ? AND user_id = ?", orgID, userID).
		First(&dbMember).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	member := mapMemberToDomain(&dbMember)
	return &member, nil
}

// CreateMember добавляет участника организации
func (r *organizationRepository) CreateMember(ctx context.Context, member *domain.Member) error {
	requestID := logger.GetRequestID(ctx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Str("org_id", member.OrgID).
		Str("user_id", member.UserID).
		Msg("creating organization member")

	dbMember := &Member{
		OrgID:    member.OrgID,
		UserID:   member.UserID,
		Username: member.Username,
		Email:    member.Email,
		Role:     string(member.Role),
		IsActive: member.IsActive,
	}

	if err := r.db.WithContext(ctx).Create(dbMember).Error; err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("user_id", member.UserID).
			Msg("error creating member")
		return err
	}

	return nil
}

// UpdateMember обновляет роль/активность участника
func (r *organizationRepository) UpdateMember(ctx context.Context, member *domain.Member) error {
	result := r.db.WithContext(ctx).
		Model(&Member{}).
		Where("org_id = ? AND user_id = ?", member.OrgID, member.UserID).
		Updates(map[string]interface{}{
			"role":      string(member.Role),
			"is_active": member.IsActive,
		})

	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "storage").
			Str("user_id", member.UserID).
			Msg("error updating member")
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// FindMemberByUsername ищет участника организации по username
func (r *organizationRepository) FindMemberByUsername(ctx context.Context, orgID, username string) (*domain.Member, error) {
	var dbMember Member
	err := r.db.WithContext(ctx).
		Where("org_id = ? AND username = ?", orgID, username).
		First(&dbMember).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	member := mapMemberToDomain(&dbMember)
	return &member, nil
}

// CreateInvitation создаёт приглашение
func (r *organizationRepository) CreateInvitation(ctx context.Context, inv *domain.Invitation) error {
	requestID := logger.GetRequestID(ctx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Str("org_id", inv.OrgID).
		Str("email", inv.Email).
		Msg("creating invitation")

	dbInv := &Invitation{
		InvitationID: inv.ID,
		OrgID:        inv.OrgID,
		Email:        inv.Email,
		Role:         string(inv.Role),
		Token:        inv.Token,
		InvitedBy:    inv.InvitedBy,
		Status:       string(inv.Status),
		ExpiresAt:    inv.ExpiresAt,
	}

	if err := r.db.WithContext(ctx).Create(dbInv).Error; err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("org_id", inv.OrgID).
			Msg("error creating invitation")
		return err
	}

	inv.CreatedAt = &dbInv.CreatedAt
	return nil
}

// GetInvitationByID возвращает приглашение по ID
func (r *organizationRepository) GetInvitationByID(ctx context.Context, invitationID string) (*domain.Invitation, error) {
	var dbInv Invitation
	err := r.db.WithContext(ctx).First(&dbInv, "invitation_id = ?", invitationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	inv := mapInvitationToDomain(&dbInv)
	return &inv, nil
}

// GetInvitationByToken возвращает приглашение по токену
func (r *organizationRepository) GetInvitationByToken(ctx context.Context, token string) (*domain.Invitation, error) {
	var dbInv Invitation
	err := r.db.WithContext(ctx).First(&dbInv, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().
				Str("request_id", logger.GetRequestID(ctx)).
				Str("layer", "storage").
				Msg("invitation token not found")
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	inv := mapInvitationToDomain(&dbInv)
	return &inv, nil
}

// FindPendingInvitation ищет активное приглашение на email внутри организации
func (r *organizationRepository) FindPendingInvitation(ctx context.Context, orgID, email string) (*domain.Invitation, error) {
	var dbInv Invitation
	err := r.db.WithContext(ctx).
		Where("org_id = ? AND email = ? AND status = ?", orgID, email, string(domain.InvitationStatusPending)).
		First(&dbInv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	inv := mapInvitationToDomain(&dbInv)
	return &inv, nil
}

// UpdateInvitation обновляет статус приглашения
func (r *organizationRepository) UpdateInvitation(ctx context.Context, inv *domain.Invitation) error {
	result := r.db.WithContext(ctx).
		Model(&Invitation{}).
		Where("invitation_id = ?", inv.ID).
		Update("status", string(inv.Status))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func mapMemberToDomain(m *Member) domain.Member {
	return domain.Member{
		OrgID:    m.OrgID,
		UserID:   m.UserID,
		Username: m.Username,
		Email:    m.Email,
		Role:     domain.OrgRole(m.Role),
		IsActive: m.IsActive,
	}
}

func mapInvitationToDomain(inv *Invitation) domain.Invitation {
	return domain.Invitation{
		ID:        inv.InvitationID,
		OrgID:     inv.OrgID,
		Email:     inv.Email,
		Role:      domain.OrgRole(inv.Role),
		Token:     inv.Token,
		InvitedBy: inv.InvitedBy,
		Status:    domain.InvitationStatus(inv.Status),
		ExpiresAt: inv.ExpiresAt,
		CreatedAt: &inv.CreatedAt,
	}
}
