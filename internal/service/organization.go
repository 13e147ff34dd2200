package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"buglens/internal/domain"
	"buglens/internal/logger"
	"buglens/internal/metrics"
	"buglens/internal/storage"
)

// invitationTTL - срок жизни приглашения
const invitationTTL = 7 * 24 * time.Hour

// newInvitationToken возвращает криптографически случайный токен приглашения
func newInvitationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// CreateOrganization создаёт организацию, автор становится owner
func (s *Service) CreateOrganization(outerCtx context.Context, input *domain.CreateOrganizationInput) (*domain.Organization, error) {
	const op = "service.CreateOrganization"
	defer observe(op, time.Now())
	requestID := logger.GetRequestID(outerCtx)
	var org *domain.Organization

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("slug", input.Slug).
		Msg("creating organization")

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		org = &domain.Organization{
			ID:   uuid.NewString(),
			Name: input.Name,
			Slug: input.Slug,
		}
		owner := &domain.Member{
			OrgID:    org.ID,
			UserID:   input.ActorID,
			Username: input.Username,
			Email:    input.Email,
			Role:     domain.OrgRoleOwner,
			IsActive: true,
		}

		if err := tx.OrgRepo().Create(ctx, org, owner); err != nil {
			return err
		}
		org.Members = []domain.Member{*owner}

		log.Info().
			Str("request_id", requestID).
			Str("layer", "service").
			Str("org_id", org.ID).
			Msg("organization created")

		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return org, nil
}

// GetOrganization возвращает организацию с участниками.
// Доступна только её собственным участникам.
func (s *Service) GetOrganization(outerCtx context.Context, orgID, actorID string) (*domain.Organization, error) {
	const op = "service.GetOrganization"
	defer observe(op, time.Now())
	var org *domain.Organization

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if _, err := requireMember(ctx, tx, orgID, actorID); err != nil {
			return err
		}
		found, err := tx.OrgRepo().GetByID(ctx, orgID)
		if err != nil {
			return err
		}
		org = found
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return org, nil
}

// InviteMember создаёт приглашение по email со случайным токеном.
// Активное приглашение на тот же email внутри организации - конфликт.
func (s *Service) InviteMember(outerCtx context.Context, input *domain.InviteMemberInput) (*domain.Invitation, error) {
	const op = "service.InviteMember"
	defer observe(op, time.Now())
	requestID := logger.GetRequestID(outerCtx)
	var invitation *domain.Invitation

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("org_id", input.OrgID).
		Str("email", input.Email).
		Msg("inviting member")

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if _, err := requireManager(ctx, tx, input.OrgID, input.ActorID); err != nil {
			return err
		}

		// Приглашать в роль owner нельзя
		if !domain.ValidOrgRole(input.Role) || input.Role == domain.OrgRoleOwner {
			return domain.ErrInvalidInput
		}

		existing, err := tx.OrgRepo().FindPendingInvitation(ctx, input.OrgID, input.Email)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		if existing != nil && existing.ExpiresAt.After(time.Now()) {
			return domain.ErrInviteExists
		}

		token, err := newInvitationToken()
		if err != nil {
			return err
		}

		invitation = &domain.Invitation{
			ID:        uuid.NewString(),
			OrgID:     input.OrgID,
			Email:     input.Email,
			Role:      input.Role,
			Token:     token,
			InvitedBy: input.ActorID,
			Status:    domain.InvitationStatusPending,
			ExpiresAt: time.Now().Add(invitationTTL),
		}

		return tx.OrgRepo().CreateInvitation(ctx, invitation)
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return invitation, nil
}

// AcceptInvitation принимает приглашение по токену и создаёт участника.
// Принятое, отозванное или просроченное приглашение использовать нельзя.
func (s *Service) AcceptInvitation(outerCtx context.Context, input *domain.AcceptInvitationInput) (*domain.Member, error) {
	const op = "service.AcceptInvitation"
	defer observe(op, time.Now())
	requestID := logger.GetRequestID(outerCtx)
	var member *domain.Member

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		invitation, err := tx.OrgRepo().GetInvitationByToken(ctx, input.Token)
		if err != nil {
			return err
		}

		if invitation.Status != domain.InvitationStatusPending {
			return domain.ErrInviteUnusable
		}
		if invitation.ExpiresAt.Before(time.Now()) {
			invitation.Status = domain.InvitationStatusExpired
			if err := tx.OrgRepo().UpdateInvitation(ctx, invitation); err != nil {
				return err
			}
			return domain.ErrInviteUnusable
		}

		member = &domain.Member{
			OrgID:    invitation.OrgID,
			UserID:   input.UserID,
			Username: input.Username,
			Email:    invitation.Email,
			Role:     invitation.Role,
			IsActive: true,
		}
		if err := tx.OrgRepo().CreateMember(ctx, member); err != nil {
			return err
		}

		invitation.Status = domain.InvitationStatusAccepted
		if err := tx.OrgRepo().UpdateInvitation(ctx, invitation); err != nil {
			return err
		}

		// Сообщаем пригласившему, что приглашение принято
		notification := &domain.Notification{
			ID:          uuid.NewString(),
			OrgID:       invitation.OrgID,
			RecipientID: invitation.InvitedBy,
			Kind:        domain.NotificationInvitation,
			Payload: map[string]any{
				"invitation_id": invitation.ID,
				"email":         invitation.Email,
				"user_id":       input.UserID,
			},
		}
		if err := tx.NotificationRepo().Create(ctx, notification); err != nil {
			return err
		}
		metrics.NotificationCreatedTotal.WithLabelValues(string(domain.NotificationInvitation)).Inc()

		log.Info().
			Str("request_id", requestID).
			Str("layer", "service").
			Str("org_id", invitation.OrgID).
			Str("user_id", input.UserID).
			Msg("invitation accepted, member created")

		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return member, nil
}

// RevokeInvitation отзывает ожидающее приглашение
func (s *Service) RevokeInvitation(outerCtx context.Context, input *domain.RevokeInvitationInput) error {
	const op = "service.RevokeInvitation"
	defer observe(op, time.Now())

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if _, err := requireManager(ctx, tx, input.OrgID, input.ActorID); err != nil {
			return err
		}

		invitation, err := tx.OrgRepo().GetInvitationByID(ctx, input.InvitationID)
		if err != nil {
			return err
		}
		if invitation.OrgID != input.OrgID {
			return storage.ErrNotFound
		}
		if invitation.Status != domain.InvitationStatusPending {
			return domain.ErrInviteUnusable
		}

		invitation.Status = domain.InvitationStatusRevoked
		return tx.OrgRepo().UpdateInvitation(ctx, invitation)
	})

	if err != nil {
		return s.formatError(outerCtx, op, err)
	}

	return nil
}

// ChangeMemberRole меняет роль участника организации.
// Выдать роль owner может только владелец; снять её владелец может
// только с себя и только пока остаётся другой активный владелец.
func (s *Service) ChangeMemberRole(outerCtx context.Context, input *domain.ChangeMemberRoleInput) (*domain.Member, error) {
	const op = "service.ChangeMemberRole"
	defer observe(op, time.Now())
	var member *domain.Member

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if !domain.ValidOrgRole(input.Role) {
			return domain.ErrInvalidInput
		}

		actor, err := requireManager(ctx, tx, input.OrgID, input.ActorID)
		if err != nil {
			return err
		}

		if input.Role == domain.OrgRoleOwner && actor.Role != domain.OrgRoleOwner {
			return domain.ErrForbidden
		}

		found, err := tx.OrgRepo().GetMember(ctx, input.OrgID, input.UserID)
		if err != nil {
			return err
		}
		if found.Role == domain.OrgRoleOwner && input.Role != domain.OrgRoleOwner {
			if actor.Role != domain.OrgRoleOwner || actor.UserID != found.UserID {
				return domain.ErrForbidden
			}
			org, err := tx.OrgRepo().GetByID(ctx, input.OrgID)
			if err != nil {
				return err
			}
			otherOwners := 0
			for _, m := range org.Members {
				if m.Role == domain.OrgRoleOwner && m.IsActive && m.UserID != found.UserID {
					otherOwners++
				}
			}
			// Организация не может остаться без владельца
			if otherOwners == 0 {
				return domain.ErrForbidden
			}
		}

		found.Role = input.Role
		if err := tx.OrgRepo().UpdateMember(ctx, found); err != nil {
			return err
		}
		member = found
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return member, nil
}

// DeactivateMember деактивирует участника организации. Владельца деактивировать нельзя.
func (s *Service) DeactivateMember(outerCtx context.Context, input *domain.DeactivateMemberInput) (*domain.Member, error) {
	const op = "service.DeactivateMember"
	defer observe(op, time.Now())
	var member *domain.Member

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if _, err := requireManager(ctx, tx, input.OrgID, input.ActorID); err != nil {
			return err
		}

		found, err := tx.OrgRepo().GetMember(ctx, input.OrgID, input.UserID)
		if err != nil {
			return err
		}
		if found.Role == domain.OrgRoleOwner {
			return domain.ErrForbidden
		}

		found.IsActive = false
		if err := tx.OrgRepo().UpdateMember(ctx, found); err != nil {
			return err
		}
		member = found
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return member, nil
}
