package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"buglens/internal/domain"
	"buglens/internal/integrations"
	"buglens/internal/metrics"
	"buglens/internal/objectstore"
	"buglens/internal/storage"
)

// Service реализует domain.TrackerService используя storage.TxManager,
// объектное хранилище скриншотов и клиенты внешних интеграций
type Service struct {
	txmgr    storage.TxManager
	objects  objectstore.Store
	registry *integrations.Registry
	exports  *exportRegistry
}

// Проверка что Service реализует интерфейс domain.TrackerService
var _ domain.TrackerService = (*Service)(nil)

// New создаёт новый Service
func New(txmgr storage.TxManager, objects objectstore.Store, registry *integrations.Registry) *Service {
	return &Service{
		txmgr:    txmgr,
		objects:  objects,
		registry: registry,
		exports:  newExportRegistry(),
	}
}

// formatError преобразует ошибки storage слоя в доменные ошибки с правильными HTTP кодами
func (s *Service) formatError(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return domain.ErrResourceNotFound
	case errors.Is(err, storage.ErrAlreadyExists):
		// Определяем тип ресурса по имени операции для точного сообщения об ошибке
		switch op {
		case "service.CreateOrganization":
			return domain.ErrOrgExists
		case "service.CreateProject":
			return domain.ErrProjectKeyTaken
		case "service.InviteMember":
			return domain.ErrInviteExists
		case "service.PushBugToTracker":
			return domain.ErrAlreadyLinked
		}
		return domain.ErrInternal
	case domain.IsDomainError(err):
		var domainErr *domain.Error
		if errors.As(err, &domainErr) {
			metrics.DomainErrorsTotal.WithLabelValues(string(domainErr.Code)).Inc()
		}
		return err
	case errors.Is(err, ctx.Err()):
		return ctx.Err()
	default:
		log.Error().Err(err).Str("operation", op).Msg("operation failed")
		metrics.DomainErrorsTotal.WithLabelValues(string(domain.ErrorCodeInternalError)).Inc()
		return domain.ErrInternal
	}
}

// observe замеряет длительность операции сервиса
func observe(op string, start time.Time) {
	metrics.ServiceOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// requireRole проверяет, что актор - активный участник организации с одной из ролей.
// Возвращает участника для дальнейших проверок.
func requireRole(ctx context.Context, tx storage.Tx, orgID, actorID string, roles ...domain.OrgRole) (*domain.Member, error) {
	member, err := tx.OrgRepo().GetMember(ctx, orgID, actorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, err
	}
	if !member.IsActive {
		return nil, domain.ErrForbidden
	}
	for _, role := range roles {
		if member.Role == role {
			return member, nil
		}
	}
	return nil, domain.ErrForbidden
}

// requireMember проверяет, что актор - активный участник организации,
// роль не важна. Используется на всех читающих операциях.
func requireMember(ctx context.Context, tx storage.Tx, orgID, actorID string) (*domain.Member, error) {
	return requireRole(ctx, tx, orgID, actorID,
		domain.OrgRoleOwner, domain.OrgRoleAdmin, domain.OrgRoleMember, domain.OrgRoleViewer)
}

// requireWriter проверяет, что актор не viewer (любая пишущая роль)
func requireWriter(ctx context.Context, tx storage.Tx, orgID, actorID string) (*domain.Member, error) {
	return requireRole(ctx, tx, orgID, actorID,
		domain.OrgRoleOwner, domain.OrgRoleAdmin, domain.OrgRoleMember)
}

// requireManager проверяет, что актор owner или admin
func requireManager(ctx context.Context, tx storage.Tx, orgID, actorID string) (*domain.Member, error) {
	return requireRole(ctx, tx, orgID, actorID,
		domain.OrgRoleOwner, domain.OrgRoleAdmin)
}
