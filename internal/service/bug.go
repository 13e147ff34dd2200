package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"buglens/internal/domain"
	"buglens/internal/logger"
	"buglens/internal/metrics"
	"buglens/internal/storage"
)

// bugOrg возвращает org_id, которому принадлежит баг (через проект)
func bugOrg(ctx context.Context, tx storage.Tx, bug *domain.Bug) (string, error) {
	project, err := tx.ProjectRepo().GetByID(ctx, bug.ProjectID)
	if err != nil {
		return "", err
	}
	return project.OrgID, nil
}

// notifyBugWatchers создаёт уведомления для репортёра и исполнителя бага,
// исключая самого актора
func notifyBugWatchers(ctx context.Context, tx storage.Tx, orgID string, bug *domain.Bug, actorID string, kind domain.NotificationKind, payload map[string]any) error {
	recipients := []string{bug.ReportedBy}
	if bug.AssignedTo != nil {
		recipients = append(recipients, *bug.AssignedTo)
	}

	seen := make(map[string]bool, len(recipients))
	for _, recipientID := range recipients {
		if recipientID == actorID || seen[recipientID] {
			continue
		}
		seen[recipientID] = true

		notification := &domain.Notification{
			ID:          uuid.NewString(),
			OrgID:       orgID,
			RecipientID: recipientID,
			Kind:        kind,
			Payload:     payload,
		}
		if err := tx.NotificationRepo().Create(ctx, notification); err != nil {
			return err
		}
		metrics.NotificationCreatedTotal.WithLabelValues(string(kind)).Inc()
	}
	return nil
}

// postToChatIntegrations отправляет сообщение во все активные чат-интеграции
// организации. Ошибки доставки логируются и не влияют на вызвавшую операцию.
func (s *Service) postToChatIntegrations(chatIntegrations []domain.Integration, text string) {
	if len(chatIntegrations) == 0 {
		return
	}

	// Доставка идёт вне транзакции и вне запроса
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		for i := range chatIntegrations {
			integ := &chatIntegrations[i]
			notifier, ok := s.registry.Notifier(integ.Provider)
			if !ok {
				continue
			}

			if err := notifier.PostMessage(ctx, integ, text); err != nil {
				metrics.ChatDeliveryTotal.WithLabelValues(string(integ.Provider), "error").Inc()
				log.Warn().
					Err(err).
					Str("layer", "service").
					Str("provider", string(integ.Provider)).
					Msg("chat delivery failed")
				continue
			}
			metrics.ChatDeliveryTotal.WithLabelValues(string(integ.Provider), "ok").Inc()
		}
	}()
}

// CreateBug создаёт баг в статусе OPEN с рассылкой уведомлений
func (s *Service) CreateBug(outerCtx context.Context, input *domain.CreateBugInput) (*domain.Bug, error) {
	const op = "service.CreateBug"
	defer observe(op, time.Now())
	requestID := logger.GetRequestID(outerCtx)
	var bug *domain.Bug
	var chatIntegrations []domain.Integration

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("project_id", input.ProjectID).
		Str("severity", string(input.Severity)).
		Msg("creating bug")

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if !domain.ValidBugSeverity(input.Severity) || !domain.ValidPriority(input.Priority) {
			return domain.ErrInvalidInput
		}

		project, err := tx.ProjectRepo().GetByID(ctx, input.ProjectID)
		if err != nil {
			return err
		}
		if _, err := requireWriter(ctx, tx, project.OrgID, input.ReportedBy); err != nil {
			return err
		}

		if input.ModuleID != nil {
			module, err := tx.ProjectRepo().GetModule(ctx, *input.ModuleID)
			if err != nil {
				return err
			}
			if module.ProjectID != input.ProjectID {
				return domain.ErrInvalidInput
			}
		}
		if input.TestCaseID != nil {
			if _, err := tx.TestCaseRepo().GetByID(ctx, *input.TestCaseID); err != nil {
				return err
			}
		}

		bug = &domain.Bug{
			ID:          uuid.NewString(),
			ProjectID:   input.ProjectID,
			ModuleID:    input.ModuleID,
			TestCaseID:  input.TestCaseID,
			Title:       input.Title,
			Description: input.Description,
			Severity:    input.Severity,
			Priority:    input.Priority,
			Status:      domain.BugStatusOpen,
			ReportedBy:  input.ReportedBy,
		}
		if err := tx.BugRepo().Create(ctx, bug); err != nil {
			return err
		}
		metrics.BugCreatedTotal.Inc()

		chatIntegrations, err = tx.IntegrationRepo().ListActiveChat(ctx, project.OrgID)
		if err != nil {
			return err
		}

		log.Info().
			Str("request_id", requestID).
			Str("layer", "service").
			Str("bug_id", bug.ID).
			Msg("bug created")

		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	s.postToChatIntegrations(chatIntegrations,
		fmt.Sprintf("🐞 New bug reported: %s [%s/%s]", bug.Title, bug.Severity, bug.Priority))

	return bug, nil
}

// GetBug возвращает баг со скриншотами, комментариями и внешними связями
func (s *Service) GetBug(outerCtx context.Context, bugID, actorID string) (*domain.BugDetail, error) {
	const op = "service.GetBug"
	defer observe(op, time.Now())
	var detail *domain.BugDetail

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		found, err := tx.BugRepo().GetByID(ctx, bugID)
		if err != nil {
			return err
		}
		orgID, err := bugOrg(ctx, tx, found)
		if err != nil {
			return err
		}
		if _, err := requireMember(ctx, tx, orgID, actorID); err != nil {
			return err
		}

		screenshots, err := tx.ScreenshotRepo().ListByBug(ctx, bugID)
		if err != nil {
			return err
		}
		comments, err := tx.CommentRepo().ListByBug(ctx, bugID)
		if err != nil {
			return err
		}

		detail = &domain.BugDetail{
			Bug:         *found,
			Screenshots: screenshots,
			Comments:    comments,
		}
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return detail, nil
}

// ListBugs возвращает баги проекта с фильтрами
func (s *Service) ListBugs(outerCtx context.Context, filter *domain.BugFilter) ([]domain.BugShort, error) {
	const op = "service.ListBugs"
	defer observe(op, time.Now())
	var bugs []domain.BugShort

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		project, err := tx.ProjectRepo().GetByID(ctx, filter.ProjectID)
		if err != nil {
			return err
		}
		if _, err := requireMember(ctx, tx, project.OrgID, filter.ActorID); err != nil {
			return err
		}
		found, err := tx.BugRepo().List(ctx, filter)
		if err != nil {
			return err
		}
		bugs = found
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return bugs, nil
}

// UpdateBug редактирует заголовок/описание/серьёзность/приоритет
func (s *Service) UpdateBug(outerCtx context.Context, input *domain.UpdateBugInput) (*domain.Bug, error) {
	const op = "service.UpdateBug"
	defer observe(op, time.Now())
	var bug *domain.Bug

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if input.Severity != nil && !domain.ValidBugSeverity(*input.Severity) {
			return domain.ErrInvalidInput
		}
		if input.Priority != nil && !domain.ValidPriority(*input.Priority) {
			return domain.ErrInvalidInput
		}

		found, err := tx.BugRepo().GetByID(ctx, input.BugID)
		if err != nil {
			return err
		}
		orgID, err := bugOrg(ctx, tx, found)
		if err != nil {
			return err
		}
		if _, err := requireWriter(ctx, tx, orgID, input.ActorID); err != nil {
			return err
		}

		if input.Title != nil {
			found.Title = *input.Title
		}
		if input.Description != nil {
			found.Description = *input.Description
		}
		if input.Severity != nil {
			found.Severity = *input.Severity
		}
		if input.Priority != nil {
			found.Priority = *input.Priority
		}

		if err := tx.BugRepo().Update(ctx, found); err != nil {
			return err
		}
		bug = found
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return bug, nil
}

// AssignBug назначает или снимает исполнителя
func (s *Service) AssignBug(outerCtx context.Context, input *domain.AssignBugInput) (*domain.Bug, error) {
	const op = "service.AssignBug"
	defer observe(op, time.Now())
	var bug *domain.Bug

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		found, err := tx.BugRepo().GetByID(ctx, input.BugID)
		if err != nil {
			return err
		}
		orgID, err := bugOrg(ctx, tx, found)
		if err != nil {
			return err
		}
		if _, err := requireWriter(ctx, tx, orgID, input.ActorID); err != nil {
			return err
		}

		// Новый исполнитель должен быть активным участником организации
		if input.AssigneeID != nil {
			assignee, err := tx.OrgRepo().GetMember(ctx, orgID, *input.AssigneeID)
			if err != nil {
				return err
			}
			if !assignee.IsActive {
				return domain.ErrInvalidInput
			}
		}

		found.AssignedTo = input.AssigneeID
		if err := tx.BugRepo().Update(ctx, found); err != nil {
			return err
		}

		if input.AssigneeID != nil && *input.AssigneeID != input.ActorID {
			notification := &domain.Notification{
				ID:          uuid.NewString(),
				OrgID:       orgID,
				RecipientID: *input.AssigneeID,
				Kind:        domain.NotificationBugAssigned,
				Payload: map[string]any{
					"bug_id":    found.ID,
					"bug_title": found.Title,
					"actor_id":  input.ActorID,
				},
			}
			if err := tx.NotificationRepo().Create(ctx, notification); err != nil {
				return err
			}
			metrics.NotificationCreatedTotal.WithLabelValues(string(domain.NotificationBugAssigned)).Inc()
		}

		bug = found
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return bug, nil
}

// SetBugStatus меняет статус бага, сверяясь с таблицей переходов
func (s *Service) SetBugStatus(outerCtx context.Context, input *domain.SetBugStatusInput) (*domain.Bug, error) {
	const op = "service.SetBugStatus"
	defer observe(op, time.Now())
	requestID := logger.GetRequestID(outerCtx)
	var bug *domain.Bug
	var chatIntegrations []domain.Integration
	var fromStatus domain.BugStatus

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if !domain.ValidBugStatus(input.Status) {
			return domain.ErrInvalidInput
		}

		found, err := tx.BugRepo().GetByID(ctx, input.BugID)
		if err != nil {
			return err
		}
		orgID, err := bugOrg(ctx, tx, found)
		if err != nil {
			return err
		}
		if _, err := requireWriter(ctx, tx, orgID, input.ActorID); err != nil {
			return err
		}

		if !domain.CanTransitionBug(found.Status, input.Status) {
			metrics.InvalidTransitionTotal.Inc()
			log.Warn().
				Str("request_id", requestID).
				Str("layer", "service").
				Str("bug_id", found.ID).
				Str("from", string(found.Status)).
				Str("to", string(input.Status)).
				Msg("rejected bug status transition")
			return domain.ErrInvalidTransition
		}

		fromStatus = found.Status
		found.Status = input.Status

		// RESOLVED проставляет resolved_at, возврат в работу очищает его
		now := time.Now()
		switch input.Status {
		case domain.BugStatusResolved:
			found.ResolvedAt = &now
		case domain.BugStatusReopened, domain.BugStatusInProgress:
			found.ResolvedAt = nil
		}

		if err := tx.BugRepo().Update(ctx, found); err != nil {
			return err
		}
		metrics.BugStatusTransitionsTotal.WithLabelValues(string(fromStatus), string(input.Status)).Inc()

		payload := map[string]any{
			"bug_id":    found.ID,
			"bug_title": found.Title,
			"from":      string(fromStatus),
			"to":        string(input.Status),
			"actor_id":  input.ActorID,
		}
		if err := notifyBugWatchers(ctx, tx, orgID, found, input.ActorID, domain.NotificationBugStatusChanged, payload); err != nil {
			return err
		}

		chatIntegrations, err = tx.IntegrationRepo().ListActiveChat(ctx, orgID)
		if err != nil {
			return err
		}

		bug = found
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	s.postToChatIntegrations(chatIntegrations,
		fmt.Sprintf("Bug %q moved %s → %s", bug.Title, fromStatus, bug.Status))

	return bug, nil
}
