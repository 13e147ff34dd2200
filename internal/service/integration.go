package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"buglens/internal/domain"
	"buglens/internal/logger"
	"buglens/internal/metrics"
	"buglens/internal/storage"
)

// validProvider проверяет, что провайдер известен
func validProvider(p domain.IntegrationProvider) bool {
	switch p {
	case domain.ProviderJira, domain.ProviderTrello, domain.ProviderSlack,
		domain.ProviderTeams, domain.ProviderAzureDevOps:
		return true
	}
	return false
}

// ConfigureIntegration создаёт или обновляет интеграцию организации.
// Для трекеров реквизиты проверяются пробным запросом к внешнему API.
func (s *Service) ConfigureIntegration(outerCtx context.Context, input *domain.ConfigureIntegrationInput) (*domain.Integration, error) {
	const op = "service.ConfigureIntegration"
	defer observe(op, time.Now())
	requestID := logger.GetRequestID(outerCtx)

	if !validProvider(input.Provider) {
		return nil, domain.ErrInvalidInput
	}

	integ := &domain.Integration{
		ID:           uuid.NewString(),
		OrgID:        input.OrgID,
		Provider:     input.Provider,
		Credentials:  input.Credentials,
		FieldMapping: input.FieldMapping,
		Active:       true,
	}

	// Проверка соединения до записи, чтобы не сохранять нерабочие реквизиты
	if input.Provider.IsIssueTracker() {
		tracker, ok := s.registry.Tracker(input.Provider)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		if err := tracker.Ping(outerCtx, integ); err != nil {
			log.Warn().
				Err(err).
				Str("request_id", requestID).
				Str("layer", "service").
				Str("provider", string(input.Provider)).
				Msg("integration connection test failed")
			return nil, domain.WrapError(err, domain.ErrInvalidInput.Status,
				domain.ErrorCodeInvalidInput, "connection test failed")
		}
	}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if _, err := requireManager(ctx, tx, input.OrgID, input.ActorID); err != nil {
			return err
		}
		return tx.IntegrationRepo().Upsert(ctx, integ)
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return integ, nil
}

// ListIntegrations возвращает интеграции организации её участнику
func (s *Service) ListIntegrations(outerCtx context.Context, orgID, actorID string) ([]domain.Integration, error) {
	const op = "service.ListIntegrations"
	defer observe(op, time.Now())
	var list []domain.Integration

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if _, err := requireMember(ctx, tx, orgID, actorID); err != nil {
			return err
		}
		found, err := tx.IntegrationRepo().ListByOrg(ctx, orgID)
		if err != nil {
			return err
		}
		list = found
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return list, nil
}

// DeactivateIntegration выключает интеграцию
func (s *Service) DeactivateIntegration(outerCtx context.Context, integrationID, actorID string) error {
	const op = "service.DeactivateIntegration"
	defer observe(op, time.Now())

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		integ, err := tx.IntegrationRepo().GetByID(ctx, integrationID)
		if err != nil {
			return err
		}
		if _, err := requireManager(ctx, tx, integ.OrgID, actorID); err != nil {
			return err
		}

		integ.Active = false
		return tx.IntegrationRepo().Update(ctx, integ)
	})

	if err != nil {
		return s.formatError(outerCtx, op, err)
	}

	return nil
}

// PushBugToTracker создаёт задачу во внешнем трекере и сохраняет связь.
// Повторный push бага тому же провайдеру - конфликт.
func (s *Service) PushBugToTracker(outerCtx context.Context, input *domain.PushBugInput) (*domain.BugExternalLink, error) {
	const op = "service.PushBugToTracker"
	defer observe(op, time.Now())
	requestID := logger.GetRequestID(outerCtx)

	if !input.Provider.IsIssueTracker() {
		return nil, domain.ErrInvalidInput
	}

	var bug *domain.Bug
	var integ *domain.Integration

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

		for _, link := range found.ExternalLinks {
			if link.Provider == input.Provider {
				return domain.ErrAlreadyLinked
			}
		}

		active, err := tx.IntegrationRepo().GetActive(ctx, orgID, input.Provider)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return domain.ErrNoIntegration
			}
			return err
		}

		bug = found
		integ = active
		return nil
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	tracker, ok := s.registry.Tracker(input.Provider)
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	issue, err := tracker.CreateIssue(outerCtx, integ, bug)
	if err != nil {
		metrics.IntegrationPushTotal.WithLabelValues(string(input.Provider), "error").Inc()
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("layer", "service").
			Str("bug_id", input.BugID).
			Str("provider", string(input.Provider)).
			Msg("failed to create remote issue")
		return nil, s.formatError(outerCtx, op, err)
	}

	link := &domain.BugExternalLink{
		BugID:       bug.ID,
		Provider:    input.Provider,
		ExternalID:  issue.ExternalID,
		ExternalKey: issue.ExternalID,
		ExternalURL: issue.URL,
	}

	// Уникальный индекс по (provider, external_id) прикрывает гонку двух push
	err = s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		return tx.BugRepo().CreateExternalLink(ctx, link)
	})
	if err != nil {
		metrics.IntegrationPushTotal.WithLabelValues(string(input.Provider), "error").Inc()
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.IntegrationPushTotal.WithLabelValues(string(input.Provider), "ok").Inc()

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("bug_id", bug.ID).
		Str("provider", string(input.Provider)).
		Str("external_id", issue.ExternalID).
		Msg("bug pushed to tracker")

	return link, nil
}

// HandleTrackerWebhook применяет смену статуса из вебхука внешнего трекера.
// Неизвестный external id и запрещённый переход не являются ошибками: вебхук
// подтверждается, чтобы внешний сервис не зациклился на повторах.
func (s *Service) HandleTrackerWebhook(outerCtx context.Context, input *domain.TrackerWebhookInput) (*domain.TrackerWebhookResult, error) {
	const op = "service.HandleTrackerWebhook"
	defer observe(op, time.Now())
	requestID := logger.GetRequestID(outerCtx)

	metrics.WebhookReceivedTotal.WithLabelValues(string(input.Provider)).Inc()

	result := &domain.TrackerWebhookResult{}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		bug, err := tx.BugRepo().GetByExternalID(ctx, input.Provider, input.ExternalID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.Info().
					Str("request_id", requestID).
					Str("layer", "service").
					Str("provider", string(input.Provider)).
					Str("external_id", input.ExternalID).
					Msg("webhook for unknown external id, ignoring")
				return nil
			}
			return err
		}
		result.Matched = true
		result.BugID = bug.ID

		orgID, err := bugOrg(ctx, tx, bug)
		if err != nil {
			return err
		}

		integ, err := tx.IntegrationRepo().GetActive(ctx, orgID, input.Provider)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil
			}
			return err
		}

		localStatus, mapped := integ.FieldMapping.LocalStatusFor(input.RemoteStatus)
		if !mapped {
			log.Info().
				Str("request_id", requestID).
				Str("layer", "service").
				Str("provider", string(input.Provider)).
				Str("remote_status", input.RemoteStatus).
				Msg("remote status not present in field mapping, ignoring")
			return nil
		}

		if localStatus == bug.Status {
			return nil
		}
		if !domain.CanTransitionBug(bug.Status, localStatus) {
			metrics.InvalidTransitionTotal.Inc()
			log.Warn().
				Str("request_id", requestID).
				Str("layer", "service").
				Str("bug_id", bug.ID).
				Str("from", string(bug.Status)).
				Str("to", string(localStatus)).
				Msg("webhook transition not allowed, skipping")
			return nil
		}

		fromStatus := bug.Status
		bug.Status = localStatus

		now := time.Now()
		switch localStatus {
		case domain.BugStatusResolved:
			bug.ResolvedAt = &now
		case domain.BugStatusReopened, domain.BugStatusInProgress:
			bug.ResolvedAt = nil
		}

		if err := tx.BugRepo().Update(ctx, bug); err != nil {
			return err
		}
		metrics.BugStatusTransitionsTotal.WithLabelValues(string(fromStatus), string(localStatus)).Inc()
		metrics.WebhookAppliedTotal.WithLabelValues(string(input.Provider)).Inc()

		payload := map[string]any{
			"bug_id":    bug.ID,
			"bug_title": bug.Title,
			"from":      string(fromStatus),
			"to":        string(localStatus),
			"source":    string(input.Provider),
		}
		if err := notifyBugWatchers(ctx, tx, orgID, bug, "", domain.NotificationBugStatusChanged, payload); err != nil {
			return err
		}

		result.Applied = true
		result.NewStatus = localStatus
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return result, nil
}
