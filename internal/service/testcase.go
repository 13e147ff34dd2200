package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"buglens/internal/domain"
	"buglens/internal/logger"
	"buglens/internal/storage"
)

// testCaseOrg возвращает org_id, которому принадлежит тест-кейс (через модуль и проект)
func testCaseOrg(ctx context.Context, tx storage.Tx, tc *domain.TestCase) (string, error) {
	module, err := tx.ProjectRepo().GetModule(ctx, tc.ModuleID)
	if err != nil {
		return "", err
	}
	project, err := tx.ProjectRepo().GetByID(ctx, module.ProjectID)
	if err != nil {
		return "", err
	}
	return project.OrgID, nil
}

// CreateTestCase создаёт тест-кейс в статусе DRAFT
func (s *Service) CreateTestCase(outerCtx context.Context, input *domain.CreateTestCaseInput) (*domain.TestCase, error) {
	const op = "service.CreateTestCase"
	defer observe(op, time.Now())
	requestID := logger.GetRequestID(outerCtx)
	var tc *domain.TestCase

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("module_id", input.ModuleID).
		Msg("creating test case")

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if !domain.ValidPriority(input.Priority) {
			return domain.ErrInvalidInput
		}

		module, err := tx.ProjectRepo().GetModule(ctx, input.ModuleID)
		if err != nil {
			return err
		}
		project, err := tx.ProjectRepo().GetByID(ctx, module.ProjectID)
		if err != nil {
			return err
		}
		if _, err := requireWriter(ctx, tx, project.OrgID, input.ActorID); err != nil {
			return err
		}

		tc = &domain.TestCase{
			ID:             uuid.NewString(),
			ModuleID:       input.ModuleID,
			Title:          input.Title,
			Description:    input.Description,
			Steps:          input.Steps,
			ExpectedResult: input.ExpectedResult,
			Priority:       input.Priority,
			Status:         domain.TestCaseStatusDraft,
		}
		return tx.TestCaseRepo().Create(ctx, tc)
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return tc, nil
}

// GetTestCase возвращает тест-кейс по ID участнику организации
func (s *Service) GetTestCase(outerCtx context.Context, testCaseID, actorID string) (*domain.TestCase, error) {
	const op = "service.GetTestCase"
	defer observe(op, time.Now())
	var tc *domain.TestCase

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		found, err := tx.TestCaseRepo().GetByID(ctx, testCaseID)
		if err != nil {
			return err
		}
		orgID, err := testCaseOrg(ctx, tx, found)
		if err != nil {
			return err
		}
		if _, err := requireMember(ctx, tx, orgID, actorID); err != nil {
			return err
		}
		tc = found
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return tc, nil
}

// UpdateTestCase обновляет поля тест-кейса
func (s *Service) UpdateTestCase(outerCtx context.Context, input *domain.UpdateTestCaseInput) (*domain.TestCase, error) {
	const op = "service.UpdateTestCase"
	defer observe(op, time.Now())
	var tc *domain.TestCase

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if input.Priority != nil && !domain.ValidPriority(*input.Priority) {
			return domain.ErrInvalidInput
		}

		found, err := tx.TestCaseRepo().GetByID(ctx, input.TestCaseID)
		if err != nil {
			return err
		}
		orgID, err := testCaseOrg(ctx, tx, found)
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
		if input.Steps != nil {
			found.Steps = input.Steps
		}
		if input.ExpectedResult != nil {
			found.ExpectedResult = *input.ExpectedResult
		}
		if input.Priority != nil {
			found.Priority = *input.Priority
		}

		if err := tx.TestCaseRepo().Update(ctx, found); err != nil {
			return err
		}
		tc = found
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return tc, nil
}

// SetTestCaseStatus меняет статус тест-кейса; любой переход разрешён,
// таблица переходов тест-кейсов носит рекомендательный характер
func (s *Service) SetTestCaseStatus(outerCtx context.Context, testCaseID string, status domain.TestCaseStatus, actorID string) (*domain.TestCase, error) {
	const op = "service.SetTestCaseStatus"
	defer observe(op, time.Now())
	var tc *domain.TestCase

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if !domain.ValidTestCaseStatus(status) {
			return domain.ErrInvalidInput
		}

		found, err := tx.TestCaseRepo().GetByID(ctx, testCaseID)
		if err != nil {
			return err
		}
		orgID, err := testCaseOrg(ctx, tx, found)
		if err != nil {
			return err
		}
		if _, err := requireWriter(ctx, tx, orgID, actorID); err != nil {
			return err
		}

		found.Status = status
		if err := tx.TestCaseRepo().Update(ctx, found); err != nil {
			return err
		}
		tc = found
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return tc, nil
}

// ListTestCases возвращает тест-кейсы модуля с фильтрами
func (s *Service) ListTestCases(outerCtx context.Context, filter *domain.TestCaseFilter) ([]domain.TestCase, error) {
	const op = "service.ListTestCases"
	defer observe(op, time.Now())
	var testCases []domain.TestCase

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		module, err := tx.ProjectRepo().GetModule(ctx, filter.ModuleID)
		if err != nil {
			return err
		}
		project, err := tx.ProjectRepo().GetByID(ctx, module.ProjectID)
		if err != nil {
			return err
		}
		if _, err := requireMember(ctx, tx, project.OrgID, filter.ActorID); err != nil {
			return err
		}
		found, err := tx.TestCaseRepo().List(ctx, filter)
		if err != nil {
			return err
		}
		testCases = found
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return testCases, nil
}

// DeleteTestCase удаляет тест-кейс
func (s *Service) DeleteTestCase(outerCtx context.Context, testCaseID, actorID string) error {
	const op = "service.DeleteTestCase"
	defer observe(op, time.Now())

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		found, err := tx.TestCaseRepo().GetByID(ctx, testCaseID)
		if err != nil {
			return err
		}
		orgID, err := testCaseOrg(ctx, tx, found)
		if err != nil {
			return err
		}
		if _, err := requireWriter(ctx, tx, orgID, actorID); err != nil {
			return err
		}

		return tx.TestCaseRepo().Delete(ctx, testCaseID)
	})

	if err != nil {
		return s.formatError(outerCtx, op, err)
	}

	return nil
}
