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

// CreateProject создаёт проект с уникальным ключом внутри организации
func (s *Service) CreateProject(outerCtx context.Context, input *domain.CreateProjectInput) (*domain.Project, error) {
	const op = "service.CreateProject"
	defer observe(op, time.Now())
	requestID := logger.GetRequestID(outerCtx)
	var project *domain.Project

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("org_id", input.OrgID).
		Str("key", input.Key).
		Msg("creating project")

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if _, err := requireManager(ctx, tx, input.OrgID, input.ActorID); err != nil {
			return err
		}

		project = &domain.Project{
			ID:          uuid.NewString(),
			OrgID:       input.OrgID,
			Name:        input.Name,
			Key:         input.Key,
			Description: input.Description,
		}
		return tx.ProjectRepo().Create(ctx, project)
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return project, nil
}

// ListProjects возвращает проекты организации её участнику
func (s *Service) ListProjects(outerCtx context.Context, orgID, actorID string) ([]domain.Project, error) {
	const op = "service.ListProjects"
	defer observe(op, time.Now())
	var projects []domain.Project

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if _, err := requireMember(ctx, tx, orgID, actorID); err != nil {
			return err
		}
		found, err := tx.ProjectRepo().ListByOrg(ctx, orgID)
		if err != nil {
			return err
		}
		projects = found
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return projects, nil
}

// UpdateProject обновляет имя/описание проекта
func (s *Service) UpdateProject(outerCtx context.Context, input *domain.UpdateProjectInput) (*domain.Project, error) {
	const op = "service.UpdateProject"
	defer observe(op, time.Now())
	var project *domain.Project

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		found, err := tx.ProjectRepo().GetByID(ctx, input.ProjectID)
		if err != nil {
			return err
		}
		if _, err := requireManager(ctx, tx, found.OrgID, input.ActorID); err != nil {
			return err
		}

		if input.Name != nil {
			found.Name = *input.Name
		}
		if input.Description != nil {
			found.Description = *input.Description
		}

		if err := tx.ProjectRepo().Update(ctx, found); err != nil {
			return err
		}
		project = found
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return project, nil
}

// ArchiveProject архивирует проект вместо удаления
func (s *Service) ArchiveProject(outerCtx context.Context, projectID, actorID string) (*domain.Project, error) {
	const op = "service.ArchiveProject"
	defer observe(op, time.Now())
	var project *domain.Project

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		found, err := tx.ProjectRepo().GetByID(ctx, projectID)
		if err != nil {
			return err
		}
		if _, err := requireManager(ctx, tx, found.OrgID, actorID); err != nil {
			return err
		}

		found.Archived = true
		if err := tx.ProjectRepo().Update(ctx, found); err != nil {
			return err
		}
		project = found
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return project, nil
}

// CreateModule создаёт модуль в проекте
func (s *Service) CreateModule(outerCtx context.Context, input *domain.CreateModuleInput) (*domain.Module, error) {
	const op = "service.CreateModule"
	defer observe(op, time.Now())
	var module *domain.Module

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		project, err := tx.ProjectRepo().GetByID(ctx, input.ProjectID)
		if err != nil {
			return err
		}
		if _, err := requireWriter(ctx, tx, project.OrgID, input.ActorID); err != nil {
			return err
		}

		module = &domain.Module{
			ID:          uuid.NewString(),
			ProjectID:   input.ProjectID,
			Name:        input.Name,
			Description: input.Description,
			SortOrder:   input.SortOrder,
		}
		return tx.ProjectRepo().CreateModule(ctx, module)
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return module, nil
}

// ListModules возвращает модули проекта в порядке sort_order
func (s *Service) ListModules(outerCtx context.Context, projectID, actorID string) ([]domain.Module, error) {
	const op = "service.ListModules"
	defer observe(op, time.Now())
	var modules []domain.Module

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		project, err := tx.ProjectRepo().GetByID(ctx, projectID)
		if err != nil {
			return err
		}
		if _, err := requireMember(ctx, tx, project.OrgID, actorID); err != nil {
			return err
		}
		found, err := tx.ProjectRepo().ListModules(ctx, projectID)
		if err != nil {
			return err
		}
		modules = found
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return modules, nil
}

// UpdateModule обновляет модуль
func (s *Service) UpdateModule(outerCtx context.Context, input *domain.UpdateModuleInput) (*domain.Module, error) {
	const op = "service.UpdateModule"
	defer observe(op, time.Now())
	var module *domain.Module

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		found, err := tx.ProjectRepo().GetModule(ctx, input.ModuleID)
		if err != nil {
			return err
		}
		project, err := tx.ProjectRepo().GetByID(ctx, found.ProjectID)
		if err != nil {
			return err
		}
		if _, err := requireWriter(ctx, tx, project.OrgID, input.ActorID); err != nil {
			return err
		}

		if input.Name != nil {
			found.Name = *input.Name
		}
		if input.Description != nil {
			found.Description = *input.Description
		}
		if input.SortOrder != nil {
			found.SortOrder = *input.SortOrder
		}

		if err := tx.ProjectRepo().UpdateModule(ctx, found); err != nil {
			return err
		}
		module = found
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return module, nil
}

// DeleteModule удаляет модуль; запрещено пока на него ссылаются
// тест-кейсы или баги
func (s *Service) DeleteModule(outerCtx context.Context, moduleID, actorID string) error {
	const op = "service.DeleteModule"
	defer observe(op, time.Now())

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		module, err := tx.ProjectRepo().GetModule(ctx, moduleID)
		if err != nil {
			return err
		}
		project, err := tx.ProjectRepo().GetByID(ctx, module.ProjectID)
		if err != nil {
			return err
		}
		if _, err := requireManager(ctx, tx, project.OrgID, actorID); err != nil {
			return err
		}

		testCases, err := tx.ProjectRepo().CountTestCases(ctx, moduleID)
		if err != nil {
			return err
		}
		bugs, err := tx.ProjectRepo().CountBugs(ctx, moduleID)
		if err != nil {
			return err
		}
		if testCases > 0 || bugs > 0 {
			return domain.ErrModuleInUse
		}

		return tx.ProjectRepo().DeleteModule(ctx, moduleID)
	})

	if err != nil {
		return s.formatError(outerCtx, op, err)
	}

	return nil
}
