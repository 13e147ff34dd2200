package gorm

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"buglens/internal/domain"
	"buglens/internal/logger"
	"buglens/internal/storage"
)

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository создаёт новый репозиторий проектов и модулей
func NewProjectRepository(db *gorm.DB) storage.ProjectRepository {
	return &projectRepository{db: db}
}

// Create создаёт проект
func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	requestID := logger.GetRequestID(ctx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Str("project_id", project.ID).
		Str("key", project.Key).
		Msg("creating project in database")

	dbProject := &Project{
		ProjectID:   project.ID,
		OrgID:       project.OrgID,
		Name:        project.Name,
		Key:         project.Key,
		Description: project.Description,
	}

	if err := r.db.WithContext(ctx).Create(dbProject).Error; err != nil {
		if isUniqueViolation(err) {
			log.Warn().
				Str("request_id", requestID).
				Str("layer", "storage").
				Str("key", project.Key).
				Msg("project key already taken in organization")
			return storage.ErrAlreadyExists
		}
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("project_id", project.ID).
			Msg("error creating project")
		return err
	}

	project.CreatedAt = &dbProject.CreatedAt
	return nil
}

// GetByID возвращает проект по ID
func (r *projectRepository) GetByID(ctx context.Context, projectID string) (*domain.Project, error) {
	var dbProject Project
	err := r.db.WithContext(ctx).First(&dbProject, "project_id = ?", projectID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().
				Str("request_id", logger.GetRequestID(ctx)).
				Str("layer", "storage").
				Str("project_id", projectID).
				Msg("project not found")
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	project := mapProjectToDomain(&dbProject)
	return &project, nil
}

// ListByOrg возвращает проекты организации
func (r *projectRepository) ListByOrg(ctx context.Context, orgID string) ([]domain.Project, error) {
	var dbProjects []Project
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("created_at").
		Find(&dbProjects).Error
	if err != nil {
		return nil, err
	}

	projects := make([]domain.Project, len(dbProjects))
	for i, p := range dbProjects {
		projects[i] = mapProjectToDomain(&p)
	}
	return projects, nil
}

// Update обновляет проект
func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	result := r.db.WithContext(ctx).
		Model(&Project{}).
		Where("project_id = ?", project.ID).
		Updates(map[string]interface{}{
			"name":        project.Name,
			"description": project.Description,
			"archived":    project.Archived,
		})

	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "storage").
			Str("project_id", project.ID).
			Msg("error updating project")
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// CreateModule создаёт модуль
func (r *projectRepository) CreateModule(ctx context.Context, module *domain.Module) error {
	requestID := logger.GetRequestID(ctx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Str("module_id", module.ID).
		Str("project_id", module.ProjectID).
		Msg("creating module")

	dbModule := &Module{
		ModuleID:    module.ID,
		ProjectID:   module.ProjectID,
		Name:        module.Name,
		Description: module.Description,
		SortOrder:   module.SortOrder,
	}

	if err := r.db.WithContext(ctx).Create(dbModule).Error; err != nil {
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("module_id", module.ID).
			Msg("error creating module")
		return err
	}

	return nil
}

// GetModule возвращает модуль по ID
func (r *projectRepository) GetModule(ctx context.Context, moduleID string) (*domain.Module, error) {
	var dbModule Module
	err := r.db.WithContext(ctx).First(&dbModule, "module_id = ?", moduleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	module := mapModuleToDomain(&dbModule)
	return &module, nil
}

// ListModules возвращает модули проекта по возрастанию sort_order
func (r *projectRepository) ListModules(ctx context.Context, projectID string) ([]domain.Module, error) {
	var dbModules []Module
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("sort_order, name").
		Find(&dbModules).Error
	if err != nil {
		return nil, err
	}

	modules := make([]domain.Module, len(dbModules))
	for i, m := range dbModules {
		modules[i] = mapModuleToDomain(&m)
	}
	return modules, nil
}

// UpdateModule обновляет модуль
func (r *projectRepository) UpdateModule(ctx context.Context, module *domain.Module) error {
	result := r.db.WithContext(ctx).
		Model(&Module{}).
		Where("module_id = ?", module.ID).
		Updates(map[string]interface{}{
			"name":        module.Name,
			"description": module.Description,
			"sort_order":  module.SortOrder,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// DeleteModule удаляет модуль
func (r *projectRepository) DeleteModule(ctx context.Context, moduleID string) error {
	result := r.db.WithContext(ctx).Delete(&Module{}, "module_id = ?", moduleID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// CountTestCases возвращает число тест-кейсов, ссылающихся на модуль
func (r *projectRepository) CountTestCases(ctx context.Context, moduleID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&TestCase{}).
		Where("module_id = ?", moduleID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountBugs возвращает число багов, ссылающихся на модуль
func (r *projectRepository) CountBugs(ctx context.Context, moduleID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Bug{}).
		Where("module_id = ?", moduleID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func mapProjectToDomain(p *Project) domain.Project {
	return domain.Project{
		ID:          p.ProjectID,
		OrgID:       p.OrgID,
		Name:        p.Name,
		Key:         p.Key,
		Description: p.Description,
		Archived:    p.Archived,
		CreatedAt:   &p.CreatedAt,
	}
}

func mapModuleToDomain(m *Module) domain.Module {
	return domain.Module{
		ID:          m.ModuleID,
		ProjectID:   m.ProjectID,
		Name:        m.Name,
		Description: m.Description,
		SortOrder:   m.SortOrder,
	}
}
