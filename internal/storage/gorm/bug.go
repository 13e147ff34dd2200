package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"buglens/internal/domain"
	"buglens/internal/logger"
	"buglens/internal/storage"
)

type bugRepository struct {
	db *gorm.DB
}

// NewBugRepository создаёт новый репозиторий багов
func NewBugRepository(db *gorm.DB) storage.BugRepository {
	return &bugRepository{db: db}
}

// Create создаёт баг
func (r *bugRepository) Create(ctx context.Context, bug *domain.Bug) error {
	requestID := logger.GetRequestID(ctx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Str("bug_id", bug.ID).
		Str("project_id", bug.ProjectID).
		Msg("creating bug in database")

	dbBug := &Bug{
		BugID:       bug.ID,
		ProjectID:   bug.ProjectID,
		ModuleID:    bug.ModuleID,
		TestCaseID:  bug.TestCaseID,
		Title:       bug.Title,
		Description: bug.Description,
		Severity:    string(bug.Severity),
		Priority:    string(bug.Priority),
		Status:      string(bug.Status),
		ReportedBy:  bug.ReportedBy,
		AssignedTo:  bug.AssignedTo,
	}

	if err := r.db.WithContext(ctx).Create(dbBug).Error; err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("bug_id", bug.ID).
			Msg("error creating bug")
		return err
	}

	bug.CreatedAt = &dbBug.CreatedAt
	bug.UpdatedAt = &dbBug.UpdatedAt
	return nil
}

// GetByID возвращает баг с внешними связями
func (r *bugRepository) GetByID(ctx context.Context, bugID string) (*domain.Bug, error) {
	var dbBug Bug
	err := r.db.WithContext(ctx).First(&dbBug, "bug_id = ?", bugID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().
				Str("request_id", logger.GetRequestID(ctx)).
				Str("layer", "storage").
				Str("bug_id", bugID).
				Msg("bug not found")
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	links, err := r.listExternalLinks(ctx, bugID)
	if err != nil {
		return nil, err
	}

	bug := mapBugToDomain(&dbBug)
	bug.ExternalLinks = links
	return bug, nil
}

// List возвращает баги проекта с фильтрами
func (r *bugRepository) List(ctx context.Context, filter *domain.BugFilter) ([]domain.BugShort, error) {
	query := r.db.WithContext(ctx).Where("project_id = ?", filter.ProjectID)
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Severity != nil {
		query = query.Where("severity = ?", string(*filter.Severity))
	}
	if filter.AssignedTo != nil {
		query = query.Where("assigned_to = ?", *filter.AssignedTo)
	}
	if filter.ModuleID != nil {
		query = query.Where("module_id = ?", *filter.ModuleID)
	}

	var dbBugs []Bug
	if err := query.Order("created_at DESC").Find(&dbBugs).Error; err != nil {
		return nil, err
	}

	bugs := make([]domain.BugShort, len(dbBugs))
	for i, b := range dbBugs {
		bugs[i] = domain.BugShort{
			ID:         b.BugID,
			Title:      b.Title,
			Severity:   domain.BugSeverity(b.Severity),
			Priority:   domain.Priority(b.Priority),
			Status:     domain.BugStatus(b.Status),
			AssignedTo: b.AssignedTo,
		}
	}
	return bugs, nil
}

// ListByProject возвращает все баги проекта (для выгрузки)
func (r *bugRepository) ListByProject(ctx context.Context, projectID string) ([]domain.Bug, error) {
	var dbBugs []Bug
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at").
		Find(&dbBugs).Error
	if err != nil {
		return nil, err
	}

	bugs := make([]domain.Bug, len(dbBugs))
	for i := range dbBugs {
		bugs[i] = *mapBugToDomain(&dbBugs[i])
	}
	return bugs, nil
}

// Update обновляет баг
func (r *bugRepository) Update(ctx context.Context, bug *domain.Bug) error {
	requestID := logger.GetRequestID(ctx)

	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&Bug{}).
		Where("bug_id = ?", bug.ID).
		Updates(map[string]interface{}{
			"title":       bug.Title,
			"description": bug.Description,
			"severity":    string(bug.Severity),
			"priority":    string(bug.Priority),
			"status":      string(bug.Status),
			"assigned_to": bug.AssignedTo,
			"resolved_at": bug.ResolvedAt,
			"updated_at":  now,
		})

	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("bug_id", bug.ID).
			Msg("error updating bug")
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	bug.UpdatedAt = &now
	return nil
}

// CreateExternalLink сохраняет связь бага с задачей внешнего трекера
func (r *bugRepository) CreateExternalLink(ctx context.Context, link *domain.BugExternalLink) error {
	requestID := logger.GetRequestID(ctx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Str("bug_id", link.BugID).
		Str("provider", string(link.Provider)).
		Str("external_id", link.ExternalID).
		Msg("creating bug external link")

	dbLink := &BugExternalLink{
		BugID:       link.BugID,
		Provider:    string(link.Provider),
		ExternalID:  link.ExternalID,
		ExternalKey: link.ExternalKey,
		ExternalURL: link.ExternalURL,
	}

	if err := r.db.WithContext(ctx).Create(dbLink).Error; err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("bug_id", link.BugID).
			Msg("error creating external link")
		return err
	}

	return nil
}

// GetByExternalID ищет баг по (provider, external_id) через таблицу связей
func (r *bugRepository) GetByExternalID(ctx context.Context, provider domain.IntegrationProvider, externalID string) (*domain.Bug, error) {
	var dbLink BugExternalLink
	err := r.db.WithContext(ctx).
		Where("provider = ? AND external_id = ?", string(provider), externalID).
		First(&dbLink).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	return r.GetByID(ctx, dbLink.BugID)
}

func (r *bugRepository) listExternalLinks(ctx context.Context, bugID string) ([]domain.BugExternalLink, error) {
	var dbLinks []BugExternalLink
	err := r.db.WithContext(ctx).
		Where("bug_id = ?", bugID).
		Find(&dbLinks).Error
	if err != nil {
		return nil, err
	}

	links := make([]domain.BugExternalLink, len(dbLinks))
	for i, l := range dbLinks {
		links[i] = domain.BugExternalLink{
			BugID:       l.BugID,
			Provider:    domain.IntegrationProvider(l.Provider),
			ExternalID:  l.ExternalID,
			ExternalKey: l.ExternalKey,
			ExternalURL: l.ExternalURL,
		}
	}
	return links, nil
}

func mapBugToDomain(b *Bug) *domain.Bug {
	return &domain.Bug{
		ID:          b.BugID,
		ProjectID:   b.ProjectID,
		ModuleID:    b.ModuleID,
		TestCaseID:  b.TestCaseID,
		Title:       b.Title,
		Description: b.Description,
		Severity:    domain.BugSeverity(b.Severity),
		Priority:    domain.Priority(b.Priority),
		Status:      domain.BugStatus(b.Status),
		ReportedBy:  b.ReportedBy,
		AssignedTo:  b.AssignedTo,
		CreatedAt:   &b.CreatedAt,
		UpdatedAt:   &b.UpdatedAt,
		ResolvedAt:  b.ResolvedAt,
	}
}
