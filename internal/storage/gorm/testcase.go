package gorm

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"buglens/internal/domain"
	"buglens/internal/logger"
	"buglens/internal/storage"
)

type testCaseRepository struct {
	db *gorm.DB
}

// NewTestCaseRepository создаёт новый репозиторий тест-кейсов
func NewTestCaseRepository(db *gorm.DB) storage.TestCaseRepository {
	return &testCaseRepository{db: db}
}

// Create создаёт тест-кейс
func (r *testCaseRepository) Create(ctx context.Context, tc *domain.TestCase) error {
	requestID := logger.GetRequestID(ctx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Str("test_case_id", tc.ID).
		Str("module_id", tc.ModuleID).
		Msg("creating test case in database")

	steps, err := json.Marshal(tc.Steps)
	if err != nil {
		return err
	}

	dbTC := &TestCase{
		TestCaseID:     tc.ID,
		ModuleID:       tc.ModuleID,
		Title:          tc.Title,
		Description:    tc.Description,
		Steps:          datatypes.JSON(steps),
		ExpectedResult: tc.ExpectedResult,
		Priority:       string(tc.Priority),
		Status:         string(tc.Status),
	}

	if err := r.db.WithContext(ctx).Create(dbTC).Error; err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("test_case_id", tc.ID).
			Msg("error creating test case")
		return err
	}

	tc.CreatedAt = &dbTC.CreatedAt
	tc.UpdatedAt = &dbTC.UpdatedAt
	return nil
}

// GetByID возвращает тест-кейс по ID
func (r *testCaseRepository) GetByID(ctx context.Context, testCaseID string) (*domain.TestCase, error) {
	var dbTC TestCase
	err := r.db.WithContext(ctx).First(&dbTC, "test_case_id = ?", testCaseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().
				Str("request_id", logger.GetRequestID(ctx)).
				Str("layer", "storage").
				Str("test_case_id", testCaseID).
				Msg("test case not found")
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	return mapTestCaseToDomain(&dbTC)
}

// List возвращает тест-кейсы модуля с фильтрами
func (r *testCaseRepository) List(ctx context.Context, filter *domain.TestCaseFilter) ([]domain.TestCase, error) {
	query := r.db.WithContext(ctx).Where("module_id = ?", filter.ModuleID)
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", string(*filter.Priority))
	}

	var dbTCs []TestCase
	if err := query.Order("created_at").Find(&dbTCs).Error; err != nil {
		return nil, err
	}

	return mapTestCasesToDomain(dbTCs)
}

// ListByProject возвращает все тест-кейсы проекта через join с модулями
func (r *testCaseRepository) ListByProject(ctx context.Context, projectID string) ([]domain.TestCase, error) {
	var dbTCs []TestCase
	err := r.db.WithContext(ctx).
		Joins("JOIN modules ON modules.module_id = test_cases.module_id").
		Where("modules.project_id = ?", projectID).
		Order("test_cases.created_at").
		Find(&dbTCs).Error
	if err != nil {
		return nil, err
	}

	return mapTestCasesToDomain(dbTCs)
}

// Update обновляет тест-кейс
func (r *testCaseRepository) Update(ctx context.Context, tc *domain.TestCase) error {
	steps, err := json.Marshal(tc.Steps)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&TestCase{}).
		Where("test_case_id = ?", tc.ID).
		Updates(map[string]interface{}{
			"title":           tc.Title,
			"description":     tc.Description,
			"steps":           datatypes.JSON(steps),
			"expected_result": tc.ExpectedResult,
			"priority":        string(tc.Priority),
			"status":          string(tc.Status),
			"updated_at":      now,
		})

	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "storage").
			Str("test_case_id", tc.ID).
			Msg("error updating test case")
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	tc.UpdatedAt = &now
	return nil
}

// Delete удаляет тест-кейс
func (r *testCaseRepository) Delete(ctx context.Context, testCaseID string) error {
	result := r.db.WithContext(ctx).Delete(&TestCase{}, "test_case_id = ?", testCaseID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func mapTestCaseToDomain(tc *TestCase) (*domain.TestCase, error) {
	var steps []domain.TestStep
	if len(tc.Steps) > 0 {
		if err := json.Unmarshal(tc.Steps, &steps); err != nil {
			return nil, err
		}
	}

	return &domain.TestCase{
		ID:             tc.TestCaseID,
		ModuleID:       tc.ModuleID,
		Title:          tc.Title,
		Description:    tc.Description,
		Steps:          steps,
		ExpectedResult: tc.ExpectedResult,
		Priority:       domain.Priority(tc.Priority),
		Status:         domain.TestCaseStatus(tc.Status),
		CreatedAt:      &tc.CreatedAt,
		UpdatedAt:      &tc.UpdatedAt,
	}, nil
}

func mapTestCasesToDomain(dbTCs []TestCase) ([]domain.TestCase, error) {
	tcs := make([]domain.TestCase, 0, len(dbTCs))
	for i := range dbTCs {
		tc, err := mapTestCaseToDomain(&dbTCs[i])
		if err != nil {
			return nil, err
		}
		tcs = append(tcs, *tc)
	}
	return tcs, nil
}
