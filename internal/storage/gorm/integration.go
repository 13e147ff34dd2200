package gorm

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"buglens/internal/domain"
	"buglens/internal/logger"
	"buglens/internal/storage"
)

type integrationRepository struct {
	db *gorm.DB
}

// NewIntegrationRepository создаёт новый репозиторий интеграций
func NewIntegrationRepository(db *gorm.DB) storage.IntegrationRepository {
	return &integrationRepository{db: db}
}

// Upsert создаёт или обновляет интеграцию; уникальность по (org_id, provider)
func (r *integrationRepository) Upsert(ctx context.Context, integ *domain.Integration) error {
	requestID := logger.GetRequestID(ctx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Str("org_id", integ.OrgID).
		Str("provider", string(integ.Provider)).
		Msg("upserting integration")

	credentials, err := json.Marshal(integ.Credentials)
	if err != nil {
		return err
	}
	fieldMapping, err := json.Marshal(integ.FieldMapping)
	if err != nil {
		return err
	}

	dbIntegration := &Integration{
		IntegrationID: integ.ID,
		OrgID:         integ.OrgID,
		Provider:      string(integ.Provider),
		Credentials:   datatypes.JSON(credentials),
		FieldMapping:  datatypes.JSON(fieldMapping),
		Active:        integ.Active,
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "org_id"}, {Name: "provider"}},
			DoUpdates: clause.AssignmentColumns([]string{"credentials", "field_mapping", "active"}),
		}).
		Create(dbIntegration).Error
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("org_id", integ.OrgID).
			Msg("error upserting integration")
		return err
	}

	return nil
}

// GetByID возвращает интеграцию по ID
func (r *integrationRepository) GetByID(ctx context.Context, integrationID string) (*domain.Integration, error) {
	var dbIntegration Integration
	err := r.db.WithContext(ctx).First(&dbIntegration, "integration_id = ?", integrationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	return mapIntegrationToDomain(&dbIntegration)
}

// GetActive возвращает активную интеграцию провайдера для организации
func (r *integrationRepository) GetActive(ctx context.Context, orgID string, provider domain.IntegrationProvider) (*domain.Integration, error) {
	var dbIntegration Integration
	err := r.db.WithContext(ctx).
		Where("org_id = ? AND provider = ? AND active = true", orgID, string(provider)).
		First(&dbIntegration).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().
				Str("request_id", logger.GetRequestID(ctx)).
				Str("layer", "storage").
				Str("org_id", orgID).
				Str("provider", string(provider)).
				Msg("no active integration for provider")
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	return mapIntegrationToDomain(&dbIntegration)
}

// ListByOrg возвращает интеграции организации
func (r *integrationRepository) ListByOrg(ctx context.Context, orgID string) ([]domain.Integration, error) {
	var dbIntegrations []Integration
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("provider").
		Find(&dbIntegrations).Error
	if err != nil {
		return nil, err
	}

	return mapIntegrationsToDomain(dbIntegrations)
}

// ListActiveChat возвращает активные чат-интеграции (slack/teams) организации
func (r *integrationRepository) ListActiveChat(ctx context.Context, orgID string) ([]domain.Integration, error) {
	var dbIntegrations []Integration
	err := r.db.WithContext(ctx).
		Where("org_id = ? AND active = true AND provider IN ?", orgID,
			[]string{string(domain.ProviderSlack), string(domain.ProviderTeams)}).
		Find(&dbIntegrations).Error
	if err != nil {
		return nil, err
	}

	return mapIntegrationsToDomain(dbIntegrations)
}

// Update обновляет интеграцию
func (r *integrationRepository) Update(ctx context.Context, integ *domain.Integration) error {
	credentials, err := json.Marshal(integ.Credentials)
	if err != nil {
		return err
	}
	fieldMapping, err := json.Marshal(integ.FieldMapping)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&Integration{}).
		Where("integration_id = ?", integ.ID).
		Updates(map[string]interface{}{
			"credentials":   datatypes.JSON(credentials),
			"field_mapping": datatypes.JSON(fieldMapping),
			"active":        integ.Active,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func mapIntegrationToDomain(i *Integration) (*domain.Integration, error) {
	var credentials domain.IntegrationCredentials
	if err := json.Unmarshal(i.Credentials, &credentials); err != nil {
		return nil, err
	}

	var fieldMapping domain.FieldMapping
	if len(i.FieldMapping) > 0 {
		if err := json.Unmarshal(i.FieldMapping, &fieldMapping); err != nil {
			return nil, err
		}
	}

	return &domain.Integration{
		ID:           i.IntegrationID,
		OrgID:        i.OrgID,
		Provider:     domain.IntegrationProvider(i.Provider),
		Credentials:  credentials,
		FieldMapping: fieldMapping,
		Active:       i.Active,
		CreatedAt:    &i.CreatedAt,
	}, nil
}

func mapIntegrationsToDomain(dbIntegrations []Integration) ([]domain.Integration, error) {
	integrations := make([]domain.Integration, 0, len(dbIntegrations))
	for i := range dbIntegrations {
		integ, err := mapIntegrationToDomain(&dbIntegrations[i])
		if err != nil {
			return nil, err
		}
		integrations = append(integrations, *integ)
	}
	return integrations, nil
}
