package gorm

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"buglens/internal/domain"
	"buglens/internal/logger"
	"buglens/internal/storage"
)

type screenshotRepository struct {
	db *gorm.DB
}

// NewScreenshotRepository создаёт новый репозиторий скриншотов и аннотаций
func NewScreenshotRepository(db *gorm.DB) storage.ScreenshotRepository {
	return &screenshotRepository{db: db}
}

// Create создаёт метаданные скриншота
func (r *screenshotRepository) Create(ctx context.Context, shot *domain.Screenshot) error {
	requestID := logger.GetRequestID(ctx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Str("screenshot_id", shot.ID).
		Str("bug_id", shot.BugID).
		Msg("creating screenshot metadata")

	dbShot := &Screenshot{
		ScreenshotID: shot.ID,
		BugID:        shot.BugID,
		FileName:     shot.FileName,
		ObjectKey:    shot.ObjectKey,
		ContentType:  shot.ContentType,
		Width:        shot.Width,
		Height:       shot.Height,
		UploadedBy:   shot.UploadedBy,
	}

	if err := r.db.WithContext(ctx).Create(dbShot).Error; err != nil {
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("screenshot_id", shot.ID).
			Msg("error creating screenshot metadata")
		return err
	}

	shot.CreatedAt = &dbShot.CreatedAt
	return nil
}

// GetByID возвращает скриншот с аннотациями
func (r *screenshotRepository) GetByID(ctx context.Context, screenshotID string) (*domain.Screenshot, error) {
	var dbShot Screenshot
	err := r.db.WithContext(ctx).First(&dbShot, "screenshot_id = ?", screenshotID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().
				Str("request_id", logger.GetRequestID(ctx)).
				Str("layer", "storage").
				Str("screenshot_id", screenshotID).
				Msg("screenshot not found")
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	annotations, err := r.ListAnnotations(ctx, screenshotID)
	if err != nil {
		return nil, err
	}

	shot := mapScreenshotToDomain(&dbShot)
	shot.Annotations = annotations
	return shot, nil
}

// ListByBug возвращает скриншоты бага
func (r *screenshotRepository) ListByBug(ctx context.Context, bugID string) ([]domain.Screenshot, error) {
	var dbShots []Screenshot
	err := r.db.WithContext(ctx).
		Where("bug_id = ?", bugID).
		Order("created_at").
		Find(&dbShots).Error
	if err != nil {
		return nil, err
	}

	shots := make([]domain.Screenshot, len(dbShots))
	for i := range dbShots {
		shots[i] = *mapScreenshotToDomain(&dbShots[i])
	}
	return shots, nil
}

// Delete удаляет скриншот, аннотации удаляются каскадно по FK
func (r *screenshotRepository) Delete(ctx context.Context, screenshotID string) error {
	result := r.db.WithContext(ctx).
		Delete(&Screenshot{}, "screenshot_id = ?", screenshotID)
	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "storage").
			Str("screenshot_id", screenshotID).
			Msg("error deleting screenshot")
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ListAnnotations возвращает аннотации скриншота
func (r *screenshotRepository) ListAnnotations(ctx context.Context, screenshotID string) ([]domain.Annotation, error) {
	var dbAnnotations []Annotation
	err := r.db.WithContext(ctx).
		Where("screenshot_id = ?", screenshotID).
		Order("annotation_id").
		Find(&dbAnnotations).Error
	if err != nil {
		return nil, err
	}

	annotations := make([]domain.Annotation, 0, len(dbAnnotations))
	for i := range dbAnnotations {
		a, err := mapAnnotationToDomain(&dbAnnotations[i])
		if err != nil {
			return nil, err
		}
		annotations = append(annotations, *a)
	}
	return annotations, nil
}

// CreateAnnotation создаёт аннотацию
func (r *screenshotRepository) CreateAnnotation(ctx context.Context, a *domain.Annotation) error {
	geometry, err := json.Marshal(a.Geometry)
	if err != nil {
		return err
	}

	dbAnnotation := &Annotation{
		AnnotationID: a.ID,
		ScreenshotID: a.ScreenshotID,
		Kind:         string(a.Kind),
		Geometry:     datatypes.JSON(geometry),
		Color:        a.Color,
		StrokeWidth:  a.StrokeWidth,
		CreatedBy:    a.CreatedBy,
	}

	if err := r.db.WithContext(ctx).Create(dbAnnotation).Error; err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		log.Error().
			Err(err).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "storage").
			Str("annotation_id", a.ID).
			Msg("error creating annotation")
		return err
	}

	return nil
}

// UpdateAnnotation обновляет аннотацию
func (r *screenshotRepository) UpdateAnnotation(ctx context.Context, a *domain.Annotation) error {
	geometry, err := json.Marshal(a.Geometry)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&Annotation{}).
		Where("annotation_id = ? AND screenshot_id = ?", a.ID, a.ScreenshotID).
		Updates(map[string]interface{}{
			"kind":         string(a.Kind),
			"geometry":     datatypes.JSON(geometry),
			"color":        a.Color,
			"stroke_width": a.StrokeWidth,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// DeleteAnnotations удаляет аннотации по списку ID
func (r *screenshotRepository) DeleteAnnotations(ctx context.Context, screenshotID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Where("screenshot_id = ? AND annotation_id IN ?", screenshotID, ids).
		Delete(&Annotation{}).Error
}

func mapScreenshotToDomain(s *Screenshot) *domain.Screenshot {
	return &domain.Screenshot{
		ID:          s.ScreenshotID,
		BugID:       s.BugID,
		FileName:    s.FileName,
		ObjectKey:   s.ObjectKey,
		ContentType: s.ContentType,
		Width:       s.Width,
		Height:      s.Height,
		UploadedBy:  s.UploadedBy,
		CreatedAt:   &s.CreatedAt,
	}
}

func mapAnnotationToDomain(a *Annotation) (*domain.Annotation, error) {
	var geometry domain.Geometry
	if err := json.Unmarshal(a.Geometry, &geometry); err != nil {
		return nil, err
	}

	return &domain.Annotation{
		ID:           a.AnnotationID,
		ScreenshotID: a.ScreenshotID,
		Kind:         domain.AnnotationKind(a.Kind),
		Geometry:     geometry,
		Color:        a.Color,
		StrokeWidth:  a.StrokeWidth,
		CreatedBy:    a.CreatedBy,
	}, nil
}
