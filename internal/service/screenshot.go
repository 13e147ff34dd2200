package service

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"buglens/internal/domain"
	"buglens/internal/logger"
	"buglens/internal/metrics"
	"buglens/internal/storage"
)

// UploadScreenshot кладёт файл в объектное хранилище и создаёт метаданные.
// Ключ объекта собирается из ID бага и свежего UUID, имя файла сохраняется
// только в метаданных.
func (s *Service) UploadScreenshot(outerCtx context.Context, input *domain.UploadScreenshotInput) (*domain.Screenshot, error) {
	const op = "service.UploadScreenshot"
	defer observe(op, time.Now())
	requestID := logger.GetRequestID(outerCtx)
	var shot *domain.Screenshot

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("bug_id", input.BugID).
		Str("file_name", input.FileName).
		Int("size", len(input.Data)).
		Msg("uploading screenshot")

	objectKey := fmt.Sprintf("screenshots/%s/%s%s", input.BugID, uuid.NewString(), path.Ext(input.FileName))

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		bug, err := tx.BugRepo().GetByID(ctx, input.BugID)
		if err != nil {
			return err
		}
		orgID, err := bugOrg(ctx, tx, bug)
		if err != nil {
			return err
		}
		if _, err := requireWriter(ctx, tx, orgID, input.ActorID); err != nil {
			return err
		}

		// Сначала объект, потом метаданные: при ошибке вставки транзакция
		// откатится, а осиротевший объект в хранилище безвреден
		if err := s.objects.Put(ctx, objectKey, input.ContentType, input.Data); err != nil {
			metrics.ScreenshotUploadTotal.WithLabelValues("error").Inc()
			return err
		}

		shot = &domain.Screenshot{
			ID:          uuid.NewString(),
			BugID:       input.BugID,
			FileName:    input.FileName,
			ObjectKey:   objectKey,
			ContentType: input.ContentType,
			Width:       input.Width,
			Height:      input.Height,
			UploadedBy:  input.ActorID,
		}
		if err := tx.ScreenshotRepo().Create(ctx, shot); err != nil {
			metrics.ScreenshotUploadTotal.WithLabelValues("error").Inc()
			return err
		}

		metrics.ScreenshotUploadTotal.WithLabelValues("ok").Inc()
		metrics.ScreenshotUploadBytes.Observe(float64(len(input.Data)))
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return shot, nil
}

// screenshotOrg возвращает org_id, которому принадлежит скриншот (через баг)
func screenshotOrg(ctx context.Context, tx storage.Tx, shot *domain.Screenshot) (string, error) {
	bug, err := tx.BugRepo().GetByID(ctx, shot.BugID)
	if err != nil {
		return "", err
	}
	return bugOrg(ctx, tx, bug)
}

// GetScreenshot возвращает метаданные скриншота с аннотациями
func (s *Service) GetScreenshot(outerCtx context.Context, screenshotID, actorID string) (*domain.Screenshot, error) {
	const op = "service.GetScreenshot"
	defer observe(op, time.Now())
	var shot *domain.Screenshot

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		found, err := tx.ScreenshotRepo().GetByID(ctx, screenshotID)
		if err != nil {
			return err
		}
		orgID, err := screenshotOrg(ctx, tx, found)
		if err != nil {
			return err
		}
		if _, err := requireMember(ctx, tx, orgID, actorID); err != nil {
			return err
		}
		shot = found
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return shot, nil
}

// ScreenshotDownloadURL возвращает presigned URL на файл скриншота
func (s *Service) ScreenshotDownloadURL(outerCtx context.Context, screenshotID, actorID string) (string, error) {
	const op = "service.ScreenshotDownloadURL"
	defer observe(op, time.Now())
	var objectKey string

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		shot, err := tx.ScreenshotRepo().GetByID(ctx, screenshotID)
		if err != nil {
			return err
		}
		orgID, err := screenshotOrg(ctx, tx, shot)
		if err != nil {
			return err
		}
		if _, err := requireMember(ctx, tx, orgID, actorID); err != nil {
			return err
		}
		objectKey = shot.ObjectKey
		return nil
	})
	if err != nil {
		return "", s.formatError(outerCtx, op, err)
	}

	url, err := s.objects.PresignGet(outerCtx, objectKey)
	if err != nil {
		return "", s.formatError(outerCtx, op, err)
	}
	return url, nil
}

// DeleteScreenshot удаляет метаданные скриншота вместе с аннотациями
// и файл в объектном хранилище. Файл удаляется после коммита,
// при ошибке удаления остаётся безвредная сирота.
func (s *Service) DeleteScreenshot(outerCtx context.Context, screenshotID, actorID string) error {
	const op = "service.DeleteScreenshot"
	defer observe(op, time.Now())
	var objectKey string

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		shot, err := tx.ScreenshotRepo().GetByID(ctx, screenshotID)
		if err != nil {
			return err
		}
		orgID, err := screenshotOrg(ctx, tx, shot)
		if err != nil {
			return err
		}
		if _, err := requireWriter(ctx, tx, orgID, actorID); err != nil {
			return err
		}
		objectKey = shot.ObjectKey
		return tx.ScreenshotRepo().Delete(ctx, screenshotID)
	})
	if err != nil {
		return s.formatError(outerCtx, op, err)
	}

	if err := s.objects.Delete(outerCtx, objectKey); err != nil {
		log.Warn().
			Err(err).
			Str("layer", "service").
			Str("screenshot_id", screenshotID).
			Str("object_key", objectKey).
			Msg("screenshot object delete failed")
	}
	return nil
}

// ReplaceAnnotations атомарно заменяет список аннотаций скриншота:
// известные ID обновляются, новые создаются, отсутствующие удаляются.
// Геометрия всех аннотаций проверяется до первой записи.
func (s *Service) ReplaceAnnotations(outerCtx context.Context, input *domain.ReplaceAnnotationsInput) ([]domain.Annotation, error) {
	const op = "service.ReplaceAnnotations"
	defer observe(op, time.Now())
	requestID := logger.GetRequestID(outerCtx)
	var result []domain.Annotation

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		for i := range input.Annotations {
			a := &input.Annotations[i]
			if err := domain.ValidateGeometry(a.Kind, a.Geometry); err != nil {
				return err
			}
		}

		shot, err := tx.ScreenshotRepo().GetByID(ctx, input.ScreenshotID)
		if err != nil {
			return err
		}
		orgID, err := screenshotOrg(ctx, tx, shot)
		if err != nil {
			return err
		}
		if _, err := requireWriter(ctx, tx, orgID, input.ActorID); err != nil {
			return err
		}

		existing, err := tx.ScreenshotRepo().ListAnnotations(ctx, input.ScreenshotID)
		if err != nil {
			return err
		}
		existingByID := make(map[string]*domain.Annotation, len(existing))
		for i := range existing {
			existingByID[existing[i].ID] = &existing[i]
		}

		keep := make(map[string]bool, len(input.Annotations))
		result = make([]domain.Annotation, 0, len(input.Annotations))

		for i := range input.Annotations {
			in := &input.Annotations[i]

			if prev, known := existingByID[in.ID]; known {
				prev.Kind = in.Kind
				prev.Geometry = in.Geometry
				prev.Color = in.Color
				prev.StrokeWidth = in.StrokeWidth
				if err := tx.ScreenshotRepo().UpdateAnnotation(ctx, prev); err != nil {
					return err
				}
				keep[in.ID] = true
				result = append(result, *prev)
				continue
			}

			// Неизвестный или пустой ID - создание; клиентский ID сохраняем
			id := in.ID
			if id == "" {
				id = uuid.NewString()
			}
			created := &domain.Annotation{
				ID:           id,
				ScreenshotID: input.ScreenshotID,
				Kind:         in.Kind,
				Geometry:     in.Geometry,
				Color:        in.Color,
				StrokeWidth:  in.StrokeWidth,
				CreatedBy:    input.ActorID,
			}
			if err := tx.ScreenshotRepo().CreateAnnotation(ctx, created); err != nil {
				return err
			}
			result = append(result, *created)
		}

		var toDelete []string
		for id := range existingByID {
			if !keep[id] {
				toDelete = append(toDelete, id)
			}
		}
		if err := tx.ScreenshotRepo().DeleteAnnotations(ctx, input.ScreenshotID, toDelete); err != nil {
			return err
		}

		metrics.AnnotationBatchSize.Observe(float64(len(input.Annotations)))

		log.Info().
			Str("request_id", requestID).
			Str("layer", "service").
			Str("screenshot_id", input.ScreenshotID).
			Int("batch_size", len(input.Annotations)).
			Int("deleted", len(toDelete)).
			Msg("annotations replaced")

		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return result, nil
}
