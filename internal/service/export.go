package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"buglens/internal/domain"
	"buglens/internal/logger"
	"buglens/internal/metrics"
	"buglens/internal/storage"
)

// exportRegistry хранит задачи выгрузки в памяти процесса.
// Перезапуск сервиса теряет задачи, клиент запускает выгрузку заново.
type exportRegistry struct {
	mu   sync.RWMutex
	jobs map[string]*domain.ExportJob
}

func newExportRegistry() *exportRegistry {
	return &exportRegistry{jobs: make(map[string]*domain.ExportJob)}
}

func (r *exportRegistry) put(job *domain.ExportJob) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *job
	r.jobs[job.ID] = &copied
}

func (r *exportRegistry) get(jobID string) (*domain.ExportJob, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return nil, false
	}
	copied := *job
	return &copied, true
}

// exportTimeout ограничивает время работы фоновой выгрузки
const exportTimeout = 2 * time.Minute

// StartExport запускает фоновую выгрузку и возвращает задачу в статусе PENDING
func (s *Service) StartExport(outerCtx context.Context, input *domain.StartExportInput) (*domain.ExportJob, error) {
	const op = "service.StartExport"
	defer observe(op, time.Now())
	requestID := logger.GetRequestID(outerCtx)

	if input.Entity != domain.ExportEntityBugs && input.Entity != domain.ExportEntityTestCases {
		return nil, domain.ErrInvalidInput
	}
	if input.Format != domain.ExportFormatCSV && input.Format != domain.ExportFormatJSON {
		return nil, domain.ErrInvalidInput
	}

	// Проект и права проверяем синхронно, чтобы клиент сразу получил 404/403
	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		project, err := tx.ProjectRepo().GetByID(ctx, input.ProjectID)
		if err != nil {
			return err
		}
		member, err := tx.OrgRepo().GetMember(ctx, project.OrgID, input.ActorID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return domain.ErrForbidden
			}
			return err
		}
		if !member.IsActive {
			return domain.ErrForbidden
		}
		return nil
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	job := &domain.ExportJob{
		ID:        uuid.NewString(),
		ProjectID: input.ProjectID,
		Entity:    input.Entity,
		Format:    input.Format,
		Status:    domain.ExportJobPending,
		StartedBy: input.ActorID,
		CreatedAt: time.Now(),
	}
	s.exports.put(job)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("job_id", job.ID).
		Str("project_id", input.ProjectID).
		Str("entity", string(input.Entity)).
		Str("format", string(input.Format)).
		Msg("export job started")

	// Фоновая горутина мутирует job по ходу выгрузки, наружу уходит копия
	snapshot := *job
	go s.runExport(job)

	return &snapshot, nil
}

// GetExportJob возвращает состояние задачи выгрузки её инициатору
func (s *Service) GetExportJob(outerCtx context.Context, jobID, actorID string) (*domain.ExportJob, error) {
	const op = "service.GetExportJob"
	defer observe(op, time.Now())

	job, ok := s.exports.get(jobID)
	if !ok {
		return nil, s.formatError(outerCtx, op, storage.ErrNotFound)
	}
	if job.StartedBy != actorID {
		return nil, s.formatError(outerCtx, op, domain.ErrForbidden)
	}
	return job, nil
}

// runExport выполняет выгрузку в фоне и пишет результат в реестр
func (s *Service) runExport(job *domain.ExportJob) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
	defer cancel()

	job.Status = domain.ExportJobRunning
	s.exports.put(job)

	data, contentType, err := s.buildExport(ctx, job)
	finished := time.Now()
	job.FinishedAt = &finished

	if err != nil {
		job.Status = domain.ExportJobFailed
		job.Error = err.Error()
		s.exports.put(job)
		metrics.ExportJobsTotal.WithLabelValues("failed").Inc()
		log.Error().
			Err(err).
			Str("layer", "service").
			Str("job_id", job.ID).
			Msg("export job failed")
		return
	}

	job.Status = domain.ExportJobDone
	job.Data = data
	job.ContentType = contentType
	job.FileName = fmt.Sprintf("%s_%s.%s", job.Entity, start.Format("20060102_150405"), job.Format)
	s.exports.put(job)

	metrics.ExportJobsTotal.WithLabelValues("done").Inc()
	metrics.ExportDuration.Observe(time.Since(start).Seconds())

	log.Info().
		Str("layer", "service").
		Str("job_id", job.ID).
		Int("size", len(data)).
		Msg("export job finished")
}

// buildExport читает данные проекта и сериализует их в нужный формат
func (s *Service) buildExport(ctx context.Context, job *domain.ExportJob) ([]byte, string, error) {
	var bugs []domain.Bug
	var testCases []domain.TestCase

	err := s.txmgr.Do(ctx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		switch job.Entity {
		case domain.ExportEntityBugs:
			bugs, err = tx.BugRepo().ListByProject(ctx, job.ProjectID)
		case domain.ExportEntityTestCases:
			testCases, err = tx.TestCaseRepo().ListByProject(ctx, job.ProjectID)
		}
		return err
	})
	if err != nil {
		return nil, "", err
	}

	switch job.Format {
	case domain.ExportFormatJSON:
		var payload any
		if job.Entity == domain.ExportEntityBugs {
			payload = bugs
		} else {
			payload = testCases
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, "", err
		}
		return data, "application/json", nil

	case domain.ExportFormatCSV:
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)

		if job.Entity == domain.ExportEntityBugs {
			if err := writeBugsCSV(w, bugs); err != nil {
				return nil, "", err
			}
		} else {
			if err := writeTestCasesCSV(w, testCases); err != nil {
				return nil, "", err
			}
		}

		w.Flush()
		if err := w.Error(); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "text/csv", nil
	}

	return nil, "", fmt.Errorf("unsupported export format %q", job.Format)
}

func writeBugsCSV(w *csv.Writer, bugs []domain.Bug) error {
	if err := w.Write([]string{"id", "title", "severity", "priority", "status", "reported_by", "assigned_to", "created_at", "resolved_at"}); err != nil {
		return err
	}
	for i := range bugs {
		bug := &bugs[i]
		assignedTo := ""
		if bug.AssignedTo != nil {
			assignedTo = *bug.AssignedTo
		}
		createdAt := ""
		if bug.CreatedAt != nil {
			createdAt = bug.CreatedAt.Format(time.RFC3339)
		}
		resolvedAt := ""
		if bug.ResolvedAt != nil {
			resolvedAt = bug.ResolvedAt.Format(time.RFC3339)
		}
		record := []string{
			bug.ID, bug.Title, string(bug.Severity), string(bug.Priority),
			string(bug.Status), bug.ReportedBy, assignedTo, createdAt, resolvedAt,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writeTestCasesCSV(w *csv.Writer, testCases []domain.TestCase) error {
	if err := w.Write([]string{"id", "module_id", "title", "priority", "status", "steps_count", "expected_result"}); err != nil {
		return err
	}
	for i := range testCases {
		tc := &testCases[i]
		record := []string{
			tc.ID, tc.ModuleID, tc.Title, string(tc.Priority), string(tc.Status),
			strconv.Itoa(len(tc.Steps)), strings.ReplaceAll(tc.ExpectedResult, "\n", " "),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}
