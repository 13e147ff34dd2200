package gorm

import (
	"buglens/internal/config"
	"buglens/internal/metrics"
	"buglens/internal/storage"
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// txManager реализует storage.TxManager для GORM
type txManager struct {
	db *gorm.DB
}

// NewTxManager создаёт новый менеджер транзакций для GORM
func NewTxManager(envConf *config.Config) (storage.TxManager, error) {
	db, err := ConnectDB(envConf)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Запускаем коллектор метрик connection pool
	stopCh := make(chan struct{})
	go metrics.StartDBStatsCollector(sqlDB, 5*time.Second, stopCh)

	// Горутина пересчитывает количество открытых багов по проектам
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		type projectRow struct {
			ProjectID string
			Count     int
		}

		for {
			select {
			case <-ticker.C:
				var rows []projectRow
				err := db.Raw(`SELECT project_id, COUNT(*) as count FROM bugs WHERE status NOT IN ('CLOSED', 'RESOLVED') GROUP BY project_id`).Scan(&rows).Error
				if err != nil {
					log.Error().Err(err).Msg("failed to query open bug counts")
					continue
				}

				metrics.BugOpenCount.Reset()
				for _, row := range rows {
					metrics.BugOpenCount.WithLabelValues(row.ProjectID).Set(float64(row.Count))
				}

			case <-stopCh:
				log.Info().Msg("stopping metrics reconciliation goroutine")
				return
			}
		}
	}()

	return &txManager{db: db}, nil
}

// NewTxManagerWithDB оборачивает уже открытое соединение (используется в тестах)
func NewTxManagerWithDB(db *gorm.DB) storage.TxManager {
	return &txManager{db: db}
}

// Do выполняет функцию внутри транзакции с автоматическим commit/rollback
func (tm *txManager) Do(ctx context.Context, fn func(ctx context.Context, tx storage.Tx) error) error {
	start := time.Now()

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txWrapper := &transaction{
			db: tx,
		}

		err := fn(ctx, txWrapper)
		if err != nil {
			// GORM автоматически сделает ROLLBACK
			metrics.DBTransactionTotal.WithLabelValues("error").Inc()
			return err
		}

		// GORM автоматически сделает COMMIT
		metrics.DBTransactionTotal.WithLabelValues("success").Inc()
		return nil
	})

	metrics.DBTransactionDuration.Observe(time.Since(start).Seconds())

	return err
}

// transaction - обёртка над gorm.DB, реализует storage.Tx
type transaction struct {
	db *gorm.DB
}

func (t *transaction) OrgRepo() storage.OrganizationRepository {
	return NewOrganizationRepository(t.db)
}

func (t *transaction) ProjectRepo() storage.ProjectRepository {
	return NewProjectRepository(t.db)
}

func (t *transaction) TestCaseRepo() storage.TestCaseRepository {
	return NewTestCaseRepository(t.db)
}

func (t *transaction) BugRepo() storage.BugRepository {
	return NewBugRepository(t.db)
}

func (t *transaction) ScreenshotRepo() storage.ScreenshotRepository {
	return NewScreenshotRepository(t.db)
}

func (t *transaction) CommentRepo() storage.CommentRepository {
	return NewCommentRepository(t.db)
}

func (t *transaction) NotificationRepo() storage.NotificationRepository {
	return NewNotificationRepository(t.db)
}

func (t *transaction) IntegrationRepo() storage.IntegrationRepository {
	return NewIntegrationRepository(t.db)
}
