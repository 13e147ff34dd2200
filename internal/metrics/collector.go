package metrics

import (
	"database/sql"
	"time"

	"github.com/rs/zerolog/log"
)

// StartDBStatsCollector периодически публикует состояние connection pool
// в gauge-метрики. Останавливается по сигналу из stopCh.
func StartDBStatsCollector(sqlDB *sql.DB, interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			publishPoolStats(sqlDB.Stats())
		case <-stopCh:
			log.Info().Msg("db stats collector stopped")
			return
		}
	}
}

func publishPoolStats(stats sql.DBStats) {
	DBConnectionPoolActive.Set(float64(stats.InUse))
	DBConnectionPoolIdle.Set(float64(stats.Idle))

	log.Debug().
		Int("in_use", stats.InUse).
		Int("idle", stats.Idle).
		Int("max_open", stats.MaxOpenConnections).
		Int64("wait_count", stats.WaitCount).
		Msg("db pool stats published")
}
