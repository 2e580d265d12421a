package metrics

import (
	"database/sql"
	"strings"
	"time"
)

// UpdateDBStats updates database connection pool metrics
func (m *Metrics) UpdateDBStats(statsInterface interface{}) {
	m.safeExecute("UpdateDBStats", func() {
		stats, ok := statsInterface.(sql.DBStats)
		if !ok {
			return
		}
		m.DBConnectionsOpen.Set(float64(stats.OpenConnections))
		m.DBConnectionsInUse.Set(float64(stats.InUse))
		m.DBConnectionsIdle.Set(float64(stats.Idle))
		m.DBConnectionsMax.Set(float64(stats.MaxOpenConnections))

		// WaitCount and WaitDuration are cumulative since the pool was
		// opened, so only the delta against the last poll is added.
		m.dbStatsMu.Lock()
		waitCount := stats.WaitCount
		waitSeconds := stats.WaitDuration.Seconds()
		if delta := waitCount - m.prevWaitCount; delta > 0 {
			m.DBConnectionWaitTotal.Add(float64(delta))
		}
		if delta := waitSeconds - m.prevWaitSeconds; delta > 0 {
			m.DBConnectionWaitDuration.Add(delta)
		}
		m.prevWaitCount = waitCount
		m.prevWaitSeconds = waitSeconds
		m.dbStatsMu.Unlock()
	})
}

// RecordDBQuery records database query metrics. The operation label is
// normalized to lowercase so callback and manual call sites agree.
func (m *Metrics) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.safeExecute("RecordDBQuery", func() {
		operation = strings.ToLower(operation)
		m.DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())

		if err != nil {
			m.DBQueryErrors.WithLabelValues(operation, table).Inc()
		}
	})
}
