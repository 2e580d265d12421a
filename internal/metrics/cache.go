package metrics

import (
	"time"
)

// Cache request results
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// RecordCacheRequest records a cache lookup with its outcome
func (m *Metrics) RecordCacheRequest(operation, result string, duration time.Duration) {
	m.safeExecute("RecordCacheRequest", func() {
		m.CacheRequestsTotal.WithLabelValues(operation, result).Inc()
		m.CacheRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
	})
}

// RecordCacheError records a failed cache operation
func (m *Metrics) RecordCacheError(operation string) {
	m.safeExecute("RecordCacheError", func() {
		m.CacheErrors.WithLabelValues(operation).Inc()
	})
}
