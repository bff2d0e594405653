package authcore

import "sync/atomic"

// MetricID indexes the session core's counters.
type MetricID uint8

const (
	// MetricLoginSuccess counts completed logins.
	MetricLoginSuccess MetricID = iota
	// MetricLoginExpired counts logins rejected for an expired token.
	MetricLoginExpired
	// MetricRestoreSuccess counts sessions restored from storage.
	MetricRestoreSuccess
	// MetricRestoreExpired counts restorations that found an expired token
	// and tore the session down instead.
	MetricRestoreExpired
	// MetricLogout counts explicit logouts of an active session.
	MetricLogout
	// MetricForcedLogout counts teardowns triggered by a 401 response.
	MetricForcedLogout
	// MetricStorageDegraded counts operations that continued in-memory-only
	// after a tier failure.
	MetricStorageDegraded
	// MetricRequestAuthorized counts outgoing requests sent with a bearer
	// header.
	MetricRequestAuthorized
	// MetricRequestAnonymous counts outgoing requests sent without one.
	MetricRequestAnonymous
	// MetricAuthInvalid counts observed 401 responses.
	MetricAuthInvalid
	// MetricAccessDenied counts observed 403 responses (passed through).
	MetricAccessDenied

	metricCount
)

// Metrics is a fixed set of atomic counters. All methods are safe for
// concurrent use.
type Metrics struct {
	counters [metricCount]atomic.Uint64
}

func newMetrics() *Metrics {
	return &Metrics{}
}

// Inc increments one counter. Unknown IDs are ignored.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || id >= metricCount {
		return
	}
	m.counters[id].Add(1)
}

// Snapshot copies the current counter values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{Counters: make(map[MetricID]uint64, metricCount)}
	if m == nil {
		return snap
	}
	for id := MetricID(0); id < metricCount; id++ {
		snap.Counters[id] = m.counters[id].Load()
	}
	return snap
}

// MetricsSnapshot is a point-in-time copy of the counters.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}
