package authcore

import (
	"context"
	"sync"
	"time"

	"github.com/anoylabs/authcore/claims"
	"github.com/anoylabs/authcore/storage"
)

// Manager holds the authoritative in-memory session: the current token, the
// subject identifier, and the role. There is exactly one live session per
// Manager; it is created empty, populated by Restore or Login, and cleared by
// Logout, expiry detection, or a forced teardown after a 401.
//
// All observers read the committed state at call time. The transport
// interceptor in particular derives the Authorization header per request via
// [Manager.AuthorizationHeader], so a request issued after Logout never
// carries a stale token.
type Manager struct {
	config  Config
	adapter *storage.Adapter
	audit   *auditDispatcher
	metrics *Metrics

	mu        sync.RWMutex
	token     string
	subjectID string
	role      Role
}

// Close stops the audit dispatcher after draining queued events.
func (m *Manager) Close() {
	if m == nil {
		return
	}
	m.audit.close()
}

// IsAuthenticated reports whether a token is present. Token presence is the
// sole authentication signal.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token != ""
}

// IsAdmin reports whether the session is authenticated with the admin role.
func (m *Manager) IsAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token != "" && m.role == RoleAdmin
}

// Token returns the current credential, empty when unauthenticated.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// SubjectID returns the subject identifier; may be empty even when
// authenticated.
func (m *Manager) SubjectID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.subjectID
}

// Role returns the session role, RoleUser when authenticated and unset.
func (m *Manager) Role() Role {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.role == "" {
		return RoleUser
	}
	return m.role
}

// AuthorizationHeader returns "Bearer <token>" for an authenticated session
// and "" otherwise.
func (m *Manager) AuthorizationHeader() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token == "" {
		return ""
	}
	return "Bearer " + m.token
}

// Snapshot copies the session state under lock.
func (m *Manager) Snapshot() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Session{
		Authenticated: m.token != "",
		Token:         m.token,
		SubjectID:     m.subjectID,
		Role:          m.role,
	}
}

// Routes exposes the redirect route configuration to the transport and guard
// collaborators.
func (m *Manager) Routes() RoutesConfig {
	return m.config.Routes
}

// Metrics exposes the counter set; collaborators increment it directly.
func (m *Manager) Metrics() *Metrics {
	return m.metrics
}

// MetricsSnapshot copies the current counters.
func (m *Manager) MetricsSnapshot() MetricsSnapshot {
	return m.metrics.Snapshot()
}

// AuditDropped reports events dropped by the dispatcher under backpressure.
func (m *Manager) AuditDropped() uint64 {
	return m.audit.droppedCount()
}

// commit replaces the full session state. Partial updates go through the
// field setters; everything else swaps all three fields together.
func (m *Manager) commit(token, subjectID string, role Role) {
	m.mu.Lock()
	m.token = token
	m.subjectID = subjectID
	m.role = role
	m.mu.Unlock()
}

// reset clears all three fields together; partial clearing is forbidden.
func (m *Manager) reset() {
	m.commit("", "", "")
}

func (m *Manager) emit(ctx context.Context, event AuditEvent) {
	event.Timestamp = time.Now()
	m.audit.emit(ctx, event)
}

// degrade records a tier failure and lets the operation continue
// in-memory-only.
func (m *Manager) degrade(ctx context.Context, err error) {
	m.metrics.Inc(MetricStorageDegraded)
	m.emit(ctx, AuditEvent{EventType: EventStorageDegraded, Error: err.Error()})
}

// resolveRole picks the effective role: an explicit valid value wins, then a
// recognized role claim, then the configured default. Unrecognized values
// from either source are coerced to the default.
func (m *Manager) resolveRole(requested Role, c *claims.Claims) Role {
	if requested.Valid() {
		return requested
	}
	if c != nil {
		if fromClaims := Role(c.Role); fromClaims.Valid() {
			return fromClaims
		}
	}
	return m.config.Session.DefaultRole
}

// resolveSubject backfills the subject identifier from claims when the
// caller or the stored record did not supply one.
func resolveSubject(requested string, c *claims.Claims) string {
	if requested != "" {
		return requested
	}
	if c != nil {
		return c.SubjectID
	}
	return ""
}
