package authcore

import (
	"context"
	"fmt"

	"github.com/anoylabs/authcore/storage"
)

// Logout clears persistence in both tiers, resets the session to empty, and
// thereby disarms the interceptor's Authorization injection. Idempotent:
// calling it when already logged out is a no-op with no error.
func (m *Manager) Logout(ctx context.Context) {
	m.teardown(ctx, EventLogout, MetricLogout)
}

// ForceLogout is the teardown path for an authentication failure reported by
// the network layer (401). Same effect as Logout, recorded as forced.
func (m *Manager) ForceLogout(ctx context.Context) {
	m.teardown(ctx, EventForcedLogout, MetricForcedLogout)
}

func (m *Manager) teardown(ctx context.Context, eventType string, metric MetricID) {
	wasAuthenticated := m.IsAuthenticated()

	if err := m.adapter.Clear(ctx); err != nil {
		m.degrade(ctx, err)
	}
	m.reset()

	if wasAuthenticated {
		m.metrics.Inc(metric)
		m.emit(ctx, AuditEvent{EventType: eventType, Success: true})
	}
}

// SetSubjectID updates the session's subject identifier and the persisted
// copy of that field in both tiers, without touching the token. Returns
// [ErrNotAuthenticated] when no session is active.
func (m *Manager) SetSubjectID(ctx context.Context, subjectID string) error {
	m.mu.Lock()
	if m.token == "" {
		m.mu.Unlock()
		return ErrNotAuthenticated
	}
	m.subjectID = subjectID
	m.mu.Unlock()

	if err := m.adapter.WriteField(ctx, storage.KeySubjectID, subjectID); err != nil {
		m.degrade(ctx, err)
	}
	return nil
}

// SetRole updates the session's role and the persisted copy of that field in
// both tiers, without touching the token. An empty role falls back to the
// configured default. Returns [ErrNotAuthenticated] when no session is
// active.
func (m *Manager) SetRole(ctx context.Context, role Role) error {
	if role == "" {
		role = m.config.Session.DefaultRole
	}
	if !role.Valid() {
		return fmt.Errorf("invalid role %q", role)
	}

	m.mu.Lock()
	if m.token == "" {
		m.mu.Unlock()
		return ErrNotAuthenticated
	}
	m.role = role
	m.mu.Unlock()

	if err := m.adapter.WriteField(ctx, storage.KeyRole, string(role)); err != nil {
		m.degrade(ctx, err)
	}
	return nil
}
