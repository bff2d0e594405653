package authcore

import (
	"context"
	"time"

	"github.com/anoylabs/authcore/claims"
)

// Restore rebuilds the session from the persistence adapter, typically once
// at process start before any other component observes the Manager.
//
// No stored token clears the in-memory session and returns. A stored token
// whose claims carry an expiry at or before now triggers the full logout
// sequence instead of restoring. Otherwise role (default USER) and subject
// are backfilled from claims where the stored record lacks them and the
// session commits.
//
// Restore is idempotent: with no intervening writes, repeated calls yield the
// same session.
func (m *Manager) Restore(ctx context.Context) error {
	record, err := m.adapter.Read(ctx)
	if err != nil {
		// Failed tier reads behave as "field not stored"; whatever the
		// healthy tier supplied is still used.
		m.degrade(ctx, err)
	}

	if record.Empty() {
		m.reset()
		return nil
	}

	c := claims.Decode(record.Token)
	if c.ExpiredAt(time.Now()) {
		m.metrics.Inc(MetricRestoreExpired)
		m.Logout(ctx)
		return nil
	}

	role := m.resolveRole(Role(record.Role), c)
	subjectID := resolveSubject(record.SubjectID, c)

	m.commit(record.Token, subjectID, role)
	m.metrics.Inc(MetricRestoreSuccess)
	m.emit(ctx, AuditEvent{
		EventType: EventRestore,
		SubjectID: subjectID,
		Role:      string(role),
		Success:   true,
	})

	return nil
}
