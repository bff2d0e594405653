package authcore

import (
	"context"
	"fmt"
	"time"

	"github.com/anoylabs/authcore/claims"
	"github.com/anoylabs/authcore/storage"
)

// LoginRequest carries the credential handed over by an external login flow.
// SubjectID, Role, and Persist are optional: subject and role are backfilled
// from the token's claims, Persist falls back to the configured default.
type LoginRequest struct {
	Token     string
	SubjectID string
	Role      Role
	Persist   storage.Mode
}

// Login is the only entry point by which a session transitions from
// unauthenticated to authenticated.
//
// The token's claims are decoded first; when they show the credential already
// expired, Login fails with [ErrExpiredCredential] and performs no state
// change. An undecodable token is not an error; the session proceeds with no
// usable claims. The resulting record is written to the chosen persistence
// tier (clearing the other tier), then the session commits. A tier failure
// degrades to an in-memory-only session for this login.
func (m *Manager) Login(ctx context.Context, req LoginRequest) error {
	if req.Token == "" {
		return fmt.Errorf("%w: empty token", ErrMalformedCredential)
	}
	if req.Role != "" && !req.Role.Valid() {
		return fmt.Errorf("invalid role %q", req.Role)
	}
	persist := req.Persist
	if persist == "" {
		persist = m.config.Session.DefaultPersist
	}
	if !persist.Valid() {
		return fmt.Errorf("invalid persistence mode %q", persist)
	}

	c := claims.Decode(req.Token)
	if c.ExpiredAt(time.Now()) {
		m.metrics.Inc(MetricLoginExpired)
		m.emit(ctx, AuditEvent{EventType: EventLoginRejected, Error: ErrExpiredCredential.Error()})
		return ErrExpiredCredential
	}

	role := m.resolveRole(req.Role, c)
	subjectID := resolveSubject(req.SubjectID, c)

	record := storage.Record{
		Token:     req.Token,
		SubjectID: subjectID,
		Role:      string(role),
	}
	if err := m.adapter.Write(ctx, persist, record); err != nil {
		m.degrade(ctx, err)
	}

	m.commit(req.Token, subjectID, role)
	m.metrics.Inc(MetricLoginSuccess)

	event := AuditEvent{
		EventType: EventLogin,
		SubjectID: subjectID,
		Role:      string(role),
		Persist:   string(persist),
		Success:   true,
	}
	if c == nil {
		// Token was opaque to the decoder; noted, not fatal.
		event.Error = ErrMalformedCredential.Error()
	}
	m.emit(ctx, event)

	return nil
}
