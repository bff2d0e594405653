package storage

import (
	"context"
	"errors"
	"fmt"
)

// Adapter reads and writes the credential record across the two tiers.
//
// Invariant: at most one tier holds a non-empty record at any time. Write
// enforces it by clearing the other tier after every write; a process crash
// between the two steps is an accepted, non-recoverable edge case.
type Adapter struct {
	local   Tier // long-lived
	session Tier // short-lived
	prefix  string
}

// NewAdapter wires the long-lived and short-lived tiers. prefix is prepended
// to every record key ("auth." yields "auth.token" and so on).
func NewAdapter(local, session Tier, prefix string) (*Adapter, error) {
	if local == nil || session == nil {
		return nil, errors.New("both storage tiers are required")
	}
	return &Adapter{local: local, session: session, prefix: prefix}, nil
}

func (a *Adapter) key(name string) string {
	return a.prefix + name
}

func (a *Adapter) target(mode Mode) (target, other Tier) {
	if mode == PersistSession {
		return a.session, a.local
	}
	return a.local, a.session
}

// Write serializes the record into the tier selected by mode (all three
// keys, even empty values), then removes the same three keys from the other
// tier. A non-nil error wraps ErrTierUnavailable; callers treat it as if
// persistence did not happen.
func (a *Adapter) Write(ctx context.Context, mode Mode, rec Record) error {
	if !mode.Valid() {
		return fmt.Errorf("unknown persistence mode %q", mode)
	}

	target, other := a.target(mode)

	var errs []error
	for _, name := range recordKeys {
		if err := target.Set(ctx, a.key(name), rec.field(name)); err != nil {
			errs = append(errs, err)
		}
	}
	for _, name := range recordKeys {
		if err := other.Remove(ctx, a.key(name)); err != nil {
			errs = append(errs, err)
		}
	}

	return a.degraded("write", errs)
}

// Read assembles the stored record field by field, preferring the
// short-lived tier and falling back to the long-lived tier per field. A
// record partially populated by an external actor may therefore merge across
// tiers; Write prevents the split on this library's own paths.
//
// The returned record is best-effort: tier failures surface as a wrapped
// ErrTierUnavailable alongside whatever the healthy tier supplied.
func (a *Adapter) Read(ctx context.Context) (Record, error) {
	var rec Record
	var errs []error

	for _, name := range recordKeys {
		value, err := a.session.Get(ctx, a.key(name))
		if err != nil {
			errs = append(errs, err)
		}
		if value == "" {
			fallback, err := a.local.Get(ctx, a.key(name))
			if err != nil {
				errs = append(errs, err)
			}
			value = fallback
		}
		rec.setField(name, value)
	}

	return rec, a.degraded("read", errs)
}

// Clear removes the three record keys from both tiers unconditionally. Both
// tiers are attempted even when the first fails.
func (a *Adapter) Clear(ctx context.Context) error {
	var errs []error
	for _, tier := range [...]Tier{a.session, a.local} {
		for _, name := range recordKeys {
			if err := tier.Remove(ctx, a.key(name)); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return a.degraded("clear", errs)
}

// WriteField updates a single record field in both tiers' copies, leaving the
// other keys untouched. Field setters use it so a subject or role update
// cannot split the record across tiers.
func (a *Adapter) WriteField(ctx context.Context, name, value string) error {
	switch name {
	case KeyToken, KeySubjectID, KeyRole:
	default:
		return fmt.Errorf("unknown record field %q", name)
	}

	var errs []error
	for _, tier := range [...]Tier{a.session, a.local} {
		if err := tier.Set(ctx, a.key(name), value); err != nil {
			errs = append(errs, err)
		}
	}
	return a.degraded("write field", errs)
}

func (a *Adapter) degraded(op string, errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrTierUnavailable, errors.Join(errs...))
}
