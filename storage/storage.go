package storage

import (
	"context"
	"errors"
)

// ErrTierUnavailable is returned (wrapped) when a storage tier cannot be read
// or written. Adapter operations are best-effort: callers treat a failed
// write as if persistence did not happen and a failed read as "no stored
// record".
var ErrTierUnavailable = errors.New("storage tier unavailable")

// Mode selects the durable tier a credential record is written to at login.
type Mode string

const (
	// PersistLocal targets the long-lived tier. The record survives process
	// restarts until explicitly cleared.
	PersistLocal Mode = "local"

	// PersistSession targets the short-lived tier. The hosting environment
	// may wipe it at the end of a session.
	PersistSession Mode = "session"
)

// Valid reports whether m is a known persistence mode.
func (m Mode) Valid() bool {
	return m == PersistLocal || m == PersistSession
}

// Logical field names of the stored credential record. Each is persisted as
// its own string entry per tier, prefixed by the adapter's key prefix.
const (
	KeyToken     = "token"
	KeySubjectID = "subject_id"
	KeyRole      = "role"
)

var recordKeys = [...]string{KeyToken, KeySubjectID, KeyRole}

// Tier is the minimal key/value contract the adapter needs from a durable
// store. An empty value means "absent": backends report missing keys as
// ("", nil), and the adapter's fallback reads treat stored empty strings the
// same way.
type Tier interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Record is the durable projection of a session: token, subject identifier,
// role. All three entries are written even when a value is empty so the
// record shape stays uniform across tiers.
type Record struct {
	Token     string
	SubjectID string
	Role      string
}

// Empty reports whether the record carries no credential. Token presence is
// the sole signal; subject and role are meaningless without it.
func (r Record) Empty() bool {
	return r.Token == ""
}

func (r Record) field(key string) string {
	switch key {
	case KeyToken:
		return r.Token
	case KeySubjectID:
		return r.SubjectID
	case KeyRole:
		return r.Role
	}
	return ""
}

func (r *Record) setField(key, value string) {
	switch key {
	case KeyToken:
		r.Token = value
	case KeySubjectID:
		r.SubjectID = value
	case KeyRole:
		r.Role = value
	}
}
