package authcore

import (
	"errors"

	"github.com/anoylabs/authcore/storage"
)

var (
	// ErrMalformedCredential marks a token whose claims could not be decoded.
	// Decode failures are absorbed as "no usable claims" and never fatal; the
	// variable appears in audit events, not in return values.
	ErrMalformedCredential = errors.New("malformed credential")

	// ErrExpiredCredential is returned by Login when the token's exp claim is
	// at or before the current time. The call performs no state change.
	ErrExpiredCredential = errors.New("expired credential")

	// ErrNotAuthenticated is returned by the field setters when no session is
	// active: committing an orphan subject or role with no token would break
	// the session invariant.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrStorageUnavailable aliases the storage tier failure so callers can
	// match it without importing the storage package. Operations degrade to
	// an in-memory-only session when it occurs.
	ErrStorageUnavailable = storage.ErrTierUnavailable
)
