// Package storage persists the credential record across two mutually
// exclusive durable tiers and migrates between them.
//
// # Tiers
//
// The short-lived tier models per-session storage the hosting environment may
// wipe at any boundary the core does not control; the long-lived tier
// persists until explicitly cleared. [Adapter.Write] keeps the tiers
// exclusive: writing a record to one tier always clears the other.
//
// Backends: [MemoryTier] (in-process), [FileTier] (one file per key),
// [RedisTier], [SQLiteTier].
//
// # Architecture boundaries
//
// This package owns the record shape (three independent string entries, never
// a serialized blob) and tier selection. It does NOT interpret tokens or hold
// session state; those belong to the Manager.
//
// # What this package must NOT do
//
//   - Import authcore, claims, or transport (no upward imports).
//   - Decode or validate the token it stores.
//   - Escalate tier failures: unavailability is recoverable and reported as
//     a wrapped [ErrTierUnavailable], never a panic.
package storage
