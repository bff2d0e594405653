// Package claims decodes the payload segment of a bearer token without
// verifying its signature.
//
// # Trust boundary
//
// The client core is never the authority for authorization decisions; decoded
// claims only drive routing and UX conveniences (role backfill, expiry
// detection). Enforcement lives server-side, and this package performs no
// signature or integrity check.
//
// # What this package must NOT do
//
//   - Verify signatures or issuers (see above).
//   - Import authcore, storage, or transport (no upward imports).
//   - Return errors: any undecodable token is the single nil outcome.
package claims
