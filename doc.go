// Package authcore is the client-side authentication session core used by
// the anoy board frontends: it holds the current credential, persists it
// across restarts, decodes its embedded claims, injects it into outgoing
// requests, reacts to authorization failures, and gates navigation to
// protected views.
//
// The package is the public surface. It exposes [Manager], [Builder],
// [Config], the error variables, and the audit/metrics value types. Leaf
// concerns live in subpackages: claims (unverified token decoding), storage
// (two-tier credential persistence), transport (the request/response
// interceptor), guard (navigation policy).
//
// # Architecture boundaries
//
// Manager owns the single live session per process. Transport and guard read
// it at decision time and never capture its fields early; the UI layer reads
// it and never writes. All state changes flow through Restore, Login,
// Logout, SetSubjectID, and SetRole, which fully update both the persisted
// record and the in-memory session before returning, so any interceptor or
// guard evaluation that runs after a completed call observes the post-change
// state.
//
// # What this package must NOT do
//
//   - Verify token signatures or issue credentials (server concerns).
//   - Decide authorization: the role claim drives routing and UX only.
//   - Crash on storage or decode failures; both degrade to an
//     unauthenticated or in-memory-only session.
package authcore
