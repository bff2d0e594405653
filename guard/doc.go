// Package guard is the navigation guard: it evaluates, per requested route,
// whether the current session satisfies that route's access policy and
// produces a routing decision before the destination renders.
//
// # Architecture boundaries
//
// The guard reads the [authcore.Manager] and the route's declared policy
// flags; the navigation system consumes the returned [Decision] and performs
// the actual redirect. The guard never renders and never mutates the session
// beyond the one-time synchronous restore on first evaluation.
//
// # What this package must NOT do
//
//   - Enforce authorization for real: route gating is a UX convenience; the
//     server re-checks every request.
//   - Restore the session more than once per process lifetime.
package guard
