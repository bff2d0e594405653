// Package transport is the request/response interceptor: an
// http.RoundTripper that carries the current credential on outgoing requests
// and reacts to authorization failures on inbound responses.
//
// # Architecture boundaries
//
// The interceptor reads the [authcore.Manager] at send time and calls its
// teardown on 401; it holds no session state of its own. Redirecting the user
// agent is delegated to the host's [Navigator].
//
// # What this package must NOT do
//
//   - Cache the token or the Authorization header across requests.
//   - Treat 403 as a session problem (it passes through untouched).
//   - Cancel or retry requests; timeouts belong to the http.Client.
package transport
