package transport

import (
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/anoylabs/authcore"
)

// RequestIDHeader is stamped on every outgoing request that does not already
// carry one.
const RequestIDHeader = "X-Request-ID"

// Navigator is the navigation collaborator the interceptor redirects
// through. CurrentLocation returns the user's current path plus query; it
// becomes the return-target parameter so the user lands back where they were
// after re-authenticating.
type Navigator interface {
	CurrentLocation() string
	Redirect(route string, query url.Values)
}

// RoundTripper injects the current credential into outgoing requests and
// observes inbound responses for authorization failures.
//
// The Authorization header is decided per request at send time from the
// Manager's committed state, never from a value captured earlier, so a
// request issued immediately after logout carries no stale token. In-flight
// requests that raced with a logout are not retroactively altered.
type RoundTripper struct {
	base    http.RoundTripper
	manager *authcore.Manager
	nav     Navigator
}

// NewRoundTripper wraps base (http.DefaultTransport when nil). nav may be nil
// for hosts without a navigation layer; 401 teardown still happens, only the
// redirect is skipped.
func NewRoundTripper(manager *authcore.Manager, nav Navigator, base http.RoundTripper) *RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &RoundTripper{base: base, manager: manager, nav: nav}
}

// NewClient returns an *http.Client whose transport is the interceptor.
func NewClient(manager *authcore.Manager, nav Navigator, base http.RoundTripper) *http.Client {
	return &http.Client{Transport: NewRoundTripper(manager, nav, base)}
}

// RoundTrip implements http.RoundTripper. The incoming request is cloned
// before mutation, per the RoundTripper contract.
func (rt *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	metrics := rt.manager.Metrics()

	out := req.Clone(req.Context())
	if header := rt.manager.AuthorizationHeader(); header != "" {
		out.Header.Set("Authorization", header)
		metrics.Inc(authcore.MetricRequestAuthorized)
	} else {
		out.Header.Del("Authorization")
		metrics.Inc(authcore.MetricRequestAnonymous)
	}
	if out.Header.Get(RequestIDHeader) == "" {
		out.Header.Set(RequestIDHeader, uuid.NewString())
	}

	resp, err := rt.base.RoundTrip(out)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		// Invalid credential: tear the session down and send the user to the
		// login entry point with their current location as return target.
		// The response itself passes through; feature code never needs
		// per-call 401 handling.
		metrics.Inc(authcore.MetricAuthInvalid)
		rt.manager.ForceLogout(req.Context())
		if rt.nav != nil {
			routes := rt.manager.Routes()
			query := url.Values{}
			query.Set(routes.RedirectParam, rt.nav.CurrentLocation())
			rt.nav.Redirect(routes.Login, query)
		}
	case http.StatusForbidden:
		// Insufficient privilege is not an invalid credential: the session
		// stays as it is and the caller sees the response untouched.
		metrics.Inc(authcore.MetricAccessDenied)
	}

	return resp, nil
}
