package guard

import (
	"context"
	"net/url"
	"sync"

	"github.com/anoylabs/authcore"
)

// Policy is a route's declared access policy.
type Policy struct {
	// RequiresAuth admits authenticated sessions only.
	RequiresAuth bool
	// GuestOnly admits unauthenticated sessions only (login, signup).
	GuestOnly bool
	// Admin admits authenticated admin sessions only.
	Admin bool
}

// Route pairs a name and a path pattern with its policy. Path segments
// starting with ':' match any single non-empty segment ("/posts/:id").
type Route struct {
	Name   string
	Path   string
	Policy Policy
}

// Decision is the guard's verdict for one navigation: either proceed, or
// redirect to the named route with the given query.
type Decision struct {
	Allow    bool
	Redirect string
	Query    url.Values
}

func proceed() Decision {
	return Decision{Allow: true}
}

func redirectTo(route string, query url.Values) Decision {
	return Decision{Redirect: route, Query: query}
}

// Guard evaluates route policies against the current session, once per
// navigation, before the destination renders.
type Guard struct {
	manager *authcore.Manager
	table   *Table
	restore sync.Once
}

// New returns a guard over manager. table may be nil when hosts resolve
// routes themselves and call Evaluate directly.
func New(manager *authcore.Manager, table *Table) *Guard {
	return &Guard{manager: manager, table: table}
}

// Evaluate applies the fixed precedence order:
//
//  1. requires-auth route, unauthenticated session → login, carrying the
//     intended target as return parameter;
//  2. guest-only route, authenticated session → default landing;
//  3. admin route: unauthenticated → rule 1; authenticated non-admin →
//     default landing;
//  4. otherwise proceed.
//
// location is the concrete path plus query being navigated to; when empty,
// the route's path pattern is used as the return target. The very first
// evaluation triggers a synchronous session restore, exactly once per Guard.
func (g *Guard) Evaluate(ctx context.Context, route Route, location string) Decision {
	g.restore.Do(func() {
		_ = g.manager.Restore(ctx)
	})

	if location == "" {
		location = route.Path
	}
	routes := g.manager.Routes()
	authenticated := g.manager.IsAuthenticated()

	toLogin := func() Decision {
		query := url.Values{}
		query.Set(routes.RedirectParam, location)
		return redirectTo(routes.Login, query)
	}

	switch {
	case route.Policy.RequiresAuth && !authenticated:
		return toLogin()
	case route.Policy.GuestOnly && authenticated:
		return redirectTo(routes.Landing, nil)
	case route.Policy.Admin:
		if !authenticated {
			return toLogin()
		}
		if !g.manager.IsAdmin() {
			return redirectTo(routes.Landing, nil)
		}
	}

	return proceed()
}

// EvaluatePath resolves location against the guard's route table and
// evaluates the match. Unknown paths proceed; their handling (typically a
// catch-all redirect home) belongs to the navigation system.
func (g *Guard) EvaluatePath(ctx context.Context, location string) Decision {
	if g.table == nil {
		return g.Evaluate(ctx, Route{}, location)
	}
	route, ok := g.table.Lookup(location)
	if !ok {
		return g.Evaluate(ctx, Route{}, location)
	}
	return g.Evaluate(ctx, route, location)
}
