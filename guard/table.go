package guard

import (
	"fmt"
	"strings"
)

// Table is the declarative route registry: every navigable view with its
// path pattern and access policy.
type Table struct {
	routes []Route
	byName map[string]Route
}

// NewTable registers the given routes. Route names must be unique.
func NewTable(routes ...Route) (*Table, error) {
	t := &Table{byName: make(map[string]Route, len(routes))}
	for _, route := range routes {
		if route.Name == "" {
			return nil, fmt.Errorf("route %q has no name", route.Path)
		}
		if _, exists := t.byName[route.Name]; exists {
			return nil, fmt.Errorf("duplicate route name %q", route.Name)
		}
		t.byName[route.Name] = route
		t.routes = append(t.routes, route)
	}
	return t, nil
}

// Named returns the route registered under name.
func (t *Table) Named(name string) (Route, bool) {
	route, ok := t.byName[name]
	return route, ok
}

// Lookup matches location (query string ignored) against the registered
// patterns in registration order and returns the first hit.
func (t *Table) Lookup(location string) (Route, bool) {
	path := location
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	for _, route := range t.routes {
		if matchPath(route.Path, path) {
			return route, true
		}
	}
	return Route{}, false
}

// matchPath compares pattern and path segment by segment; a ":param" segment
// matches any single non-empty segment. No catch-all support.
func matchPath(pattern, path string) bool {
	p := strings.Split(strings.Trim(pattern, "/"), "/")
	s := strings.Split(strings.Trim(path, "/"), "/")
	if len(p) != len(s) {
		return false
	}
	for i := range p {
		if strings.HasPrefix(p[i], ":") {
			if s[i] == "" {
				return false
			}
			continue
		}
		if p[i] != s[i] {
			return false
		}
	}
	return true
}
