// Package pages holds the client-side route table: which page renders for which
// path, a browser-style navigation history, and an http.Handler that serves the
// page shell so deep links resolve.
package pages

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
)

// Page identifies a top-level page component.
type Page string

const (
	MainPage  Page = "MainPage"
	AdminPage Page = "AdminPage"
)

// Route maps a path to the page rendered for it.
type Route struct {
	Name  string
	Path  string
	Page  Page
	Title string
}

// ErrNoRoute is returned when a path matches no entry in the table.
var ErrNoRoute = errors.New("no route matches path")

var routes = []Route{
	{Name: "main", Path: "/", Page: MainPage, Title: "Tamil Words Search"},
	{Name: "admin", Path: "/admin", Page: AdminPage, Title: "Admin Panel"},
}

// Routes returns a copy of the route table.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Table resolves paths against the static route list.
type Table struct {
	router *mux.Router
	byName map[string]Route
}

// NewTable builds the matcher for the route list.
func NewTable() *Table {
	t := &Table{
		router: mux.NewRouter(),
		byName: make(map[string]Route, len(routes)),
	}
	for _, route := range routes {
		t.router.Path(route.Path).Name(route.Name)
		t.byName[route.Name] = route
	}
	return t
}

// Match returns the route whose path equals the path component of target.
// Query strings and fragments are ignored.
func (t *Table) Match(target string) (Route, bool) {
	u, err := url.Parse(target)
	if err != nil {
		return Route{}, false
	}
	path := u.Path
	if path == "" {
		path = "/"
	}

	req := &http.Request{Method: http.MethodGet, URL: &url.URL{Path: path}}
	var match mux.RouteMatch
	if !t.router.Match(req, &match) || match.Route == nil {
		return Route{}, false
	}
	route, ok := t.byName[match.Route.GetName()]
	return route, ok
}

// Path returns the path registered under name.
func (t *Table) Path(name string) (string, error) {
	r := t.router.Get(name)
	if r == nil {
		return "", fmt.Errorf("%w: %q", ErrNoRoute, name)
	}
	u, err := r.URLPath()
	if err != nil {
		return "", err
	}
	return u.Path, nil
}
