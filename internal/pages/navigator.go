package pages

import (
	"fmt"
	"sync"
)

// Navigator is a history stack over the route table. It starts on the main page.
type Navigator struct {
	table *Table

	mu      sync.Mutex
	entries []entry
	index   int
}

type entry struct {
	path  string
	route Route
}

// NewNavigator creates a navigator positioned at "/".
func (t *Table) NewNavigator() *Navigator {
	start, _ := t.Match("/")
	return &Navigator{
		table:   t,
		entries: []entry{{path: "/", route: start}},
	}
}

// Push navigates to path, discarding any forward history. An unmatched path
// returns ErrNoRoute and leaves the history untouched.
func (n *Navigator) Push(path string) (Route, error) {
	route, ok := n.table.Match(path)
	if !ok {
		return Route{}, fmt.Errorf("%w: %s", ErrNoRoute, path)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.entries = append(n.entries[:n.index+1], entry{path: path, route: route})
	n.index = len(n.entries) - 1
	return route, nil
}

// Back moves one entry back. It reports false at the start of history.
func (n *Navigator) Back() (Route, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.index == 0 {
		return n.entries[n.index].route, false
	}
	n.index--
	return n.entries[n.index].route, true
}

// Forward moves one entry forward. It reports false at the end of history.
func (n *Navigator) Forward() (Route, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.index == len(n.entries)-1 {
		return n.entries[n.index].route, false
	}
	n.index++
	return n.entries[n.index].route, true
}

// Current returns the active route.
func (n *Navigator) Current() Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.entries[n.index].route
}

// CurrentPath returns the path as it was pushed, including any query.
func (n *Navigator) CurrentPath() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.entries[n.index].path
}
