// Package nav tracks the current page of the client. A route is a path with
// an optional query ("/reset-password?token=abc"), the query being the
// navigation context handed to the mounted page.
package nav

import (
	"net/url"
	"sync"
)

// Navigator moves the client to another route.
type Navigator interface {
	Navigate(route string)
}

// Location is a parsed route.
type Location struct {
	Path  string
	Query url.Values
}

func (l Location) String() string {
	if len(l.Query) == 0 {
		return l.Path
	}
	return l.Path + "?" + l.Query.Encode()
}

// Parse splits a route into path and query. Unparseable routes keep the raw
// string as the path.
func Parse(route string) Location {
	u, err := url.Parse(route)
	if err != nil {
		return Location{Path: route, Query: url.Values{}}
	}
	path := u.Path
	if path == "" {
		path = "/"
	}
	return Location{Path: path, Query: u.Query()}
}

// Router is a Navigator that remembers where it is. Listeners registered
// with OnNavigate run synchronously after every change.
type Router struct {
	mu        sync.Mutex
	current   Location
	history   []Location
	listeners []func(from, to Location)
}

func NewRouter(start string) *Router {
	return &Router{current: Parse(start)}
}

func (r *Router) Navigate(route string) {
	to := Parse(route)

	r.mu.Lock()
	from := r.current
	r.history = append(r.history, from)
	r.current = to
	listeners := append([]func(from, to Location){}, r.listeners...)
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(from, to)
	}
}

func (r *Router) Current() Location {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Back returns to the previous location, if any. The move is not recorded
// in the history.
func (r *Router) Back() bool {
	r.mu.Lock()
	if len(r.history) == 0 {
		r.mu.Unlock()
		return false
	}
	from := r.current
	r.current = r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	to := r.current
	listeners := append([]func(from, to Location){}, r.listeners...)
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(from, to)
	}
	return true
}

func (r *Router) OnNavigate(fn func(from, to Location)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}
