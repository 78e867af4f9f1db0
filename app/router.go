package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
)

// isPath is the pattern of a valid request path, for example
// "treasury/dispatch".
var isPath = regexp.MustCompile(`^[a-z0-9_]+/[a-z0-9_]+$`).MatchString

// Router allows us to register many handlers with different paths and
// dispatch each request to the matching handler.
type Router struct {
	routes map[string]treasury.Handler
}

var _ treasury.Registry = (*Router)(nil)
var _ treasury.Handler = (*Router)(nil)

// NewRouter returns a new empty router instance.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]treasury.Handler, 4),
	}
}

// Handle adds a new Handler for the given path. This function panics if a
// handler for given path is already registered or the path is not valid.
func (r *Router) Handle(path string, h treasury.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// handler returns the handler registered for the path.
func (r *Router) handler(path string) (treasury.Handler, error) {
	if h, ok := r.routes[path]; ok {
		return h, nil
	}
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for path %q", path)
}

// Check dispatches to the proper handler based on path.
func (r *Router) Check(ctx treasury.Context, store treasury.KVStore, req *treasury.Request) (*treasury.CheckResult, error) {
	h, err := r.handler(req.GetPath())
	if err != nil {
		return nil, err
	}
	return h.Check(ctx, store, req)
}

// Deliver dispatches to the proper handler based on path.
func (r *Router) Deliver(ctx treasury.Context, store treasury.KVStore, req *treasury.Request) (*treasury.DeliverResult, error) {
	h, err := r.handler(req.GetPath())
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, store, req)
}
