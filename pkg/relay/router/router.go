// Package router implements the two-tier route dispatch table: an
// O(1) exact-match table for literal paths and an ordered,
// linearly-scanned list of parameterized patterns per method.
package router

import (
	"github.com/yourusername/relay/pkg/relay/httpwire"
)

// Handler handles a fully-decoded request and produces a response.
type Handler func(req *httpwire.Request) *httpwire.Response

type exactKey struct {
	method httpwire.Method
	path   string
}

// Router is constructed with AddRoute calls before Start and treated
// as read-only by every reactor thereafter; no locking is needed on
// lookup because nothing mutates it after startup.
type Router struct {
	exact         map[exactKey]Handler
	parameterized map[httpwire.Method][]*compiledRoute
}

type compiledRoute struct {
	pattern *Pattern
	handler Handler
}

// New returns an empty Router.
func New() *Router {
	return &Router{
		exact:         make(map[exactKey]Handler),
		parameterized: make(map[httpwire.Method][]*compiledRoute),
	}
}

// AddRoute registers handler for method and pattern. A pattern
// containing "{...}" segments is compiled into the parameterized
// table and matched in insertion order; otherwise it is stored in the
// exact table. Duplicate exact registration is implementation-defined
// but deterministic: last write wins, matching Go's own map semantics.
func (r *Router) AddRoute(method httpwire.Method, pattern string, handler Handler) {
	if HasParams(pattern) {
		r.parameterized[method] = append(r.parameterized[method], &compiledRoute{
			pattern: CompilePattern(pattern),
			handler: handler,
		})
		return
	}
	r.exact[exactKey{method: method, path: pattern}] = handler
}

// Match resolves method and path against the exact table first, then
// the parameterized table in insertion order. On a parameterized
// match, extracted path parameters are written into pathParams (which
// the caller typically owns on the in-flight Request). Returns
// (nil, false) if nothing matches.
func (r *Router) Match(method httpwire.Method, path string, pathParams map[string]string) (Handler, bool) {
	if h, ok := r.exact[exactKey{method: method, path: path}]; ok {
		return h, true
	}
	for _, route := range r.parameterized[method] {
		if params, ok := route.pattern.Matches(path); ok {
			for k, v := range params {
				pathParams[k] = v
			}
			return route.handler, true
		}
	}
	return nil, false
}
