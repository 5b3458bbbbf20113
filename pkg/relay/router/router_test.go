package router

import (
	"testing"

	"github.com/yourusername/relay/pkg/relay/httpwire"
)

func okHandler(req *httpwire.Request) *httpwire.Response {
	return httpwire.NewResponse()
}

func TestExactRouteMatch(t *testing.T) {
	r := New()
	r.AddRoute(httpwire.MethodGET, "/hello", okHandler)

	h, ok := r.Match(httpwire.MethodGET, "/hello", map[string]string{})
	if !ok || h == nil {
		t.Fatalf("expected exact match")
	}
	if _, ok := r.Match(httpwire.MethodPOST, "/hello", map[string]string{}); ok {
		t.Fatalf("expected no match for wrong method")
	}
}

func TestParameterizedRouteMatch(t *testing.T) {
	r := New()
	r.AddRoute(httpwire.MethodGET, "/items/{id}", okHandler)

	params := map[string]string{}
	h, ok := r.Match(httpwire.MethodGET, "/items/42", params)
	if !ok || h == nil {
		t.Fatalf("expected parameterized match")
	}
	if params["id"] != "42" {
		t.Fatalf("id = %q, want 42", params["id"])
	}

	if _, ok := r.Match(httpwire.MethodGET, "/items/42/extra", map[string]string{}); ok {
		t.Fatalf("expected no match for extra segment")
	}
	if _, ok := r.Match(httpwire.MethodGET, "/items", map[string]string{}); ok {
		t.Fatalf("expected no match for missing segment")
	}
}

// TestLiteralSegmentMustMatch regresses the original source's known
// bug: matches() there only ever advanced a parameter cursor and never
// compared literal segments against the path, so a pattern with a
// literal tail would wrongly accept any value in that position.
func TestLiteralSegmentMustMatch(t *testing.T) {
	r := New()
	r.AddRoute(httpwire.MethodGET, "/a/{x}/b", okHandler)

	params := map[string]string{}
	if _, ok := r.Match(httpwire.MethodGET, "/a/V/b", params); !ok {
		t.Fatalf("expected match on correct literal tail")
	}
	if params["x"] != "V" {
		t.Fatalf("x = %q, want V", params["x"])
	}
	if _, ok := r.Match(httpwire.MethodGET, "/a/V/wrong-tail", map[string]string{}); ok {
		t.Fatalf("literal segment must reject a mismatched path segment")
	}
}

func TestExactTakesPrecedenceOverParameterized(t *testing.T) {
	r := New()
	var calledExact bool
	r.AddRoute(httpwire.MethodGET, "/items/special", func(req *httpwire.Request) *httpwire.Response {
		calledExact = true
		return httpwire.NewResponse()
	})
	r.AddRoute(httpwire.MethodGET, "/items/{id}", okHandler)

	h, ok := r.Match(httpwire.MethodGET, "/items/special", map[string]string{})
	if !ok {
		t.Fatalf("expected a match")
	}
	h(nil)
	if !calledExact {
		t.Fatalf("expected exact route to win over parameterized route")
	}
}

func TestNoMatch(t *testing.T) {
	r := New()
	if _, ok := r.Match(httpwire.MethodGET, "/none", map[string]string{}); ok {
		t.Fatalf("expected no match on empty router")
	}
}
