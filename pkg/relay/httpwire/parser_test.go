package httpwire

import (
	"testing"
)

func TestParserSimpleGET(t *testing.T) {
	p := NewParser()
	raw := "GET /hello HTTP/1.1\r\nHost: x\r\n\r\n"
	if !p.Feed([]byte(raw)) {
		t.Fatalf("expected Feed to report complete request")
	}
	req := p.TakeRequest()
	if req.Method != MethodGET {
		t.Fatalf("method = %v, want GET", req.Method)
	}
	if req.Route != "/hello" {
		t.Fatalf("route = %q, want /hello", req.Route)
	}
	if req.Version != "HTTP/1.1" {
		t.Fatalf("version = %q", req.Version)
	}
	if v, _ := req.GetHeader("Host"); v != "x" {
		t.Fatalf("Host header = %q", v)
	}
}

func TestParserSplitAcrossFeeds(t *testing.T) {
	raw := "POST /e HTTP/1.1\r\nContent-Length: 5\r\n\r\nhello"
	for split := 0; split <= len(raw); split++ {
		p := NewParser()
		a, b := raw[:split], raw[split:]
		complete := p.Feed([]byte(a))
		if !complete {
			complete = p.Feed([]byte(b))
		}
		if !complete {
			t.Fatalf("split %d: expected request to complete", split)
		}
		req := p.TakeRequest()
		if string(req.Body) != "hello" {
			t.Fatalf("split %d: body = %q, want hello", split, req.Body)
		}
	}
}

func TestParserQueryParams(t *testing.T) {
	p := NewParser()
	raw := "GET /q?a=1&b=hello%20world HTTP/1.1\r\n\r\n"
	if !p.Feed([]byte(raw)) {
		t.Fatalf("expected complete request")
	}
	req := p.TakeRequest()
	if v, _ := req.GetQueryParam("a"); v != "1" {
		t.Fatalf("a = %q", v)
	}
	if v, _ := req.GetQueryParam("b"); v != "hello world" {
		t.Fatalf("b = %q", v)
	}
}

func TestParserMissingContentLengthDefaultsZero(t *testing.T) {
	p := NewParser()
	raw := "GET /hello HTTP/1.1\r\n\r\n"
	if !p.Feed([]byte(raw)) {
		t.Fatalf("expected complete request")
	}
	req := p.TakeRequest()
	if len(req.Body) != 0 {
		t.Fatalf("body = %q, want empty", req.Body)
	}
}

func TestParserResetPreservesPipelinedBytes(t *testing.T) {
	p := NewParser()
	first := "GET /a HTTP/1.1\r\n\r\n"
	second := "GET /b HTTP/1.1\r\n\r\n"
	if !p.Feed([]byte(first + second)) {
		t.Fatalf("expected first request to complete")
	}
	if req := p.TakeRequest(); req.Route != "/a" {
		t.Fatalf("route = %q, want /a", req.Route)
	}
	p.Reset()
	if !p.Feed(nil) {
		t.Fatalf("expected second request already buffered to complete")
	}
	if req := p.TakeRequest(); req.Route != "/b" {
		t.Fatalf("route = %q, want /b", req.Route)
	}
}

func TestParserMalformedHeaderLineSkipped(t *testing.T) {
	p := NewParser()
	raw := "GET /a HTTP/1.1\r\nmalformed-no-colon\r\nHost: x\r\n\r\n"
	if !p.Feed([]byte(raw)) {
		t.Fatalf("expected complete request")
	}
	req := p.TakeRequest()
	if v, _ := req.GetHeader("Host"); v != "x" {
		t.Fatalf("Host = %q", v)
	}
}
