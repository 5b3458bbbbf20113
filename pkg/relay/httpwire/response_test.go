package httpwire

import (
	"strings"
	"testing"

	"github.com/yourusername/relay/internal/httpstatus"
	"github.com/yourusername/relay/internal/mimetype"
)

func TestResponseSerializeAutoContentLength(t *testing.T) {
	resp := NewResponse()
	resp.SetStatus(httpstatus.OK)
	resp.SetContentType(mimetype.TextPlain)
	resp.SetBody([]byte("hi"))

	out := string(resp.Serialize())
	if !strings.HasPrefix(out, "HTTP/1.1 200 OK\r\n") {
		t.Fatalf("status line wrong: %q", out)
	}
	if !strings.Contains(out, "Content-Length: 2\r\n") {
		t.Fatalf("missing auto content-length: %q", out)
	}
	if !strings.HasSuffix(out, "\r\n\r\nhi") {
		t.Fatalf("body not appended after blank line: %q", out)
	}
}

func TestResponseUnknownStatusCode(t *testing.T) {
	resp := NewResponse()
	resp.SetStatus(httpstatus.Code(599))
	out := string(resp.Serialize())
	if !strings.HasPrefix(out, "HTTP/1.1 599 Unknown Status\r\n") {
		t.Fatalf("expected Unknown Status fallback, got %q", out)
	}
}

func TestNotFoundResponse(t *testing.T) {
	resp := NotFound()
	out := string(resp.Serialize())
	if !strings.Contains(out, "404 Not Found") {
		t.Fatalf("expected 404, got %q", out)
	}
	if !strings.HasSuffix(out, "Route not found") {
		t.Fatalf("expected body Route not found, got %q", out)
	}
}
