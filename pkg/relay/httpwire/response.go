package httpwire

import (
	"strconv"

	"github.com/yourusername/relay/internal/httpstatus"
	"github.com/yourusername/relay/internal/mimetype"
	"github.com/yourusername/relay/pkg/relay/bufpool"
)

// Response is the outgoing message under construction. Handlers build
// one and return it; the connection state machine serializes it.
type Response struct {
	Status  httpstatus.Code
	Headers map[string]string
	Body    []byte
}

// NewResponse returns a Response defaulted to 200 OK with empty headers.
func NewResponse() *Response {
	return &Response{
		Status:  httpstatus.OK,
		Headers: make(map[string]string),
	}
}

// SetStatus sets the numeric status code.
func (r *Response) SetStatus(code httpstatus.Code) { r.Status = code }

// SetHeader sets a response header, overwriting any existing value.
func (r *Response) SetHeader(name, value string) { r.Headers[name] = value }

// GetHeader returns a previously-set response header.
func (r *Response) GetHeader(name string) (string, bool) {
	v, ok := r.Headers[name]
	return v, ok
}

// SetContentType sets Content-Type from a MimeType enum value.
func (r *Response) SetContentType(mt mimetype.Type) {
	r.Headers["Content-Type"] = mt.String()
}

// SetContentTypeRaw sets Content-Type to an arbitrary string, for
// content types the enum doesn't name.
func (r *Response) SetContentTypeRaw(raw string) {
	r.Headers["Content-Type"] = raw
}

// SetBody sets the response body.
func (r *Response) SetBody(body []byte) { r.Body = body }

// Serialize renders the status line, headers, blank line and body.
// Content-Length is inserted automatically when the body is non-empty
// and the header is absent. Header order is not significant to the
// wire format; it is written in map iteration order.
func (r *Response) Serialize() []byte {
	buf := bufpool.Get()
	defer bufpool.Put(buf)

	buf.WriteString("HTTP/1.1 ")
	buf.WriteString(r.Status.String())
	buf.WriteString("\r\n")

	if len(r.Body) > 0 {
		if _, has := r.Headers["Content-Length"]; !has {
			r.Headers["Content-Length"] = strconv.Itoa(len(r.Body))
		}
	}

	for name, value := range r.Headers {
		buf.WriteString(name)
		buf.WriteString(": ")
		buf.WriteString(value)
		buf.WriteString("\r\n")
	}
	buf.WriteString("\r\n")
	buf.Write(r.Body)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out
}

// NotFound builds the synthetic 404 the router falls back to on a miss.
func NotFound() *Response {
	resp := NewResponse()
	resp.SetStatus(httpstatus.NotFound)
	resp.SetContentType(mimetype.TextPlain)
	resp.SetBody([]byte("Route not found"))
	return resp
}

// InternalError builds the synthetic 500 a panicking handler falls back to.
func InternalError() *Response {
	resp := NewResponse()
	resp.SetStatus(httpstatus.InternalServerError)
	resp.SetContentType(mimetype.TextPlain)
	resp.SetBody([]byte("Internal Server Error"))
	return resp
}
