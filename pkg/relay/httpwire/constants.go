package httpwire

const (
	crlf     = "\r\n"
	crlfcrlf = "\r\n\r\n"

	httpVersion11 = "HTTP/1.1"

	headerContentLength = "Content-Length"
	headerConnection    = "Connection"

	// MaxRequestLineAndHeadersSize is a size limit for
	// request-line-plus-headers. Parser does not enforce it: the
	// buffer keeps growing until \r\n\r\n arrives.
	MaxRequestLineAndHeadersSize = 8192

	// MaxBodySize is a size limit for a Content-Length body. Parser
	// does not enforce it and accepts any non-negative Content-Length.
	MaxBodySize = 10 * 1024 * 1024
)
