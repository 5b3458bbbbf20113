package httpwire

import "errors"

// Parsing anomalies are advisory per the wire contract: malformed
// header lines are skipped, unknown methods and missing targets leave
// the request in a state the router simply won't match. These
// sentinels exist for the handful of conditions an implementation
// still needs to report across a function boundary.
var (
	// ErrBufferTooSmall names a body declared larger than a parser is
	// willing to buffer. Parser never returns it; it accepts any
	// Content-Length.
	ErrBufferTooSmall = errors.New("httpwire: buffer too small")

	// ErrRequestNotComplete names a TakeRequest call made before Feed
	// reported a complete request. Parser never returns it; TakeRequest
	// returns no error, and returns nil in that case.
	ErrRequestNotComplete = errors.New("httpwire: request not complete")
)
