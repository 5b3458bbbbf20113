package reactor

import (
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sys/unix"

	"github.com/yourusername/relay/internal/logging"
	"github.com/yourusername/relay/pkg/relay/bufpool"
	"github.com/yourusername/relay/pkg/relay/httpwire"
	"github.com/yourusername/relay/pkg/relay/router"
	"github.com/yourusername/relay/pkg/relay/socket"
)

// connState is the three-state automaton named in the connection
// state machine: READING, WRITING, CLOSING.
type connState int32

const (
	stateReading connState = iota
	stateWriting
	stateClosing
)

// Connection is a per-client record, exclusively owned and mutated by
// exactly one reactor goroutine for its entire lifetime. No locking
// guards its fields: the only cross-goroutine access is the reactor's
// own dispatch loop, which always runs on the same goroutine that
// created the Connection.
type Connection struct {
	fd     int
	router *router.Router

	state        connState
	keepAlive    bool
	quickAck     bool
	lastActivity atomic.Int64 // unix nanoseconds, read by the timeout sweep from the reactor goroutine only

	parser   *httpwire.Parser
	writeBuf []byte
}

func newConnection(fd int, r *router.Router, quickAck bool) *Connection {
	c := &Connection{
		fd:       fd,
		router:   r,
		state:    stateReading,
		quickAck: quickAck,
		parser:   httpwire.NewParser(),
	}
	c.touch()
	return c
}

func (c *Connection) touch() {
	c.lastActivity.Store(time.Now().UnixNano())
}

// IsTimedOut reports whether the connection's last read or write is
// older than timeout. It does not look at the state; the reactor's
// sweep applies it only to READING connections.
func (c *Connection) IsTimedOut(timeout time.Duration) bool {
	last := time.Unix(0, c.lastActivity.Load())
	return time.Since(last) > timeout
}

// State returns the connection's current automaton state.
func (c *Connection) State() connState { return c.state }

// Close releases the connection's file descriptor. Safe to call once.
func (c *Connection) Close() {
	unix.Close(c.fd)
}

// HandleRead reads one chunk off the socket and feeds it to the
// parser. bytes>0 with an incomplete request leaves the connection in
// READING for the next readiness event; a completed request is
// dispatched to the router and transitions the connection to
// WRITING; bytes==0 (peer half-closed) or any read error other than
// would-block transitions to CLOSING.
func (c *Connection) HandleRead() {
	buf := bufpool.Get()
	defer bufpool.Put(buf)
	if cap(buf.B) < bufpool.ReadChunkSize {
		buf.B = make([]byte, bufpool.ReadChunkSize)
	}
	buf.B = buf.B[:bufpool.ReadChunkSize]

	n, err := unix.Read(c.fd, buf.B)
	if n > 0 {
		c.touch()
		if c.quickAck {
			// TCP_QUICKACK is cleared by the kernel after every ACK it
			// sends, so it has to be re-armed on every read rather
			// than once at accept time.
			_ = socket.SetQuickAck(c.fd)
		}
		if c.parser.Feed(buf.B[:n]) {
			c.processRequest()
		}
		return
	}
	if err == unix.EAGAIN {
		return
	}
	// n == 0 (peer half-closed) or any other read error.
	c.state = stateClosing
}

// HandleWrite sends one chunk of write_buf. A short write truncates
// write_buf's consumed prefix in place and leaves the connection in
// WRITING for the next readiness event. Once the buffer fully drains,
// keep-alive connections reset the parser and return to READING;
// others move to CLOSING. A write error moves to CLOSING.
func (c *Connection) HandleWrite() {
	if len(c.writeBuf) > 0 {
		n, err := unix.Write(c.fd, c.writeBuf)
		if n > 0 {
			c.touch()
			c.writeBuf = c.writeBuf[n:]
		}
		if err != nil && err != unix.EAGAIN {
			c.state = stateClosing
			return
		}
	}

	if len(c.writeBuf) > 0 {
		return
	}

	if c.keepAlive {
		c.parser.Reset()
		c.state = stateReading
		return
	}
	c.state = stateClosing
}

// processRequest runs the just-completed request through the router,
// computes the keep-alive decision, serializes the response into
// write_buf, and transitions to WRITING.
func (c *Connection) processRequest() {
	req := c.parser.TakeRequest()

	handler, ok := c.router.Match(req.Method, req.Route, req.PathParams)
	var resp *httpwire.Response
	if ok {
		resp = c.invokeHandler(handler, req)
	} else {
		resp = httpwire.NotFound()
	}

	c.keepAlive = shouldKeepAlive(req)
	if c.keepAlive {
		resp.SetHeader("Connection", "keep-alive")
	} else {
		resp.SetHeader("Connection", "close")
	}

	c.writeBuf = resp.Serialize()
	c.state = stateWriting

	logging.Debugf("handled %s %s -> %s (keep-alive=%v)", req.Method, req.Route, resp.Status, c.keepAlive)
}

// invokeHandler isolates a single handler call so a panicking handler
// cannot bring down the reactor goroutine; it degrades to a synthetic
// 500 instead.
func (c *Connection) invokeHandler(h router.Handler, req *httpwire.Request) (resp *httpwire.Response) {
	defer func() {
		if r := recover(); r != nil {
			logging.Errorf("handler panic for %s %s: %v", req.Method, req.Route, r)
			resp = httpwire.InternalError()
		}
	}()
	return h(req)
}

// shouldKeepAlive implements the keep-alive decision: an explicit
// "close" Connection header wins, an explicit "keep-alive" header
// wins, otherwise HTTP/1.1 defaults to keep-alive and anything else
// defaults to close.
func shouldKeepAlive(req *httpwire.Request) bool {
	if v, ok := req.GetHeader("Connection"); ok {
		switch strings.ToLower(v) {
		case "close":
			return false
		case "keep-alive":
			return true
		}
	}
	return req.Version == "HTTP/1.1"
}
