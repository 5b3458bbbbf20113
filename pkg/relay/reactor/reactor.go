package reactor

import (
	"sync/atomic"
	"time"

	"github.com/yourusername/relay/internal/logging"
	"github.com/yourusername/relay/pkg/relay/router"
)

// pollTimeout bounds how long a single wait() call blocks, so the
// reactor can re-check the shutdown flag and sweep idle timeouts
// promptly even under no traffic.
const pollTimeout = 100 * time.Millisecond

// Reactor owns a disjoint set of Connections and a private readiness
// multiplexor. It is handed accepted descriptors by the Acceptor via
// Post and otherwise runs independently of every other reactor.
type Reactor struct {
	id       int
	router   *router.Router
	timeout  time.Duration
	quickAck bool

	poller poller
	conns  map[int]*Connection

	incoming chan int
	running  *atomic.Bool
}

func newReactor(id int, r *router.Router, keepAliveTimeout time.Duration, quickAck bool, running *atomic.Bool) (*Reactor, error) {
	p, err := newPoller()
	if err != nil {
		return nil, err
	}
	return &Reactor{
		id:       id,
		router:   r,
		timeout:  keepAliveTimeout,
		quickAck: quickAck,
		poller:   p,
		conns:    make(map[int]*Connection),
		incoming: make(chan int, 256),
		running:  running,
	}, nil
}

// Post hands an accepted descriptor to this reactor. Safe to call
// from the acceptor goroutine; the reactor registers it on its next
// loop iteration.
func (re *Reactor) Post(fd int) {
	re.incoming <- fd
}

// Run is the reactor's loop body, intended to run on its own
// goroutine until running flips false: drain newly-posted
// connections, block on the poller up to pollTimeout, dispatch
// readiness events, then sweep idle READING connections.
func (re *Reactor) Run() {
	for re.running.Load() {
		re.drainIncoming()

		events, err := re.poller.wait(int(pollTimeout / time.Millisecond))
		if err != nil {
			logging.Errorf("reactor %d: poll error: %v", re.id, err)
			continue
		}

		for _, ev := range events {
			re.dispatch(ev)
		}

		re.sweepTimeouts()
	}
	re.closeAll()
	re.poller.close()
}

func (re *Reactor) drainIncoming() {
	for {
		select {
		case fd := <-re.incoming:
			re.addConnection(fd)
		default:
			return
		}
	}
}

// addConnection implements the add-connection protocol: register
// read-only edge-triggered interest and insert into the registry. If
// registration fails the connection is dropped rather than leaked.
func (re *Reactor) addConnection(fd int) {
	conn := newConnection(fd, re.router, re.quickAck)
	if err := re.poller.add(fd, interestRead); err != nil {
		logging.Warningf("reactor %d: failed to register fd %d: %v", re.id, fd, err)
		conn.Close()
		return
	}
	re.conns[fd] = conn
}

func (re *Reactor) dispatch(ev event) {
	conn, ok := re.conns[ev.fd]
	if !ok {
		return
	}
	if ev.errOrHup {
		re.drop(conn)
		return
	}

	if ev.readable {
		conn.HandleRead()
	}
	if ev.writable && conn.State() != stateClosing {
		conn.HandleWrite()
	}

	re.reregister(conn)
}

// reregister re-registers interest to match the connection's new
// state: READING -> read-only, WRITING -> write-only, CLOSING ->
// remove from the registry (descriptor close implied).
func (re *Reactor) reregister(conn *Connection) {
	switch conn.State() {
	case stateReading:
		if err := re.poller.modify(conn.fd, interestRead); err != nil {
			re.drop(conn)
		}
	case stateWriting:
		if err := re.poller.modify(conn.fd, interestWrite); err != nil {
			re.drop(conn)
		}
	case stateClosing:
		re.drop(conn)
	}
}

func (re *Reactor) drop(conn *Connection) {
	re.poller.remove(conn.fd)
	delete(re.conns, conn.fd)
	conn.Close()
}

// sweepTimeouts drops every READING connection whose last activity is
// older than the configured keep-alive timeout.
func (re *Reactor) sweepTimeouts() {
	var timedOut []*Connection
	for _, conn := range re.conns {
		if conn.State() == stateReading && conn.IsTimedOut(re.timeout) {
			timedOut = append(timedOut, conn)
		}
	}
	for _, conn := range timedOut {
		re.drop(conn)
	}
}

func (re *Reactor) closeAll() {
	for _, conn := range re.conns {
		conn.Close()
	}
	re.conns = make(map[int]*Connection)
}
