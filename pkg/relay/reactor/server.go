// Package reactor implements the multi-reactor event engine: the
// acceptor/server, the per-reactor event loop and poller, and the
// per-connection state machine.
package reactor

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	"github.com/yourusername/relay/internal/logging"
	"github.com/yourusername/relay/pkg/relay/router"
	"github.com/yourusername/relay/pkg/relay/socket"
)

// Config holds the server's three configuration options, per the
// external-interfaces contract: listen port, reactor count, and
// keep-alive idle timeout, plus the socket tuning applied to the
// listen socket and to every accepted connection.
type Config struct {
	Port             int
	NumberThreads    int
	KeepAliveTimeout time.Duration
	SocketTuning     *socket.Config
}

// DefaultConfig returns the documented defaults: port 8080, one
// reactor per logical CPU, and a 30s keep-alive timeout.
func DefaultConfig() *Config {
	return &Config{
		Port:             8080,
		NumberThreads:    runtime.NumCPU(),
		KeepAliveTimeout: 30 * time.Second,
		SocketTuning:     socket.DefaultConfig(),
	}
}

// Server is the acceptor: it owns the listen socket and round-robins
// accepted descriptors across a fixed set of reactors.
type Server struct {
	cfg      *Config
	router   *router.Router
	reactors []*Reactor
	running  atomic.Bool

	listenFd int
	port     int
	nextLoop int
}

// New constructs a Server bound to cfg and r. r must not be mutated
// after New is called: every reactor shares the same immutable
// Router instance with no synchronization on lookup.
func New(cfg *Config, r *router.Router) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.SocketTuning == nil {
		cfg.SocketTuning = socket.DefaultConfig()
	}
	return &Server{cfg: cfg, router: r, listenFd: -1}
}

// Listen binds and starts listening on cfg.Port (an ephemeral port if
// it is 0), without yet accepting connections. Start calls this itself
// if it hasn't already happened; callers that need to learn the bound
// port ahead of Start — e.g. tests binding to port 0 — call it
// directly first.
func (s *Server) Listen() error {
	if s.listenFd >= 0 {
		return nil
	}
	fd, err := listen(s.cfg.Port, s.cfg.SocketTuning)
	if err != nil {
		return err
	}
	port, err := boundPort(fd)
	if err != nil {
		unix.Close(fd)
		return err
	}
	s.listenFd = fd
	s.port = port
	return nil
}

// Port returns the bound listen port. Only meaningful once Listen (or
// Start) has succeeded.
func (s *Server) Port() int { return s.port }

// Start creates the listen socket (if Listen wasn't already called),
// spawns one goroutine per reactor plus the accept loop, and blocks
// until ctx is cancelled (or an unrecoverable startup error occurs).
// On return every reactor goroutine and the accept loop have been
// joined.
func (s *Server) Start(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		logging.Criticalf("server: failed to start listening on port %d: %v", s.cfg.Port, err)
		return err
	}
	s.running.Store(true)

	s.reactors = make([]*Reactor, s.cfg.NumberThreads)
	for i := range s.reactors {
		re, err := newReactor(i, s.router, s.cfg.KeepAliveTimeout, s.cfg.SocketTuning.QuickAck, &s.running)
		if err != nil {
			logging.Criticalf("server: failed to create reactor %d: %v", i, err)
			return err
		}
		s.reactors[i] = re
	}

	logging.Infof("server: listening on 0.0.0.0:%d with %d reactors", s.port, len(s.reactors))

	group, groupCtx := errgroup.WithContext(ctx)
	for _, re := range s.reactors {
		re := re
		group.Go(func() error {
			re.Run()
			return nil
		})
	}
	group.Go(func() error {
		s.acceptLoop()
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		s.Shutdown()
		return nil
	})

	return group.Wait()
}

// acceptLoop is the acceptor's main body: block in accept() for the
// next connection, hand it to the next reactor round-robin, repeat
// while running. The listen socket is left in its default blocking
// mode — only the accepted client descriptor is switched to
// non-blocking — so accept() here is a genuine suspension point,
// matching the original source's HttpServer::run rather than busy-
// polling a non-blocking listen socket. Shutdown unblocks a pending
// accept() by shutting down and closing the listen socket. An accept
// failure while running is logged and the loop continues immediately
// — this is the fix for the accept-loop bug the original source has,
// where a negative descriptor still fell through to a subsequent
// syscall instead of looping back to accept().
func (s *Server) acceptLoop() {
	for s.running.Load() {
		fd, err := acceptOne(s.listenFd)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			if s.running.Load() {
				logging.Errorf("server: accept failed: %v", err)
			}
			continue
		}

		if err := socket.Apply(fd, s.cfg.SocketTuning); err != nil {
			logging.Warningf("server: socket tuning failed for fd %d: %v", fd, err)
		}

		re := s.reactors[s.nextLoop]
		s.nextLoop = (s.nextLoop + 1) % len(s.reactors)
		re.Post(fd)
	}
}

// Shutdown flips the running flag and shuts down the read side of the
// listen socket to unblock accept(). Reactors observe the flag on
// their next iteration and exit after finishing in-flight I/O.
func (s *Server) Shutdown() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	logging.Info("server: shutting down")
	unix.Shutdown(s.listenFd, unix.SHUT_RD)
	unix.Close(s.listenFd)
}
