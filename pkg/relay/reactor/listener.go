package reactor

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/yourusername/relay/pkg/relay/socket"
)

// listen creates an IPv4 stream socket bound to 0.0.0.0:port, sets
// SO_REUSEADDR, applies listener-side socket tuning, and starts
// listening with a backlog of 128. The listen socket is left in its
// default blocking mode: accept() against it is meant to be a genuine
// suspension point for the acceptor goroutine, matching the original
// source's blocking accept() rather than turning the accept loop into
// a busy-poll. Only the descriptor accept() returns is switched to
// non-blocking, since that is the one the reactor's poller drives.
func listen(port int, tuning *socket.Config) (int, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, 0)
	if err != nil {
		return -1, err
	}

	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		unix.Close(fd)
		return -1, err
	}

	addr := &unix.SockaddrInet4{Port: port}
	if err := unix.Bind(fd, addr); err != nil {
		unix.Close(fd)
		return -1, err
	}

	if err := unix.Listen(fd, listenBacklog); err != nil {
		unix.Close(fd)
		return -1, err
	}

	if err := socket.ApplyListener(fd, tuning); err != nil {
		// Fast Open and similar listener tuning are best-effort; a
		// kernel without support for them must not block startup.
		_ = err
	}

	return fd, nil
}

const listenBacklog = 128

// acceptOne accepts a single pending connection off listenFd and puts
// the new descriptor in non-blocking mode. unix.Accept (rather than
// the Linux-only Accept4) is used so this builds on Darwin/BSD too;
// the non-blocking flag is then set with a separate syscall.
func acceptOne(listenFd int) (int, error) {
	clientFd, _, err := unix.Accept(listenFd)
	if err != nil {
		return -1, err
	}
	if err := unix.SetNonblock(clientFd, true); err != nil {
		unix.Close(clientFd)
		return -1, err
	}
	return clientFd, nil
}

// boundPort reads back the port a listen socket was bound to, so
// callers that bind to port 0 (an ephemeral port) can learn which one
// the kernel picked.
func boundPort(fd int) (int, error) {
	sa, err := unix.Getsockname(fd)
	if err != nil {
		return 0, err
	}
	addr, ok := sa.(*unix.SockaddrInet4)
	if !ok {
		return 0, fmt.Errorf("reactor: unexpected sockaddr type %T for listen fd", sa)
	}
	return addr.Port, nil
}
