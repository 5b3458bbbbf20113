// Package socket provides cross-platform socket tuning, applied
// directly to the raw file descriptors the reactor manages: the
// blocking listen socket and the non-blocking accepted connections. Platform-specific optimizations are in
// tuning_linux.go, tuning_darwin.go and tuning_other.go.
package socket

import "syscall"

// Config represents socket tuning configuration. Zero values mean
// "use system defaults".
type Config struct {
	// NoDelay disables Nagle's algorithm. Default: true.
	NoDelay bool

	// RecvBuffer is SO_RCVBUF in bytes. 0 means system default.
	RecvBuffer int

	// SendBuffer is SO_SNDBUF in bytes. 0 means system default.
	SendBuffer int

	// QuickAck requests immediate ACKs where the platform supports it.
	// Since TCP_QUICKACK is not persistent, the flag gates both the
	// accept-time setting in Apply and the SetQuickAck call that
	// Connection.HandleRead makes after every read.
	QuickAck bool

	// KeepAlive enables SO_KEEPALIVE.
	KeepAlive bool

	// FastOpen enables TCP Fast Open on the listening socket where
	// the platform supports it.
	FastOpen bool

	// DeferAccept delays waking the acceptor until data has arrived,
	// where the platform supports it (Linux TCP_DEFER_ACCEPT).
	DeferAccept bool
}

// DefaultConfig returns the tuning recommended for HTTP/1.1 workloads.
func DefaultConfig() *Config {
	return &Config{
		NoDelay:     true,
		RecvBuffer:  256 * 1024,
		SendBuffer:  256 * 1024,
		QuickAck:    true,
		KeepAlive:   true,
		FastOpen:    true,
		DeferAccept: false,
	}
}

// Apply tunes an accepted connection's raw file descriptor. Critical
// options (TCP_NODELAY) return an error on failure; buffer sizing and
// keepalive are best-effort and never fail the call.
func Apply(fd int, cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if cfg.NoDelay {
		if err := syscall.SetsockoptInt(fd, syscall.IPPROTO_TCP, syscall.TCP_NODELAY, 1); err != nil {
			return err
		}
	}
	if cfg.RecvBuffer > 0 {
		_ = syscall.SetsockoptInt(fd, syscall.SOL_SOCKET, syscall.SO_RCVBUF, cfg.RecvBuffer)
	}
	if cfg.SendBuffer > 0 {
		_ = syscall.SetsockoptInt(fd, syscall.SOL_SOCKET, syscall.SO_SNDBUF, cfg.SendBuffer)
	}
	if cfg.KeepAlive {
		_ = syscall.SetsockoptInt(fd, syscall.SOL_SOCKET, syscall.SO_KEEPALIVE, 1)
	}
	applyPlatformOptions(fd, cfg)
	return nil
}

// ApplyListener tunes the raw listening socket before accept is first
// called. SO_REUSEADDR is applied unconditionally by the acceptor
// itself (see reactor.Listen); this only covers the remaining
// platform-specific listener options such as TCP_FASTOPEN.
func ApplyListener(fd int, cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return applyListenerOptions(fd, cfg)
}
