//go:build linux
// +build linux

package socket

import "syscall"

// Socket option constants not exposed by the syscall package on every
// supported Go toolchain version.
const (
	tcpQuickAck     = 12
	tcpDeferAccept  = 9
	tcpFastOpen     = 23
	tcpUserTimeout  = 18
	tcpKeepIdle     = 4
	tcpKeepIntvl    = 5
	tcpKeepCnt      = 6
)

// applyPlatformOptions applies Linux-specific per-connection options.
func applyPlatformOptions(fd int, cfg *Config) {
	if cfg.QuickAck {
		_ = syscall.SetsockoptInt(fd, syscall.IPPROTO_TCP, tcpQuickAck, 1)
	}

	// Tear down connections the peer stopped acknowledging within 10s.
	_ = syscall.SetsockoptInt(fd, syscall.IPPROTO_TCP, tcpUserTimeout, 10000)

	if cfg.KeepAlive {
		_ = syscall.SetsockoptInt(fd, syscall.IPPROTO_TCP, tcpKeepIdle, 60)
		_ = syscall.SetsockoptInt(fd, syscall.IPPROTO_TCP, tcpKeepIntvl, 10)
		_ = syscall.SetsockoptInt(fd, syscall.IPPROTO_TCP, tcpKeepCnt, 3)
	}
}

// applyListenerOptions applies Linux-specific listener options.
func applyListenerOptions(fd int, cfg *Config) error {
	var lastErr error

	if cfg.DeferAccept {
		if err := syscall.SetsockoptInt(fd, syscall.IPPROTO_TCP, tcpDeferAccept, 5); err != nil {
			lastErr = err
		}
	}

	if cfg.FastOpen {
		if err := syscall.SetsockoptInt(fd, syscall.IPPROTO_TCP, tcpFastOpen, 256); err != nil {
			lastErr = err
		}
	}

	return lastErr
}

// SetQuickAck re-arms TCP_QUICKACK on fd. The kernel clears the flag
// after every ACK it sends, so a single call at accept time has no
// lasting effect; Connection.HandleRead calls this after each read
// instead so low-latency ACKs persist for the connection's lifetime.
func SetQuickAck(fd int) error {
	return syscall.SetsockoptInt(fd, syscall.IPPROTO_TCP, tcpQuickAck, 1)
}
