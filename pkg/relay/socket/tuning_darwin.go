//go:build darwin
// +build darwin

package socket

import "syscall"

const (
	tcpFastOpen  = 0x105
	tcpKeepAlive = 0x10
	soNoSigPipe  = 0x1022
)

// applyPlatformOptions applies Darwin-specific per-connection options.
func applyPlatformOptions(fd int, cfg *Config) {
	// Linux uses MSG_NOSIGNAL on send(); Darwin has no send-time
	// equivalent, so SIGPIPE suppression is a socket option instead.
	_ = syscall.SetsockoptInt(fd, syscall.SOL_SOCKET, soNoSigPipe, 1)

	if cfg.KeepAlive {
		_ = syscall.SetsockoptInt(fd, syscall.IPPROTO_TCP, tcpKeepAlive, 60)
	}
}

// applyListenerOptions applies Darwin-specific listener options.
func applyListenerOptions(fd int, cfg *Config) error {
	var lastErr error

	if cfg.FastOpen {
		if err := syscall.SetsockoptInt(fd, syscall.IPPROTO_TCP, tcpFastOpen, 256); err != nil {
			lastErr = err
		}
	}

	return lastErr
}

// SetQuickAck is a no-op: Darwin has no TCP_QUICKACK equivalent. It
// exists so Connection.HandleRead can call it unconditionally across
// platforms.
func SetQuickAck(fd int) error {
	return nil
}

// Darwin has no TCP_DEFER_ACCEPT equivalent; applyListenerOptions
// ignores cfg.DeferAccept on this platform.
