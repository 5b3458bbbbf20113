//go:build !linux && !darwin
// +build !linux,!darwin

package socket

// applyPlatformOptions is a no-op on platforms with no specific tuning.
func applyPlatformOptions(fd int, cfg *Config) {}

// applyListenerOptions is a no-op on platforms with no specific tuning.
func applyListenerOptions(fd int, cfg *Config) error {
	return nil
}

// SetQuickAck is a no-op on platforms without TCP_QUICKACK, so
// Connection.HandleRead can call it unconditionally across platforms.
func SetQuickAck(fd int) error {
	return nil
}
