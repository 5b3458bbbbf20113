//go:build !linux && !darwin
// +build !linux,!darwin

package reactor

import "errors"

// newPoller has no implementation on platforms without epoll or
// kqueue; the reactor's edge-triggered design has no portable
// fallback, so this is a hard error rather than a degraded mode.
func newPoller() (poller, error) {
	return nil, errors.New("reactor: no supported readiness multiplexor on this platform")
}
