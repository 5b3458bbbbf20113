//go:build darwin
// +build darwin

package reactor

import (
	"golang.org/x/sys/unix"
)

const maxKqueueEvents = 128

// kqueuePoller is the Darwin/BSD poller. kqueue has no EPOLLET flag;
// EV_CLEAR is its edge-triggered equivalent, clearing the event state
// after it's been delivered once, the same contract epoll's
// edge-triggered mode gives (see the poller interface for how
// undrained descriptors are reported again).
type kqueuePoller struct {
	kq     int
	events []unix.Kevent_t
}

func newPoller() (poller, error) {
	kq, err := unix.Kqueue()
	if err != nil {
		return nil, err
	}
	return &kqueuePoller{
		kq:     kq,
		events: make([]unix.Kevent_t, maxKqueueEvents),
	}, nil
}

func (p *kqueuePoller) changeInterest(fd int, want interest, flags uint16) error {
	filter := int16(unix.EVFILT_READ)
	if want == interestWrite {
		filter = unix.EVFILT_WRITE
	}
	kev := unix.Kevent_t{
		Ident:  uint64(fd),
		Filter: filter,
		Flags:  flags,
	}
	_, err := unix.Kevent(p.kq, []unix.Kevent_t{kev}, nil, nil)
	return err
}

func (p *kqueuePoller) add(fd int, want interest) error {
	return p.changeInterest(fd, want, unix.EV_ADD|unix.EV_CLEAR)
}

func (p *kqueuePoller) modify(fd int, want interest) error {
	// kqueue has no direct "modify" — the opposite filter must be
	// deleted and the new one added. Deletion of a filter that was
	// never registered is harmless to ignore.
	other := interestRead
	if want == interestRead {
		other = interestWrite
	}
	_ = p.changeInterest(fd, other, unix.EV_DELETE)
	return p.changeInterest(fd, want, unix.EV_ADD|unix.EV_CLEAR)
}

func (p *kqueuePoller) remove(fd int) error {
	_ = p.changeInterest(fd, interestRead, unix.EV_DELETE)
	_ = p.changeInterest(fd, interestWrite, unix.EV_DELETE)
	return nil
}

func (p *kqueuePoller) wait(timeoutMillis int) ([]event, error) {
	ts := unix.NsecToTimespec(int64(timeoutMillis) * 1_000_000)
	n, err := unix.Kevent(p.kq, nil, p.events, &ts)
	if err != nil {
		if err == unix.EINTR {
			return nil, nil
		}
		return nil, err
	}
	out := make([]event, 0, n)
	for i := 0; i < n; i++ {
		ev := p.events[i]
		out = append(out, event{
			fd:       int(ev.Ident),
			readable: ev.Filter == unix.EVFILT_READ,
			writable: ev.Filter == unix.EVFILT_WRITE,
			errOrHup: ev.Flags&(unix.EV_ERROR|unix.EV_EOF) != 0,
		})
	}
	return out, nil
}

func (p *kqueuePoller) close() error {
	return unix.Close(p.kq)
}
