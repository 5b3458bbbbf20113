//go:build linux
// +build linux

package reactor

import (
	"golang.org/x/sys/unix"
)

const maxEpollEvents = 128

// epollPoller is the Linux poller, grounded directly on the original
// event loop's use of epoll_create1/epoll_ctl/epoll_wait: one epoll
// instance per reactor, edge-triggered interest (EPOLLIN|EPOLLET or
// EPOLLOUT|EPOLLET), 128-event batches.
type epollPoller struct {
	epfd   int
	events []unix.EpollEvent
}

func newPoller() (poller, error) {
	epfd, err := unix.EpollCreate1(0)
	if err != nil {
		return nil, err
	}
	return &epollPoller{
		epfd:   epfd,
		events: make([]unix.EpollEvent, maxEpollEvents),
	}, nil
}

func epollFlags(want interest) uint32 {
	if want == interestWrite {
		return unix.EPOLLOUT | unix.EPOLLET
	}
	return unix.EPOLLIN | unix.EPOLLET
}

func (p *epollPoller) add(fd int, want interest) error {
	return unix.EpollCtl(p.epfd, unix.EPOLL_CTL_ADD, fd, &unix.EpollEvent{
		Events: epollFlags(want),
		Fd:     int32(fd),
	})
}

func (p *epollPoller) modify(fd int, want interest) error {
	return unix.EpollCtl(p.epfd, unix.EPOLL_CTL_MOD, fd, &unix.EpollEvent{
		Events: epollFlags(want),
		Fd:     int32(fd),
	})
}

func (p *epollPoller) remove(fd int) error {
	// The event argument is ignored by EPOLL_CTL_DEL on modern
	// kernels but older kernels require a non-nil pointer.
	return unix.EpollCtl(p.epfd, unix.EPOLL_CTL_DEL, fd, &unix.EpollEvent{})
}

func (p *epollPoller) wait(timeoutMillis int) ([]event, error) {
	n, err := unix.EpollWait(p.epfd, p.events, timeoutMillis)
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
			fd:       int(ev.Fd),
			readable: ev.Events&unix.EPOLLIN != 0,
			writable: ev.Events&unix.EPOLLOUT != 0,
			errOrHup: ev.Events&(unix.EPOLLERR|unix.EPOLLHUP) != 0,
		})
	}
	return out, nil
}

func (p *epollPoller) close() error {
	return unix.Close(p.epfd)
}
