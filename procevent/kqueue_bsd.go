//go:build darwin || freebsd

package procevent

import (
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sys/unix"
)

// wakeIdent is the EVFILT_USER identity used to interrupt the kevent loop on
// Close.
const wakeIdent = 1

// kqueueSource implements Source with kqueue EVFILT_PROC watches. The kernel
// attaches watches to children of tracked processes on its own (NOTE_TRACK),
// so a fork of a tracked PID is already being watched when its NOTE_CHILD
// event is delivered.
type kqueueSource struct {
	kq     int
	events chan Event
	stop   chan struct{}
	done   chan struct{}

	mu      sync.Mutex
	tracked map[int]struct{}
	closed  bool
}

// New opens a kqueue-backed Source.
func New() (Source, error) {
	kq, err := unix.Kqueue()
	if err != nil {
		return nil, fmt.Errorf("%w: kqueue: %v", ErrUnavailable, err)
	}

	// A user-triggered event unblocks the loop for shutdown.
	wake := unix.Kevent_t{
		Ident:  wakeIdent,
		Filter: unix.EVFILT_USER,
		Flags:  unix.EV_ADD | unix.EV_CLEAR,
	}
	if _, err := unix.Kevent(kq, []unix.Kevent_t{wake}, nil, nil); err != nil {
		unix.Close(kq)
		return nil, fmt.Errorf("failed to register wakeup event: %w", err)
	}

	s := &kqueueSource{
		kq:      kq,
		events:  make(chan Event, 64),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		tracked: make(map[int]struct{}),
	}
	go s.loop()
	return s, nil
}

func (s *kqueueSource) Track(pid int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("source is closed")
	}
	if _, ok := s.tracked[pid]; ok {
		return nil
	}

	ev := unix.Kevent_t{
		Ident:  uint64(pid),
		Filter: unix.EVFILT_PROC,
		Flags:  unix.EV_ADD | unix.EV_ENABLE,
		Fflags: procNoteFlags,
	}
	if _, err := unix.Kevent(s.kq, []unix.Kevent_t{ev}, nil, nil); err != nil {
		return fmt.Errorf("failed to add watch for pid %d: %w", pid, err)
	}
	s.tracked[pid] = struct{}{}
	return nil
}

func (s *kqueueSource) Untrack(pid int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	delete(s.tracked, pid)

	ev := unix.Kevent_t{
		Ident:  uint64(pid),
		Filter: unix.EVFILT_PROC,
		Flags:  unix.EV_DELETE,
	}
	// ENOENT: the watch was already removed by the kernel (process exited)
	// or was never added through Track (a NOTE_TRACK child).
	if _, err := unix.Kevent(s.kq, []unix.Kevent_t{ev}, nil, nil); err != nil && err != unix.ENOENT && err != unix.ESRCH {
		return fmt.Errorf("failed to remove watch for pid %d: %w", pid, err)
	}
	return nil
}

func (s *kqueueSource) Events() <-chan Event {
	return s.events
}

// Close interrupts the kevent loop and closes the event channel.
func (s *kqueueSource) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	close(s.stop)
	trigger := unix.Kevent_t{
		Ident:  wakeIdent,
		Filter: unix.EVFILT_USER,
		Fflags: unix.NOTE_TRIGGER,
	}
	if _, err := unix.Kevent(s.kq, []unix.Kevent_t{trigger}, nil, nil); err != nil {
		return fmt.Errorf("failed to wake event loop: %w", err)
	}
	<-s.done
	return unix.Close(s.kq)
}

func (s *kqueueSource) loop() {
	defer close(s.done)
	defer close(s.events)

	evs := make([]unix.Kevent_t, 16)
	for {
		n, err := unix.Kevent(s.kq, nil, evs, nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			slog.Error(
				"kevent wait failed",
				"error", err,
			)
			return
		}

		for _, ev := range evs[:n] {
			if ev.Filter == unix.EVFILT_USER {
				return
			}
			if ev.Filter != unix.EVFILT_PROC {
				continue
			}
			if !s.dispatch(ev) {
				return
			}
		}
	}
}

// dispatch translates one kernel event, returning false when the source is
// shutting down.
func (s *kqueueSource) dispatch(ev unix.Kevent_t) bool {
	pid := int(ev.Ident)

	if ev.Fflags&unix.NOTE_TRACKERR != 0 {
		slog.Warn(
			"kernel could not attach watch to forked child",
			"pid", pid,
		)
	}
	if ev.Fflags&unix.NOTE_CHILD != 0 {
		// Delivered on the child's identity; Data carries the parent.
		return s.emit(Event{PID: int(ev.Data), Kind: KindFork, ChildPID: pid})
	}
	if ev.Fflags&unix.NOTE_FORK != 0 {
		if !s.emit(Event{PID: pid, Kind: KindFork}) {
			return false
		}
	}
	if ev.Fflags&unix.NOTE_EXEC != 0 {
		if !s.emit(Event{PID: pid, Kind: KindExec}) {
			return false
		}
	}
	if ev.Fflags&unix.NOTE_EXIT != 0 {
		s.mu.Lock()
		delete(s.tracked, pid)
		s.mu.Unlock()
		return s.emit(Event{PID: pid, Kind: KindExit, Status: int(ev.Data)})
	}
	return true
}

func (s *kqueueSource) emit(ev Event) bool {
	select {
	case s.events <- ev:
		return true
	case <-s.stop:
		return false
	}
}
