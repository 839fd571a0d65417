// Linux has no kqueue; this Source polls /proc instead. Exits are
// synthesized when a tracked PID disappears (or turns zombie), execs are
// detected by watching the command line change, and forks by scanning for
// new processes whose parent is tracked. The wait status of a synthesized
// exit is unknown here; callers that own the process recover it by reaping.

package procevent

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

const defaultPollInterval = 100 * time.Millisecond

type trackedProc struct {
	cmdline string
}

type pollSource struct {
	interval time.Duration
	events   chan Event
	stop     chan struct{}
	done     chan struct{}

	mu      sync.Mutex
	tracked map[int]*trackedProc
	// reported remembers children already delivered as fork events so a
	// long-lived child is not re-reported every tick.
	reported map[int]struct{}
	closed   bool
}

// New opens a polling Source.
func New() (Source, error) {
	return newPollSource(defaultPollInterval), nil
}

func newPollSource(interval time.Duration) *pollSource {
	s := &pollSource{
		interval: interval,
		events:   make(chan Event, 64),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		tracked:  make(map[int]*trackedProc),
		reported: make(map[int]struct{}),
	}
	go s.loop()
	return s
}

func (s *pollSource) Track(pid int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("source is closed")
	}
	if _, ok := s.tracked[pid]; ok {
		return nil
	}
	cmdline, _ := cmdlineString(pid)
	s.tracked[pid] = &trackedProc{cmdline: cmdline}
	return nil
}

func (s *pollSource) Untrack(pid int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tracked, pid)
	return nil
}

func (s *pollSource) Events() <-chan Event {
	return s.events
}

func (s *pollSource) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	close(s.stop)
	<-s.done
	return nil
}

func (s *pollSource) loop() {
	defer close(s.done)
	defer close(s.events)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if !s.scan() {
				return
			}
		}
	}
}

// scan performs one poll pass, returning false when the source is shutting
// down mid-emit.
func (s *pollSource) scan() bool {
	s.mu.Lock()
	pids := make([]int, 0, len(s.tracked))
	for pid := range s.tracked {
		pids = append(pids, pid)
	}
	s.mu.Unlock()

	if len(pids) == 0 {
		return true
	}

	for child, parent := range s.newChildren(pids) {
		if !s.emit(Event{PID: parent, Kind: KindFork, ChildPID: child}) {
			return false
		}
	}

	for _, pid := range pids {
		if !processAlive(pid) {
			s.mu.Lock()
			delete(s.tracked, pid)
			delete(s.reported, pid)
			s.mu.Unlock()
			if !s.emit(Event{PID: pid, Kind: KindExit, Status: StatusUnknown}) {
				return false
			}
			continue
		}

		cmdline, err := cmdlineString(pid)
		if err != nil || cmdline == "" {
			continue
		}
		s.mu.Lock()
		tp, ok := s.tracked[pid]
		changed := ok && tp.cmdline != cmdline
		if ok {
			tp.cmdline = cmdline
		}
		s.mu.Unlock()
		if changed {
			if !s.emit(Event{PID: pid, Kind: KindExec}) {
				return false
			}
		}
	}
	return true
}

// newChildren walks /proc once and returns unreported children of the given
// parents. Entries for processes that vanished are pruned from the reported
// set as a side effect.
func (s *pollSource) newChildren(parents []int) map[int]int {
	parentSet := make(map[int]struct{}, len(parents))
	for _, pid := range parents {
		parentSet[pid] = struct{}{}
	}

	entries, err := os.ReadDir("/proc")
	if err != nil {
		return nil
	}

	alive := make(map[int]struct{})
	found := make(map[int]int)
	for _, entry := range entries {
		pid, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue
		}
		alive[pid] = struct{}{}

		if _, tracked := parentSet[pid]; tracked {
			continue
		}
		ppid, err := parentPID(pid)
		if err != nil {
			continue
		}
		if _, ok := parentSet[ppid]; !ok {
			continue
		}

		s.mu.Lock()
		_, seen := s.reported[pid]
		_, isTracked := s.tracked[pid]
		if !seen && !isTracked {
			s.reported[pid] = struct{}{}
			found[pid] = ppid
		}
		s.mu.Unlock()
	}

	s.mu.Lock()
	for pid := range s.reported {
		if _, ok := alive[pid]; !ok {
			delete(s.reported, pid)
		}
	}
	s.mu.Unlock()

	return found
}

func (s *pollSource) emit(ev Event) bool {
	select {
	case s.events <- ev:
		return true
	case <-s.stop:
		return false
	}
}
