package supervisor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/ixsystems/serviced/job"
	"github.com/ixsystems/serviced/launcher"
	"github.com/ixsystems/serviced/procevent"
	"github.com/ixsystems/serviced/query"
)

func TestMain(m *testing.M) {
	// The end-to-end tests relaunch this binary as the job launch shim.
	if os.Getenv(launcher.SpecEnv) != "" {
		if err := launcher.Child(); err != nil {
			fmt.Fprintf(os.Stderr, "launch failed: %v\n", err)
		}
		os.Exit(127)
	}
	goleak.VerifyTestMain(m)
}

// fakePID is far above any real pid_max, so stray signals fail with ESRCH.
const fakePID = 1 << 30

// fakeSource is a hand-driven event source.
type fakeSource struct {
	mu        sync.Mutex
	events    chan procevent.Event
	tracked   map[int]bool
	untracked []int
	closed    bool
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		events:  make(chan procevent.Event, 64),
		tracked: make(map[int]bool),
	}
}

func (f *fakeSource) Track(pid int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tracked[pid] = true
	return nil
}

func (f *fakeSource) Untrack(pid int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tracked, pid)
	f.untracked = append(f.untracked, pid)
	return nil
}

func (f *fakeSource) Events() <-chan procevent.Event { return f.events }

func (f *fakeSource) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed {
		f.closed = true
		close(f.events)
	}
	return nil
}

func (f *fakeSource) wasUntracked(pid int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.untracked {
		if p == pid {
			return true
		}
	}
	return false
}

// fakeProcs fakes launches and process introspection. Each launch allocates
// the next fake pid.
type fakeProcs struct {
	mu       sync.Mutex
	nextPID  int
	cmdlines map[int][]string
	sids     map[int]int
	commands map[int]string
}

func newFakeProcs() *fakeProcs {
	return &fakeProcs{
		nextPID:  fakePID,
		cmdlines: make(map[int][]string),
		sids:     make(map[int]int),
		commands: make(map[int]string),
	}
}

func (f *fakeProcs) launch(spec launcher.Spec, stdout, stderr *os.File, armed func(pid int) error) (int, error) {
	f.mu.Lock()
	f.nextPID++
	pid := f.nextPID
	f.cmdlines[pid] = spec.Arguments
	f.sids[pid] = pid // each job in its own session
	f.mu.Unlock()
	if err := armed(pid); err != nil {
		return 0, err
	}
	return pid, nil
}

func (f *fakeProcs) addProc(pid, sid int, command string, argv []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cmdlines[pid] = argv
	f.sids[pid] = sid
	f.commands[pid] = command
}

func (f *fakeProcs) cmdline(pid int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	argv, ok := f.cmdlines[pid]
	if !ok {
		return nil, errors.New("no such process")
	}
	return argv, nil
}

func (f *fakeProcs) sid(pid int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sid, ok := f.sids[pid]
	if !ok {
		return 0, errors.New("no such process")
	}
	return sid, nil
}

func (f *fakeProcs) command(pid int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.commands[pid], nil
}

func newTestSupervisor(t *testing.T) (*Supervisor, *fakeSource, *fakeProcs) {
	t.Helper()
	source := newFakeSource()
	procs := newFakeProcs()
	s, err := New(Options{
		Source:       source,
		ProvideDelay: 10 * time.Millisecond,
		Launch:       procs.launch,
		Cmdline:      procs.cmdline,
		Command:      procs.command,
		Sid:          procs.sid,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, source, procs
}

func sleepSpec(label string) job.Spec {
	return job.Spec{
		Label:            label,
		ProgramArguments: []string{"/bin/sleep", "60"},
		ExitTimeout:      1,
	}
}

// exitedStatus encodes a normal exit in wait-status form.
func exitedStatus(code int) int { return code << 8 }

// deliverExec routes a process's exec event synchronously.
func deliverExec(s *Supervisor, pid int) {
	s.handleEvent(procevent.Event{PID: pid, Kind: procevent.KindExec})
}

func deliverExit(s *Supervisor, pid, status int) {
	s.handleEvent(procevent.Event{PID: pid, Kind: procevent.KindExit, Status: status})
}

func deliverChild(s *Supervisor, parent, child int) {
	s.handleEvent(procevent.Event{PID: parent, Kind: procevent.KindFork, ChildPID: child})
}

func jobByLabel(t *testing.T, s *Supervisor, label string) job.Snapshot {
	t.Helper()
	snaps, err := s.Query([]query.Filter{{Field: "Label", Op: "=", Value: label}}, query.Params{Single: true})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(snaps) != 1 {
		t.Fatalf("job %q not found", label)
	}
	return snaps[0]
}

func TestLoadRunAtLoad(t *testing.T) {
	s, _, _ := newTestSupervisor(t)

	spec := sleepSpec("runner")
	spec.RunAtLoad = true
	id, err := s.Load(spec)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	snap := jobByLabel(t, s, "runner")
	if snap.ID != id {
		t.Fatalf("query returned wrong job: %v", snap.ID)
	}
	if snap.State != "RUNNING" {
		t.Fatalf("expected RUNNING after run-at-load, got %s", snap.State)
	}
	if snap.PID == nil {
		t.Fatal("expected a pid for a running job")
	}
}

func TestLoadLabelCollision(t *testing.T) {
	s, _, _ := newTestSupervisor(t)

	spec := sleepSpec("x")
	spec.RunAtLoad = true
	if _, err := s.Load(spec); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := s.Load(sleepSpec("x")); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	// First job unaffected.
	if snap := jobByLabel(t, s, "x"); snap.State != "RUNNING" {
		t.Fatalf("first job disturbed by collision: %s", snap.State)
	}
}

func TestLoadThenUnloadRestoresTable(t *testing.T) {
	s, _, _ := newTestSupervisor(t)

	before, err := s.Query(nil, query.Params{})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	id, err := s.Load(sleepSpec("transient"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := s.Unload(id); err != nil {
		t.Fatalf("Unload failed: %v", err)
	}

	after, err := s.Query(nil, query.Params{})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(after) != len(before) {
		t.Fatalf("job table not restored: %d != %d", len(after), len(before))
	}
}

func TestUnloadNotFound(t *testing.T) {
	s, _, _ := newTestSupervisor(t)
	if err := s.Unload("missing"); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestDependencyGating(t *testing.T) {
	s, _, _ := newTestSupervisor(t)

	a := sleepSpec("a")
	a.Requires = []string{"net"}
	a.RunAtLoad = true
	if _, err := s.Load(a); err != nil {
		t.Fatalf("Load a failed: %v", err)
	}
	if snap := jobByLabel(t, s, "a"); snap.State != "STOPPED" {
		t.Fatalf("gated job must stay STOPPED, got %s", snap.State)
	}

	b := sleepSpec("b")
	b.Provides = []string{"net"}
	b.RunAtLoad = true
	if _, err := s.Load(b); err != nil {
		t.Fatalf("Load b failed: %v", err)
	}

	// b's exec publishes "net"; after the provide delay a is activated.
	deliverExec(s, int(*jobByLabel(t, s, "b").PID))

	deadline := time.Now().Add(3 * time.Second)
	for jobByLabel(t, s, "a").State != "RUNNING" {
		if time.Now().After(deadline) {
			t.Fatal("dependent job was not activated")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestProvideCoalesces(t *testing.T) {
	s, _, _ := newTestSupervisor(t)

	s.Provide([]string{"one"})
	s.Provide([]string{"two"})

	if s.Satisfied([]string{"one", "two"}) {
		t.Fatal("targets must not be visible before the commit")
	}

	deadline := time.Now().Add(3 * time.Second)
	for !s.Satisfied([]string{"one", "two"}) {
		if time.Now().After(deadline) {
			t.Fatal("pending targets were never committed")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestRevokeOnExit(t *testing.T) {
	s, _, _ := newTestSupervisor(t)

	spec := sleepSpec("netd")
	spec.Provides = []string{"net"}
	spec.RunAtLoad = true
	if _, err := s.Load(spec); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	pid := int(*jobByLabel(t, s, "netd").PID)
	deliverExec(s, pid)

	deadline := time.Now().Add(3 * time.Second)
	for !s.Satisfied([]string{"net"}) {
		if time.Now().After(deadline) {
			t.Fatal("target was never provided")
		}
		time.Sleep(5 * time.Millisecond)
	}

	deliverExit(s, pid, exitedStatus(0))
	if s.Satisfied([]string{"net"}) {
		t.Fatal("target must be revoked once its only provider exits")
	}
}

func TestAnonymousDiscovery(t *testing.T) {
	s, _, procs := newTestSupervisor(t)

	spec := sleepSpec("shell")
	spec.ProgramArguments = []string{"/bin/sh", "-c", "/bin/sleep 30 & wait"}
	spec.RunAtLoad = true
	if _, err := s.Load(spec); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	shellPID := int(*jobByLabel(t, s, "shell").PID)
	deliverExec(s, shellPID)

	shellSnap := jobByLabel(t, s, "shell")
	childPID := fakePID + 100
	procs.addProc(childPID, shellPID, "sleep", []string{"/bin/sleep", "30"})
	deliverChild(s, shellPID, childPID)

	snaps, err := s.Query([]query.Filter{{Field: "ParentID", Op: "=", Value: shellSnap.ID}}, query.Params{})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(snaps) != 1 {
		t.Fatalf("expected one anonymous child, got %d", len(snaps))
	}
	if snaps[0].Label != fmt.Sprintf("anonymous.sleep@%d", childPID) {
		t.Fatalf("unexpected anonymous label %q", snaps[0].Label)
	}
	if snaps[0].State != "RUNNING" {
		t.Fatalf("anonymous job must be RUNNING, got %s", snaps[0].State)
	}

	// Child exits: only the shell remains.
	deliverExit(s, childPID, exitedStatus(0))
	snaps, err = s.Query(nil, query.Params{})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(snaps) != 1 || snaps[0].Label != "shell" {
		t.Fatalf("expected only the shell to remain, got %d jobs", len(snaps))
	}
}

func TestAnonymousSessionBoundary(t *testing.T) {
	s, source, procs := newTestSupervisor(t)

	spec := sleepSpec("daemonizer")
	spec.RunAtLoad = true
	if _, err := s.Load(spec); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	pid := int(*jobByLabel(t, s, "daemonizer").PID)
	deliverExec(s, pid)

	// The child called setsid: different session, not a descendant.
	childPID := fakePID + 200
	procs.addProc(childPID, childPID, "daemon", []string{"/usr/sbin/daemon"})
	deliverChild(s, pid, childPID)

	snaps, err := s.Query(nil, query.Params{})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(snaps) != 1 {
		t.Fatalf("detached child must not be inserted, got %d jobs", len(snaps))
	}
	if !source.wasUntracked(childPID) {
		t.Fatal("detached child must be untracked")
	}
}

func TestChildOfUnknownParentUntracked(t *testing.T) {
	s, source, _ := newTestSupervisor(t)

	deliverChild(s, fakePID+300, fakePID+301)
	if !source.wasUntracked(fakePID + 301) {
		t.Fatal("child of unknown parent must be untracked")
	}
}

func TestKeepAliveRespawns(t *testing.T) {
	s, _, _ := newTestSupervisor(t)

	spec := sleepSpec("phoenix")
	spec.KeepAlive = true
	spec.RunAtLoad = true
	if _, err := s.Load(spec); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	first := int(*jobByLabel(t, s, "phoenix").PID)

	deliverExit(s, first, exitedStatus(1))

	deadline := time.Now().Add(3 * time.Second)
	for {
		snap := jobByLabel(t, s, "phoenix")
		if snap.State == "RUNNING" && snap.PID != nil && int(*snap.PID) != first {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("keep-alive job was not relaunched")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestQueryFilterAndParams(t *testing.T) {
	s, _, _ := newTestSupervisor(t)

	for _, label := range []string{"one", "two", "three"} {
		if _, err := s.Load(sleepSpec(label)); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
	}

	snaps, err := s.Query([]query.Filter{{Field: "State", Op: "=", Value: "STOPPED"}}, query.Params{Sort: "Label", Limit: 2})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(snaps) != 2 || snaps[0].Label != "one" || snaps[1].Label != "three" {
		t.Fatalf("unexpected query result: %+v", snaps)
	}

	snaps, err = s.Query(nil, query.Params{Select: []string{"Label"}, Single: true, Sort: "Label"})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(snaps) != 1 || snaps[0].Label != "one" || snaps[0].Program != "" {
		t.Fatalf("projection not applied: %+v", snaps)
	}
}

func TestRunDrainsSourceUntilClosed(t *testing.T) {
	s, source, _ := newTestSupervisor(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Run(ctx)
	}()

	spec := sleepSpec("looped")
	spec.RunAtLoad = true
	if _, err := s.Load(spec); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	pid := int(*jobByLabel(t, s, "looped").PID)

	source.events <- procevent.Event{PID: pid, Kind: procevent.KindExec}
	source.events <- procevent.Event{PID: pid, Kind: procevent.KindExit, Status: exitedStatus(0)}

	deadline := time.Now().Add(3 * time.Second)
	for jobByLabel(t, s, "looped").State != "STOPPED" {
		if time.Now().After(deadline) {
			t.Fatal("event loop did not process events")
		}
		time.Sleep(10 * time.Millisecond)
	}

	s.Shutdown()
	source.Close()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after source close")
	}
}
