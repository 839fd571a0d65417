package job

import (
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/ixsystems/serviced/launcher"
	"github.com/ixsystems/serviced/procevent"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakePID is far above any real pid_max, so signals sent to it fail with
// ESRCH instead of hitting a live process.
const fakePID = 1 << 30

// fakeCtx satisfies Context without launching anything.
type fakeCtx struct {
	mu        sync.Mutex
	satisfied bool
	launchErr error
	launches  int
	cmdline   []string
	sid       int
	null      *os.File
}

func newFakeCtx(t *testing.T) *fakeCtx {
	t.Helper()
	null, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		t.Fatalf("failed to open null sink: %v", err)
	}
	t.Cleanup(func() { null.Close() })
	return &fakeCtx{satisfied: true, sid: 1, null: null}
}

func (f *fakeCtx) Satisfied(requires []string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.satisfied
}

func (f *fakeCtx) Launch(j *Job, spec launcher.Spec, stdout, stderr *os.File) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.launchErr != nil {
		return 0, f.launchErr
	}
	f.launches++
	return fakePID + f.launches, nil
}

func (f *fakeCtx) Cmdline(pid int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cmdline == nil {
		return nil, errors.New("no such process")
	}
	return f.cmdline, nil
}

func (f *fakeCtx) Sid(pid int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sid, nil
}

func (f *fakeCtx) Null() *os.File { return f.null }

func (f *fakeCtx) setCmdline(argv []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cmdline = argv
}

func sleepSpec(label string) Spec {
	return Spec{
		Label:            label,
		ProgramArguments: []string{"/bin/sleep", "60"},
		ExitTimeout:      1,
	}
}

// exitedStatus encodes a normal exit in wait-status form.
func exitedStatus(code int) int { return code << 8 }

// signaledStatus encodes death by signal in wait-status form.
func signaledStatus(sig int) int { return sig }

func TestNewAssignsID(t *testing.T) {
	j, err := New(newFakeCtx(t), sleepSpec("sleeper"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if j.ID() == "" {
		t.Fatal("expected an assigned id")
	}
	if j.State() != StateStopped {
		t.Fatalf("expected STOPPED after load, got %v", j.State())
	}
}

func TestNewProgramDefaultsFromArgv(t *testing.T) {
	j, err := New(newFakeCtx(t), Spec{Label: "x", ProgramArguments: []string{"/bin/true"}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := j.Snapshot().Program; got != "/bin/true" {
		t.Fatalf("expected program from argv, got %q", got)
	}
}

func TestNewRejectsEmptyArgv(t *testing.T) {
	_, err := New(newFakeCtx(t), Spec{Label: "x", Program: "/bin/true"})
	if !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("expected ErrInvalidSpec, got %v", err)
	}
}

func TestNewRejectsMissingLabel(t *testing.T) {
	_, err := New(newFakeCtx(t), Spec{ProgramArguments: []string{"/bin/true"}})
	if !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("expected ErrInvalidSpec, got %v", err)
	}
}

func TestNewRejectsUnknownUser(t *testing.T) {
	spec := sleepSpec("creds")
	spec.UserName = "no-such-user-serviced-test"
	_, err := New(newFakeCtx(t), spec)
	if !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("expected ErrInvalidSpec, got %v", err)
	}
}

func TestNewLogFileOpenFailure(t *testing.T) {
	spec := sleepSpec("logs")
	spec.StandardOutPath = "/nonexistent-dir-serviced-test/out.log"
	_, err := New(newFakeCtx(t), spec)
	if !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}

func TestStartIdempotentWhenRunning(t *testing.T) {
	ctx := newFakeCtx(t)
	j, err := New(ctx, sleepSpec("idem"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := j.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if j.State() != StateRunning {
		t.Fatalf("expected RUNNING, got %v", j.State())
	}
	if err := j.Start(); err != nil {
		t.Fatalf("second Start failed: %v", err)
	}
	if ctx.launches != 1 {
		t.Fatalf("expected a single launch, got %d", ctx.launches)
	}
}

func TestStartBlockedOnRequires(t *testing.T) {
	ctx := newFakeCtx(t)
	ctx.satisfied = false

	spec := sleepSpec("gated")
	spec.Requires = []string{"net"}
	j, err := New(ctx, spec)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := j.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if j.State() != StateStopped {
		t.Fatalf("expected STOPPED while gated, got %v", j.State())
	}
	if ctx.launches != 0 {
		t.Fatalf("expected no launch, got %d", ctx.launches)
	}
}

func TestExecPublishesProvides(t *testing.T) {
	ctx := newFakeCtx(t)
	ctx.sid = 42

	spec := sleepSpec("provider")
	spec.Provides = []string{"net"}
	j, err := New(ctx, spec)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := j.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// An intermediate image with a different argv publishes nothing.
	ctx.setCmdline([]string{"/bin/sh", "-c", "exec /bin/sleep 60"})
	out := j.HandleEvent(procevent.Event{PID: j.PID(), Kind: procevent.KindExec}, 0)
	if len(out.Provide) != 0 {
		t.Fatalf("wrapper exec must not publish, got %v", out.Provide)
	}

	ctx.setCmdline([]string{"/bin/sleep", "60"})
	out = j.HandleEvent(procevent.Event{PID: j.PID(), Kind: procevent.KindExec}, 0)
	if len(out.Provide) != 1 || out.Provide[0] != "net" {
		t.Fatalf("expected net published, got %v", out.Provide)
	}
	if j.SID() != 42 {
		t.Fatalf("expected sampled sid 42, got %d", j.SID())
	}

	// A second matching exec is debounced.
	out = j.HandleEvent(procevent.Event{PID: j.PID(), Kind: procevent.KindExec}, 0)
	if len(out.Provide) != 0 {
		t.Fatalf("repeated exec must not re-publish, got %v", out.Provide)
	}
}

func TestExitRecordsCode(t *testing.T) {
	ctx := newFakeCtx(t)
	j, err := New(ctx, sleepSpec("exiter"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := j.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	out := j.HandleEvent(procevent.Event{PID: j.PID(), Kind: procevent.KindExit}, exitedStatus(3))
	if !out.Exited {
		t.Fatal("expected exit outcome")
	}

	snap := j.Snapshot()
	if snap.State != "STOPPED" {
		t.Fatalf("expected STOPPED, got %s", snap.State)
	}
	if snap.PID != nil {
		t.Fatalf("expected no pid, got %v", *snap.PID)
	}
	if snap.LastExitStatus == nil || *snap.LastExitStatus != 3 {
		t.Fatalf("expected exit status 3, got %v", snap.LastExitStatus)
	}
}

func TestExitBySignal(t *testing.T) {
	ctx := newFakeCtx(t)
	j, err := New(ctx, sleepSpec("signaled"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := j.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	j.HandleEvent(procevent.Event{PID: j.PID(), Kind: procevent.KindExit}, signaledStatus(15))
	snap := j.Snapshot()
	if snap.LastExitStatus == nil || *snap.LastExitStatus != 143 {
		t.Fatalf("expected exit status 143, got %v", snap.LastExitStatus)
	}
}

func TestFastExitBeforeExec(t *testing.T) {
	ctx := newFakeCtx(t)
	spec := sleepSpec("racer")
	spec.Provides = []string{"net"}
	j, err := New(ctx, spec)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := j.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// Exit arrives before any exec event: no sid, exit code recorded.
	out := j.HandleEvent(procevent.Event{PID: j.PID(), Kind: procevent.KindExit}, exitedStatus(1))
	if !out.Exited {
		t.Fatal("expected exit outcome")
	}
	if j.SID() != 0 {
		t.Fatalf("expected empty sid, got %d", j.SID())
	}
	snap := j.Snapshot()
	if snap.LastExitStatus == nil || *snap.LastExitStatus != 1 {
		t.Fatalf("expected exit status 1, got %v", snap.LastExitStatus)
	}
}

func TestKeepAliveRespawnOutcome(t *testing.T) {
	ctx := newFakeCtx(t)
	spec := sleepSpec("alive")
	spec.KeepAlive = true
	spec.ThrottleInterval = 60
	j, err := New(ctx, spec)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := j.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	out := j.HandleEvent(procevent.Event{PID: j.PID(), Kind: procevent.KindExit}, exitedStatus(1))
	if !out.Respawn {
		t.Fatal("expected respawn for keep-alive job")
	}
	if out.RespawnDelay <= 0 {
		t.Fatalf("expected throttle delay, got %v", out.RespawnDelay)
	}
}

func TestStopSuppressesRespawn(t *testing.T) {
	ctx := newFakeCtx(t)
	spec := sleepSpec("stopped")
	spec.KeepAlive = true
	j, err := New(ctx, spec)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := j.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// The fake pid does not exist, so the SIGTERM fails and Stop waits for
	// the exit event delivered below.
	var out Outcome
	done := make(chan struct{})
	go func() {
		defer close(done)
		j.Stop()
	}()

	// Give Stop a moment to transition to DYING, then deliver the exit.
	deadline := time.Now().Add(5 * time.Second)
	for j.State() != StateDying {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for DYING state")
		}
		time.Sleep(10 * time.Millisecond)
	}
	out = j.HandleEvent(procevent.Event{PID: fakePID + 1, Kind: procevent.KindExit}, signaledStatus(15))
	<-done

	if out.Respawn {
		t.Fatal("stop-initiated exit must not respawn")
	}
	if j.State() != StateStopped {
		t.Fatalf("expected STOPPED after stop, got %v", j.State())
	}
}

func TestStopNoopWhenStopped(t *testing.T) {
	ctx := newFakeCtx(t)
	j, err := New(ctx, sleepSpec("noop"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	// Must return immediately.
	j.Stop()
	if j.State() != StateStopped {
		t.Fatalf("expected STOPPED, got %v", j.State())
	}
}

func TestAnonymousJob(t *testing.T) {
	ctx := newFakeCtx(t)
	parent, err := New(ctx, sleepSpec("parent"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	a := NewAnonymous(ctx, parent, 12345, "sleep")
	if a.Label() != "anonymous.sleep@12345" {
		t.Fatalf("unexpected anonymous label %q", a.Label())
	}
	if !a.Anonymous() || a.State() != StateRunning {
		t.Fatal("anonymous job must start out RUNNING")
	}
	if a.Snapshot().ParentID != parent.ID() {
		t.Fatal("anonymous job must reference its parent")
	}
	if err := a.Start(); err == nil {
		t.Fatal("expected error starting anonymous job")
	}

	out := a.HandleEvent(procevent.Event{PID: 12345, Kind: procevent.KindExit}, exitedStatus(0))
	if !out.RemoveJob {
		t.Fatal("anonymous exit must remove the job")
	}
}

func TestSnapshotMapOmitsUnset(t *testing.T) {
	ctx := newFakeCtx(t)
	j, err := New(ctx, sleepSpec("plain"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	m := j.Snapshot().Map()
	if _, ok := m["StandardOutPath"]; ok {
		t.Fatal("unset stdout path must be omitted")
	}
	if _, ok := m["EnvironmentVariables"]; ok {
		t.Fatal("unset environment must be omitted")
	}
	if m["PID"] != nil {
		t.Fatalf("expected nil PID, got %v", m["PID"])
	}
}
