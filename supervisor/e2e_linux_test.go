// End-to-end tests against real processes, driven by the /proc polling
// event source and the real launch shim (the test binary re-execs itself,
// see TestMain).

package supervisor

import (
	"context"
	"testing"
	"time"

	"github.com/ixsystems/serviced/job"
	"github.com/ixsystems/serviced/procevent"
	"github.com/ixsystems/serviced/query"
	"github.com/ixsystems/serviced/testutil"
)

func newE2ESupervisor(t *testing.T) *Supervisor {
	t.Helper()

	source, err := procevent.New()
	if err != nil {
		t.Skipf("process event source unavailable: %v", err)
	}

	s, err := New(Options{Source: source, ProvideDelay: 100 * time.Millisecond})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Run(ctx)
	}()

	t.Cleanup(func() {
		s.Shutdown()
		cancel()
		source.Close()
		<-done
		s.devnull.Close()
	})
	return s
}

func e2eSnapshot(t *testing.T, s *Supervisor, label string) job.Snapshot {
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

func TestE2ESimpleRun(t *testing.T) {
	s := newE2ESupervisor(t)

	_, err := s.Load(job.Spec{
		Label:            "echo",
		Program:          "/bin/sh",
		ProgramArguments: []string{"/bin/sh", "-c", "exit 0"},
		RunAtLoad:        true,
		ExitTimeout:      2,
	})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	testutil.PollUntil(t, "job to finish", func() bool {
		snap := e2eSnapshot(t, s, "echo")
		return snap.State == "STOPPED" && snap.LastExitStatus != nil
	})

	snap := e2eSnapshot(t, s, "echo")
	if *snap.LastExitStatus != 0 {
		t.Fatalf("expected exit status 0, got %d", *snap.LastExitStatus)
	}
	if snap.PID != nil {
		t.Fatalf("expected no pid after exit, got %d", *snap.PID)
	}
}

func TestE2EExitCodePropagated(t *testing.T) {
	s := newE2ESupervisor(t)

	_, err := s.Load(job.Spec{
		Label:            "failer",
		ProgramArguments: []string{"/bin/sh", "-c", "exit 7"},
		RunAtLoad:        true,
		ExitTimeout:      2,
	})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	testutil.PollUntil(t, "job to fail", func() bool {
		snap := e2eSnapshot(t, s, "failer")
		return snap.State == "STOPPED" && snap.LastExitStatus != nil
	})
	if got := *e2eSnapshot(t, s, "failer").LastExitStatus; got != 7 {
		t.Fatalf("expected exit status 7, got %d", got)
	}
}

func TestE2EGracefulStop(t *testing.T) {
	s := newE2ESupervisor(t)

	id, err := s.Load(job.Spec{
		Label:            "sleeper",
		ProgramArguments: []string{"/bin/sleep", "60"},
		RunAtLoad:        true,
		ExitTimeout:      5,
	})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	testutil.PollUntil(t, "job to run", func() bool {
		return e2eSnapshot(t, s, "sleeper").State == "RUNNING"
	})

	if err := s.Stop(id); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	snap := e2eSnapshot(t, s, "sleeper")
	if snap.State != "STOPPED" {
		t.Fatalf("expected STOPPED after stop, got %s", snap.State)
	}
	if snap.PID != nil {
		t.Fatal("expected no pid after stop")
	}
	// SIGTERM death surfaces as 128+15.
	if snap.LastExitStatus == nil || *snap.LastExitStatus != 143 {
		t.Fatalf("expected exit status 143, got %v", snap.LastExitStatus)
	}
}

func TestE2EStartMissingExecutable(t *testing.T) {
	s := newE2ESupervisor(t)

	_, err := s.Load(job.Spec{
		Label:            "ghost",
		ProgramArguments: []string{"/nonexistent-serviced-test"},
		RunAtLoad:        true,
		ExitTimeout:      2,
	})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// The shim dies at exec; the job reports an immediate failure.
	testutil.PollUntil(t, "launch failure to surface", func() bool {
		snap := e2eSnapshot(t, s, "ghost")
		return snap.State == "STOPPED" && snap.LastExitStatus != nil && *snap.LastExitStatus != 0
	})
}
