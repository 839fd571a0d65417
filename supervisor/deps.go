package supervisor

import (
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/ixsystems/serviced/job"
	"github.com/ixsystems/serviced/launcher"
)

// Satisfied reports whether every required target is currently provided.
// Part of the job.Context surface.
func (s *Supervisor) Satisfied(requires []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range requires {
		if _, ok := s.provides[r]; !ok {
			return false
		}
	}
	return true
}

// Launch runs the launch protocol for j. The pid is tracked and indexed
// before the child is resumed, so no event for it can be missed or
// unroutable. Part of the job.Context surface.
func (s *Supervisor) Launch(j *job.Job, spec launcher.Spec, stdout, stderr *os.File) (int, error) {
	return s.launch(spec, stdout, stderr, func(pid int) error {
		if err := s.source.Track(pid); err != nil {
			return err
		}
		s.mu.Lock()
		s.pids[pid] = j.ID()
		s.mu.Unlock()
		return nil
	})
}

// Cmdline is part of the job.Context surface.
func (s *Supervisor) Cmdline(pid int) ([]string, error) {
	return s.cmdline(pid)
}

// Sid is part of the job.Context surface.
func (s *Supervisor) Sid(pid int) (int, error) {
	return s.sid(pid)
}

// Null is the shared null sink for jobs without stdio paths. Part of the
// job.Context surface.
func (s *Supervisor) Null() *os.File {
	return s.devnull
}

// Provide queues targets for advertisement. The commit runs after the
// provide delay; calls landing inside the window extend the pending set but
// do not push the commit out.
func (s *Supervisor) Provide(targets []string) {
	if len(targets) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	for _, t := range targets {
		s.pendingProvides[t] = struct{}{}
	}
	if s.provideTimer == nil {
		s.provideTimer = time.AfterFunc(s.provideDelay, s.commitProvides)
	}
}

// commitProvides merges the pending targets into the provides set, then
// starts every stopped managed job whose requirements are now satisfied,
// including jobs whose requirements were already met before this commit.
func (s *Supervisor) commitProvides() {
	s.mu.Lock()
	targets := make([]string, 0, len(s.pendingProvides))
	for t := range s.pendingProvides {
		s.provides[t] = struct{}{}
		targets = append(targets, t)
	}
	s.pendingProvides = make(map[string]struct{})
	s.provideTimer = nil
	jobs := s.jobList()
	closed := s.closed
	s.mu.Unlock()

	if closed {
		return
	}

	slices.Sort(targets)
	slog.Debug(
		"adding dependency targets",
		"targets", targets,
	)

	for _, j := range jobs {
		if j.Anonymous() || j.State() != job.StateStopped {
			continue
		}
		// Start re-checks requirement satisfaction under the job's lock.
		if err := j.Start(); err != nil {
			slog.Error(
				"failed to start dependent job",
				"label", j.Label(),
				"error", err,
			)
		}
	}
}

// Revoke removes targets from the provides set.
func (s *Supervisor) Revoke(targets []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range targets {
		delete(s.provides, t)
		delete(s.pendingProvides, t)
	}
}

// revoke drops the given targets unless another running job still
// advertises them. exceptID is the job whose exit triggered the check.
func (s *Supervisor) revoke(targets []string, exceptID string) {
	still := make(map[string]struct{})
	for _, snap := range s.snapshotList() {
		if snap.ID == exceptID || snap.State != job.StateRunning.String() {
			continue
		}
		for _, t := range snap.Provides {
			still[t] = struct{}{}
		}
	}

	revoked := make([]string, 0, len(targets))
	for _, t := range targets {
		if _, ok := still[t]; !ok {
			revoked = append(revoked, t)
		}
	}
	if len(revoked) == 0 {
		return
	}

	slices.Sort(revoked)
	slog.Debug(
		"revoking dependency targets",
		"targets", revoked,
	)
	s.Revoke(revoked)
}

// projectSnapshot keeps only the selected fields of a snapshot, zeroing the
// rest. ID always survives.
func projectSnapshot(snap job.Snapshot, fields []string) job.Snapshot {
	keep := func(name string) bool {
		return slices.Contains(fields, name)
	}

	out := job.Snapshot{ID: snap.ID}
	if keep("ParentID") {
		out.ParentID = snap.ParentID
	}
	if keep("Label") {
		out.Label = snap.Label
	}
	if keep("Anonymous") {
		out.Anonymous = snap.Anonymous
	}
	if keep("Program") {
		out.Program = snap.Program
	}
	if keep("ProgramArguments") {
		out.ProgramArguments = snap.ProgramArguments
	}
	if keep("Provides") {
		out.Provides = snap.Provides
	}
	if keep("Requires") {
		out.Requires = snap.Requires
	}
	if keep("RunAtLoad") {
		out.RunAtLoad = snap.RunAtLoad
	}
	if keep("KeepAlive") {
		out.KeepAlive = snap.KeepAlive
	}
	if keep("State") {
		out.State = snap.State
	}
	if keep("LastExitStatus") {
		out.LastExitStatus = snap.LastExitStatus
	}
	if keep("PID") {
		out.PID = snap.PID
	}
	if keep("StandardOutPath") {
		out.StandardOutPath = snap.StandardOutPath
	}
	if keep("StandardErrorPath") {
		out.StandardErrorPath = snap.StandardErrorPath
	}
	if keep("EnvironmentVariables") {
		out.EnvironmentVariables = snap.EnvironmentVariables
	}
	return out
}
