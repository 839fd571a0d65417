package supervisor

import (
	"log/slog"
	"time"

	"golang.org/x/sys/unix"

	"github.com/ixsystems/serviced/job"
	"github.com/ixsystems/serviced/procevent"
)

// handleEvent routes one kernel event. The table lock is only held for
// lookups and mutations, never across a call into a job.
func (s *Supervisor) handleEvent(ev procevent.Event) {
	switch ev.Kind {
	case procevent.KindFork:
		if ev.ChildPID != 0 {
			s.handleChild(ev.PID, ev.ChildPID)
			return
		}
		if j := s.jobByPID(ev.PID); j != nil {
			j.HandleEvent(ev, 0)
		}

	case procevent.KindExec:
		j := s.jobByPID(ev.PID)
		if j == nil {
			return
		}
		out := j.HandleEvent(ev, 0)
		if len(out.Provide) > 0 {
			s.Provide(out.Provide)
		}

	case procevent.KindExit:
		j := s.jobByPID(ev.PID)
		status := ev.Status
		if j == nil || !j.Anonymous() {
			// Direct children must be reaped here whether or not a job
			// still owns the pid; anonymous descendants are reaped by
			// their own parents.
			if ws := s.reap(ev.PID); ws >= 0 {
				status = ws
			}
		}
		if j == nil {
			return
		}
		out := j.HandleEvent(ev, status)
		s.afterExit(j, ev.PID, out)
	}
}

// reap collects the wait status of a direct child. Returns -1 when the pid
// is not our child or was already collected.
func (s *Supervisor) reap(pid int) int {
	var ws unix.WaitStatus
	if _, err := unix.Wait4(pid, &ws, 0, nil); err != nil {
		slog.Debug(
			"wait4 failed",
			"pid", pid,
			"error", err,
		)
		return -1
	}
	return int(ws)
}

// handleChild decides whether a fork of a tracked process becomes an
// anonymous job. Children that detached into their own session are dropped
// at the session-id boundary.
func (s *Supervisor) handleChild(parentPID, childPID int) {
	slog.Debug(
		"new child process",
		"pid", childPID,
		"parent", parentPID,
	)

	pj := s.jobByPID(parentPID)
	if pj == nil {
		s.source.Untrack(childPID)
		return
	}

	sid, err := s.sid(childPID)
	if err != nil {
		// Exited before we could look; nothing to insert.
		return
	}
	if sid != pj.SID() {
		s.source.Untrack(childPID)
		return
	}

	command, err := s.command(childPID)
	if err != nil {
		command = ""
	}
	a := job.NewAnonymous(s, pj, childPID, command)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.jobs[a.ID()] = a
	s.pids[childPID] = a.ID()
	s.mu.Unlock()

	s.source.Track(childPID)
	slog.Info(
		"added anonymous job",
		"label", a.Label(),
		"parent", pj.Label(),
	)
}

// afterExit applies the table-level consequences of a job's exit.
func (s *Supervisor) afterExit(j *job.Job, pid int, out job.Outcome) {
	if !out.Exited {
		return
	}

	s.mu.Lock()
	delete(s.pids, pid)
	if out.RemoveJob {
		delete(s.jobs, j.ID())
	}
	s.mu.Unlock()

	if out.RemoveJob {
		slog.Info(
			"removed anonymous job",
			"label", j.Label(),
		)
	}
	if len(out.Revoke) > 0 {
		s.revoke(out.Revoke, j.ID())
	}
	if out.Respawn {
		s.scheduleRespawn(j, out.RespawnDelay)
	}
}

// scheduleRespawn relaunches a keep-alive job after its throttle delay.
func (s *Supervisor) scheduleRespawn(j *job.Job, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if _, ok := s.respawnTimers[j.ID()]; ok {
		return
	}

	slog.Info(
		"scheduling respawn",
		"label", j.Label(),
		"delay", delay,
	)
	s.respawnTimers[j.ID()] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.respawnTimers, j.ID())
		closed := s.closed
		_, present := s.jobs[j.ID()]
		s.mu.Unlock()

		if closed || !present {
			return
		}
		if err := j.Start(); err != nil {
			slog.Error(
				"failed to respawn job",
				"label", j.Label(),
				"error", err,
			)
		}
	})
}

// warnUnsatisfied logs jobs that have been waiting on dependency targets
// past the threshold, as an operator aid.
func (s *Supervisor) warnUnsatisfied() {
	s.mu.Lock()
	jobs := s.jobList()
	s.mu.Unlock()

	for _, j := range jobs {
		since := j.WaitingSince()
		if since.IsZero() || time.Since(since) < requiresWarnThreshold {
			continue
		}
		slog.Warn(
			"job requirements unsatisfied",
			"label", j.Label(),
			"requires", j.Requires(),
			"waiting", time.Since(since).Round(time.Second),
		)
	}
}
