// Package job implements the lifecycle of one supervised process: loading a
// specification, the launch and stop protocols, and the state machine driven
// by kernel process events.
package job

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"

	"github.com/ixsystems/serviced/launcher"
	"github.com/ixsystems/serviced/procevent"
)

// State is the lifecycle state of a job.
type State int

const (
	StateUnknown State = iota
	StateStopped
	StateRunning
	StateDying
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "STOPPED"
	case StateRunning:
		return "RUNNING"
	case StateDying:
		return "DYING"
	default:
		return "UNKNOWN"
	}
}

// Context is the supervisor surface a job calls back into. It is an
// interface so tests can run jobs against a fake launcher and process
// introspection.
type Context interface {
	// Satisfied reports whether every required target is currently
	// provided.
	Satisfied(requires []string) bool

	// Launch runs the launch protocol for j and returns the child pid.
	// The pid is tracked by the process event source before the child is
	// allowed to run.
	Launch(j *Job, spec launcher.Spec, stdout, stderr *os.File) (int, error)

	// Cmdline returns the argv of a live process.
	Cmdline(pid int) ([]string, error)

	// Sid returns the session id of a live process.
	Sid(pid int) (int, error)

	// Null is the shared null sink used when a job has no stdio paths.
	Null() *os.File
}

// Outcome reports the table-level consequences of an event, acted on by the
// supervisor: targets to advertise or revoke, anonymous-job removal, and
// keep-alive relaunch scheduling.
type Outcome struct {
	Provide      []string
	Exited       bool
	Revoke       []string
	RemoveJob    bool
	Respawn      bool
	RespawnDelay time.Duration
}

// Job is one row in the supervisor's job table. All mutable state is guarded
// by mu; id, label and the loaded configuration are immutable after
// construction.
type Job struct {
	ctx Context

	id               string
	label            string
	anonymous        bool
	parentID         string
	program          string
	programArguments []string
	environment      map[string]string
	userName         string
	groupName        string
	uid              *int
	gid              *int
	umask            *int
	provides         []string
	requires         []string
	runAtLoad        bool
	keepAlive        bool
	throttleInterval time.Duration
	exitTimeout      time.Duration
	stdoutPath       string
	stderrPath       string

	mu            sync.Mutex
	state         State
	pid           int
	sid           int
	didExec       bool
	lastExitCode  *int
	startedAt     time.Time
	exitedAt      time.Time
	loadedAt      time.Time
	respawns      int
	stopRequested bool
	stdout        *os.File
	stderr        *os.File
	exited        chan struct{}
}

// New builds a job from a validated spec, resolving credentials and opening
// the configured log files. The new job is in STOPPED state; the caller owns
// label-uniqueness checks and the run-at-load trigger.
func New(ctx Context, spec Spec) (*Job, error) {
	if err := spec.normalize(); err != nil {
		return nil, err
	}
	uid, gid, err := spec.resolveCredentials()
	if err != nil {
		return nil, err
	}

	id := spec.ID
	if id == "" {
		id = uuid.New().String()
	}

	j := &Job{
		ctx:              ctx,
		id:               id,
		label:            spec.Label,
		program:          spec.Program,
		programArguments: slices.Clone(spec.ProgramArguments),
		environment:      spec.EnvironmentVariables,
		userName:         spec.UserName,
		groupName:        spec.GroupName,
		uid:              uid,
		gid:              gid,
		umask:            spec.Umask,
		provides:         slices.Clone(spec.Provides),
		requires:         slices.Clone(spec.Requires),
		runAtLoad:        spec.RunAtLoad,
		keepAlive:        spec.KeepAlive,
		throttleInterval: time.Duration(spec.ThrottleInterval) * time.Second,
		exitTimeout:      time.Duration(spec.ExitTimeout) * time.Second,
		stdoutPath:       spec.StandardOutPath,
		stderrPath:       spec.StandardErrorPath,
		state:            StateStopped,
		loadedAt:         time.Now(),
	}

	if j.stdoutPath != "" {
		f, err := os.OpenFile(j.stdoutPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to open stdout file: %v", ErrIO, err)
		}
		j.stdout = f
	}
	if j.stderrPath != "" {
		f, err := os.OpenFile(j.stderrPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
		if err != nil {
			if j.stdout != nil {
				j.stdout.Close()
			}
			return nil, fmt.Errorf("%w: failed to open stderr file: %v", ErrIO, err)
		}
		j.stderr = f
	}

	return j, nil
}

// NewAnonymous builds a job representing an already-running descendant of
// parent. The command name comes from the kernel; "unknown" when the child
// exited before it could be read.
func NewAnonymous(ctx Context, parent *Job, pid int, command string) *Job {
	if command == "" {
		command = "unknown"
	}
	return &Job{
		ctx:         ctx,
		id:          uuid.New().String(),
		label:       fmt.Sprintf("anonymous.%s@%d", command, pid),
		anonymous:   true,
		parentID:    parent.ID(),
		state:       StateRunning,
		pid:         pid,
		exitTimeout: defaultExitTimeout * time.Second,
		exited:      make(chan struct{}),
		loadedAt:    time.Now(),
	}
}

// ID returns the job's stable identifier.
func (j *Job) ID() string { return j.id }

// Label returns the job's unique human-readable name.
func (j *Job) Label() string { return j.label }

// Anonymous reports whether this job was auto-created from a descendant.
func (j *Job) Anonymous() bool { return j.anonymous }

// Requires returns the job's dependency targets.
func (j *Job) Requires() []string { return j.requires }

// Provides returns the targets this job advertises once running.
func (j *Job) Provides() []string { return j.provides }

// RunAtLoad reports whether the job starts immediately after load.
func (j *Job) RunAtLoad() bool { return j.runAtLoad }

// State returns the current lifecycle state.
func (j *Job) State() State {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.state
}

// PID returns the current process id, or 0 when the job is not running.
func (j *Job) PID() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.pid
}

// SID returns the session id sampled at the job's first matching exec, or 0
// before that.
func (j *Job) SID() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.sid
}

// WaitingSince returns the load time when the job is STOPPED with
// unsatisfied requirements, for the operator watchdog. The zero time means
// the job is not waiting.
func (j *Job) WaitingSince() time.Time {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.state != StateStopped || len(j.requires) == 0 {
		return time.Time{}
	}
	if j.ctx.Satisfied(j.requires) {
		return time.Time{}
	}
	return j.loadedAt
}

// Start launches the job. It is a no-op when the job is already running or
// dying, and when its requirements are not yet satisfied. The caller's
// process watch is guaranteed active before the child executes.
func (j *Job) Start() error {
	if j.anonymous {
		return fmt.Errorf("cannot start anonymous job %s", j.label)
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.state == StateRunning || j.state == StateDying {
		return nil
	}
	if !j.ctx.Satisfied(j.requires) {
		slog.Debug(
			"job requirements not satisfied, not starting",
			"label", j.label,
			"requires", j.requires,
		)
		return nil
	}

	spec := launcher.Spec{
		Program:     j.program,
		Arguments:   j.programArguments,
		Environment: j.environment,
		UID:         j.uid,
		GID:         j.gid,
		Umask:       j.umask,
	}
	stdout := j.stdout
	if stdout == nil {
		stdout = j.ctx.Null()
	}
	stderr := j.stderr
	if stderr == nil {
		stderr = j.ctx.Null()
	}

	slog.Info(
		"starting job",
		"label", j.label,
	)
	pid, err := j.ctx.Launch(j, spec, stdout, stderr)
	if err != nil {
		return fmt.Errorf("failed to launch job %s: %w", j.label, err)
	}

	j.pid = pid
	j.sid = 0
	j.didExec = false
	j.stopRequested = false
	j.state = StateRunning
	j.startedAt = time.Now()
	j.lastExitCode = nil
	j.exited = make(chan struct{})

	slog.Debug(
		"job started",
		"label", j.label,
		"pid", pid,
	)
	return nil
}

// Stop terminates the job: SIGTERM, wait up to the exit timeout for the
// event loop to record the exit, then SIGKILL and wait once more. An
// unkillable process is logged and left in DYING state.
func (j *Job) Stop() {
	j.mu.Lock()
	if j.state != StateRunning && j.state != StateDying {
		j.mu.Unlock()
		return
	}
	j.stopRequested = true
	j.didExec = false
	j.state = StateDying
	pid := j.pid
	exited := j.exited
	timeout := j.exitTimeout
	j.mu.Unlock()

	slog.Info(
		"stopping job",
		"label", j.label,
		"pid", pid,
	)

	if err := unix.Kill(pid, unix.SIGTERM); err != nil {
		// Already gone; the exit event finishes the bookkeeping.
		slog.Debug(
			"SIGTERM failed",
			"label", j.label,
			"pid", pid,
			"error", err,
		)
	}

	select {
	case <-exited:
		return
	case <-time.After(timeout):
	}

	slog.Warn(
		"job did not exit in time, escalating to SIGKILL",
		"label", j.label,
		"pid", pid,
	)
	unix.Kill(pid, unix.SIGKILL)

	select {
	case <-exited:
	case <-time.After(timeout):
		slog.Error(
			"unkillable process",
			"label", j.label,
			"pid", pid,
		)
	}
}

// HandleEvent advances the state machine for one kernel event concerning
// this job's pid and reports the table-level consequences. exitStatus is the
// authoritative wait status for exit events (the supervisor reaps direct
// children); procevent.StatusUnknown when it could not be observed.
func (j *Job) HandleEvent(ev procevent.Event, exitStatus int) Outcome {
	switch ev.Kind {
	case procevent.KindExec:
		return j.handleExec(ev.PID)
	case procevent.KindFork:
		slog.Debug(
			"job has forked",
			"label", j.label,
			"child", ev.ChildPID,
		)
		return Outcome{}
	case procevent.KindExit:
		return j.handleExit(exitStatus)
	default:
		return Outcome{}
	}
}

// handleExec publishes the job's targets once the process image matches the
// configured argv. Intermediate images (a shell wrapper execing the real
// program) are ignored.
func (j *Job) handleExec(pid int) Outcome {
	argv, err := j.ctx.Cmdline(pid)
	if err != nil {
		// Exited too quickly; the exit event carries the rest.
		return Outcome{}
	}

	slog.Debug(
		"job did exec",
		"label", j.label,
		"argv", argv,
	)

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.didExec || !slices.Equal(argv, j.programArguments) {
		return Outcome{}
	}

	sid, err := j.ctx.Sid(pid)
	if err != nil {
		// Exited too quickly after exec.
		return Outcome{}
	}

	j.sid = sid
	j.didExec = true
	j.state = StateRunning
	return Outcome{Provide: j.provides}
}

// handleExit records the terminal event: clears the pid, moves to STOPPED,
// releases Stop waiters, and computes respawn/revoke/removal consequences.
func (j *Job) handleExit(status int) Outcome {
	j.mu.Lock()
	defer j.mu.Unlock()

	var code int
	if status >= 0 {
		ws := unix.WaitStatus(status)
		switch {
		case ws.Exited():
			code = ws.ExitStatus()
		case ws.Signaled():
			code = 128 + int(ws.Signal())
		default:
			code = status
		}
	} else {
		code = -1
	}

	slog.Info(
		"job has exited",
		"label", j.label,
		"pid", j.pid,
		"code", code,
	)

	j.pid = 0
	j.sid = 0
	j.didExec = false
	j.state = StateStopped
	j.lastExitCode = &code
	j.exitedAt = time.Now()
	if j.exited != nil {
		close(j.exited)
		j.exited = nil
	}

	out := Outcome{
		Exited:    true,
		Revoke:    j.provides,
		RemoveJob: j.anonymous,
	}
	if j.keepAlive && !j.stopRequested {
		out.Respawn = true
		if delay := j.throttleInterval - time.Since(j.startedAt); delay > 0 {
			out.RespawnDelay = delay
		}
		j.respawns++
	}
	return out
}

// Close releases the job's log files. Called on unload, after Stop.
func (j *Job) Close() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.stdout != nil {
		j.stdout.Close()
		j.stdout = nil
	}
	if j.stderr != nil {
		j.stderr.Close()
		j.stderr = nil
	}
}

// Snapshot is a consistent copy of the job's observable state.
type Snapshot struct {
	ID                   string
	ParentID             string
	Label                string
	Anonymous            bool
	Program              string
	ProgramArguments     []string
	Provides             []string
	Requires             []string
	RunAtLoad            bool
	KeepAlive            bool
	State                string
	LastExitStatus       *int
	PID                  *int
	StandardOutPath      string
	StandardErrorPath    string
	EnvironmentVariables map[string]string
}

// Snapshot returns the job's current observable state.
func (j *Job) Snapshot() Snapshot {
	j.mu.Lock()
	defer j.mu.Unlock()

	snap := Snapshot{
		ID:                   j.id,
		ParentID:             j.parentID,
		Label:                j.label,
		Anonymous:            j.anonymous,
		Program:              j.program,
		ProgramArguments:     slices.Clone(j.programArguments),
		Provides:             slices.Clone(j.provides),
		Requires:             slices.Clone(j.requires),
		RunAtLoad:            j.runAtLoad,
		KeepAlive:            j.keepAlive,
		State:                j.state.String(),
		StandardOutPath:      j.stdoutPath,
		StandardErrorPath:    j.stderrPath,
		EnvironmentVariables: j.environment,
	}
	if j.lastExitCode != nil {
		code := *j.lastExitCode
		snap.LastExitStatus = &code
	}
	if j.pid != 0 {
		pid := j.pid
		snap.PID = &pid
	}
	return snap
}

// Map renders the snapshot with its property-list field names, for query
// matching. Stdio paths and environment appear only when set.
func (s Snapshot) Map() map[string]any {
	m := map[string]any{
		"ID":               s.ID,
		"Label":            s.Label,
		"Program":          s.Program,
		"ProgramArguments": s.ProgramArguments,
		"Provides":         s.Provides,
		"Requires":         s.Requires,
		"RunAtLoad":        s.RunAtLoad,
		"KeepAlive":        s.KeepAlive,
		"State":            s.State,
		"Anonymous":        s.Anonymous,
	}
	if s.ParentID != "" {
		m["ParentID"] = s.ParentID
	} else {
		m["ParentID"] = nil
	}
	if s.LastExitStatus != nil {
		m["LastExitStatus"] = *s.LastExitStatus
	} else {
		m["LastExitStatus"] = nil
	}
	if s.PID != nil {
		m["PID"] = *s.PID
	} else {
		m["PID"] = nil
	}
	if s.StandardOutPath != "" {
		m["StandardOutPath"] = s.StandardOutPath
	}
	if s.StandardErrorPath != "" {
		m["StandardErrorPath"] = s.StandardErrorPath
	}
	if len(s.EnvironmentVariables) > 0 {
		m["EnvironmentVariables"] = s.EnvironmentVariables
	}
	return m
}
