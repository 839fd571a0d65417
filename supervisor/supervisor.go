// Package supervisor owns the job table and the dependency-target set. It
// consumes kernel process events, advances job state machines, launches and
// reaps children, and discovers anonymous descendants of managed jobs.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/ixsystems/serviced/job"
	"github.com/ixsystems/serviced/launcher"
	"github.com/ixsystems/serviced/procevent"
	"github.com/ixsystems/serviced/query"
)

// ErrJobNotFound is returned when a job id or label does not exist.
var ErrJobNotFound = errors.New("job not found")

// ErrAlreadyExists is returned on a label or id collision at load time.
var ErrAlreadyExists = errors.New("job already exists")

const (
	// defaultProvideDelay coalesces target advertisements from a burst of
	// simultaneously starting jobs into one activation pass.
	defaultProvideDelay = 2 * time.Second

	// requiresWarnThreshold is how long a job may sit with unsatisfied
	// requirements before the watchdog logs it.
	requiresWarnThreshold = 60 * time.Second

	requiresWarnInterval = 30 * time.Second
)

// LaunchFunc runs the launch protocol: start the child stopped, call armed
// with its pid, resume it. Tests substitute a fake.
type LaunchFunc func(spec launcher.Spec, stdout, stderr *os.File, armed func(pid int) error) (int, error)

// Options configures a Supervisor. Source is required; every other field
// has a production default and exists so tests can instantiate independent
// supervisors against fake processes.
type Options struct {
	Source       procevent.Source
	ProvideDelay time.Duration
	Launch       LaunchFunc
	Cmdline      func(pid int) ([]string, error)
	Command      func(pid int) (string, error)
	Sid          func(pid int) (int, error)
}

// Supervisor manages a set of jobs.
//
// Locking: mu guards the job table, the pid index and the provides set.
// Each job guards its own state. Code holding a job's lock may take mu (the
// Satisfied and Launch callbacks do), so mu must never be held while calling
// into a job.
type Supervisor struct {
	source       procevent.Source
	provideDelay time.Duration
	launch       LaunchFunc
	cmdline      func(pid int) ([]string, error)
	command      func(pid int) (string, error)
	sid          func(pid int) (int, error)
	devnull      *os.File

	mu              sync.Mutex
	jobs            map[string]*job.Job
	labels          map[string]string
	pids            map[int]string
	provides        map[string]struct{}
	pendingProvides map[string]struct{}
	provideTimer    *time.Timer
	respawnTimers   map[string]*time.Timer
	closed          bool
}

// New creates a Supervisor reading from opts.Source.
func New(opts Options) (*Supervisor, error) {
	if opts.Source == nil {
		return nil, fmt.Errorf("supervisor needs a process event source")
	}

	devnull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open null sink: %w", err)
	}

	s := &Supervisor{
		source:          opts.Source,
		provideDelay:    opts.ProvideDelay,
		launch:          opts.Launch,
		cmdline:         opts.Cmdline,
		command:         opts.Command,
		sid:             opts.Sid,
		devnull:         devnull,
		jobs:            make(map[string]*job.Job),
		labels:          make(map[string]string),
		pids:            make(map[int]string),
		provides:        make(map[string]struct{}),
		pendingProvides: make(map[string]struct{}),
		respawnTimers:   make(map[string]*time.Timer),
	}
	if s.provideDelay == 0 {
		s.provideDelay = defaultProvideDelay
	}
	if s.launch == nil {
		s.launch = launcher.Start
	}
	if s.cmdline == nil {
		s.cmdline = procevent.Cmdline
	}
	if s.command == nil {
		s.command = procevent.Command
	}
	if s.sid == nil {
		s.sid = procevent.Sid
	}
	return s, nil
}

// Run consumes process events until the source closes or ctx is canceled.
func (s *Supervisor) Run(ctx context.Context) {
	ticker := time.NewTicker(requiresWarnInterval)
	defer ticker.Stop()

	events := s.source.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			s.handleEvent(ev)
		case <-ticker.C:
			s.warnUnsatisfied()
		}
	}
}

// Shutdown stops every managed job and cancels pending respawns and provide
// commits. It does not close the event source; Close does. Call it while Run
// is still draining events, so the jobs' exits are observed.
func (s *Supervisor) Shutdown() {
	s.mu.Lock()
	s.closed = true
	timers := s.respawnTimers
	s.respawnTimers = make(map[string]*time.Timer)
	if s.provideTimer != nil {
		s.provideTimer.Stop()
		s.provideTimer = nil
	}
	jobs := s.jobList()
	s.mu.Unlock()

	for _, t := range timers {
		t.Stop()
	}
	for _, j := range jobs {
		if !j.Anonymous() {
			j.Stop()
		}
	}
}

// Close releases the event source and shared descriptors after Run has
// returned.
func (s *Supervisor) Close() {
	s.source.Close()
	s.devnull.Close()
}

// Load validates a job specification, inserts the job and returns its id.
// With RunAtLoad set the job is started before Load returns; a launch
// failure is logged, not returned, since the job itself loaded fine.
func (s *Supervisor) Load(spec job.Spec) (string, error) {
	runAtLoad := spec.RunAtLoad

	j, err := job.New(s, spec)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	if _, ok := s.labels[j.Label()]; ok {
		s.mu.Unlock()
		j.Close()
		return "", fmt.Errorf("%w: label %q", ErrAlreadyExists, j.Label())
	}
	if _, ok := s.jobs[j.ID()]; ok {
		s.mu.Unlock()
		j.Close()
		return "", fmt.Errorf("%w: id %q", ErrAlreadyExists, j.ID())
	}
	s.jobs[j.ID()] = j
	s.labels[j.Label()] = j.ID()
	s.mu.Unlock()

	slog.Info(
		"loaded job",
		"label", j.Label(),
		"id", j.ID(),
	)

	if runAtLoad {
		if err := j.Start(); err != nil {
			slog.Error(
				"failed to start job at load",
				"label", j.Label(),
				"error", err,
			)
		}
	}
	return j.ID(), nil
}

// Unload stops a job and removes it from the table.
func (s *Supervisor) Unload(nameOrID string) error {
	j, err := s.find(nameOrID)
	if err != nil {
		return err
	}

	j.Stop()
	j.Close()

	s.mu.Lock()
	delete(s.jobs, j.ID())
	delete(s.labels, j.Label())
	for pid, id := range s.pids {
		if id == j.ID() {
			delete(s.pids, pid)
			s.source.Untrack(pid)
		}
	}
	s.mu.Unlock()

	slog.Info(
		"unloaded job",
		"label", j.Label(),
	)
	return nil
}

// Start launches a job by label or id. Already-running jobs and jobs with
// unsatisfied requirements are a no-op.
func (s *Supervisor) Start(nameOrID string) error {
	j, err := s.find(nameOrID)
	if err != nil {
		return err
	}
	return j.Start()
}

// Stop terminates a job by label or id. May block up to the job's exit
// timeout (twice, when SIGTERM is ignored).
func (s *Supervisor) Stop(nameOrID string) error {
	j, err := s.find(nameOrID)
	if err != nil {
		return err
	}
	j.Stop()
	return nil
}

// Query returns snapshots of jobs matching the filters, shaped by params.
func (s *Supervisor) Query(filters []query.Filter, params query.Params) ([]job.Snapshot, error) {
	jobs := s.snapshotList()

	byID := make(map[string]job.Snapshot, len(jobs))
	records := make([]map[string]any, len(jobs))
	for i, snap := range jobs {
		byID[snap.ID] = snap
		records[i] = snap.Map()
	}

	// Field selection is applied to the typed snapshots afterwards, so the
	// ID must survive filtering.
	sel := params.Select
	params.Select = nil

	matched, err := query.Apply(records, filters, params)
	if err != nil {
		return nil, err
	}

	out := make([]job.Snapshot, 0, len(matched))
	for _, rec := range matched {
		id, _ := rec["ID"].(string)
		snap := byID[id]
		if len(sel) > 0 {
			snap = projectSnapshot(snap, sel)
		}
		out = append(out, snap)
	}
	return out, nil
}

// find resolves a job by id or label, anonymous jobs included.
func (s *Supervisor) find(nameOrID string) (*job.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if j, ok := s.jobs[nameOrID]; ok {
		return j, nil
	}
	if id, ok := s.labels[nameOrID]; ok {
		return s.jobs[id], nil
	}
	for _, j := range s.jobs {
		if j.Label() == nameOrID {
			return j, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrJobNotFound, nameOrID)
}

func (s *Supervisor) jobList() []*job.Job {
	jobs := make([]*job.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		jobs = append(jobs, j)
	}
	return jobs
}

func (s *Supervisor) snapshotList() []job.Snapshot {
	s.mu.Lock()
	jobs := s.jobList()
	s.mu.Unlock()

	snaps := make([]job.Snapshot, len(jobs))
	for i, j := range jobs {
		snaps[i] = j.Snapshot()
	}
	return snaps
}

func (s *Supervisor) jobByPID(pid int) *job.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.pids[pid]
	if !ok {
		return nil
	}
	return s.jobs[id]
}
