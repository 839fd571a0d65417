// Package launcher implements the job launch protocol. Go cannot run code
// between fork and exec, so the child side is a re-exec of the serviced
// binary itself (the hidden "launch" command). The shim decodes its launch
// spec and raises SIGSTOP before applying any of it; the parent waits for
// that stop, arms its kernel watch on
// the pid, and only then resumes the child. That ordering is what guarantees
// no exec or exit of the job is ever missed.
package launcher

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// SpecEnv is the environment variable carrying the launch spec into the
// shim.
const SpecEnv = "SERVICED_LAUNCH_SPEC"

// ChildCommand is the name of the hidden subcommand that runs Child.
const ChildCommand = "launch"

// Spec describes one launch as handed to the shim.
type Spec struct {
	Program     string            `json:"program"`
	Arguments   []string          `json:"arguments"`
	Environment map[string]string `json:"environment,omitempty"`
	UID         *int              `json:"uid,omitempty"`
	GID         *int              `json:"gid,omitempty"`
	Umask       *int              `json:"umask,omitempty"`
}

// Start launches the shim with stdout/stderr attached to the given files
// (the shared null sink when the job has none configured). It blocks until
// the shim has stopped itself, calls armed with the new pid, then resumes
// the child. The returned pid is a direct child of this process and must be
// reaped by the caller when its exit is observed.
func Start(spec Spec, stdout, stderr *os.File, armed func(pid int) error) (int, error) {
	exe, err := os.Executable()
	if err != nil {
		return 0, fmt.Errorf("failed to locate own executable: %w", err)
	}

	payload, err := json.Marshal(spec)
	if err != nil {
		return 0, fmt.Errorf("failed to encode launch spec: %w", err)
	}

	cmd := exec.Command(exe, ChildCommand)
	cmd.Env = []string{SpecEnv + "=" + string(payload)}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start launch shim: %w", err)
	}
	pid := cmd.Process.Pid

	// The shim SIGSTOPs itself before applying the spec, so this wait
	// returns once it has stopped. An exit here means the shim died
	// before reaching the stop; reap it and fail.
	var ws unix.WaitStatus
	if _, err := unix.Wait4(pid, &ws, unix.WUNTRACED, nil); err != nil {
		return 0, fmt.Errorf("failed to wait for launch shim: %w", err)
	}
	if !ws.Stopped() {
		return 0, fmt.Errorf("launch shim exited before handshake (status %d)", ws.ExitStatus())
	}

	if err := armed(pid); err != nil {
		unix.Kill(pid, unix.SIGKILL)
		unix.Kill(pid, unix.SIGCONT)
		unix.Wait4(pid, nil, 0, nil)
		return 0, err
	}

	if err := unix.Kill(pid, unix.SIGCONT); err != nil {
		return 0, fmt.Errorf("failed to resume launch shim: %w", err)
	}

	// The event loop owns reaping from here on.
	cmd.Process.Release()
	return pid, nil
}
