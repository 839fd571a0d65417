package launcher

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"sort"

	"golang.org/x/sys/unix"
)

// Child runs the in-child half of the launch protocol: stop for the
// handshake, then umask, credential drop, close inherited descriptors,
// start a new session, and exec the target. Stdout and stderr were already
// attached by the parent. On success this never returns.
func Child() error {
	payload := os.Getenv(SpecEnv)
	if payload == "" {
		return fmt.Errorf("%s not set; not running as a launch shim", SpecEnv)
	}

	var spec Spec
	if err := json.Unmarshal([]byte(payload), &spec); err != nil {
		return fmt.Errorf("failed to decode launch spec: %w", err)
	}
	if spec.Program == "" {
		return fmt.Errorf("launch spec has no program")
	}

	// Handshake: the parent arms its process watch while we are stopped.
	if err := unix.Kill(unix.Getpid(), unix.SIGSTOP); err != nil {
		return fmt.Errorf("failed to stop for handshake: %w", err)
	}

	if spec.Umask != nil {
		unix.Umask(*spec.Umask)
	}
	if spec.GID != nil {
		if err := unix.Setgid(*spec.GID); err != nil {
			return fmt.Errorf("failed to set gid %d: %w", *spec.GID, err)
		}
	}
	if spec.UID != nil {
		if err := unix.Setuid(*spec.UID); err != nil {
			return fmt.Errorf("failed to set uid %d: %w", *spec.UID, err)
		}
	}

	path, err := exec.LookPath(spec.Program)
	if err != nil {
		return fmt.Errorf("failed to resolve program: %w", err)
	}

	closeFrom(3)

	if _, err := unix.Setsid(); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	argv := spec.Arguments
	if len(argv) == 0 {
		argv = []string{spec.Program}
	}

	env := make([]string, 0, len(spec.Environment))
	for name, value := range spec.Environment {
		env = append(env, name+"="+value)
	}
	sort.Strings(env)

	return unix.Exec(path, argv, env)
}
