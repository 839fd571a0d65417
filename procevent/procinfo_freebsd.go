package procevent

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/sys/unix"
)

// Cmdline returns the argv of a process via the kern.proc.args sysctl.
func Cmdline(pid int) ([]string, error) {
	data, err := unix.SysctlRaw("kern.proc.args", pid)
	if err != nil {
		return nil, fmt.Errorf("failed to read args for pid %d: %w", pid, err)
	}
	data = bytes.TrimRight(data, "\x00")
	if len(data) == 0 {
		return nil, nil
	}
	return strings.Split(string(data), "\x00"), nil
}

func cmdlineString(pid int) (string, error) {
	argv, err := Cmdline(pid)
	if err != nil {
		return "", err
	}
	return strings.Join(argv, " "), nil
}

// Command returns the short command name from the process's kinfo record.
func Command(pid int) (string, error) {
	kp, err := unix.SysctlKinfoProc("kern.proc.pid", pid)
	if err != nil {
		return "", fmt.Errorf("failed to read kinfo for pid %d: %w", pid, err)
	}
	return int8ArrayToString(kp.Comm[:]), nil
}

func int8ArrayToString(ca []int8) string {
	buf := make([]byte, 0, len(ca))
	for _, c := range ca {
		if c == 0 {
			break
		}
		buf = append(buf, byte(c))
	}
	return string(buf)
}
