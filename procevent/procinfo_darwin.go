package procevent

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/sys/unix"
)

// Cmdline returns the argv of a process via the KERN_PROCARGS2 sysctl. The
// buffer layout is: argc (int32), the exec path, NUL padding, then the argv
// strings separated by NULs.
func Cmdline(pid int) ([]string, error) {
	data, err := unix.SysctlRaw("kern.procargs2", pid)
	if err != nil {
		return nil, fmt.Errorf("failed to read procargs for pid %d: %w", pid, err)
	}
	if len(data) < 4 {
		return nil, fmt.Errorf("short procargs buffer for pid %d", pid)
	}

	argc := int(binary.LittleEndian.Uint32(data[:4]))
	rest := data[4:]

	// Skip the exec path and the padding after it.
	if i := bytes.IndexByte(rest, 0); i >= 0 {
		rest = rest[i:]
	}
	rest = bytes.TrimLeft(rest, "\x00")

	argv := make([]string, 0, argc)
	for len(rest) > 0 && len(argv) < argc {
		i := bytes.IndexByte(rest, 0)
		if i < 0 {
			argv = append(argv, string(rest))
			break
		}
		argv = append(argv, string(rest[:i]))
		rest = rest[i+1:]
	}
	return argv, nil
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
	return int8ArrayToString(kp.Proc.P_comm[:]), nil
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
