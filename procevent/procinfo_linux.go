package procevent

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Cmdline returns the argv of a process.
func Cmdline(pid int) ([]string, error) {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/cmdline", pid))
	if err != nil {
		return nil, fmt.Errorf("failed to read cmdline for pid %d: %w", pid, err)
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

// Command returns the short command name of a process.
func Command(pid int) (string, error) {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", pid))
	if err != nil {
		return "", fmt.Errorf("failed to read comm for pid %d: %w", pid, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// processAlive reports whether the process exists and has not become a
// zombie. The run state is the field after the parenthesized command name in
// /proc/pid/stat.
func processAlive(pid int) bool {
	state, _, err := statFields(pid)
	if err != nil {
		return false
	}
	return state != "Z" && state != "X"
}

func parentPID(pid int) (int, error) {
	_, ppid, err := statFields(pid)
	return ppid, err
}

func statFields(pid int) (state string, ppid int, err error) {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/stat", pid))
	if err != nil {
		return "", 0, err
	}
	// The comm field is parenthesized and may itself contain spaces or
	// parentheses; fields resume after the final ')'.
	idx := bytes.LastIndexByte(data, ')')
	if idx < 0 || idx+2 >= len(data) {
		return "", 0, fmt.Errorf("malformed stat for pid %d", pid)
	}
	fields := strings.Fields(string(data[idx+2:]))
	if len(fields) < 2 {
		return "", 0, fmt.Errorf("malformed stat for pid %d", pid)
	}
	ppid, err = strconv.Atoi(fields[1])
	if err != nil {
		return "", 0, fmt.Errorf("malformed ppid for pid %d: %w", pid, err)
	}
	return fields[0], ppid, nil
}
