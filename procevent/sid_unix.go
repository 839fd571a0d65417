//go:build linux || darwin || freebsd

package procevent

import "golang.org/x/sys/unix"

// Sid returns the session id of a process.
func Sid(pid int) (int, error) {
	return unix.Getsid(pid)
}
