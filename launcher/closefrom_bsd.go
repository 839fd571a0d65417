//go:build darwin || freebsd

package launcher

import "golang.org/x/sys/unix"

// closeFrom closes every descriptor >= lowest, up to the descriptor limit.
func closeFrom(lowest int) {
	var lim unix.Rlimit
	maxFD := 1024
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &lim); err == nil && int(lim.Cur) > 0 {
		maxFD = int(lim.Cur)
	}
	for fd := lowest; fd < maxFD; fd++ {
		unix.Close(fd)
	}
}
