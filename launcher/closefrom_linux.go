package launcher

import (
	"math"
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// closeFrom closes every descriptor >= lowest. close_range is available
// since Linux 5.9; older kernels fall back to walking /proc/self/fd.
func closeFrom(lowest int) {
	_, _, errno := unix.Syscall(unix.SYS_CLOSE_RANGE, uintptr(lowest), uintptr(math.MaxUint32), 0)
	if errno == 0 {
		return
	}

	entries, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		return
	}
	for _, entry := range entries {
		fd, err := strconv.Atoi(entry.Name())
		if err != nil || fd < lowest {
			continue
		}
		unix.Close(fd)
	}
}
