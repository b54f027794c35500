//go:build linux

// Package cpuinfo reports the number of CPUs this process may actually
// run on, preferring the thread-affinity mask where the platform
// exposes one.
package cpuinfo

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// Count returns the size of the process's current scheduling affinity
// mask, falling back to runtime.NumCPU if the syscall fails or reports
// nothing usable.
func Count() int {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return runtime.NumCPU()
	}

	n := set.Count()
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}
