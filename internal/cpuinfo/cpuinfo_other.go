//go:build !linux

// Package cpuinfo reports the number of CPUs this process may actually
// run on, preferring the thread-affinity mask where the platform
// exposes one.
package cpuinfo

import "runtime"

// Count returns the host's logical processor count. Platforms without a
// thread-affinity API fall back to runtime.NumCPU, same as the process
// count.
func Count() int {
	return runtime.NumCPU()
}
