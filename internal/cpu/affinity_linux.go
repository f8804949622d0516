//go:build linux

package cpu

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// PinWorker locks the calling goroutine to an OS thread and pins that thread
// to a core derived from the worker index, spreading burn workers across the
// machine. It returns the core chosen (-1 when the kernel refused the
// affinity call; the thread lock still holds) and a release function to
// defer.
func PinWorker(workerID int) (int, func()) {
	runtime.LockOSThread()

	core := workerID % runtime.NumCPU()
	var mask unix.CPUSet
	mask.Zero()
	mask.Set(core)

	// 0 = current thread
	if err := unix.SchedSetaffinity(0, &mask); err != nil {
		core = -1
	}

	return core, runtime.UnlockOSThread
}
