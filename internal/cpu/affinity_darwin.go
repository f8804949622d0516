//go:build darwin

package cpu

import (
	"runtime"
)

// PinWorker locks the calling goroutine to an OS thread. CPU pinning is not
// available on macOS, so the core is always reported as -1.
func PinWorker(workerID int) (int, func()) {
	runtime.LockOSThread()

	return -1, runtime.UnlockOSThread
}
