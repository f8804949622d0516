//go:build windows

package cpu

import (
	"runtime"
	"syscall"
)

var (
	kernel32              = syscall.NewLazyDLL("kernel32.dll")
	setThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
	getCurrentThread      = kernel32.NewProc("GetCurrentThread")
)

// PinWorker locks the calling goroutine to an OS thread and pins that thread
// to a core derived from the worker index. It returns the core chosen (-1
// when the affinity call failed; the thread lock still holds) and a release
// function to defer.
func PinWorker(workerID int) (int, func()) {
	runtime.LockOSThread()

	core := workerID % runtime.NumCPU()
	handle, _, _ := getCurrentThread.Call()

	// Bit N of the mask selects CPU N.
	prevMask, _, _ := setThreadAffinityMask.Call(handle, uintptr(1)<<core)
	if prevMask == 0 {
		core = -1
	}

	return core, runtime.UnlockOSThread
}
