// Package compute abstracts the accelerator worker's multiply step behind a
// backend so the execution engine can change without touching the burn loop.
package compute

// Backend is a precompiled multiply step: Prepare builds the operands and
// the kernel once, MulStep invokes it, Release frees whatever Prepare held.
// A Backend belongs to a single worker and is not safe for concurrent use.
type Backend interface {
	// Name identifies the engine for logging and reports.
	Name() string

	// Prepare allocates two size x size float32 operands and a reusable
	// result, so MulStep does no per-iteration setup.
	Prepare(size int) error

	// MulStep runs one multiply of the prepared operands, discarding the
	// result values.
	MulStep() error

	// Release drops the prepared operands. The backend can be prepared
	// again afterwards.
	Release() error
}
