package burn

import (
	"fmt"
	"time"
)

// Config carries every tunable for one burn run. It is passed into New by
// value; nothing reads it after construction.
type Config struct {
	// Duration is how long each worker keeps multiplying. Workers compute
	// their own deadline from their own start time, so stop instants may
	// differ by scheduling jitter.
	Duration time.Duration

	// MatrixSize is the side length of the square operands.
	MatrixSize int

	// CPUWorkers is the number of float64 burn loops to run.
	CPUWorkers int

	// GPUWorkers is the number of accelerator burn loops to run.
	GPUWorkers int

	// PinWorkers pins each CPU worker's OS thread to a core where the
	// platform supports it.
	PinWorkers bool

	// Seed fixes the operand values for reproducible runs. Zero means
	// seed from the clock.
	Seed int64
}

// Validate reports the first problem with the configuration.
func (c Config) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("burn: duration must be positive, got %v", c.Duration)
	}
	if c.MatrixSize <= 0 {
		return fmt.Errorf("burn: matrix size must be positive, got %d", c.MatrixSize)
	}
	if c.CPUWorkers < 0 {
		return fmt.Errorf("burn: cpu worker count must be non-negative, got %d", c.CPUWorkers)
	}
	if c.GPUWorkers < 0 {
		return fmt.Errorf("burn: gpu worker count must be non-negative, got %d", c.GPUWorkers)
	}
	if c.CPUWorkers+c.GPUWorkers == 0 {
		return fmt.Errorf("burn: at least one worker is required")
	}
	return nil
}

// WorkerInfo identifies a worker to hooks and reports.
type WorkerInfo struct {
	ID     int
	Kind   WorkerKind
	Device string
}

type runnerHooks struct {
	onWorkerStart func(WorkerInfo)
	onWorkerDone  func(WorkerInfo, error)
}

// Option customizes a Runner beyond its Config.
type Option func(*runnerHooks)

// WithOnWorkerStart registers a hook invoked from each worker's goroutine
// just before its burn loop begins.
func WithOnWorkerStart(fn func(WorkerInfo)) Option {
	return func(h *runnerHooks) {
		h.onWorkerStart = fn
	}
}

// WithOnWorkerDone registers a hook invoked from each worker's goroutine
// after its loop ends, with the error the worker is returning (nil on a
// clean deadline exit).
func WithOnWorkerDone(fn func(WorkerInfo, error)) Option {
	return func(h *runnerHooks) {
		h.onWorkerDone = fn
	}
}
