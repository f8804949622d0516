package burn

import "time"

// WorkerKind tells the two burn loop flavors apart.
type WorkerKind int

const (
	// KindCPU multiplies float64 matrices on the Go scheduler's threads.
	KindCPU WorkerKind = iota
	// KindAccelerator multiplies float32 tensors through a compute backend.
	KindAccelerator
)

func (k WorkerKind) String() string {
	switch k {
	case KindCPU:
		return "cpu"
	case KindAccelerator:
		return "accelerator"
	default:
		return "unknown"
	}
}

// WorkerResult is one worker's outcome after the run has joined.
type WorkerResult struct {
	ID         int
	Kind       WorkerKind
	Device     string
	Iterations uint64
	Started    time.Time
	Finished   time.Time
	Err        error
}

// Runtime is the worker's own wall-clock span.
func (w WorkerResult) Runtime() time.Duration {
	return w.Finished.Sub(w.Started)
}

// Report is the coordinator's view of a finished run. It is only built after
// every worker has completed.
type Report struct {
	Workers  []WorkerResult
	Started  time.Time
	Finished time.Time
}

// Elapsed is the coordinator's wall-clock span for the whole run.
func (r *Report) Elapsed() time.Duration {
	return r.Finished.Sub(r.Started)
}

// Failed returns the workers that ended with an error.
func (r *Report) Failed() []WorkerResult {
	var failed []WorkerResult
	for _, w := range r.Workers {
		if w.Err != nil {
			failed = append(failed, w)
		}
	}
	return failed
}

// TotalIterations sums the multiply counts across all workers.
func (r *Report) TotalIterations() uint64 {
	var total uint64
	for _, w := range r.Workers {
		total += w.Iterations
	}
	return total
}
