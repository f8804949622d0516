// Package burn runs fixed-duration matrix-multiply stress workers and joins
// them with per-worker error propagation.
package burn

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/hsranjan/matburn/internal/compute"
	"github.com/hsranjan/matburn/internal/cpu"
	"github.com/hsranjan/matburn/internal/device"
	"github.com/hsranjan/matburn/internal/linalg"
)

// Runner owns a fixed set of burn workers. All operand memory is allocated
// in New so an oversized matrix fails at startup instead of mid-run.
// A Runner runs once; build a new one for another run.
type Runner struct {
	cfg     Config
	hooks   runnerHooks
	workers []*workerState
	gpu     *device.Info
	used    atomic.Bool
}

type workerState struct {
	info       WorkerInfo
	pair       *linalg.Pair
	dst        *mat.Dense
	backend    compute.Backend
	iterations uint64
	started    time.Time
	finished   time.Time
	err        error
}

// New validates cfg, probes for a GPU when accelerator workers are
// requested, and allocates every worker's operands up front.
func New(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Runner{cfg: cfg}
	for _, opt := range opts {
		opt(&r.hooks)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	for i := 0; i < cfg.CPUWorkers; i++ {
		rng := rand.New(rand.NewSource(seed + int64(i)))
		pair, err := linalg.NewPair(cfg.MatrixSize, rng)
		if err != nil {
			return nil, fmt.Errorf("burn: cpu worker %d: %w", i, err)
		}
		r.workers = append(r.workers, &workerState{
			info: WorkerInfo{ID: i, Kind: KindCPU, Device: "cpu"},
			pair: pair,
			dst:  pair.NewResult(),
		})
	}

	if cfg.GPUWorkers > 0 {
		label, err := r.probeAccelerator()
		if err != nil {
			return nil, err
		}

		for i := 0; i < cfg.GPUWorkers; i++ {
			id := cfg.CPUWorkers + i
			rng := rand.New(rand.NewSource(seed + int64(id)))
			backend := compute.NewTensorBackend(rng)
			if err := backend.Prepare(cfg.MatrixSize); err != nil {
				return nil, fmt.Errorf("burn: accelerator worker %d: %w", id, err)
			}
			r.workers = append(r.workers, &workerState{
				info:    WorkerInfo{ID: id, Kind: KindAccelerator, Device: label},
				backend: backend,
			})
		}
	}

	return r, nil
}

// probeAccelerator decides once where accelerator workers land. A missing
// device is not an error; it means the CPU fallback engine.
func (r *Runner) probeAccelerator() (string, error) {
	info, err := device.Probe()
	switch {
	case err == nil:
		r.gpu = info
		return info.Name, nil
	case errors.Is(err, device.ErrNoDevice):
		return "cpu (fallback)", nil
	default:
		return "", fmt.Errorf("burn: gpu probe: %w", err)
	}
}

// GPU returns the probed device, or nil when accelerator workers fell back
// to the CPU engine.
func (r *Runner) GPU() *device.Info {
	return r.gpu
}

// Workers returns the identity of every worker the run will launch, in
// launch order.
func (r *Runner) Workers() []WorkerInfo {
	infos := make([]WorkerInfo, len(r.workers))
	for i, w := range r.workers {
		infos[i] = w.info
	}
	return infos
}

// Run launches every worker and blocks until all of them have finished.
// The returned Report is always complete, even when err is non-nil: a
// worker failure cancels the remaining workers through the group context
// and each worker's own error lands in its WorkerResult.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	if !r.used.CompareAndSwap(false, true) {
		return nil, errors.New("burn: runner already used")
	}

	started := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for _, w := range r.workers {
		w := w
		g.Go(func() error {
			return r.runWorker(ctx, w)
		})
	}
	err := g.Wait()

	report := &Report{
		Started:  started,
		Finished: time.Now(),
		Workers:  make([]WorkerResult, len(r.workers)),
	}
	for i, w := range r.workers {
		report.Workers[i] = WorkerResult{
			ID:         w.info.ID,
			Kind:       w.info.Kind,
			Device:     w.info.Device,
			Iterations: w.iterations,
			Started:    w.started,
			Finished:   w.finished,
			Err:        w.err,
		}
		if w.backend != nil {
			_ = w.backend.Release()
		}
	}
	return report, err
}

// runWorker is one worker's whole life: pin, loop until the deadline, and
// record the outcome. Panics become errors so a bad kernel call cannot hang
// the join.
func (r *Runner) runWorker(ctx context.Context, w *workerState) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("burn: worker %d panic: %v\nstack trace:\n%s", w.info.ID, rec, buf[:n])
		}
		w.finished = time.Now()
		w.err = err
		if r.hooks.onWorkerDone != nil {
			r.hooks.onWorkerDone(w.info, err)
		}
	}()

	if r.cfg.PinWorkers && w.info.Kind == KindCPU {
		core, release := cpu.PinWorker(w.info.ID)
		defer release()
		if core >= 0 {
			w.info.Device = fmt.Sprintf("cpu (core %d)", core)
		}
	}

	w.started = time.Now()
	if r.hooks.onWorkerStart != nil {
		r.hooks.onWorkerStart(w.info)
	}

	deadline := w.started.Add(r.cfg.Duration)
	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := w.step(); err != nil {
			return fmt.Errorf("burn: worker %d: %w", w.info.ID, err)
		}
		w.iterations++
	}
	return nil
}

// step runs exactly one multiply. The clock check lives in the loop, never
// inside a multiply.
func (w *workerState) step() error {
	if w.info.Kind == KindAccelerator {
		return w.backend.MulStep()
	}
	w.pair.Multiply(w.dst)
	return nil
}
