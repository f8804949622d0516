// matburn saturates CPU cores, and a GPU when one is present, with dense
// matrix multiplication for a fixed wall-clock duration.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hsranjan/matburn/burn"
	"github.com/hsranjan/matburn/internal/report"
)

func main() {
	var cfg burn.Config
	flag.DurationVar(&cfg.Duration, "duration", 2*time.Hour, "how long each worker keeps multiplying")
	flag.IntVar(&cfg.MatrixSize, "size", 2048, "side length of the square operand matrices")
	flag.IntVar(&cfg.CPUWorkers, "cpu-workers", 4, "number of cpu burn workers (0 = none)")
	flag.IntVar(&cfg.GPUWorkers, "gpu-workers", 1, "number of accelerator burn workers (0 = none)")
	flag.BoolVar(&cfg.PinWorkers, "pin", false, "pin cpu workers to cores where the platform supports it")
	flag.Int64Var(&cfg.Seed, "seed", 0, "operand value seed (0 = seed from the clock)")
	noProgress := flag.Bool("no-progress", false, "disable the live progress bar")
	flag.Parse()

	report.PrintHeader(cfg)

	runner, err := burn.New(cfg,
		burn.WithOnWorkerStart(func(w burn.WorkerInfo) {
			report.WorkerStart(w, cfg.MatrixSize)
		}),
	)
	if err != nil {
		report.Red.Fprintf(os.Stderr, "matburn: %v\n", err)
		os.Exit(1)
	}

	if cfg.GPUWorkers > 0 {
		report.PrintDevice(runner.GPU())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	progressDone := make(chan struct{})
	progressCtx, cancelProgress := context.WithCancel(ctx)
	if *noProgress {
		close(progressDone)
	} else {
		go func() {
			defer close(progressDone)
			report.Progress(progressCtx, cfg.Duration)
		}()
	}

	rep, err := runner.Run(ctx)
	cancelProgress()
	<-progressDone

	switch {
	case err == nil:
		report.PrintCompletion(rep)
		report.RenderSummary(rep)
	case errors.Is(err, context.Canceled):
		report.PrintInterrupted(rep)
		report.RenderSummary(rep)
	default:
		report.Red.Fprintf(os.Stderr, "matburn: %v\n", err)
		if rep != nil {
			report.RenderSummary(rep)
		}
		os.Exit(1)
	}
}
