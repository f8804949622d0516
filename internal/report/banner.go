// Package report renders run progress and results to the terminal.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/hsranjan/matburn/burn"
	"github.com/hsranjan/matburn/internal/device"
)

// Shared color helpers.
var (
	Bold   = color.New(color.Bold)
	Green  = color.New(color.FgGreen)
	Red    = color.New(color.FgRed)
	Yellow = color.New(color.FgYellow)
	Blue   = color.New(color.FgBlue)
)

func colorPrintLn(c *color.Color, a ...any) {
	_, _ = c.Println(a...)
}

func colorPrintf(c *color.Color, format string, a ...any) {
	_, _ = c.Printf(format, a...)
}

// PrintHeader announces the run configuration before any worker starts.
func PrintHeader(cfg burn.Config) {
	colorPrintLn(Bold, "matburn — fixed-duration cpu/gpu matrix stress")
	fmt.Printf("  duration:    %v\n", cfg.Duration)
	fmt.Printf("  matrix size: %dx%d\n", cfg.MatrixSize, cfg.MatrixSize)
	fmt.Printf("  cpu workers: %d\n", cfg.CPUWorkers)
	fmt.Printf("  gpu workers: %d\n", cfg.GPUWorkers)
	if cfg.PinWorkers {
		fmt.Println("  pinning:     cpu workers pinned to cores")
	}
	fmt.Println()
}

// PrintDevice reports where accelerator workers will run, once, before the
// burn starts.
func PrintDevice(info *device.Info) {
	if info == nil {
		colorPrintf(Yellow, "[GPU] no device found, accelerator workers fall back to cpu\n")
		return
	}
	colorPrintf(Blue, "[GPU] using %s\n", info)
}

// WorkerStart prints one start line per worker, mirroring the burn loop's
// phase messages.
func WorkerStart(w burn.WorkerInfo, size int) {
	switch w.Kind {
	case burn.KindCPU:
		colorPrintf(Green, "[CPU] worker %d: starting burn loop (%dx%d float64)\n", w.ID, size, size)
	default:
		colorPrintf(Blue, "[GPU] worker %d: starting burn loop (%dx%d float32 on %s)\n", w.ID, size, size, w.Device)
	}
}

// PrintCompletion prints the final line of a clean run.
func PrintCompletion(rep *burn.Report) {
	fmt.Println()
	colorPrintf(Green, "burn completed: %d workers, %s multiplies in %v\n",
		len(rep.Workers), FormatCount(rep.TotalIterations()), rep.Elapsed().Round(10*time.Millisecond))
}

// PrintInterrupted prints the final line of a signal-interrupted run.
func PrintInterrupted(rep *burn.Report) {
	fmt.Println()
	colorPrintf(Yellow, "burn interrupted after %v\n", rep.Elapsed().Round(10*time.Millisecond))
}

// FormatCount formats an iteration count with comma separators.
func FormatCount(n uint64) string {
	s := fmt.Sprintf("%d", n)
	var result strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			_, _ = result.WriteString(",")
		}
		_, _ = result.WriteRune(c)
	}
	return result.String()
}
