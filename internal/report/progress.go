package report

import (
	"context"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/time/rate"
)

// Progress renders a wall-clock bar spanning the configured burn duration.
// Updates are throttled through a rate limiter so the sampler never competes
// with the burn loops for CPU. It returns when the duration has elapsed or
// ctx is cancelled.
func Progress(ctx context.Context, d time.Duration) {
	bar := progressbar.NewOptions64(d.Milliseconds(),
		progressbar.OptionSetDescription("burning"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionThrottle(65*time.Millisecond),
	)

	limiter := rate.NewLimiter(rate.Every(100*time.Millisecond), 1)
	start := time.Now()
	for {
		if err := limiter.Wait(ctx); err != nil {
			return
		}
		elapsed := time.Since(start)
		if elapsed >= d {
			_ = bar.Finish()
			return
		}
		_ = bar.Set64(elapsed.Milliseconds())
	}
}
