package batch

import (
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"whitted-raytracer/internal/raster"
	"whitted-raytracer/internal/scene"
	"whitted-raytracer/internal/tracer"
)

// Options controls a parallel render.
type Options struct {
	Workers  int           // goroutines; <= 0 means runtime.NumCPU()
	Progress io.Writer     // nil disables progress lines
	Interval time.Duration // progress period; default 2s
}

// Render traces all rows of fb using a worker pool. Each worker writes only
// the rows it receives, so fb needs no locking. The result is identical to
// eng.Render(scn, fb).
func Render(eng *tracer.Engine, scn *scene.Scene, fb *raster.FrameBuffer, opts Options) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > fb.Height && fb.Height > 0 {
		workers = fb.Height
	}

	total := fb.Height
	var processed atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	var reporter sync.WaitGroup
	if opts.Progress != nil {
		interval := opts.Interval
		if interval <= 0 {
			interval = 2 * time.Second
		}
		reporter.Add(1)
		go func() {
			defer reporter.Done()
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Fprintf(opts.Progress, "  [%d/%d] %.1f rows/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	rowChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rowChan {
				eng.RenderRow(scn, fb, y)
				processed.Add(1)
			}
		}()
	}

	// Send work
	for y := 0; y < fb.Height; y++ {
		rowChan <- y
	}
	close(rowChan)

	wg.Wait()
	close(done)
	reporter.Wait()
}
