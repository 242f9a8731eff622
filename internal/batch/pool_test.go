package batch

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"whitted-raytracer/internal/raster"
	"whitted-raytracer/internal/scene"
	"whitted-raytracer/internal/tracer"
)

func TestRender_MatchesSerial(t *testing.T) {
	scn := scene.Default()
	eng := tracer.New()

	serial := raster.NewFrameBuffer(64, 48)
	eng.Render(scn, serial)

	for _, workers := range []int{1, 2, 3, 8, 100, 0} {
		fb := raster.NewFrameBuffer(64, 48)
		Render(eng, scn, fb, Options{Workers: workers})
		if !bytes.Equal(fb.Pix, serial.Pix) {
			t.Errorf("workers=%d: parallel output differs from serial render", workers)
		}
	}
}

func TestRender_EmptyBuffer(t *testing.T) {
	fb := raster.NewFrameBuffer(0, 0)
	Render(tracer.New(), scene.Default(), fb, Options{Workers: 4})
	if len(fb.Pix) != 0 {
		t.Errorf("unexpected pixels: %d", len(fb.Pix))
	}
}

// syncBuffer guards a bytes.Buffer written by the progress goroutine.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestRender_ProgressStopsWithRender(t *testing.T) {
	var out syncBuffer
	fb := raster.NewFrameBuffer(32, 32)
	Render(tracer.New(), scene.Default(), fb, Options{
		Workers:  2,
		Progress: &out,
		Interval: time.Millisecond,
	})

	// The reporter has exited once Render returns; nothing more is written.
	before := out.String()
	time.Sleep(10 * time.Millisecond)
	if after := out.String(); after != before {
		t.Errorf("progress written after Render returned")
	}
	for _, line := range strings.Split(strings.TrimSpace(before), "\n") {
		if line != "" && !strings.Contains(line, "rows/sec") {
			t.Errorf("unexpected progress line %q", line)
		}
	}
}
