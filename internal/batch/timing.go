package batch

import "time"

// Timing holds the wall-clock durations of repeated runs.
type Timing struct {
	Runs []time.Duration
}

// Mean returns the average run duration, or 0 when nothing ran.
func (t Timing) Mean() time.Duration {
	if len(t.Runs) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range t.Runs {
		sum += d
	}
	return sum / time.Duration(len(t.Runs))
}

// Time runs fn n times (at least once) and records each duration.
func Time(n int, fn func()) Timing {
	if n < 1 {
		n = 1
	}
	t := Timing{Runs: make([]time.Duration, 0, n)}
	for i := 0; i < n; i++ {
		start := time.Now()
		fn()
		t.Runs = append(t.Runs, time.Since(start))
	}
	return t
}
