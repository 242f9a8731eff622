package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Report summarizes one invocation of the renderer.
type Report struct {
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	MaxDepth int       `json:"max_depth"`
	Workers  int       `json:"workers"`
	Format   string    `json:"format"`
	Output   string    `json:"output"`
	Preview  string    `json:"preview,omitempty"`
	MeanMS   float64   `json:"mean_ms"`
	RunsMS   []float64 `json:"runs_ms"`
}

// SetTiming fills the timing fields in milliseconds.
func (r *Report) SetTiming(t Timing) {
	r.MeanMS = millis(t.Mean())
	r.RunsMS = make([]float64, len(t.Runs))
	for i, d := range t.Runs {
		r.RunsMS[i] = millis(d)
	}
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// WriteReport writes the report as indented JSON.
func WriteReport(path string, r Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("report: encode: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("report: mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return nil
}
