package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"

	"whitted-raytracer/internal/imageio"
	"whitted-raytracer/internal/tracer"
)

// Defaults for render settings.
const (
	DefaultWidth  = 500
	DefaultHeight = 500
	DefaultOutput = "raytracer.bmp"
)

// Config holds all configurable render settings and output paths.
type Config struct {
	// Render settings
	Width    int `json:"width"`
	Height   int `json:"height"`
	MaxDepth int `json:"max_depth"` // 0 means tracer.DefaultMaxDepth
	Workers  int `json:"workers"`
	Repeat   int `json:"repeat"`

	// Output
	Output      string `json:"output"`
	Format      string `json:"format"`
	PreviewSize int    `json:"preview_size"`
	Report      string `json:"report"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width       int
	Height      int
	MaxDepth    int
	Workers     int
	Repeat      int
	Output      string
	Format      string
	PreviewSize int
	Report      string
}

// Resolve applies non-zero CLI flags over the file values, then fills in
// defaults for anything still unset.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.MaxDepth > 0 {
		c.MaxDepth = flags.MaxDepth
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Repeat > 0 {
		c.Repeat = flags.Repeat
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.PreviewSize > 0 {
		c.PreviewSize = flags.PreviewSize
	}
	if flags.Report != "" {
		c.Report = flags.Report
	}

	// Defaults
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = tracer.DefaultMaxDepth
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Repeat <= 0 {
		c.Repeat = 1
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Format == "" {
		c.Format = imageio.FormatFromPath(c.Output)
	}
	if c.Format == "" {
		c.Format = imageio.FormatBMP
	}
}

// Validate reports settings that cannot be rendered.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("config: negative max_depth %d", c.MaxDepth)
	}
	if !imageio.ValidFormat(c.Format) {
		return fmt.Errorf("config: unknown format %q (want one of %v)", c.Format, imageio.Formats)
	}
	if c.PreviewSize < 0 {
		return fmt.Errorf("config: negative preview_size %d", c.PreviewSize)
	}
	return nil
}

// PreviewPath returns where the preview image goes: next to Output with a
// ".preview" suffix before the extension.
func (c *Config) PreviewPath() string {
	ext := "." + c.Format
	return strings.TrimSuffix(c.Output, ext) + ".preview" + ext
}
