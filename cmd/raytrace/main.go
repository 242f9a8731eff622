package main

import (
	"flag"
	"fmt"
	"os"

	"whitted-raytracer/internal/batch"
	"whitted-raytracer/internal/config"
	"whitted-raytracer/internal/imageio"
	"whitted-raytracer/internal/postprocess"
	"whitted-raytracer/internal/raster"
	"whitted-raytracer/internal/scene"
	"whitted-raytracer/internal/tracer"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Image width in pixels (default: 500)")
	height := flag.Int("height", 0, "Image height in pixels (default: 500)")
	depth := flag.Int("depth", 0, "Maximum reflection depth (default: 5)")
	workers := flag.Int("workers", 0, "Number of worker goroutines, 1 = serial (default: NumCPU)")
	output := flag.String("output", "", "Output image path (default: raytracer.bmp)")
	format := flag.String("format", "", "Output format: bmp, png, webp, tga (default: from -output)")
	preview := flag.Int("preview", 0, "Also write a preview scaled to fit NxN (default: off)")
	repeat := flag.Int("repeat", 0, "Render N times and report the mean time (default: 1)")
	report := flag.String("report", "", "Write a JSON timing report to this path")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Width:       *width,
		Height:      *height,
		MaxDepth:    *depth,
		Workers:     *workers,
		Repeat:      *repeat,
		Output:      *output,
		Format:      *format,
		PreviewSize: *preview,
		Report:      *report,
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	scn := scene.Default()
	eng := &tracer.Engine{MaxDepth: cfg.MaxDepth}
	fb := raster.NewFrameBuffer(cfg.Width, cfg.Height)

	fmt.Println("Starting")
	fmt.Printf("Image: %dx%d, Depth: %d, Workers: %d\n", cfg.Width, cfg.Height, cfg.MaxDepth, cfg.Workers)
	fmt.Printf("Output: %s (%s)\n", cfg.Output, cfg.Format)
	fmt.Println("------------------------------------------------------------")

	timing := batch.Time(cfg.Repeat, func() {
		if cfg.Workers == 1 {
			eng.Render(scn, fb)
			return
		}
		batch.Render(eng, scn, fb, batch.Options{Workers: cfg.Workers, Progress: os.Stdout})
	})

	fmt.Println("------------------------------------------------------------")
	if cfg.Repeat > 1 {
		fmt.Printf("Runs: %d\n", len(timing.Runs))
	}
	fmt.Printf("Completed in %s\n", timing.Mean())

	if err := imageio.Save(cfg.Output, fb, cfg.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Image: %s\n", cfg.Output)

	rep := batch.Report{
		Width:    cfg.Width,
		Height:   cfg.Height,
		MaxDepth: cfg.MaxDepth,
		Workers:  cfg.Workers,
		Format:   cfg.Format,
		Output:   cfg.Output,
	}
	rep.SetTiming(timing)

	if cfg.PreviewSize > 0 {
		previewPath := cfg.PreviewPath()
		img := postprocess.Preview(fb.ToNRGBA(), cfg.PreviewSize)
		if err := imageio.SaveImage(previewPath, img, cfg.Format); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: preview write failed: %v\n", err)
		} else {
			rep.Preview = previewPath
			fmt.Printf("Preview: %s\n", previewPath)
		}
	}

	if cfg.Report != "" {
		if err := batch.WriteReport(cfg.Report, rep); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: report write failed: %v\n", err)
		} else {
			fmt.Printf("Report: %s\n", cfg.Report)
		}
	}
}
