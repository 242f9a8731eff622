// Command imagediff compares two rendered images pixel by pixel.
//
// Usage:
//
//	go run ./cmd/imagediff [-out diff.bmp] [-tolerance N] a.bmp b.png
//
// Writes a visualization of the differences (each channel stretched to its
// largest delta) and exits 1 when any channel differs by more than N.
package main

import (
	"flag"
	"fmt"
	"os"

	"whitted-raytracer/internal/imageio"
	"whitted-raytracer/internal/postprocess"
)

func main() {
	out := flag.String("out", "diff.bmp", "Path for the difference image")
	tolerance := flag.Int("tolerance", 0, "Largest per-channel difference still accepted (0-255)")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Usage: imagediff [-out diff.bmp] [-tolerance N] <source> <target>")
		os.Exit(2)
	}
	if *tolerance < 0 || *tolerance > 255 {
		fmt.Fprintf(os.Stderr, "Error: tolerance %d out of range 0-255\n", *tolerance)
		os.Exit(2)
	}

	a, err := imageio.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	b, err := imageio.Load(flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	res, err := postprocess.Diff(a, b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if res.Same() {
		fmt.Println("Images are the same")
		return
	}

	format := imageio.FormatFromPath(*out)
	if format == "" {
		format = imageio.FormatBMP
	}
	if err := imageio.SaveImage(*out, res.Image, format); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: diff image write failed: %v\n", err)
	}

	fmt.Printf("Changes detected: %d out of %d do not match\n", res.Changed, res.Total)
	fmt.Printf("Max delta: R=%d G=%d B=%d\n", res.MaxR, res.MaxG, res.MaxB)

	if !res.Within(uint8(*tolerance)) {
		os.Exit(1)
	}
}
