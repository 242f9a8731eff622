// Package imageio writes rendered frame buffers to image files and reads
// images back for comparison.
package imageio

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"

	"whitted-raytracer/internal/raster"
)

// Supported output formats.
const (
	FormatBMP  = "bmp"
	FormatPNG  = "png"
	FormatWebP = "webp"
	FormatTGA  = "tga"
)

// Formats lists every format Save and Load understand.
var Formats = []string{FormatBMP, FormatPNG, FormatWebP, FormatTGA}

// FormatFromPath returns the format implied by the file extension, or "".
func FormatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return ""
	}
	for _, f := range Formats {
		if ext == f {
			return f
		}
	}
	return ""
}

// ValidFormat reports whether format is one of Formats.
func ValidFormat(format string) bool {
	for _, f := range Formats {
		if format == f {
			return true
		}
	}
	return false
}

// Save writes fb to path in the given format, creating parent directories.
// BMP output is the frame buffer bytes verbatim.
func Save(path string, fb *raster.FrameBuffer, format string) error {
	if format == FormatBMP {
		return writeFile(path, format, func(w io.Writer) error {
			return WriteBMP(w, fb)
		})
	}
	return SaveImage(path, fb.ToNRGBA(), format)
}

// SaveImage writes an arbitrary image (previews, diff visualizations).
func SaveImage(path string, img *image.NRGBA, format string) error {
	return writeFile(path, format, func(w io.Writer) error {
		return Encode(w, img, format)
	})
}

// Encode writes img with the codec for format.
func Encode(w io.Writer, img *image.NRGBA, format string) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	case FormatTGA:
		return tga.Encode(w, img)
	case FormatBMP:
		return WriteBMP(w, fromNRGBA(img))
	default:
		return fmt.Errorf("imageio: unknown format %q", format)
	}
}

func writeFile(path, format string, encode func(w io.Writer) error) error {
	if !ValidFormat(format) {
		return fmt.Errorf("imageio: unknown format %q", format)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("imageio: mkdir %s: %w", filepath.Dir(path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	err = encode(bw)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("imageio: save %s: %w", path, err)
	}
	return nil
}

// fromNRGBA repacks an image into the BGRA frame buffer layout.
func fromNRGBA(img *image.NRGBA) *raster.FrameBuffer {
	b := img.Bounds()
	fb := raster.NewFrameBuffer(b.Dx(), b.Dy())
	for y := 0; y < fb.Height; y++ {
		src := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		dst := fb.RowSlice(y)
		for i := 0; i < len(dst); i += raster.BytesPerPixel {
			dst[i] = src[i+2]
			dst[i+1] = src[i+1]
			dst[i+2] = src[i]
			dst[i+3] = src[i+3]
		}
	}
	return fb
}
