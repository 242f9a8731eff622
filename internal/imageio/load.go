package imageio

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Load reads an image file and returns it as NRGBA. The decoder is chosen
// from the file extension; TGA has no magic number to sniff.
func Load(path string) (*image.NRGBA, error) {
	format := FormatFromPath(path)
	if format == "" {
		return nil, fmt.Errorf("imageio: unknown extension: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(bufio.NewReader(f), format)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}
	return ToNRGBA(img), nil
}

// Decode reads one image in the given format.
func Decode(r io.Reader, format string) (image.Image, error) {
	switch format {
	case FormatBMP:
		return bmp.Decode(r)
	case FormatPNG:
		return png.Decode(r)
	case FormatWebP:
		return nativewebp.Decode(r)
	case FormatTGA:
		return tga.Decode(r)
	default:
		return nil, fmt.Errorf("imageio: unknown format %q", format)
	}
}

// ToNRGBA converts any image to NRGBA format with its origin at (0, 0).
func ToNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
