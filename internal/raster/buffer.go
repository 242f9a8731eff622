package raster

import (
	"image"

	"whitted-raytracer/internal/mathutil"
)

// BytesPerPixel is the size of one B, G, R, A pixel.
const BytesPerPixel = 4

// FrameBuffer holds the rendering target as a flat slice for cache locality.
// Pixels are BGRA, row-major, top row first, with no row padding.
type FrameBuffer struct {
	Width  int
	Height int
	Stride int     // bytes per row, Width*4
	Pix    []uint8 // BGRA interleaved, len = W*H*4
}

// NewFrameBuffer allocates a zeroed (transparent black) buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Stride: w * BytesPerPixel,
		Pix:    make([]uint8, w*h*BytesPerPixel),
	}
}

// PixOffset returns the index of the first byte of pixel (x, y).
func (fb *FrameBuffer) PixOffset(x, y int) int {
	return y*fb.Stride + x*BytesPerPixel
}

// SetColor stores c at (x, y) as an opaque clamped pixel.
func (fb *FrameBuffer) SetColor(x, y int, c mathutil.Color) {
	px := c.BGRA()
	copy(fb.Pix[fb.PixOffset(x, y):], px[:])
}

// BGRA returns the stored bytes of pixel (x, y).
func (fb *FrameBuffer) BGRA(x, y int) [4]uint8 {
	i := fb.PixOffset(x, y)
	return [4]uint8{fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2], fb.Pix[i+3]}
}

// RowSlice returns the bytes of row y. Writers of disjoint rows never overlap.
func (fb *FrameBuffer) RowSlice(y int) []uint8 {
	return fb.Pix[y*fb.Stride : (y+1)*fb.Stride]
}

// ToNRGBA copies the buffer into an image for the standard codecs.
func (fb *FrameBuffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		src := fb.RowSlice(y)
		dst := img.Pix[y*img.Stride : y*img.Stride+fb.Width*4]
		for i := 0; i < len(src); i += BytesPerPixel {
			dst[i] = src[i+2]
			dst[i+1] = src[i+1]
			dst[i+2] = src[i]
			dst[i+3] = src[i+3]
		}
	}
	return img
}
