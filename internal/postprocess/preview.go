package postprocess

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Preview scales img to fit inside a size×size box, keeping its aspect
// ratio. Images that already fit are returned unchanged.
func Preview(img *image.NRGBA, size int) *image.NRGBA {
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if size <= 0 || srcW == 0 || srcH == 0 || (srcW <= size && srcH <= size) {
		return img
	}

	scaleF := float64(size) / math.Max(float64(srcW), float64(srcH))
	newW := int(float64(srcW)*scaleF + 0.5)
	newH := int(float64(srcH)*scaleF + 0.5)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	// CatmullRom approximates Lanczos
	dst := image.NewNRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
