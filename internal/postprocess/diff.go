package postprocess

import (
	"fmt"
	"image"
)

// DiffResult describes how two equally sized images differ.
type DiffResult struct {
	Changed int   // pixels with any RGB difference
	Total   int   // pixels compared
	MaxR    uint8 // largest per-channel differences
	MaxG    uint8
	MaxB    uint8
	Image   *image.NRGBA // |a-b| per channel, stretched so each channel's max is 255
}

// Same reports whether no pixel differs.
func (d DiffResult) Same() bool {
	return d.Changed == 0
}

// Within reports whether every channel difference is at most tol.
func (d DiffResult) Within(tol uint8) bool {
	return d.MaxR <= tol && d.MaxG <= tol && d.MaxB <= tol
}

// Diff compares the RGB channels of a and b pixel by pixel. Alpha is ignored.
func Diff(a, b *image.NRGBA) (DiffResult, error) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return DiffResult{}, fmt.Errorf("diff: image size does not match (%d, %d) != (%d, %d)",
			ab.Dx(), ab.Dy(), bb.Dx(), bb.Dy())
	}

	w, h := ab.Dx(), ab.Dy()
	res := DiffResult{
		Total: w * h,
		Image: image.NewNRGBA(image.Rect(0, 0, w, h)),
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pa := a.Pix[a.PixOffset(ab.Min.X+x, ab.Min.Y+y):]
			pb := b.Pix[b.PixOffset(bb.Min.X+x, bb.Min.Y+y):]
			dr, dg, db := absDiff(pa[0], pb[0]), absDiff(pa[1], pb[1]), absDiff(pa[2], pb[2])

			if dr != 0 || dg != 0 || db != 0 {
				res.Changed++
			}
			res.MaxR = max(res.MaxR, dr)
			res.MaxG = max(res.MaxG, dg)
			res.MaxB = max(res.MaxB, db)

			i := res.Image.PixOffset(x, y)
			res.Image.Pix[i] = dr
			res.Image.Pix[i+1] = dg
			res.Image.Pix[i+2] = db
			res.Image.Pix[i+3] = 255
		}
	}

	// Stretch each channel so faint differences become visible
	for i := 0; i < len(res.Image.Pix); i += 4 {
		res.Image.Pix[i] = stretch(res.Image.Pix[i], res.MaxR)
		res.Image.Pix[i+1] = stretch(res.Image.Pix[i+1], res.MaxG)
		res.Image.Pix[i+2] = stretch(res.Image.Pix[i+2], res.MaxB)
	}

	return res, nil
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func stretch(v, maxV uint8) uint8 {
	if maxV == 0 {
		return v
	}
	return clamp8(float64(v) / float64(maxV) * 255)
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
