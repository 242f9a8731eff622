package imageio

import (
	"encoding/binary"
	"fmt"
	"io"

	"whitted-raytracer/internal/raster"
)

const (
	fileHeaderLen = 14
	infoHeaderLen = 40
	biRGB         = 0
	bitsPerPixel  = 32
)

// bmpHeader is BITMAPFILEHEADER followed by BITMAPINFOHEADER, little endian.
type bmpHeader struct {
	Type      [2]byte
	FileSize  uint32
	Reserved1 uint16
	Reserved2 uint16
	OffBits   uint32

	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

// WriteBMP writes fb as an uncompressed 32-bit bitmap. The height field is
// negative so rows are stored top-down, and the BGRA bytes go out verbatim.
func WriteBMP(w io.Writer, fb *raster.FrameBuffer) error {
	imageSize := uint32(fb.Width * fb.Height * raster.BytesPerPixel)
	h := bmpHeader{
		Type:        [2]byte{'B', 'M'},
		OffBits:     fileHeaderLen + infoHeaderLen,
		Size:        infoHeaderLen,
		Width:       int32(fb.Width),
		Height:      -int32(fb.Height),
		Planes:      1,
		BitCount:    bitsPerPixel,
		Compression: biRGB,
		SizeImage:   imageSize,
	}
	h.FileSize = h.OffBits + imageSize

	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("bmp: write header: %w", err)
	}
	if _, err := w.Write(fb.Pix[:imageSize]); err != nil {
		return fmt.Errorf("bmp: write pixels: %w", err)
	}
	return nil
}
