package mathutil

// Color is a linear RGB triple. Channels are unbounded while light is
// accumulated and only clamped when written to a display buffer.
type Color struct {
	R, G, B float64
}

// Named colors shared across the renderer. Never mutated.
var (
	White        = Color{1.0, 1.0, 1.0}
	Grey         = Color{0.5, 0.5, 0.5}
	Black        = Color{0.0, 0.0, 0.0}
	Background   = Black
	DefaultColor = Black
)

func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

func (c Color) Scale(k float64) Color {
	return Color{c.R * k, c.G * k, c.B * k}
}

// Times multiplies component-wise.
func (c Color) Times(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// BGRA converts to an opaque 8-bit pixel in blue, green, red, alpha order.
func (c Color) BGRA() [4]uint8 {
	return [4]uint8{Clamp(c.B), Clamp(c.G), Clamp(c.R), 255}
}

// Clamp maps a channel value to [0, 255], truncating c*255 toward zero.
func Clamp(c float64) uint8 {
	if c <= 0 {
		return 0
	}
	if c >= 1.0 {
		return 255
	}
	return uint8(c * 255)
}
