// Package surface maps world positions to material properties.
package surface

import (
	"math"

	"whitted-raytracer/internal/mathutil"
)

// Properties describe how a surface point responds to light.
type Properties struct {
	Diffuse   mathutil.Color
	Specular  mathutil.Color
	Reflect   float64 // fraction of reflected light kept, 0..1
	Roughness float64 // Phong exponent
}

// Surface returns the material properties at a world position.
type Surface interface {
	At(pos mathutil.Vec3) Properties
}

// Shared instances; things reference these rather than owning a copy.
var (
	ShinySurface        Surface = Shiny{}
	CheckerboardSurface Surface = Checkerboard{}
)

// Shiny is a position-invariant glossy white surface.
type Shiny struct{}

func (Shiny) At(mathutil.Vec3) Properties {
	return Properties{
		Diffuse:   mathutil.White,
		Specular:  mathutil.Grey,
		Reflect:   0.7,
		Roughness: 250,
	}
}

// Checkerboard alternates white and black unit squares in the XZ plane.
type Checkerboard struct{}

func (Checkerboard) At(pos mathutil.Vec3) Properties {
	p := Properties{
		Diffuse:   mathutil.Black,
		Specular:  mathutil.White,
		Reflect:   0.7,
		Roughness: 150,
	}
	if oddSquare(pos) {
		p.Diffuse = mathutil.White
		p.Reflect = 0.1
	}
	return p
}

func oddSquare(pos mathutil.Vec3) bool {
	parity := int(math.Floor(pos[0]) + math.Floor(pos[2]))
	return parity%2 != 0
}
