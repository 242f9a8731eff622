// Package scene describes what gets rendered: things, point lights and a camera.
package scene

import (
	"whitted-raytracer/internal/geometry"
	"whitted-raytracer/internal/mathutil"
)

// Light is a point light. Its color doubles as intensity.
type Light struct {
	Pos   mathutil.Vec3
	Color mathutil.Color
}

// Scene is built once and only read during rendering.
type Scene struct {
	Things []geometry.Thing
	Lights []Light
	Camera Camera
}
