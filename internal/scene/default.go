package scene

import (
	"whitted-raytracer/internal/geometry"
	"whitted-raytracer/internal/mathutil"
	"whitted-raytracer/internal/surface"
)

// Default returns the fixed demo scene: a checkerboard floor, two shiny
// spheres and four colored lights.
func Default() *Scene {
	return &Scene{
		Things: []geometry.Thing{
			geometry.NewPlane(mathutil.Vec3{0.0, 1.0, 0.0}, 0.0, surface.CheckerboardSurface),
			geometry.NewSphere(mathutil.Vec3{0.0, 1.0, -0.25}, 1.0, surface.ShinySurface),
			geometry.NewSphere(mathutil.Vec3{-1.0, 0.5, 1.5}, 0.5, surface.ShinySurface),
		},
		Lights: []Light{
			{Pos: mathutil.Vec3{-2.0, 2.5, 0.0}, Color: mathutil.Color{R: 0.49, G: 0.07, B: 0.07}},
			{Pos: mathutil.Vec3{1.5, 2.5, 1.5}, Color: mathutil.Color{R: 0.07, G: 0.07, B: 0.49}},
			{Pos: mathutil.Vec3{1.5, 2.5, -1.5}, Color: mathutil.Color{R: 0.07, G: 0.49, B: 0.071}},
			{Pos: mathutil.Vec3{0.0, 3.5, 0.0}, Color: mathutil.Color{R: 0.21, G: 0.21, B: 0.35}},
		},
		Camera: NewCamera(mathutil.Vec3{3.0, 2.0, 4.0}, mathutil.Vec3{-1.0, 0.5, 0.0}),
	}
}
