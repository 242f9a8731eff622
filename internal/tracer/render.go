package tracer

import (
	"whitted-raytracer/internal/raster"
	"whitted-raytracer/internal/scene"
)

// Render traces every pixel of fb in row-major order on the calling goroutine.
func (e *Engine) Render(scn *scene.Scene, fb *raster.FrameBuffer) {
	for y := 0; y < fb.Height; y++ {
		e.RenderRow(scn, fb, y)
	}
}

// RenderRow traces row y of fb. It writes only to that row.
func (e *Engine) RenderRow(scn *scene.Scene, fb *raster.FrameBuffer, y int) {
	cam := scn.Camera
	for x := 0; x < fb.Width; x++ {
		ray := cam.PrimaryRay(x, y, fb.Width, fb.Height)
		fb.SetColor(x, y, e.TraceRay(scn, ray, 0))
	}
}
