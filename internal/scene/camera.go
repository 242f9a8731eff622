package scene

import "whitted-raytracer/internal/mathutil"

// fovScale widens the right/up basis vectors and so the field of view.
const fovScale = 1.5

// Camera is a pinhole camera. Right and Up are scaled to fovScale length.
type Camera struct {
	Pos     mathutil.Vec3
	Forward mathutil.Vec3
	Right   mathutil.Vec3
	Up      mathutil.Vec3
}

// NewCamera builds the camera basis once from a position and look-at target.
func NewCamera(pos, lookAt mathutil.Vec3) Camera {
	down := mathutil.Vec3{0, -1, 0}
	forward := lookAt.Sub(pos).Normalize()
	right := forward.Cross(down).Normalize().Scale(fovScale)
	up := forward.Cross(right).Normalize().Scale(fovScale)
	return Camera{
		Pos:     pos,
		Forward: forward,
		Right:   right,
		Up:      up,
	}
}

// PointDir returns the normalized direction of the primary ray through
// pixel (x, y) of a w×h image. Row 0 is the top of the image.
func (c Camera) PointDir(x, y, w, h int) mathutil.Vec3 {
	fw, fh := float64(w), float64(h)
	rx := (float64(x) - fw/2.0) / 2.0 / fw
	ry := -(float64(y) - fh/2.0) / 2.0 / fh
	return c.Forward.Add(c.Right.Scale(rx)).Add(c.Up.Scale(ry)).Normalize()
}

// PrimaryRay returns the camera ray through pixel (x, y).
func (c Camera) PrimaryRay(x, y, w, h int) mathutil.Ray {
	return mathutil.Ray{Start: c.Pos, Dir: c.PointDir(x, y, w, h)}
}
