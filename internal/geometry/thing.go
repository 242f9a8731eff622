// Package geometry holds the scene primitives and their ray intersection tests.
package geometry

import (
	"whitted-raytracer/internal/mathutil"
	"whitted-raytracer/internal/surface"
)

// Thing is a renderable primitive. The set of implementations is closed:
// *Sphere and *Plane.
type Thing interface {
	// Intersect returns the distance along ray to the nearest hit.
	// ok is false when the ray misses; a distance of 0 is a valid hit.
	// The distance can be negative when the hit lies behind ray.Start.
	Intersect(ray mathutil.Ray) (dist float64, ok bool)
	Normal(pos mathutil.Vec3) mathutil.Vec3
	Surface() surface.Surface
}

// Intersection records which thing a ray hit and how far along the ray.
type Intersection struct {
	Thing Thing
	Ray   mathutil.Ray
	Dist  float64
}

// Pos returns the world-space hit point.
func (i Intersection) Pos() mathutil.Vec3 {
	return i.Ray.At(i.Dist)
}
