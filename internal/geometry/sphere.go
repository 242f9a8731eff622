package geometry

import (
	"math"

	"whitted-raytracer/internal/mathutil"
	"whitted-raytracer/internal/surface"
)

type Sphere struct {
	Center  mathutil.Vec3
	Radius2 float64
	surface surface.Surface
}

func NewSphere(center mathutil.Vec3, radius float64, s surface.Surface) *Sphere {
	return &Sphere{
		Center:  center,
		Radius2: radius * radius,
		surface: s,
	}
}

// Intersect returns the near root. Rays pointing away from the centre
// (eo·dir < 0) never hit, even when they start inside the sphere.
// A ray that only grazes the surface (zero discriminant) is a miss.
func (s *Sphere) Intersect(ray mathutil.Ray) (float64, bool) {
	eo := s.Center.Sub(ray.Start)
	v := eo.Dot(ray.Dir)
	if v < 0 {
		return 0, false
	}
	disc := s.Radius2 - (eo.Dot(eo) - v*v)
	if disc <= 0 {
		return 0, false
	}
	return v - math.Sqrt(disc), true
}

func (s *Sphere) Normal(pos mathutil.Vec3) mathutil.Vec3 {
	return pos.Sub(s.Center).Normalize()
}

func (s *Sphere) Surface() surface.Surface {
	return s.surface
}
