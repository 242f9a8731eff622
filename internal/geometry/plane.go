package geometry

import (
	"whitted-raytracer/internal/mathutil"
	"whitted-raytracer/internal/surface"
)

// Plane is the set of points p with Norm·p + Offset = 0.
// It is one-sided: only rays travelling against Norm can hit it.
type Plane struct {
	Norm    mathutil.Vec3
	Offset  float64
	surface surface.Surface
}

func NewPlane(norm mathutil.Vec3, offset float64, s surface.Surface) *Plane {
	return &Plane{
		Norm:    norm,
		Offset:  offset,
		surface: s,
	}
}

// Intersect rejects rays moving with the normal and rays parallel to the
// plane (denom == 0).
func (p *Plane) Intersect(ray mathutil.Ray) (float64, bool) {
	denom := p.Norm.Dot(ray.Dir)
	if denom >= 0 {
		return 0, false
	}
	return (p.Norm.Dot(ray.Start) + p.Offset) / -denom, true
}

func (p *Plane) Normal(mathutil.Vec3) mathutil.Vec3 {
	return p.Norm
}

func (p *Plane) Surface() surface.Surface {
	return p.surface
}
