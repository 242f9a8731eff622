package mathutil

// Ray is a half-line starting at Start and heading along Dir.
// Camera and reflection rays always carry a normalized Dir.
type Ray struct {
	Start Vec3
	Dir   Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Start.Add(r.Dir.Scale(t))
}
