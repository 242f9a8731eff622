// Package tracer implements recursive Whitted-style ray tracing: closest-hit
// search, direct lighting with hard shadows, and mirror reflection.
package tracer

import (
	"math"

	"whitted-raytracer/internal/geometry"
	"whitted-raytracer/internal/mathutil"
	"whitted-raytracer/internal/scene"
	"whitted-raytracer/internal/surface"
)

const (
	// DefaultMaxDepth is the number of reflection bounces before the
	// flat grey fallback is used.
	DefaultMaxDepth = 5

	// FarAway bounds the closest-hit search.
	FarAway = 1e6
)

// Engine traces rays through a read-only scene. It holds no per-render
// state, so one Engine can be shared by any number of goroutines.
type Engine struct {
	MaxDepth int
}

// New returns an engine with DefaultMaxDepth.
func New() *Engine {
	return &Engine{MaxDepth: DefaultMaxDepth}
}

// ClosestIntersection scans every thing in the scene and returns the nearest
// hit at a non-negative distance below FarAway.
func (e *Engine) ClosestIntersection(scn *scene.Scene, ray mathutil.Ray) (geometry.Intersection, bool) {
	closest := FarAway
	var best geometry.Intersection
	found := false
	for _, thing := range scn.Things {
		dist, ok := thing.Intersect(ray)
		if !ok || dist < 0 || dist >= closest {
			continue
		}
		closest = dist
		best = geometry.Intersection{Thing: thing, Ray: ray, Dist: dist}
		found = true
	}
	return best, found
}

// TraceRay returns the color seen along ray. depth counts the reflection
// bounces already taken.
func (e *Engine) TraceRay(scn *scene.Scene, ray mathutil.Ray, depth int) mathutil.Color {
	isect, ok := e.ClosestIntersection(scn, ray)
	if !ok {
		return mathutil.Background
	}
	return e.shade(scn, isect, depth)
}

func (e *Engine) shade(scn *scene.Scene, isect geometry.Intersection, depth int) mathutil.Color {
	d := isect.Ray.Dir
	pos := isect.Pos()
	normal := isect.Thing.Normal(pos)
	reflectDir := d.Sub(normal.Scale(2 * normal.Dot(d))).Normalize()
	props := isect.Thing.Surface().At(pos)

	natural := mathutil.Background.Add(e.naturalColor(scn, props, pos, normal, reflectDir))

	var reflected mathutil.Color
	if depth >= e.MaxDepth {
		reflected = mathutil.Grey
	} else {
		reflected = e.reflectionColor(scn, props, pos, reflectDir, depth)
	}
	return natural.Add(reflected)
}

func (e *Engine) reflectionColor(scn *scene.Scene, props surface.Properties, pos, reflectDir mathutil.Vec3, depth int) mathutil.Color {
	ray := mathutil.Ray{Start: pos, Dir: reflectDir}
	return e.TraceRay(scn, ray, depth+1).Scale(props.Reflect)
}

// naturalColor sums the diffuse and specular light arriving at pos directly
// from every light that is not occluded.
func (e *Engine) naturalColor(scn *scene.Scene, props surface.Properties, pos, normal, reflectDir mathutil.Vec3) mathutil.Color {
	result := mathutil.DefaultColor
	reflectNorm := reflectDir.Normalize()

	for _, light := range scn.Lights {
		toLight := light.Pos.Sub(pos)
		lightDist := toLight.Len()
		lightDir := toLight.Normalize()

		if e.inShadow(scn, pos, lightDir, lightDist) {
			continue
		}

		diffuse := mathutil.DefaultColor
		if illum := lightDir.Dot(normal); illum > 0 {
			diffuse = light.Color.Scale(illum)
		}
		specular := mathutil.DefaultColor
		if s := lightDir.Dot(reflectNorm); s > 0 {
			specular = light.Color.Scale(math.Pow(s, props.Roughness))
		}

		result = result.
			Add(diffuse.Times(props.Diffuse)).
			Add(specular.Times(props.Specular))
	}
	return result
}

// inShadow reports whether anything lies between pos and a light lightDist
// away. There is no bias on the ray start.
func (e *Engine) inShadow(scn *scene.Scene, pos, lightDir mathutil.Vec3, lightDist float64) bool {
	isect, ok := e.ClosestIntersection(scn, mathutil.Ray{Start: pos, Dir: lightDir})
	return ok && isect.Dist <= lightDist
}
