package scene

import (
	"math"
	"testing"

	"whitted-raytracer/internal/mathutil"
)

func nearVec(a, b mathutil.Vec3, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestNewCamera_Basis(t *testing.T) {
	cam := NewCamera(mathutil.Vec3{3, 2, 4}, mathutil.Vec3{-1, 0.5, 0})

	if math.Abs(cam.Forward.Len()-1) > 1e-12 {
		t.Errorf("forward not unit: %v", cam.Forward.Len())
	}
	if math.Abs(cam.Right.Len()-1.5) > 1e-12 || math.Abs(cam.Up.Len()-1.5) > 1e-12 {
		t.Errorf("right/up lengths: %v %v", cam.Right.Len(), cam.Up.Len())
	}
	if math.Abs(cam.Forward.Dot(cam.Right)) > 1e-12 ||
		math.Abs(cam.Forward.Dot(cam.Up)) > 1e-12 ||
		math.Abs(cam.Right.Dot(cam.Up)) > 1e-12 {
		t.Errorf("basis not orthogonal: %+v", cam)
	}
	if cam.Up[1] <= 0 {
		t.Errorf("up should point to +y, got %v", cam.Up)
	}
	if cam.Right[1] != 0 {
		t.Errorf("right should be horizontal, got %v", cam.Right)
	}
}

func TestNewCamera_AxisAligned(t *testing.T) {
	cam := NewCamera(mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0, 0, -1})

	if !nearVec(cam.Forward, mathutil.Vec3{0, 0, -1}, 1e-12) {
		t.Errorf("forward = %v", cam.Forward)
	}
	// forward × down points to -x when looking down -z.
	if !nearVec(cam.Right, mathutil.Vec3{-1.5, 0, 0}, 1e-12) {
		t.Errorf("right = %v", cam.Right)
	}
	if !nearVec(cam.Up, mathutil.Vec3{0, 1.5, 0}, 1e-12) {
		t.Errorf("up = %v", cam.Up)
	}
}

func TestCamera_PointDir(t *testing.T) {
	cam := NewCamera(mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0, 0, -1})

	tests := []struct {
		name string
		x, y int
		want mathutil.Vec3
	}{
		{"centre looks forward", 50, 50, mathutil.Vec3{0, 0, -1}},
		{"top left", 0, 0, mathutil.Vec3{0.375, 0.375, -1}.Normalize()},
		{"right edge", 100, 50, mathutil.Vec3{-0.375, 0, -1}.Normalize()},
		{"bottom row", 50, 100, mathutil.Vec3{0, -0.375, -1}.Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cam.PointDir(tt.x, tt.y, 100, 100)
			if !nearVec(got, tt.want, 1e-12) {
				t.Errorf("PointDir(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
			if math.Abs(got.Len()-1) > 1e-12 {
				t.Errorf("direction not normalized: %v", got.Len())
			}
		})
	}
}

func TestCamera_PrimaryRay(t *testing.T) {
	cam := NewCamera(mathutil.Vec3{1, 2, 3}, mathutil.Vec3{1, 2, 0})
	ray := cam.PrimaryRay(10, 10, 20, 20)
	if ray.Start != cam.Pos {
		t.Errorf("start = %v, want camera position", ray.Start)
	}
	if !nearVec(ray.Dir, mathutil.Vec3{0, 0, -1}, 1e-12) {
		t.Errorf("dir = %v", ray.Dir)
	}
}
