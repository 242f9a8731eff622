package scene

import (
	"testing"

	"whitted-raytracer/internal/geometry"
	"whitted-raytracer/internal/surface"
)

func TestDefault_Contents(t *testing.T) {
	s := Default()

	if len(s.Things) != 3 {
		t.Fatalf("things: got %d, want 3", len(s.Things))
	}
	if len(s.Lights) != 4 {
		t.Fatalf("lights: got %d, want 4", len(s.Lights))
	}

	plane, ok := s.Things[0].(*geometry.Plane)
	if !ok {
		t.Fatalf("first thing should be the ground plane, got %T", s.Things[0])
	}
	if plane.Surface() != surface.CheckerboardSurface {
		t.Errorf("ground should use the checkerboard surface")
	}

	for _, th := range s.Things[1:] {
		sp, ok := th.(*geometry.Sphere)
		if !ok {
			t.Fatalf("expected sphere, got %T", th)
		}
		if sp.Surface() != surface.ShinySurface {
			t.Errorf("sphere at %v should share the shiny surface", sp.Center)
		}
	}

	if s.Camera.Pos[0] != 3 || s.Camera.Pos[1] != 2 || s.Camera.Pos[2] != 4 {
		t.Errorf("camera position: %v", s.Camera.Pos)
	}
}
