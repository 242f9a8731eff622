package surface

import (
	"testing"

	"whitted-raytracer/internal/mathutil"
)

func TestShiny_PositionInvariant(t *testing.T) {
	want := Properties{
		Diffuse:   mathutil.White,
		Specular:  mathutil.Grey,
		Reflect:   0.7,
		Roughness: 250,
	}
	for _, pos := range []mathutil.Vec3{{0, 0, 0}, {1.5, -3, 7}, {-100, 5, 0.25}} {
		if got := ShinySurface.At(pos); got != want {
			t.Errorf("At(%v) = %+v, want %+v", pos, got, want)
		}
	}
}

func TestCheckerboard_Parity(t *testing.T) {
	tests := []struct {
		name    string
		pos     mathutil.Vec3
		odd     bool
		reflect float64
	}{
		{"origin square is even", mathutil.Vec3{0.5, 0, 0.5}, false, 0.7},
		{"x neighbour is odd", mathutil.Vec3{1.5, 0, 0.5}, true, 0.1},
		{"z neighbour is odd", mathutil.Vec3{0.5, 0, 1.5}, true, 0.1},
		{"diagonal is even", mathutil.Vec3{1.5, 0, 1.5}, false, 0.7},
		{"negative x is odd", mathutil.Vec3{-0.5, 0, 0.5}, true, 0.1},
		{"both negative is even", mathutil.Vec3{-0.5, 0, -0.5}, false, 0.7},
		{"y is ignored", mathutil.Vec3{1.5, 42, 0.5}, true, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := CheckerboardSurface.At(tt.pos)
			wantDiffuse := mathutil.Black
			if tt.odd {
				wantDiffuse = mathutil.White
			}
			if p.Diffuse != wantDiffuse {
				t.Errorf("diffuse: got %v, want %v", p.Diffuse, wantDiffuse)
			}
			if p.Reflect != tt.reflect {
				t.Errorf("reflect: got %v, want %v", p.Reflect, tt.reflect)
			}
			if p.Specular != mathutil.White || p.Roughness != 150 {
				t.Errorf("specular/roughness: got %v/%v", p.Specular, p.Roughness)
			}
		})
	}
}
