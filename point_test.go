package ring

import (
	"math"
	"testing"
)

const eps = 1e-9

func pointsClose(a, b Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestPointOnCircle(t *testing.T) {
	tests := []struct {
		name           string
		cx, cy, r, deg float64
		want           Point
	}{
		{"east", 0, 0, 10, 0, Pt(10, 0)},
		{"south", 0, 0, 10, 90, Pt(0, 10)},
		{"west", 0, 0, 10, 180, Pt(-10, 0)},
		{"north", 0, 0, 10, 270, Pt(0, -10)},
		{"offset center", 50, 50, 40, 0, Pt(90, 50)},
		{"negative angle", 0, 0, 10, -90, Pt(0, -10)},
		{"full turn", 5, 5, 2, 360, Pt(7, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointOnCircle(tt.cx, tt.cy, tt.r, tt.deg)
			if !pointsClose(got, tt.want) {
				t.Errorf("PointOnCircle(%v, %v, %v, %v) = %v, want %v",
					tt.cx, tt.cy, tt.r, tt.deg, got, tt.want)
			}
		})
	}
}

func TestPointOnCircleZeroAngleExact(t *testing.T) {
	if got := PointOnCircle(0, 0, 10, 0); got != Pt(10, 0) {
		t.Errorf("PointOnCircle(0, 0, 10, 0) = %v, want exactly (10, 0)", got)
	}
}

func TestPointRotateAbout(t *testing.T) {
	got := Pt(10, 0).RotateAbout(math.Pi/2, Pt(5, 0))
	if !pointsClose(got, Pt(5, 5)) {
		t.Errorf("RotateAbout = %v, want (5, 5)", got)
	}
}

func TestRadiansDegrees(t *testing.T) {
	for _, deg := range []float64{0, 45, 90, 180, 360, -270} {
		if got := Degrees(Radians(deg)); math.Abs(got-deg) > eps {
			t.Errorf("Degrees(Radians(%v)) = %v", deg, got)
		}
	}
}
