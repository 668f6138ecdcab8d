package ring

import (
	"math"
	"testing"
)

func TestSatelliteCirclePathAnchor(t *testing.T) {
	tests := []struct {
		cx, cy, r, offset, angle float64
	}{
		{50, 50, 25, 40, 0},
		{50, 50, 25, 40, 90},
		{75, 75, 30, 45, -37.5},
		{0, 0, 1, 10, 225},
	}

	for _, tt := range tests {
		path, anchor := SatelliteCirclePath(tt.cx, tt.cy, tt.r, tt.offset, tt.angle)
		want := PointOnCircle(tt.cx, tt.cy, tt.offset, tt.angle)
		if anchor != want {
			t.Errorf("anchor = %v, want exactly %v", anchor, want)
		}

		if len(path) != 2 || !path.HasMoveTo() {
			t.Fatalf("path = %v, want MoveTo + Arc", path)
		}
		if path[0].Point != Pt(anchor.X+tt.r, anchor.Y) {
			t.Errorf("MoveTo = %v, want (%v, %v)", path[0].Point, anchor.X+tt.r, anchor.Y)
		}
		arc := path[1]
		if arc.Point != anchor || arc.Radius != tt.r {
			t.Errorf("arc center/radius = %v/%v, want %v/%v", arc.Point, arc.Radius, anchor, tt.r)
		}
		if arc.Sweep != SweepClockwise || arc.Angle1 != 0 || arc.Angle2 != 2*math.Pi {
			t.Errorf("arc = %+v, want full clockwise sweep", arc)
		}
	}
}
