package ring

import (
	"math"
	"testing"
)

func TestClampFill(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
		want float64
	}{
		{"negative", -5, 0},
		{"zero", 0, 0},
		{"below threshold", 0.005, 0},
		{"just below threshold", 0.0099999, 0},
		{"threshold", 0.01, 0.01},
		{"middle", 42.5, 42.5},
		{"full", 100, 100},
		{"just above full", 100.0001, 100},
		{"overflow", 150, 100},
		{"positive infinity", math.Inf(1), 100},
		{"negative infinity", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampFill(tt.raw); got != tt.want {
				t.Errorf("ClampFill(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestClampFillNaNPassesThrough(t *testing.T) {
	if got := ClampFill(math.NaN()); !math.IsNaN(got) {
		t.Errorf("ClampFill(NaN) = %v, want NaN", got)
	}
}

func TestFillAngle(t *testing.T) {
	tests := []struct {
		fill, want float64
	}{
		{0, 0},
		{25, 90},
		{50, 180},
		{100, 360},
		{150, 360},
		{0.005, 0},
	}
	for _, tt := range tests {
		if got := FillAngle(tt.fill); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("FillAngle(%v) = %v, want %v", tt.fill, got, tt.want)
		}
	}
}
