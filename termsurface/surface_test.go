// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package termsurface

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/ring"
)

func render(t *testing.T, s *Surface, fill float64, opts ...ring.Option) {
	t.Helper()
	ind, err := ring.New(100, fill, 20, opts...)
	if err != nil {
		t.Fatal(err)
	}
	if err := ind.Render(s); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
}

// near compares colors at 8-bit precision with a small tolerance for
// rounding in the rasterizer.
func near(a, b ring.Color) bool {
	const tol = 2
	x, y := a.NRGBA(), b.NRGBA()
	d := func(p, q uint8) bool { return int(p)-int(q) <= tol && int(q)-int(p) <= tol }
	return d(x.R, y.R) && d(x.G, y.G) && d(x.B, y.B) && d(x.A, y.A)
}

// dimBackground is the background ring composited over the black backdrop.
func dimBackground() ring.Color {
	bg := ring.DefaultBackground
	return ring.Color{
		R: bg.R * ring.BackgroundOpacity,
		G: bg.G * ring.BackgroundOpacity,
		B: bg.B * ring.BackgroundOpacity,
		A: 1,
	}
}

func TestSurfaceGridSize(t *testing.T) {
	s := New(20)
	render(t, s, 50)

	cols, rows := s.Size()
	if cols != 20 || rows != 10 {
		t.Errorf("Size() = %d, %d; want 20, 10", cols, rows)
	}
	if lines := strings.Split(s.String(), "\n"); len(lines) != 10 {
		t.Errorf("rendered %d lines, want 10", len(lines))
	}
}

func TestSurfaceFullRing(t *testing.T) {
	s := New(20)
	render(t, s, 100)

	// Each pixel spans 5 units; the ring covers radii 30..50.
	for _, p := range [][2]int{{10, 1}, {18, 10}, {10, 18}, {1, 10}} {
		if got := s.At(p[0], p[1]); !near(got, ring.DefaultTint) {
			t.Errorf("pixel %v = %s, want tint", p, got.Hex())
		}
	}
	if got := s.At(10, 10); !near(got, ring.Color{A: 1}) {
		t.Errorf("center pixel = %s, want backdrop", got.Hex())
	}
}

func TestSurfaceHalfRing(t *testing.T) {
	for _, pl := range []ring.Platform{ring.PlatformIOS, ring.PlatformAndroid} {
		t.Run(pl.String(), func(t *testing.T) {
			s := New(20)
			render(t, s, 50, ring.WithPlatform(pl))

			// Clockwise from 12 o'clock: right half is filled.
			if got := s.At(18, 10); !near(got, ring.DefaultTint) {
				t.Errorf("right pixel = %s, want tint", got.Hex())
			}
			if got := s.At(1, 10); !near(got, dimBackground()) {
				t.Errorf("left pixel = %s, want %s", got.Hex(), dimBackground().Hex())
			}
		})
	}
}

func TestSurfaceRoundCap(t *testing.T) {
	butt, round := New(40), New(40)
	render(t, butt, 25)
	render(t, round, 25, ring.WithLineCap(ring.LineCapRound))

	// Just counter-clockwise of the 12 o'clock start, inside the cap disc.
	x, y := 18, 4
	if got := butt.At(x, y); near(got, ring.DefaultTint) {
		t.Errorf("butt cap painted pixel (%d, %d)", x, y)
	}
	if got := round.At(x, y); !near(got, ring.DefaultTint) {
		t.Errorf("round cap missing pixel (%d, %d): %s", x, y, got.Hex())
	}
}

func TestSurfaceBackdrop(t *testing.T) {
	white := ring.MustHex("#ffffff")
	s := New(20, WithBackdrop(white.WithOpacity(0.5)))
	render(t, s, 100)

	if got := s.At(10, 10); !near(got, white) {
		t.Errorf("center pixel = %s, want opaque white backdrop", got.Hex())
	}
	if got := s.At(-1, 0); got != white {
		t.Errorf("out of bounds pixel = %s, want backdrop", got.Hex())
	}
	// The center rows are blank cells.
	lines := strings.Split(s.String(), "\n")
	if mid := lines[5]; !strings.Contains(mid, "  ") {
		t.Errorf("center row has no blank cells: %q", mid)
	}
}

func TestSurfaceLabel(t *testing.T) {
	s := New(30)
	render(t, s, 50, ring.WithSmallCircle(true))

	if !strings.Contains(s.String(), "50%") {
		t.Errorf("label missing from output:\n%s", s.String())
	}
}

func TestSurfaceNotStarted(t *testing.T) {
	s := New(10)
	if err := s.Fill(nil, ring.Style{}, ring.Transform{}); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Fill before Begin = %v", err)
	}
	if err := s.DrawLabel(ring.Label{}); !errors.Is(err, ErrNotStarted) {
		t.Errorf("DrawLabel before Begin = %v", err)
	}
	if s.String() != "" {
		t.Error("String before End should be empty")
	}
	if c, r := s.Size(); c != 0 || r != 0 {
		t.Errorf("Size before End = %d, %d", c, r)
	}
}
