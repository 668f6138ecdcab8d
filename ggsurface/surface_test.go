// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggsurface

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/gogpu/ring"
)

func pixelAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func diff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func closeTo(got, want color.NRGBA, tol int) bool {
	return diff(got.R, want.R) <= tol && diff(got.G, want.G) <= tol &&
		diff(got.B, want.B) <= tol && diff(got.A, want.A) <= tol
}

func render(t *testing.T, s *Surface, fill float64, opts ...ring.Option) image.Image {
	t.Helper()
	ind, err := ring.New(100, fill, 10, opts...)
	if err != nil {
		t.Fatal(err)
	}
	if err := ind.Render(s); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return s.Image()
}

func TestSurfaceFullRing(t *testing.T) {
	s := New()
	defer s.Close()
	img := render(t, s, 100)

	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("image size = %v, want 100x100", b)
	}

	tint := ring.DefaultTint.NRGBA()
	for _, p := range []image.Point{{50, 5}, {95, 50}, {50, 95}, {5, 50}} {
		if got := pixelAt(img, p.X, p.Y); !closeTo(got, tint, 6) {
			t.Errorf("pixel %v = %v, want tint %v", p, got, tint)
		}
	}
	if got := pixelAt(img, 50, 50); got.A != 0 {
		t.Errorf("center pixel = %v, want transparent", got)
	}
}

func TestSurfaceQuarterRing(t *testing.T) {
	for _, pl := range []ring.Platform{ring.PlatformIOS, ring.PlatformAndroid} {
		t.Run(pl.String(), func(t *testing.T) {
			s := New()
			defer s.Close()
			img := render(t, s, 25, ring.WithPlatform(pl))

			// 12 o'clock to 3 o'clock, sampled at 1:30.
			x := 50 + int(45*math.Cos(-math.Pi/4))
			y := 50 + int(45*math.Sin(-math.Pi/4))
			if got := pixelAt(img, x, y); !closeTo(got, ring.DefaultTint.NRGBA(), 6) {
				t.Errorf("pixel (%d, %d) = %v, want tint", x, y, got)
			}

			// Background only: translucent.
			for _, p := range []image.Point{{50, 95}, {5, 50}} {
				got := pixelAt(img, p.X, p.Y)
				if got.A == 0 || got.A > 64 {
					t.Errorf("pixel %v alpha = %d, want faint background", p, got.A)
				}
			}
		})
	}
}

func TestSurfaceConventionsMatch(t *testing.T) {
	a, b := New(), New()
	defer a.Close()
	defer b.Close()
	imgA := render(t, a, 37, ring.WithPlatform(ring.PlatformIOS), ring.WithRotation(20))
	imgB := render(t, b, 37, ring.WithPlatform(ring.PlatformAndroid), ring.WithRotation(20))

	for y := 0; y < 100; y += 7 {
		for x := 0; x < 100; x += 7 {
			if pa, pb := pixelAt(imgA, x, y), pixelAt(imgB, x, y); !closeTo(pa, pb, 2) {
				t.Fatalf("pixel (%d, %d): ios %v != android %v", x, y, pa, pb)
			}
		}
	}
}

func TestSurfaceEmptyRing(t *testing.T) {
	s := New()
	defer s.Close()
	img := render(t, s, 0.005)

	// Only the faint background ring is painted.
	if got := pixelAt(img, 50, 5); got.A > 64 {
		t.Errorf("pixel (50, 5) = %v, want faint background", got)
	}
}

func TestSurfaceSatellite(t *testing.T) {
	s := New()
	defer s.Close()
	img := render(t, s, 25, ring.WithSmallCircle(true))

	if b := img.Bounds(); b.Dx() != 150 {
		t.Fatalf("image width = %d, want 150", b.Dx())
	}
	// Anchor at (120, 75); sample below the label.
	got := pixelAt(img, 120, 97)
	if !closeTo(got, ring.DefaultBackground.NRGBA(), 6) {
		t.Errorf("satellite pixel = %v, want %v", got, ring.DefaultBackground.NRGBA())
	}
}

func TestSurfaceScaleAndClear(t *testing.T) {
	white := ring.MustHex("#fff")
	s := New(WithScale(2), WithClearColor(white))
	defer s.Close()
	img := render(t, s, 10)

	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Fatalf("image size = %v, want 200x200", b)
	}
	if got := pixelAt(img, 100, 100); !closeTo(got, white.NRGBA(), 1) {
		t.Errorf("center pixel = %v, want white", got)
	}
	if s.Scale() != 2 {
		t.Errorf("Scale() = %v", s.Scale())
	}
}

func TestSurfaceReuse(t *testing.T) {
	s := New()
	defer s.Close()
	render(t, s, 100)
	dc := s.Context()
	img := render(t, s, 0.005)

	if s.Context() != dc {
		t.Error("same-size render should reuse the context")
	}
	if got := pixelAt(img, 50, 5); got.A > 64 {
		t.Errorf("previous render leaked: %v", got)
	}
}

func TestSurfaceEncodePNG(t *testing.T) {
	s := New()
	defer s.Close()
	render(t, s, 50)

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 100 {
		t.Errorf("decoded width = %d", img.Bounds().Dx())
	}
}

func TestSurfaceNotStarted(t *testing.T) {
	s := New()
	if err := s.Stroke(nil, ring.Style{}, ring.Transform{}); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Stroke before Begin = %v", err)
	}
	if err := s.End(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("End before Begin = %v", err)
	}
	if s.Image() != nil {
		t.Error("Image before Begin should be nil")
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close = %v", err)
	}
}

func TestSurfaceInvalidSize(t *testing.T) {
	s := New()
	if err := s.Begin(0, 10); err == nil {
		t.Error("Begin(0, 10) should fail")
	}
}
