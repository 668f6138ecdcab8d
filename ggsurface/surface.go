// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggsurface

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ring"
)

// ErrNotStarted is returned when drawing before Begin.
var ErrNotStarted = errors.New("ggsurface: Begin has not been called")

// defaultFont loads Go Regular once per process.
var defaultFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// Option configures a Surface.
type Option func(*Surface)

// WithScale sets the number of pixels per scene unit. Values <= 0 are
// ignored.
func WithScale(scale float64) Option {
	return func(s *Surface) {
		if scale > 0 {
			s.scale = scale
		}
	}
}

// WithClearColor fills the canvas with c on Begin. The default leaves it
// transparent.
func WithClearColor(c ring.Color) Option {
	return func(s *Surface) {
		s.clear = c
	}
}

// WithFontSource sets the font used for labels.
func WithFontSource(src *text.FontSource) Option {
	return func(s *Surface) {
		s.font = src
	}
}

// Surface is a ring.Surface backed by a gg.Context.
type Surface struct {
	dc    *gg.Context
	scale float64
	clear ring.Color
	font  *text.FontSource
	faces map[float64]text.Face
}

var _ ring.Surface = (*Surface)(nil)

// New creates a surface. The canvas is allocated on Begin.
func New(opts ...Option) *Surface {
	s := &Surface{
		scale: 1,
		faces: make(map[float64]text.Face),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scale returns the pixels per scene unit.
func (s *Surface) Scale() float64 {
	return s.scale
}

// Context returns the underlying gg context, or nil before Begin.
func (s *Surface) Context() *gg.Context {
	return s.dc
}

// Begin implements ring.Surface.
func (s *Surface) Begin(width, height float64) error {
	w := int(math.Ceil(width * s.scale))
	h := int(math.Ceil(height * s.scale))
	if w <= 0 || h <= 0 {
		return fmt.Errorf("ggsurface: invalid canvas size %gx%g", width, height)
	}

	if s.dc != nil && s.dc.Width() == w && s.dc.Height() == h {
		s.dc.ClearPath()
		s.dc.Clear()
	} else {
		if s.dc != nil {
			_ = s.dc.Close()
		}
		s.dc = gg.NewContext(w, h)
	}
	if !s.clear.IsZero() {
		s.dc.ClearWithColor(toRGBA(s.clear))
	}
	ring.Logger().Debug("ggsurface: begin", "width", w, "height", h, "scale", s.scale)
	return nil
}

// Stroke implements ring.Surface.
func (s *Surface) Stroke(path ring.ArcPath, style ring.Style, t ring.Transform) error {
	if s.dc == nil {
		return ErrNotStarted
	}
	if !s.appendPath(path, t) {
		return nil
	}
	c := style.EffectiveColor()
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.SetLineWidth(style.Width * s.scale)
	s.dc.SetLineCap(lineCap(style.Cap))
	if err := s.dc.Stroke(); err != nil {
		return fmt.Errorf("ggsurface: stroke: %w", err)
	}
	return nil
}

// Fill implements ring.Surface.
func (s *Surface) Fill(path ring.ArcPath, style ring.Style, t ring.Transform) error {
	if s.dc == nil {
		return ErrNotStarted
	}
	if !s.appendPath(path, t) {
		return nil
	}
	c := style.EffectiveColor()
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.SetFillRule(gg.FillRuleNonZero)
	if err := s.dc.Fill(); err != nil {
		return fmt.Errorf("ggsurface: fill: %w", err)
	}
	return nil
}

// appendPath replaces the current gg path with path mapped through t and
// scaled. It reports false when nothing drawable was added.
func (s *Surface) appendPath(path ring.ArcPath, t ring.Transform) bool {
	s.dc.ClearPath()
	drawn := false
	for _, in := range t.ApplyPath(path) {
		if in.Verb == ring.VerbMoveTo {
			s.dc.MoveTo(in.Point.X*s.scale, in.Point.Y*s.scale)
			continue
		}
		from, to, ok := in.Angles()
		if !ok || to-from <= 0 || math.IsNaN(to-from) {
			continue
		}
		// gg normalizes to a single turn; anything beyond is redundant.
		full := to-from >= 2*math.Pi-1e-9
		if full {
			to = from + 2*math.Pi
		}
		s.dc.DrawArc(in.Point.X*s.scale, in.Point.Y*s.scale, in.Radius*s.scale, from, to)
		if full {
			s.dc.ClosePath()
		}
		drawn = true
	}
	if !drawn {
		s.dc.ClearPath()
	}
	return drawn
}

// DrawLabel implements ring.Surface.
func (s *Surface) DrawLabel(l ring.Label) error {
	if s.dc == nil {
		return ErrNotStarted
	}
	valueFace, err := s.face(l.FontSize)
	if err != nil {
		ring.Logger().Warn("ggsurface: label skipped", "err", err)
		return nil
	}

	var suffix text.Face
	var suffixW float64
	if l.Suffix != "" {
		suffix, _ = s.face(l.SuffixSize)
		s.dc.SetFont(suffix)
		suffixW, _ = s.dc.MeasureString(l.Suffix)
	}
	s.dc.SetFont(valueFace)
	mainW, _ := s.dc.MeasureString(l.Text)

	x := l.At.X*s.scale - (mainW+suffixW)/2
	y := l.At.Y * s.scale

	c := l.Color
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.DrawStringAnchored(l.Text, x, y, 0, 0.5)

	if suffix != nil {
		c = l.SuffixColor
		if c.IsZero() {
			c = l.Color
		}
		s.dc.SetFont(suffix)
		s.dc.SetRGBA(c.R, c.G, c.B, c.A)
		s.dc.DrawStringAnchored(l.Suffix, x+mainW, y-l.SuffixRaise*s.scale/2, 0, 0.5)
	}
	return nil
}

// face returns a cached face for size scene units.
func (s *Surface) face(size float64) (text.Face, error) {
	if size <= 0 {
		size = ring.LabelFontSize
	}
	px := size * s.scale
	if f, ok := s.faces[px]; ok {
		return f, nil
	}
	src := s.font
	if src == nil {
		var err error
		if src, err = defaultFont(); err != nil {
			return nil, fmt.Errorf("ggsurface: load default font: %w", err)
		}
	}
	f := src.Face(px)
	s.faces[px] = f
	return f, nil
}

// End implements ring.Surface.
func (s *Surface) End() error {
	if s.dc == nil {
		return ErrNotStarted
	}
	if err := s.dc.FlushGPU(); err != nil {
		return fmt.Errorf("ggsurface: flush: %w", err)
	}
	return nil
}

// Image returns the rendered canvas, or nil before Begin.
func (s *Surface) Image() image.Image {
	if s.dc == nil {
		return nil
	}
	return s.dc.Image()
}

// SavePNG writes the canvas to a PNG file.
func (s *Surface) SavePNG(path string) error {
	if s.dc == nil {
		return ErrNotStarted
	}
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("ggsurface: save %s: %w", path, err)
	}
	ring.Logger().Info("ggsurface: wrote png", "path", path, "width", s.dc.Width(), "height", s.dc.Height())
	return nil
}

// EncodePNG writes the canvas as PNG to w.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.dc == nil {
		return ErrNotStarted
	}
	return s.dc.EncodePNG(w)
}

// Close releases the canvas. Close is idempotent.
func (s *Surface) Close() error {
	if s.dc == nil {
		return nil
	}
	err := s.dc.Close()
	s.dc = nil
	return err
}

func toRGBA(c ring.Color) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func lineCap(c ring.LineCap) gg.LineCap {
	switch c {
	case ring.LineCapRound:
		return gg.LineCapRound
	case ring.LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}
