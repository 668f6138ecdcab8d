// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package termsurface previews ring scenes in a terminal.
//
// Shapes are rasterized by ggsurface at one pixel per half cell over an
// opaque backdrop. The resulting image is sampled into cells where each
// cell stacks two square pixels with the upper half block glyph. Labels
// are placed as plain text cells. Colors are emitted through lipgloss,
// which degrades them to the terminal's color profile.
package termsurface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/ring"
	"github.com/gogpu/ring/ggsurface"
)

// ErrNotStarted is returned when drawing before Begin.
var ErrNotStarted = errors.New("termsurface: Begin has not been called")

const (
	upperHalf = "▀"
	lowerHalf = "▄"
)

// Option configures a Surface.
type Option func(*Surface)

// WithBackdrop sets the color the scene is rasterized over. Pixels equal
// to the backdrop are left blank. It should match the terminal
// background; its alpha is ignored. Default is black.
func WithBackdrop(c ring.Color) Option {
	return func(s *Surface) {
		c.A = 1
		s.backdrop = c
	}
}

type placedLabel struct {
	col, row int
	text     string
	color    ring.Color
}

// Surface is a ring.Surface rendering to terminal cells.
type Surface struct {
	cols     int
	backdrop ring.Color

	raster *ggsurface.Surface
	scale  float64
	img    image.Image
	labels []placedLabel
	out    string
}

var _ ring.Surface = (*Surface)(nil)

// New creates a surface that renders scenes cols cells wide.
func New(cols int, opts ...Option) *Surface {
	s := &Surface{
		cols:     max(cols, 1),
		backdrop: ring.Color{A: 1},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Begin implements ring.Surface.
func (s *Surface) Begin(width, height float64) error {
	if !(width > 0) || !(height > 0) {
		return errors.New("termsurface: invalid canvas size")
	}
	scale := float64(s.cols) / width
	if s.raster == nil || s.raster.Scale() != scale {
		if s.raster != nil {
			_ = s.raster.Close()
		}
		s.raster = ggsurface.New(ggsurface.WithScale(scale), ggsurface.WithClearColor(s.backdrop))
	}
	if err := s.raster.Begin(width, height); err != nil {
		return fmt.Errorf("termsurface: %w", err)
	}
	s.scale = scale
	s.img = nil
	s.labels = s.labels[:0]
	s.out = ""
	ring.Logger().Debug("termsurface: begin", "cols", s.cols, "scale", scale)
	return nil
}

// Stroke implements ring.Surface.
func (s *Surface) Stroke(path ring.ArcPath, style ring.Style, t ring.Transform) error {
	if s.raster == nil {
		return ErrNotStarted
	}
	return s.raster.Stroke(path, style, t)
}

// Fill implements ring.Surface.
func (s *Surface) Fill(path ring.ArcPath, style ring.Style, t ring.Transform) error {
	if s.raster == nil {
		return ErrNotStarted
	}
	return s.raster.Fill(path, style, t)
}

// DrawLabel implements ring.Surface.
// Glyphs are too small to rasterize at cell resolution, so the label
// text is written into cells instead.
func (s *Surface) DrawLabel(l ring.Label) error {
	if s.raster == nil {
		return ErrNotStarted
	}
	txt := l.Text + l.Suffix
	n := utf8.RuneCountInString(txt)
	s.labels = append(s.labels, placedLabel{
		col:   int(math.Round(l.At.X*s.scale - float64(n)/2)),
		row:   int(l.At.Y * s.scale / 2),
		text:  txt,
		color: l.Color,
	})
	return nil
}

// End implements ring.Surface.
func (s *Surface) End() error {
	if s.raster == nil {
		return ErrNotStarted
	}
	if err := s.raster.End(); err != nil {
		return fmt.Errorf("termsurface: %w", err)
	}
	s.img = s.raster.Image()
	s.out = s.render()
	return nil
}

// String returns the last completed render.
func (s *Surface) String() string {
	return s.out
}

// Size returns the grid size in cells of the last render.
func (s *Surface) Size() (cols, rows int) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), (b.Dy() + 1) / 2
}

// At returns the pixel at (x, y) of the last render. Pixels are square;
// each cell holds two rows. Pixels outside the image read as the backdrop.
func (s *Surface) At(x, y int) ring.Color {
	if s.img == nil {
		return ring.Color{}
	}
	b := s.img.Bounds()
	if !image.Pt(x, y).In(b) {
		return s.backdrop
	}
	n := color.NRGBAModel.Convert(s.img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
	return ring.Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// blank reports whether c shows only the backdrop.
func (s *Surface) blank(c ring.Color) bool {
	return c.NRGBA() == s.backdrop.NRGBA()
}

func (s *Surface) render() string {
	cols, rows := s.Size()
	grid := make([][]string, rows)
	for row := range grid {
		grid[row] = make([]string, cols)
		for x := 0; x < cols; x++ {
			grid[row][x] = s.cell(s.At(x, 2*row), s.At(x, 2*row+1))
		}
	}

	for _, l := range s.labels {
		if l.row < 0 || l.row >= rows {
			continue
		}
		x := l.col
		for _, r := range l.text {
			if x >= 0 && x < cols {
				st := lipgloss.NewStyle().Foreground(termColor(l.color))
				if bg := s.At(x, 2*l.row); !s.blank(bg) {
					st = st.Background(termColor(bg))
				}
				grid[l.row][x] = st.Render(string(r))
			}
			x++
		}
	}

	var sb strings.Builder
	for row, cells := range grid {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range cells {
			sb.WriteString(c)
		}
	}
	return sb.String()
}

func (s *Surface) cell(top, bottom ring.Color) string {
	switch {
	case !s.blank(top) && !s.blank(bottom):
		return lipgloss.NewStyle().
			Foreground(termColor(top)).
			Background(termColor(bottom)).
			Render(upperHalf)
	case !s.blank(top):
		return lipgloss.NewStyle().Foreground(termColor(top)).Render(upperHalf)
	case !s.blank(bottom):
		return lipgloss.NewStyle().Foreground(termColor(bottom)).Render(lowerHalf)
	default:
		return " "
	}
}

// termColor drops alpha; terminals have no translucent cells.
func termColor(c ring.Color) lipgloss.Color {
	c.A = 1
	return lipgloss.Color(c.Hex())
}
