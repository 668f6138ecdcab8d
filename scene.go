package ring

import "math"

// Paint selects how a shape is painted.
type Paint int

const (
	// PaintStroke strokes the path outline.
	PaintStroke Paint = iota
	// PaintFill fills the path interior.
	PaintFill
)

// Style describes how a shape is painted.
type Style struct {
	Paint   Paint
	Color   Color
	Opacity float64
	// Width and Cap apply to strokes only.
	Width float64
	Cap   LineCap
}

// EffectiveColor returns the color with the opacity folded into alpha.
func (s Style) EffectiveColor() Color {
	return s.Color.WithOpacity(s.Opacity)
}

// Transform maps shape coordinates onto the surface: a rotation in
// degrees about Origin followed by a translation by Offset.
type Transform struct {
	Rotation float64
	Origin   Point
	Offset   Point
}

// Angle returns the rotation in radians.
func (t Transform) Angle() float64 {
	return Radians(t.Rotation)
}

// Apply maps p onto the surface.
func (t Transform) Apply(p Point) Point {
	if t.Rotation != 0 {
		p = p.RotateAbout(t.Angle(), t.Origin)
	}
	return p.Add(t.Offset)
}

// ApplyArc maps an arc instruction onto the surface. The center is
// transformed and the rotation is added to both absolute angles. A
// relative sweep is rotation invariant and only its start moves.
func (t Transform) ApplyArc(in Instruction) Instruction {
	in.Point = t.Apply(in.Point)
	if in.Verb == VerbMoveTo {
		return in
	}
	a := t.Angle()
	in.Angle1 += a
	if in.Verb == VerbArc {
		in.Angle2 += a
	}
	return in
}

// ApplyPath maps every instruction of p onto the surface.
func (t Transform) ApplyPath(p ArcPath) ArcPath {
	out := make(ArcPath, len(p))
	for i, in := range p {
		out[i] = t.ApplyArc(in)
	}
	return out
}

// Shape is a named path with its paint style.
type Shape struct {
	Name  string
	Path  ArcPath
	Style Style
}

// Group is a set of shapes sharing a transform.
type Group struct {
	Transform Transform
	Shapes    []Shape
}

// Label is positioned text: a value followed by a smaller raised suffix,
// centered as a whole on At.
type Label struct {
	Text        string
	Suffix      string
	At          Point
	Color       Color
	SuffixColor Color
	FontSize    float64
	SuffixSize  float64
	// SuffixRaise lifts the suffix baseline above the text baseline.
	SuffixRaise float64
}

// Scene is the complete drawing of one indicator render.
type Scene struct {
	Width, Height float64
	// Fill is the clamped fill the scene was laid out for.
	Fill   float64
	Center Point
	Radius float64
	Groups []Group
	Labels []Label
}

// Shape returns the first shape with the given name.
func (s *Scene) Shape(name string) (Shape, bool) {
	for _, g := range s.Groups {
		for _, sh := range g.Shapes {
			if sh.Name == name {
				return sh, true
			}
		}
	}
	return Shape{}, false
}

// Bounds returns the integer pixel size needed to hold the scene.
func (s *Scene) Bounds() (w, h int) {
	return int(math.Ceil(s.Width)), int(math.Ceil(s.Height))
}

// Draw paints the scene on a surface.
func (s *Scene) Draw(dst Surface) error {
	if dst == nil {
		return ErrNilSurface
	}
	if err := dst.Begin(s.Width, s.Height); err != nil {
		return err
	}
	for _, g := range s.Groups {
		for _, sh := range g.Shapes {
			var err error
			if sh.Style.Paint == PaintFill {
				err = dst.Fill(sh.Path, sh.Style, g.Transform)
			} else {
				err = dst.Stroke(sh.Path, sh.Style, g.Transform)
			}
			if err != nil {
				return err
			}
		}
	}
	for _, l := range s.Labels {
		if err := dst.DrawLabel(l); err != nil {
			return err
		}
	}
	return dst.End()
}
