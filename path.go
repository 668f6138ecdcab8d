package ring

import (
	"fmt"
	"math"
	"strings"
)

// Verb identifies the kind of a path instruction.
type Verb uint8

const (
	// VerbMoveTo moves the pen without drawing.
	VerbMoveTo Verb = iota
	// VerbArc draws a circular arc from Angle1 to the absolute end angle Angle2.
	VerbArc
	// VerbArcSweep draws a circular arc from Angle1 through the relative
	// sweep Angle2.
	VerbArcSweep
)

// String returns the verb name.
func (v Verb) String() string {
	switch v {
	case VerbMoveTo:
		return "M"
	case VerbArc:
		return "A"
	case VerbArcSweep:
		return "S"
	default:
		return fmt.Sprintf("Verb(%d)", uint8(v))
	}
}

// SweepFlag is the arc traversal direction bit.
type SweepFlag uint8

const (
	// SweepCounterClockwise traverses toward decreasing screen angles.
	SweepCounterClockwise SweepFlag = 0
	// SweepClockwise traverses toward increasing screen angles.
	SweepClockwise SweepFlag = 1
)

// Instruction is a single drawing instruction.
//
// For VerbMoveTo only Point is meaningful. For the arc verbs Point is the
// arc center and the angles are in radians.
type Instruction struct {
	Verb   Verb
	Point  Point
	Radius float64
	Angle1 float64
	Angle2 float64
	Sweep  SweepFlag
}

// Angles resolves an arc instruction into an interval [from, to] with
// to >= from, traversed clockwise on screen.
//
// A relative sweep with flag 0 is measured counter-clockwise, so the
// clockwise extent is -Angle2. The boolean is false for VerbMoveTo.
func (in Instruction) Angles() (from, to float64, ok bool) {
	switch in.Verb {
	case VerbArc:
		if in.Sweep == SweepClockwise {
			from, to = in.Angle1, in.Angle2
		} else {
			from, to = in.Angle2, in.Angle1
		}
	case VerbArcSweep:
		sweep := in.Angle2
		if in.Sweep == SweepCounterClockwise {
			sweep = -sweep
		}
		from, to = in.Angle1, in.Angle1+sweep
		if to < from {
			from, to = to, from
		}
	default:
		return 0, 0, false
	}
	if to < from {
		to += 2 * math.Pi * math.Ceil((from-to)/(2*math.Pi))
	}
	return from, to, true
}

// ArcPath is an ordered list of drawing instructions.
type ArcPath []Instruction

// HasMoveTo reports whether the path begins with a MoveTo.
func (p ArcPath) HasMoveTo() bool {
	return len(p) > 0 && p[0].Verb == VerbMoveTo
}

// Arcs returns the arc instructions of the path.
func (p ArcPath) Arcs() []Instruction {
	arcs := make([]Instruction, 0, len(p))
	for _, in := range p {
		if in.Verb != VerbMoveTo {
			arcs = append(arcs, in)
		}
	}
	return arcs
}

// Extent returns the total clockwise angle in radians swept by the path.
func (p ArcPath) Extent() float64 {
	var total float64
	for _, in := range p {
		if from, to, ok := in.Angles(); ok {
			total += to - from
		}
	}
	return total
}

// String returns the path in a compact textual form, one instruction per
// space-separated group, angles in degrees.
func (p ArcPath) String() string {
	var sb strings.Builder
	for i, in := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch in.Verb {
		case VerbMoveTo:
			fmt.Fprintf(&sb, "M%g,%g", short(in.Point.X), short(in.Point.Y))
		default:
			fmt.Fprintf(&sb, "%s%g,%g,%g,%g,%g,%d", in.Verb,
				short(in.Point.X), short(in.Point.Y), short(in.Radius),
				short(Degrees(in.Angle1)), short(Degrees(in.Angle2)), in.Sweep)
		}
	}
	return sb.String()
}

// short rounds v to six decimals for display.
func short(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
