package ring

import (
	"fmt"
	"strings"
)

// Convention builds arc paths in the shape a drawing back-end expects.
//
// Implementations must be stateless.
type Convention interface {
	// Name returns a short identifier for logs and dumps.
	Name() string

	// Arc returns a path for the arc of radius r centered at (cx, cy)
	// spanning startDegree to endDegree.
	Arc(cx, cy, r, startDegree, endDegree float64) ArcPath
}

// MoveArc is the convention of back-ends whose arc primitive takes an
// absolute start and end angle and continues from the current point.
// The path starts with a MoveTo to the angle-0 point of the circle.
type MoveArc struct{}

// Name implements Convention.
func (MoveArc) Name() string { return "move-arc" }

// Arc implements Convention.
func (MoveArc) Arc(cx, cy, r, startDegree, endDegree float64) ArcPath {
	return ArcPath{
		{Verb: VerbMoveTo, Point: Pt(cx+r, cy)},
		{
			Verb:   VerbArc,
			Point:  Pt(cx, cy),
			Radius: r,
			Angle1: Radians(startDegree),
			Angle2: Radians(endDegree),
			Sweep:  SweepClockwise,
		},
	}
}

// RelativeSweep is the convention of back-ends that cannot draw arbitrary
// circle segments and only offer a self-contained arc with a relative
// sweep angle. No MoveTo is emitted.
type RelativeSweep struct{}

// Name implements Convention.
func (RelativeSweep) Name() string { return "relative-sweep" }

// Arc implements Convention.
func (RelativeSweep) Arc(cx, cy, r, startDegree, endDegree float64) ArcPath {
	return ArcPath{
		{
			Verb:   VerbArcSweep,
			Point:  Pt(cx, cy),
			Radius: r,
			Angle1: Radians(startDegree),
			Angle2: Radians(startDegree - endDegree),
			Sweep:  SweepCounterClockwise,
		},
	}
}

// ArcPathFor builds the arc path for the given convention.
// A nil convention falls back to MoveArc.
func ArcPathFor(cx, cy, r, startDegree, endDegree float64, c Convention) ArcPath {
	if c == nil {
		c = MoveArc{}
	}
	return c.Arc(cx, cy, r, startDegree, endDegree)
}

// Platform selects the arc convention of a drawing back-end family.
type Platform int

const (
	// PlatformIOS selects MoveArc.
	PlatformIOS Platform = iota
	// PlatformAndroid selects RelativeSweep.
	PlatformAndroid
)

// Convention returns the arc convention used by the platform family.
func (p Platform) Convention() Convention {
	if p == PlatformAndroid {
		return RelativeSweep{}
	}
	return MoveArc{}
}

// String returns the platform name.
func (p Platform) String() string {
	switch p {
	case PlatformIOS:
		return "ios"
	case PlatformAndroid:
		return "android"
	default:
		return fmt.Sprintf("Platform(%d)", int(p))
	}
}

// ParsePlatform parses a platform name. Matching is case-insensitive.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ios", "":
		return PlatformIOS, nil
	case "android":
		return PlatformAndroid, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Platform) UnmarshalText(text []byte) error {
	v, err := ParsePlatform(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
