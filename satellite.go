package ring

import "math"

// SatelliteCirclePath returns a full circle of radius r whose center lies
// at angleDegrees on the circle of radius offsetRadius around (cx, cy).
//
// The anchor (the satellite center) is returned alongside the path so
// callers can position overlays on it. The path always uses the MoveArc
// shape: a MoveTo to the angle-0 point followed by a 0 to 2π arc.
func SatelliteCirclePath(cx, cy, r, offsetRadius, angleDegrees float64) (ArcPath, Point) {
	anchor := PointOnCircle(cx, cy, offsetRadius, angleDegrees)
	path := ArcPath{
		{Verb: VerbMoveTo, Point: Pt(anchor.X+r, anchor.Y)},
		{
			Verb:   VerbArc,
			Point:  anchor,
			Radius: r,
			Angle1: 0,
			Angle2: 2 * math.Pi,
			Sweep:  SweepClockwise,
		},
	}
	return path, anchor
}
