package ring

// Surface is the drawing collaborator an indicator paints on.
//
// A render is bracketed by Begin and End. Between them the indicator
// issues Stroke and Fill calls with untransformed paths plus the group
// transform, then DrawLabel calls in surface coordinates. Implementations
// decide how to honor each arc verb; Instruction.Angles resolves both arc
// conventions to a clockwise interval.
//
// Surfaces are NOT thread-safe.
type Surface interface {
	// Begin starts a render onto a canvas of the given size.
	Begin(width, height float64) error

	// Stroke strokes path with style after applying t.
	Stroke(path ArcPath, style Style, t Transform) error

	// Fill fills path with style after applying t.
	Fill(path ArcPath, style Style, t Transform) error

	// DrawLabel draws positioned text.
	DrawLabel(l Label) error

	// End finishes the render.
	End() error
}
