// Package ring draws circular progress indicators.
//
// # Overview
//
// ring turns a handful of numeric props (size, fill percentage, stroke
// width, rotation) into vector path instructions and paints them on a
// [Surface]. The package itself never rasterises anything: surfaces live
// in sub-packages (ggsurface for PNG output through gogpu/gg, termsurface
// for terminal previews, recording for command capture).
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/ring"
//		"github.com/gogpu/ring/ggsurface"
//	)
//
//	ind, err := ring.New(120, 64, 12, ring.WithSmallCircle(true))
//	if err != nil {
//		return err
//	}
//	s := ggsurface.New()
//	if err := ind.Render(s); err != nil {
//		return err
//	}
//	return s.SavePNG("ring.png")
//
// # Arc conventions
//
// Drawing back-ends disagree on how an arc is described. [MoveArc] emits a
// MoveTo followed by an absolute start/end arc with sweep flag 1.
// [RelativeSweep] emits a single arc carrying a relative sweep angle with
// sweep flag 0 and no MoveTo. The convention is chosen by [Platform] in the
// props, never by inspecting the running OS.
//
// # Coordinate System
//
// Same as gg: origin at top-left, X right, Y down. Angles are supplied in
// degrees and stored in instructions in radians; 0 points right and angles
// grow clockwise on screen.
//
// # Statelessness
//
// Every call recomputes geometry from the props. Nothing is cached between
// renders and all geometry functions are safe for concurrent use.
package ring

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
