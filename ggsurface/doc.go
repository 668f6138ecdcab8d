// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ggsurface paints ring scenes with the gogpu/gg rasterizer.
//
// Every Begin allocates (or clears) a gg.Context sized to the scene times
// the surface scale. Arcs are drawn with gg's DrawArc after the group
// transform has been folded into centers and angles, so the gg matrix
// stays at identity. Labels use the Go Regular font unless another
// text.FontSource is supplied.
//
// Example:
//
//	s := ggsurface.New(ggsurface.WithScale(2))
//	defer s.Close()
//	if err := ind.Render(s); err != nil {
//		return err
//	}
//	return s.SavePNG("ring@2x.png")
//
// GPU acceleration is opt-in in the same way as for gg itself:
//
//	import _ "github.com/gogpu/gg/gpu"
package ggsurface
