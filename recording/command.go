// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package recording captures ring surface calls as typed commands.
//
// A Recorder is a ring.Surface that paints nothing. Each call is stored as
// a Command so a render can be inspected, dumped as text, or replayed onto
// another surface later.
//
// # Example
//
//	rec := recording.NewRecorder()
//	if err := ind.Render(rec); err != nil {
//		return err
//	}
//	r := rec.FinishRecording()
//	fmt.Print(r)             // textual dump
//	r.Playback(ggsurface.New()) // rasterize the same calls
package recording

import (
	"fmt"

	"github.com/gogpu/ring"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdBegin  CommandType = iota // Begin a render
	CmdStroke                    // Stroke a path
	CmdFill                      // Fill a path
	CmdLabel                     // Draw a label
	CmdEnd                       // End a render
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBegin:  "Begin",
	CmdStroke: "Stroke",
	CmdFill:   "Fill",
	CmdLabel:  "Label",
	CmdEnd:    "End",
}

// String returns the command type name.
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return fmt.Sprintf("CommandType(%d)", t)
}

// Command is a single recorded surface call.
type Command interface {
	Type() CommandType
}

// BeginCommand records Surface.Begin.
type BeginCommand struct {
	Width, Height float64
}

// Type implements Command.
func (BeginCommand) Type() CommandType { return CmdBegin }

// PathCommand records Surface.Stroke or Surface.Fill.
type PathCommand struct {
	Paint     ring.Paint
	Path      ring.ArcPath
	Style     ring.Style
	Transform ring.Transform
}

// Type implements Command.
func (c PathCommand) Type() CommandType {
	if c.Paint == ring.PaintFill {
		return CmdFill
	}
	return CmdStroke
}

// LabelCommand records Surface.DrawLabel.
type LabelCommand struct {
	Label ring.Label
}

// Type implements Command.
func (LabelCommand) Type() CommandType { return CmdLabel }

// EndCommand records Surface.End.
type EndCommand struct{}

// Type implements Command.
func (EndCommand) Type() CommandType { return CmdEnd }
