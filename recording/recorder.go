// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"fmt"
	"strings"

	"github.com/gogpu/ring"
)

// Recorder is a ring.Surface that records every call.
type Recorder struct {
	commands []Command
}

var _ ring.Surface = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{commands: make([]Command, 0, 8)}
}

// Begin implements ring.Surface.
func (r *Recorder) Begin(width, height float64) error {
	r.commands = append(r.commands, BeginCommand{Width: width, Height: height})
	return nil
}

// Stroke implements ring.Surface.
func (r *Recorder) Stroke(path ring.ArcPath, style ring.Style, t ring.Transform) error {
	r.commands = append(r.commands, PathCommand{
		Paint:     ring.PaintStroke,
		Path:      clonePath(path),
		Style:     style,
		Transform: t,
	})
	return nil
}

// Fill implements ring.Surface.
func (r *Recorder) Fill(path ring.ArcPath, style ring.Style, t ring.Transform) error {
	r.commands = append(r.commands, PathCommand{
		Paint:     ring.PaintFill,
		Path:      clonePath(path),
		Style:     style,
		Transform: t,
	})
	return nil
}

// DrawLabel implements ring.Surface.
func (r *Recorder) DrawLabel(l ring.Label) error {
	r.commands = append(r.commands, LabelCommand{Label: l})
	return nil
}

// End implements ring.Surface.
func (r *Recorder) End() error {
	r.commands = append(r.commands, EndCommand{})
	return nil
}

// FinishRecording returns an immutable Recording of all commands so far
// and resets the Recorder.
func (r *Recorder) FinishRecording() *Recording {
	rec := &Recording{commands: r.commands}
	r.commands = make([]Command, 0, 8)
	return rec
}

// Recording is an immutable list of recorded commands.
type Recording struct {
	commands []Command
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Paths returns the stroke and fill commands in order.
func (r *Recording) Paths() []PathCommand {
	var out []PathCommand
	for _, c := range r.commands {
		if pc, ok := c.(PathCommand); ok {
			out = append(out, pc)
		}
	}
	return out
}

// Labels returns the recorded labels in order.
func (r *Recording) Labels() []ring.Label {
	var out []ring.Label
	for _, c := range r.commands {
		if lc, ok := c.(LabelCommand); ok {
			out = append(out, lc.Label)
		}
	}
	return out
}

// Playback replays the recording onto dst.
func (r *Recording) Playback(dst ring.Surface) error {
	for _, cmd := range r.commands {
		var err error
		switch c := cmd.(type) {
		case BeginCommand:
			err = dst.Begin(c.Width, c.Height)
		case PathCommand:
			if c.Paint == ring.PaintFill {
				err = dst.Fill(c.Path, c.Style, c.Transform)
			} else {
				err = dst.Stroke(c.Path, c.Style, c.Transform)
			}
		case LabelCommand:
			err = dst.DrawLabel(c.Label)
		case EndCommand:
			err = dst.End()
		}
		if err != nil {
			return fmt.Errorf("recording: playback %s: %w", cmd.Type(), err)
		}
	}
	return nil
}

// String dumps the recording, one command per line.
func (r *Recording) String() string {
	var sb strings.Builder
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case BeginCommand:
			fmt.Fprintf(&sb, "Begin %gx%g\n", c.Width, c.Height)
		case PathCommand:
			col := c.Style.EffectiveColor().Hex()
			if c.Paint == ring.PaintFill {
				fmt.Fprintf(&sb, "Fill %s rot=%g [%s]\n", col, c.Transform.Rotation, c.Path)
			} else {
				fmt.Fprintf(&sb, "Stroke %s w=%g cap=%s rot=%g [%s]\n",
					col, c.Style.Width, c.Style.Cap, c.Transform.Rotation, c.Path)
			}
		case LabelCommand:
			l := c.Label
			fmt.Fprintf(&sb, "Label %q%q at %g,%g size=%g %s\n",
				l.Text, l.Suffix, l.At.X, l.At.Y, l.FontSize, l.Color.Hex())
		case EndCommand:
			sb.WriteString("End\n")
		}
	}
	return sb.String()
}

func clonePath(p ring.ArcPath) ring.ArcPath {
	return append(ring.ArcPath(nil), p...)
}
