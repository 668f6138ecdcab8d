package ring

import (
	"fmt"
	"strings"
)

// Preset selects the satellite layout.
type Preset int

const (
	// PresetBordered draws the satellite with a translucent halo ring.
	PresetBordered Preset = iota
	// PresetSingle draws the satellite as a single circle.
	PresetSingle
)

// Satellite metrics.
const (
	SatelliteDiameter = 50.0
	SatelliteBorder   = 10.0
)

// Opacities and label metrics.
const (
	BackgroundOpacity = 0.1
	HaloOpacity       = 0.1
	LabelFontSize     = 16.0
	SuffixFontSize    = 10.0
	SuffixRaise       = 7.0
)

// Shape names used in scenes.
const (
	ShapeBackground = "background"
	ShapeProgress   = "progress"
	ShapeSatellite  = "satellite"
	ShapeHalo       = "halo"
)

// String returns the preset name.
func (p Preset) String() string {
	switch p {
	case PresetBordered:
		return "bordered"
	case PresetSingle:
		return "single"
	default:
		return fmt.Sprintf("Preset(%d)", int(p))
	}
}

// ParsePreset parses "bordered" or "single".
func ParsePreset(s string) (Preset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bordered", "":
		return PresetBordered, nil
	case "single":
		return PresetSingle, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Preset) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Preset) UnmarshalText(text []byte) error {
	v, err := ParsePreset(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// radii returns the satellite radius and the halo radius (0 for none).
func (p Preset) radii() (satellite, halo float64) {
	satellite = SatelliteDiameter / 2
	if p == PresetBordered {
		halo = (SatelliteDiameter + SatelliteBorder) / 2
	}
	return satellite, halo
}

// Layout computes the scene of an indicator from its props.
// Props are expected to be valid; see Props.Validate.
//
// The satellite sits on the head of the progress arc for any rotation.
func Layout(p Props) Scene {
	fill := ClampFill(p.Fill)
	r := p.Radius()

	var satR, haloR, pad float64
	if p.WithSmallCircle {
		satR, haloR = p.Preset.radii()
		pad = max(0, max(satR, haloR)-p.Width/2)
	}

	c := Pt(p.Size/2+pad, p.Size/2+pad)
	side := p.Size + 2*pad
	conv := p.Platform.Convention()
	sweep := FillAngle(fill)

	scene := Scene{
		Width:  side,
		Height: side,
		Fill:   fill,
		Center: c,
		Radius: r,
	}

	// The ring group turns so that angle 0 sits at 12 o'clock plus rotation.
	ringGroup := Group{
		Transform: Transform{Rotation: p.Rotation - 90, Origin: c},
		Shapes: []Shape{
			{
				Name: ShapeBackground,
				Path: ArcPathFor(c.X, c.Y, r, 0, 360, conv),
				Style: Style{
					Paint:   PaintStroke,
					Color:   p.BackgroundColor,
					Opacity: BackgroundOpacity,
					Width:   p.Width,
					Cap:     LineCapButt,
				},
			},
			{
				Name: ShapeProgress,
				Path: ArcPathFor(c.X, c.Y, r, 0, sweep, conv),
				Style: Style{
					Paint:   PaintStroke,
					Color:   p.TintColor,
					Opacity: 1,
					Width:   p.Width,
					Cap:     p.LineCap,
				},
			},
		},
	}
	scene.Groups = append(scene.Groups, ringGroup)

	if !p.WithSmallCircle {
		return scene
	}

	angle := sweep + p.Rotation - 90
	satPath, anchor := SatelliteCirclePath(c.X, c.Y, satR, r, angle)
	satGroup := Group{
		Shapes: []Shape{{
			Name:  ShapeSatellite,
			Path:  satPath,
			Style: Style{Paint: PaintFill, Color: p.BackgroundColor, Opacity: 1},
		}},
	}
	if haloR > 0 {
		haloPath, _ := SatelliteCirclePath(c.X, c.Y, haloR, r, angle)
		satGroup.Shapes = append(satGroup.Shapes, Shape{
			Name:  ShapeHalo,
			Path:  haloPath,
			Style: Style{Paint: PaintFill, Color: p.BackgroundColor, Opacity: HaloOpacity},
		})
	}
	scene.Groups = append(scene.Groups, satGroup)
	scene.Labels = append(scene.Labels, satelliteLabel(p, fill, anchor))
	return scene
}

func satelliteLabel(p Props, fill float64, at Point) Label {
	l := Label{
		Text:        FormatPercent(fill, p.Locale),
		Suffix:      "%",
		At:          at,
		Color:       p.TintColor,
		SuffixColor: p.TintColor,
		FontSize:    LabelFontSize,
		SuffixSize:  SuffixFontSize,
		SuffixRaise: SuffixRaise,
	}
	if l.Text == "" {
		l.Suffix = ""
	}
	if ts := p.SmallCircleTextStyle; !ts.Color.IsZero() {
		l.Color = ts.Color
	}
	if ts := p.SmallCircleTextStyle; ts.FontSize > 0 {
		l.FontSize = ts.FontSize
	}
	return l
}
