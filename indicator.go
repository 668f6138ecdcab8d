package ring

import "fmt"

// Indicator is a circular progress indicator.
//
// An Indicator holds only its props. Every Scene and Render call lays the
// geometry out again.
type Indicator struct {
	props Props
}

// New creates an indicator with the three required props and options for
// the rest.
func New(size, fill, width float64, opts ...Option) (*Indicator, error) {
	p := DefaultProps()
	p.Size, p.Fill, p.Width = size, fill, width
	for _, opt := range opts {
		opt(&p)
	}
	return NewFromProps(p)
}

// NewFromProps creates an indicator from complete props.
func NewFromProps(p Props) (*Indicator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Indicator{props: p}, nil
}

// Props returns a copy of the indicator props.
func (ind *Indicator) Props() Props {
	return ind.props
}

// Fill returns the clamped fill.
func (ind *Indicator) Fill() float64 {
	return ClampFill(ind.props.Fill)
}

// SetFill replaces the raw fill value.
func (ind *Indicator) SetFill(fill float64) {
	ind.props.Fill = fill
}

// Scene lays out the indicator.
func (ind *Indicator) Scene() Scene {
	return Layout(ind.props)
}

// Render lays out the indicator, paints it on s and then calls the
// Content callback, if any, with the clamped fill.
func (ind *Indicator) Render(s Surface) error {
	if s == nil {
		return ErrNilSurface
	}
	scene := ind.Scene()
	Logger().Debug("ring: render",
		"fill", scene.Fill,
		"size", ind.props.Size,
		"convention", ind.props.Platform.Convention().Name(),
		"preset", ind.props.Preset.String(),
		"satellite", ind.props.WithSmallCircle,
	)
	if err := scene.Draw(s); err != nil {
		return fmt.Errorf("ring: render: %w", err)
	}
	if ind.props.Content != nil {
		ind.props.Content(scene.Fill)
	}
	return nil
}
