package ring

// TextStyle overrides the look of the satellite label.
// Zero fields keep the defaults.
type TextStyle struct {
	Color    Color   `toml:"color,omitempty"`
	FontSize float64 `toml:"font_size,omitempty"`
}

// Props holds every recognized option of an indicator.
type Props struct {
	// Size is the side of the square the ring is inscribed in. Required.
	Size float64 `toml:"size"`
	// Fill is the progress percentage. It is clamped, never rejected.
	Fill float64 `toml:"fill"`
	// Width is the stroke width of both rings. Required.
	Width float64 `toml:"width"`

	TintColor       Color   `toml:"tint_color"`
	BackgroundColor Color   `toml:"background_color"`
	Rotation        float64 `toml:"rotation"`
	LineCap         LineCap `toml:"linecap"`

	WithSmallCircle      bool      `toml:"with_small_circle"`
	SmallCircleTextStyle TextStyle `toml:"small_circle_text_style"`

	Platform Platform `toml:"platform"`
	Preset   Preset   `toml:"preset"`
	Locale   string   `toml:"locale"`

	// Content, if set, is called after each render with the clamped fill.
	Content func(fill float64) `toml:"-"`
}

// DefaultProps returns props with every optional field at its default.
// Size, Fill and Width are left zero.
func DefaultProps() Props {
	return Props{
		TintColor:       DefaultTint,
		BackgroundColor: DefaultBackground,
		LineCap:         LineCapButt,
		Platform:        PlatformIOS,
		Preset:          PresetBordered,
		Locale:          "en",
	}
}

// Validate checks the required props.
// The fill is not checked: out-of-range values are clamped at layout time.
func (p Props) Validate() error {
	if !(p.Size > 0) {
		return &PropError{Field: "size", Value: p.Size, Err: ErrInvalidSize}
	}
	if !(p.Width > 0) || p.Width > p.Size {
		return &PropError{Field: "width", Value: p.Width, Err: ErrInvalidWidth}
	}
	return nil
}

// Radius returns the radius of the ring centerline.
func (p Props) Radius() float64 {
	return p.Size/2 - p.Width/2
}
