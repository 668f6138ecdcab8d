package ring

// Option configures an Indicator during creation.
//
// Example:
//
//	ind, err := ring.New(200, 42, 16,
//	    ring.WithRotation(45),
//	    ring.WithLineCap(ring.LineCapRound),
//	)
type Option func(*Props)

// WithTint sets the color of the progress ring and the label.
func WithTint(c Color) Option {
	return func(p *Props) {
		p.TintColor = c
	}
}

// WithBackground sets the color of the background ring and the satellite.
func WithBackground(c Color) Option {
	return func(p *Props) {
		p.BackgroundColor = c
	}
}

// WithRotation rotates the start of the ring clockwise by degrees.
// At 0 the ring starts at 12 o'clock.
func WithRotation(degrees float64) Option {
	return func(p *Props) {
		p.Rotation = degrees
	}
}

// WithLineCap sets the cap of the progress stroke.
func WithLineCap(c LineCap) Option {
	return func(p *Props) {
		p.LineCap = c
	}
}

// WithSmallCircle enables the satellite circle and its percentage label.
func WithSmallCircle(on bool) Option {
	return func(p *Props) {
		p.WithSmallCircle = on
	}
}

// WithSmallCircleTextStyle overrides the label style.
func WithSmallCircleTextStyle(s TextStyle) Option {
	return func(p *Props) {
		p.SmallCircleTextStyle = s
	}
}

// WithContent registers a callback receiving the clamped fill after each
// render.
func WithContent(fn func(fill float64)) Option {
	return func(p *Props) {
		p.Content = fn
	}
}

// WithPlatform selects the arc convention through a platform family.
func WithPlatform(pl Platform) Option {
	return func(p *Props) {
		p.Platform = pl
	}
}

// WithPreset selects the satellite layout.
func WithPreset(pr Preset) Option {
	return func(p *Props) {
		p.Preset = pr
	}
}

// WithLocale sets the BCP 47 tag used to format the label digits.
func WithLocale(tag string) Option {
	return func(p *Props) {
		p.Locale = tag
	}
}
