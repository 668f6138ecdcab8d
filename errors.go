package ring

import "errors"

// Sentinel errors for the ring package.
var (
	// ErrInvalidSize is returned when Size is not a positive number.
	ErrInvalidSize = errors.New("ring: size must be positive")

	// ErrInvalidWidth is returned when the stroke width is not positive
	// or does not fit inside Size.
	ErrInvalidWidth = errors.New("ring: width must be positive and not exceed size")

	// ErrInvalidColor is returned for malformed hex colors.
	ErrInvalidColor = errors.New("ring: invalid hex color")

	// ErrUnknownLineCap is returned for unrecognized line cap names.
	ErrUnknownLineCap = errors.New("ring: unknown linecap")

	// ErrUnknownPlatform is returned for unrecognized platform names.
	ErrUnknownPlatform = errors.New("ring: unknown platform")

	// ErrUnknownPreset is returned for unrecognized preset names.
	ErrUnknownPreset = errors.New("ring: unknown preset")

	// ErrNilSurface is returned when Render is called without a surface.
	ErrNilSurface = errors.New("ring: nil surface")
)

// PropError reports an invalid prop value.
type PropError struct {
	Field string
	Value float64
	Err   error
}

func (e *PropError) Error() string {
	return e.Err.Error() + " (" + e.Field + ")"
}

// Unwrap returns the underlying sentinel error.
func (e *PropError) Unwrap() error {
	return e.Err
}
