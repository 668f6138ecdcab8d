package ring

import (
	"fmt"
	"strings"
)

// LineCap specifies the shape of stroke endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// String returns the cap name as used in props.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return fmt.Sprintf("LineCap(%d)", int(c))
	}
}

// ParseLineCap parses "butt", "round" or "square".
// An empty string yields LineCapButt.
func ParseLineCap(s string) (LineCap, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "butt", "":
		return LineCapButt, nil
	case "round":
		return LineCapRound, nil
	case "square":
		return LineCapSquare, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLineCap, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c LineCap) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *LineCap) UnmarshalText(text []byte) error {
	v, err := ParseLineCap(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
