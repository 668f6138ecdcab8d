package ring

// Fill bounds. Values under MinFill are treated as empty.
const (
	MinFill = 0.01
	MaxFill = 100.0
)

// ClampFill snaps a raw fill percentage into [0, 100].
//
// Values below MinFill become 0 and values above MaxFill become 100. Every
// other value, including NaN, is returned unchanged.
func ClampFill(raw float64) float64 {
	if raw < MinFill {
		return 0
	} else if raw > MaxFill {
		return MaxFill
	}
	return raw
}

// FillAngle returns the sweep in degrees covered by a clamped fill.
func FillAngle(fill float64) float64 {
	return 360 * ClampFill(fill) / 100
}
