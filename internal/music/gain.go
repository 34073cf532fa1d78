package music

import "math"

// GainExponent converts a linear gain to a base-2 exponent, so 0.5 becomes
// -1. Non-positive gains map to 0; callers mute those separately.
func GainExponent(gain float64) float64 {
	if gain <= 0 {
		return 0
	}
	return math.Log2(gain)
}
