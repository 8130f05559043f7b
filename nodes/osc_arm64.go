//go:build arm64

package nodes

import "math"

// TODO: replace with a NEON sine-table lookup; for now arm64 shares the
// scalar path from osc_generic.go's math.
func sineOf(phase float64) float64 {
	return math.Sin(phase)
}

func triangleOf(ramp float64) float64 {
	return 4 * (math.Abs(math.Abs(ramp-0.25)-0.5) - 0.25)
}
