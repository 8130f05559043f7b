//go:build !arm64

package nodes

import "math"

// sineOf and triangleOf are the portable, non-SIMD implementations of the
// oscillator waveform math. osc_arm64.go holds the arm64 build of the same
// functions, which currently uses this same scalar math.
func sineOf(phase float64) float64 {
	return math.Sin(phase)
}

func triangleOf(ramp float64) float64 {
	return 4 * (math.Abs(math.Abs(ramp-0.25)-0.5) - 0.25)
}
