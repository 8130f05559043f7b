package notation

import daw "github.com/chriskillpack/libdaw-go"

// DurationExpr is either a literal number of beats or a ratio of the
// hosting note's length.
type DurationExpr struct {
	IsRatio bool
	Beat    daw.Beat
	Ratio   float64
}

// LiteralBeats builds a DurationExpr of a fixed beat count.
func LiteralBeats(b daw.Beat) DurationExpr {
	return DurationExpr{Beat: b}
}

// RatioOfLength builds a DurationExpr expressed as a ratio of the hosting
// element's length.
func RatioOfLength(ratio float64) DurationExpr {
	return DurationExpr{IsRatio: true, Ratio: ratio}
}

// Resolve yields the concrete Beat duration given the hosting element's
// length.
func (d DurationExpr) Resolve(length daw.Beat) daw.Beat {
	if d.IsRatio {
		return daw.Beat(float64(length) * d.Ratio)
	}
	return d.Beat
}
