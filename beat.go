package daw

import "math"

// Beat is a non-negative, finite musical beat position. Units are musical,
// not seconds; use a Metronome to convert to a Timestamp.
type Beat float64

// BeatZero and BeatOne are the canonical zero and unit beat values.
const (
	BeatZero Beat = 0
	BeatOne  Beat = 1
)

// NewBeat validates and constructs a Beat. NaN and negative values are
// rejected.
func NewBeat(value float64) (Beat, error) {
	if math.IsNaN(value) {
		return 0, newDomainError("beat may not be NaN")
	}
	if value < 0 {
		return 0, newDomainError("beat may not be negative")
	}
	return Beat(value), nil
}

// Add returns b + other.
func (b Beat) Add(other Beat) Beat { return b + other }

// Max returns the greater of b and other.
func (b Beat) Max(other Beat) Beat {
	if other > b {
		return other
	}
	return b
}

// SumBeats totals a sequence of Beats.
func SumBeats(beats ...Beat) Beat {
	var total Beat
	for _, b := range beats {
		total += b
	}
	return total
}

// BeatsPerMinute is a strictly positive, finite tempo value.
type BeatsPerMinute float64

// NewBeatsPerMinute validates and constructs a BeatsPerMinute. Non-positive
// and non-finite values are rejected.
func NewBeatsPerMinute(value float64) (BeatsPerMinute, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, newDomainError("beats-per-minute must be finite")
	}
	if value <= 0 {
		return 0, newDomainError("beats-per-minute must be positive")
	}
	return BeatsPerMinute(value), nil
}

// Duration is a non-negative, finite span of seconds.
type Duration float64

// DurationZero is the zero-length Duration.
const DurationZero Duration = 0

// NewDuration validates and constructs a Duration. NaN, negative, and
// infinite values are rejected.
func NewDuration(seconds float64) (Duration, error) {
	if math.IsNaN(seconds) {
		return 0, newDomainError("duration may not be NaN")
	}
	if math.IsInf(seconds, 0) {
		return 0, newDomainError("duration may not be infinite")
	}
	if seconds < 0 {
		return 0, newDomainError("duration may not be negative")
	}
	return Duration(seconds), nil
}

// Seconds returns the Duration as a plain float64 of seconds.
func (d Duration) Seconds() float64 { return float64(d) }

// Timestamp is a non-negative, finite point in time, measured in seconds.
type Timestamp float64

// TimestampZero is time zero.
const TimestampZero Timestamp = 0

// NewTimestamp validates and constructs a Timestamp. NaN, negative, and
// infinite values are rejected.
func NewTimestamp(seconds float64) (Timestamp, error) {
	if math.IsNaN(seconds) {
		return 0, newDomainError("timestamp may not be NaN")
	}
	if math.IsInf(seconds, 0) {
		return 0, newDomainError("timestamp may not be infinite")
	}
	if seconds < 0 {
		return 0, newDomainError("timestamp may not be negative")
	}
	return Timestamp(seconds), nil
}

// Seconds returns the Timestamp as a plain float64 of seconds.
func (t Timestamp) Seconds() float64 { return float64(t) }

// Plus adds a Duration to a Timestamp, producing a later Timestamp.
func (t Timestamp) Plus(d Duration) Timestamp { return t + Timestamp(d) }

// Plus adds a Timestamp to a Duration, producing a Timestamp. It mirrors
// Timestamp.Plus so either operand can lead at the call site.
func (d Duration) Plus(t Timestamp) Timestamp { return t + Timestamp(d) }
