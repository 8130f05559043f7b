package nodes

import (
	"sort"

	daw "github.com/chriskillpack/libdaw-go"
)

// EnvelopeOffset selects how an EnvelopePoint's time is computed relative
// to its Whence anchor: either an absolute Duration, or a ratio of the
// note's total length (which may be negative).
type EnvelopeOffset struct {
	// Ratio is used when IsRatio is true; otherwise Time is used.
	IsRatio bool
	Time    daw.Duration
	Ratio   float64
}

// EnvelopeTimeOffset builds an EnvelopeOffset anchored at an absolute time.
func EnvelopeTimeOffset(d daw.Duration) EnvelopeOffset {
	return EnvelopeOffset{Time: d}
}

// EnvelopeRatioOffset builds an EnvelopeOffset anchored at a ratio of the
// note length.
func EnvelopeRatioOffset(ratio float64) EnvelopeOffset {
	return EnvelopeOffset{IsRatio: true, Ratio: ratio}
}

// EnvelopePoint describes one control point of a volume envelope. Whence
// is a ratio of the note length (0 is the start, 1 is the end) from which
// Offset is measured; Volume is the gain applied at that point in time.
type EnvelopePoint struct {
	Offset EnvelopeOffset
	Whence float64
	Volume float64
}

type calculatedEnvelopePoint struct {
	sample uint64
	volume float64
}

// compileEnvelope resolves envelope points against a sample rate and note
// length into a sample-indexed table, sorted ascending by sample. Points
// resolving to a NaN time are dropped.
func compileEnvelope(sampleRate uint32, length daw.Duration, points []EnvelopePoint) []calculatedEnvelopePoint {
	lengthSeconds := length.Seconds()

	calculated := make([]calculatedEnvelopePoint, 0, len(points))
	for _, p := range points {
		whence := lengthSeconds * p.Whence
		var t float64
		if p.Offset.IsRatio {
			t = whence + lengthSeconds*p.Offset.Ratio
		} else {
			t = whence + p.Offset.Time.Seconds()
		}
		if t != t { // NaN
			continue
		}
		calculated = append(calculated, calculatedEnvelopePoint{
			sample: uint64(t * float64(sampleRate)),
			volume: p.Volume,
		})
	}

	sort.SliceStable(calculated, func(i, j int) bool {
		return calculated[i].sample < calculated[j].sample
	})

	return calculated
}

// envelopeVolumeAt returns the envelope's volume for the sample currently
// held in *counter, then advances the counter (for envelopes with two or
// more points; a single-point envelope always returns its one volume
// without advancing). ok is false only for an empty envelope.
func envelopeVolumeAt(envelope []calculatedEnvelopePoint, counter *uint64) (float64, bool) {
	n := len(envelope)
	switch n {
	case 0:
		return 0, false
	case 1:
		return envelope[0].volume, true
	}

	sample := *counter
	*counter++

	index := sort.Search(n, func(i int) bool { return envelope[i].sample >= sample })
	if index < n && envelope[index].sample == sample {
		return envelope[index].volume, true
	}

	var a, b calculatedEnvelopePoint
	switch {
	case index == 0:
		a, b = envelope[0], envelope[1]
	case index == n:
		a, b = envelope[n-2], envelope[n-1]
	default:
		a, b = envelope[index-1], envelope[index]
	}
	s, as, bs := float64(sample), float64(a.sample), float64(b.sample)
	return a.volume + (s-as)*(b.volume-a.volume)/(bs-as), true
}

// Envelope passes its input Samples through, scaling each by a volume
// computed from a piecewise-linear envelope over the lifetime of the note. An
// Envelope built from zero points behaves as a passthrough.
type Envelope struct {
	envelope []calculatedEnvelopePoint
	sample   uint64
}

// NewEnvelope compiles envelope points against a sample rate and note
// length into a sample-indexed table. Points resolving to a NaN time are
// dropped.
func NewEnvelope(sampleRate uint32, length daw.Duration, points []EnvelopePoint) *Envelope {
	return &Envelope{envelope: compileEnvelope(sampleRate, length, points)}
}

// Process implements daw.Node. It passes inputs through unchanged in
// count and channel layout, scaled by the envelope's volume at the
// current sample.
func (e *Envelope) Process(inputs []daw.Sample, outputs *[]daw.Sample) error {
	*outputs = append(*outputs, inputs...)

	volume, ok := envelopeVolumeAt(e.envelope, &e.sample)
	if !ok {
		return nil
	}
	for i := range *outputs {
		(*outputs)[i].ScaleAssign(volume)
	}
	return nil
}
