package nodes

import (
	"math"

	daw "github.com/chriskillpack/libdaw-go"
)

// SineOscillator integrates phase by 2*pi*frequency/sampleRate, modulo
// 2*pi, and emits sin(phase) filling all channels.
type SineOscillator struct {
	sampleRate float64
	channels   int
	frequency  float64
	delta      float64
	phase      float64
}

// NewSineOscillator builds a SineOscillator at the given sample rate,
// channel count, and starting frequency.
func NewSineOscillator(sampleRate float64, channels int, frequency float64) *SineOscillator {
	o := &SineOscillator{sampleRate: sampleRate, channels: channels}
	o.SetFrequency(frequency)
	return o
}

// Frequency implements daw.FrequencyNode.
func (o *SineOscillator) Frequency() float64 { return o.frequency }

// SetFrequency implements daw.FrequencyNode.
func (o *SineOscillator) SetFrequency(frequency float64) {
	o.frequency = frequency
	o.delta = frequency * 2 * math.Pi / o.sampleRate
}

// Process implements daw.Node. Inputs are ignored.
func (o *SineOscillator) Process(_ []daw.Sample, outputs *[]daw.Sample) error {
	s := daw.NewSample(o.channels)
	s.Fill(sineOf(o.phase))
	*outputs = append(*outputs, s)

	o.phase = math.Mod(o.phase+o.delta, 2*math.Pi)
	return nil
}
