package nodes

import daw "github.com/chriskillpack/libdaw-go"

// SquareOscillator emits a ±1 square wave filling all channels, flipping
// sign every sampleRate/(2*frequency) samples.
type SquareOscillator struct {
	sampleRate       float64
	channels         int
	frequency        float64
	samplesPerSwitch float64
	samplesSince     float64
	sample           float64
}

// NewSquareOscillator builds a SquareOscillator at the given sample rate,
// channel count, and starting frequency.
func NewSquareOscillator(sampleRate float64, channels int, frequency float64) *SquareOscillator {
	o := &SquareOscillator{
		sampleRate: sampleRate,
		channels:   channels,
		sample:     1.0,
	}
	o.SetFrequency(frequency)
	return o
}

// Frequency implements daw.FrequencyNode.
func (o *SquareOscillator) Frequency() float64 { return o.frequency }

// SetFrequency implements daw.FrequencyNode.
func (o *SquareOscillator) SetFrequency(frequency float64) {
	o.frequency = frequency
	o.samplesPerSwitch = o.sampleRate / (2 * frequency)
}

// Process implements daw.Node. Inputs are ignored.
func (o *SquareOscillator) Process(_ []daw.Sample, outputs *[]daw.Sample) error {
	s := daw.NewSample(o.channels)
	s.Fill(o.sample)
	*outputs = append(*outputs, s)

	o.samplesSince++
	for o.samplesSince >= o.samplesPerSwitch {
		o.samplesSince -= o.samplesPerSwitch
		o.sample = -o.sample
	}
	return nil
}
