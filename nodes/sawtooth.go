package nodes

import daw "github.com/chriskillpack/libdaw-go"

// SawtoothOscillator emits a [-1, 1] ramp filling all channels, adding
// 2*frequency/sampleRate each call and wrapping by subtracting 2 when it
// exceeds 1.
type SawtoothOscillator struct {
	sampleRate float64
	channels   int
	frequency  float64
	delta      float64
	sample     float64
}

// NewSawtoothOscillator builds a SawtoothOscillator at the given sample
// rate, channel count, and starting frequency.
func NewSawtoothOscillator(sampleRate float64, channels int, frequency float64) *SawtoothOscillator {
	o := &SawtoothOscillator{sampleRate: sampleRate, channels: channels}
	o.SetFrequency(frequency)
	return o
}

// Frequency implements daw.FrequencyNode.
func (o *SawtoothOscillator) Frequency() float64 { return o.frequency }

// SetFrequency implements daw.FrequencyNode.
func (o *SawtoothOscillator) SetFrequency(frequency float64) {
	o.frequency = frequency
	o.delta = 2 * frequency / o.sampleRate
}

// Process implements daw.Node. Inputs are ignored.
func (o *SawtoothOscillator) Process(_ []daw.Sample, outputs *[]daw.Sample) error {
	s := daw.NewSample(o.channels)
	s.Fill(o.sample)
	*outputs = append(*outputs, s)

	o.sample += o.delta
	if o.sample > 1.0 {
		o.sample -= 2.0
	}
	return nil
}
