package nodes

import daw "github.com/chriskillpack/libdaw-go"

// TriangleOscillator integrates ramp by frequency/sampleRate modulo 1, and
// maps the ramp through a symmetric triangle shape filling all channels.
type TriangleOscillator struct {
	sampleRate float64
	channels   int
	frequency  float64
	delta      float64
	ramp       float64
}

// NewTriangleOscillator builds a TriangleOscillator at the given sample
// rate, channel count, and starting frequency.
func NewTriangleOscillator(sampleRate float64, channels int, frequency float64) *TriangleOscillator {
	o := &TriangleOscillator{sampleRate: sampleRate, channels: channels}
	o.SetFrequency(frequency)
	return o
}

// Frequency implements daw.FrequencyNode.
func (o *TriangleOscillator) Frequency() float64 { return o.frequency }

// SetFrequency implements daw.FrequencyNode.
func (o *TriangleOscillator) SetFrequency(frequency float64) {
	o.frequency = frequency
	o.delta = frequency / o.sampleRate
}

// Process implements daw.Node. Inputs are ignored.
func (o *TriangleOscillator) Process(_ []daw.Sample, outputs *[]daw.Sample) error {
	s := daw.NewSample(o.channels)
	s.Fill(triangleOf(o.ramp))
	*outputs = append(*outputs, s)

	ramp := o.ramp + o.delta
	whole := float64(int64(ramp))
	o.ramp = ramp - whole
	if o.ramp < 0 {
		o.ramp++
	}
	return nil
}
