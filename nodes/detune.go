package nodes

import (
	"math"

	daw "github.com/chriskillpack/libdaw-go"
)

// Detune wraps a daw.FrequencyNode, applying a detune expressed in octaves:
// 0 leaves the frequency unchanged, 1 doubles it (raises an octave), -1
// halves it (drops an octave), and so on for fractional values.
type Detune struct {
	node       daw.FrequencyNode
	frequency  float64
	detune     float64
	detunePow2 float64
}

// NewDetune wraps node with a Detune defaulting to no detune.
func NewDetune(node daw.FrequencyNode) *Detune {
	return &Detune{node: node, frequency: 256.0, detunePow2: 1.0}
}

// SetDetune sets the detune in octaves and re-applies the currently set
// frequency through the new multiplier. This affects the wrapped node
// immediately, including while a note is playing.
func (d *Detune) SetDetune(detune float64) {
	if d.detune == detune {
		return
	}
	d.detune = detune
	d.detunePow2 = math.Pow(2, detune)
	d.node.SetFrequency(d.frequency * d.detunePow2)
}

// GetDetune returns the currently configured detune in octaves.
func (d *Detune) GetDetune() float64 { return d.detune }

// Frequency implements daw.FrequencyNode, returning the dry (pre-detune)
// frequency.
func (d *Detune) Frequency() float64 { return d.frequency }

// SetFrequency implements daw.FrequencyNode. The wrapped node receives the
// frequency scaled by the current detune.
func (d *Detune) SetFrequency(frequency float64) {
	if d.frequency == frequency {
		return
	}
	d.frequency = frequency
	d.node.SetFrequency(frequency * d.detunePow2)
}

// Process implements daw.Node by delegating to the wrapped node.
func (d *Detune) Process(inputs []daw.Sample, outputs *[]daw.Sample) error {
	return d.node.Process(inputs, outputs)
}
