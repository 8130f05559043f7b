package nodes

import daw "github.com/chriskillpack/libdaw-go"

// Gain scales every input Sample by a scalar gain, one output per input.
type Gain struct {
	gain float64
}

// NewGain builds a Gain node with the given starting gain.
func NewGain(gain float64) *Gain { return &Gain{gain: gain} }

// Gain returns the current gain.
func (g *Gain) Gain() float64 { return g.gain }

// SetGain updates the gain.
func (g *Gain) SetGain(gain float64) { g.gain = gain }

// Process implements daw.Node.
func (g *Gain) Process(inputs []daw.Sample, outputs *[]daw.Sample) error {
	for _, in := range inputs {
		*outputs = append(*outputs, in.Scale(g.gain))
	}
	return nil
}
