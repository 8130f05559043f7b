// Package nodes collects the leaf Node implementations: constants,
// oscillators, envelopes, and the small signal-routing nodes (Add,
// Multiply, Gain, Delay, LowPassFilter) that a Graph wires together.
package nodes

import daw "github.com/chriskillpack/libdaw-go"

// Passthrough copies its inputs to its outputs unchanged. It backs the
// Graph's two reserved slots (external input and external output) and is
// also handy standalone wherever a patch needs an identity node.
type Passthrough struct{}

// NewPassthrough returns a new Passthrough node.
func NewPassthrough() *Passthrough { return &Passthrough{} }

// Process implements daw.Node.
func (p *Passthrough) Process(inputs []daw.Sample, outputs *[]daw.Sample) error {
	*outputs = append(*outputs, inputs...)
	return nil
}
