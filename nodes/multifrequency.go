package nodes

import daw "github.com/chriskillpack/libdaw-go"

// MultiFrequency wraps any number of frequency nodes behind a single
// daw.FrequencyNode, fanning SetFrequency out to all of them and
// concatenating their Process outputs in order.
type MultiFrequency struct {
	nodes     []daw.FrequencyNode
	frequency float64
}

// NewMultiFrequency builds a MultiFrequency over the given nodes.
func NewMultiFrequency(nodes ...daw.FrequencyNode) *MultiFrequency {
	return &MultiFrequency{nodes: nodes, frequency: 256.0}
}

// Frequency implements daw.FrequencyNode.
func (m *MultiFrequency) Frequency() float64 { return m.frequency }

// SetFrequency implements daw.FrequencyNode, propagating to every wrapped
// node.
func (m *MultiFrequency) SetFrequency(frequency float64) {
	m.frequency = frequency
	for _, n := range m.nodes {
		n.SetFrequency(frequency)
	}
}

// Process implements daw.Node, running every wrapped node in order and
// appending each one's outputs.
func (m *MultiFrequency) Process(inputs []daw.Sample, outputs *[]daw.Sample) error {
	for _, n := range m.nodes {
		if err := n.Process(inputs, outputs); err != nil {
			return err
		}
	}
	return nil
}
