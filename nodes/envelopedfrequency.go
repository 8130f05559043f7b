package nodes

import daw "github.com/chriskillpack/libdaw-go"

// EnvelopedFrequency wraps a daw.FrequencyNode, applying a volume envelope
// to its output the same way Envelope does for a plain Node. It exists so
// that a frequency-producing leaf (an oscillator) can be given a volume
// envelope without losing its FrequencyNode capability, which a plain
// Envelope wrapper would hide.
type EnvelopedFrequency struct {
	node     daw.FrequencyNode
	envelope []calculatedEnvelopePoint
	sample   uint64
}

// NewEnvelopedFrequency compiles points against sampleRate and length and
// wraps node. An EnvelopedFrequency built from zero points behaves as a
// passthrough FrequencyNode.
func NewEnvelopedFrequency(node daw.FrequencyNode, sampleRate uint32, length daw.Duration, points []EnvelopePoint) *EnvelopedFrequency {
	return &EnvelopedFrequency{
		node:     node,
		envelope: compileEnvelope(sampleRate, length, points),
	}
}

// Frequency implements daw.FrequencyNode.
func (e *EnvelopedFrequency) Frequency() float64 { return e.node.Frequency() }

// SetFrequency implements daw.FrequencyNode.
func (e *EnvelopedFrequency) SetFrequency(frequency float64) { e.node.SetFrequency(frequency) }

// Process implements daw.Node: runs the wrapped node, then scales its
// outputs by the envelope's volume at the current sample.
func (e *EnvelopedFrequency) Process(inputs []daw.Sample, outputs *[]daw.Sample) error {
	before := len(*outputs)
	if err := e.node.Process(inputs, outputs); err != nil {
		return err
	}

	volume, ok := envelopeVolumeAt(e.envelope, &e.sample)
	if !ok {
		return nil
	}
	for i := before; i < len(*outputs); i++ {
		(*outputs)[i].ScaleAssign(volume)
	}
	return nil
}
