package nodes

import daw "github.com/chriskillpack/libdaw-go"

// Multiply reduces every input Sample into one Sample by element-wise
// product. With no inputs it emits a zero Sample of its configured channel
// count, matching Add's empty-input behavior.
type Multiply struct {
	channels int
}

// NewMultiply builds a Multiply node for the given channel count.
func NewMultiply(channels int) *Multiply { return &Multiply{channels: channels} }

// Process implements daw.Node.
func (m *Multiply) Process(inputs []daw.Sample, outputs *[]daw.Sample) error {
	if len(inputs) == 0 {
		*outputs = append(*outputs, daw.NewSample(m.channels))
		return nil
	}
	product := inputs[0]
	for _, in := range inputs[1:] {
		product = product.Mul(in)
	}
	*outputs = append(*outputs, product)
	return nil
}
