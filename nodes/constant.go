package nodes

import daw "github.com/chriskillpack/libdaw-go"

// Constant emits a single Sample every call, every active channel set to
// the current value.
type Constant struct {
	channels int
	value    float64
}

// NewConstant builds a Constant node with the given channel count and
// starting value.
func NewConstant(channels int, value float64) *Constant {
	return &Constant{channels: channels, value: value}
}

// Value returns the current constant value.
func (c *Constant) Value() float64 { return c.value }

// SetValue updates the constant value.
func (c *Constant) SetValue(value float64) { c.value = value }

// Process implements daw.Node. Inputs are ignored.
func (c *Constant) Process(_ []daw.Sample, outputs *[]daw.Sample) error {
	s := daw.NewSample(c.channels)
	s.Fill(c.value)
	*outputs = append(*outputs, s)
	return nil
}
