package nodes

import daw "github.com/chriskillpack/libdaw-go"

// Add reduces every input Sample into one Sample by element-wise sum. With
// no inputs it emits a zero Sample of its configured channel count.
type Add struct {
	channels int
}

// NewAdd builds an Add node for the given channel count.
func NewAdd(channels int) *Add { return &Add{channels: channels} }

// Process implements daw.Node.
func (a *Add) Process(inputs []daw.Sample, outputs *[]daw.Sample) error {
	if len(inputs) == 0 {
		*outputs = append(*outputs, daw.NewSample(a.channels))
		return nil
	}
	sum := inputs[0]
	for _, in := range inputs[1:] {
		sum = sum.Add(in)
	}
	*outputs = append(*outputs, sum)
	return nil
}
