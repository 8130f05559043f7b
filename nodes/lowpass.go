package nodes

import daw "github.com/chriskillpack/libdaw-go"

// LowPassFilter is a simple averaging low-pass: for each input stream it
// keeps a rolling window of the last bufferSize Samples and emits their
// mean. bufferSize is floor(sampleRate / cutoff); a cutoff high enough to
// push bufferSize to 1 or below degenerates to the identity.
type LowPassFilter struct {
	bufferSize int
	buffers    [][]daw.Sample
	averages   []daw.Sample
	channels   []int
}

// NewLowPassFilter builds a LowPassFilter for the given sample rate and
// cutoff frequency.
func NewLowPassFilter(sampleRate, cutoff float64) *LowPassFilter {
	return &LowPassFilter{bufferSize: int(sampleRate / cutoff)}
}

// Process implements daw.Node.
func (f *LowPassFilter) Process(inputs []daw.Sample, outputs *[]daw.Sample) error {
	if f.bufferSize <= 1 {
		*outputs = append(*outputs, inputs...)
		return nil
	}

	if len(inputs) > len(f.buffers) {
		f.buffers = append(f.buffers, make([][]daw.Sample, len(inputs)-len(f.buffers))...)
		f.averages = append(f.averages, make([]daw.Sample, len(inputs)-len(f.averages))...)
		f.channels = append(f.channels, make([]int, len(inputs)-len(f.channels))...)
	}

	for i, in := range inputs {
		buf := f.buffers[i]
		avg := f.averages[i]
		if f.channels[i] != in.Channels() {
			f.channels[i] = in.Channels()
			avg = daw.NewSample(in.Channels())
			buf = nil
		}

		for len(buf) >= f.bufferSize {
			n := float64(len(buf))
			evicted := buf[0]
			buf = buf[1:]
			avg = avg.Scale(n).Add(evicted.Scale(-1)).Scale(1 / (n - 1))
		}
		n := float64(len(buf))
		buf = append(buf, in)
		avg = avg.Scale(n).Add(in).Scale(1 / (n + 1))

		f.buffers[i] = buf
		f.averages[i] = avg
		*outputs = append(*outputs, avg)
	}
	return nil
}
