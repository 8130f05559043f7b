package nodes

import daw "github.com/chriskillpack/libdaw-go"

// Delay is a per-input-stream ring-buffered delay. For each input Sample
// this tick, it pushes onto that stream's queue; once the queue reaches
// bufferSize it pops the oldest Sample as this tick's output for that
// stream. A stream's output is silent (no Sample emitted) until its queue
// first fills. A delay of zero is the identity on inputs.
type Delay struct {
	sampleRate float64
	delay      daw.Duration
	bufferSize int
	buffers    [][]daw.Sample
}

// NewDelay builds a Delay node for the given sample rate and delay length.
func NewDelay(sampleRate float64, delay daw.Duration) *Delay {
	d := &Delay{sampleRate: sampleRate, delay: delay}
	d.updateBufferSize()
	return d
}

// Delay returns the current delay length.
func (d *Delay) Delay() daw.Duration { return d.delay }

// SetDelay changes the delay length. Existing buffered contents are kept,
// up to the new buffer size.
func (d *Delay) SetDelay(delay daw.Duration) {
	d.delay = delay
	d.updateBufferSize()
}

func (d *Delay) updateBufferSize() {
	size := int(float64(d.delay.Seconds())*d.sampleRate + 0.5)
	d.bufferSize = size
	for i, buf := range d.buffers {
		if len(buf) > size {
			d.buffers[i] = buf[len(buf)-size:]
		}
	}
}

// Process implements daw.Node.
func (d *Delay) Process(inputs []daw.Sample, outputs *[]daw.Sample) error {
	if d.bufferSize == 0 {
		*outputs = append(*outputs, inputs...)
		return nil
	}

	if len(inputs) > len(d.buffers) {
		grown := make([][]daw.Sample, len(inputs))
		copy(grown, d.buffers)
		d.buffers = grown
	}

	for i, in := range inputs {
		buf := d.buffers[i]
		if len(buf) >= d.bufferSize {
			*outputs = append(*outputs, buf[0])
			buf = buf[1:]
		}
		d.buffers[i] = append(buf, in)
	}
	return nil
}
