package nodes

import (
	"testing"

	daw "github.com/chriskillpack/libdaw-go"
)

func sampleOf(v float64) daw.Sample {
	s := daw.NewSample(1)
	s.Fill(v)
	return s
}

func TestAddSumsInputs(t *testing.T) {
	a := NewAdd(1)
	var out []daw.Sample
	if err := a.Process([]daw.Sample{sampleOf(1), sampleOf(2), sampleOf(3)}, &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Active()[0] != 6 {
		t.Errorf("Add output = %v, want [6]", out)
	}
}

func TestAddNoInputsIsZero(t *testing.T) {
	a := NewAdd(2)
	var out []daw.Sample
	if err := a.Process(nil, &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Active()[0] != 0 || out[0].Active()[1] != 0 {
		t.Errorf("Add with no inputs = %v, want zero Sample", out)
	}
}

func TestMultiplyProductOfInputs(t *testing.T) {
	m := NewMultiply(1)
	var out []daw.Sample
	if err := m.Process([]daw.Sample{sampleOf(2), sampleOf(3), sampleOf(4)}, &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Active()[0] != 24 {
		t.Errorf("Multiply output = %v, want [24]", out)
	}
}

func TestGainScalesInput(t *testing.T) {
	g := NewGain(0.5)
	var out []daw.Sample
	if err := g.Process([]daw.Sample{sampleOf(10)}, &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Active()[0] != 5 {
		t.Errorf("Gain output = %v, want [5]", out)
	}

	g.SetGain(2)
	if g.Gain() != 2 {
		t.Errorf("Gain() = %v, want 2", g.Gain())
	}
}

func TestPassthroughIsIdentity(t *testing.T) {
	p := NewPassthrough()
	var out []daw.Sample
	in := []daw.Sample{sampleOf(1), sampleOf(2)}
	if err := p.Process(in, &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[0].Active()[0] != 1 || out[1].Active()[0] != 2 {
		t.Errorf("Passthrough output = %v, want identity of %v", out, in)
	}
}

func TestConstantIgnoresInputs(t *testing.T) {
	c := NewConstant(1, 7)
	var out []daw.Sample
	if err := c.Process([]daw.Sample{sampleOf(99)}, &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Active()[0] != 7 {
		t.Errorf("Constant output = %v, want [7]", out)
	}

	c.SetValue(-3)
	out = nil
	if err := c.Process(nil, &out); err != nil {
		t.Fatal(err)
	}
	if out[0].Active()[0] != -3 {
		t.Errorf("Constant after SetValue = %v, want [-3]", out)
	}
}

// TestDelayBuffersUntilFull checks that a delay line stays silent until
// its buffer fills, then outputs the oldest sample each tick after.
func TestDelayBuffersUntilFull(t *testing.T) {
	d := NewDelay(4, daw.Duration(0.5)) // 2-sample buffer at 4Hz

	var seen []float64
	for i := 1; i <= 5; i++ {
		var out []daw.Sample
		if err := d.Process([]daw.Sample{sampleOf(float64(i))}, &out); err != nil {
			t.Fatal(err)
		}
		if len(out) == 1 {
			seen = append(seen, out[0].Active()[0])
		}
	}
	// First two ticks are silent while the 2-sample buffer fills; from the
	// third tick on it emits the value from two ticks earlier.
	want := []float64{1, 2, 3}
	if len(seen) != len(want) {
		t.Fatalf("got %d delayed samples %v, want %v", len(seen), seen, want)
	}
	for i, w := range want {
		if seen[i] != w {
			t.Errorf("delayed sample %d = %v, want %v", i, seen[i], w)
		}
	}
}

func TestDelayZeroIsIdentity(t *testing.T) {
	d := NewDelay(1000, daw.DurationZero)
	var out []daw.Sample
	if err := d.Process([]daw.Sample{sampleOf(42)}, &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Active()[0] != 42 {
		t.Errorf("zero-delay output = %v, want identity [42]", out)
	}
}

func TestLowPassFilterDegenerateCutoffIsIdentity(t *testing.T) {
	f := NewLowPassFilter(1000, 10000) // bufferSize <= 1
	var out []daw.Sample
	if err := f.Process([]daw.Sample{sampleOf(5)}, &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Active()[0] != 5 {
		t.Errorf("degenerate lowpass output = %v, want identity [5]", out)
	}
}

func TestLowPassFilterAveragesWindow(t *testing.T) {
	f := NewLowPassFilter(100, 25) // bufferSize = 4
	var last daw.Sample
	for _, v := range []float64{1, 1, 1, 1} {
		var out []daw.Sample
		if err := f.Process([]daw.Sample{sampleOf(v)}, &out); err != nil {
			t.Fatal(err)
		}
		last = out[0]
	}
	if got := last.Active()[0]; got != 1 {
		t.Errorf("average of four 1s = %v, want 1", got)
	}
}

func TestDetuneScalesWrappedFrequency(t *testing.T) {
	osc := NewSineOscillator(8000, 1, 440)
	d := NewDetune(osc)

	d.SetFrequency(440)
	if osc.Frequency() != 440 {
		t.Errorf("wrapped frequency before detune = %v, want 440", osc.Frequency())
	}

	d.SetDetune(1) // one octave up
	if osc.Frequency() != 880 {
		t.Errorf("wrapped frequency after +1 octave detune = %v, want 880", osc.Frequency())
	}
	if d.Frequency() != 440 {
		t.Errorf("Detune.Frequency() (dry) = %v, want 440 unchanged", d.Frequency())
	}
}
