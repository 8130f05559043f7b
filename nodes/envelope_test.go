package nodes

import (
	"testing"

	daw "github.com/chriskillpack/libdaw-go"
)

func TestEnvelopeEmptyIsIdentity(t *testing.T) {
	e := NewEnvelope(1000, daw.Duration(1), nil)
	in := daw.NewSample(1)
	in.Fill(0.5)

	var out []daw.Sample
	if err := e.Process([]daw.Sample{in}, &out); err != nil {
		t.Fatal(err)
	}
	if out[0].Active()[0] != 0.5 {
		t.Errorf("empty envelope output = %v, want 0.5 (identity)", out[0].Active()[0])
	}
}

func TestEnvelopeSinglePointScales(t *testing.T) {
	e := NewEnvelope(1000, daw.Duration(1), []EnvelopePoint{
		{Offset: EnvelopeRatioOffset(0), Whence: 0, Volume: 0.25},
	})
	in := daw.NewSample(1)
	in.Fill(1.0)

	for i := 0; i < 3; i++ {
		var out []daw.Sample
		if err := e.Process([]daw.Sample{in}, &out); err != nil {
			t.Fatal(err)
		}
		if out[0].Active()[0] != 0.25 {
			t.Errorf("tick %d: output = %v, want 0.25", i, out[0].Active()[0])
		}
	}
}

func TestEnvelopeMultiPointExactAtSample(t *testing.T) {
	length, _ := daw.NewDuration(1)
	e := NewEnvelope(1000, length, []EnvelopePoint{
		{Offset: EnvelopeRatioOffset(0), Whence: 0, Volume: 0},
		{Offset: EnvelopeRatioOffset(0), Whence: 1, Volume: 1},
	})
	in := daw.NewSample(1)
	in.Fill(1.0)

	var last float64
	for i := 0; i < 1000; i++ {
		var out []daw.Sample
		if err := e.Process([]daw.Sample{in}, &out); err != nil {
			t.Fatal(err)
		}
		got := out[0].Active()[0]
		if got < last {
			t.Fatalf("tick %d: envelope volume decreased: %v < %v", i, got, last)
		}
		last = got
	}
}
