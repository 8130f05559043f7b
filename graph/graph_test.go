package graph

import (
	"testing"

	daw "github.com/chriskillpack/libdaw-go"
	"github.com/chriskillpack/libdaw-go/nodes"
)

func TestGraphPassesInputToOutput(t *testing.T) {
	g := New()
	if err := g.Input(OutputIndex, nil); err == nil {
		t.Fatal("expected error wiring reserved input directly to reserved output")
	}

	gain := nodes.NewGain(2)
	idx := g.Add(gain)
	if err := g.Input(idx, nil); err != nil {
		t.Fatal(err)
	}
	if err := g.Output(idx, nil); err != nil {
		t.Fatal(err)
	}

	in := []daw.Sample{daw.NewSample(1)}
	in[0].Fill(1.5)

	var out []daw.Sample
	if err := g.Process(in, &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Active()[0] != 3.0 {
		t.Errorf("Process output = %v, want [3.0]", out)
	}
}

func TestGraphRemoveReservedSlotPanics(t *testing.T) {
	g := New()
	defer func() {
		if recover() == nil {
			t.Error("expected panic removing a reserved slot")
		}
	}()
	g.Remove(InputIndex)
}

func TestGraphConnectForbiddenPolarity(t *testing.T) {
	g := New()
	c := g.Add(nodes.NewConstant(1, 1))

	if err := g.Connect(InputIndex, c, nil); err == nil {
		t.Error("expected error using reserved input as Connect source")
	}
	if err := g.Connect(c, OutputIndex, nil); err == nil {
		t.Error("expected error using reserved output as Connect destination")
	}
}

func TestGraphDisconnectIsSingleOperation(t *testing.T) {
	g := New()
	a := g.Add(nodes.NewConstant(1, 1))
	b := g.Add(nodes.NewConstant(1, 2))

	if err := g.Connect(a, b, nil); err != nil {
		t.Fatal(err)
	}
	if err := g.Disconnect(a, b, nil); err != nil {
		t.Fatal(err)
	}
	// A second disconnect of the same (now absent) edge must fail, proving
	// the first call removed exactly one connection rather than recursing
	// across every edge into b.
	if err := g.Disconnect(a, b, nil); err == nil {
		t.Error("expected error disconnecting an edge that no longer exists")
	}
}

// TestGraphFeedbackDecay checks that an impulse fed once through a
// half-gain feedback loop decays geometrically, with one sample of delay
// per trip around the back edge.
func TestGraphFeedbackDecay(t *testing.T) {
	g := New()
	add := g.Add(nodes.NewAdd(1))
	gain := g.Add(nodes.NewGain(0.5))

	if err := g.Input(add, nil); err != nil {
		t.Fatal(err)
	}
	if err := g.Connect(add, gain, nil); err != nil {
		t.Fatal(err)
	}
	if err := g.Connect(gain, add, nil); err != nil {
		t.Fatal(err)
	}
	if err := g.Output(add, nil); err != nil {
		t.Fatal(err)
	}

	impulse := daw.NewSample(1)
	impulse.Fill(1.0)
	zero := daw.NewSample(1)

	want := []float64{1.0, 0.5, 0.25, 0.125}
	for i, w := range want {
		in := []daw.Sample{zero}
		if i == 0 {
			in = []daw.Sample{impulse}
		}
		var out []daw.Sample
		if err := g.Process(in, &out); err != nil {
			t.Fatal(err)
		}
		if len(out) != 1 {
			t.Fatalf("tick %d: output = %v, want one sample", i, out)
		}
		if got := out[0].Active()[0]; got != w {
			t.Errorf("tick %d: output = %v, want %v", i, got, w)
		}
	}
}

func TestGraphRemoveDropsDependentEdges(t *testing.T) {
	g := New()
	a := g.Add(nodes.NewConstant(1, 1))
	b := g.Add(nodes.NewConstant(1, 2))

	if err := g.Connect(a, b, nil); err != nil {
		t.Fatal(err)
	}
	g.Remove(a)

	// b's edge from a should be gone; disconnecting it again must fail.
	if err := g.Disconnect(a, b, nil); err == nil {
		t.Error("expected error: edge from removed node should already be gone")
	}
}
