package daw

import "testing"

func TestSampleArithmetic(t *testing.T) {
	a := SampleFromRaw([MaxChannels]float64{1, 2}, 2)
	b := SampleFromRaw([MaxChannels]float64{3, 4}, 2)

	sum := a.Add(b)
	if got := sum.Active(); got[0] != 4 || got[1] != 6 {
		t.Errorf("Add = %v, want [4 6]", got)
	}

	product := a.Mul(b)
	if got := product.Active(); got[0] != 3 || got[1] != 8 {
		t.Errorf("Mul = %v, want [3 8]", got)
	}

	scaled := a.Scale(2)
	if got := scaled.Active(); got[0] != 2 || got[1] != 4 {
		t.Errorf("Scale = %v, want [2 4]", got)
	}
}

func TestSampleAssignVariants(t *testing.T) {
	a := SampleFromRaw([MaxChannels]float64{1, 2}, 2)
	b := SampleFromRaw([MaxChannels]float64{3, 4}, 2)

	a.AddAssign(b)
	if got := a.Active(); got[0] != 4 || got[1] != 6 {
		t.Errorf("AddAssign = %v, want [4 6]", got)
	}

	a.MulAssign(b)
	if got := a.Active(); got[0] != 12 || got[1] != 24 {
		t.Errorf("MulAssign = %v, want [12 24]", got)
	}

	a.ScaleAssign(0.5)
	if got := a.Active(); got[0] != 6 || got[1] != 12 {
		t.Errorf("ScaleAssign = %v, want [6 12]", got)
	}
}

func TestSampleFill(t *testing.T) {
	s := NewSample(3)
	s.Fill(0.5)
	for i, v := range s.Active() {
		if v != 0.5 {
			t.Errorf("channel %d = %v, want 0.5", i, v)
		}
	}
}

func TestSampleMismatchedChannelsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on mismatched channel counts")
		}
	}()
	a := NewSample(1)
	b := NewSample(2)
	a.Add(b)
}

func TestNewSampleOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range channel count")
		}
	}()
	NewSample(MaxChannels + 1)
}
