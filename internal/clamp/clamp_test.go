package clamp

import "testing"

func TestFloat(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float64
	}{
		{0.5, -1, 1, 0.5},
		{2, -1, 1, 1},
		{-2, -1, 1, -1},
	}
	for _, c := range cases {
		if got := Float(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Float(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestUnit(t *testing.T) {
	if Unit(1.5) != 1 {
		t.Error("Unit(1.5) should clamp to 1")
	}
	if Unit(-1.5) != -1 {
		t.Error("Unit(-1.5) should clamp to -1")
	}
	if Unit(0.3) != 0.3 {
		t.Error("Unit(0.3) should pass through unchanged")
	}
}
