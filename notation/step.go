package notation

import daw "github.com/chriskillpack/libdaw-go"

// Step is a scale-degree pitch: the step-th degree of state.Scale (1
// based, shifted by the current inversion), adjusted by a fine-tune and
// an explicit octave shift on top of the octave picked by the
// closest-neighbor rule.
type Step struct {
	Step        int64
	OctaveShift int8
	Adjustment  float64
}

func scaleMod(n, m int64) int64 {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

func (s Step) index(state *ResolveState) int64 {
	return scaleMod(s.Step-1+state.Inversion, int64(len(state.Scale)))
}

// scaleOctave computes the octave-shift component contributed by this
// step: a closest-neighbor bisection between this step's scale position
// and the previously resolved step's position (using half the scale
// length as the bisection point), plus this step's own octave shift and
// the carried-forward scale octave.
func (s Step) scaleOctave(state *ResolveState) int8 {
	n := int64(len(state.Scale))
	halfScale := n / 2
	step := s.index(state)
	stateStep := scaleMod(state.Step-1, n)

	var relativeShift int8
	switch {
	case stateStep+halfScale < step:
		relativeShift = -1
	case step+halfScale < stateStep:
		relativeShift = 1
	}
	return relativeShift + s.OctaveShift + state.ScaleOctave
}

// Absolute resolves the step to a concrete pitch by indexing into
// state.Scale.
func (s Step) Absolute(state *ResolveState) daw.Pitch {
	scaleOctave := s.scaleOctave(state)
	scalePitch := state.Scale[s.index(state)]
	return daw.Pitch{
		Class: daw.PitchClass{
			Name:       scalePitch.Class.Name,
			Adjustment: scalePitch.Class.Adjustment + s.Adjustment,
		},
		Octave: scalePitch.Octave + scaleOctave,
	}
}

func (s Step) updateState(state *ResolveState) {
	n := int64(len(state.Scale))
	scaleStep := scaleMod(s.Step-1+state.Inversion, n) + 1
	scaleOctave := s.scaleOctave(state)
	state.Step = scaleStep
	state.ScaleOctave = scaleOctave
}
