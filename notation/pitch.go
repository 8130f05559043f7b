package notation

import daw "github.com/chriskillpack/libdaw-go"

// NotePitch is anything a Note or Chord can carry as its pitch: either a
// written Pitch (relative or absolute) or a scale-degree Step.
type NotePitch interface {
	// Absolute resolves this pitch against state to a concrete daw.Pitch.
	Absolute(state *ResolveState) daw.Pitch

	// updateState applies this pitch's contribution to state beyond
	// state.Pitch, which the caller (Note) sets itself from Absolute's
	// result. Step uses this to record state.Step/state.ScaleOctave;
	// Pitch has nothing further to contribute.
	updateState(state *ResolveState)
}

// Pitch is a written pitch specification: a pitch class, an optional
// explicit octave, and an octave shift applied after octave resolution.
type Pitch struct {
	Class       daw.PitchClass
	Octave      *int8
	OctaveShift int8
}

// Absolute resolves the pitch. If no explicit octave was written, the
// octave is picked to minimize the interval from state.Pitch: the
// previous pitch name's octave_shift_for_closest this name, added to the
// previous pitch's octave.
func (p Pitch) Absolute(state *ResolveState) daw.Pitch {
	var octave int8
	if p.Octave != nil {
		octave = *p.Octave
	} else {
		relativeShift := state.Pitch.Class.Name.OctaveShiftForClosest(p.Class.Name)
		octave = state.Pitch.Octave + int8(relativeShift)
	}
	return daw.Pitch{
		Class:  p.Class,
		Octave: octave + p.OctaveShift,
	}
}

func (p Pitch) updateState(*ResolveState) {}
