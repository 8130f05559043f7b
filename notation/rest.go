package notation

import daw "github.com/chriskillpack/libdaw-go"

// Rest advances the offset without producing any Tone.
type Rest struct {
	LengthOverride *daw.Beat
}

// Tones always returns no Tones.
func (r *Rest) Tones(*daw.Metronome, daw.PitchStandard, *ResolveState) ([]Tone, error) {
	return nil, nil
}

// Length returns the rest's own length, or state.Length if unset.
func (r *Rest) Length(state *ResolveState) daw.Beat {
	if r.LengthOverride != nil {
		return *r.LengthOverride
	}
	return state.Length
}

// Duration is always zero for a Rest.
func (r *Rest) Duration(*ResolveState) daw.Beat { return daw.BeatZero }

// UpdateState records the rest's length as the new carry-forward length
// and advances the offset past it.
func (r *Rest) UpdateState(state *ResolveState) {
	state.Length = r.Length(state)
	state.Offset = state.Offset.Add(state.Length)
}
