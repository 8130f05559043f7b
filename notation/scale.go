package notation

import daw "github.com/chriskillpack/libdaw-go"

// Scale sets the carry-forward scale used by Step pitch resolution. Its
// pitches resolve in order against the incoming state, each one setting
// the working pitch so later scale degrees may be written relative to
// earlier ones, exactly as Chord resolves its pitches.
type Scale struct {
	Pitches []NotePitch
}

// Tones produces no Tones; a Scale only contributes to state.
func (s *Scale) Tones(*daw.Metronome, daw.PitchStandard, *ResolveState) ([]Tone, error) {
	return nil, nil
}

// Length is always zero for a Scale.
func (s *Scale) Length(*ResolveState) daw.Beat { return daw.BeatZero }

// Duration is always zero for a Scale.
func (s *Scale) Duration(*ResolveState) daw.Beat { return daw.BeatZero }

// UpdateState resolves every pitch in order and installs the result as
// state.Scale.
func (s *Scale) UpdateState(state *ResolveState) {
	working := state.Clone()
	scale := make([]daw.Pitch, 0, len(s.Pitches))
	for _, p := range s.Pitches {
		resolved := p.Absolute(working)
		p.updateState(working)
		working.Pitch = resolved
		scale = append(scale, resolved)
	}
	state.Scale = scale
}
