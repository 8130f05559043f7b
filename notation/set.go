package notation

import daw "github.com/chriskillpack/libdaw-go"

// Set applies optional pitch and length overrides directly to the
// carry-forward state, without producing a Tone of its own.
type Set struct {
	Pitch  NotePitch
	Length *daw.Beat
}

// Tones produces no Tones; a Set only contributes to state.
func (s *Set) Tones(*daw.Metronome, daw.PitchStandard, *ResolveState) ([]Tone, error) {
	return nil, nil
}

// Length is always zero for a Set.
func (s *Set) Length(*ResolveState) daw.Beat { return daw.BeatZero }

// Duration is always zero for a Set.
func (s *Set) Duration(*ResolveState) daw.Beat { return daw.BeatZero }

// UpdateState applies whichever overrides were given.
func (s *Set) UpdateState(state *ResolveState) {
	if s.Pitch != nil {
		resolved := s.Pitch.Absolute(state)
		s.Pitch.updateState(state)
		state.Pitch = resolved
	}
	if s.Length != nil {
		state.Length = *s.Length
	}
}
