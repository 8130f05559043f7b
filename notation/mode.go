package notation

import daw "github.com/chriskillpack/libdaw-go"

// Mode sets the carry-forward mode number.
type Mode struct {
	Mode int64
}

// Tones produces no Tones; a Mode only contributes to state.
func (m *Mode) Tones(*daw.Metronome, daw.PitchStandard, *ResolveState) ([]Tone, error) {
	return nil, nil
}

// Length is always zero for a Mode.
func (m *Mode) Length(*ResolveState) daw.Beat { return daw.BeatZero }

// Duration is always zero for a Mode.
func (m *Mode) Duration(*ResolveState) daw.Beat { return daw.BeatZero }

// UpdateState installs the mode number into state.Mode.
func (m *Mode) UpdateState(state *ResolveState) {
	state.Mode = m.Mode
}
