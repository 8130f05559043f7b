package notation

import daw "github.com/chriskillpack/libdaw-go"

// Note is a single pitched element: a NotePitch plus optional length and
// duration overrides. An unset length or duration falls back to the
// carry-forward state.
type Note struct {
	Pitch            NotePitch
	LengthOverride   *daw.Beat
	DurationOverride *DurationExpr
}

// Tones resolves the note's pitch to a frequency and its span to a start
// time and length, producing exactly one Tone at state.Offset.
func (n *Note) Tones(metronome *daw.Metronome, pitchStandard daw.PitchStandard, state *ResolveState) ([]Tone, error) {
	frequency := pitchStandard.Resolve(n.Pitch.Absolute(state))

	start, err := metronome.BeatToTime(state.Offset)
	if err != nil {
		return nil, err
	}
	duration := n.Duration(state)
	end, err := metronome.BeatToTime(state.Offset.Add(duration))
	if err != nil {
		return nil, err
	}
	length, err := daw.NewDuration(end.Seconds() - start.Seconds())
	if err != nil {
		return nil, err
	}

	return []Tone{{
		Start:     start,
		Length:    length,
		Frequency: frequency,
		Tags:      state.Tags,
	}}, nil
}

// Length returns the note's own length, or state.Length if unset.
func (n *Note) Length(state *ResolveState) daw.Beat {
	if n.LengthOverride != nil {
		return *n.LengthOverride
	}
	return state.Length
}

// Duration returns the note's own duration expression resolved against
// its length, or state.Duration resolved the same way if unset.
func (n *Note) Duration(state *ResolveState) daw.Beat {
	length := n.Length(state)
	expr := state.Duration
	if n.DurationOverride != nil {
		expr = *n.DurationOverride
	}
	return expr.Resolve(length)
}

// UpdateState resolves the pitch against state, records the resolved
// pitch, length, and duration expression as the new carry-forward
// context, and advances the offset past this note.
func (n *Note) UpdateState(state *ResolveState) {
	resolved := n.Pitch.Absolute(state)
	n.Pitch.updateState(state)
	state.Pitch = resolved
	if n.LengthOverride != nil {
		state.Length = *n.LengthOverride
	}
	if n.DurationOverride != nil {
		state.Duration = *n.DurationOverride
	}
	state.Offset = state.Offset.Add(state.Length)
}
