package notation

import daw "github.com/chriskillpack/libdaw-go"

// Chord is a set of pitches sharing one start and length. Pitches resolve
// in order, each one setting the working pitch so the next may be
// written relative to it.
type Chord struct {
	Pitches          []NotePitch
	LengthOverride   *daw.Beat
	DurationOverride *DurationExpr
}

// Tones resolves every pitch in order against a private copy of state,
// producing one Tone per pitch, all sharing the same start and length.
func (c *Chord) Tones(metronome *daw.Metronome, pitchStandard daw.PitchStandard, state *ResolveState) ([]Tone, error) {
	working := state.Clone()

	start, err := metronome.BeatToTime(state.Offset)
	if err != nil {
		return nil, err
	}
	duration := c.Duration(working)
	end, err := metronome.BeatToTime(state.Offset.Add(duration))
	if err != nil {
		return nil, err
	}
	length, err := daw.NewDuration(end.Seconds() - start.Seconds())
	if err != nil {
		return nil, err
	}

	tones := make([]Tone, 0, len(c.Pitches))
	for _, p := range c.Pitches {
		resolved := p.Absolute(working)
		frequency := pitchStandard.Resolve(resolved)
		working.Pitch = resolved
		tones = append(tones, Tone{
			Start:     start,
			Length:    length,
			Frequency: frequency,
			Tags:      state.Tags,
		})
	}
	return tones, nil
}

// Length returns the chord's own length, or state.Length if unset.
func (c *Chord) Length(state *ResolveState) daw.Beat {
	if c.LengthOverride != nil {
		return *c.LengthOverride
	}
	return state.Length
}

// Duration returns the chord's own duration, falling back to its length
// (which itself falls back to state.Length). Unlike Note, it does not
// consult state.Duration.
func (c *Chord) Duration(state *ResolveState) daw.Beat {
	if c.DurationOverride != nil {
		return c.DurationOverride.Resolve(c.Length(state))
	}
	return c.Length(state)
}

// UpdateState resolves every pitch in order (as Tones does) and records
// the last one as the new carry-forward pitch, along with length and
// duration overrides, then advances the offset past this chord.
func (c *Chord) UpdateState(state *ResolveState) {
	for _, p := range c.Pitches {
		resolved := p.Absolute(state)
		p.updateState(state)
		state.Pitch = resolved
	}
	if c.LengthOverride != nil {
		state.Length = *c.LengthOverride
	}
	if c.DurationOverride != nil {
		state.Duration = *c.DurationOverride
	}
	state.Offset = state.Offset.Add(state.Length)
}
