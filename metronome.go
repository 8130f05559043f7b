package daw

import "sort"

// TempoInstruction is a single beat/tempo pair fed to a Metronome.
type TempoInstruction struct {
	Beat Beat
	BPM  BeatsPerMinute
}

// calculatedInstruction is a TempoInstruction with its beat pre-correlated
// to a concrete time, so BeatToTime need not re-integrate from the start
// of the tempo map on every call.
type calculatedInstruction struct {
	beat           float64
	time           float64
	secondsPerBeat float64
}

// Metronome is a piecewise-linear map between musical beats and seconds,
// built from an ordered sequence of tempo instructions. With no
// instructions a default of 128 BPM is assumed. Beats before the first
// instruction or after the last are extrapolated at that instruction's
// tempo; beats between two instructions are interpolated with a tempo that
// varies linearly (in beats) between them.
type Metronome struct {
	instructions []calculatedInstruction
}

// NewMetronome returns an empty Metronome (default 128 BPM).
func NewMetronome() *Metronome { return &Metronome{} }

// AddTempoInstruction inserts a new tempo instruction, keeping the
// instruction list stably sorted by beat and recomputing each
// instruction's concrete time by integrating left to right. Two
// instructions at the same beat encode an instantaneous tempo change with
// no interpolation across that boundary.
func (m *Metronome) AddTempoInstruction(beat Beat, bpm BeatsPerMinute) error {
	if bpm <= 0 {
		return newDomainError("beats-per-minute must be positive")
	}
	m.instructions = append(m.instructions, calculatedInstruction{
		beat:           float64(beat),
		secondsPerBeat: 60.0 / float64(bpm),
	})

	sort.SliceStable(m.instructions, func(i, j int) bool {
		return m.instructions[i].beat < m.instructions[j].beat
	})

	last := calculatedInstruction{
		beat:           0,
		time:           0,
		secondsPerBeat: m.instructions[0].secondsPerBeat,
	}
	for i := range m.instructions {
		inst := &m.instructions[i]
		if inst.beat == last.beat {
			inst.time = last.time
		} else {
			inst.time = integrateBeat(last, *inst, inst.beat)
		}
		last = *inst
	}
	return nil
}

// BeatToTime converts a beat to a Timestamp in seconds.
func (m *Metronome) BeatToTime(beat Beat) (Timestamp, error) {
	b := float64(beat)
	n := len(m.instructions)

	var t float64
	switch n {
	case 0:
		t = (60.0 / 128.0) * b
	case 1:
		t = m.instructions[0].secondsPerBeat * b
	default:
		i := sort.Search(n, func(i int) bool { return m.instructions[i].beat >= b })
		switch {
		case i < n && m.instructions[i].beat == b:
			t = m.instructions[i].time
		case i == 0:
			t = m.instructions[0].secondsPerBeat * b
		case i == n:
			last := m.instructions[n-1]
			t = last.time + (b-last.beat)*last.secondsPerBeat
		default:
			t = integrateBeat(m.instructions[i-1], m.instructions[i], b)
		}
	}
	return NewTimestamp(t)
}

// integrateBeat computes the time at `beat` by integrating the
// linear-in-beat seconds-per-beat function between endpoints a and b.
// Requires b.beat > a.beat.
func integrateBeat(a, b calculatedInstruction, beat float64) float64 {
	b1, spb1 := a.beat, a.secondsPerBeat
	b2, spb2 := b.beat, b.secondsPerBeat
	m := (spb2 - spb1) / (b2 - b1)
	time := m*(beat*beat-b1*b1)/2.0 + (beat-b1)*(spb1-m*b1)
	return a.time + time
}
