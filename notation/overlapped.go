package notation

import daw "github.com/chriskillpack/libdaw-go"

// Overlapped resolves all of its children at the same offset, producing
// the union of their tones. Unlike Sequence it does not advance
// state.Offset on its own; only an explicit StateMember carries anything
// back to the enclosing context.
type Overlapped struct {
	Items       []*Item
	StateMember StateMember
}

// Tones resolves every child against a private copy of state, all
// starting at the same offset, and concatenates their tones.
func (o *Overlapped) Tones(metronome *daw.Metronome, pitchStandard daw.PitchStandard, state *ResolveState) ([]Tone, error) {
	offset := state.Offset
	var tones []Tone
	for _, item := range o.Items {
		working := state.Clone()
		working.Offset = offset
		itemTones, err := item.Tones(metronome, pitchStandard, working)
		if err != nil {
			return nil, err
		}
		tones = append(tones, itemTones...)
	}
	return tones, nil
}

// Length is the max of the children's lengths, each measured
// independently against the incoming state.
func (o *Overlapped) Length(state *ResolveState) daw.Beat {
	var max daw.Beat
	for _, item := range o.Items {
		max = max.Max(item.Length(state))
	}
	return max
}

// Duration is the max of the children's durations, each measured
// independently against the incoming state.
func (o *Overlapped) Duration(state *ResolveState) daw.Beat {
	var max daw.Beat
	for _, item := range o.Items {
		max = max.Max(item.Duration(state))
	}
	return max
}

// UpdateState applies the carry-forward rule named by StateMember: None
// carries nothing back; First carries back only the first child's
// update; Last carries back every child's update in order. The Overlapped
// adds no offset advance of its own; any change to state.Offset comes from
// the children's updates carried back under First or Last.
func (o *Overlapped) UpdateState(state *ResolveState) {
	switch o.StateMember {
	case StateMemberFirst:
		if len(o.Items) > 0 {
			o.Items[0].UpdateState(state)
		}
	case StateMemberLast:
		for _, item := range o.Items {
			item.UpdateState(state)
		}
	}
}
