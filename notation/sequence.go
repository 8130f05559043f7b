package notation

import daw "github.com/chriskillpack/libdaw-go"

// Sequence concatenates its children's tones one after another: each
// child is resolved against a state that reflects every preceding
// sibling, then contributes its own update to the working state before
// the next child is resolved.
type Sequence struct {
	Items       []*Item
	StateMember StateMember
}

// Tones resolves each child in turn against a private copy of state,
// concatenating their tones in order.
func (s *Sequence) Tones(metronome *daw.Metronome, pitchStandard daw.PitchStandard, state *ResolveState) ([]Tone, error) {
	working := state.Clone()
	var tones []Tone
	for _, item := range s.Items {
		itemTones, err := item.Tones(metronome, pitchStandard, working)
		if err != nil {
			return nil, err
		}
		tones = append(tones, itemTones...)
		item.UpdateState(working)
	}
	return tones, nil
}

// Length is the sum of the children's lengths, each measured against the
// state left by the preceding siblings.
func (s *Sequence) Length(state *ResolveState) daw.Beat {
	working := state.Clone()
	var total daw.Beat
	for _, item := range s.Items {
		total = total.Add(item.Length(working))
		item.UpdateState(working)
	}
	return total
}

// Duration is the max, over children, of that child's own local start
// (the sum of the lengths of the children before it) plus its duration.
func (s *Sequence) Duration(state *ResolveState) daw.Beat {
	working := state.Clone()
	var start, duration daw.Beat
	for _, item := range s.Items {
		itemDuration := item.Duration(working)
		itemLength := item.Length(working)
		item.UpdateState(working)
		duration = duration.Max(start.Add(itemDuration))
		start = start.Add(itemLength)
	}
	return duration
}

// UpdateState advances state.Offset past the whole sequence, then
// applies the carry-forward rule named by StateMember: None carries
// nothing back; First carries back only the first child's update; Last
// carries back every child's update in order.
func (s *Sequence) UpdateState(state *ResolveState) {
	postOffset := state.Offset.Add(s.Length(state))
	switch s.StateMember {
	case StateMemberFirst:
		if len(s.Items) > 0 {
			s.Items[0].UpdateState(state)
		}
	case StateMemberLast:
		for _, item := range s.Items {
			item.UpdateState(state)
		}
	}
	state.Offset = postOffset
}
