// Package notation implements the musical notation resolver: a tree of
// Items that traverses with a carry-forward ResolveState and emits
// absolute timestamped Tones via a Metronome and PitchStandard.
package notation

import (
	"github.com/huandu/go-clone/generic"

	daw "github.com/chriskillpack/libdaw-go"
)

// Tone is a concrete audible event produced by resolving a notation tree.
type Tone struct {
	Start     daw.Timestamp
	Length    daw.Duration
	Frequency float64
	Tags      map[string]struct{}
}

// ResolveState is the carry-forward context threaded through a notation
// tree traversal. It is cloned when descending into a subtree whose state
// must not leak to its siblings (e.g. each alternative of an Overlapped),
// and mutated in place when a sibling's update_state feeds into the next.
type ResolveState struct {
	Offset      daw.Beat
	Pitch       daw.Pitch
	Length      daw.Beat
	Duration    DurationExpr
	Scale       []daw.Pitch
	Mode        int64
	Inversion   int64
	ScaleOctave int8
	Step        int64
	Tags        map[string]struct{}
}

// NewResolveState returns the default starting state: pitch C4, length one
// beat, duration equal to length, no scale, mode 0, no inversion.
func NewResolveState() *ResolveState {
	return &ResolveState{
		Pitch: daw.Pitch{
			Class:  daw.PitchClass{Name: daw.PitchC},
			Octave: 4,
		},
		Length:   daw.BeatOne,
		Duration: DurationExpr{IsRatio: true, Ratio: 1},
		Step:     1,
	}
}

// Clone deep-copies the state, including its Scale and Tags, so mutation
// of the clone never affects the original.
func (s *ResolveState) Clone() *ResolveState {
	return clone.Clone(s).(*ResolveState)
}

// withTags returns a shallow copy of s with extra merged into its Tags, or
// s itself when extra is empty.
// Used when an Item's own tags should scope the tones it produces without
// being carried forward to later siblings.
func (s *ResolveState) withTags(extra map[string]struct{}) *ResolveState {
	if len(extra) == 0 {
		return s
	}
	merged := make(map[string]struct{}, len(s.Tags)+len(extra))
	for t := range s.Tags {
		merged[t] = struct{}{}
	}
	for t := range extra {
		merged[t] = struct{}{}
	}
	next := *s
	next.Tags = merged
	return &next
}
