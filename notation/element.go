package notation

import daw "github.com/chriskillpack/libdaw-go"

// StateMember selects how a Sequence or Overlapped's children feed their
// carry-forward state back to the enclosing context.
type StateMember int

const (
	// StateMemberNone carries nothing back (the default).
	StateMemberNone StateMember = iota
	// StateMemberFirst carries back only the first child's update.
	StateMemberFirst
	// StateMemberLast carries back every child's update, in order.
	StateMemberLast
)

// Element is the behavior shared by every node of a notation tree: Note,
// Chord, Rest, Sequence, Overlapped, Scale, Mode, Set. Each implements
// four conceptual operations against a shared ResolveState. The current
// beat offset travels as state.Offset rather than as a separate
// parameter.
type Element interface {
	// Tones resolves this element to zero or more Tones, starting at
	// state.Offset.
	Tones(metronome *daw.Metronome, pitchStandard daw.PitchStandard, state *ResolveState) ([]Tone, error)

	// Length returns this element's length in beats.
	Length(state *ResolveState) daw.Beat

	// Duration returns this element's duration in beats, measured from
	// its own start (not the enclosing offset).
	Duration(state *ResolveState) daw.Beat

	// UpdateState applies this element's contribution to state so that a
	// following sibling sees the right carry-forward context, including
	// advancing state.Offset where this element occupies time.
	UpdateState(state *ResolveState)
}

// Item is one node of a notation tree: an Element plus the set of tags
// attached at this point in the tree. Tags scope the Tones this Item
// produces; they are not carried forward to siblings.
type Item struct {
	Element Element
	Tags    map[string]struct{}
}

// NewItem wraps element with no tags.
func NewItem(element Element) *Item {
	return &Item{Element: element}
}

// Tones resolves the wrapped element, tagging every produced Tone with
// the union of state.Tags and this Item's own tags.
func (it *Item) Tones(metronome *daw.Metronome, pitchStandard daw.PitchStandard, state *ResolveState) ([]Tone, error) {
	tagged := state.withTags(it.Tags)
	return it.Element.Tones(metronome, pitchStandard, tagged)
}

// Length delegates to the wrapped element.
func (it *Item) Length(state *ResolveState) daw.Beat { return it.Element.Length(state) }

// Duration delegates to the wrapped element.
func (it *Item) Duration(state *ResolveState) daw.Beat { return it.Element.Duration(state) }

// UpdateState delegates to the wrapped element.
func (it *Item) UpdateState(state *ResolveState) { it.Element.UpdateState(state) }

// ResolveTones resolves a root Item to its Tones starting at beat zero
// with a default ResolveState.
func ResolveTones(it *Item, metronome *daw.Metronome, pitchStandard daw.PitchStandard) ([]Tone, error) {
	return it.Tones(metronome, pitchStandard, NewResolveState())
}
