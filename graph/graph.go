// Package graph implements the processing graph that wires daw.Node values
// together into an audio-processing network: index 0 is the reserved
// external input slot, index 1 is the reserved external output slot, and
// every other index is a node added by the caller.
package graph

import (
	"sort"

	daw "github.com/chriskillpack/libdaw-go"
	"github.com/chriskillpack/libdaw-go/nodes"
)

// Index identifies a node slot within a Graph. Index(0) is always the
// external input and Index(1) is always the external output.
type Index int

// InputIndex and OutputIndex name the two reserved slots every Graph is
// constructed with.
const (
	InputIndex  Index = 0
	OutputIndex Index = 1
)

// input describes one incoming edge to a slot: a source node and,
// optionally, a single stream (channel-group) index to take from it. A nil
// Stream means all of the source's outputs are taken.
type input struct {
	source Index
	stream *int
}

type slot struct {
	node   daw.Node
	output []daw.Sample
	scratch []daw.Sample
	inputs []input
}

type processList struct {
	order     []Index
	memo      map[Index]struct{}
	reprocess bool
}

// Graph is a directed, possibly cyclic, graph of daw.Node values. Index 0
// and Index 1 are reserved Passthrough slots representing, respectively,
// the graph's external input and external output.
type Graph struct {
	slots      []*slot
	emptySlots map[Index]struct{}
	setSlots   map[Index]struct{}
	list       processList
}

// New builds a Graph with its two reserved Passthrough slots already
// installed at Index(0) and Index(1).
func New() *Graph {
	g := &Graph{
		emptySlots: make(map[Index]struct{}),
		setSlots:   make(map[Index]struct{}),
		list:       processList{memo: make(map[Index]struct{})},
	}
	g.Add(nodes.NewPassthrough())
	g.Add(nodes.NewPassthrough())
	return g
}

// Add installs node into the graph, reusing a freed slot index if one is
// available, and returns its Index.
func (g *Graph) Add(node daw.Node) Index {
	g.list.reprocess = true
	s := &slot{node: node}

	for index := range g.emptySlots {
		delete(g.emptySlots, index)
		g.setSlots[index] = struct{}{}
		g.slots[index] = s
		return index
	}

	index := Index(len(g.slots))
	g.slots = append(g.slots, s)
	g.setSlots[index] = struct{}{}
	return index
}

// Remove detaches the node at index, freeing the slot and dropping any
// edges other slots held into it. It panics if index names a reserved
// slot. The removed node is returned, or nil if the slot was already
// empty.
func (g *Graph) Remove(index Index) daw.Node {
	if index == InputIndex || index == OutputIndex {
		panic("graph: cannot remove a reserved slot")
	}
	g.list.reprocess = true

	s := g.slots[index]
	if s == nil {
		return nil
	}
	g.slots[index] = nil
	g.emptySlots[index] = struct{}{}
	delete(g.setSlots, index)

	for other := range g.setSlots {
		otherSlot := g.slots[other]
		filtered := otherSlot.inputs[:0]
		for _, in := range otherSlot.inputs {
			if in.source != index {
				filtered = append(filtered, in)
			}
		}
		otherSlot.inputs = filtered
	}
	return s.node
}

func (g *Graph) innerConnect(source, destination Index, stream *int) error {
	if int(source) >= len(g.slots) || g.slots[source] == nil {
		return daw.NewStructuralError("graph: source is not a valid index")
	}
	if int(destination) >= len(g.slots) || g.slots[destination] == nil {
		return daw.NewStructuralError("graph: destination is not a valid index")
	}
	g.list.reprocess = true
	g.slots[destination].inputs = append(g.slots[destination].inputs, input{source: source, stream: stream})
	return nil
}

// Connect wires the given stream of source's output (or all of them, if
// stream is nil) into destination. Neither endpoint may be the reserved
// input or output slot; use Input/Output for those.
func (g *Graph) Connect(source, destination Index, stream *int) error {
	if destination == InputIndex {
		return daw.NewStructuralError("graph: use Input instead of connecting to the reserved input slot")
	}
	if source == InputIndex {
		return daw.NewStructuralError("graph: cannot use the reserved input slot as a connection source")
	}
	if destination == OutputIndex {
		return daw.NewStructuralError("graph: use Output instead of connecting to the reserved output slot")
	}
	if source == OutputIndex {
		return daw.NewStructuralError("graph: cannot use the reserved output slot as a connection source")
	}
	return g.innerConnect(source, destination, stream)
}

func (g *Graph) innerDisconnect(source, destination Index, stream *int) error {
	if int(destination) >= len(g.slots) || g.slots[destination] == nil {
		return daw.NewStructuralError("graph: destination is not a valid index")
	}
	g.list.reprocess = true
	d := g.slots[destination]
	for i := len(d.inputs) - 1; i >= 0; i-- {
		in := d.inputs[i]
		if in.source == source && sameStream(in.stream, stream) {
			d.inputs = append(d.inputs[:i], d.inputs[i+1:]...)
			return nil
		}
	}
	return daw.NewStructuralError("graph: no matching connection to disconnect")
}

func sameStream(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Disconnect removes the last-added connection matching source,
// destination, and stream.
func (g *Graph) Disconnect(source, destination Index, stream *int) error {
	return g.innerDisconnect(source, destination, stream)
}

// Input wires the graph's external input into destination.
func (g *Graph) Input(destination Index, stream *int) error {
	if destination == InputIndex || destination == OutputIndex {
		return daw.NewStructuralError("graph: cannot route the reserved slots to themselves")
	}
	return g.innerConnect(InputIndex, destination, stream)
}

// RemoveInput removes a connection from the graph's external input to
// destination.
func (g *Graph) RemoveInput(destination Index, stream *int) error {
	if destination == InputIndex || destination == OutputIndex {
		return daw.NewStructuralError("graph: cannot remove a reserved slot's self routing")
	}
	return g.innerDisconnect(InputIndex, destination, stream)
}

// Output wires source into the graph's external output.
func (g *Graph) Output(source Index, stream *int) error {
	if source == InputIndex || source == OutputIndex {
		return daw.NewStructuralError("graph: cannot route the reserved slots to themselves")
	}
	return g.innerConnect(source, OutputIndex, stream)
}

// RemoveOutput removes a connection from source to the graph's external
// output.
func (g *Graph) RemoveOutput(source Index, stream *int) error {
	if source == InputIndex || source == OutputIndex {
		return daw.NewStructuralError("graph: cannot remove a reserved slot's self routing")
	}
	return g.innerDisconnect(source, OutputIndex, stream)
}

func (g *Graph) walk(index Index) {
	if _, seen := g.list.memo[index]; seen {
		return
	}
	g.list.memo[index] = struct{}{}
	g.list.order = append(g.list.order, index)
	s := g.slots[index]
	if s == nil {
		return
	}
	for _, in := range s.inputs {
		g.walk(in.source)
	}
}

// buildProcessList rebuilds the reverse-topological processing order,
// rooted at the output slot, if the graph has changed since the last
// build. The input slot is memoized before the walk so that it is always
// deferred to the very end of the list regardless of whether anything
// connects to it directly.
func (g *Graph) buildProcessList() {
	if !g.list.reprocess {
		return
	}
	g.list.order = g.list.order[:0]
	for k := range g.list.memo {
		delete(g.list.memo, k)
	}
	g.list.memo[InputIndex] = struct{}{}
	g.walk(OutputIndex)

	if len(g.list.order) < len(g.setSlots) {
		indices := make([]Index, 0, len(g.setSlots))
		for index := range g.setSlots {
			indices = append(indices, index)
		}
		sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })
		for _, index := range indices {
			g.walk(index)
		}
	}
	g.list.order = append(g.list.order, InputIndex)
	g.list.reprocess = false
}

// Process runs every node in the graph from the roots down to the output
// slot and returns the output slot's resulting samples. inputs feeds the
// reserved input slot.
func (g *Graph) Process(inputs []daw.Sample, outputs *[]daw.Sample) error {
	g.buildProcessList()

	for i := len(g.list.order) - 1; i >= 0; i-- {
		index := g.list.order[i]
		s := g.slots[index]
		if s == nil {
			continue
		}

		s.scratch = s.scratch[:0]
		if index == InputIndex {
			s.scratch = append(s.scratch, inputs...)
		} else if len(s.inputs) > 0 {
			for _, in := range s.inputs {
				source := g.slots[in.source]
				if source == nil {
					continue
				}
				if in.stream != nil {
					if *in.stream < len(source.output) {
						s.scratch = append(s.scratch, source.output[*in.stream])
					}
				} else {
					s.scratch = append(s.scratch, source.output...)
				}
			}
		}

		s.output = s.output[:0]
		if err := s.node.Process(s.scratch, &s.output); err != nil {
			return err
		}
	}

	*outputs = append(*outputs, g.slots[OutputIndex].output...)
	return nil
}
