// Package instrument implements a sample-clocked note scheduler: notes are
// queued by start time, spawned into a graph.Graph as a detuned frequency
// node feeding an envelope node, and retired once their length elapses.
package instrument

import (
	"container/heap"

	daw "github.com/chriskillpack/libdaw-go"
	"github.com/chriskillpack/libdaw-go/graph"
	"github.com/chriskillpack/libdaw-go/nodes"
)

// Note is a single scheduled note, defined by frequency rather than note
// name so that it is not tied to any particular tuning or scale. Detuning
// and pitch bend are applied to the underlying frequency node, not here.
type Note struct {
	Start     daw.Timestamp
	Length    daw.Duration
	Frequency float64
}

type queuedNote struct {
	startSample uint64
	length      daw.Duration
	frequency   float64
}

type queuedNoteHeap []queuedNote

func (h queuedNoteHeap) Len() int            { return len(h) }
func (h queuedNoteHeap) Less(i, j int) bool  { return h[i].startSample < h[j].startSample }
func (h queuedNoteHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *queuedNoteHeap) Push(x any)         { *h = append(*h, x.(queuedNote)) }
func (h *queuedNoteHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

type playingNote struct {
	endSample          uint64
	frequencyNode      *nodes.Detune
	frequencyNodeIndex graph.Index
	envelopeNodeIndex  graph.Index
}

type playingNoteHeap []playingNote

func (h playingNoteHeap) Len() int           { return len(h) }
func (h playingNoteHeap) Less(i, j int) bool { return h[i].endSample < h[j].endSample }
func (h playingNoteHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *playingNoteHeap) Push(x any)        { *h = append(*h, x.(playingNote)) }
func (h *playingNoteHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// FrequencyNodeFactory produces a fresh daw.FrequencyNode for each note
// that is spawned, e.g. a new oscillator.
type FrequencyNodeFactory func() daw.FrequencyNode

// Instrument is a daw.Node that schedules Notes onto an internal
// graph.Graph, one Detune-wrapped frequency node plus an envelope node per
// currently sounding note.
type Instrument struct {
	sampleRate     uint32
	makeFrequency  FrequencyNodeFactory
	graph          *graph.Graph
	queue          queuedNoteHeap
	playing        playingNoteHeap
	envelope       []nodes.EnvelopePoint
	sample         uint64
	detune         float64
}

// New builds an Instrument. makeFrequency is called once per spawned note
// to create that note's frequency-producing node; envelope is applied to
// every note's volume over its lifetime.
func New(sampleRate uint32, makeFrequency FrequencyNodeFactory, envelope []nodes.EnvelopePoint) *Instrument {
	return &Instrument{
		sampleRate:    sampleRate,
		makeFrequency: makeFrequency,
		graph:         graph.New(),
		envelope:      envelope,
	}
}

// AddNote schedules note to start playing once the Instrument's sample
// clock reaches its start time.
func (ins *Instrument) AddNote(note Note) {
	startSample := uint64(note.Start.Seconds() * float64(ins.sampleRate))
	heap.Push(&ins.queue, queuedNote{
		startSample: startSample,
		length:      note.Length,
		frequency:   note.Frequency,
	})
}

// SetDetune sets the detune, in octaves, applied to every currently
// playing note (future notes pick it up when spawned).
func (ins *Instrument) SetDetune(detune float64) {
	if ins.detune == detune {
		return
	}
	ins.detune = detune
	for _, note := range ins.playing {
		note.frequencyNode.SetDetune(detune)
	}
}

// Process implements daw.Node: it advances the sample clock, spawns any
// notes whose start time has arrived, retires any notes whose length has
// elapsed, and runs the underlying graph.
func (ins *Instrument) Process(inputs []daw.Sample, outputs *[]daw.Sample) error {
	sample := ins.sample
	ins.sample++
	detune := ins.detune

	if len(ins.queue) == 0 && len(ins.playing) == 0 {
		return nil
	}

	for len(ins.queue) > 0 && ins.queue[0].startSample <= sample {
		note := heap.Pop(&ins.queue).(queuedNote)
		sampleLength := uint64(note.length.Seconds() * float64(ins.sampleRate))
		endSample := note.startSample + sampleLength

		detuneNode := nodes.NewDetune(ins.makeFrequency())
		detuneNode.SetFrequency(note.frequency)
		detuneNode.SetDetune(detune)

		envelopeNode := nodes.NewEnvelope(ins.sampleRate, note.length, ins.envelope)

		frequencyNodeIndex := ins.graph.Add(detuneNode)
		envelopeNodeIndex := ins.graph.Add(envelopeNode)
		if err := ins.graph.Connect(frequencyNodeIndex, envelopeNodeIndex, nil); err != nil {
			return err
		}
		if err := ins.graph.Output(envelopeNodeIndex, nil); err != nil {
			return err
		}
		if err := ins.graph.Input(frequencyNodeIndex, nil); err != nil {
			return err
		}

		heap.Push(&ins.playing, playingNote{
			endSample:          endSample,
			frequencyNode:      detuneNode,
			frequencyNodeIndex: frequencyNodeIndex,
			envelopeNodeIndex:  envelopeNodeIndex,
		})
	}

	for len(ins.playing) > 0 && ins.playing[0].endSample <= sample {
		note := heap.Pop(&ins.playing).(playingNote)
		ins.graph.Remove(note.frequencyNodeIndex)
		ins.graph.Remove(note.envelopeNodeIndex)
	}

	return ins.graph.Process(inputs, outputs)
}
