package main

import (
	"flag"
	"log"
	"os"

	daw "github.com/chriskillpack/libdaw-go"
	"github.com/chriskillpack/libdaw-go/cmd/internal/config"
	"github.com/chriskillpack/libdaw-go/instrument"
	"github.com/chriskillpack/libdaw-go/nodes"
	"github.com/chriskillpack/libdaw-go/notation"
)

var (
	flagHz            = flag.Int("hz", 44100, "output hz")
	flagTempo         = flag.Float64("tempo", 120, "tempo in beats per minute, ignored if -tempomap is given")
	flagTempoMap      = flag.String("tempomap", "", "path to a \"beat:bpm beat:bpm ...\" tempo map file")
	flagPitchStandard = flag.String("pitch-standard", "A440", "pitch standard: A440 or ScientificPitch")
	flagEnvelope      = flag.String("envelope", "", "comma-separated whence:volume envelope points, e.g. \"0:0,0.1:1,0.8:1,1:0\"")
	flagWave          = flag.String("wave", "sine", "oscillator waveform: sine, square, triangle, or sawtooth")
	flagDetune        = flag.Float64("detune", 0, "detune applied to every note, in octaves")
	flagNoUI          = flag.Bool("noui", false, "disable the live playback UI")
)

func waveformFactory(wave string, sampleRate float64) (instrument.FrequencyNodeFactory, error) {
	switch wave {
	case "sine":
		return func() daw.FrequencyNode { return nodes.NewSineOscillator(sampleRate, 2, 0) }, nil
	case "square":
		return func() daw.FrequencyNode { return nodes.NewSquareOscillator(sampleRate, 2, 0) }, nil
	case "triangle":
		return func() daw.FrequencyNode { return nodes.NewTriangleOscillator(sampleRate, 2, 0) }, nil
	case "sawtooth":
		return func() daw.FrequencyNode { return nodes.NewSawtoothOscillator(sampleRate, 2, 0) }, nil
	default:
		log.Fatalf("unrecognized waveform %q", wave)
		return nil, nil
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("dawplay: ")
	flag.Parse()

	if len(flag.Args()) == 0 {
		log.Fatal("Missing notation filename")
	}

	notationBytes, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	item, err := notation.ParseItem(string(notationBytes))
	if err != nil {
		log.Fatal(err)
	}

	metronome := daw.NewMetronome()
	if *flagTempoMap != "" {
		mapBytes, err := os.ReadFile(*flagTempoMap)
		if err != nil {
			log.Fatal(err)
		}
		instructions, err := notation.ParseTempoMap(string(mapBytes))
		if err != nil {
			log.Fatal(err)
		}
		for _, inst := range instructions {
			if err := metronome.AddTempoInstruction(inst.Beat, inst.BPM); err != nil {
				log.Fatal(err)
			}
		}
	} else {
		bpm, err := daw.NewBeatsPerMinute(*flagTempo)
		if err != nil {
			log.Fatal(err)
		}
		if err := metronome.AddTempoInstruction(daw.BeatZero, bpm); err != nil {
			log.Fatal(err)
		}
	}

	pitchStandard, err := config.PitchStandardFromFlag(*flagPitchStandard)
	if err != nil {
		log.Fatal(err)
	}

	tones, err := notation.ResolveTones(item, metronome, pitchStandard)
	if err != nil {
		log.Fatal(err)
	}

	envelope, err := config.EnvelopeFromFlag(*flagEnvelope)
	if err != nil {
		log.Fatal(err)
	}

	makeFrequency, err := waveformFactory(*flagWave, float64(*flagHz))
	if err != nil {
		log.Fatal(err)
	}

	ins := instrument.New(uint32(*flagHz), makeFrequency, envelope)
	ins.SetDetune(*flagDetune)

	var endTime daw.Timestamp
	for _, tone := range tones {
		ins.AddNote(instrument.Note{Start: tone.Start, Length: tone.Length, Frequency: tone.Frequency})
		end := tone.Start.Plus(tone.Length)
		if end > endTime {
			endTime = end
		}
	}

	ap := NewAudioPlayer(ins, *flagHz, endTime, *flagDetune, *flagNoUI)
	if err := ap.Run(); err != nil {
		log.Fatal(err)
	}
}
