package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"

	daw "github.com/chriskillpack/libdaw-go"
	"github.com/chriskillpack/libdaw-go/cmd/internal/config"
	"github.com/chriskillpack/libdaw-go/notation"
)

var (
	flagTempo         = flag.Float64("tempo", 120, "tempo in beats per minute, ignored if -tempomap is given")
	flagTempoMap      = flag.String("tempomap", "", "path to a \"beat:bpm beat:bpm ...\" tempo map file")
	flagPitchStandard = flag.String("pitch-standard", "A440", "pitch standard: A440 or ScientificPitch")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("dawnotate: ")
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

	start := color.New(color.FgCyan).SprintfFunc()
	length := color.New(color.FgMagenta).SprintfFunc()
	freq := color.New(color.FgYellow).SprintfFunc()
	tags := color.New(color.FgGreen).SprintfFunc()

	for i, tone := range tones {
		tagList := ""
		for t := range tone.Tags {
			if tagList != "" {
				tagList += ","
			}
			tagList += t
		}
		fmt.Printf("%4d  start=%s  length=%s  freq=%s",
			i, start("%7.3f", tone.Start.Seconds()), length("%6.3f", tone.Length.Seconds()), freq("%8.2f", tone.Frequency))
		if tagList != "" {
			fmt.Printf("  tags=%s", tags("%s", tagList))
		}
		fmt.Println()
	}
}
