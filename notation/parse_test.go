package notation

import (
	"math"
	"testing"

	daw "github.com/chriskillpack/libdaw-go"
)

func tonesFor(t *testing.T, source string, bpm float64) []Tone {
	t.Helper()
	item, err := ParseItem(source)
	if err != nil {
		t.Fatalf("ParseItem(%q) error: %v", source, err)
	}
	metronome := daw.NewMetronome()
	rate, err := daw.NewBeatsPerMinute(bpm)
	if err != nil {
		t.Fatal(err)
	}
	if err := metronome.AddTempoInstruction(daw.BeatZero, rate); err != nil {
		t.Fatal(err)
	}
	tones, err := ResolveTones(item, metronome, daw.A440)
	if err != nil {
		t.Fatalf("ResolveTones error: %v", err)
	}
	return tones
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-2 }

// TestSequenceResolvesToThreeTones mirrors spec scenario 5: parsing
// "+( C4:1 D:1 E:1 )" under A440 at 60bpm yields three one-second tones a
// second apart, with D and E resolved relative to the pitch before them.
func TestSequenceResolvesToThreeTones(t *testing.T) {
	tones := tonesFor(t, "+( C4:1 D:1 E:1 )", 60)
	if len(tones) != 3 {
		t.Fatalf("got %d tones, want 3", len(tones))
	}

	wantStarts := []float64{0, 1, 2}
	wantFreqs := []float64{261.63, 293.66, 329.63}
	for i, tone := range tones {
		if !almostEqual(tone.Start.Seconds(), wantStarts[i]) {
			t.Errorf("tone %d start = %v, want %v", i, tone.Start.Seconds(), wantStarts[i])
		}
		if !almostEqual(tone.Frequency, wantFreqs[i]) {
			t.Errorf("tone %d frequency = %v, want %v", i, tone.Frequency, wantFreqs[i])
		}
		if !almostEqual(tone.Length.Seconds(), 1) {
			t.Errorf("tone %d length = %v, want 1", i, tone.Length.Seconds())
		}
	}
}

// TestOverlappedRunsSequencesConcurrently mirrors spec scenario 6:
// "*( +( C4:1 D4:1 )  +( E4:1 F4:1 ) )" produces four tones, the two
// sequences starting at the same offset, and the Overlapped's own length
// is the max of its children (2 beats).
func TestOverlappedRunsSequencesConcurrently(t *testing.T) {
	tones := tonesFor(t, "*( +( C4:1 D4:1 ) +( E4:1 F4:1 ) )", 60)
	if len(tones) != 4 {
		t.Fatalf("got %d tones, want 4", len(tones))
	}

	wantStarts := []float64{0, 1, 0, 1}
	for i, tone := range tones {
		if !almostEqual(tone.Start.Seconds(), wantStarts[i]) {
			t.Errorf("tone %d start = %v, want %v", i, tone.Start.Seconds(), wantStarts[i])
		}
	}

	item, err := ParseItem("*( +( C4:1 D4:1 ) +( E4:1 F4:1 ) )")
	if err != nil {
		t.Fatal(err)
	}
	length := item.Length(NewResolveState())
	if length != daw.Beat(2) {
		t.Errorf("Overlapped length = %v, want 2", length)
	}
}

func TestParseRest(t *testing.T) {
	tones := tonesFor(t, "+( C4:1 r:1 D4:1 )", 60)
	if len(tones) != 2 {
		t.Fatalf("got %d tones, want 2 (rest produces none)", len(tones))
	}
	if !almostEqual(tones[1].Start.Seconds(), 2) {
		t.Errorf("second tone start = %v, want 2 (after a one-beat rest)", tones[1].Start.Seconds())
	}
}

func TestParseChordSimultaneousTones(t *testing.T) {
	tones := tonesFor(t, "=(C4 E4 G4):1", 60)
	if len(tones) != 3 {
		t.Fatalf("got %d tones, want 3", len(tones))
	}
	for i, tone := range tones {
		if tone.Start.Seconds() != 0 {
			t.Errorf("chord tone %d start = %v, want 0", i, tone.Start.Seconds())
		}
	}
}

func TestParseScaleAndStep(t *testing.T) {
	tones := tonesFor(t, "+( @(C4 D4 E4 F4 G4 A4 B4) 1:1 3:1 5:1 )", 60)
	if len(tones) != 3 {
		t.Fatalf("got %d tones, want 3", len(tones))
	}
	// Step 1 is the first scale degree (C4), step 3 the third (E4).
	wantFreqs := []float64{261.63, 329.63, 392.00}
	for i, tone := range tones {
		if !almostEqual(tone.Frequency, wantFreqs[i]) {
			t.Errorf("tone %d frequency = %v, want %v", i, tone.Frequency, wantFreqs[i])
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"=(C4 E4",
		"+(",
		"Q4",
		"C4 trailing garbage",
	}
	for _, src := range tests {
		if _, err := ParseItem(src); err == nil {
			t.Errorf("ParseItem(%q): expected error, got nil", src)
		}
	}
}

func TestParseInversion(t *testing.T) {
	inv, err := ParseInversion(" -2 ")
	if err != nil {
		t.Fatal(err)
	}
	if inv.Inversion != -2 {
		t.Errorf("Inversion = %v, want -2", inv.Inversion)
	}
}

func TestParseTempoMap(t *testing.T) {
	instructions, err := ParseTempoMap("0:60 4:120")
	if err != nil {
		t.Fatal(err)
	}
	if len(instructions) != 2 {
		t.Fatalf("got %d instructions, want 2", len(instructions))
	}
	if instructions[0].Beat != 0 || instructions[1].Beat != 4 {
		t.Errorf("beats = %v, %v; want 0, 4", instructions[0].Beat, instructions[1].Beat)
	}
}
