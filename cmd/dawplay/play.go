package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"
	"github.com/fatih/color"
	"github.com/gordonklaus/portaudio"

	daw "github.com/chriskillpack/libdaw-go"
	"github.com/chriskillpack/libdaw-go/instrument"
	"github.com/chriskillpack/libdaw-go/internal/clamp"
)

var (
	white = color.New(color.FgWhite).SprintfFunc()
	blue  = color.New(color.FgHiBlue).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
)

const (
	escape     = "\x1b["
	hideCursor = escape + "?25l"
	showCursor = escape + "?25h"

	audioBufferSize = 756 / 2
	progressWidth   = 40
)

// AudioPlayer encapsulates audio playback and the live progress UI for a
// resolved note graph.
type AudioPlayer struct {
	ins        *instrument.Instrument
	sampleRate int
	endTime    daw.Timestamp
	stream     *portaudio.Stream
	scratch    []daw.Sample

	uiWriter io.Writer
	played   uint64
	paused   bool
	detune   float64

	ctx            context.Context
	cancelFn       context.CancelFunc
	wg             sync.WaitGroup
	stopOnce       sync.Once
	terminated     bool
	keyboardDoneCh chan struct{}
}

// NewAudioPlayer builds an AudioPlayer that drives ins at sampleRate, with
// endTime sizing the progress display and ending playback once reached.
func NewAudioPlayer(ins *instrument.Instrument, sampleRate int, endTime daw.Timestamp, detune float64, noUI bool) *AudioPlayer {
	var uiw io.Writer = os.Stdout
	if noUI {
		uiw = io.Discard
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &AudioPlayer{
		ins:            ins,
		sampleRate:     sampleRate,
		endTime:        endTime,
		detune:         detune,
		uiWriter:       uiw,
		ctx:            ctx,
		cancelFn:       cancel,
		keyboardDoneCh: make(chan struct{}),
	}
}

// Run starts audio playback and the progress UI and blocks until playback
// finishes or the user quits.
func (ap *AudioPlayer) Run() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}

	if err := ap.setupAudioStream(); err != nil {
		return err
	}

	ap.setupSignalHandlers()
	ap.setupKeyboardHandlers()

	fmt.Fprint(ap.uiWriter, hideCursor)

	for {
		select {
		case <-ap.ctx.Done():
			goto exit
		default:
		}

		ap.renderUI()

		elapsed := float64(ap.played) / float64(ap.sampleRate)
		if elapsed >= ap.endTime.Seconds() {
			ap.Stop()
			break
		}

		time.Sleep(33 * time.Millisecond)
	}

exit:
	fmt.Fprint(ap.uiWriter, showCursor)
	fmt.Fprintln(ap.uiWriter)

	select {
	case <-ap.keyboardDoneCh:
	case <-time.After(500 * time.Millisecond):
	}

	ap.wg.Wait()
	return nil
}

func (ap *AudioPlayer) setupAudioStream() error {
	stream, err := portaudio.OpenDefaultStream(
		0, 2,
		float64(ap.sampleRate),
		audioBufferSize,
		ap.streamCallback,
	)
	if err != nil {
		return err
	}
	ap.stream = stream
	if err := stream.Start(); err != nil {
		stream.Close()
		return err
	}
	return nil
}

// streamCallback is called by PortAudio to fill out with the next block of
// stereo PCM samples, one Instrument.Process tick per output frame.
func (ap *AudioPlayer) streamCallback(out []int16) {
	frames := len(out) / 2

	for i := 0; i < frames; i++ {
		if ap.paused {
			out[2*i] = 0
			out[2*i+1] = 0
			continue
		}

		ap.scratch = ap.scratch[:0]
		if err := ap.ins.Process(nil, &ap.scratch); err != nil {
			out[2*i] = 0
			out[2*i+1] = 0
			continue
		}
		ap.played++

		if len(ap.scratch) == 0 {
			out[2*i] = 0
			out[2*i+1] = 0
			continue
		}

		active := ap.scratch[0].Active()
		left, right := active[0], active[0]
		if len(active) > 1 {
			right = active[1]
		}
		out[2*i] = toInt16(left)
		out[2*i+1] = toInt16(right)
	}
}

func toInt16(v float64) int16 {
	return int16(clamp.Unit(v) * 32767)
}

func (ap *AudioPlayer) setupSignalHandlers() {
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, syscall.SIGINT)

	ap.wg.Add(1)
	go func() {
		defer ap.wg.Done()
		select {
		case <-ap.ctx.Done():
		case <-sigch:
			ap.Stop()
		}
	}()
}

func (ap *AudioPlayer) setupKeyboardHandlers() {
	ap.wg.Add(1)
	go func() {
		defer ap.wg.Done()
		const detuneStep = 1.0 / 12.0 // one semitone, in octaves
		keyboard.Listen(func(key keys.Key) (stop bool, err error) {
			switch {
			case key.Code == keys.CtrlC || key.Code == keys.Escape:
				ap.Stop()
				return true, nil
			case key.Code == keys.RuneKey && len(key.Runes) > 0 && key.Runes[0] == 'q':
				ap.Stop()
				return true, nil
			case key.Code == keys.Space:
				ap.paused = !ap.paused
			case key.Code == keys.Up:
				ap.detune += detuneStep
				ap.ins.SetDetune(ap.detune)
			case key.Code == keys.Down:
				ap.detune -= detuneStep
				ap.ins.SetDetune(ap.detune)
			}
			return false, nil
		})
		close(ap.keyboardDoneCh)
	}()
}

// Stop performs a clean shutdown of the stream and PortAudio.
func (ap *AudioPlayer) Stop() {
	ap.stopOnce.Do(func() {
		ap.cancelFn()
		if ap.stream != nil {
			ap.stream.Stop()
			ap.stream.Close()
		}
		if !ap.terminated {
			portaudio.Terminate()
			ap.terminated = true
		}
	})
}

// renderUI draws a single-line progress bar over the elapsed/total time.
func (ap *AudioPlayer) renderUI() {
	elapsed := float64(ap.played) / float64(ap.sampleRate)
	total := ap.endTime.Seconds()
	frac := 0.0
	if total > 0 {
		frac = math.Min(1, elapsed/total)
	}

	filled := int(frac * progressWidth)
	bar := green(repeat("#", filled)) + repeat("-", progressWidth-filled)

	state := "playing"
	if ap.paused {
		state = "paused"
	}

	fmt.Fprintf(ap.uiWriter, "\r%s [%s] %s %5.1fs / %5.1fs %s",
		blue(state), bar, white(""), elapsed, total, hideCursor)
}

func repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
