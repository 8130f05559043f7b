// Package config turns command-line flag values into the daw types the
// dawplay and dawnotate binaries need: a pitch standard and an envelope
// shape.
package config

import (
	"fmt"
	"strconv"
	"strings"

	daw "github.com/chriskillpack/libdaw-go"
	"github.com/chriskillpack/libdaw-go/nodes"
)

// PitchStandardFromFlag resolves the --pitch-standard flag value into a
// daw.PitchStandard. It accepts the two names daw.PitchStandardByName
// knows plus the empty string, which defaults to A440.
func PitchStandardFromFlag(name string) (daw.PitchStandard, error) {
	if name == "" {
		return daw.A440, nil
	}
	return daw.PitchStandardByName(name)
}

// EnvelopeFromFlag parses a comma-separated list of "whence:volume" pairs
// (e.g. "0:0,0.1:1,0.8:1,1:0" for a simple attack/decay/sustain/release
// shape) into envelope points anchored at their whence fraction with no
// additional offset. An empty string yields a flat, always-on envelope.
func EnvelopeFromFlag(spec string) ([]nodes.EnvelopePoint, error) {
	if spec == "" {
		return []nodes.EnvelopePoint{
			{Offset: nodes.EnvelopeRatioOffset(0), Whence: 0, Volume: 1},
		}, nil
	}

	var points []nodes.EnvelopePoint
	for _, term := range strings.Split(spec, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		whenceStr, volumeStr, ok := strings.Cut(term, ":")
		if !ok {
			return nil, fmt.Errorf("malformed envelope point %q, want \"whence:volume\"", term)
		}
		whence, err := strconv.ParseFloat(whenceStr, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed envelope whence %q: %w", whenceStr, err)
		}
		volume, err := strconv.ParseFloat(volumeStr, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed envelope volume %q: %w", volumeStr, err)
		}
		points = append(points, nodes.EnvelopePoint{
			Offset: nodes.EnvelopeRatioOffset(0),
			Whence: whence,
			Volume: volume,
		})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("envelope spec %q contains no points", spec)
	}
	return points, nil
}
