// SPDX-License-Identifier: EPL-2.0

package vizstate

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/developersailor/SoundCanvas/audiostream"
)

var ErrInvalidFrameSize = errors.New("tracker frame size must be at least 1")

// Tracker consumes a mono sample stream and emits one Level per frame of
// frameSize samples: the frame's peak amplitude, the configured carrier
// frequency, and Playing until the stream ends.
type Tracker struct {
	src       audiostream.Source
	frequency float64
	frame     []float32
	eof       bool
}

// NewTracker wraps src, mixing it down to mono if needed.
func NewTracker(src audiostream.Source, frameSize int, frequency float64) (*Tracker, error) {
	if frameSize < 1 {
		return nil, ErrInvalidFrameSize
	}
	if src.Channels() != 1 {
		src = audiostream.NewMonoMixer(src)
	}
	return &Tracker{
		src:       src,
		frequency: frequency,
		frame:     make([]float32, frameSize),
	}, nil
}

// Next returns the snapshot for the next frame. When the stream is drained
// it returns a zero-amplitude, non-playing Level together with io.EOF.
func (t *Tracker) Next() (Level, error) {
	if t.eof {
		return Level{Frequency: t.frequency}, io.EOF
	}

	n, err := t.src.ReadSamples(t.frame)
	if n == 0 {
		t.eof = true
		if err != nil && err != io.EOF {
			return Level{Frequency: t.frequency}, fmt.Errorf("reading frame: %w", err)
		}
		return Level{Frequency: t.frequency}, io.EOF
	}

	var peak float64
	for _, s := range t.frame[:n] {
		peak = max(peak, math.Abs(float64(s)))
	}

	if err == io.EOF {
		// Emit the final partial frame now, report EOF on the next call.
		t.eof = true
	} else if err != nil {
		return Level{Frequency: t.frequency}, fmt.Errorf("reading frame: %w", err)
	}

	return Level{Amplitude: peak, Frequency: t.frequency, Playing: true}, nil
}

// Close closes the underlying source.
func (t *Tracker) Close() error {
	return t.src.Close()
}
