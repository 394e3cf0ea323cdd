// SPDX-License-Identifier: EPL-2.0

package soundcanvas

import (
	"fmt"
	"io"

	"github.com/developersailor/SoundCanvas/audiostream"
	"github.com/developersailor/SoundCanvas/formats/wav"
	"github.com/developersailor/SoundCanvas/synth"
	"github.com/developersailor/SoundCanvas/utils"
	"github.com/developersailor/SoundCanvas/vizstate"
)

// RenderTone synthesizes one second of shape at 44.1kHz, the conventional
// rendering buffer. Use synth.Generate directly for other rates or
// durations.
func RenderTone(shape synth.Shape, frequency, amplitude float64) ([]float64, error) {
	return synth.Generate(synth.NewSignalSpec(shape, frequency, amplitude))
}

// Bars synthesizes spec and reduces the buffer to n bar amplitudes, each the
// peak magnitude over a contiguous slice of the buffer. This is the mapping
// the spectrum-style views draw.
func Bars(spec synth.SignalSpec, n int) ([]float64, error) {
	samples, err := synth.Generate(spec)
	if err != nil {
		return nil, err
	}
	return vizstate.PeakBuckets(samples, n), nil
}

// WriteToneWAV synthesizes spec and writes it to w as a mono 16-bit PCM WAV
// file. Samples outside [-1, 1] — a harmonic series can overshoot — are
// clamped by the PCM conversion.
func WriteToneWAV(w io.Writer, spec synth.SignalSpec) error {
	samples, err := synth.Generate(spec)
	if err != nil {
		return fmt.Errorf("synthesizing tone: %w", err)
	}

	pcm := make([]int16, len(samples))
	for i, s := range samples {
		pcm[i] = utils.Float64ToInt16(s)
	}

	if err := wav.WriteWAV16(w, int(spec.SampleRate), pcm); err != nil {
		return fmt.Errorf("writing tone: %w", err)
	}
	return nil
}

// Levels drains src and returns one Level per frame of frameSize samples,
// mixing multi-channel sources down to mono. frequency is stamped on every
// snapshot as the carrier the visuals should track.
func Levels(src audiostream.Source, frameSize int, frequency float64) ([]vizstate.Level, error) {
	tracker, err := vizstate.NewTracker(src, frameSize, frequency)
	if err != nil {
		return nil, err
	}

	var levels []vizstate.Level
	for {
		level, err := tracker.Next()
		if err == io.EOF {
			return levels, nil
		}
		if err != nil {
			return levels, fmt.Errorf("tracking levels: %w", err)
		}
		levels = append(levels, level)
	}
}
