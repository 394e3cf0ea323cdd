// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic in-memory sources for pipeline
// tests. The mock satisfies the audiostream.Source contract without
// importing it, so any package in the module can use it.
package audiotest

import (
	"io"
	"math"
)

// Mock emits a fixed number of frames computed by a sample function.
type Mock struct {
	rate     int
	channels int
	frames   int
	emitted  int
	sample   func(frame, channel int) float32
}

// New returns a mock source that emits frames sample values from fn.
func New(rate, channels, frames int, fn func(frame, channel int) float32) *Mock {
	return &Mock{rate: rate, channels: channels, frames: frames, sample: fn}
}

// Silence returns a mock source of all-zero frames.
func Silence(rate, channels, frames int) *Mock {
	return New(rate, channels, frames, func(int, int) float32 { return 0 })
}

// Constant returns a mock source where every sample is v.
func Constant(rate, channels, frames int, v float32) *Mock {
	return New(rate, channels, frames, func(int, int) float32 { return v })
}

// Sine returns a mock source carrying a freq Hz sine on every channel.
func Sine(rate, channels, frames int, freq float64) *Mock {
	return New(rate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(rate)
		return float32(math.Sin(2 * math.Pi * freq * t))
	})
}

func (m *Mock) SampleRate() int { return m.rate }
func (m *Mock) Channels() int   { return m.channels }
func (m *Mock) BufSize() int    { return 4096 }
func (m *Mock) Close() error    { return nil }

func (m *Mock) ReadSamples(dst []float32) (int, error) {
	if m.emitted >= m.frames {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if remaining := m.frames - m.emitted; frames > remaining {
		frames = remaining
	}

	for f := 0; f < frames; f++ {
		for c := 0; c < m.channels; c++ {
			dst[f*m.channels+c] = m.sample(m.emitted+f, c)
		}
	}
	m.emitted += frames

	return frames * m.channels, nil
}
