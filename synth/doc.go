// SPDX-License-Identifier: EPL-2.0

// Package synth generates discretized periodic signals from a small set of
// waveform shapes.
//
// The package is a pure numeric core: no I/O, no state shared between calls,
// no dependency beyond the standard math package. Every call is a function
// from a SignalSpec value to a finite sample buffer.
//
// # Signal Model
//
// A SignalSpec selects a shape (sine, square, sawtooth, triangle or a
// harmonic series) and the frequency, amplitude, sample rate and duration of
// the requested buffer. Generate evaluates the shape's formula at
// t = i/SampleRate for i in [0, N) where N = int(SampleRate*Duration):
//
//	spec := synth.SignalSpec{
//	    Shape:      synth.Sine,
//	    Frequency:  440,
//	    Amplitude:  1,
//	    SampleRate: 44100,
//	    Duration:   1,
//	}
//	samples, err := synth.Generate(spec)
//
// Samples are float64 values; index order is playback order.
//
// # Shapes
//
//   - Sine: amplitude * sin(2π·f·t)
//   - Square: sign of the sine, scaled by amplitude. An exact zero of the
//     sine maps to -amplitude, not zero.
//   - Sawtooth: linear ramp from -amplitude to +amplitude once per period.
//   - Triangle: piecewise-linear wave between -amplitude and +amplitude.
//   - Harmonics: additive sum of H sine partials at integer multiples of the
//     fundamental, the h-th weighted by amplitude/h. The sum is not
//     normalized, so the peak of the result can exceed the nominal
//     amplitude when partials align. This is deliberate: consumers map raw
//     sample magnitudes to visual extent and rely on the unscaled sum.
//
// # Degenerate Inputs
//
// A zero (or negative) SampleRate or Duration yields an empty buffer, not an
// error. Zero frequency yields a constant buffer. Negative frequency or
// amplitude invert phase and are accepted as-is. The only rejected inputs
// are an unknown shape and a non-positive Harmonics count for the Harmonics
// shape.
//
// # Streaming
//
// Osc wraps the same formulas in an endless phase-accumulator oscillator
// that satisfies the audiostream.Source contract, so a synthesized tone can
// feed any pipeline that accepts decoded audio.
package synth
