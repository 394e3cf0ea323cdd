// SPDX-License-Identifier: EPL-2.0

package synth

// Conventional parameter values used by NewSignalSpec. Generate itself takes
// every field literally, so an explicit zero Duration really means an empty
// buffer.
const (
	DefaultSampleRate = 44100.0
	DefaultDuration   = 1.0
	DefaultHarmonics  = 5
)

// SignalSpec describes one synthesis request. It is a plain value; Generate
// never mutates it and two identical specs always produce bit-identical
// buffers.
type SignalSpec struct {
	Shape Shape

	// Frequency of the fundamental in Hz. Zero degenerates to a constant
	// buffer; negative values invert phase and are accepted.
	Frequency float64

	// Amplitude is the peak magnitude scalar. The generated waveform is
	// linear in Amplitude; negative values invert the signal.
	Amplitude float64

	// SampleRate in samples per second. Zero or negative yields an empty
	// buffer.
	SampleRate float64

	// Duration of the buffer in seconds. Zero or negative yields an empty
	// buffer.
	Duration float64

	// Harmonics is the number of partials summed by the Harmonics shape.
	// Ignored by every other shape. Must be at least 1 when Shape is
	// Harmonics.
	Harmonics int
}

// NewSignalSpec builds a spec for shape at the given frequency and amplitude
// with the conventional one-second, 44.1kHz, five-partial defaults. Callers
// that need other rates or durations set the fields directly.
func NewSignalSpec(shape Shape, frequency, amplitude float64) SignalSpec {
	return SignalSpec{
		Shape:      shape,
		Frequency:  frequency,
		Amplitude:  amplitude,
		SampleRate: DefaultSampleRate,
		Duration:   DefaultDuration,
		Harmonics:  DefaultHarmonics,
	}
}

// NumSamples reports the buffer length Generate produces for the spec:
// int(SampleRate * Duration), truncated toward zero, never negative.
func (s SignalSpec) NumSamples() int {
	n := int(s.SampleRate * s.Duration)
	if n < 0 {
		return 0
	}
	return n
}

// validate rejects the inputs the formulas cannot give a meaning to.
// Degenerate rates and durations are not errors; they produce empty or
// constant buffers instead.
func (s SignalSpec) validate() error {
	if _, ok := shapeNames[s.Shape]; !ok {
		return ErrUnknownShape
	}
	if s.Shape == Harmonics && s.Harmonics < 1 {
		return ErrInvalidHarmonics
	}
	return nil
}
