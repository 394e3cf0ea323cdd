// SPDX-License-Identifier: EPL-2.0

package synth

// Osc streams the spec's waveform endlessly as mono float32 samples. It
// satisfies the audiostream.Source interface, so a synthesized tone can feed
// the same pipelines as a decoded file.
//
// The oscillator counts emitted samples and evaluates the shape formula at
// t = n/SampleRate, so the stream is sample-for-sample identical to
// concatenated Generate buffers and repeat runs are deterministic. It never
// reports io.EOF; callers decide when the tone stops.
type Osc struct {
	spec  SignalSpec
	value func(t float64) float64
	n     int64
}

// NewOsc validates spec and returns an oscillator at spec.SampleRate.
// Duration is ignored; the stream is unbounded.
func NewOsc(spec SignalSpec) (*Osc, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	if spec.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	return &Osc{spec: spec, value: spec.valueFunc()}, nil
}

func (o *Osc) SampleRate() int { return int(o.spec.SampleRate) }
func (o *Osc) Channels() int   { return 1 }
func (o *Osc) BufSize() int    { return 4096 }
func (o *Osc) Close() error    { return nil }

// Reset rewinds the oscillator to its initial phase.
func (o *Osc) Reset() { o.n = 0 }

// ReadSamples always fills dst completely and never returns an error.
func (o *Osc) ReadSamples(dst []float32) (int, error) {
	for i := range dst {
		dst[i] = float32(o.value(float64(o.n) / o.spec.SampleRate))
		o.n++
	}
	return len(dst), nil
}
