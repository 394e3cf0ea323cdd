// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

const tau = 2 * math.Pi

// Generate synthesizes one buffer for spec. The returned slice has
// spec.NumSamples() elements, sample i holding the signal value at
// t = i/SampleRate. A degenerate rate or duration returns an empty,
// non-nil slice.
func Generate(spec SignalSpec) ([]float64, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	out := make([]float64, spec.NumSamples())
	value := spec.valueFunc()
	for i := range out {
		out[i] = value(float64(i) / spec.SampleRate)
	}
	return out, nil
}

// valueFunc returns the continuous-time formula for the spec's shape.
// Callers must validate the spec first.
func (s SignalSpec) valueFunc() func(t float64) float64 {
	switch s.Shape {
	case Square:
		return s.squareAt
	case Sawtooth:
		return s.sawtoothAt
	case Triangle:
		return s.triangleAt
	case Harmonics:
		return s.harmonicsAt
	default:
		return s.sineAt
	}
}

func (s SignalSpec) sineAt(t float64) float64 {
	return s.Amplitude * math.Sin(tau*s.Frequency*t)
}

// squareAt keeps the strict >0 sign test: an exact zero of the sine maps to
// -Amplitude. Downstream consumers were built against that tie-break, so it
// is part of the contract even though it makes a zero-frequency square wave
// sit at -Amplitude rather than zero.
func (s SignalSpec) squareAt(t float64) float64 {
	if math.Sin(tau*s.Frequency*t) > 0 {
		return s.Amplitude
	}
	return -s.Amplitude
}

// sawtoothAt ramps linearly from -Amplitude to +Amplitude once per period.
// The phase is centered with floor(φ+0.5) so the ramp stays continuous
// across the wrap.
func (s SignalSpec) sawtoothAt(t float64) float64 {
	phi := t * s.Frequency
	return s.Amplitude * 2 * (phi - math.Floor(phi+0.5))
}

func (s SignalSpec) triangleAt(t float64) float64 {
	phi := t * s.Frequency
	return s.Amplitude * (2*math.Abs(2*(phi-math.Floor(phi+0.5))) - 1)
}

// harmonicsAt sums s.Harmonics sine partials, the h-th at h times the
// fundamental with weight Amplitude/h. No normalization: partials that
// align constructively push the peak past the nominal amplitude, and
// consumers depend on that overshoot.
func (s SignalSpec) harmonicsAt(t float64) float64 {
	var sum float64
	for h := 1; h <= s.Harmonics; h++ {
		sum += s.Amplitude / float64(h) * math.Sin(tau*s.Frequency*float64(h)*t)
	}
	return sum
}
