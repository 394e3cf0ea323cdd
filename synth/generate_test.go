// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"math"
	"testing"
)

// benchSpec keeps the benchmark result alive.
var benchSink []float64

func testSpec(shape Shape) SignalSpec {
	return SignalSpec{
		Shape:      shape,
		Frequency:  440,
		Amplitude:  1,
		SampleRate: 1000,
		Duration:   0.1,
		Harmonics:  3,
	}
}

func minMax(samples []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range samples {
		lo = min(lo, s)
		hi = max(hi, s)
	}
	return lo, hi
}

func TestGenerate_Length(t *testing.T) {
	t.Parallel()

	for _, shape := range []Shape{Sine, Square, Sawtooth, Triangle, Harmonics} {
		shape := shape
		t.Run(shape.String(), func(t *testing.T) {
			t.Parallel()

			spec := testSpec(shape)
			out, err := Generate(spec)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if len(out) != 100 {
				t.Errorf("len(out) = %d, want 100", len(out))
			}
			if len(out) != spec.NumSamples() {
				t.Errorf("len(out) = %d, NumSamples() = %d", len(out), spec.NumSamples())
			}
		})
	}
}

func TestGenerate_PeakBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shape     Shape
		wantAbove float64 // max(out) must exceed this
		wantBelow float64 // min(out) must be under this
	}{
		{Sine, 0.9, -0.9},
		{Sawtooth, 0.9, -0.9},
		{Triangle, 0.9, -0.9},
		{Harmonics, 0.5, -0.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.shape.String(), func(t *testing.T) {
			t.Parallel()

			out, err := Generate(testSpec(tt.shape))
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			lo, hi := minMax(out)
			if hi <= tt.wantAbove {
				t.Errorf("max = %v, want > %v", hi, tt.wantAbove)
			}
			if lo >= tt.wantBelow {
				t.Errorf("min = %v, want < %v", lo, tt.wantBelow)
			}
		})
	}
}

func TestGenerate_SquareTwoValued(t *testing.T) {
	t.Parallel()

	out, err := Generate(testSpec(Square))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	lo, hi := minMax(out)
	if hi != 1.0 {
		t.Errorf("max = %v, want exactly 1.0", hi)
	}
	if lo != -1.0 {
		t.Errorf("min = %v, want exactly -1.0", lo)
	}
	for i, s := range out {
		if s != 1.0 && s != -1.0 {
			t.Fatalf("out[%d] = %v, square output must be ±amplitude", i, s)
		}
	}
}

// The strict >0 sign test maps an exact sine zero to -amplitude. t=0 always
// hits that case, and a zero-frequency square wave hits it everywhere.
func TestGenerate_SquareZeroCrossingTieBreak(t *testing.T) {
	t.Parallel()

	out, err := Generate(testSpec(Square))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if out[0] != -1.0 {
		t.Errorf("out[0] = %v, want -1.0 (sin(0) maps to -amplitude)", out[0])
	}

	spec := testSpec(Square)
	spec.Frequency = 0
	out, err = Generate(spec)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for i, s := range out {
		if s != -1.0 {
			t.Fatalf("out[%d] = %v, zero-frequency square must be constantly -amplitude", i, s)
		}
	}
}

func TestGenerate_ZeroFrequencyConstant(t *testing.T) {
	t.Parallel()

	for _, shape := range []Shape{Sine, Sawtooth, Triangle, Harmonics} {
		shape := shape
		t.Run(shape.String(), func(t *testing.T) {
			t.Parallel()

			spec := testSpec(shape)
			spec.Frequency = 0
			out, err := Generate(spec)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			for i, s := range out {
				if s != out[0] {
					t.Fatalf("out[%d] = %v != out[0] = %v, want constant buffer", i, s, out[0])
				}
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	for _, shape := range []Shape{Sine, Square, Sawtooth, Triangle, Harmonics} {
		shape := shape
		t.Run(shape.String(), func(t *testing.T) {
			t.Parallel()

			a, err := Generate(testSpec(shape))
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			b, err := Generate(testSpec(shape))
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			for i := range a {
				if a[i] != b[i] {
					t.Fatalf("out[%d] differs between identical calls: %v vs %v", i, a[i], b[i])
				}
			}
		})
	}
}

func TestGenerate_AmplitudeLinearity(t *testing.T) {
	t.Parallel()

	shapes := []Shape{Sine, Sawtooth, Triangle, Harmonics}
	scales := []float64{0, -1, 2}

	for _, shape := range shapes {
		shape := shape
		t.Run(shape.String(), func(t *testing.T) {
			t.Parallel()

			base, err := Generate(testSpec(shape))
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}

			for _, k := range scales {
				spec := testSpec(shape)
				spec.Amplitude *= k
				scaled, err := Generate(spec)
				if err != nil {
					t.Fatalf("Generate(k=%v) error = %v", k, err)
				}
				for i := range base {
					if scaled[i] != k*base[i] {
						t.Fatalf("k=%v: out[%d] = %v, want %v", k, i, scaled[i], k*base[i])
					}
				}
			}
		})
	}
}

func TestGenerate_ZeroDuration(t *testing.T) {
	t.Parallel()

	for _, shape := range []Shape{Sine, Square, Sawtooth, Triangle, Harmonics} {
		shape := shape
		t.Run(shape.String(), func(t *testing.T) {
			t.Parallel()

			spec := testSpec(shape)
			spec.Duration = 0
			out, err := Generate(spec)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if len(out) != 0 {
				t.Errorf("len(out) = %d, want 0 for zero duration", len(out))
			}

			spec = testSpec(shape)
			spec.SampleRate = 0
			out, err = Generate(spec)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if len(out) != 0 {
				t.Errorf("len(out) = %d, want 0 for zero sample rate", len(out))
			}
		})
	}
}

// The additive series is deliberately unnormalized: partials that align push
// the peak past the nominal amplitude.
func TestGenerate_HarmonicOvershoot(t *testing.T) {
	t.Parallel()

	spec := SignalSpec{
		Shape:      Harmonics,
		Frequency:  1,
		Amplitude:  1,
		SampleRate: 1000,
		Duration:   1,
		Harmonics:  3,
	}
	out, err := Generate(spec)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	_, hi := minMax(out)
	if hi <= 1.0 {
		t.Errorf("max = %v, want > 1.0 (overshoot must not be normalized away)", hi)
	}
}

func TestGenerate_NegativeParameters(t *testing.T) {
	t.Parallel()

	// Negative frequency and amplitude are accepted, not validated.
	spec := testSpec(Sine)
	spec.Frequency = -440
	neg, err := Generate(spec)
	if err != nil {
		t.Fatalf("Generate(negative frequency) error = %v", err)
	}
	pos, err := Generate(testSpec(Sine))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	// sin(-x) == -sin(x): negated frequency inverts the signal.
	for i := range pos {
		if neg[i] != -pos[i] {
			t.Fatalf("out[%d] = %v, want %v", i, neg[i], -pos[i])
		}
	}

	// Negative duration degenerates to an empty buffer.
	spec = testSpec(Sine)
	spec.Duration = -1
	out, err := Generate(spec)
	if err != nil {
		t.Fatalf("Generate(negative duration) error = %v", err)
	}
	if len(out) != 0 {
		t.Errorf("len(out) = %d, want 0 for negative duration", len(out))
	}
}

func TestGenerate_InvalidHarmonics(t *testing.T) {
	t.Parallel()

	spec := testSpec(Harmonics)
	spec.Harmonics = 0
	if _, err := Generate(spec); !errors.Is(err, ErrInvalidHarmonics) {
		t.Errorf("Generate() error = %v, want ErrInvalidHarmonics", err)
	}

	// Other shapes ignore the harmonics count entirely.
	spec = testSpec(Sine)
	spec.Harmonics = 0
	if _, err := Generate(spec); err != nil {
		t.Errorf("Generate(sine, harmonics=0) error = %v, want nil", err)
	}
}

func TestGenerate_UnknownShape(t *testing.T) {
	t.Parallel()

	spec := testSpec(Shape(99))
	if _, err := Generate(spec); !errors.Is(err, ErrUnknownShape) {
		t.Errorf("Generate() error = %v, want ErrUnknownShape", err)
	}
}

func TestNumSamples_Truncates(t *testing.T) {
	t.Parallel()

	spec := SignalSpec{SampleRate: 44100, Duration: 0.0237}
	// 44100 * 0.0237 = 1045.17 -> 1045
	if got := spec.NumSamples(); got != 1045 {
		t.Errorf("NumSamples() = %d, want 1045", got)
	}
}

func TestParseShape(t *testing.T) {
	t.Parallel()

	for _, shape := range []Shape{Sine, Square, Sawtooth, Triangle, Harmonics} {
		shape := shape
		got, err := ParseShape(shape.String())
		if err != nil {
			t.Fatalf("ParseShape(%q) error = %v", shape.String(), err)
		}
		if got != shape {
			t.Errorf("ParseShape(%q) = %v, want %v", shape.String(), got, shape)
		}
	}

	if _, err := ParseShape("noise"); !errors.Is(err, ErrUnknownShape) {
		t.Errorf("ParseShape(\"noise\") error = %v, want ErrUnknownShape", err)
	}
}

func BenchmarkGenerate_Sine(b *testing.B) {
	spec := NewSignalSpec(Sine, 440, 1)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		benchSink, _ = Generate(spec)
	}
}

func BenchmarkGenerate_Harmonics(b *testing.B) {
	spec := NewSignalSpec(Harmonics, 440, 1)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		benchSink, _ = Generate(spec)
	}
}
