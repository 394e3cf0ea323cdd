// SPDX-License-Identifier: EPL-2.0

package vizstate

import "math"

// Peak returns the maximum absolute value in samples, 0 for an empty buffer.
func Peak(samples []float64) float64 {
	var peak float64
	for _, s := range samples {
		peak = max(peak, math.Abs(s))
	}
	return peak
}

// PeakBuckets splits samples into n contiguous index ranges and returns the
// peak of each, in order. The ranges cover the whole buffer and differ in
// size by at most one sample. n < 1 returns nil; an empty buffer yields n
// zeros.
func PeakBuckets(samples []float64, n int) []float64 {
	if n < 1 {
		return nil
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		lo := i * len(samples) / n
		hi := (i + 1) * len(samples) / n
		out[i] = Peak(samples[lo:hi])
	}
	return out
}
