// SPDX-License-Identifier: EPL-2.0

// Package vizstate turns sample streams into the per-frame level snapshots
// that drive animated visuals.
//
// # Levels
//
// A Level is the scalar view of one rendering frame: the peak amplitude over
// the frame's samples, the frequency the visuals should lock to, and whether
// playback is running. Consumers map Amplitude to bar heights, particle
// offsets or mandala radii; none of that rendering lives here.
//
// # Producing Levels
//
// Tracker walks any audiostream.Source (a decoded file, a synthesized
// oscillator) and emits one Level per fixed-size frame. Simulated produces
// the same snapshots from a beat grid with no audio behind it, for previews
// and tests; it is a pure function of the frame index, so callers that want
// wall-clock drift inject their own offset.
//
// # Distribution
//
// Publisher pushes Levels to subscribers over channels. Publishing never
// blocks: a subscriber that falls behind loses stale snapshots rather than
// stalling the producer. That is the "value changed" pattern the UI layer
// builds its observable fields on.
//
// # Bar Mapping
//
// PeakBuckets reduces a raw sample buffer to n bar amplitudes, each the
// maximum absolute sample over a contiguous index range. This is the
// amplitude bucketing the spectrum-style views use; it is not a frequency
// transform.
package vizstate
