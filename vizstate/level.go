// SPDX-License-Identifier: EPL-2.0

package vizstate

// Level is one visual-state snapshot: the scalar inputs a view needs to
// render a frame.
type Level struct {
	// Amplitude is the peak absolute sample value over the frame, in [0, 1]
	// for normalized sources.
	Amplitude float64

	// Frequency the visuals should track, in Hz.
	Frequency float64

	// Playing reports whether the underlying stream is still producing.
	Playing bool
}
