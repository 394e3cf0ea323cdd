// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	ErrUnknownShape      = errors.New("unknown waveform shape")
	ErrInvalidHarmonics  = errors.New("harmonics count must be at least 1")
	ErrInvalidSampleRate = errors.New("oscillator sample rate must be positive")
)
