// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("input is not a RIFF/WAVE file")
	ErrUnsupportedBitDepth = errors.New("only 8/16/24/32-bit PCM WAV is supported")
)
