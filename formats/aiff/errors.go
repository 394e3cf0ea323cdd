// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	ErrNotAiffFile        = errors.New("input is not an AIFF file")
	ErrOnly16bitSupported = errors.New("only 16-bit PCM AIFF is supported")
	ErrMissingCommonChunk = errors.New("AIFF common chunk is missing or malformed")
)
