// SPDX-License-Identifier: EPL-2.0

package audiostream

import "errors"

var (
	ErrUnalignedBuffer = errors.New("dst size must be a multiple of the channel count")
)
