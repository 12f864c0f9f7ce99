// SPDX-License-Identifier: EPL-2.0

package capture

import "errors"

var (
	ErrTruncatedBuffer = errors.New("capture: byte buffer length is not a multiple of the float32 size")
	ErrNoChannels      = errors.New("capture: frame has no channels")
)
