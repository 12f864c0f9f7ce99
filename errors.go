// SPDX-License-Identifier: EPL-2.0

package liveaudio

import "errors"

var (
	ErrInvalidBufferSize = errors.New("liveaudio: buffer size must be positive")
)
