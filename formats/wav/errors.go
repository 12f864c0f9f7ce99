// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWav   = errors.New("not a WAV file")
	ErrNotPCM16 = errors.New("only PCM 16-bit WAV is supported")
)
