// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	ErrNotAiff  = errors.New("not an AIFF file")
	ErrNotPCM16 = errors.New("only PCM 16-bit AIFF is supported")
)
