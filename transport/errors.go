// SPDX-License-Identifier: EPL-2.0

package transport

import "errors"

var (
	ErrInvalidBase64 = errors.New("transport: input is not valid base64")
	ErrOddLength     = errors.New("transport: decoded byte count is not a multiple of the sample width")
)
