// SPDX-License-Identifier: EPL-2.0

package transport

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
)

// sampleWidth is the wire size of one PCM sample in bytes.
const sampleWidth = 2

// Encode serializes samples as little-endian int16 bytes and encodes
// them with standard base64. An empty buffer encodes to "".
func Encode(samples []int16) string {
	buf := make([]byte, len(samples)*sampleWidth)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[i*sampleWidth:], uint16(s))
	}
	return base64.StdEncoding.EncodeToString(buf)
}

// Decode reverses Encode: base64-decode the text and reinterpret the
// bytes as little-endian int16 samples. It returns ErrInvalidBase64 for
// text that does not decode and ErrOddLength when the byte count does
// not divide evenly into samples.
func Decode(text string) ([]int16, error) {
	buf, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBase64, err)
	}

	if len(buf)%sampleWidth != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrOddLength, len(buf))
	}

	samples := make([]int16, len(buf)/sampleWidth)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(buf[i*sampleWidth:]))
	}

	return samples, nil
}
