// SPDX-License-Identifier: EPL-2.0

// Package transport converts 16-bit PCM sample buffers to and from the
// base64 text representation the streaming speech API carries in its
// JSON messages.
//
// The wire layout is raw little-endian int16 samples, mono, with no
// framing or header, wrapped in standard base64:
//
//	text := transport.Encode(samples)
//	samples, err := transport.Decode(text)
//
// Decode rejects malformed input instead of silently truncating:
// ErrInvalidBase64 for text that is not valid base64, ErrOddLength when
// the decoded byte count is not a multiple of the sample width.
package transport
