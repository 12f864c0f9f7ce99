// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes PCM 16-bit AIFF audio into a streaming
// audio.Source using github.com/go-audio/aiff.
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // aiff.ErrNotAiff, aiff.ErrNotPCM16, or a read failure
//	}
//	text, err := liveaudio.CollectInput(src, 4096)
//
// Only PCM 16-bit input is supported; other bit depths return
// ErrNotPCM16.
package aiff
