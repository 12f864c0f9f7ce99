// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio into a streaming
// audio.Source using github.com/jfreymuth/oggvorbis.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // not an Ogg Vorbis stream
//	}
//	text, err := liveaudio.CollectInput(src, 4096)
//
// The underlying reader already produces float32 samples, so this
// adapter only bridges the frame-count/sample-count convention.
package vorbis
