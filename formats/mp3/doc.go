// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio into a streaming audio.Source using
// github.com/hajimehoshi/go-mp3.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // not an MP3 stream
//	}
//	text, err := liveaudio.CollectInput(src, 4096)
//
// go-mp3 always emits interleaved 16-bit stereo, so the source reports
// two channels; CollectInput (or an explicit MonoMixer) reduces them.
package mp3
