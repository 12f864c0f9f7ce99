// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and writes PCM 16-bit WAV audio.
//
// Decoder parses WAV input with github.com/go-audio/wav and exposes it
// as a streaming audio.Source of normalized float32 samples, ready for
// the liveaudio input pipeline:
//
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // wav.ErrNotWav, wav.ErrNotPCM16, or a read failure
//	}
//	text, err := liveaudio.CollectInput(src, 4096)
//
// WritePCM16 is the reverse convenience for the playback side: it dumps
// mono int16 samples, such as decoded API responses, to a complete WAV
// file:
//
//	samples, _ := liveaudio.FromOutputFormatInt16(msg.Data, 24000)
//	wav.WritePCM16(out, 24000, samples)
//
// Only PCM 16-bit input is supported; other layouts return ErrNotPCM16.
package wav
