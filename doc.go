// SPDX-License-Identifier: EPL-2.0

// Package liveaudio converts audio between local capture/playback
// formats and the wire format of a streaming speech API. The API takes
// 16-bit PCM mono at 16 kHz, base64-encoded, and answers with the same
// encoding at 24 kHz.
//
// # Sending Audio
//
// Capture callbacks usually hand over normalized float32 samples.
// ToInputFormat resamples them to the API input rate, quantizes to
// int16 and base64-encodes the result:
//
//	text := liveaudio.ToInputFormat(samples, 44100)
//	// send text with MIME type liveaudio.InputMimeType
//
// Long recordings are split into fixed windows before sending:
//
//	for _, chunk := range liveaudio.ChunkInput(pcm16, 100*time.Millisecond) {
//	    send(liveaudio.ToInputFormatInt16(chunk, liveaudio.InputSampleRate))
//	}
//
// The capture subpackage adapts the two common callback shapes (raw
// float32 byte buffers and frame-major multi-channel arrays) onto
// ToInputFormat directly.
//
// # Receiving Audio
//
// FromOutputFormat decodes a response string into normalized float32
// samples, resampling away from the API's 24 kHz when the playback
// device runs at a different rate:
//
//	samples, err := liveaudio.FromOutputFormat(msg.Data, 48000)
//
// Received chunks can be gathered in a pcm.Buffer until enough audio is
// queued for gap-free playback.
//
// # Files as Input
//
// The formats subpackages decode WAV, MP3, Ogg Vorbis and AIFF files
// into streaming sources; CollectInput runs a source through the
// downmix/resample pipeline and produces the same transport string as
// the capture path:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	text, err := liveaudio.CollectInput(src, 4096)
package liveaudio
