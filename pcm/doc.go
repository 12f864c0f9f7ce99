// SPDX-License-Identifier: EPL-2.0

// Package pcm provides buffer-level transforms for 16-bit mono PCM audio:
// sample format conversion, sample-rate conversion, fixed-duration
// chunking, and an accumulation buffer for playback scheduling.
//
// # Sample Representations
//
// Two representations are used throughout:
//   - []float32: normalized samples in [-1.0, 1.0]
//   - []int16: fixed-point PCM samples in [-32768, 32767]
//
// Float32ToInt16 and Int16ToFloat32 convert whole buffers between the
// two. Out-of-range float input is clamped, never an error.
//
// # Resampling
//
// Resample converts between arbitrary sample rates using linear
// interpolation. This is a deliberately simple resampler with no
// band-limiting filter; it trades quality for predictability and zero
// state. For offline file conversion, prefer the streaming cubic
// resampler in the audio package.
//
// # Chunking and Buffering
//
// Chunk splits a buffer into fixed-duration windows for streaming.
// Buffer accumulates received chunks and flushes them into a single
// contiguous buffer for playback:
//
//	buf := pcm.NewBuffer(24000)
//	buf.Add(chunk)
//	if buf.Duration() >= 0.5 {
//	    play(buf.Flush())
//	    buf.Clear()
//	}
//
// Buffer is not synchronized; guard it with a mutex when producers and
// consumers run on different goroutines.
package pcm
