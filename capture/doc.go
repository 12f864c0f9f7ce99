// SPDX-License-Identifier: EPL-2.0

// Package capture adapts the two common capture-callback shapes onto
// the speech API input pipeline. Both adapters assume the callback
// already runs at the API input rate (16 kHz); callbacks at other rates
// should go through liveaudio.ToInputFormat directly.
//
// Float32Bytes handles callbacks that deliver raw byte buffers of
// little-endian float32 samples:
//
//	func onCapture(in []byte) {
//	    text, err := capture.Float32Bytes(in)
//	    // send text
//	}
//
// Frames handles callbacks that deliver frame-major multi-channel
// sample arrays; channel 0 is selected, the rest are dropped:
//
//	func onCapture(frames [][]float32) {
//	    text, err := capture.Frames(frames)
//	    // send text
//	}
package capture
