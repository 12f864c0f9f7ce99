// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/voxkit/liveaudio"
)

// Float32Bytes reinterprets a raw capture buffer as little-endian
// float32 samples and encodes it for the API. Returns
// ErrTruncatedBuffer when the buffer cannot split into whole samples.
func Float32Bytes(raw []byte) (string, error) {
	if len(raw)%4 != 0 {
		return "", fmt.Errorf("%w: %d bytes", ErrTruncatedBuffer, len(raw))
	}

	samples := make([]float32, len(raw)/4)
	for i := range samples {
		bits := binary.LittleEndian.Uint32(raw[i*4:])
		samples[i] = math.Float32frombits(bits)
	}

	return liveaudio.ToInputFormat(samples, liveaudio.InputSampleRate), nil
}

// Frames selects channel 0 from a frame-major multi-channel capture
// buffer and encodes it for the API. Every frame must carry at least
// one channel; mono frames pass through as-is.
func Frames(frames [][]float32) (string, error) {
	samples := make([]float32, len(frames))
	for i, frame := range frames {
		if len(frame) == 0 {
			return "", fmt.Errorf("%w: frame %d", ErrNoChannels, i)
		}
		samples[i] = frame[0]
	}

	return liveaudio.ToInputFormat(samples, liveaudio.InputSampleRate), nil
}
