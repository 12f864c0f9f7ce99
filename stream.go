// SPDX-License-Identifier: EPL-2.0

package liveaudio

import (
	"fmt"
	"io"

	"github.com/voxkit/liveaudio/audio"
	"github.com/voxkit/liveaudio/pcm"
	"github.com/voxkit/liveaudio/transport"
)

// CollectInput drains a streaming source through the API input
// pipeline: resample to InputSampleRate, mix down to mono, then encode
// the collected samples as a transport string.
//
// bufferSize controls how many float32 samples are read per call
// (4096 is a reasonable default); it must be positive or
// ErrInvalidBufferSize is returned. The source is read to EOF but not
// closed; closing stays with the caller that opened it.
func CollectInput(src audio.Source, bufferSize int) (string, error) {
	if bufferSize <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidBufferSize, bufferSize)
	}

	resampled := audio.NewResampler(src, InputSampleRate)
	mono := audio.NewMonoMixer(resampled)

	// Pre-size for a couple of seconds of speech to limit regrowth.
	samples := make([]float32, 0, 2*InputSampleRate)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w", err)
		}
	}

	return transport.Encode(pcm.Float32ToInt16(samples)), nil
}
