// SPDX-License-Identifier: EPL-2.0

package liveaudio

import (
	"fmt"
	"time"

	"github.com/voxkit/liveaudio/pcm"
	"github.com/voxkit/liveaudio/transport"
)

// Audio format contract of the streaming speech API.
const (
	// InputSampleRate is the rate the API accepts, in Hz.
	InputSampleRate = 16000
	// OutputSampleRate is the rate the API produces, in Hz.
	OutputSampleRate = 24000
	// Channels is always mono; multi-channel sources are reduced to one
	// channel before entering the pipeline.
	Channels = 1
	// SampleWidth is the size of one PCM sample in bytes.
	SampleWidth = 2

	// InputMimeType declares outbound audio, rate matching InputSampleRate.
	InputMimeType = "audio/pcm;rate=16000"
)

// ToInputFormat converts normalized float32 samples at sourceRate into
// the API's transport string: resample to InputSampleRate when needed,
// quantize to int16 and base64-encode.
func ToInputFormat(samples []float32, sourceRate int) string {
	if sourceRate != InputSampleRate {
		samples = pcm.Resample(samples, sourceRate, InputSampleRate)
	}
	return transport.Encode(pcm.Float32ToInt16(samples))
}

// ToInputFormatInt16 is the fixed-point variant of ToInputFormat.
// Samples already at InputSampleRate are encoded as-is; other rates
// take the float32 detour through the resampler.
func ToInputFormatInt16(samples []int16, sourceRate int) string {
	if sourceRate != InputSampleRate {
		samples = pcm.ResampleInt16(samples, sourceRate, InputSampleRate)
	}
	return transport.Encode(samples)
}

// FromOutputFormat decodes an API response string into normalized
// float32 samples at targetRate. The string carries int16 PCM at
// OutputSampleRate; other target rates are reached by resampling.
// Decode failures surface the transport package's errors.
func FromOutputFormat(text string, targetRate int) ([]float32, error) {
	samples, err := transport.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	floats := pcm.Int16ToFloat32(samples)
	if targetRate != OutputSampleRate {
		floats = pcm.Resample(floats, OutputSampleRate, targetRate)
	}
	return floats, nil
}

// FromOutputFormatInt16 decodes an API response string into int16 PCM
// at targetRate. When targetRate equals OutputSampleRate the decoded
// samples are returned without any numeric conversion; otherwise
// resampling runs in float32 and re-quantizes at the end.
func FromOutputFormatInt16(text string, targetRate int) ([]int16, error) {
	samples, err := transport.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if targetRate != OutputSampleRate {
		floats := pcm.Resample(pcm.Int16ToFloat32(samples), OutputSampleRate, targetRate)
		samples = pcm.Float32ToInt16(floats)
	}
	return samples, nil
}

// ChunkInput splits int16 samples at InputSampleRate into consecutive
// windows of chunkDuration for streaming. See pcm.Chunk for the exact
// partitioning rules.
func ChunkInput(samples []int16, chunkDuration time.Duration) [][]int16 {
	return pcm.Chunk(samples, InputSampleRate, chunkDuration)
}
