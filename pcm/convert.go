// SPDX-License-Identifier: EPL-2.0

package pcm

import "github.com/voxkit/liveaudio/utils"

// Float32ToInt16 converts normalized float samples to 16-bit PCM.
// Values outside [-1.0, 1.0] are clamped. The result is a new slice;
// the input is never modified.
func Float32ToInt16(samples []float32) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		out[i] = utils.Float32ToInt16(s)
	}
	return out
}

// Int16ToFloat32 converts 16-bit PCM samples to normalized floats in
// [-1.0, 1.0). The result is a new slice; the input is never modified.
func Int16ToFloat32(samples []int16) []float32 {
	out := make([]float32, len(samples))
	for i, s := range samples {
		out[i] = utils.Int16ToFloat32(s)
	}
	return out
}
