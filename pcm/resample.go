// SPDX-License-Identifier: EPL-2.0

package pcm

import "github.com/voxkit/liveaudio/utils"

// Resample converts samples from sourceRate to targetRate using linear
// interpolation. When the rates are equal the input slice is returned
// unchanged without copying.
//
// The output length is floor(len(samples) * targetRate / sourceRate),
// with sample positions spread evenly over the original index range
// [0, len(samples)-1], so the first and last output samples coincide
// with the first and last input samples.
//
// Linear interpolation is a lossy shortcut: downsampling has no
// anti-aliasing filter and upsampling images above the source Nyquist
// frequency. That is acceptable for speech destined for a lossy API
// path; it is not a substitute for a band-limited resampler.
func Resample(samples []float32, sourceRate, targetRate int) []float32 {
	if sourceRate == targetRate {
		return samples
	}

	newLen := len(samples) * targetRate / sourceRate
	if newLen == 0 || len(samples) == 0 {
		return []float32{}
	}

	out := make([]float32, newLen)
	if len(samples) == 1 || newLen == 1 {
		for i := range out {
			out[i] = samples[0]
		}
		return out
	}

	// Evenly spaced positions spanning [0, len(samples)-1]
	step := float64(len(samples)-1) / float64(newLen-1)
	for i := range out {
		pos := float64(i) * step
		idx := int(pos)
		if idx >= len(samples)-1 {
			out[i] = samples[len(samples)-1]
			continue
		}
		frac := float32(pos - float64(idx))
		out[i] = utils.Lerp(samples[idx], samples[idx+1], frac)
	}

	return out
}

// ResampleInt16 resamples 16-bit PCM by converting through float32.
// Identity when the rates are equal, same as Resample.
func ResampleInt16(samples []int16, sourceRate, targetRate int) []int16 {
	if sourceRate == targetRate {
		return samples
	}
	return Float32ToInt16(Resample(Int16ToFloat32(samples), sourceRate, targetRate))
}
