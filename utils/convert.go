// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a single normalized sample to 16-bit PCM.
// Values outside [-1, 1] are clamped rather than wrapped.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Scale by 32767 on both ends so +1.0 cannot overflow
	return int16(x * 32767.0)
}

// Int16ToFloat32 converts a single 16-bit PCM sample to a normalized
// float32. The divisor is 32768 so that math.MinInt16 maps to exactly -1.0.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}
