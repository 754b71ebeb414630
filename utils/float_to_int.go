// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Quantize16 converts x to 16-bit PCM at amplitude amp, truncating
// toward zero. x is clamped to [-1,1].
func Quantize16(x, amp float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * amp)
}

// FloatToPCMByte returns byte byteIndex (0 = lowest) of sample scaled to
// round((sample+1)/2 * 2^(bitDepth-1)). sample is clamped to [-1,1]; NaN
// is treated as silence.
func FloatToPCMByte(sample float32, byteIndex, bitDepth int) byte {
	x := float64(sample)
	switch {
	case math.IsNaN(x):
		x = 0
	case x > 1:
		x = 1
	case x < -1:
		x = -1
	}

	maxValue := math.Ldexp(1, bitDepth-1)
	v := uint32(math.Round((x + 1) * 0.5 * maxValue))

	return byte(v >> (8 * byteIndex))
}
