// SPDX-License-Identifier: EPL-2.0

package wav

import "math"

const (
	// PeakThreshold is the smallest peak that triggers normalization.
	PeakThreshold = 1e-5

	// FadeFrames is the length of the closing fade-out ramp. The ramp
	// covers FadeFrames+1 frames, from 1 down to 0.
	FadeFrames = 500
)

// Normalize scales x in place so its peak absolute value is 1, then fades
// out its tail. It returns the peak found before scaling. Buffers whose
// peak does not exceed PeakThreshold are only faded.
func Normalize(x []float32) float32 {
	peak := peakOf(0, x)
	scale(x, peak)
	fade(x)

	return peak
}

// NormalizeStereo is Normalize with one peak shared by both channels.
// left and right must have the same length.
func NormalizeStereo(left, right []float32) float32 {
	peak := peakOf(peakOf(0, left), right)
	scale(left, peak)
	scale(right, peak)
	fade(left)
	fade(right)

	return peak
}

func peakOf(peak float32, x []float32) float32 {
	for _, v := range x {
		if a := float32(math.Abs(float64(v))); a > peak {
			peak = a
		}
	}

	return peak
}

func scale(x []float32, peak float32) {
	if peak <= PeakThreshold {
		return
	}

	for i := range x {
		x[i] /= peak
	}
}

// FadeGain is the ramp value applied to frame k of a fade spanning span
// frames: 1 at k=0, falling linearly to 0 at k=span-1.
func FadeGain(k, span int) float32 {
	if span <= 1 {
		return 0
	}

	return float32(max(0, 1-float64(k)/float64(span-1)))
}

// fade ramps the last FadeFrames+1 frames, or all of x when shorter, down
// to silence so the file does not end on a click.
func fade(x []float32) {
	span := min(len(x), FadeFrames+1)
	start := len(x) - span
	for k := range span {
		x[start+k] *= FadeGain(k, span)
	}
}
