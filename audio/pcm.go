// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audpluck/utils"
)

// PackPCM converts interleaved float samples into the byte layout
// expected by a Sink, bitDepth/8 bytes per sample, lowest byte first.
// Each byte is produced by utils.FloatToPCMByte.
func PackPCM(samples []float32, bitDepth int) ([]byte, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidBitDepth, bitDepth)
	}

	bytesPerSample := bitDepth / 8
	out := make([]byte, len(samples)*bytesPerSample)
	for i := range out {
		out[i] = utils.FloatToPCMByte(samples[i/bytesPerSample], i%bytesPerSample, bitDepth)
	}

	return out, nil
}

// Collect reads up to frames frames from src. It stops early, without
// error, when src reports io.EOF.
func Collect(src Source, frames int) ([]float32, error) {
	if frames < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrames, frames)
	}

	channels := src.Channels()
	out := make([]float32, frames*channels)

	// read whole frames, at most one BufSize at a time
	chunk := max(src.BufSize()/channels, 1) * channels
	filled := 0
	for filled < len(out) {
		end := min(filled+chunk, len(out))
		n, err := src.ReadSamples(out[filled:end])
		filled += n

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		if n == 0 {
			break
		}
	}

	return out[:filled], nil
}
