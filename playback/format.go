// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"

	"github.com/ik5/audpluck/audio"
)

func checkFormat(pcm []byte, f audio.PCMFormat) error {
	if f.SampleRate <= 0 || f.Channels <= 0 {
		return fmt.Errorf("%w: %d Hz, %d channels", ErrUnsupportedFormat, f.SampleRate, f.Channels)
	}

	switch f.BitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d bits", ErrUnsupportedFormat, f.BitDepth)
	}

	if len(pcm)%f.BytesPerFrame() != 0 {
		return fmt.Errorf("%w: %d bytes is not a whole number of %d-byte frames",
			ErrUnsupportedFormat, len(pcm), f.BytesPerFrame())
	}

	return nil
}
