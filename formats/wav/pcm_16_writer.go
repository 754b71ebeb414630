// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audpluck/utils"
)

const (
	// MonoAmplitude is the 16-bit value a full-scale mono sample maps to.
	MonoAmplitude = 32000
	// StereoAmplitude is the 16-bit value a full-scale stereo sample maps to.
	StereoAmplitude = 32767
)

// WriteMono normalizes a copy of samples, quantizes it at MonoAmplitude
// and writes a mono 16-bit PCM WAV to w. samples is not modified.
func WriteMono(w io.Writer, samples []float32, sampleRate int) error {
	if err := checkWriteLayout(1, sampleRate, len(samples)); err != nil {
		return err
	}

	x := append([]float32(nil), samples...)
	Normalize(x)

	pcm := make([]int16, len(x))
	for i, v := range x {
		pcm[i] = utils.Quantize16(v, MonoAmplitude)
	}

	return WritePCM16(w, 1, sampleRate, pcm)
}

// WriteStereo normalizes copies of left and right with a shared peak,
// quantizes them at StereoAmplitude and writes an interleaved stereo
// 16-bit PCM WAV to w.
func WriteStereo(w io.Writer, left, right []float32, sampleRate int) error {
	if len(left) != len(right) {
		return fmt.Errorf("%w: left has %d frames, right has %d", ErrChannelMismatch, len(left), len(right))
	}

	if err := checkWriteLayout(2, sampleRate, len(left)); err != nil {
		return err
	}

	l := append([]float32(nil), left...)
	r := append([]float32(nil), right...)
	NormalizeStereo(l, r)

	pcm := make([]int16, 2*len(l))
	for i := range l {
		pcm[2*i] = utils.Quantize16(l[i], StereoAmplitude)
		pcm[2*i+1] = utils.Quantize16(r[i], StereoAmplitude)
	}

	return WritePCM16(w, 2, sampleRate, pcm)
}

// WritePCM16 writes interleaved 16-bit PCM samples with a canonical
// header. len(samples) must be a multiple of numChannels.
func WritePCM16(w io.Writer, numChannels, sampleRate int, samples []int16) error {
	if numChannels <= 0 || len(samples)%numChannels != 0 {
		return fmt.Errorf("%w: %d samples for %d channels", ErrChannelMismatch, len(samples), numChannels)
	}

	frames := len(samples) / numChannels
	if err := checkWriteLayout(numChannels, sampleRate, frames); err != nil {
		return err
	}

	header, err := NewHeader(numChannels, 16, sampleRate, frames).MarshalBinary()
	if err != nil {
		return err
	}

	// Write header in one operation
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	const chunkSize = 8192 // samples per write
	if len(samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]
		buf = buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
	}

	return nil
}
