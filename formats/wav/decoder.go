// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
)

// DecodeMono reads the data chunk that follows h from r and returns
// channel 0 of every frame. Other channels are read and dropped, not
// mixed in.
func DecodeMono(r io.Reader, h Header) ([]float32, error) {
	data, width, err := readPayload(r, h)
	if err != nil {
		return nil, err
	}

	frames := h.FramesPerChannel()
	channels := int(h.NumChannels)
	scale8 := eightBitScale(h)
	frameSize := width * channels

	out := make([]float32, frames)
	for f := range frames {
		off := f * frameSize
		out[f] = decodeSample(data[off:off+width], scale8)
	}

	return out, nil
}

// DecodeMulti reads the data chunk that follows h from r and returns one
// slice per channel, indexed [channel][frame].
func DecodeMulti(r io.Reader, h Header) ([][]float32, error) {
	data, width, err := readPayload(r, h)
	if err != nil {
		return nil, err
	}

	frames := h.FramesPerChannel()
	channels := int(h.NumChannels)
	scale8 := eightBitScale(h)

	out := make([][]float32, channels)
	for c := range out {
		out[c] = make([]float32, frames)
	}

	off := 0
	for f := range frames {
		for c := range channels {
			out[c][f] = decodeSample(data[off:off+width], scale8)
			off += width
		}
	}

	return out, nil
}

// readPayload reads every whole frame the header declares. A short read
// fails the whole decode.
func readPayload(r io.Reader, h Header) ([]byte, int, error) {
	width, err := h.sampleWidth()
	if err != nil {
		return nil, 0, err
	}

	size := h.FramesPerChannel() * int(h.NumChannels) * width
	data := make([]byte, size)
	if _, err := io.ReadFull(r, data); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, 0, fmt.Errorf("%w: data chunk: %w", ErrIO, err)
	}

	return data, width, nil
}

func eightBitScale(h Header) float64 {
	return 2 / float64(uint64(1)<<h.BitsPerSample)
}

// decodeSample converts one little-endian sample. 8-bit samples are
// unsigned around 127.5; wider samples are placed in the high bytes of an
// int32 and divided by 2^31.
func decodeSample(b []byte, scale8 float64) float32 {
	if len(b) == 1 {
		return float32((float64(b[0]) - 127.5) * scale8)
	}

	shift := 4 - len(b)
	var v uint32
	for k, x := range b {
		v |= uint32(x) << ((k + shift) * 8)
	}

	return float32(float64(int32(v)) / (1 << 31))
}
