// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	goaudio "github.com/go-audio/audio"
)

// GoAudioFormat returns the go-audio description of h.
func (h Header) GoAudioFormat() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: int(h.NumChannels),
		SampleRate:  int(h.SampleRate),
	}
}

// Float32Buffer interleaves a DecodeMulti result into a go-audio buffer
// so it can be handed to go-audio encoders and processors.
func Float32Buffer(h Header, channels [][]float32) *goaudio.Float32Buffer {
	frames := 0
	if len(channels) > 0 {
		frames = len(channels[0])
	}

	data := make([]float32, 0, frames*len(channels))
	for f := range frames {
		for _, ch := range channels {
			data = append(data, ch[f])
		}
	}

	return &goaudio.Float32Buffer{
		Format:         h.GoAudioFormat(),
		Data:           data,
		SourceBitDepth: int(h.BitsPerSample),
	}
}

// ReadBuffer decodes every channel of path into one interleaved go-audio
// buffer. Unlike ReadMono and ReadStereo it accepts any channel count.
func (c *Codec) ReadBuffer(path string) (*goaudio.Float32Buffer, error) {
	var buf *goaudio.Float32Buffer
	err := c.withFile(path, func(r io.Reader, h Header) error {
		channels, err := DecodeMulti(r, h)
		if err != nil {
			return err
		}

		buf = Float32Buffer(h, channels)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return buf, nil
}
