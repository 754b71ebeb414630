// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Codec reads and writes WAV files and remembers the header of the last
// file it read. A Codec must not be used for two reads at once.
type Codec struct {
	header Header
	parsed bool
}

func NewCodec() *Codec {
	return &Codec{}
}

// Header returns the last successfully parsed header.
func (c *Codec) Header() (Header, bool) { return c.header, c.parsed }

// SampleRate of the last parsed file, 0 before any read.
func (c *Codec) SampleRate() int { return int(c.header.SampleRate) }

// Channels of the last parsed file, 0 before any read.
func (c *Codec) Channels() int { return int(c.header.NumChannels) }

// BitDepth of the last parsed file, 0 before any read.
func (c *Codec) BitDepth() int { return int(c.header.BitsPerSample) }

// ReadHeader parses the header of path without decoding its samples.
func (c *Codec) ReadHeader(path string) (Header, error) {
	var h Header
	err := c.withFile(path, func(r io.Reader, hdr Header) error {
		h = hdr
		return nil
	})

	return h, err
}

// ReadMono decodes channel 0 of path and returns it with the file's
// sample rate.
func (c *Codec) ReadMono(path string) ([]float32, int, error) {
	var out []float32
	err := c.withFile(path, func(r io.Reader, h Header) error {
		var err error
		out, err = DecodeMono(r, h)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	return out, c.SampleRate(), nil
}

// ReadStereo decodes a two-channel file into [channel][frame] slices.
// Any other channel count fails with ErrChannelMismatch before decoding.
func (c *Codec) ReadStereo(path string) ([][]float32, int, error) {
	var out [][]float32
	err := c.withFile(path, func(r io.Reader, h Header) error {
		if h.NumChannels != 2 {
			return fmt.Errorf("%w: %s has %d channels, want 2", ErrChannelMismatch, path, h.NumChannels)
		}

		var err error
		out, err = DecodeMulti(r, h)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	return out, c.SampleRate(), nil
}

// ReadRaw returns the data chunk of path verbatim with the file's sample
// rate. Channels and BitDepth describe the returned bytes.
func (c *Codec) ReadRaw(path string) ([]byte, int, error) {
	var out []byte
	err := c.withFile(path, func(r io.Reader, h Header) error {
		out = make([]byte, h.SubChunk2Size)
		if _, err := io.ReadFull(r, out); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return fmt.Errorf("%w: data chunk: %w", ErrIO, err)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return out, c.SampleRate(), nil
}

// EncodeMono writes samples to path as normalized mono 16-bit PCM. The
// file is replaced atomically; on error path is left untouched.
func (c *Codec) EncodeMono(samples []float32, path string, sampleRate int) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteMono(w, samples, sampleRate)
	})
}

// EncodeStereo writes left and right to path as normalized interleaved
// stereo 16-bit PCM. The file is replaced atomically.
func (c *Codec) EncodeStereo(left, right []float32, path string, sampleRate int) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteStereo(w, left, right, sampleRate)
	})
}

// withFile opens path, parses and caches its header, and hands the
// reader positioned at the data chunk to fn.
func (c *Codec) withFile(path string, fn func(r io.Reader, h Header) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	h, err := ParseHeader(r)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	c.header = h
	c.parsed = true

	return fn(r, h)
}

// writeFile writes through a temporary file in the target directory and
// renames it over path once everything was flushed. A replaced file keeps
// its permission bits; a new one gets 0644.
func writeFile(path string, fn func(w io.Writer) error) (err error) {
	mode := os.FileMode(0o644)
	if fi, statErr := os.Stat(path); statErr == nil {
		mode = fi.Mode().Perm()
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	tmp := f.Name()

	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = fn(bw); err != nil {
		return err
	}

	if err = bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	if err = f.Chmod(mode); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	return nil
}
