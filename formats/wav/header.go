// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"
)

// HeaderSize is the size of the canonical RIFF/WAVE header.
const HeaderSize = 44

// FormatPCM is the fmt chunk audio format for uncompressed PCM.
const FormatPCM = 1

// Header is the canonical 44-byte WAV header: a RIFF chunk holding a
// 16-byte "fmt " chunk immediately followed by the "data" chunk header.
type Header struct {
	ChunkID       [4]byte
	ChunkSize     uint32
	Format        [4]byte
	SubChunk1ID   [4]byte
	SubChunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	SubChunk2ID   [4]byte
	// SubChunk2Size is the payload length in bytes.
	SubChunk2Size uint32
}

// NewHeader builds a PCM header for frames frames of interleaved samples.
func NewHeader(numChannels, bitsPerSample, sampleRate, frames int) Header {
	h := Header{
		SubChunk1Size: 16,
		AudioFormat:   FormatPCM,
		NumChannels:   uint16(numChannels),
		SampleRate:    uint32(sampleRate),
		BitsPerSample: uint16(bitsPerSample),
	}
	copy(h.ChunkID[:], "RIFF")
	copy(h.Format[:], "WAVE")
	copy(h.SubChunk1ID[:], "fmt ")
	copy(h.SubChunk2ID[:], "data")

	h.ByteRate = uint32(sampleRate * numChannels * bitsPerSample / 8)
	h.BlockAlign = uint16(numChannels * bitsPerSample / 8)
	h.SubChunk2Size = uint32(frames) * uint32(h.BlockAlign)
	h.ChunkSize = 36 + h.SubChunk2Size

	return h
}

// ParseHeader reads exactly HeaderSize bytes from r and checks the RIFF,
// WAVE, "fmt " and "data" signatures. The remaining fields are returned
// as found; see Validate for stricter checks.
func ParseHeader(r io.Reader) (Header, error) {
	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Header{}, fmt.Errorf("%w: header: %w", ErrIO, err)
	}

	var h Header
	if err := h.UnmarshalBinary(buf); err != nil {
		return Header{}, err
	}

	return h, nil
}

// UnmarshalBinary decodes a 44-byte header.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: header is %d bytes, want %d", ErrNotWavFile, len(data), HeaderSize)
	}

	copy(h.ChunkID[:], data[0:4])
	h.ChunkSize = binary.LittleEndian.Uint32(data[4:8])
	copy(h.Format[:], data[8:12])

	copy(h.SubChunk1ID[:], data[12:16])
	h.SubChunk1Size = binary.LittleEndian.Uint32(data[16:20])
	h.AudioFormat = binary.LittleEndian.Uint16(data[20:22])
	h.NumChannels = binary.LittleEndian.Uint16(data[22:24])
	h.SampleRate = binary.LittleEndian.Uint32(data[24:28])
	h.ByteRate = binary.LittleEndian.Uint32(data[28:32])
	h.BlockAlign = binary.LittleEndian.Uint16(data[32:34])
	h.BitsPerSample = binary.LittleEndian.Uint16(data[34:36])

	copy(h.SubChunk2ID[:], data[36:40])
	h.SubChunk2Size = binary.LittleEndian.Uint32(data[40:44])

	return h.checkSignatures()
}

func (h Header) checkSignatures() error {
	switch {
	case string(h.ChunkID[:]) != "RIFF":
		return fmt.Errorf("%w: chunk id %q", ErrNotWavFile, h.ChunkID[:])
	case string(h.Format[:]) != "WAVE":
		return fmt.Errorf("%w: format %q", ErrNotWavFile, h.Format[:])
	case string(h.SubChunk1ID[:]) != "fmt ":
		return fmt.Errorf("%w: first sub-chunk %q", ErrNotWavFile, h.SubChunk1ID[:])
	case string(h.SubChunk2ID[:]) != "data":
		return fmt.Errorf("%w: second sub-chunk %q", ErrNotWavFile, h.SubChunk2ID[:])
	}

	return nil
}

// MarshalBinary encodes the header in its 44-byte little-endian form.
func (h Header) MarshalBinary() ([]byte, error) {
	header := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(header[0:4], h.ChunkID[:])
	binary.LittleEndian.PutUint32(header[4:8], h.ChunkSize)
	copy(header[8:12], h.Format[:])

	// fmt chunk (24 bytes)
	copy(header[12:16], h.SubChunk1ID[:])
	binary.LittleEndian.PutUint32(header[16:20], h.SubChunk1Size)
	binary.LittleEndian.PutUint16(header[20:22], h.AudioFormat)
	binary.LittleEndian.PutUint16(header[22:24], h.NumChannels)
	binary.LittleEndian.PutUint32(header[24:28], h.SampleRate)
	binary.LittleEndian.PutUint32(header[28:32], h.ByteRate)
	binary.LittleEndian.PutUint16(header[32:34], h.BlockAlign)
	binary.LittleEndian.PutUint16(header[34:36], h.BitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], h.SubChunk2ID[:])
	binary.LittleEndian.PutUint32(header[40:44], h.SubChunk2Size)

	return header, nil
}

// FramesPerChannel is the number of frames the data chunk declares.
func (h Header) FramesPerChannel() int {
	bits := uint64(h.BitsPerSample) * uint64(h.NumChannels)
	if bits == 0 {
		return 0
	}

	return int(uint64(h.SubChunk2Size) * 8 / bits)
}

// Validate applies checks ParseHeader leaves out: PCM format, a 16-byte
// fmt chunk, a supported bit depth, and ByteRate/BlockAlign matching the
// other fields. Files that fail it may still decode.
func (h Header) Validate() error {
	if err := h.checkSignatures(); err != nil {
		return err
	}

	if h.AudioFormat != FormatPCM {
		return fmt.Errorf("%w: audio format %d is not PCM", ErrUnsupportedWavLayout, h.AudioFormat)
	}

	if h.SubChunk1Size != 16 {
		return fmt.Errorf("%w: fmt chunk size %d, want 16", ErrUnsupportedWavLayout, h.SubChunk1Size)
	}

	if _, err := h.sampleWidth(); err != nil {
		return err
	}

	blockAlign := uint64(h.NumChannels) * uint64(h.BitsPerSample) / 8
	if uint64(h.BlockAlign) != blockAlign {
		return fmt.Errorf("%w: block align %d, want %d", ErrUnsupportedWavLayout, h.BlockAlign, blockAlign)
	}

	if byteRate := uint64(h.SampleRate) * blockAlign; uint64(h.ByteRate) != byteRate {
		return fmt.Errorf("%w: byte rate %d, want %d", ErrUnsupportedWavLayout, h.ByteRate, byteRate)
	}

	return nil
}

// sampleWidth returns the bytes per sample of a decodable header.
func (h Header) sampleWidth() (int, error) {
	if h.NumChannels == 0 {
		return 0, fmt.Errorf("%w: zero channels", ErrUnsupportedWavLayout)
	}

	switch h.BitsPerSample {
	case 8, 16, 24, 32:
		return int(h.BitsPerSample) / 8, nil
	}

	return 0, fmt.Errorf("%w: %d bits per sample", ErrUnsupportedWavLayout, h.BitsPerSample)
}

// String renders every field, one per line.
func (h Header) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Chunk ID        : %.4s\n", h.ChunkID[:])
	fmt.Fprintf(&b, "Chunk Size      : %d\n", h.ChunkSize)
	fmt.Fprintf(&b, "Format          : %.4s\n", h.Format[:])
	fmt.Fprintf(&b, "Sub-Chunk 1     : %.4s\n", h.SubChunk1ID[:])
	fmt.Fprintf(&b, "Sub-Chunk 1 size: %d\n", h.SubChunk1Size)
	fmt.Fprintf(&b, "Audio Format    : %d\n", h.AudioFormat)
	fmt.Fprintf(&b, "Num Channels    : %d\n", h.NumChannels)
	fmt.Fprintf(&b, "Sample Rate     : %d\n", h.SampleRate)
	fmt.Fprintf(&b, "Byte Rate       : %d\n", h.ByteRate)
	fmt.Fprintf(&b, "Block Align     : %d\n", h.BlockAlign)
	fmt.Fprintf(&b, "Bits Per Samp   : %d\n", h.BitsPerSample)
	fmt.Fprintf(&b, "Sub-Chunk 2     : %.4s\n", h.SubChunk2ID[:])
	fmt.Fprintf(&b, "Sub-Chunk 2 size: %d\n", h.SubChunk2Size)
	fmt.Fprintf(&b, "Samples Per Chan: %d\n", h.FramesPerChannel())

	return b.String()
}

// checkWriteLayout rejects 16-bit layouts the 32-bit header fields
// cannot hold.
func checkWriteLayout(numChannels, sampleRate, frames int) error {
	if sampleRate <= 0 || uint64(sampleRate) > math.MaxUint32 {
		return fmt.Errorf("%w: sample rate %d", ErrUnsupportedWavLayout, sampleRate)
	}

	if frames < 0 || uint64(frames)*uint64(numChannels)*2 > math.MaxUint32-36 {
		return fmt.Errorf("%w: %d frames do not fit a WAV file", ErrUnsupportedWavLayout, frames)
	}

	return nil
}
