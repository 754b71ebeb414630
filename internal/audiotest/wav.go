// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// WAVFixture describes a canonical WAV file to build.
type WAVFixture struct {
	Channels      int
	SampleRate    int
	BitsPerSample int
	// DataSize overrides the declared data chunk size when positive.
	DataSize int
	Payload  []byte
	// Signatures overrides "RIFF", "WAVE", "fmt ", "data" when non-empty.
	Signatures [4]string
}

// BuildWAV returns the 44-byte header followed by the payload.
func BuildWAV(s WAVFixture) []byte {
	sig := [4]string{"RIFF", "WAVE", "fmt ", "data"}
	for i, v := range s.Signatures {
		if v != "" {
			sig[i] = v
		}
	}

	dataSize := uint32(len(s.Payload))
	if s.DataSize > 0 {
		dataSize = uint32(s.DataSize)
	}

	blockAlign := uint16(s.Channels * s.BitsPerSample / 8)

	buf := new(bytes.Buffer)

	// RIFF header
	buf.WriteString(sig[0])
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString(sig[1])

	// fmt chunk
	buf.WriteString(sig[2])
	binary.Write(buf, binary.LittleEndian, uint32(16)) // chunk size
	binary.Write(buf, binary.LittleEndian, uint16(1))  // PCM format
	binary.Write(buf, binary.LittleEndian, uint16(s.Channels))
	binary.Write(buf, binary.LittleEndian, uint32(s.SampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(s.SampleRate)*uint32(blockAlign))
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(s.BitsPerSample))

	// data chunk
	buf.WriteString(sig[3])
	binary.Write(buf, binary.LittleEndian, dataSize)
	buf.Write(s.Payload)

	return buf.Bytes()
}

// PCM16 encodes samples as little-endian 16-bit bytes.
func PCM16(samples ...int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}

	return out
}

// WriteTempWAV stores BuildWAV(s) in a fresh temp dir and returns its path.
func WriteTempWAV(t testing.TB, s WAVFixture) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.wav")
	if err := os.WriteFile(path, BuildWAV(s), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	return path
}
