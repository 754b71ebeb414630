// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes canonical PCM WAV files.
//
// Only the classic 44-byte layout is understood: a RIFF/WAVE chunk whose
// "fmt " sub-chunk is immediately followed by the "data" sub-chunk.
//
// # Reading
//
// A Codec opens a file, parses its header and decodes the samples into
// float32 values:
//
//	c := wav.NewCodec()
//	samples, rate, err := c.ReadMono("note.wav")     // channel 0 only
//	lr, rate, err := c.ReadStereo("stereo.wav")      // [channel][frame]
//	pcm, rate, err := c.ReadRaw("note.wav")          // data chunk as is
//
// After a read, SampleRate, Channels and BitDepth describe the file. The
// Codec keeps that header until the next read, so one Codec must not
// serve two reads at once.
//
// 8, 16, 24 and 32-bit samples are supported. 8-bit samples are unsigned
// and map to (b-127.5)*2/256. Wider samples are shifted into the high
// bytes of an int32 and divided by 2^31.
//
// DecodeMono and DecodeMulti do the same work on any io.Reader positioned
// after a header returned by ParseHeader.
//
// # Writing
//
// EncodeMono and EncodeStereo write 16-bit PCM. The input is copied,
// normalized to a peak of 1 and faded out over its last FadeFrames+1
// frames before quantization. Mono files are scaled by MonoAmplitude
// (32000), stereo files by StereoAmplitude (32767). Files are written to
// a temporary name and renamed into place, so a failed write never leaves
// a truncated file behind.
//
//	err := c.EncodeMono(samples, "note.wav", 48000)
//
// WriteMono, WriteStereo and WritePCM16 write to any io.Writer.
//
// # Error Handling
//
//   - ErrNotWavFile: a signature check failed
//   - ErrUnsupportedWavLayout: the header cannot be decoded or written
//     (also matches ErrNotWavFile)
//   - ErrChannelMismatch: a stereo read of a non-stereo file, or
//     channels of different lengths
//   - ErrIO: open, read or write failure, including short reads
//
// Use errors.Is:
//
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav
