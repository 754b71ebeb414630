// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level building blocks shared by the
// synthesizer, the codecs and the playback sinks.
//
// This package contains:
//   - Source interface for pulling float samples
//   - Sink interface for playing raw PCM
//   - PackPCM for turning float samples into raw PCM bytes
//   - Registry for looking up sinks by name
//
// # Source Interface
//
// The Source interface is the pull side of every pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// pluck.Voice implements it on top of a synthesizer. Collect drains a
// fixed number of frames from any Source:
//
//	samples, err := audio.Collect(pluck.NewVoice(synth), synth.Len())
//
// # Sink Interface
//
// A Sink accepts a complete PCM buffer and blocks until it was played:
//
//	pcm, _ := audio.PackPCM(samples, 16)
//	err := sink.Play(ctx, pcm, audio.PCMFormat{SampleRate: 48000, Channels: 1, BitDepth: 16})
//
// Implementations live in package playback. Nothing in the synthesizer or
// the codecs depends on a Sink.
//
// # Sample Format
//
// Float samples are float32 in the range [-1.0, 1.0]. PackPCM maps them
// onto [0, 2^(bitDepth-1)] and splits the result into little-endian bytes.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. A pluck.Voice
// never does; its note loops.
package audio
