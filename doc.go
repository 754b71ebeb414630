// SPDX-License-Identifier: EPL-2.0

// Package audpluck synthesizes plucked-string notes and stores them as
// WAV files.
//
// The work is split over small packages that do not depend on each
// other:
//   - pluck: Karplus-Strong string synthesis
//   - formats/wav: PCM WAV reading and writing
//   - audio: Source and Sink interfaces, float to PCM byte packing
//   - playback: Sink implementations
//
// This package wires them together for the common cases.
//
// # Quick Start
//
//	note, err := audpluck.WriteNote("g3.wav", pluck.Params{
//	    Frequency:  196,
//	    SampleRate: 48000,
//	    DecayTime:  2,
//	})
//
// The note is computed once, in full, then written normalized and faded
// out. note holds the derived delay line length and loop coefficients.
//
// # Rendering Without Files
//
//	samples, note, err := audpluck.RenderNote(params, pluck.WithNoise(pluck.NewRandNoise(42)))
//
// A fixed-seed noise source makes the result reproducible.
//
// # Playing
//
//	err := audpluck.PlayMono(ctx, playback.NewOto(), samples, 48000, 16)
//
// See the individual subpackages for more detailed documentation.
package audpluck
