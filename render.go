// SPDX-License-Identifier: EPL-2.0

package audpluck

import (
	"context"
	"fmt"

	"github.com/ik5/audpluck/audio"
	"github.com/ik5/audpluck/formats/wav"
	"github.com/ik5/audpluck/pluck"
)

// RenderNote is a high-level convenience function that synthesizes one
// plucked note and returns exactly one pass over it, attack through decay.
//
// This function creates a processing pipeline:
//  1. Configures a pluck.Synth with p and opts
//  2. Generates the note's wave table
//  3. Pulls Note.WTSize samples from the synth through a pluck.Voice
//
// Example:
//
//	samples, note, err := audpluck.RenderNote(pluck.Params{
//	    Frequency: 196, SampleRate: 48000, DecayTime: 2,
//	})
//	// len(samples) == note.WTSize == 96000
func RenderNote(p pluck.Params, opts ...pluck.Option) ([]float32, pluck.Note, error) {
	s := pluck.NewSynth(opts...)
	if err := s.Configure(p); err != nil {
		return nil, pluck.Note{}, fmt.Errorf("%w", err)
	}

	note, err := s.GenerateNote()
	if err != nil {
		return nil, pluck.Note{}, fmt.Errorf("%w", err)
	}

	samples, err := audio.Collect(pluck.NewVoice(s), note.WTSize)
	if err != nil {
		return nil, note, fmt.Errorf("%w", err)
	}

	return samples, note, nil
}

// WriteNote renders a note with RenderNote and stores it at path as a
// normalized mono 16-bit WAV file.
func WriteNote(path string, p pluck.Params, opts ...pluck.Option) (pluck.Note, error) {
	samples, note, err := RenderNote(p, opts...)
	if err != nil {
		return note, err
	}

	if err := wav.NewCodec().EncodeMono(samples, path, int(p.SampleRate)); err != nil {
		return note, fmt.Errorf("%w", err)
	}

	return note, nil
}

// PlayMono packs mono float samples at bitDepth and plays them on sink,
// blocking until playback finished.
func PlayMono(ctx context.Context, sink audio.Sink, samples []float32, sampleRate, bitDepth int) error {
	pcm, err := audio.PackPCM(samples, bitDepth)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	format := audio.PCMFormat{SampleRate: sampleRate, Channels: 1, BitDepth: bitDepth}
	if err := sink.Play(ctx, pcm, format); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
