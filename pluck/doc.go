// SPDX-License-Identifier: EPL-2.0

// Package pluck synthesizes plucked strings with the Karplus-Strong
// algorithm.
//
// A note is computed once, in full, and then served sample by sample:
//
//	s := pluck.NewSynth()
//	if err := s.Configure(pluck.Params{Frequency: 196, SampleRate: 48000, DecayTime: 2}); err != nil {
//	    return err
//	}
//	note, err := s.GenerateNote()
//	...
//	v, err := s.Process()
//
// GenerateNote excites a delay line of N+1 samples with smoothed noise,
// where N is the integer part of SampleRate/Frequency - 0.5, and extends
// it with a feedback loop whose fractional delay is tuned by a one
// coefficient allpass filter. The loop gain Rho is derived from DecayTime
// and is not clamped: for frequencies close to SampleRate/4 the cosine
// term approaches zero, Rho exceeds 1 and the table grows instead of
// decaying. Note.Stable reports this case.
//
// Process never runs out of samples. Once the cursor reaches the end of
// the table it wraps to 0 and the note replays from its attack.
//
// # Noise
//
// The excitation comes from a Noise source. NewSynth seeds one from the
// clock; pass WithNoise(NewRandNoise(seed)) for reproducible notes.
package pluck
