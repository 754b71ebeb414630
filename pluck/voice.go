// SPDX-License-Identifier: EPL-2.0

package pluck

import "github.com/ik5/audpluck/audio"

// Voice exposes a Synth as a mono audio.Source. The stream never ends;
// callers decide how many samples to pull.
type Voice struct {
	s *Synth
}

var _ audio.Source = (*Voice)(nil)

func NewVoice(s *Synth) *Voice {
	return &Voice{s: s}
}

func (v *Voice) SampleRate() int { return int(v.s.params.SampleRate) }
func (v *Voice) Channels() int   { return 1 }
func (v *Voice) BufSize() int    { return max(v.s.Len(), 4096) }
func (v *Voice) Close() error    { return nil }

func (v *Voice) ReadSamples(dst []float32) (int, error) {
	return v.s.Render(dst)
}
