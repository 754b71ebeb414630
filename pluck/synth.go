// SPDX-License-Identifier: EPL-2.0

package pluck

import "fmt"

// Option configures a Synth.
type Option func(*Synth)

// WithNoise sets the excitation source. Use a fixed-seed source to make
// GenerateNote reproducible.
func WithNoise(n Noise) Option {
	return func(s *Synth) {
		if n != nil {
			s.noise = n
		}
	}
}

// Synth renders a whole plucked note into a wave table with the
// Karplus-Strong algorithm and plays it back through a cyclic cursor.
//
// A Synth is not safe for concurrent use. GenerateNote must not run
// while another goroutine calls Process.
type Synth struct {
	params     Params
	configured bool
	noise      Noise

	note   Note
	table  []float32
	cursor int
}

// NewSynth returns an unconfigured synth. Without WithNoise the
// excitation is seeded from the clock.
func NewSynth(opts ...Option) *Synth {
	s := &Synth{}
	for _, opt := range opts {
		opt(s)
	}
	if s.noise == nil {
		s.noise = newClockNoise()
	}

	return s
}

// Configure stores p for the next GenerateNote. An invalid p leaves the
// previous configuration in place. A note already generated keeps
// playing until the next GenerateNote.
func (s *Synth) Configure(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.params = p.withDefaults()
	s.configured = true

	return nil
}

// Params returns the configured parameters.
func (s *Synth) Params() Params { return s.params }

// GenerateNote computes the complete note, attack through decay, and
// replaces the current wave table with it. The cursor restarts at 0.
func (s *Synth) GenerateNote() (Note, error) {
	if !s.configured {
		return Note{}, fmt.Errorf("%w: generate before configure", ErrConfiguration)
	}

	p := s.params
	note := newNote(p)
	table := make([]float32, note.WTSize)

	// pluck excitation: smoothed noise seeds the first N+1 samples
	excite := min(note.N+1, note.WTSize)
	var x1 float64
	for i := range excite {
		x0 := (1-p.Damping)*float64(s.noise.Next()) + p.Damping*x1
		table[i] = float32(x0)
		x1 = x0
	}

	// the table is its own delay line, tuned by the allpass coefficient C
	gain := note.Rho / 2
	var yp1 float64
	for n := note.N + 1; n < note.WTSize; n++ {
		yp0 := note.C*(float64(table[n-note.N])-yp1) + float64(table[n-note.N-1])
		table[n] = float32(gain * (yp0 + yp1))
		yp1 = yp0
	}

	s.table = table
	s.cursor = 0
	s.note = note

	return note, nil
}

// Note returns the coefficients of the last generation.
func (s *Synth) Note() (Note, bool) {
	return s.note, s.table != nil
}

// Len is the wave table length, 0 before the first generation.
func (s *Synth) Len() int { return len(s.table) }

// Process returns the sample under the cursor and advances it. The
// cursor wraps, so the note repeats from its attack every Len samples.
func (s *Synth) Process() (float32, error) {
	if s.table == nil {
		return 0, ErrNotReady
	}

	v := s.table[s.cursor]
	s.cursor++
	if s.cursor == len(s.table) {
		s.cursor = 0
	}

	return v, nil
}

// Render fills dst with consecutive Process results.
func (s *Synth) Render(dst []float32) (int, error) {
	if s.table == nil {
		return 0, ErrNotReady
	}

	for i := range dst {
		dst[i] = s.table[s.cursor]
		s.cursor++
		if s.cursor == len(s.table) {
			s.cursor = 0
		}
	}

	return len(dst), nil
}

// Reset moves the cursor back to the start of the note.
func (s *Synth) Reset() { s.cursor = 0 }
