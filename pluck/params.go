// SPDX-License-Identifier: EPL-2.0

package pluck

import (
	"fmt"
	"math"
)

// DefaultDamping is the excitation smoothing coefficient used when
// Params.Damping is left at zero.
const DefaultDamping = 0.95

// Params describes a plucked string.
type Params struct {
	// Frequency of the note in Hz.
	Frequency float64
	// SampleRate in Hz.
	SampleRate float64
	// DecayTime is the T60 time in seconds. It also sets the note length.
	DecayTime float64
	// Damping is the one-pole excitation filter coefficient in (0,1).
	// Zero selects DefaultDamping.
	Damping float64
}

func (p Params) withDefaults() Params {
	if p.Damping == 0 {
		p.Damping = DefaultDamping
	}

	return p
}

// Validate reports whether p can be turned into a note.
func (p Params) Validate() error {
	p = p.withDefaults()

	// !(x > 0) also rejects NaN
	if !(p.Frequency > 0) {
		return fmt.Errorf("%w: frequency %v must be positive", ErrConfiguration, p.Frequency)
	}
	if !(p.SampleRate > 0) {
		return fmt.Errorf("%w: sample rate %v must be positive", ErrConfiguration, p.SampleRate)
	}
	if !(p.DecayTime > 0) {
		return fmt.Errorf("%w: decay time %v must be positive", ErrConfiguration, p.DecayTime)
	}
	if !(p.Damping > 0 && p.Damping < 1) {
		return fmt.Errorf("%w: damping %v outside (0,1)", ErrConfiguration, p.Damping)
	}

	if p.tableSize() < 1 {
		return fmt.Errorf("%w: %v s at %v Hz is shorter than one sample",
			ErrConfiguration, p.DecayTime, p.SampleRate)
	}

	if n, _ := p.delay(); n < 1 {
		return fmt.Errorf("%w: frequency %v Hz leaves no delay line at %v Hz",
			ErrConfiguration, p.Frequency, p.SampleRate)
	}

	return nil
}

func (p Params) tableSize() int {
	return int(math.Floor(p.SampleRate * p.DecayTime))
}

// delay returns the integer and fractional parts of the ideal delay line
// length.
func (p Params) delay() (int, float64) {
	exact := p.SampleRate/p.Frequency - 0.5
	n := math.Floor(exact)

	return int(n), exact - n
}

// Note holds the values derived from Params by a single generation.
type Note struct {
	// WTSize is the wave table length in samples.
	WTSize int
	// Nexact is the ideal delay line length.
	Nexact float64
	// N is the truncated delay line length.
	N int
	// P is the fractional part of Nexact.
	P float64
	// C is the allpass coefficient.
	C float64
	// Rho is the loop decay coefficient. It is not clamped and can exceed 1.
	Rho float64
}

func newNote(p Params) Note {
	n, frac := p.delay()

	return Note{
		WTSize: p.tableSize(),
		Nexact: p.SampleRate/p.Frequency - 0.5,
		N:      n,
		P:      frac,
		C:      (1 - frac) / (1 + frac),
		Rho: math.Exp(-1/(p.Frequency*p.DecayTime/math.Log(1000))) /
			math.Abs(math.Cos(2*math.Pi*p.Frequency/p.SampleRate)),
	}
}

// Stable reports whether the loop gain keeps the note decaying.
func (n Note) Stable() bool { return n.Rho <= 1 }
