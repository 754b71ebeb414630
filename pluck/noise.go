// SPDX-License-Identifier: EPL-2.0

package pluck

import (
	"math/rand/v2"
	"time"
)

// Noise supplies excitation samples in [-1,1].
type Noise interface {
	Next() float32
}

// NoiseFunc adapts a function to Noise.
type NoiseFunc func() float32

func (f NoiseFunc) Next() float32 { return f() }

// noiseSteps is the size of the excitation grid; values are k/5000-1 for
// k in [0,10000].
const noiseSteps = 10001

type randNoise struct {
	r *rand.Rand
}

// NewRandNoise returns a pseudo-random Noise with a fixed seed.
func NewRandNoise(seed uint64) Noise {
	return &randNoise{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func newClockNoise() Noise {
	return NewRandNoise(uint64(time.Now().UnixNano()))
}

func (n *randNoise) Next() float32 {
	return float32(n.r.IntN(noiseSteps))/5000 - 1
}
