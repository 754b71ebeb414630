// SPDX-License-Identifier: EPL-2.0

package audiotest

// SequenceNoise replays a fixed list of values, wrapping at the end. It
// satisfies pluck.Noise.
type SequenceNoise struct {
	values []float32
	next   int
	calls  int
}

func NewSequenceNoise(values ...float32) *SequenceNoise {
	return &SequenceNoise{values: values}
}

func (n *SequenceNoise) Next() float32 {
	n.calls++
	if len(n.values) == 0 {
		return 0
	}

	v := n.values[n.next]
	n.next = (n.next + 1) % len(n.values)

	return v
}

// Calls is the number of values handed out.
func (n *SequenceNoise) Calls() int { return n.calls }
