// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"sync"

	"github.com/ik5/audpluck/audio"
)

// Discard is a Sink without a device. It validates and counts what it is
// given and returns at once.
type Discard struct {
	mtx    sync.Mutex
	bytes  int
	frames int
	last   audio.PCMFormat
}

var _ audio.Sink = (*Discard)(nil)

func (d *Discard) Play(ctx context.Context, pcm []byte, f audio.PCMFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := checkFormat(pcm, f); err != nil {
		return err
	}

	d.mtx.Lock()
	defer d.mtx.Unlock()

	d.bytes += len(pcm)
	d.frames += len(pcm) / f.BytesPerFrame()
	d.last = f

	return nil
}

// Played returns the bytes and frames accepted so far and the format of
// the last buffer.
func (d *Discard) Played() (bytes, frames int, last audio.PCMFormat) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	return d.bytes, d.frames, d.last
}
