//go:build !headless

// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/ik5/audpluck/audio"
)

// Oto plays PCM through the system audio device. oto allows one context
// per process, so the first Play fixes the sample rate, channel count and
// bit depth; later buffers must match it. Create a single Oto per program.
//
// The device is opened as unsigned 8-bit or signed 16-bit. audio.PackPCM
// output spans [0, 2^(bits-1)], so it plays with a DC offset: at 16 bits
// silence sits at +16384 and a sample of exactly +1.0 wraps to -32768.
// PCM read from a WAV file plays as stored.
type Oto struct {
	mtx    sync.Mutex // serializes Play
	ctx    *oto.Context
	format audio.PCMFormat
	poll   time.Duration
}

var _ audio.Sink = (*Oto)(nil)

func NewOto() *Oto {
	return &Oto{poll: 10 * time.Millisecond}
}

func otoFormat(bitDepth int) (oto.Format, error) {
	switch bitDepth {
	case 8:
		return oto.FormatUnsignedInt8, nil
	case 16:
		return oto.FormatSignedInt16LE, nil
	}

	return 0, fmt.Errorf("%w: oto plays 8 or 16 bits, got %d", ErrUnsupportedFormat, bitDepth)
}

func (o *Oto) open(f audio.PCMFormat) error {
	if o.ctx != nil {
		if f != o.format {
			return fmt.Errorf("%w: opened %+v, got %+v", ErrFormatChanged, o.format, f)
		}
		return nil
	}

	format, err := otoFormat(f.BitDepth)
	if err != nil {
		return err
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   f.SampleRate,
		ChannelCount: f.Channels,
		Format:       format,
	})
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	<-ready

	o.ctx = ctx
	o.format = f

	return nil
}

// Play blocks until pcm was played or ctx is done.
func (o *Oto) Play(ctx context.Context, pcm []byte, f audio.PCMFormat) error {
	if err := checkFormat(pcm, f); err != nil {
		return err
	}

	o.mtx.Lock()
	defer o.mtx.Unlock()

	if err := o.open(f); err != nil {
		return err
	}

	player := o.ctx.NewPlayer(bytes.NewReader(pcm))
	defer player.Close()

	player.Play()

	ticker := time.NewTicker(o.poll)
	defer ticker.Stop()

	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			return ctx.Err()
		case <-ticker.C:
		}
	}

	if err := player.Err(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
