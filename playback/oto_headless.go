//go:build headless

// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"

	"github.com/ik5/audpluck/audio"
)

// Oto is unavailable in headless builds; Play always fails.
type Oto struct{}

var _ audio.Sink = (*Oto)(nil)

func NewOto() *Oto { return &Oto{} }

func (o *Oto) Play(ctx context.Context, pcm []byte, f audio.PCMFormat) error {
	if err := checkFormat(pcm, f); err != nil {
		return err
	}

	return ErrNoDevice
}
