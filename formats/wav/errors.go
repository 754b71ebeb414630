// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
)

var (
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout also matches ErrNotWavFile.
	ErrUnsupportedWavLayout = fmt.Errorf("%w: unsupported WAV layout", ErrNotWavFile)

	ErrChannelMismatch = errors.New("channel count mismatch")
	ErrIO              = errors.New("WAV I/O failed")
)
