// SPDX-License-Identifier: EPL-2.0

package playback

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported PCM format")
	ErrFormatChanged     = errors.New("device already opened with another format")
	ErrNoDevice          = errors.New("no audio device in headless build")
)
