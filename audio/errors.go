// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidBitDepth = errors.New("bit depth must be 8, 16, 24 or 32")
	ErrInvalidFrames   = errors.New("frame count must not be negative")
)
