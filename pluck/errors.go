// SPDX-License-Identifier: EPL-2.0

package pluck

import "errors"

var (
	// ErrConfiguration reports synthesis parameters that cannot produce a note.
	ErrConfiguration = errors.New("invalid string configuration")

	// ErrNotReady reports a read from a synth that has no generated note.
	ErrNotReady = errors.New("note not generated")
)
