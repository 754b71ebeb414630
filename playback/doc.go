// SPDX-License-Identifier: EPL-2.0

// Package playback implements audio.Sink.
//
//   - Oto plays through the system device with github.com/ebitengine/oto/v3.
//     Build with -tags headless to compile it out; Play then returns
//     ErrNoDevice.
//   - Discard accepts and counts buffers without playing them.
//
// Register sinks by name to let a program pick one at run time:
//
//	reg := audio.NewRegistry()
//	reg.Register("oto", playback.NewOto())
//	reg.Register("discard", &playback.Discard{})
package playback
