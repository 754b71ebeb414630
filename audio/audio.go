// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"sort"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// PCMFormat describes a raw interleaved PCM buffer.
type PCMFormat struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// BytesPerFrame is the size of one frame across all channels.
func (f PCMFormat) BytesPerFrame() int { return f.Channels * f.BitDepth / 8 }

// Sink plays raw PCM to completion. Play blocks until the whole buffer
// was played, ctx is done, or the device fails.
type Sink interface {
	Play(ctx context.Context, pcm []byte, format PCMFormat) error
}

// Registry for playback sinks by name (e.g., "oto", "discard").
type Registry struct {
	sinks map[string]Sink

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		sinks: make(map[string]Sink),
		mtx:   &sync.Mutex{},
	}
}

func (r *Registry) Register(name string, s Sink) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.sinks[name] = s
}

func (r *Registry) Get(name string) (Sink, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	s, ok := r.sinks[name]
	return s, ok
}

// Names lists the registered sinks in sorted order.
func (r *Registry) Names() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, 0, len(r.sinks))
	for name := range r.sinks {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
