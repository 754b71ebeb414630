// SPDX-License-Identifier: EPL-2.0

package audpluck

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/ik5/audpluck/audio"
	"github.com/ik5/audpluck/formats/wav"
	"github.com/ik5/audpluck/playback"
	"github.com/ik5/audpluck/pluck"
)

var g3 = pluck.Params{Frequency: 196, SampleRate: 8000, DecayTime: 0.5}

// a4 at 8 kHz has a loop gain above one.
var a4 = pluck.Params{Frequency: 440, SampleRate: 8000, DecayTime: 0.5}

func TestRenderNote_Basic(t *testing.T) {
	t.Parallel()

	samples, note, err := RenderNote(g3, pluck.WithNoise(pluck.NewRandNoise(1)))
	if err != nil {
		t.Fatalf("RenderNote() error = %v", err)
	}

	if note.WTSize != 4000 {
		t.Errorf("RenderNote() WTSize = %d, want 4000", note.WTSize)
	}

	if !note.Stable() {
		t.Errorf("RenderNote() Rho = %v, want a stable note", note.Rho)
	}

	if len(samples) != note.WTSize {
		t.Errorf("RenderNote() got %d samples, want %d", len(samples), note.WTSize)
	}

	// Verify samples are finite and not all silent
	var peak float64
	for i, s := range samples {
		if math.IsNaN(float64(s)) || math.IsInf(float64(s), 0) {
			t.Fatalf("samples[%d] = %v, want finite", i, s)
		}
		peak = max(peak, math.Abs(float64(s)))
	}

	if peak == 0 {
		t.Error("RenderNote() returned silence")
	}
}

func TestRenderNote_MatchesSynth(t *testing.T) {
	t.Parallel()

	samples, _, err := RenderNote(g3, pluck.WithNoise(pluck.NewRandNoise(7)))
	if err != nil {
		t.Fatalf("RenderNote() error = %v", err)
	}

	s := pluck.NewSynth(pluck.WithNoise(pluck.NewRandNoise(7)))
	if err := s.Configure(g3); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	if _, err := s.GenerateNote(); err != nil {
		t.Fatalf("GenerateNote() error = %v", err)
	}

	for i, got := range samples {
		want, err := s.Process()
		if err != nil {
			t.Fatalf("Process() error = %v", err)
		}
		if got != want {
			t.Fatalf("samples[%d] = %v, Process() gives %v", i, got, want)
		}
	}
}

func TestRenderNote_Deterministic(t *testing.T) {
	t.Parallel()

	first, _, err := RenderNote(g3, pluck.WithNoise(pluck.NewRandNoise(99)))
	if err != nil {
		t.Fatalf("RenderNote() error = %v", err)
	}

	second, _, err := RenderNote(g3, pluck.WithNoise(pluck.NewRandNoise(99)))
	if err != nil {
		t.Fatalf("RenderNote() error = %v", err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("renders differ at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestRenderNote_InvalidParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params pluck.Params
	}{
		{"zero frequency", pluck.Params{Frequency: 0, SampleRate: 8000, DecayTime: 1}},
		{"zero sample rate", pluck.Params{Frequency: 440, SampleRate: 0, DecayTime: 1}},
		{"negative decay", pluck.Params{Frequency: 440, SampleRate: 8000, DecayTime: -1}},
		{"frequency above Nyquist", pluck.Params{Frequency: 6000, SampleRate: 8000, DecayTime: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			samples, _, err := RenderNote(tt.params)
			if !errors.Is(err, pluck.ErrConfiguration) {
				t.Errorf("RenderNote() error = %v, want ErrConfiguration", err)
			}
			if samples != nil {
				t.Errorf("RenderNote() returned %d samples on error", len(samples))
			}
		})
	}
}

func TestWriteNote(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "g3.wav")

	note, err := WriteNote(path, g3, pluck.WithNoise(pluck.NewRandNoise(3)))
	if err != nil {
		t.Fatalf("WriteNote() error = %v", err)
	}

	if !note.Stable() {
		t.Fatalf("WriteNote() Rho = %v, want a stable note", note.Rho)
	}

	c := wav.NewCodec()
	samples, rate, err := c.ReadMono(path)
	if err != nil {
		t.Fatalf("ReadMono() error = %v", err)
	}

	if rate != 8000 {
		t.Errorf("ReadMono() rate = %d, want 8000", rate)
	}

	if len(samples) != note.WTSize {
		t.Errorf("ReadMono() got %d samples, want %d", len(samples), note.WTSize)
	}

	if c.BitDepth() != 16 || c.Channels() != 1 {
		t.Errorf("file is %d ch / %d bits, want 1 / 16", c.Channels(), c.BitDepth())
	}

	// Normalized to the mono amplitude, then faded to silence
	var peak float64
	for _, s := range samples {
		peak = max(peak, math.Abs(float64(s)))
	}
	if want := float64(wav.MonoAmplitude) / 32768; math.Abs(peak-want) > 2.0/32768 {
		t.Errorf("peak = %v, want ≈%v", peak, want)
	}

	if last := samples[len(samples)-1]; last != 0 {
		t.Errorf("last sample = %v, want 0", last)
	}
}

func TestWriteNote_Unstable(t *testing.T) {
	t.Parallel()

	rendered, note, err := RenderNote(a4, pluck.WithNoise(pluck.NewRandNoise(3)))
	if err != nil {
		t.Fatalf("RenderNote() error = %v", err)
	}

	if note.Stable() {
		t.Fatalf("RenderNote() Rho = %v, want an unstable note", note.Rho)
	}

	path := filepath.Join(t.TempDir(), "a4.wav")
	if _, err := WriteNote(path, a4, pluck.WithNoise(pluck.NewRandNoise(3))); err != nil {
		t.Fatalf("WriteNote() error = %v", err)
	}

	samples, _, err := wav.NewCodec().ReadMono(path)
	if err != nil {
		t.Fatalf("ReadMono() error = %v", err)
	}

	var peak float64
	for _, s := range rendered {
		peak = max(peak, math.Abs(float64(s)))
	}

	// The growing tail peaks inside the fade, so only the frames before it
	// carry the plain normalized scale.
	limit := float64(wav.MonoAmplitude) / 32768
	fadeStart := len(samples) - (wav.FadeFrames + 1)

	var heard bool
	for i, got := range samples[:fadeStart] {
		if math.Abs(float64(got)) > limit {
			t.Fatalf("samples[%d] = %v, exceeds %v", i, got, limit)
		}

		want := float64(rendered[i]) / peak * limit
		if math.Abs(float64(got)-want) > 2.0/32768 {
			t.Fatalf("samples[%d] = %v, want ≈%v", i, got, want)
		}

		heard = heard || got != 0
	}

	if !heard {
		t.Error("frames before the fade are silent")
	}
}

func TestWriteNote_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	if _, err := WriteNote(filepath.Join(dir, "missing", "g3.wav"), g3); !errors.Is(err, wav.ErrIO) {
		t.Errorf("WriteNote() to missing dir error = %v, want wav.ErrIO", err)
	}

	bad := g3
	bad.Damping = 1.5
	if _, err := WriteNote(filepath.Join(dir, "bad.wav"), bad); !errors.Is(err, pluck.ErrConfiguration) {
		t.Errorf("WriteNote() with bad damping error = %v, want ErrConfiguration", err)
	}
}

func TestPlayMono_Discard(t *testing.T) {
	t.Parallel()

	samples, _, err := RenderNote(g3, pluck.WithNoise(pluck.NewRandNoise(5)))
	if err != nil {
		t.Fatalf("RenderNote() error = %v", err)
	}

	sink := &playback.Discard{}
	if err := PlayMono(context.Background(), sink, samples, 8000, 16); err != nil {
		t.Fatalf("PlayMono() error = %v", err)
	}

	bytes, frames, last := sink.Played()
	if frames != len(samples) {
		t.Errorf("Played() frames = %d, want %d", frames, len(samples))
	}
	if bytes != 2*len(samples) {
		t.Errorf("Played() bytes = %d, want %d", bytes, 2*len(samples))
	}

	want := audio.PCMFormat{SampleRate: 8000, Channels: 1, BitDepth: 16}
	if last != want {
		t.Errorf("Played() format = %+v, want %+v", last, want)
	}
}

func TestPlayMono_Errors(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 100)

	if err := PlayMono(context.Background(), &playback.Discard{}, samples, 8000, 12); !errors.Is(err, audio.ErrInvalidBitDepth) {
		t.Errorf("PlayMono() error = %v, want ErrInvalidBitDepth", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := PlayMono(ctx, &playback.Discard{}, samples, 8000, 16); !errors.Is(err, context.Canceled) {
		t.Errorf("PlayMono() error = %v, want context.Canceled", err)
	}
}

func BenchmarkRenderNote(b *testing.B) {
	p := pluck.Params{Frequency: 196, SampleRate: 48000, DecayTime: 2}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		if _, _, err := RenderNote(p, pluck.WithNoise(pluck.NewRandNoise(1))); err != nil {
			b.Fatal(err)
		}
	}
}
