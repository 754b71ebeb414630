package audio

import (
	"context"
	"reflect"
	"testing"
)

// mockSink is a test sink implementation
type mockSink struct {
	name string
}

func (s *mockSink) Play(ctx context.Context, pcm []byte, f PCMFormat) error {
	return nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	sink := &mockSink{name: "oto"}

	registry.Register("oto", sink)

	got, ok := registry.Get("oto")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered sink")
	}

	if got != sink {
		t.Error("Registry.Get() returned different sink instance")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	_, ok := registry.Get("nonexistent")
	if ok {
		t.Error("Registry.Get() returned ok=true for non-existent sink")
	}
}

func TestRegistry_MultipleSinks(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	otoSink := &mockSink{name: "oto"}
	discardSink := &mockSink{name: "discard"}
	fileSink := &mockSink{name: "file"}

	registry.Register("oto", otoSink)
	registry.Register("discard", discardSink)
	registry.Register("file", fileSink)

	tests := []struct {
		name   string
		want   Sink
		wantOK bool
	}{
		{"oto", otoSink, true},
		{"discard", discardSink, true},
		{"file", fileSink, true},
		{"alsa", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := registry.Get(tt.name)
			if ok != tt.wantOK {
				t.Errorf("Registry.Get(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if tt.wantOK && got != tt.want {
				t.Errorf("Registry.Get(%q) returned wrong sink", tt.name)
			}
		})
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	sink1 := &mockSink{name: "first"}
	sink2 := &mockSink{name: "second"}

	registry.Register("oto", sink1)
	registry.Register("oto", sink2)

	got, ok := registry.Get("oto")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}

	if got != sink2 {
		t.Error("Registry.Get() did not return the overwritten sink")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	sink := &mockSink{name: "test"}

	// Register concurrently
	done := make(chan bool)
	for i := range 10 {
		go func(id int) {
			registry.Register("sink", sink)
			done <- true
		}(i)
	}

	// Get concurrently
	for i := range 10 {
		go func(id int) {
			_, _ = registry.Get("sink")
			done <- true
		}(i)
	}

	// Wait for all goroutines
	for range 20 {
		<-done
	}

	// Verify the sink is registered
	got, ok := registry.Get("sink")
	if !ok {
		t.Error("Registry.Get() failed after concurrent operations")
	}
	if got != sink {
		t.Error("Registry returned wrong sink after concurrent operations")
	}
}

func TestRegistry_EmptyFormatName(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	sink := &mockSink{name: "test"}

	// Empty string as sink name should work (no validation in current impl)
	registry.Register("", sink)

	got, ok := registry.Get("")
	if !ok {
		t.Error("Registry.Get(\"\") failed for empty sink name")
	}
	if got != sink {
		t.Error("Registry.Get(\"\") returned wrong sink")
	}
}

func TestRegistry_Names(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("oto", &mockSink{})
	registry.Register("discard", &mockSink{})

	want := []string{"discard", "oto"}
	if got := registry.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Registry.Names() = %v, want %v", got, want)
	}
}

func TestPCMFormat_BytesPerFrame(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format PCMFormat
		want   int
	}{
		{PCMFormat{SampleRate: 48000, Channels: 1, BitDepth: 16}, 2},
		{PCMFormat{SampleRate: 48000, Channels: 2, BitDepth: 16}, 4},
		{PCMFormat{SampleRate: 44100, Channels: 2, BitDepth: 24}, 6},
		{PCMFormat{SampleRate: 8000, Channels: 1, BitDepth: 8}, 1},
	}

	for _, tt := range tests {
		if got := tt.format.BytesPerFrame(); got != tt.want {
			t.Errorf("%+v.BytesPerFrame() = %d, want %d", tt.format, got, tt.want)
		}
	}
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	if registry == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if registry.sinks == nil {
		t.Error("NewRegistry() did not initialize sinks map")
	}

	if registry.mtx == nil {
		t.Error("NewRegistry() did not initialize mutex")
	}
}

// BenchmarkRegistry_Register benchmarks registering sinks
func BenchmarkRegistry_Register(b *testing.B) {
	registry := NewRegistry()
	sink := &mockSink{}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		registry.Register("oto", sink)
	}
}

// BenchmarkRegistry_Get benchmarks retrieving sinks
func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	sink := &mockSink{}
	registry.Register("oto", sink)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_, _ = registry.Get("oto")
	}
}

// BenchmarkRegistry_GetMiss benchmarks cache misses
func BenchmarkRegistry_GetMiss(b *testing.B) {
	registry := NewRegistry()

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_, _ = registry.Get("nonexistent")
	}
}

// BenchmarkRegistry_ConcurrentRegisterGet benchmarks concurrent operations
func BenchmarkRegistry_ConcurrentRegisterGet(b *testing.B) {
	registry := NewRegistry()
	sink := &mockSink{}

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i%2 == 0 {
				registry.Register("oto", sink)
			} else {
				_, _ = registry.Get("oto")
			}
			i++
		}
	})
}
