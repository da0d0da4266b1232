package status

import (
	"reflect"
	"testing"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	a := m.Get("x")
	b := m.Get("x")
	if a != b {
		t.Fatal("Get returned different pointers for the same key")
	}
	a.Set(2.5)
	if got := b.Get(); got != 2.5 {
		t.Errorf("Get() = %v, want 2.5", got)
	}
	if m.Count() != 1 {
		t.Errorf("Count() = %d, want 1", m.Count())
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Errorf("zero value Load() = %q, want empty", s.Load())
	}
	s.Store("0123456789012345678901234567")
	if got := len(s.Load()); got != MaxStringLen {
		t.Errorf("len(Load()) = %d, want %d", got, MaxStringLen)
	}
}

func TestRegistrySnapshotOrder(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyTicks).Store(3)
	r.Ints.Get(KeyFrames).Store(10)
	r.Floats.Get(KeyFPS).Set(59.94)
	r.Bools.Get(KeyAudioEnabled).Store(true)
	r.Strings.Get(KeyBackend).Store("shader")

	got := r.Snapshot()
	want := []string{
		"engine.frames=10",
		"engine.ticks=3",
		"render.fps=59.9",
		"audio.enabled=true",
		"render.backend=shader",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Snapshot() = %v, want %v", got, want)
	}
	if r.TotalCount() != 5 {
		t.Errorf("TotalCount() = %d, want 5", r.TotalCount())
	}
}
