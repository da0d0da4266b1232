package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	newTime := startTime.Add(time.Hour)
	mock.SetTime(newTime)
	if now := mock.Now(); !now.Equal(newTime) {
		t.Errorf("Expected time to be %v after SetTime, got %v", newTime, now)
	}

	got := mock.Advance(100 * time.Millisecond)
	if want := newTime.Add(100 * time.Millisecond); !got.Equal(want) || !mock.Now().Equal(want) {
		t.Errorf("Advance() = %v, want %v", got, want)
	}
}

func TestPausableClock(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClock(mock)

	mock.Advance(2 * time.Second)
	if got := clock.Elapsed(); got != 2*time.Second {
		t.Errorf("Elapsed() = %v, want 2s", got)
	}

	clock.Pause()
	clock.Pause()
	mock.Advance(5 * time.Second)
	if !clock.IsPaused() {
		t.Error("IsPaused() = false after Pause")
	}
	if got := clock.Elapsed(); got != 2*time.Second {
		t.Errorf("Elapsed() while paused = %v, want 2s", got)
	}
	if got := clock.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("TotalPauseDuration() = %v, want 5s", got)
	}

	clock.Resume()
	clock.Resume()
	mock.Advance(time.Second)
	if got := clock.Elapsed(); got != 3*time.Second {
		t.Errorf("Elapsed() after resume = %v, want 3s", got)
	}
	if got := clock.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("TotalPauseDuration() after resume = %v, want 5s", got)
	}
}
