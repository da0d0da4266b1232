package engine

import (
	"time"
)

// MockTimeProvider provides a controllable time source for tests
type MockTimeProvider struct {
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	return m.currentTime
}

// SetTime sets the current time for the mock
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.currentTime = t
}

// Advance moves the mock forward and returns the new time
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	m.currentTime = m.currentTime.Add(d)
	return m.currentTime
}
