package engine

import "time"

// TimeProvider supplies wall time to the frame loop
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// SessionClock measures elapsed session time from a fixed origin
type SessionClock struct {
	provider TimeProvider
	start    time.Time
}

// NewSessionClock starts a clock at the provider's current time
func NewSessionClock(provider TimeProvider) *SessionClock {
	return &SessionClock{provider: provider, start: provider.Now()}
}

// Elapsed returns time since the clock started
func (c *SessionClock) Elapsed() time.Duration {
	return c.provider.Now().Sub(c.start)
}
