// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock abstracts the current time so that notification generation and trend
// anchoring are deterministic in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements the Clock interface.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return ClockFunc(time.Now)
}
