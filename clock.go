package tzsync

import "time"

// Clock supplies the current instant. The current-time queries read it on
// every call, so tests can freeze time by injecting their own implementation
// through NewWithClock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the live system time.
type SystemClock struct{}

// Now returns the current system time
func (SystemClock) Now() time.Time {
	return time.Now()
}
