package core

import "time"

// TimeProvider abstracts clock sampling for the domain.
// Stopwatches and timers only ever read Nanotime; Now is for log timestamps.
type TimeProvider interface {
	// Now returns the current wall-clock time
	Now() time.Time
	// Nanotime returns a monotonic reading in nanoseconds.
	// Only differences between two readings are meaningful.
	Nanotime() int64
}
