package timer

import (
	"github.com/amirhossein-jamali/timewriter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timewriter/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timewriter/internal/domain/port/core"
)

// Timer counts down a fixed duration. It shares the Stopwatch lifecycle.
type Timer struct {
	*Stopwatch
	duration entity.Time
}

// NewTimer creates an idle timer for duration, which must be finite
func NewTimer(clock coreport.TimeProvider, duration entity.Time) (*Timer, error) {
	if duration.IsNaN() || duration.IsInf() {
		return nil, errs.NewArgumentError(duration.String(), "timer duration must be finite")
	}
	return &Timer{Stopwatch: NewStopwatch(clock), duration: duration}, nil
}

// Duration returns the time the timer counts down from
func (t *Timer) Duration() entity.Time {
	return t.duration
}

// Remaining returns the time left, never less than zero
func (t *Timer) Remaining() entity.Time {
	elapsed := t.Elapsed()
	if elapsed.Cmp(t.duration) >= 0 {
		return entity.Time{}
	}
	return t.duration.Subtract(elapsed)
}

// Expired reports whether the full duration has elapsed
func (t *Timer) Expired() bool {
	return t.Elapsed().Cmp(t.duration) >= 0
}
