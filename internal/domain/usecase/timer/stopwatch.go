package timer

import (
	"fmt"
	"sync"

	"github.com/amirhossein-jamali/timewriter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timewriter/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timewriter/internal/domain/port/core"
)

// State is the lifecycle position of a Stopwatch or Timer
type State int

const (
	// StateIdle has never been started or was reset
	StateIdle State = iota
	// StateRunning accumulates elapsed time
	StateRunning
	// StatePaused keeps its elapsed time and may resume
	StatePaused
	// StateStopped is final until Reset
	StateStopped
)

// String returns the lower-case state name
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	default:
		return "idle"
	}
}

// Stopwatch measures elapsed time on a monotonic clock.
// It is safe for concurrent use.
type Stopwatch struct {
	mu          sync.Mutex
	clock       coreport.TimeProvider
	state       State
	startedAt   int64
	accumulated int64
}

// NewStopwatch creates an idle stopwatch reading clock
func NewStopwatch(clock coreport.TimeProvider) *Stopwatch {
	return &Stopwatch{clock: clock}
}

// Start begins measuring. Only an idle stopwatch can start.
func (s *Stopwatch) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return transitionError("start", s.state)
	}
	s.startedAt = s.clock.Nanotime()
	s.state = StateRunning
	return nil
}

// Pause suspends a running stopwatch
func (s *Stopwatch) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		return transitionError("pause", s.state)
	}
	s.accumulated += s.clock.Nanotime() - s.startedAt
	s.state = StatePaused
	return nil
}

// Resume continues a paused stopwatch
func (s *Stopwatch) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePaused {
		return transitionError("resume", s.state)
	}
	s.startedAt = s.clock.Nanotime()
	s.state = StateRunning
	return nil
}

// Stop freezes the stopwatch and returns the elapsed time
func (s *Stopwatch) Stop() (entity.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateRunning:
		s.accumulated += s.clock.Nanotime() - s.startedAt
	case StatePaused:
	default:
		return entity.Time{}, transitionError("stop", s.state)
	}
	s.state = StateStopped
	return entity.MustTime(s.accumulated), nil
}

// Reset returns the stopwatch to idle with nothing elapsed
func (s *Stopwatch) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateIdle
	s.startedAt = 0
	s.accumulated = 0
}

// Elapsed returns the time measured so far
func (s *Stopwatch) Elapsed() entity.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return entity.MustTime(s.elapsed())
}

// State returns the current lifecycle state
func (s *Stopwatch) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// elapsed expects s.mu to be held
func (s *Stopwatch) elapsed() int64 {
	if s.state == StateRunning {
		return s.accumulated + s.clock.Nanotime() - s.startedAt
	}
	return s.accumulated
}

func transitionError(action string, from State) error {
	return fmt.Errorf("%w: cannot %s a %s stopwatch", errs.ErrInvalidTimerState, action, from)
}
