package database

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/amirhossein-jamali/timewriter/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/timewriter/internal/domain/port/core"
	"github.com/amirhossein-jamali/timewriter/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timewriter/internal/domain/usecase/writer"
)

// Backoff spaces the attempts of a Retrier. Each delay doubles the previous
// one up to Max, plus a random share of up to Jitter of itself.
type Backoff struct {
	Attempts int
	Initial  time.Duration
	Max      time.Duration
	Jitter   float64
}

// DefaultBackoff is used for zero fields of a Backoff
func DefaultBackoff() Backoff {
	return Backoff{
		Attempts: 5,
		Initial:  100 * time.Millisecond,
		Max:      2 * time.Second,
		Jitter:   0.2,
	}
}

// delay returns the pause after the given 1-based failed attempt, with
// share in [0, 1) picking the jitter
func (b Backoff) delay(attempt int, share float64) time.Duration {
	d := b.Initial
	for i := 1; i < attempt && d < b.Max; i++ {
		d *= 2
	}
	if d > b.Max {
		d = b.Max
	}
	return d + time.Duration(float64(d)*b.Jitter*share)
}

// Retrier repeats an operation while the ErrorMapper reports the database
// as unavailable. Every other failure is returned at once, mapped.
type Retrier struct {
	backoff Backoff
	mapper  *ErrorMapper
	logger  coreport.Logger
	writer  usecase.TimeWriterUseCase
	jitter  func() float64
	sleep   func(ctx context.Context, d time.Duration) error
}

// delaySettings renders retry delays as whole milliseconds
var delaySettings = entity.Settings{DecimalPlaces: entity.Ptr(0)}

// NewRetrier creates a Retrier; zero fields of backoff take DefaultBackoff
func NewRetrier(backoff Backoff, logger coreport.Logger) *Retrier {
	def := DefaultBackoff()
	if backoff.Attempts <= 0 {
		backoff.Attempts = def.Attempts
	}
	if backoff.Initial <= 0 {
		backoff.Initial = def.Initial
	}
	if backoff.Max < backoff.Initial {
		backoff.Max = max(def.Max, backoff.Initial)
	}
	return &Retrier{
		backoff: backoff,
		mapper:  NewErrorMapper(),
		logger:  logger,
		writer:  writer.NewTimeWriter(nil, logger, delaySettings),
		jitter:  rand.Float64,
		sleep:   sleepContext,
	}
}

// Do runs fn until it succeeds, fails permanently, the attempts run out,
// or ctx ends
func (r *Retrier) Do(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	var mapped error
	for attempt := 1; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		mapped = r.mapper.MapError(err, operation)
		if !errors.Is(mapped, ErrUnavailable) || attempt >= r.backoff.Attempts {
			break
		}

		d := r.backoff.delay(attempt, r.jitter())
		r.logger.Warn("Database unavailable, retrying", map[string]any{
			"operation":   operation,
			"attempt":     attempt,
			"attempts":    r.backoff.Attempts,
			"error":       err.Error(),
			"retry_after": r.render(d),
		})
		if err := r.sleep(ctx, d); err != nil {
			r.logger.Warn("Retry canceled", map[string]any{
				"operation": operation,
				"attempt":   attempt,
				"error":     err.Error(),
			})
			return err
		}
	}

	if errors.Is(mapped, ErrUnavailable) {
		r.logger.Error("Database still unavailable", map[string]any{
			"operation": operation,
			"attempts":  r.backoff.Attempts,
			"error":     mapped.Error(),
		})
	}
	return mapped
}

func (r *Retrier) render(d time.Duration) string {
	out, err := r.writer.Write(d.Nanoseconds(), usecase.WriteOptions{To: entity.Millisecond})
	if err != nil {
		return d.String()
	}
	return out
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
