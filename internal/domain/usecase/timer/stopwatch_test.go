package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/timewriter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timewriter/internal/domain/error"
	"github.com/amirhossein-jamali/timewriter/mocks/port/core"
)

// clockReadings queues Nanotime readings in order
func clockReadings(readings ...int64) *core.MockTimeProvider {
	clock := new(core.MockTimeProvider)
	for _, r := range readings {
		clock.On("Nanotime").Return(r).Once()
	}
	return clock
}

func TestStopwatch(t *testing.T) {
	t.Run("should measure running time and skip pauses", func(t *testing.T) {
		// start, pause, resume, elapsed, stop
		clock := clockReadings(100, 400, 1_000, 1_050, 1_100)
		sw := NewStopwatch(clock)

		require.NoError(t, sw.Start())
		assert.Equal(t, StateRunning, sw.State())
		require.NoError(t, sw.Pause())
		assert.Equal(t, "300 ns", sw.Elapsed().String())
		require.NoError(t, sw.Resume())
		assert.Equal(t, "350 ns", sw.Elapsed().String())

		elapsed, err := sw.Stop()
		require.NoError(t, err)
		assert.Equal(t, "400 ns", elapsed.String())
		assert.Equal(t, StateStopped, sw.State())
		assert.Equal(t, "400 ns", sw.Elapsed().String())
		clock.AssertExpectations(t)
	})

	t.Run("should stop while paused without reading the clock", func(t *testing.T) {
		clock := clockReadings(0, 5_000)
		sw := NewStopwatch(clock)

		require.NoError(t, sw.Start())
		require.NoError(t, sw.Pause())
		elapsed, err := sw.Stop()
		require.NoError(t, err)
		assert.True(t, elapsed.Equal(entity.MustTimeFrom(5, entity.Microsecond)))
		clock.AssertExpectations(t)
	})

	t.Run("should reject illegal transitions", func(t *testing.T) {
		clock := clockReadings(10, 20)
		sw := NewStopwatch(clock)

		assert.ErrorIs(t, sw.Pause(), errs.ErrInvalidTimerState)
		assert.ErrorIs(t, sw.Resume(), errs.ErrInvalidTimerState)
		_, err := sw.Stop()
		assert.ErrorIs(t, err, errs.ErrInvalidTimerState)

		require.NoError(t, sw.Start())
		assert.ErrorIs(t, sw.Start(), errs.ErrInvalidTimerState)
		assert.ErrorIs(t, sw.Resume(), errs.ErrInvalidTimerState)

		_, err = sw.Stop()
		require.NoError(t, err)
		assert.ErrorIs(t, sw.Start(), errs.ErrInvalidTimerState)
		assert.EqualError(t, sw.Pause(), "invalid timer state: cannot pause a stopped stopwatch")
	})

	t.Run("should reset to idle", func(t *testing.T) {
		clock := clockReadings(10, 30, 50)
		sw := NewStopwatch(clock)

		require.NoError(t, sw.Start())
		_, err := sw.Stop()
		require.NoError(t, err)

		sw.Reset()
		assert.Equal(t, StateIdle, sw.State())
		assert.Equal(t, "0 ns", sw.Elapsed().String())
		require.NoError(t, sw.Start())
	})

	t.Run("should name states", func(t *testing.T) {
		assert.Equal(t, "idle", StateIdle.String())
		assert.Equal(t, "running", StateRunning.String())
		assert.Equal(t, "paused", StatePaused.String())
		assert.Equal(t, "stopped", StateStopped.String())
	})
}

func TestTimer(t *testing.T) {
	t.Run("should count down and expire", func(t *testing.T) {
		// start, remaining, expired, remaining, expired
		clock := clockReadings(0, 400, 400, 1_500, 1_500)
		tm, err := NewTimer(clock, entity.MustTimeFrom(1, entity.Microsecond))
		require.NoError(t, err)

		require.NoError(t, tm.Start())
		assert.Equal(t, "600 ns", tm.Remaining().String())
		assert.False(t, tm.Expired())
		assert.Equal(t, "0 ns", tm.Remaining().String())
		assert.True(t, tm.Expired())
		assert.Equal(t, "1000 ns", tm.Duration().String())
		clock.AssertExpectations(t)
	})

	t.Run("should report the full duration before starting", func(t *testing.T) {
		tm, err := NewTimer(new(core.MockTimeProvider), entity.MustTime(250))
		require.NoError(t, err)
		assert.Equal(t, "250 ns", tm.Remaining().String())
		assert.False(t, tm.Expired())
	})

	t.Run("should reject non-finite durations", func(t *testing.T) {
		_, err := NewTimer(new(core.MockTimeProvider), entity.Infinite())
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
		_, err = NewTimer(new(core.MockTimeProvider), entity.NaN())
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	})
}
