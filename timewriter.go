// Package timewriter measures time in nanoseconds across named units and
// renders it as localized text.
//
//	out, _ := timewriter.Write(90, timewriter.WriteOptions{From: timewriter.Minute, To: timewriter.Hour})
//	// "1.5 h"
//
// The package-level functions share one locale registry holding en-us and
// the compiled-in bundles. Use NewLocales and NewWriter for isolated state.
package timewriter

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/timewriter/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/timewriter/internal/domain/port/core"
	"github.com/amirhossein-jamali/timewriter/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timewriter/internal/domain/usecase/locale"
	"github.com/amirhossein-jamali/timewriter/internal/domain/usecase/timer"
	"github.com/amirhossein-jamali/timewriter/internal/domain/usecase/writer"
	"github.com/amirhossein-jamali/timewriter/internal/infrastructure/adapter/localefs"
	"github.com/amirhossein-jamali/timewriter/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/timewriter/internal/infrastructure/adapter/time"
)

type (
	// Time is an exact nanosecond quantity, or NaN, or infinity
	Time = entity.Time
	// TimeUnit is a named multiple of a nanosecond
	TimeUnit = entity.TimeUnit
	// TimeUnitRef is a *TimeUnit or a UnitName
	TimeUnitRef = entity.TimeUnitRef
	// UnitName refers to a unit of the database by name
	UnitName = entity.UnitName
	// Segment is an ordered list of units for Countdown
	Segment = entity.Segment
	// Settings is one layer of writer options; nil fields defer to lower layers
	Settings = entity.Settings
	// LocaleSettings is a locale bundle
	LocaleSettings = entity.LocaleSettings
	// UnitTerms overrides the wording of one unit in a locale
	UnitTerms = entity.UnitTerms
	// WriteOptions selects the source and target units of Write
	WriteOptions = usecase.WriteOptions
	// TimeWriter renders Time values
	TimeWriter = writer.TimeWriter
	// Locales is a locale registry with one active locale
	Locales = locale.Service
	// Stopwatch measures elapsed time
	Stopwatch = timer.Stopwatch
	// Timer counts down a fixed duration
	Timer = timer.Timer
)

// Common units. Every other unit is reachable through UnitName.
const (
	Nanosecond  = entity.Nanosecond
	Microsecond = entity.Microsecond
	Millisecond = entity.Millisecond
	Second      = entity.Second
	Minute      = entity.Minute
	Hour        = entity.Hour
	Day         = entity.Day
	Week        = entity.Week
	Month       = entity.Month
	Year        = entity.Year
)

// Countdown presets
var (
	SegmentCommon   = entity.SegmentCommon
	SegmentBinary   = entity.SegmentBinary
	SegmentExtremes = entity.SegmentExtremes
	SegmentSidereal = entity.SegmentSidereal
	SegmentBaseTen  = entity.SegmentBaseTen
)

// NewTime reads value as nanoseconds
func NewTime(value any) (Time, error) { return entity.NewTime(value) }

// TimeFrom reads value expressed in unit
func TimeFrom(value any, unit TimeUnitRef) (Time, error) { return entity.TimeFrom(value, unit) }

// LookupTimeUnit finds a unit by name, case-insensitively and in plural form
func LookupTimeUnit(name string) (*TimeUnit, error) { return entity.LookupTimeUnit(name) }

// Ptr returns a pointer to v, for filling Settings
func Ptr[T any](v T) *T { return entity.Ptr(v) }

// NewLocales creates a registry with en-us active and the compiled-in
// bundles registered. A nil log discards log entries.
func NewLocales(ctx context.Context, log coreport.Logger) (*Locales, error) {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	svc, err := locale.NewService(log)
	if err != nil {
		return nil, err
	}
	if _, err := svc.Load(ctx, localefs.Bundled()); err != nil {
		return nil, err
	}
	return svc, nil
}

// NewWriter creates a writer rendering with the active locale of locales,
// or en-us when locales is nil
func NewWriter(locales *Locales, settings Settings) *TimeWriter {
	if locales == nil {
		return writer.NewTimeWriter(nil, logger.NewNoopLogger(), settings)
	}
	return writer.NewTimeWriter(locales, logger.NewNoopLogger(), settings)
}

// NewStopwatch creates an idle stopwatch on the process clock
func NewStopwatch() *Stopwatch {
	return timer.NewStopwatch(timeProvider.NewRealTimeProvider())
}

// NewTimer creates an idle timer on the process clock
func NewTimer(duration Time) (*Timer, error) {
	return timer.NewTimer(timeProvider.NewRealTimeProvider(), duration)
}

var (
	defaultOnce    sync.Once
	defaultLocales *Locales
	defaultWriter  *TimeWriter
	defaultErr     error
)

func defaults() (*Locales, *TimeWriter, error) {
	defaultOnce.Do(func() {
		defaultLocales, defaultErr = NewLocales(context.Background(), nil)
		if defaultErr == nil {
			defaultWriter = NewWriter(defaultLocales, Settings{})
		}
	})
	return defaultLocales, defaultWriter, defaultErr
}

// Write renders value with the shared writer
func Write(value any, opts WriteOptions) (string, error) {
	_, w, err := defaults()
	if err != nil {
		return "", err
	}
	return w.Write(value, opts)
}

// Countdown splits t over groups with the shared writer
func Countdown(t Time, settings Settings, groups ...Segment) (string, error) {
	_, w, err := defaults()
	if err != nil {
		return "", err
	}
	return w.Countdown(t, settings, groups...)
}

// SetLocale activates a locale of the shared registry and returns its
// canonical identifier
func SetLocale(identifier string) (string, error) {
	l, _, err := defaults()
	if err != nil {
		return "", err
	}
	return l.Set(identifier)
}

// Locale returns the active identifier of the shared registry
func Locale() string {
	l, _, err := defaults()
	if err != nil {
		return entity.DefaultLocaleIdentifier
	}
	return l.Get()
}

// AvailableLocales lists the identifiers of the shared registry
func AvailableLocales() []string {
	l, _, err := defaults()
	if err != nil {
		return []string{entity.DefaultLocaleIdentifier}
	}
	return l.ListAvailable()
}
