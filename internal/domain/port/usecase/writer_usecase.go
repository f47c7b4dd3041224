package usecase

import "github.com/amirhossein-jamali/timewriter/internal/domain/entity"

// WriteOptions tells the writer how to read and where to render a value.
// From is the unit a raw number is expressed in; To is the unit to render.
// Nil units fall back to the effective default unit.
type WriteOptions struct {
	From     entity.TimeUnitRef
	To       entity.TimeUnitRef
	Settings entity.Settings
}

// TimeWriterUseCase renders time values as text
type TimeWriterUseCase interface {
	// Write renders a single value. Value is a Time or anything NewTime accepts.
	Write(value any, opts WriteOptions) (string, error)

	// Countdown splits t over the units of groups and renders every segment
	Countdown(t entity.Time, settings entity.Settings, groups ...entity.Segment) (string, error)
}
