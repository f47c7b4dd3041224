package error

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidArgument         = 4001
	CodeInvalidTimeUnit         = 4002
	CodeInvalidLocaleIdentifier = 4003
	CodeInvalidLocaleBundle     = 4004
	CodeInvalidTimerState       = 4005
	CodeInvalidRequest          = 4006

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidArgument is returned when a value cannot be interpreted as a number or a Time
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidTimeUnit is returned when a unit reference matches no known time unit
	ErrInvalidTimeUnit = errors.New("invalid time unit")

	// ErrInvalidLocaleIdentifier is returned when a locale identifier is malformed or unavailable
	ErrInvalidLocaleIdentifier = errors.New("invalid locale identifier")

	// ErrInvalidLocaleBundle is returned when a locale bundle cannot be decoded
	ErrInvalidLocaleBundle = errors.New("invalid locale bundle")

	// ErrInvalidTimerState is returned when a stopwatch or timer is driven through an illegal transition
	ErrInvalidTimerState = errors.New("invalid timer state")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return CodeInvalidArgument
	case errors.Is(err, ErrInvalidTimeUnit):
		return CodeInvalidTimeUnit
	case errors.Is(err, ErrInvalidLocaleIdentifier):
		return CodeInvalidLocaleIdentifier
	case errors.Is(err, ErrInvalidLocaleBundle):
		return CodeInvalidLocaleBundle
	case errors.Is(err, ErrInvalidTimerState):
		return CodeInvalidTimerState
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// IsClientError reports whether err is caused by caller input rather than by the server
func IsClientError(err error) bool {
	code := ErrorCode(err)
	return code >= 4000 && code < 5000
}

// ArgumentError describes a value that could not be interpreted as a number or a Time
type ArgumentError struct {
	Value  any
	Reason string
}

// Error implements the error interface for ArgumentError
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %#v: %s", e.Value, e.Reason)
}

// Is checks if the target error is an ErrInvalidArgument
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// LogFields returns a map of fields for structured logging
func (e *ArgumentError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "invalid_argument",
		"value":      fmt.Sprintf("%v", e.Value),
		"reason":     e.Reason,
		"error_code": CodeInvalidArgument,
	}
}

// NewArgumentError creates a detailed invalid argument error
func NewArgumentError(value any, reason string) error {
	return &ArgumentError{Value: value, Reason: reason}
}

// TimeUnitError describes a unit reference that could not be resolved
type TimeUnitError struct {
	Unit   string
	Reason string
}

// Error implements the error interface for TimeUnitError
func (e *TimeUnitError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid time unit %q", e.Unit)
	}
	return fmt.Sprintf("invalid time unit %q: %s", e.Unit, e.Reason)
}

// Is checks if the target error is an ErrInvalidTimeUnit
func (e *TimeUnitError) Is(target error) bool {
	return target == ErrInvalidTimeUnit
}

// LogFields returns a map of fields for structured logging
func (e *TimeUnitError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "invalid_time_unit",
		"unit":       e.Unit,
		"reason":     e.Reason,
		"error_code": CodeInvalidTimeUnit,
	}
}

// NewTimeUnitError creates a detailed invalid time unit error
func NewTimeUnitError(unit, reason string) error {
	return &TimeUnitError{Unit: unit, Reason: reason}
}

// LocaleError describes a locale identifier that is malformed or not available
type LocaleError struct {
	Identifier string
	Available  []string
}

// Error implements the error interface for LocaleError
func (e *LocaleError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("invalid locale identifier %q", e.Identifier)
	}
	return fmt.Sprintf("invalid locale identifier %q (available: %s)",
		e.Identifier, strings.Join(e.Available, ", "))
}

// Is checks if the target error is an ErrInvalidLocaleIdentifier
func (e *LocaleError) Is(target error) bool {
	return target == ErrInvalidLocaleIdentifier
}

// LogFields returns a map of fields for structured logging
func (e *LocaleError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "invalid_locale_identifier",
		"identifier": e.Identifier,
		"available":  e.Available,
		"error_code": CodeInvalidLocaleIdentifier,
	}
}

// NewLocaleError creates a detailed invalid locale identifier error
func NewLocaleError(identifier string, available []string) error {
	return &LocaleError{Identifier: identifier, Available: available}
}

// IsInvalidArgumentError checks if the error is an invalid argument error
func IsInvalidArgumentError(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsInvalidTimeUnitError checks if the error is an invalid time unit error
func IsInvalidTimeUnitError(err error) bool {
	return errors.Is(err, ErrInvalidTimeUnit)
}

// IsInvalidLocaleError checks if the error is an invalid locale identifier error
func IsInvalidLocaleError(err error) bool {
	return errors.Is(err, ErrInvalidLocaleIdentifier)
}
