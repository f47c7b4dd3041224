package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/timewriter/internal/domain/error"
)

// RoundingMode selects how numbers are rounded to the requested digits
type RoundingMode string

// Rounding modes
const (
	RoundHalfUp   RoundingMode = "round" // half away from zero
	RoundHalfEven RoundingMode = "halfEven"
	RoundFloor    RoundingMode = "floor"
	RoundCeil     RoundingMode = "ceil"
	RoundTrunc    RoundingMode = "trunc"
)

// NumericNotation selects how the number part of a time is written
type NumericNotation string

// Numeric notations
const (
	NotationDecimal        NumericNotation = "decimal"
	NotationScientific     NumericNotation = "scientific"
	NotationRoman          NumericNotation = "roman"
	NotationRomanFractions NumericNotation = "roman-fractions"
)

// NumericWriter renders a number itself, replacing the built-in notations.
// It receives the native number and the exact decimal it was derived from.
type NumericWriter func(value float64, exact decimal.Decimal) string

// maxDigits bounds significantDigits and decimalPlaces
const maxDigits = 100

// Settings is a sparse writer configuration. A nil field defers to the next
// layer of the cascade; false, 0 and "" are real values.
type Settings struct {
	DecimalSeparator   *string          `json:"decimalSeparator,omitempty" yaml:"decimalSeparator,omitempty" mapstructure:"decimalSeparator"`
	ThousandsSeparator *string          `json:"thousandsSeparator,omitempty" yaml:"thousandsSeparator,omitempty" mapstructure:"thousandsSeparator"`
	DefaultTimeUnit    *UnitName        `json:"defaultTimeUnit,omitempty" yaml:"defaultTimeUnit,omitempty" mapstructure:"defaultTimeUnit"`
	RoundingMode       *RoundingMode    `json:"roundingMode,omitempty" yaml:"roundingMode,omitempty" mapstructure:"roundingMode"`
	NumericNotation    *NumericNotation `json:"numericNotation,omitempty" yaml:"numericNotation,omitempty" mapstructure:"numericNotation"`
	NumericWriter      NumericWriter    `json:"-" yaml:"-" mapstructure:"-"`
	SegmentSeparator   *string          `json:"segmentSeparator,omitempty" yaml:"segmentSeparator,omitempty" mapstructure:"segmentSeparator"`
	SymbolApproximated *string          `json:"symbolApproximated,omitempty" yaml:"symbolApproximated,omitempty" mapstructure:"symbolApproximated"`
	TermApproximated   *string          `json:"termApproximated,omitempty" yaml:"termApproximated,omitempty" mapstructure:"termApproximated"`
	SymbolInfinite     *string          `json:"symbolInfinite,omitempty" yaml:"symbolInfinite,omitempty" mapstructure:"symbolInfinite"`
	TermInfinite       *string          `json:"termInfinite,omitempty" yaml:"termInfinite,omitempty" mapstructure:"termInfinite"`
	SymbolNaN          *string          `json:"symbolNaN,omitempty" yaml:"symbolNaN,omitempty" mapstructure:"symbolNaN"`
	TermNaN            *string          `json:"termNaN,omitempty" yaml:"termNaN,omitempty" mapstructure:"termNaN"`
	Verbose            *bool            `json:"verbose,omitempty" yaml:"verbose,omitempty" mapstructure:"verbose"`
	TimeUnitSeparator  *string          `json:"timeUnitSeparator,omitempty" yaml:"timeUnitSeparator,omitempty" mapstructure:"timeUnitSeparator"`
	SignificantDigits  *int             `json:"significantDigits,omitempty" yaml:"significantDigits,omitempty" mapstructure:"significantDigits"`
	DecimalPlaces      *int             `json:"decimalPlaces,omitempty" yaml:"decimalPlaces,omitempty" mapstructure:"decimalPlaces"`
	HideZeroSegments   *bool            `json:"hideZeroSegments,omitempty" yaml:"hideZeroSegments,omitempty" mapstructure:"hideZeroSegments"`
	HideTimeUnit       *bool            `json:"hideTimeUnit,omitempty" yaml:"hideTimeUnit,omitempty" mapstructure:"hideTimeUnit"`
}

// Ptr returns a pointer to v, for filling Settings literals
func Ptr[T any](v T) *T {
	return &v
}

func or[T any](high, low *T) *T {
	if high != nil {
		return high
	}
	return low
}

// Or fills every field that s leaves unset from lower
func (s Settings) Or(lower Settings) Settings {
	writer := s.NumericWriter
	if writer == nil {
		writer = lower.NumericWriter
	}
	return Settings{
		DecimalSeparator:   or(s.DecimalSeparator, lower.DecimalSeparator),
		ThousandsSeparator: or(s.ThousandsSeparator, lower.ThousandsSeparator),
		DefaultTimeUnit:    or(s.DefaultTimeUnit, lower.DefaultTimeUnit),
		RoundingMode:       or(s.RoundingMode, lower.RoundingMode),
		NumericNotation:    or(s.NumericNotation, lower.NumericNotation),
		NumericWriter:      writer,
		SegmentSeparator:   or(s.SegmentSeparator, lower.SegmentSeparator),
		SymbolApproximated: or(s.SymbolApproximated, lower.SymbolApproximated),
		TermApproximated:   or(s.TermApproximated, lower.TermApproximated),
		SymbolInfinite:     or(s.SymbolInfinite, lower.SymbolInfinite),
		TermInfinite:       or(s.TermInfinite, lower.TermInfinite),
		SymbolNaN:          or(s.SymbolNaN, lower.SymbolNaN),
		TermNaN:            or(s.TermNaN, lower.TermNaN),
		Verbose:            or(s.Verbose, lower.Verbose),
		TimeUnitSeparator:  or(s.TimeUnitSeparator, lower.TimeUnitSeparator),
		SignificantDigits:  or(s.SignificantDigits, lower.SignificantDigits),
		DecimalPlaces:      or(s.DecimalPlaces, lower.DecimalPlaces),
		HideZeroSegments:   or(s.HideZeroSegments, lower.HideZeroSegments),
		HideTimeUnit:       or(s.HideTimeUnit, lower.HideTimeUnit),
	}
}

// MergeSettings resolves layers ordered from highest to lowest precedence
func MergeSettings(layers ...Settings) Settings {
	var merged Settings
	for _, layer := range layers {
		merged = merged.Or(layer)
	}
	return merged
}

// DefaultSettings returns the library defaults, the lowest layer of the cascade
func DefaultSettings() Settings {
	return Settings{
		DecimalSeparator:   Ptr("."),
		ThousandsSeparator: Ptr(""),
		DefaultTimeUnit:    Ptr(Nanosecond),
		RoundingMode:       Ptr(RoundHalfUp),
		NumericNotation:    Ptr(NotationDecimal),
		SegmentSeparator:   Ptr(", "),
		SymbolApproximated: Ptr("≈"),
		TermApproximated:   Ptr("approximately"),
		SymbolInfinite:     Ptr("∞"),
		TermInfinite:       Ptr("infinite"),
		SymbolNaN:          Ptr("NaN"),
		TermNaN:            Ptr("not a number"),
		Verbose:            Ptr(false),
		TimeUnitSeparator:  Ptr(" "),
		HideZeroSegments:   Ptr(true),
		HideTimeUnit:       Ptr(false),
	}
}

// Validate checks the enumerated and numeric fields that are set
func (s Settings) Validate() error {
	if s.RoundingMode != nil {
		switch *s.RoundingMode {
		case RoundHalfUp, RoundHalfEven, RoundFloor, RoundCeil, RoundTrunc:
		default:
			return errs.NewArgumentError(string(*s.RoundingMode), "unknown rounding mode")
		}
	}
	if s.NumericNotation != nil {
		switch *s.NumericNotation {
		case NotationDecimal, NotationScientific, NotationRoman, NotationRomanFractions:
		default:
			return errs.NewArgumentError(string(*s.NumericNotation), "unknown numeric notation")
		}
	}
	if s.SignificantDigits != nil && (*s.SignificantDigits < 1 || *s.SignificantDigits > maxDigits) {
		return errs.NewArgumentError(*s.SignificantDigits, fmt.Sprintf("significant digits must be within 1..%d", maxDigits))
	}
	if s.DecimalPlaces != nil && (*s.DecimalPlaces < 0 || *s.DecimalPlaces > maxDigits) {
		return errs.NewArgumentError(*s.DecimalPlaces, fmt.Sprintf("decimal places must be within 0..%d", maxDigits))
	}
	if s.DefaultTimeUnit != nil {
		if _, err := LookupTimeUnit(string(*s.DefaultTimeUnit)); err != nil {
			return err
		}
	}
	return nil
}

// ResolvedSettings is a fully populated writer configuration
type ResolvedSettings struct {
	DecimalSeparator   string
	ThousandsSeparator string
	DefaultTimeUnit    UnitName
	RoundingMode       RoundingMode
	NumericNotation    NumericNotation
	NumericWriter      NumericWriter
	SegmentSeparator   string
	SymbolApproximated string
	TermApproximated   string
	SymbolInfinite     string
	TermInfinite       string
	SymbolNaN          string
	TermNaN            string
	Verbose            bool
	TimeUnitSeparator  string
	SignificantDigits  *int // nil keeps every digit of the native number
	DecimalPlaces      *int // nil keeps every digit of the native number
	HideZeroSegments   bool
	HideTimeUnit       bool
}

// Resolve fills the gaps of s with the library defaults
func (s Settings) Resolve() ResolvedSettings {
	full := s.Or(DefaultSettings())
	return ResolvedSettings{
		DecimalSeparator:   *full.DecimalSeparator,
		ThousandsSeparator: *full.ThousandsSeparator,
		DefaultTimeUnit:    *full.DefaultTimeUnit,
		RoundingMode:       *full.RoundingMode,
		NumericNotation:    *full.NumericNotation,
		NumericWriter:      full.NumericWriter,
		SegmentSeparator:   *full.SegmentSeparator,
		SymbolApproximated: *full.SymbolApproximated,
		TermApproximated:   *full.TermApproximated,
		SymbolInfinite:     *full.SymbolInfinite,
		TermInfinite:       *full.TermInfinite,
		SymbolNaN:          *full.SymbolNaN,
		TermNaN:            *full.TermNaN,
		Verbose:            *full.Verbose,
		TimeUnitSeparator:  *full.TimeUnitSeparator,
		SignificantDigits:  full.SignificantDigits,
		DecimalPlaces:      full.DecimalPlaces,
		HideZeroSegments:   *full.HideZeroSegments,
		HideTimeUnit:       *full.HideTimeUnit,
	}
}
