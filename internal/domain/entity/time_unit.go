package entity

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/timewriter/internal/domain/error"
)

// PluralFunc produces the plural form of a unit name for a given quantity.
// It receives both the native number being displayed and its exact value.
type PluralFunc func(quantity float64, value decimal.Decimal) string

// TimeUnit is a named, fixed nanosecond multiplier
type TimeUnit struct {
	Name            string          // Unique key, camelCase (e.g. "galacticYear")
	Factor          decimal.Decimal // Nanoseconds per one unit, always > 0
	Symbol          string          // Short form used when the writer is not verbose
	ReadableName    string          // Display name; derived from Name when empty
	CustomPlural    string          // Irregular plural form ("centuries")
	PluralFunc      PluralFunc      // Quantity-aware plural form, wins over CustomPlural
	PluralInvariant bool            // Unit name never takes a plural form
}

// TimeUnitRef is anything that identifies a time unit:
// a UnitName looked up in the database, or a *TimeUnit used as is.
type TimeUnitRef interface {
	ResolveTimeUnit() (*TimeUnit, error)
}

// UnitName names a unit in the database. Matching is case-insensitive and
// accepts the plural forms of the name.
type UnitName string

// ResolveTimeUnit looks the name up in the unit database
func (n UnitName) ResolveTimeUnit() (*TimeUnit, error) {
	return LookupTimeUnit(string(n))
}

// ResolveTimeUnit validates a caller-supplied unit and returns it unchanged
func (u *TimeUnit) ResolveTimeUnit() (*TimeUnit, error) {
	if u == nil {
		return nil, errs.NewTimeUnitError("<nil>", "missing unit")
	}
	if u.Factor.Sign() <= 0 {
		return nil, errs.NewTimeUnitError(u.Name, "factor must be positive")
	}
	return u, nil
}

// ResolveTimeUnit resolves ref, falling back to fallback when ref is nil
func ResolveTimeUnit(ref TimeUnitRef, fallback TimeUnitRef) (*TimeUnit, error) {
	if ref == nil {
		ref = fallback
	}
	if ref == nil {
		return nil, errs.NewTimeUnitError("<nil>", "missing unit")
	}
	return ref.ResolveTimeUnit()
}

// DisplayName returns the readable singular name of the unit
func (u *TimeUnit) DisplayName() string {
	if u.ReadableName != "" {
		return u.ReadableName
	}
	return SplitCamelCase(u.Name)
}

// PluralName returns the plural display name for the given quantity
func (u *TimeUnit) PluralName(quantity float64, value decimal.Decimal) string {
	switch {
	case u.PluralInvariant:
		return u.DisplayName()
	case u.PluralFunc != nil:
		return u.PluralFunc(quantity, value)
	case u.CustomPlural != "":
		return u.CustomPlural
	default:
		return u.DisplayName() + "s"
	}
}

// String returns the canonical unit name
func (u *TimeUnit) String() string {
	return u.Name
}

// SplitCamelCase turns a camelCase key into space separated lower-case words,
// e.g. "galacticYear" becomes "galactic year".
func SplitCamelCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && !unicode.IsUpper(runes[i-1]) {
				b.WriteRune(' ')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
