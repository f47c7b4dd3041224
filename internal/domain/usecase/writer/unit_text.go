package writer

import (
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/timewriter/internal/domain/entity"
)

var one = decimal.NewFromInt(1)

// unitText names unit for a quantity. Symbols win unless verbose and are
// never pluralized; quantities other than exactly one take the plural.
func unitText(unit *entity.TimeUnit, loc entity.LocaleSettings, rs entity.ResolvedSettings,
	quantity float64, value decimal.Decimal, plural bool) string {
	terms, overridden := loc.Terms(unit)

	if !rs.Verbose {
		if overridden && terms.Symbol != "" {
			return terms.Symbol
		}
		if unit.Symbol != "" {
			return unit.Symbol
		}
	}

	name := unit.DisplayName()
	if overridden && terms.ReadableName != "" {
		name = terms.ReadableName
	}

	pluralize := !unit.PluralInvariant
	if overridden && terms.Pluralize != nil {
		pluralize = *terms.Pluralize
	}
	if !plural || !pluralize {
		return name
	}

	switch {
	case overridden && terms.PluralFunc != nil:
		return terms.PluralFunc(quantity, value)
	case overridden && terms.CustomPlural != "":
		return terms.CustomPlural
	case overridden && terms.ReadableName != "":
		return name + "s"
	case unit.PluralFunc != nil:
		return unit.PluralFunc(quantity, value)
	case unit.CustomPlural != "":
		return unit.CustomPlural
	default:
		return name + "s"
	}
}

// needsPlural reports whether a shown quantity takes the plural form
func needsPlural(shown decimal.Decimal) bool {
	return !shown.Abs().Equal(one)
}
