package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/timewriter/internal/domain/error"
)

func TestLookupTimeUnit(t *testing.T) {
	t.Run("Accepted spellings", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected UnitName
		}{
			{"second", Second},
			{"Second", Second},
			{"SECONDS", Second},
			{" minutes ", Minute},
			{"galacticYear", GalacticYear},
			{"galacticyears", GalacticYear},
			{"centuries", Century},
			{"Millennia", Millennium},
			{"jiffies", Jiffy},
			{"halakim", Helek},
			{"lustra", Lustrum},
			{"megaanna", Megaannum},
			{"atomic units of time", AtomicUnitOfTime},
			{"ke", Ke},
			{"planckTimes", PlanckTime},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				u, err := LookupTimeUnit(tc.input)
				require.NoError(t, err)
				assert.Equal(t, string(tc.expected), u.Name)
			})
		}
	})

	t.Run("Rejected spellings", func(t *testing.T) {
		for _, input := range []string{"", "s", "lightyear", "secondss", "galactic year"} {
			t.Run(input, func(t *testing.T) {
				_, err := LookupTimeUnit(input)
				assert.ErrorIs(t, err, errs.ErrInvalidTimeUnit)

				var unitErr *errs.TimeUnitError
				require.ErrorAs(t, err, &unitErr)
				assert.Equal(t, input, unitErr.Unit)
			})
		}
	})

	t.Run("should return the shared record", func(t *testing.T) {
		a, _ := LookupTimeUnit("hour")
		b, _ := LookupTimeUnit("HOURS")
		assert.Same(t, a, b)
		assert.Same(t, a, MustLookupTimeUnit(Hour))
	})

	t.Run("should panic on unknown compile-time names", func(t *testing.T) {
		assert.Panics(t, func() { MustLookupTimeUnit("fortnite") })
	})
}

func TestUnitFactors(t *testing.T) {
	testCases := []struct {
		unit     UnitName
		expected string
	}{
		{Nanosecond, "1"},
		{Attosecond, "0.000000001"},
		{PlanckTime, "0.00000000000000000000000000000000005391247"},
		{Second, "1000000000"},
		{Minute, "60000000000"},
		{Hour, "3600000000000"},
		{Day, "86400000000000"},
		{Week, "604800000000000"},
		{Month, "2628000000000000"},
		{Year, "31556952000000000"},
		{JulianYear, "31557600000000000"},
		{Century, "3155695200000000000"},
		{GalacticYear, "7258098960000000000000000"},
		{Quettasecond, "1000000000000000000000000000000000000000"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.unit), func(t *testing.T) {
			u := MustLookupTimeUnit(tc.unit)
			assert.True(t, u.Factor.Equal(decimal.RequireFromString(tc.expected)),
				"factor of %s is %s", tc.unit, u.Factor)
		})
	}

	t.Run("should round non-terminating factors", func(t *testing.T) {
		helek := MustLookupTimeUnit(Helek)
		assert.Equal(t, "3333333333.333333333333333333333333333333", helek.Factor.String())
	})
}

func TestTimeUnits(t *testing.T) {
	units := TimeUnits()

	assert.GreaterOrEqual(t, len(units), 75)
	assert.Equal(t, string(PlanckTime), units[0].Name)
	assert.Equal(t, string(Quettasecond), units[len(units)-1].Name)
	for i := 1; i < len(units); i++ {
		assert.False(t, units[i].Factor.LessThan(units[i-1].Factor),
			"%s sorts before %s", units[i-1].Name, units[i].Name)
	}
	for _, u := range units {
		assert.True(t, u.Factor.IsPositive(), u.Name)
	}
}

func TestTimeUnitNames(t *testing.T) {
	t.Run("should derive readable names from keys", func(t *testing.T) {
		assert.Equal(t, "galactic year", SplitCamelCase("galacticYear"))
		assert.Equal(t, "atomic unit of time", SplitCamelCase("atomicUnitOfTime"))
		assert.Equal(t, "second", SplitCamelCase("second"))
		assert.Equal(t, "galactic year", MustLookupTimeUnit(GalacticYear).DisplayName())
		assert.Equal(t, "Planck time", MustLookupTimeUnit(PlanckTime).DisplayName())
	})

	t.Run("should pluralize", func(t *testing.T) {
		two := decimal.NewFromInt(2)
		assert.Equal(t, "galactic years", MustLookupTimeUnit(GalacticYear).PluralName(2, two))
		assert.Equal(t, "centuries", MustLookupTimeUnit(Century).PluralName(2, two))
		assert.Equal(t, "ke", MustLookupTimeUnit(Ke).PluralName(2, two))

		custom := &TimeUnit{Name: "blink", Factor: decimal.NewFromInt(1),
			PluralFunc: func(q float64, _ decimal.Decimal) string {
				if q > 10 {
					return "many blinks"
				}
				return "blinks"
			}}
		assert.Equal(t, "many blinks", custom.PluralName(11, decimal.NewFromInt(11)))
		assert.Equal(t, "blinks", custom.PluralName(3, decimal.NewFromInt(3)))
	})

	t.Run("should validate custom units", func(t *testing.T) {
		var nilUnit *TimeUnit
		_, err := nilUnit.ResolveTimeUnit()
		assert.ErrorIs(t, err, errs.ErrInvalidTimeUnit)

		_, err = (&TimeUnit{Name: "negative", Factor: decimal.NewFromInt(-1)}).ResolveTimeUnit()
		assert.ErrorIs(t, err, errs.ErrInvalidTimeUnit)

		u, err := ResolveTimeUnit(nil, Second)
		require.NoError(t, err)
		assert.Equal(t, "second", u.String())
	})
}
