package writer

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/timewriter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timewriter/internal/domain/error"
	"github.com/amirhossein-jamali/timewriter/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timewriter/internal/domain/usecase/locale"
	"github.com/amirhossein-jamali/timewriter/mocks/port/core"
)

func quietLogger() *core.MockLogger {
	l := new(core.MockLogger)
	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		l.On(level, mock.Anything, mock.Anything).Maybe().Return()
	}
	return l
}

func newWriter() *TimeWriter {
	return NewTimeWriter(nil, quietLogger(), entity.Settings{})
}

func brazilian() entity.LocaleSettings {
	return entity.LocaleSettings{
		Identifier: "pt-br",
		TimeUnits: map[string]entity.UnitTerms{
			"month": {ReadableName: "mês", CustomPlural: "meses"},
			"hour":  {ReadableName: "hora", Symbol: "hr"},
		},
		WriterOptions: entity.Settings{
			DecimalSeparator:   entity.Ptr(","),
			ThousandsSeparator: entity.Ptr("."),
		},
	}
}

func TestTimeWriter_Write(t *testing.T) {
	t.Run("Reference fixtures", func(t *testing.T) {
		w := newWriter()

		out, err := w.Write(entity.MustTime(10), usecase.WriteOptions{})
		require.NoError(t, err)
		assert.Equal(t, "10 ns", out)

		out, err = w.Write(entity.MustTime(10), usecase.WriteOptions{From: entity.Second})
		require.NoError(t, err)
		assert.Equal(t, "0.00000001 s", out)

		out, err = w.Write(1954, usecase.WriteOptions{
			From:     entity.Year,
			To:       entity.GalacticYear,
			Settings: entity.Settings{NumericNotation: entity.Ptr(entity.NotationScientific)},
		})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "≈8.49565217391304"), out)
		assert.True(t, strings.HasSuffix(out, "e-6 galactic years"), out)
	})

	t.Run("Plain values", func(t *testing.T) {
		testCases := []struct {
			name     string
			value    any
			opts     usecase.WriteOptions
			expected string
		}{
			{"raw nanoseconds", 42, usecase.WriteOptions{}, "42 ns"},
			{"converted", 1.5, usecase.WriteOptions{From: entity.Hour, To: entity.Minute}, "90 min"},
			{"string value", "1e3", usecase.WriteOptions{From: entity.Millisecond, To: entity.Second}, "1 s"},
			{"unit without symbol", 2, usecase.WriteOptions{From: entity.GalacticYear}, "2 galactic years"},
			{"singular without symbol", 1, usecase.WriteOptions{From: entity.GalacticYear}, "1 galactic year"},
			{"verbose singular", 1, usecase.WriteOptions{From: entity.Hour, Settings: entity.Settings{Verbose: entity.Ptr(true)}}, "1 hour"},
			{"verbose plural", 2, usecase.WriteOptions{From: entity.Hour, Settings: entity.Settings{Verbose: entity.Ptr(true)}}, "2 hours"},
			{"verbose fraction", 0.5, usecase.WriteOptions{From: entity.Hour, Settings: entity.Settings{Verbose: entity.Ptr(true)}}, "0.5 hours"},
			{"custom plural", 2, usecase.WriteOptions{From: entity.Century, Settings: entity.Settings{Verbose: entity.Ptr(true)}}, "2 centuries"},
			{"invariant plural", 2, usecase.WriteOptions{From: entity.Ke, Settings: entity.Settings{Verbose: entity.Ptr(true)}}, "2 ke"},
			{"readable name", 3, usecase.WriteOptions{From: entity.PlanckTime, Settings: entity.Settings{Verbose: entity.Ptr(true)}}, "3 Planck times"},
			{"hidden unit", 7, usecase.WriteOptions{Settings: entity.Settings{HideTimeUnit: entity.Ptr(true)}}, "7"},
			{"unit separator", 7, usecase.WriteOptions{Settings: entity.Settings{TimeUnitSeparator: entity.Ptr("")}}, "7ns"},
			{"default unit", 5, usecase.WriteOptions{Settings: entity.Settings{DefaultTimeUnit: entity.Ptr(entity.Second)}}, "5 s"},
			{"custom unit", 3, usecase.WriteOptions{From: &entity.TimeUnit{Name: "sprint", Factor: decimal.New(1, 9)}, Settings: entity.Settings{Verbose: entity.Ptr(true)}}, "3 sprints"},
			{"pointer time", ptr(entity.MustTime(3)), usecase.WriteOptions{}, "3 ns"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				out, err := newWriter().Write(tc.value, tc.opts)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, out)
			})
		}
	})

	t.Run("Number formatting", func(t *testing.T) {
		sec := func(s entity.Settings) usecase.WriteOptions {
			return usecase.WriteOptions{From: entity.Second, Settings: s}
		}

		testCases := []struct {
			name     string
			value    any
			opts     usecase.WriteOptions
			expected string
		}{
			{"decimal places pad", 1.5, sec(entity.Settings{DecimalPlaces: entity.Ptr(3)}), "1.500 s"},
			{"significant digits do not pad", 1.5, sec(entity.Settings{SignificantDigits: entity.Ptr(5)}), "1.5 s"},
			{"significant digits win", 1.23456, sec(entity.Settings{SignificantDigits: entity.Ptr(2), DecimalPlaces: entity.Ptr(4)}), "≈1.2 s"},
			{"significant digits on integers", 123456, sec(entity.Settings{SignificantDigits: entity.Ptr(2)}), "≈120000 s"},
			{"thousands separator", 1234567.891, sec(entity.Settings{ThousandsSeparator: entity.Ptr(","), DecimalPlaces: entity.Ptr(2)}), "≈1,234,567.89 s"},
			{"decimal separator", 2.25, sec(entity.Settings{DecimalSeparator: entity.Ptr(",")}), "2,25 s"},
			{"verbose approximation", 1, usecase.WriteOptions{From: entity.Day, To: entity.Week, Settings: entity.Settings{Verbose: entity.Ptr(true), SignificantDigits: entity.Ptr(3)}}, "approximately 0.143 weeks"},
			{"scientific", 123456, usecase.WriteOptions{Settings: entity.Settings{NumericNotation: entity.Ptr(entity.NotationScientific)}}, "1.23456e+5 ns"},
			{"scientific places", 123456, usecase.WriteOptions{Settings: entity.Settings{NumericNotation: entity.Ptr(entity.NotationScientific), DecimalPlaces: entity.Ptr(2)}}, "≈1.23e+5 ns"},
			{"scientific carry", 9.99, usecase.WriteOptions{Settings: entity.Settings{NumericNotation: entity.Ptr(entity.NotationScientific), SignificantDigits: entity.Ptr(2)}}, "≈1e+1 ns"},
			{"scientific zero", 0, usecase.WriteOptions{Settings: entity.Settings{NumericNotation: entity.Ptr(entity.NotationScientific)}}, "0e+0 ns"},
			{"scientific separator", 0.0025, usecase.WriteOptions{Settings: entity.Settings{NumericNotation: entity.Ptr(entity.NotationScientific), DecimalSeparator: entity.Ptr(",")}}, "2,5e-3 ns"},
			{"redundant nines", 2.9999999, sec(entity.Settings{}), "≈3 s"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				out, err := newWriter().Write(tc.value, tc.opts)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, out)
			})
		}
	})

	t.Run("Rounding modes", func(t *testing.T) {
		testCases := []struct {
			mode     entity.RoundingMode
			expected string
		}{
			{entity.RoundHalfUp, "≈3"},
			{entity.RoundHalfEven, "≈2"},
			{entity.RoundFloor, "≈2"},
			{entity.RoundCeil, "≈3"},
			{entity.RoundTrunc, "≈2"},
		}

		for _, tc := range testCases {
			t.Run(string(tc.mode), func(t *testing.T) {
				out, err := newWriter().Write(2.5, usecase.WriteOptions{Settings: entity.Settings{
					RoundingMode:  entity.Ptr(tc.mode),
					DecimalPlaces: entity.Ptr(0),
					HideTimeUnit:  entity.Ptr(true),
				}})
				require.NoError(t, err)
				assert.Equal(t, tc.expected, out)
			})
		}
	})

	t.Run("Roman notation", func(t *testing.T) {
		roman := func(n entity.NumericNotation) usecase.WriteOptions {
			return usecase.WriteOptions{Settings: entity.Settings{NumericNotation: entity.Ptr(n), HideTimeUnit: entity.Ptr(true)}}
		}

		testCases := []struct {
			name     string
			value    any
			opts     usecase.WriteOptions
			expected string
		}{
			{"integer", 1954, roman(entity.NotationRoman), "MCMLIV"},
			{"zero", 0, roman(entity.NotationRoman), "nulla"},
			{"fraction dropped", 1.5, roman(entity.NotationRoman), "≈I"},
			{"repeated thousands", 4001, roman(entity.NotationRoman), "MMMMI"},
			{"largest numeral", 1e9, roman(entity.NotationRoman), strings.Repeat("M", 1000000)},
			{"beyond numerals", 2e9, roman(entity.NotationRoman), "2000000000"},
			{"half", 1.5, roman(entity.NotationRomanFractions), "IS"},
			{"fraction only", 0.5, roman(entity.NotationRomanFractions), "S"},
			{"quarter", 1954.25, roman(entity.NotationRomanFractions), "MCMLIV···"},
			{"whole", 2, roman(entity.NotationRomanFractions), "II"},
			{"nothing", 0, roman(entity.NotationRomanFractions), "nulla"},
			{"nearest glyph", 0.3, roman(entity.NotationRomanFractions), "≈····"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				out, err := newWriter().Write(tc.value, tc.opts)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, out)
			})
		}

		out, err := newWriter().Write(1954, usecase.WriteOptions{Settings: entity.Settings{NumericNotation: entity.Ptr(entity.NotationRoman)}})
		require.NoError(t, err)
		assert.Equal(t, "MCMLIV ns", out)
	})

	t.Run("Special values", func(t *testing.T) {
		verbose := entity.Settings{Verbose: entity.Ptr(true)}

		testCases := []struct {
			name     string
			value    any
			opts     usecase.WriteOptions
			expected string
		}{
			{"NaN", entity.NaN(), usecase.WriteOptions{}, "NaN ns"},
			{"NaN verbose", entity.NaN(), usecase.WriteOptions{Settings: verbose}, "not a number nanosecond"},
			{"infinity", entity.Infinite(), usecase.WriteOptions{}, "∞ ns"},
			{"infinity verbose", entity.Infinite(), usecase.WriteOptions{Settings: verbose}, "infinite nanoseconds"},
			{"approximated infinity", entity.Infinite().Approximate(), usecase.WriteOptions{}, "≈∞ ns"},
			{"NaN from string", "NaN", usecase.WriteOptions{From: entity.Second}, "NaN s"},
			{"division by zero", entity.MustTime(10).Divide(entity.MustTime(0)), usecase.WriteOptions{Settings: entity.Settings{HideTimeUnit: entity.Ptr(true)}}, "NaN"},
			{"custom terms", entity.Infinite(), usecase.WriteOptions{Settings: entity.Settings{SymbolInfinite: entity.Ptr("inf")}}, "inf ns"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				out, err := newWriter().Write(tc.value, tc.opts)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, out)
			})
		}
	})

	t.Run("should mark approximated times", func(t *testing.T) {
		w := newWriter()

		out, err := w.Write(entity.MustTime(5).Approximate(), usecase.WriteOptions{})
		require.NoError(t, err)
		assert.Equal(t, "≈5 ns", out)

		out, err = w.Write(entity.MustTime(5).Approximate(), usecase.WriteOptions{Settings: entity.Settings{
			Verbose:          entity.Ptr(true),
			TermApproximated: entity.Ptr("about"),
		}})
		require.NoError(t, err)
		assert.Equal(t, "about 5 nanoseconds", out)
	})

	t.Run("should hand numbers to a custom numeric writer", func(t *testing.T) {
		w := newWriter()
		w.Settings.NumericWriter = func(f float64, exact decimal.Decimal) string {
			return fmt.Sprintf("<%g|%s>", f, exact)
		}

		out, err := w.Write(1.5, usecase.WriteOptions{From: entity.Second})
		require.NoError(t, err)
		assert.Equal(t, "<1.5|1.5> s", out)

		out, err = w.Write(entity.NaN(), usecase.WriteOptions{})
		require.NoError(t, err)
		assert.Equal(t, "<NaN|0> ns", out)
	})

	t.Run("should hand NaN and infinity to a custom numeric writer", func(t *testing.T) {
		var got []float64
		var exacts []decimal.Decimal
		w := newWriter()
		w.Settings.NumericWriter = func(f float64, exact decimal.Decimal) string {
			got = append(got, f)
			exacts = append(exacts, exact)
			return "?"
		}

		out, err := w.Write(entity.NaN(), usecase.WriteOptions{})
		require.NoError(t, err)
		assert.Equal(t, "? ns", out)

		out, err = w.Write(entity.Infinite(), usecase.WriteOptions{Settings: entity.Settings{Verbose: entity.Ptr(true)}})
		require.NoError(t, err)
		assert.Equal(t, "? nanoseconds", out)

		out, err = w.Countdown(entity.Infinite(), entity.Settings{}, entity.Segment{entity.Hour})
		require.NoError(t, err)
		assert.Equal(t, "? h", out)

		require.Len(t, got, 3)
		assert.True(t, math.IsNaN(got[0]))
		assert.True(t, math.IsInf(got[1], 1))
		assert.True(t, math.IsInf(got[2], 1))
		for _, exact := range exacts {
			assert.True(t, exact.IsZero())
		}
	})

	t.Run("should fail on bad input", func(t *testing.T) {
		logger := new(core.MockLogger)
		logger.On("Warn", "Rejected time unit", mock.Anything).Return().Once()
		logger.On("Warn", "Rejected writer settings", mock.Anything).Return().Once()
		w := NewTimeWriter(nil, logger, entity.Settings{})

		_, err := w.Write(1, usecase.WriteOptions{From: entity.UnitName("cubit")})
		assert.ErrorIs(t, err, errs.ErrInvalidTimeUnit)

		_, err = w.Write(1, usecase.WriteOptions{Settings: entity.Settings{NumericNotation: entity.Ptr(entity.NumericNotation("binary"))}})
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)

		_, err = w.Write("abc", usecase.WriteOptions{})
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)

		logger.AssertExpectations(t)
	})
}

func TestTimeWriter_Cascade(t *testing.T) {
	loc := locale.Fixed(brazilian())

	t.Run("should apply locale wording and options", func(t *testing.T) {
		w := NewTimeWriter(loc, quietLogger(), entity.Settings{Verbose: entity.Ptr(true)})

		out, err := w.Write(1.5, usecase.WriteOptions{From: entity.Month})
		require.NoError(t, err)
		assert.Equal(t, "1,5 meses", out)

		out, err = w.Write(1, usecase.WriteOptions{From: entity.Month})
		require.NoError(t, err)
		assert.Equal(t, "1 mês", out)

		out, err = w.Write(2, usecase.WriteOptions{From: entity.Hour})
		require.NoError(t, err)
		assert.Equal(t, "2 horas", out)

		out, err = w.Write(1234, usecase.WriteOptions{From: entity.Day})
		require.NoError(t, err)
		assert.Equal(t, "1.234 days", out)
	})

	t.Run("should prefer locale symbols", func(t *testing.T) {
		w := NewTimeWriter(loc, quietLogger(), entity.Settings{})

		out, err := w.Write(2, usecase.WriteOptions{From: entity.Hour})
		require.NoError(t, err)
		assert.Equal(t, "2 hr", out)
	})

	t.Run("should let instance settings beat the locale and call settings beat both", func(t *testing.T) {
		w := NewTimeWriter(loc, quietLogger(), entity.Settings{DecimalSeparator: entity.Ptr(";")})

		out, err := w.Write(1.5, usecase.WriteOptions{From: entity.Second})
		require.NoError(t, err)
		assert.Equal(t, "1;5 s", out)

		out, err = w.Write(1.5, usecase.WriteOptions{From: entity.Second, Settings: entity.Settings{DecimalSeparator: entity.Ptr(".")}})
		require.NoError(t, err)
		assert.Equal(t, "1.5 s", out)

		w.Settings = entity.Settings{}
		out, err = w.Write(1.5, usecase.WriteOptions{From: entity.Second})
		require.NoError(t, err)
		assert.Equal(t, "1,5 s", out)
	})

	t.Run("should honour a locale plural switch", func(t *testing.T) {
		b := brazilian()
		b.TimeUnits["day"] = entity.UnitTerms{ReadableName: "dia", Pluralize: entity.Ptr(false)}
		w := NewTimeWriter(locale.Fixed(b), quietLogger(), entity.Settings{Verbose: entity.Ptr(true)})

		out, err := w.Write(3, usecase.WriteOptions{From: entity.Day})
		require.NoError(t, err)
		assert.Equal(t, "3 dia", out)
	})
}

func TestTimeWriter_Countdown(t *testing.T) {
	t.Run("should split into the common segments by default", func(t *testing.T) {
		out, err := newWriter().Countdown(entity.MustTimeFrom(1000, entity.Day), entity.Settings{})
		require.NoError(t, err)
		assert.Equal(t, "2 y, 8 m, 26 d, 4 h, 21 min, 36 s", out)
	})

	testCases := []struct {
		name     string
		time     entity.Time
		settings entity.Settings
		groups   []entity.Segment
		expected string
	}{
		{
			name:     "verbose",
			time:     entity.MustTimeFrom(90, entity.Minute),
			settings: entity.Settings{Verbose: entity.Ptr(true)},
			groups:   []entity.Segment{{entity.Hour, entity.Minute}},
			expected: "1 hour, 30 minutes",
		},
		{
			name:     "zero segments shown",
			time:     entity.MustTimeFrom(1, entity.Hour),
			settings: entity.Settings{HideZeroSegments: entity.Ptr(false)},
			groups:   []entity.Segment{{entity.Hour, entity.Minute, entity.Second}},
			expected: "1 h, 0 min, 0 s",
		},
		{
			name:     "everything hidden",
			time:     entity.MustTime(0),
			groups:   []entity.Segment{{entity.Hour, entity.Minute}},
			expected: "0 min",
		},
		{
			name:     "remainder on the last unit",
			time:     entity.MustTimeFrom(90.5, entity.Second),
			groups:   []entity.Segment{{entity.Minute, entity.Second}},
			expected: "1 min, 30.5 s",
		},
		{
			name:     "approximated once",
			time:     entity.MustTimeFrom(1000, entity.Day).Approximate(),
			expected: "≈2 y, 8 m, 26 d, 4 h, 21 min, 36 s",
		},
		{
			name:     "flattened and deduplicated",
			time:     entity.MustTimeFrom(90, entity.Minute),
			groups:   []entity.Segment{{entity.Hour}, {entity.UnitName("hours"), entity.Minute}},
			expected: "1 h, 30 min",
		},
		{
			name:     "custom separator",
			time:     entity.MustTimeFrom(90, entity.Minute),
			settings: entity.Settings{SegmentSeparator: entity.Ptr(" and ")},
			groups:   []entity.Segment{{entity.Hour, entity.Minute}},
			expected: "1 h and 30 min",
		},
		{
			name:     "sidereal preset",
			time:     entity.MustTimeFrom(1, entity.SiderealDay),
			groups:   []entity.Segment{entity.SegmentSidereal},
			expected: "1 sidereal day",
		},
		{
			name:     "NaN",
			time:     entity.NaN(),
			expected: "NaN y",
		},
		{
			name:     "infinity",
			time:     entity.Infinite(),
			settings: entity.Settings{Verbose: entity.Ptr(true)},
			expected: "infinite years",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := newWriter().Countdown(tc.time, tc.settings, tc.groups...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}

	t.Run("should fail on unknown units", func(t *testing.T) {
		_, err := newWriter().Countdown(entity.MustTime(1), entity.Settings{}, entity.Segment{entity.UnitName("cubit")})
		assert.ErrorIs(t, err, errs.ErrInvalidTimeUnit)
	})
}

func ptr[T any](v T) *T { return &v }
