package entity

import (
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/timewriter/internal/domain/error"
)

func TestNewTime(t *testing.T) {
	t.Run("Accepted values", func(t *testing.T) {
		testCases := []struct {
			name     string
			input    any
			expected string
		}{
			{"int", 10, "10"},
			{"negative int", -10, "10"},
			{"int64", int64(1) << 40, "1099511627776"},
			{"uint64", uint64(math.MaxUint64), "18446744073709551615"},
			{"float", 1.5, "1.5"},
			{"float32", float32(0.25), "0.25"},
			{"string", "12.5", "12.5"},
			{"exponent string", "1e3", "1000"},
			{"negative exponent string", "-2.5e-3", "0.0025"},
			{"underscored string", "1_000", "1000"},
			{"decimal", decimal.RequireFromString("3.14"), "3.14"},
			{"big int", big.NewInt(-42), "42"},
			{"big float", big.NewFloat(0.5), "0.5"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				tm, err := NewTime(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, tm.Big().String())
				assert.False(t, tm.IsApproximated())
			})
		}
	})

	t.Run("Special values", func(t *testing.T) {
		testCases := []struct {
			name  string
			input any
			nan   bool
		}{
			{"NaN float", math.NaN(), true},
			{"NaN string", "NaN", true},
			{"positive infinity", math.Inf(1), false},
			{"negative infinity", math.Inf(-1), false},
			{"Infinity string", "-Infinity", false},
			{"Inf string", "inf", false},
			{"infinity symbol", "∞", false},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				tm, err := NewTime(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.nan, tm.IsNaN())
				assert.Equal(t, !tc.nan, tm.IsInf())
			})
		}
	})

	t.Run("Rejected values", func(t *testing.T) {
		testCases := []struct {
			name  string
			input any
		}{
			{"nil", nil},
			{"non-numeric string", "ten"},
			{"empty string", ""},
			{"struct", struct{ A int }{1}},
			{"nil decimal pointer", (*decimal.Decimal)(nil)},
			{"slice", []int{1}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NewTime(tc.input)
				assert.ErrorIs(t, err, errs.ErrInvalidArgument)
			})
		}
	})

	t.Run("should copy a Time including its approximation flag", func(t *testing.T) {
		src := MustTime(7).Approximate()
		tm, err := NewTime(src)
		require.NoError(t, err)
		assert.True(t, tm.IsApproximated())
		assert.True(t, tm.Equal(src))
	})
}

func TestTimeFrom(t *testing.T) {
	t.Run("should multiply by the unit factor", func(t *testing.T) {
		tm, err := TimeFrom(1.1, Second)
		require.NoError(t, err)
		assert.True(t, tm.Big().Equal(decimal.NewFromInt(1_100_000_000)), tm.String())
	})

	t.Run("should keep sub-nanosecond precision", func(t *testing.T) {
		tm, err := TimeFrom(1, Attosecond)
		require.NoError(t, err)
		assert.True(t, tm.Big().Equal(decimal.New(1, -9)), tm.String())
	})

	t.Run("should ignore case and plural forms", func(t *testing.T) {
		a := MustTimeFrom(1, UnitName("Second"))
		b := MustTimeFrom(1, UnitName("SECONDS"))
		c := MustTimeFrom(1, UnitName("second"))
		assert.True(t, a.Equal(b))
		assert.True(t, b.Equal(c))
	})

	t.Run("should accept a custom unit", func(t *testing.T) {
		sprint := &TimeUnit{Name: "sprint", Factor: decimal.New(1, 3)}
		tm, err := TimeFrom(2, sprint)
		require.NoError(t, err)
		assert.Equal(t, "2000 ns", tm.String())
	})

	t.Run("should reject unknown units", func(t *testing.T) {
		_, err := TimeFrom(1, UnitName("lightyear"))
		assert.ErrorIs(t, err, errs.ErrInvalidTimeUnit)

		_, err = TimeFrom(1, &TimeUnit{Name: "broken"})
		assert.ErrorIs(t, err, errs.ErrInvalidTimeUnit)

		_, err = TimeFrom(1, nil)
		assert.ErrorIs(t, err, errs.ErrInvalidTimeUnit)
	})

	t.Run("should reject unparseable values", func(t *testing.T) {
		_, err := TimeFrom("soon", Second)
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	})
}

func TestTimeRoundTrip(t *testing.T) {
	values := []decimal.Decimal{
		decimal.NewFromInt(1),
		decimal.RequireFromString("1.5"),
		decimal.RequireFromString("1954"),
		decimal.RequireFromString("0.000123"),
	}

	for _, u := range TimeUnits() {
		for _, v := range values {
			t.Run(u.Name+"/"+v.String(), func(t *testing.T) {
				tm, err := TimeFrom(v, u)
				require.NoError(t, err)
				back, err := tm.ToBig(u)
				require.NoError(t, err)
				assert.True(t, back.Equal(v), "got %s", back)
			})
		}
	}
}

func TestTimeConversion(t *testing.T) {
	t.Run("should convert to a native number", func(t *testing.T) {
		f, err := MustTime(1_500_000_000).To(Second)
		require.NoError(t, err)
		assert.Equal(t, 1.5, f)

		f, err = MustTimeFrom(1, Day).To(Hour)
		require.NoError(t, err)
		assert.Equal(t, 24.0, f)
	})

	t.Run("should report NaN and Infinity as native values", func(t *testing.T) {
		f, err := NaN().To(Second)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(f))

		f, err = Infinite().To(Second)
		require.NoError(t, err)
		assert.True(t, math.IsInf(f, 1))
	})

	t.Run("should refuse a decimal form for special values", func(t *testing.T) {
		_, err := NaN().ToBig(Second)
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
		_, err = Infinite().ToBig(Second)
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	})

	t.Run("should fail on unknown units", func(t *testing.T) {
		_, err := MustTime(1).To(UnitName("parsec"))
		assert.ErrorIs(t, err, errs.ErrInvalidTimeUnit)
		_, err = MustTime(1).ToBig(UnitName("parsec"))
		assert.ErrorIs(t, err, errs.ErrInvalidTimeUnit)
	})

	t.Run("should keep extreme magnitudes exact", func(t *testing.T) {
		tm := MustTimeFrom(1, Quettasecond)
		planck, err := tm.ToBig(PlanckTime)
		require.NoError(t, err)
		assert.Equal(t, 73, adjustedExponent(planck))
		assert.True(t, planck.GreaterThan(decimal.RequireFromString("1.8548e73")))
	})
}

func TestTimeApproximate(t *testing.T) {
	tm := MustTime(42)
	approx := tm.Approximate()

	assert.False(t, tm.IsApproximated(), "original must not change")
	assert.True(t, approx.IsApproximated())
	assert.True(t, approx.Approximate().IsApproximated())
	assert.True(t, approx.Big().Equal(tm.Big()))
}

func TestTimeArithmetic(t *testing.T) {
	ten := MustTime(10)
	four := MustTime(4)

	t.Run("should add", func(t *testing.T) {
		assert.Equal(t, "14 ns", ten.Add(four).String())
	})

	t.Run("should subtract to an absolute value", func(t *testing.T) {
		assert.Equal(t, "6 ns", ten.Subtract(four).String())
		assert.Equal(t, "6 ns", four.Subtract(ten).String())
	})

	t.Run("should multiply", func(t *testing.T) {
		assert.Equal(t, "40 ns", ten.Multiply(four).String())
	})

	t.Run("should divide", func(t *testing.T) {
		assert.Equal(t, "2.5 ns", ten.Divide(four).String())
	})

	t.Run("should divide by zero into NaN", func(t *testing.T) {
		r, err := ten.DivideValue(0, nil)
		require.NoError(t, err)
		assert.True(t, r.IsNaN())
		assert.True(t, MustTime(0).Divide(MustTime(0)).IsNaN())
	})

	t.Run("should convert plain operands from the given unit", func(t *testing.T) {
		r, err := MustTimeFrom(1, Second).AddValue(500, Millisecond)
		require.NoError(t, err)
		assert.Equal(t, "1500000000 ns", r.String())

		r, err = ten.MultiplyValue("3", nil)
		require.NoError(t, err)
		assert.Equal(t, "30 ns", r.String())

		r, err = ten.SubtractValue(MustTime(3).Approximate(), Second)
		require.NoError(t, err)
		assert.Equal(t, "7 ns", r.String())
		assert.True(t, r.IsApproximated())
	})

	t.Run("should fail on bad operands", func(t *testing.T) {
		_, err := ten.AddValue("x", nil)
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
		_, err = ten.AddValue(1, UnitName("cubit"))
		assert.ErrorIs(t, err, errs.ErrInvalidTimeUnit)
	})

	t.Run("should propagate the approximation flag", func(t *testing.T) {
		assert.True(t, ten.Approximate().Add(four).IsApproximated())
		assert.True(t, ten.Divide(four.Approximate()).IsApproximated())
		assert.False(t, ten.Add(four).IsApproximated())
	})

	t.Run("should follow floating point rules for special values", func(t *testing.T) {
		inf := Infinite()
		nan := NaN()
		zero := MustTime(0)

		assert.True(t, nan.Add(ten).IsNaN())
		assert.True(t, ten.Multiply(nan).IsNaN())
		assert.True(t, inf.Add(ten).IsInf())
		assert.True(t, inf.Subtract(inf).IsNaN())
		assert.True(t, ten.Subtract(inf).IsInf())
		assert.True(t, inf.Multiply(zero).IsNaN())
		assert.True(t, inf.Multiply(ten).IsInf())
		assert.True(t, inf.Divide(inf).IsNaN())
		assert.True(t, inf.Divide(ten).IsInf())
		assert.True(t, inf.Divide(zero).IsNaN())
		assert.Equal(t, "0 ns", ten.Divide(inf).String())
	})

	t.Run("should keep forty significant digits on division", func(t *testing.T) {
		third := MustTime(1).Divide(MustTime(3))
		assert.Equal(t, "0."+strings.Repeat("3", 40)+" ns", third.String())
	})
}

func TestTimeComparison(t *testing.T) {
	assert.True(t, MustTime(5).Equal(MustTime(-5)))
	assert.True(t, MustTime(5).Equal(MustTime(5).Approximate()))
	assert.False(t, NaN().Equal(NaN()))
	assert.True(t, Infinite().Equal(Infinite()))

	assert.Equal(t, -1, MustTime(1).Cmp(MustTime(2)))
	assert.Equal(t, 0, MustTime(2).Cmp(MustTime(2)))
	assert.Equal(t, 1, Infinite().Cmp(MustTime(2)))
	assert.Equal(t, -1, Infinite().Cmp(NaN()))
	assert.Equal(t, 0, NaN().Cmp(NaN()))
}

func TestTimeString(t *testing.T) {
	assert.Equal(t, "10 ns", MustTime(10).String())
	assert.Equal(t, "NaN ns", NaN().String())
	assert.Equal(t, "Infinity ns", Infinite().String())
	assert.Equal(t, "0 ns", Time{}.String())
	assert.Equal(t, 10.0, MustTime(10).Float64())
}
