package entity

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/timewriter/internal/domain/error"
)

// quotientDigits is the number of significant digits kept by every division
const quotientDigits = 40

type valueKind uint8

const (
	kindFinite valueKind = iota
	kindNaN
	kindInf
)

// Time is an immutable, non-negative quantity of nanoseconds.
// NaN and Infinity are valid values and propagate through arithmetic.
// The zero value is zero nanoseconds.
type Time struct {
	value        decimal.Decimal
	kind         valueKind
	approximated bool
}

// NaN returns a Time whose value is not a number
func NaN() Time { return Time{kind: kindNaN} }

// Infinite returns an infinitely long Time
func Infinite() Time { return Time{kind: kindInf} }

// NewTime builds a Time from a nanosecond amount. Accepted values are the
// integer and float types, numeric strings (exponent notation, "NaN",
// "Infinity"), decimal.Decimal, *big.Int, *big.Float, Time and fmt.Stringer.
// Negative amounts are stored as their absolute value.
func NewTime(value any) (Time, error) {
	switch v := value.(type) {
	case nil:
		return Time{}, errs.NewArgumentError(value, "missing value")
	case Time:
		return v, nil
	case *Time:
		if v == nil {
			return Time{}, errs.NewArgumentError(value, "missing value")
		}
		return *v, nil
	case decimal.Decimal:
		return finite(v), nil
	case *decimal.Decimal:
		if v == nil {
			return Time{}, errs.NewArgumentError(value, "missing value")
		}
		return finite(*v), nil
	case int:
		return finite(decimal.NewFromInt(int64(v))), nil
	case int8:
		return finite(decimal.NewFromInt(int64(v))), nil
	case int16:
		return finite(decimal.NewFromInt(int64(v))), nil
	case int32:
		return finite(decimal.NewFromInt32(v)), nil
	case int64:
		return finite(decimal.NewFromInt(v)), nil
	case uint:
		return fromUint(uint64(v)), nil
	case uint8:
		return fromUint(uint64(v)), nil
	case uint16:
		return fromUint(uint64(v)), nil
	case uint32:
		return fromUint(uint64(v)), nil
	case uint64:
		return fromUint(v), nil
	case float32:
		return fromFloat(float64(v), func() decimal.Decimal { return decimal.NewFromFloat32(v) }), nil
	case float64:
		return fromFloat(v, func() decimal.Decimal { return decimal.NewFromFloat(v) }), nil
	case *big.Int:
		if v == nil {
			return Time{}, errs.NewArgumentError(value, "missing value")
		}
		return finite(decimal.NewFromBigInt(v, 0)), nil
	case *big.Float:
		if v == nil {
			return Time{}, errs.NewArgumentError(value, "missing value")
		}
		if v.IsInf() {
			return Infinite(), nil
		}
		return parseTime(v.Text('g', -1))
	case string:
		return parseTime(v)
	case fmt.Stringer:
		return parseTime(v.String())
	default:
		return Time{}, errs.NewArgumentError(value, fmt.Sprintf("unsupported type %T", value))
	}
}

// MustTime is NewTime for values known to be valid
func MustTime(value any) Time {
	t, err := NewTime(value)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeFrom builds a Time from an amount expressed in unit
func TimeFrom(value any, unit TimeUnitRef) (Time, error) {
	u, err := ResolveTimeUnit(unit, nil)
	if err != nil {
		return Time{}, err
	}
	t, err := NewTime(value)
	if err != nil {
		return Time{}, err
	}
	return t.scale(u.Factor), nil
}

// MustTimeFrom is TimeFrom for values and units known to be valid
func MustTimeFrom(value any, unit TimeUnitRef) Time {
	t, err := TimeFrom(value, unit)
	if err != nil {
		panic(err)
	}
	return t
}

func finite(d decimal.Decimal) Time {
	return Time{value: d.Abs()}
}

func fromUint(v uint64) Time {
	return finite(decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0))
}

func fromFloat(f float64, exact func() decimal.Decimal) Time {
	switch {
	case math.IsNaN(f):
		return NaN()
	case math.IsInf(f, 0):
		return Infinite()
	default:
		return finite(exact())
	}
}

func parseTime(s string) (Time, error) {
	trimmed := strings.TrimSpace(s)
	switch strings.ToLower(strings.TrimLeft(trimmed, "+-")) {
	case "nan":
		return NaN(), nil
	case "inf", "infinity", "∞":
		return Infinite(), nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(trimmed, "_", ""))
	if err != nil {
		return Time{}, errs.NewArgumentError(s, "not a number")
	}
	return finite(d), nil
}

// IsNaN reports whether the value is not a number
func (t Time) IsNaN() bool { return t.kind == kindNaN }

// IsInf reports whether the value is infinite
func (t Time) IsInf() bool { return t.kind == kindInf }

// IsApproximated reports whether the value is flagged as not exact
func (t Time) IsApproximated() bool { return t.approximated }

// Approximate returns a copy flagged as approximated
func (t Time) Approximate() Time {
	t.approximated = true
	return t
}

// Big returns the exact nanosecond value. NaN and Infinity have no decimal
// form and report zero; check IsNaN and IsInf first.
func (t Time) Big() decimal.Decimal {
	if t.kind != kindFinite {
		return decimal.Zero
	}
	return t.value
}

// Float64 returns the nanosecond value as a native float
func (t Time) Float64() float64 {
	switch t.kind {
	case kindNaN:
		return math.NaN()
	case kindInf:
		return math.Inf(1)
	default:
		return t.value.InexactFloat64()
	}
}

// Equal reports whether both values are the same amount of time.
// NaN is never equal to anything; the approximation flag is ignored.
func (t Time) Equal(o Time) bool {
	if t.kind != o.kind || t.kind == kindNaN {
		return false
	}
	return t.kind == kindInf || t.value.Equal(o.value)
}

// Cmp compares two values: -1, 0 or +1. NaN sorts after everything else.
func (t Time) Cmp(o Time) int {
	rank := func(k valueKind) int {
		switch k {
		case kindInf:
			return 1
		case kindNaN:
			return 2
		default:
			return 0
		}
	}
	if rt, ro := rank(t.kind), rank(o.kind); rt != ro || rt != 0 {
		switch {
		case rt < ro:
			return -1
		case rt > ro:
			return 1
		default:
			return 0
		}
	}
	return t.value.Cmp(o.value)
}

// To converts the value to unit as a native float
func (t Time) To(unit TimeUnitRef) (float64, error) {
	u, err := ResolveTimeUnit(unit, nil)
	if err != nil {
		return 0, err
	}
	switch t.kind {
	case kindNaN:
		return math.NaN(), nil
	case kindInf:
		return math.Inf(1), nil
	}
	return divide(t.value, u.Factor).InexactFloat64(), nil
}

// ToBig converts the value to unit keeping full precision
func (t Time) ToBig(unit TimeUnitRef) (decimal.Decimal, error) {
	u, err := ResolveTimeUnit(unit, nil)
	if err != nil {
		return decimal.Zero, err
	}
	if t.kind != kindFinite {
		return decimal.Zero, errs.NewArgumentError(t.String(), "no decimal representation")
	}
	return divide(t.value, u.Factor), nil
}

// Add returns t + o
func (t Time) Add(o Time) Time {
	r := t.combine(o)
	switch {
	case r.kind != kindFinite:
	case t.kind == kindInf || o.kind == kindInf:
		r.kind = kindInf
	default:
		r.value = t.value.Add(o.value)
	}
	return r
}

// Subtract returns |t - o|; durations never go negative
func (t Time) Subtract(o Time) Time {
	r := t.combine(o)
	switch {
	case r.kind != kindFinite:
	case t.kind == kindInf && o.kind == kindInf:
		r.kind = kindNaN
	case t.kind == kindInf || o.kind == kindInf:
		r.kind = kindInf
	default:
		r.value = t.value.Sub(o.value).Abs()
	}
	return r
}

// Multiply returns t * o, both taken as nanosecond amounts
func (t Time) Multiply(o Time) Time {
	r := t.combine(o)
	switch {
	case r.kind != kindFinite:
	case t.kind == kindInf || o.kind == kindInf:
		if t.isZero() || o.isZero() {
			r.kind = kindNaN
		} else {
			r.kind = kindInf
		}
	default:
		r.value = t.value.Mul(o.value)
	}
	return r
}

// Divide returns t / o. Dividing by zero yields NaN.
func (t Time) Divide(o Time) Time {
	r := t.combine(o)
	switch {
	case r.kind != kindFinite:
	case o.isZero():
		r.kind = kindNaN
	case t.kind == kindInf && o.kind == kindInf:
		r.kind = kindNaN
	case t.kind == kindInf:
		r.kind = kindInf
	case o.kind == kindInf:
		r.value = decimal.Zero
	default:
		r.value = divide(t.value, o.value)
	}
	return r
}

// AddValue adds an amount expressed in unit (nanoseconds when unit is nil)
func (t Time) AddValue(value any, unit TimeUnitRef) (Time, error) {
	o, err := operand(value, unit)
	if err != nil {
		return Time{}, err
	}
	return t.Add(o), nil
}

// SubtractValue subtracts an amount expressed in unit (nanoseconds when unit is nil)
func (t Time) SubtractValue(value any, unit TimeUnitRef) (Time, error) {
	o, err := operand(value, unit)
	if err != nil {
		return Time{}, err
	}
	return t.Subtract(o), nil
}

// MultiplyValue multiplies by an amount expressed in unit (nanoseconds when unit is nil)
func (t Time) MultiplyValue(value any, unit TimeUnitRef) (Time, error) {
	o, err := operand(value, unit)
	if err != nil {
		return Time{}, err
	}
	return t.Multiply(o), nil
}

// DivideValue divides by an amount expressed in unit (nanoseconds when unit is nil)
func (t Time) DivideValue(value any, unit TimeUnitRef) (Time, error) {
	o, err := operand(value, unit)
	if err != nil {
		return Time{}, err
	}
	return t.Divide(o), nil
}

// String renders the raw nanosecond value, e.g. "1100000000 ns"
func (t Time) String() string {
	switch t.kind {
	case kindNaN:
		return "NaN ns"
	case kindInf:
		return "Infinity ns"
	default:
		return t.value.String() + " ns"
	}
}

func operand(value any, unit TimeUnitRef) (Time, error) {
	if o, ok := value.(Time); ok {
		return o, nil
	}
	return TimeFrom(value, orNanosecond(unit))
}

func orNanosecond(unit TimeUnitRef) TimeUnitRef {
	if unit == nil {
		return Nanosecond
	}
	return unit
}

// combine seeds the result of a binary operation: sticky approximation and NaN poisoning
func (t Time) combine(o Time) Time {
	r := Time{approximated: t.approximated || o.approximated}
	if t.kind == kindNaN || o.kind == kindNaN {
		r.kind = kindNaN
	}
	return r
}

func (t Time) isZero() bool {
	return t.kind == kindFinite && t.value.IsZero()
}

func (t Time) scale(factor decimal.Decimal) Time {
	if t.kind != kindFinite {
		return t
	}
	t.value = t.value.Mul(factor)
	return t
}

// divide keeps quotientDigits significant digits in the quotient
func divide(a, b decimal.Decimal) decimal.Decimal {
	if a.IsZero() {
		return decimal.Zero
	}
	places := quotientDigits - (adjustedExponent(a) - adjustedExponent(b))
	if places < 0 {
		places = 0
	}
	return a.DivRound(b, int32(places))
}

// adjustedExponent is the power of ten of the most significant digit
func adjustedExponent(d decimal.Decimal) int {
	if d.IsZero() {
		return 0
	}
	digits := len(new(big.Int).Abs(d.Coefficient()).String())
	return digits + int(d.Exponent()) - 1
}
