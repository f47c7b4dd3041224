package writer

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/timewriter/internal/domain/entity"
)

// comparisonDigits is the precision at which a rendered number is compared
// against the exact value to decide whether it is an approximation
const comparisonDigits = 30

var (
	ten        = decimal.NewFromInt(10)
	romanLimit = decimal.New(1, 9)
)

// number is a rendered quantity and the value the text actually shows
type number struct {
	text  string
	shown decimal.Decimal
}

// dropRedundantNines rounds values such as 2.9999999 that are only off an
// integer because of binary floating point
func dropRedundantNines(f float64) float64 {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return f
	}
	frac := s[dot+1:]
	if len(frac) >= 6 && strings.Trim(frac, "9") == "" {
		return math.Round(f)
	}
	return f
}

// displayDecimal is the decimal form of the native number written for exact;
// values a float64 cannot hold keep their exact form
func displayDecimal(native float64, exact decimal.Decimal) decimal.Decimal {
	if math.IsInf(native, 0) || math.IsNaN(native) {
		return exact
	}
	return decimal.NewFromFloat(native)
}

func formatNumber(d decimal.Decimal, rs entity.ResolvedSettings) number {
	switch rs.NumericNotation {
	case entity.NotationScientific:
		return formatScientific(d, rs)
	case entity.NotationRoman:
		if d.GreaterThan(romanLimit) {
			return formatDecimal(d, rs)
		}
		whole := d.Floor()
		return number{text: Roman(whole.IntPart()), shown: whole}
	case entity.NotationRomanFractions:
		if d.GreaterThan(romanLimit) {
			return formatDecimal(d, rs)
		}
		text, shown := romanWithFraction(d)
		return number{text: text, shown: shown}
	default:
		return formatDecimal(d, rs)
	}
}

func formatDecimal(d decimal.Decimal, rs entity.ResolvedSettings) number {
	var text string
	switch {
	case rs.SignificantDigits != nil:
		d = roundSignificant(d, *rs.SignificantDigits, rs.RoundingMode)
		text = d.String()
	case rs.DecimalPlaces != nil:
		places := int32(*rs.DecimalPlaces)
		d = roundTo(d, places, rs.RoundingMode)
		text = d.StringFixed(places)
	default:
		text = d.String()
	}
	return number{text: separate(text, rs.ThousandsSeparator, rs.DecimalSeparator), shown: d}
}

func formatScientific(d decimal.Decimal, rs entity.ResolvedSettings) number {
	exp := magnitude(d)
	mantissa := d.Shift(int32(-exp))

	switch {
	case rs.SignificantDigits != nil:
		mantissa = roundTo(mantissa, int32(*rs.SignificantDigits-1), rs.RoundingMode)
	case rs.DecimalPlaces != nil:
		mantissa = roundTo(mantissa, int32(*rs.DecimalPlaces), rs.RoundingMode)
	}
	if mantissa.GreaterThanOrEqual(ten) {
		mantissa = mantissa.Shift(-1)
		exp++
	}

	text := mantissa.String()
	if rs.SignificantDigits == nil && rs.DecimalPlaces != nil {
		text = mantissa.StringFixed(int32(*rs.DecimalPlaces))
	}
	text = strings.Replace(text, ".", rs.DecimalSeparator, 1)

	sign := "+"
	if exp < 0 {
		sign = "-"
	}
	return number{
		text:  text + "e" + sign + strconv.Itoa(abs(exp)),
		shown: mantissa.Shift(int32(exp)),
	}
}

// separate swaps the decimal point and inserts thousands separators
func separate(text, thousands, point string) string {
	whole, frac, hasFrac := strings.Cut(text, ".")
	if thousands != "" && len(whole) > 3 {
		var b strings.Builder
		lead := len(whole) % 3
		if lead > 0 {
			b.WriteString(whole[:lead])
		}
		for i := lead; i < len(whole); i += 3 {
			if b.Len() > 0 {
				b.WriteString(thousands)
			}
			b.WriteString(whole[i : i+3])
		}
		whole = b.String()
	}
	if !hasFrac {
		return whole
	}
	return whole + point + frac
}

func roundTo(d decimal.Decimal, places int32, mode entity.RoundingMode) decimal.Decimal {
	switch mode {
	case entity.RoundHalfEven:
		return d.RoundBank(places)
	case entity.RoundFloor:
		return d.RoundFloor(places)
	case entity.RoundCeil:
		return d.RoundCeil(places)
	case entity.RoundTrunc:
		return d.RoundDown(places)
	default:
		return d.Round(places)
	}
}

func roundSignificant(d decimal.Decimal, digits int, mode entity.RoundingMode) decimal.Decimal {
	if d.IsZero() {
		return d
	}
	return roundTo(d, int32(digits-1-magnitude(d)), mode)
}

// sameValue compares two decimals at comparisonDigits significant digits
func sameValue(a, b decimal.Decimal) bool {
	return roundSignificant(a, comparisonDigits, entity.RoundHalfUp).
		Equal(roundSignificant(b, comparisonDigits, entity.RoundHalfUp))
}

// magnitude is the power of ten of the most significant digit; zero for zero
func magnitude(d decimal.Decimal) int {
	if d.IsZero() {
		return 0
	}
	digits := len(new(big.Int).Abs(d.Coefficient()).String())
	return digits + int(d.Exponent()) - 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
