package writer

import (
	"strings"

	"github.com/shopspring/decimal"
)

var romanNumerals = []struct {
	value int64
	glyph string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// romanFractions is searched in order; the first closest entry wins
var romanFractions = []struct {
	num, den int64
	glyph    string
}{
	{11, 12, "S·····"}, // deunx
	{10, 12, "S····"},  // dextans
	{9, 12, "S···"},    // dodrans
	{8, 12, "S··"},     // bes
	{7, 12, "S·"},      // septunx
	{6, 12, "S"},       // semis
	{5, 12, "·····"},   // quincunx
	{4, 12, "····"},    // triens
	{3, 12, "···"},     // quadrans
	{2, 12, "··"},      // sextans
	{1, 12, "·"},       // uncia
	{1, 24, "Є"},       // semuncia
	{1, 36, "ƧƧ"},      // binae sextulae
	{1, 48, "Ɔ"},       // sicilicus
	{1, 72, "Ƨ"},       // sextula
	{1, 144, "»"},      // dimidia sextula
	{1, 288, "℈"},      // scripulum
	{0, 1, ""},
}

// Roman writes n with the subtractive greedy algorithm. Zero is "nulla".
func Roman(n int64) string {
	if n == 0 {
		return "nulla"
	}
	if n < 0 {
		n = -n
	}
	var b strings.Builder
	for _, r := range romanNumerals {
		for n >= r.value {
			b.WriteString(r.glyph)
			n -= r.value
		}
	}
	return b.String()
}

// RomanFraction returns the glyph of the fraction closest to frac (0 <= frac < 1)
// and the value that glyph stands for
func RomanFraction(frac decimal.Decimal) (string, decimal.Decimal) {
	best := 0
	var bestDiff decimal.Decimal
	for i, f := range romanFractions {
		diff := frac.Sub(fractionValue(f.num, f.den)).Abs()
		if i == 0 || diff.LessThan(bestDiff) {
			best, bestDiff = i, diff
		}
	}
	f := romanFractions[best]
	return f.glyph, fractionValue(f.num, f.den)
}

func fractionValue(num, den int64) decimal.Decimal {
	return decimal.NewFromInt(num).DivRound(decimal.NewFromInt(den), 40)
}

// romanWithFraction writes the integer part in numerals followed by the
// nearest fraction glyph; a zero integer part is left out when a fraction shows
func romanWithFraction(d decimal.Decimal) (string, decimal.Decimal) {
	whole := d.Floor()
	glyph, part := RomanFraction(d.Sub(whole))
	switch {
	case glyph == "":
		return Roman(whole.IntPart()), whole
	case whole.IsZero():
		return glyph, part
	default:
		return Roman(whole.IntPart()) + glyph, whole.Add(part)
	}
}
