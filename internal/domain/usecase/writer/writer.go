package writer

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/timewriter/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/timewriter/internal/domain/port/core"
	"github.com/amirhossein-jamali/timewriter/internal/domain/port/usecase"
)

// countdownPrecision is the number of decimal places a segment quotient is
// rounded to before taking its integer part
const countdownPrecision = 30

// TimeWriter renders time values as text.
// Settings may be changed between calls; a TimeWriter is not safe for
// concurrent use while its Settings are being modified.
type TimeWriter struct {
	Settings entity.Settings

	locales usecase.LocaleContext
	logger  coreport.Logger
}

var _ usecase.TimeWriterUseCase = (*TimeWriter)(nil)

// NewTimeWriter creates a TimeWriter. A nil locales renders with en-us.
func NewTimeWriter(locales usecase.LocaleContext, logger coreport.Logger, settings entity.Settings) *TimeWriter {
	return &TimeWriter{
		Settings: settings,
		locales:  locales,
		logger:   logger,
	}
}

// Write renders value in opts.To. Raw numbers are read in opts.From; Time
// values are used as they are. Both units default to the effective
// defaultTimeUnit, and To defaults to From.
func (w *TimeWriter) Write(value any, opts usecase.WriteOptions) (string, error) {
	loc := w.locale()
	rs, err := w.resolve(opts.Settings, loc)
	if err != nil {
		return "", err
	}

	origin, err := entity.ResolveTimeUnit(opts.From, rs.DefaultTimeUnit)
	if err != nil {
		w.rejectUnit("from", opts.From, err)
		return "", err
	}
	target, err := entity.ResolveTimeUnit(opts.To, origin)
	if err != nil {
		w.rejectUnit("to", opts.To, err)
		return "", err
	}

	t, err := w.toTime(value, origin)
	if err != nil {
		return "", err
	}

	if t.IsNaN() || t.IsInf() {
		return decorate(w.special(t, target, loc, rs), t.IsApproximated(), rs), nil
	}

	exact, err := t.ToBig(target)
	if err != nil {
		return "", err
	}
	text, lossy := w.quantity(exact, target, loc, rs)
	return decorate(text, t.IsApproximated() || lossy, rs), nil
}

// Countdown splits t over the units of groups, largest first, and joins the
// segments. Every unit but the last gets a whole quantity; the last one gets
// whatever remains. No groups means entity.SegmentCommon.
func (w *TimeWriter) Countdown(t entity.Time, settings entity.Settings, groups ...entity.Segment) (string, error) {
	loc := w.locale()
	rs, err := w.resolve(settings, loc)
	if err != nil {
		return "", err
	}

	units, err := entity.FlattenSegments(groups...)
	if err != nil {
		w.rejectUnit("segment", groups, err)
		return "", err
	}

	if t.IsNaN() || t.IsInf() {
		return decorate(w.special(t, units[0], loc, rs), t.IsApproximated(), rs), nil
	}

	remaining := t.Big()
	approximated := t.IsApproximated()
	segments := make([]string, 0, len(units))
	var lastText string

	for i, u := range units {
		exact, err := entity.MustTime(remaining).ToBig(u)
		if err != nil {
			return "", err
		}
		if i < len(units)-1 {
			exact = exact.Round(countdownPrecision).Floor()
			remaining = remaining.Sub(exact.Mul(u.Factor))
			if remaining.IsNegative() {
				remaining = decimal.Zero
			}
		}

		text, lossy := w.quantity(exact, u, loc, rs)
		lastText = text
		if exact.IsZero() && rs.HideZeroSegments {
			continue
		}
		approximated = approximated || lossy
		segments = append(segments, text)
	}

	if len(segments) == 0 {
		segments = append(segments, lastText)
	}
	return decorate(strings.Join(segments, rs.SegmentSeparator), approximated, rs), nil
}

// quantity renders a finite value of unit and reports whether the text
// differs from exact
func (w *TimeWriter) quantity(exact decimal.Decimal, unit *entity.TimeUnit,
	loc entity.LocaleSettings, rs entity.ResolvedSettings) (string, bool) {
	native := dropRedundantNines(exact.InexactFloat64())

	var n number
	lossy := false
	if rs.NumericWriter != nil {
		n = number{text: rs.NumericWriter(native, exact), shown: exact}
	} else {
		n = formatNumber(displayDecimal(native, exact), rs)
		lossy = !sameValue(n.shown, exact)
	}

	if rs.HideTimeUnit {
		return n.text, lossy
	}
	name := unitText(unit, loc, rs, n.shown.InexactFloat64(), exact, needsPlural(n.shown))
	return n.text + rs.TimeUnitSeparator + name, lossy
}

// special renders NaN and Infinity. Infinity takes the plural; NaN does not.
// A custom numeric writer replaces the symbol and receives a zero decimal.
func (w *TimeWriter) special(t entity.Time, unit *entity.TimeUnit,
	loc entity.LocaleSettings, rs entity.ResolvedSettings) string {
	var text string
	var quantity float64
	switch {
	case t.IsNaN():
		text, quantity = rs.SymbolNaN, math.NaN()
		if rs.Verbose {
			text = rs.TermNaN
		}
	default:
		text, quantity = rs.SymbolInfinite, math.Inf(1)
		if rs.Verbose {
			text = rs.TermInfinite
		}
	}
	if rs.NumericWriter != nil {
		text = rs.NumericWriter(quantity, decimal.Zero)
	}
	if rs.HideTimeUnit {
		return text
	}
	return text + rs.TimeUnitSeparator + unitText(unit, loc, rs, quantity, decimal.Zero, t.IsInf())
}

// decorate prefixes the approximation mark
func decorate(text string, approximated bool, rs entity.ResolvedSettings) string {
	if !approximated {
		return text
	}
	if rs.Verbose {
		return rs.TermApproximated + " " + text
	}
	return rs.SymbolApproximated + text
}

// resolve applies the cascade: call, instance, locale, library defaults
func (w *TimeWriter) resolve(call entity.Settings, loc entity.LocaleSettings) (entity.ResolvedSettings, error) {
	merged := entity.MergeSettings(call, w.Settings, loc.WriterOptions)
	if err := merged.Validate(); err != nil {
		if w.logger != nil {
			w.logger.Warn("Rejected writer settings", map[string]any{"error": err.Error()})
		}
		return entity.ResolvedSettings{}, err
	}
	return merged.Resolve(), nil
}

func (w *TimeWriter) locale() entity.LocaleSettings {
	if w.locales == nil {
		return entity.DefaultLocale()
	}
	return w.locales.Settings()
}

func (w *TimeWriter) toTime(value any, origin *entity.TimeUnit) (entity.Time, error) {
	switch v := value.(type) {
	case entity.Time:
		return v, nil
	case *entity.Time:
		if v != nil {
			return *v, nil
		}
	}
	return entity.TimeFrom(value, origin)
}

func (w *TimeWriter) rejectUnit(role string, ref any, err error) {
	if w.logger == nil {
		return
	}
	w.logger.Warn("Rejected time unit", map[string]any{
		"role":  role,
		"unit":  ref,
		"error": err.Error(),
	})
}
