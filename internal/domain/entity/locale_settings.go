package entity

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	errs "github.com/amirhossein-jamali/timewriter/internal/domain/error"
)

// DefaultLocaleIdentifier is the built-in locale, available without any bundle
const DefaultLocaleIdentifier = "en-us"

var localeIdentifierPattern = regexp.MustCompile(`^[a-z]{2}(-[a-z]{2})?$`)

// UnitTerms overrides the wording of one unit in a locale
type UnitTerms struct {
	ReadableName string     `json:"readableName,omitempty" yaml:"readableName,omitempty"`
	Symbol       string     `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	CustomPlural string     `json:"customPlural,omitempty" yaml:"customPlural,omitempty"`
	PluralFunc   PluralFunc `json:"-" yaml:"-"`
	Pluralize    *bool      `json:"pluralize,omitempty" yaml:"pluralize,omitempty"`
}

// LocaleSettings is a bundle of linguistic overrides addressed by identifier
type LocaleSettings struct {
	Identifier    string               `json:"identifier" yaml:"identifier"`
	TimeUnits     map[string]UnitTerms `json:"timeUnits,omitempty" yaml:"timeUnits,omitempty"`
	WriterOptions Settings             `json:"writerOptions" yaml:"writerOptions,omitempty"`
}

// DefaultLocale returns the built-in en-us locale, which overrides nothing
func DefaultLocale() LocaleSettings {
	return LocaleSettings{Identifier: DefaultLocaleIdentifier}
}

// NormalizeLocaleIdentifier lowercases id and turns "_" into "-"
func NormalizeLocaleIdentifier(id string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(id)), "_", "-")
}

// ValidLocaleIdentifier reports whether id has the "ll" or "ll-rr" shape
func ValidLocaleIdentifier(id string) bool {
	return localeIdentifierPattern.MatchString(id)
}

// Normalize validates the bundle and rewrites unit keys to canonical unit
// names, so "months" and "Month" both map to "month".
func (l LocaleSettings) Normalize() (LocaleSettings, error) {
	id := NormalizeLocaleIdentifier(l.Identifier)
	if !ValidLocaleIdentifier(id) {
		return LocaleSettings{}, fmt.Errorf("%w: identifier %q", errs.ErrInvalidLocaleBundle, l.Identifier)
	}
	if err := l.WriterOptions.Validate(); err != nil {
		return LocaleSettings{}, fmt.Errorf("%w: %s: %v", errs.ErrInvalidLocaleBundle, id, err)
	}

	out := LocaleSettings{Identifier: id, WriterOptions: l.WriterOptions}
	if len(l.TimeUnits) > 0 {
		out.TimeUnits = make(map[string]UnitTerms, len(l.TimeUnits))
		for key, terms := range l.TimeUnits {
			u, err := LookupTimeUnit(key)
			if err != nil {
				return LocaleSettings{}, fmt.Errorf("%w: %s: %v", errs.ErrInvalidLocaleBundle, id, err)
			}
			out.TimeUnits[u.Name] = terms
		}
	}
	return out, nil
}

// Terms returns the overrides for unit, if the locale has any
func (l LocaleSettings) Terms(unit *TimeUnit) (UnitTerms, bool) {
	if unit == nil || l.TimeUnits == nil {
		return UnitTerms{}, false
	}
	t, ok := l.TimeUnits[unit.Name]
	return t, ok
}

// UnitKeys lists the overridden unit names in alphabetical order
func (l LocaleSettings) UnitKeys() []string {
	keys := make([]string, 0, len(l.TimeUnits))
	for k := range l.TimeUnits {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
