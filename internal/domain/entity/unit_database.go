package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/timewriter/internal/domain/error"
)

// Unit names known to the database
const (
	PlanckTime       UnitName = "planckTime"
	Quectosecond     UnitName = "quectosecond"
	Rontosecond      UnitName = "rontosecond"
	Yoctosecond      UnitName = "yoctosecond"
	Zeptosecond      UnitName = "zeptosecond"
	Attosecond       UnitName = "attosecond"
	AtomicUnitOfTime UnitName = "atomicUnitOfTime"
	Femtosecond      UnitName = "femtosecond"
	Svedberg         UnitName = "svedberg"
	Picosecond       UnitName = "picosecond"
	Nanosecond       UnitName = "nanosecond"
	Shake            UnitName = "shake"
	Tick             UnitName = "tick"
	Microsecond      UnitName = "microsecond"
	Millisecond      UnitName = "millisecond"
	Centisecond      UnitName = "centisecond"
	Jiffy            UnitName = "jiffy"
	Decisecond       UnitName = "decisecond"
	SiderealSecond   UnitName = "siderealSecond"
	Second           UnitName = "second"
	Helek            UnitName = "helek"
	Decasecond       UnitName = "decasecond"
	SiderealMinute   UnitName = "siderealMinute"
	Minute           UnitName = "minute"
	Milliday         UnitName = "milliday"
	Moment           UnitName = "moment"
	Hectosecond      UnitName = "hectosecond"
	Ke               UnitName = "ke"
	Kilosecond       UnitName = "kilosecond"
	Bell             UnitName = "bell"
	SiderealHour     UnitName = "siderealHour"
	Hour             UnitName = "hour"
	Watch            UnitName = "watch"
	SiderealDay      UnitName = "siderealDay"
	Day              UnitName = "day"
	Sol              UnitName = "sol"
	LunarDay         UnitName = "lunarDay"
	Week             UnitName = "week"
	Nundine          UnitName = "nundine"
	Megasecond       UnitName = "megasecond"
	Fortnight        UnitName = "fortnight"
	DraconicMonth    UnitName = "draconicMonth"
	TropicalMonth    UnitName = "tropicalMonth"
	SiderealMonth    UnitName = "siderealMonth"
	AnomalisticMonth UnitName = "anomalisticMonth"
	SynodicMonth     UnitName = "synodicMonth"
	Month            UnitName = "month"
	Quarter          UnitName = "quarter"
	DraconicYear     UnitName = "draconicYear"
	LunarYear        UnitName = "lunarYear"
	CommonYear       UnitName = "commonYear"
	TropicalYear     UnitName = "tropicalYear"
	Year             UnitName = "year"
	GregorianYear    UnitName = "gregorianYear"
	JulianYear       UnitName = "julianYear"
	SiderealYear     UnitName = "siderealYear"
	GaussianYear     UnitName = "gaussianYear"
	AnomalisticYear  UnitName = "anomalisticYear"
	LeapYear         UnitName = "leapYear"
	Olympiad         UnitName = "olympiad"
	Lustrum          UnitName = "lustrum"
	Decade           UnitName = "decade"
	Indiction        UnitName = "indiction"
	Generation       UnitName = "generation"
	Gigasecond       UnitName = "gigasecond"
	Jubilee          UnitName = "jubilee"
	Century          UnitName = "century"
	Millennium       UnitName = "millennium"
	Terasecond       UnitName = "terasecond"
	Megaannum        UnitName = "megaannum"
	Petasecond       UnitName = "petasecond"
	GalacticYear     UnitName = "galacticYear"
	Aeon             UnitName = "aeon"
	Exasecond        UnitName = "exasecond"
	Zettasecond      UnitName = "zettasecond"
	Yottasecond      UnitName = "yottasecond"
	Ronnasecond      UnitName = "ronnasecond"
	Quettasecond     UnitName = "quettasecond"
)

// factorPrecision is the number of decimal places kept for factors that are
// not terminating decimals (helek, sidereal subdivisions).
const factorPrecision = 30

var (
	nsPerSecond      = decimal.New(1, 9)
	nsPerHour        = decimal.New(36, 11)
	nsPerDay         = decimal.New(864, 11)
	nsPerSiderealDay = seconds("86164.0905")
	nsPerYear        = days("365.2425")
	nsPerMonth       = days("365").Div(decimal.NewFromInt(12))
)

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(fmt.Sprintf("unit database: bad factor %q: %v", s, err))
	}
	return d
}

func seconds(s string) decimal.Decimal { return mustDecimal(s).Mul(nsPerSecond) }
func days(s string) decimal.Decimal    { return mustDecimal(s).Mul(nsPerDay) }
func years(s string) decimal.Decimal   { return mustDecimal(s).Mul(nsPerYear) }

func fraction(of decimal.Decimal, parts int64) decimal.Decimal {
	return of.DivRound(decimal.NewFromInt(parts), factorPrecision)
}

// unitTable holds every built-in unit. Factors are nanoseconds per unit.
var unitTable = []TimeUnit{
	{Name: string(PlanckTime), Factor: mustDecimal("5.391247e-35"), Symbol: "tP", ReadableName: "Planck time"},
	{Name: string(Quectosecond), Factor: decimal.New(1, -21), Symbol: "qs"},
	{Name: string(Rontosecond), Factor: decimal.New(1, -18), Symbol: "rs"},
	{Name: string(Yoctosecond), Factor: decimal.New(1, -15), Symbol: "ys"},
	{Name: string(Zeptosecond), Factor: decimal.New(1, -12), Symbol: "zs"},
	{Name: string(Attosecond), Factor: decimal.New(1, -9), Symbol: "as"},
	{Name: string(AtomicUnitOfTime), Factor: mustDecimal("2.4188843265857e-8"), Symbol: "a.u.",
		ReadableName: "atomic unit of time", CustomPlural: "atomic units of time"},
	{Name: string(Femtosecond), Factor: decimal.New(1, -6), Symbol: "fs"},
	{Name: string(Svedberg), Factor: decimal.New(1, -4), Symbol: "S"},
	{Name: string(Picosecond), Factor: decimal.New(1, -3), Symbol: "ps"},
	{Name: string(Nanosecond), Factor: decimal.New(1, 0), Symbol: "ns"},
	{Name: string(Shake), Factor: decimal.New(1, 1)},
	{Name: string(Tick), Factor: decimal.New(1, 2)},
	{Name: string(Microsecond), Factor: decimal.New(1, 3), Symbol: "µs"},
	{Name: string(Millisecond), Factor: decimal.New(1, 6), Symbol: "ms"},
	{Name: string(Centisecond), Factor: decimal.New(1, 7), Symbol: "cs"},
	{Name: string(Jiffy), Factor: decimal.New(1, 7), CustomPlural: "jiffies"},
	{Name: string(Decisecond), Factor: decimal.New(1, 8), Symbol: "ds"},
	{Name: string(SiderealSecond), Factor: fraction(nsPerSiderealDay, 86_400)},
	{Name: string(Second), Factor: nsPerSecond, Symbol: "s"},
	{Name: string(Helek), Factor: fraction(nsPerHour, 1_080), CustomPlural: "halakim"},
	{Name: string(Decasecond), Factor: decimal.New(1, 10), Symbol: "das"},
	{Name: string(SiderealMinute), Factor: fraction(nsPerSiderealDay, 1_440)},
	{Name: string(Minute), Factor: decimal.New(6, 10), Symbol: "min"},
	{Name: string(Milliday), Factor: decimal.New(864, 8), Symbol: "md"},
	{Name: string(Moment), Factor: decimal.New(9, 10)},
	{Name: string(Hectosecond), Factor: decimal.New(1, 11), Symbol: "hs"},
	{Name: string(Ke), Factor: decimal.New(864, 9), PluralInvariant: true},
	{Name: string(Kilosecond), Factor: decimal.New(1, 12), Symbol: "ks"},
	{Name: string(Bell), Factor: decimal.New(18, 11)},
	{Name: string(SiderealHour), Factor: fraction(nsPerSiderealDay, 24)},
	{Name: string(Hour), Factor: nsPerHour, Symbol: "h"},
	{Name: string(Watch), Factor: decimal.New(144, 11)},
	{Name: string(SiderealDay), Factor: nsPerSiderealDay},
	{Name: string(Day), Factor: nsPerDay, Symbol: "d"},
	{Name: string(Sol), Factor: seconds("88775.244147")},
	{Name: string(LunarDay), Factor: seconds("89400")},
	{Name: string(Week), Factor: days("7"), Symbol: "wk"},
	{Name: string(Nundine), Factor: days("8")},
	{Name: string(Megasecond), Factor: decimal.New(1, 15), Symbol: "Ms"},
	{Name: string(Fortnight), Factor: days("14")},
	{Name: string(DraconicMonth), Factor: days("27.212220815")},
	{Name: string(TropicalMonth), Factor: days("27.321582")},
	{Name: string(SiderealMonth), Factor: days("27.321661")},
	{Name: string(AnomalisticMonth), Factor: days("27.55455")},
	{Name: string(SynodicMonth), Factor: days("29.530589")},
	{Name: string(Month), Factor: nsPerMonth, Symbol: "m"},
	{Name: string(Quarter), Factor: nsPerMonth.Mul(decimal.NewFromInt(3))},
	{Name: string(DraconicYear), Factor: days("346.620075883")},
	{Name: string(LunarYear), Factor: days("354.367068")},
	{Name: string(CommonYear), Factor: days("365")},
	{Name: string(TropicalYear), Factor: days("365.24219")},
	{Name: string(Year), Factor: nsPerYear, Symbol: "y"},
	{Name: string(GregorianYear), Factor: nsPerYear},
	{Name: string(JulianYear), Factor: days("365.25"), Symbol: "a"},
	{Name: string(SiderealYear), Factor: days("365.256363004")},
	{Name: string(GaussianYear), Factor: days("365.2568983")},
	{Name: string(AnomalisticYear), Factor: days("365.259636")},
	{Name: string(LeapYear), Factor: days("366")},
	{Name: string(Olympiad), Factor: years("4")},
	{Name: string(Lustrum), Factor: years("5"), CustomPlural: "lustra"},
	{Name: string(Decade), Factor: years("10")},
	{Name: string(Indiction), Factor: years("15")},
	{Name: string(Generation), Factor: years("30")},
	{Name: string(Gigasecond), Factor: decimal.New(1, 18), Symbol: "Gs"},
	{Name: string(Jubilee), Factor: years("50")},
	{Name: string(Century), Factor: years("100"), CustomPlural: "centuries"},
	{Name: string(Millennium), Factor: years("1000"), CustomPlural: "millennia"},
	{Name: string(Terasecond), Factor: decimal.New(1, 21), Symbol: "Ts"},
	{Name: string(Megaannum), Factor: years("1e6"), Symbol: "Ma", CustomPlural: "megaanna"},
	{Name: string(Petasecond), Factor: decimal.New(1, 24), Symbol: "Ps"},
	{Name: string(GalacticYear), Factor: years("2.3e8")},
	{Name: string(Aeon), Factor: years("1e9")},
	{Name: string(Exasecond), Factor: decimal.New(1, 27), Symbol: "Es"},
	{Name: string(Zettasecond), Factor: decimal.New(1, 30), Symbol: "Zs"},
	{Name: string(Yottasecond), Factor: decimal.New(1, 33), Symbol: "Ys"},
	{Name: string(Ronnasecond), Factor: decimal.New(1, 36), Symbol: "Rs"},
	{Name: string(Quettasecond), Factor: decimal.New(1, 39), Symbol: "Qs"},
}

// unitIndex maps every accepted case-folded spelling to its unit
var unitIndex = buildUnitIndex(unitTable)

func buildUnitIndex(table []TimeUnit) map[string]*TimeUnit {
	index := make(map[string]*TimeUnit, len(table)*3)
	add := func(key string, u *TimeUnit) {
		key = strings.ToLower(key)
		if prev, ok := index[key]; ok && prev != u {
			panic(fmt.Sprintf("unit database: %q spells both %s and %s", key, prev.Name, u.Name))
		}
		index[key] = u
	}

	for i := range table {
		u := &table[i]
		if u.Factor.Sign() <= 0 {
			panic(fmt.Sprintf("unit database: %s has non-positive factor", u.Name))
		}
		add(u.Name, u)
		add(u.Name+"s", u)
		if u.CustomPlural != "" {
			add(u.CustomPlural, u)
		}
	}
	return index
}

// LookupTimeUnit finds a unit by canonical name, name plus "s", or custom
// plural, ignoring case.
func LookupTimeUnit(name string) (*TimeUnit, error) {
	if u, ok := unitIndex[strings.ToLower(strings.TrimSpace(name))]; ok {
		return u, nil
	}
	return nil, errs.NewTimeUnitError(name, "")
}

// MustLookupTimeUnit is LookupTimeUnit for names known at compile time
func MustLookupTimeUnit(name UnitName) *TimeUnit {
	u, err := LookupTimeUnit(string(name))
	if err != nil {
		panic(err)
	}
	return u
}

// TimeUnits returns the built-in units ordered by ascending factor
func TimeUnits() []*TimeUnit {
	units := make([]*TimeUnit, len(unitTable))
	for i := range unitTable {
		units[i] = &unitTable[i]
	}
	sort.SliceStable(units, func(i, j int) bool {
		return units[i].Factor.LessThan(units[j].Factor)
	})
	return units
}
