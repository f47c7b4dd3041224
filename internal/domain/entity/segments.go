package entity

import "sort"

// Segment is an ordered list of units used to split a time in a countdown.
// Units must be listed from the largest to the smallest.
type Segment []TimeUnitRef

// Segment groups offered as countdown presets
var (
	SegmentCommon   = Segment{Year, Month, Day, Hour, Minute, Second}
	SegmentBinary   = Segment{Second, Jiffy, Millisecond, Microsecond, Tick, Nanosecond}
	SegmentExtremes = Segment{Aeon, GalacticYear, Megaannum, Millennium, Century, Year}
	SegmentSidereal = Segment{SiderealYear, SiderealMonth, SiderealDay, SiderealHour, SiderealMinute, SiderealSecond}
	SegmentBaseTen  = Segment{Yottasecond, Zettasecond, Exasecond, Petasecond, Terasecond, Gigasecond, Megasecond, Kilosecond, Second, Millisecond, Microsecond, Nanosecond}
)

// TimeSegments maps group names to the preset segments
var TimeSegments = map[string]Segment{
	"baseTen":  SegmentBaseTen,
	"binary":   SegmentBinary,
	"common":   SegmentCommon,
	"extremes": SegmentExtremes,
	"sidereal": SegmentSidereal,
}

// LookupSegment returns the preset segment registered under name
func LookupSegment(name string) (Segment, bool) {
	s, ok := TimeSegments[name]
	return s, ok
}

// SegmentNames lists the preset group names in alphabetical order
func SegmentNames() []string {
	names := make([]string, 0, len(TimeSegments))
	for name := range TimeSegments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FlattenSegments resolves and concatenates groups, keeping the first
// occurrence of every unit. No groups means SegmentCommon.
func FlattenSegments(groups ...Segment) ([]*TimeUnit, error) {
	if len(groups) == 0 {
		groups = []Segment{SegmentCommon}
	}

	seen := make(map[*TimeUnit]struct{})
	var units []*TimeUnit
	for _, group := range groups {
		for _, ref := range group {
			u, err := ResolveTimeUnit(ref, nil)
			if err != nil {
				return nil, err
			}
			if _, dup := seen[u]; dup {
				continue
			}
			seen[u] = struct{}{}
			units = append(units, u)
		}
	}
	if len(units) == 0 {
		return FlattenSegments(SegmentCommon)
	}
	return units, nil
}
