package parser

import (
	"time"

	"github.com/imarsman/naturaldate/gregorian"
	"github.com/imarsman/naturaldate/weekday"
)

// buildNaive turn a finished result into a timestamp, taking anything unset
// from the default. The returned time carries the parsed components in UTC;
// zone resolution is a separate step.
func buildNaive(res *parseResult, def time.Time) (time.Time, error) {
	year := def.Year()
	if res.year != nil {
		year = *res.year
	}
	month := int(def.Month())
	if res.month != nil {
		month = *res.month
	}

	if year < 1 || year > 9999 {
		return time.Time{}, newError(KindImpossibleTimestamp, "invalid year")
	}
	daysInMonth := gregorian.DaysInMonth(year, month)
	if daysInMonth == 0 {
		return time.Time{}, newError(KindImpossibleTimestamp, "invalid month")
	}

	// A named weekday with no explicit day means the next such weekday on or
	// after the default date.
	dayOffset := 0
	if res.weekday != nil && res.day == nil {
		base, err := weekday.DayOfWeekOf(year, month, def.Day())
		if err != nil {
			return time.Time{}, newError(KindImpossibleTimestamp, "invalid month")
		}
		// The weekday lexicon counts from Monday, the day of week formula
		// from Sunday
		want := weekday.FromNumeral(*res.weekday + 1)
		dayOffset = base.Difference(want)
	}

	day := def.Day()
	if res.day != nil {
		day = *res.day
	}
	if day < 1 {
		return time.Time{}, newError(KindImpossibleTimestamp, "invalid day")
	}
	// A default day past the end of a shorter month clamps rather than
	// failing, so a January 30 default in February gives the 28th or 29th
	if day > daysInMonth {
		day = daysInMonth
	}

	hour := def.Hour()
	if res.hour != nil {
		hour = *res.hour
	}
	minute := def.Minute()
	if res.minute != nil {
		minute = *res.minute
	}
	second := def.Second()
	if res.second != nil {
		second = *res.second
	}
	nanosecond := def.Nanosecond()
	if res.nanosecond != nil {
		nanosecond = *res.nanosecond
	}

	if hour < 0 || hour > 23 {
		return time.Time{}, newError(KindImpossibleTimestamp, "invalid hour")
	}
	if minute < 0 || minute > 59 {
		return time.Time{}, newError(KindImpossibleTimestamp, "invalid minute")
	}
	if second < 0 || second > 59 {
		return time.Time{}, newError(KindImpossibleTimestamp, "invalid second")
	}
	if nanosecond < 0 || nanosecond > 999999999 {
		return time.Time{}, newError(KindImpossibleTimestamp, "invalid subsecond")
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, nanosecond, time.UTC)
	if dayOffset > 0 {
		t = t.AddDate(0, 0, dayOffset)
	}

	return t, nil
}

// buildLocation resolve the zone for a result. A nil location means no zone
// information was found; the timestamp is naive. Caller supplied tzinfos map
// zone names to seconds east of UTC.
func buildLocation(res *parseResult, tzinfos map[string]int) (*time.Location, error) {
	if res.tzoffset != nil {
		if res.tzname != "" {
			return time.FixedZone(res.tzname, *res.tzoffset), nil
		}
		return LocationFromOffset(*res.tzoffset), nil
	}

	switch res.tzname {
	case "", " ", ".", "-":
		return nil, nil
	}

	if offset, ok := tzinfos[res.tzname]; ok {
		return time.FixedZone(res.tzname, offset), nil
	}

	// A name was found but nothing maps it to an offset. The date itself is
	// still good, so return it as naive rather than failing the parse.
	return nil, nil
}
