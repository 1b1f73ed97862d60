// Package weekday provides day of week calculations for proleptic Gregorian
// dates using Schwerdtfeger's method, which needs no epoch day counting.
package weekday

import "errors"

// DayOfWeek a day of the week. The zero value is Sunday, matching the output
// of Schwerdtfeger's formula.
type DayOfWeek int

// Days of the week with Sunday as the zero value
const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = []string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// monthCode the month code e for Schwerdtfeger's method, indexed by month
// number with zero padding.
var monthCode = []int{0, 0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// centuryCode the century code f for Schwerdtfeger's method, indexed by the
// century modulo 4. Valid for the Gregorian calendar only.
var centuryCode = []int{0, 5, 3, 1}

// String get name for day of week
func (d DayOfWeek) String() string {
	return dayNames[FromNumeral(int(d))]
}

// FromNumeral get the day of week for a number. Numbers wrap modulo 7.
func FromNumeral(num int) DayOfWeek {
	return DayOfWeek(((num % 7) + 7) % 7)
}

// Difference get how many days forward from day d to the next occurrence of
// day other. Same day is a difference of zero.
func (d DayOfWeek) Difference(other DayOfWeek) int {
	diff := int(other) - int(d)
	if diff < 0 {
		diff += 7
	}
	return diff
}

// DayOfWeekOf get the day of the week for a Gregorian calendar date.
// https://en.wikipedia.org/wiki/Determination_of_the_day_of_the_week#Schwerdtfeger's_method
func DayOfWeekOf(year, month, day int) (DayOfWeek, error) {
	var c, g int
	switch {
	case month >= 3 && month <= 12:
		c = year / 100
		g = year - 100*c
	case month == 1 || month == 2:
		// January and February count as months 13 and 14 of the prior year
		c = (year - 1) / 100
		g = year - 1 - 100*c
	default:
		return Sunday, errors.New("invalid month")
	}

	e := monthCode[month]
	f := centuryCode[c%4]

	return FromNumeral(day + e + f + g + g/4), nil
}
