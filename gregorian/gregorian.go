package gregorian

// daysInMonth number of days in each month indexed by month number using zero
// padding
var daysInMonth = []int{
	0,
	31, // January
	28,
	31, // March
	30,
	31, // May
	30,
	31, // July
	31,
	30, // September
	31,
	30, // November
	31,
}

// IsLeap simply tests whether a given year is a leap year, using the Gregorian
// calendar algorithm.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth gives the number of days in a given month, according to the
// Gregorian calendar. Months outside of 1 through 12 get zero days.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeap(year) {
		return 29
	}
	return daysInMonth[month]
}

// DaysInYear gives the number of days in a given year, according to the
// Gregorian calendar.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}
