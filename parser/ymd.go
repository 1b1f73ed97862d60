package parser

import (
	"strconv"

	"github.com/imarsman/naturaldate/gregorian"
)

// Labels a collected value can carry. Unlabelled values wait for resolve to
// decide what they were.
type ymdLabel int

const (
	labelNone ymdLabel = iota
	labelYear
	labelMonth
	labelDay
)

// ymd collects up to three candidate year/month/day values as they are found
// in the token stream. Values may arrive labelled (a month name, a four digit
// year) or bare; resolve sorts out the bare ones once everything is in.
type ymd struct {
	values           []int
	yearIdx          int
	monthIdx         int
	dayIdx           int
	centurySpecified bool
}

func newYMD() *ymd {
	return &ymd{yearIdx: -1, monthIdx: -1, dayIdx: -1}
}

func (y *ymd) len() int {
	return len(y.values)
}

// append collect a value. The token is the literal the value came from; a
// literal longer than two digits or a value over 100 can only be a year and
// pins the century.
func (y *ymd) append(value int, token string, label ymdLabel) error {
	if len(token) > 2 {
		if _, err := strconv.Atoi(token); err == nil {
			y.centurySpecified = true
			switch label {
			case labelNone, labelYear:
				label = labelYear
			default:
				return newError(KindImpossibleTimestamp, "value with a century can only be a year")
			}
		}
	}

	if value > 100 {
		y.centurySpecified = true
		switch label {
		case labelNone, labelYear:
			label = labelYear
		default:
			return newError(KindImpossibleTimestamp, "value over 100 can only be a year")
		}
	}

	switch label {
	case labelYear:
		if y.yearIdx >= 0 {
			return newError(KindYearMonthDay, "year already set")
		}
		y.yearIdx = len(y.values)
	case labelMonth:
		if y.monthIdx >= 0 {
			return newError(KindYearMonthDay, "month already set")
		}
		y.monthIdx = len(y.values)
	case labelDay:
		if y.dayIdx >= 0 {
			return newError(KindYearMonthDay, "day already set")
		}
		y.dayIdx = len(y.values)
	}
	y.values = append(y.values, value)

	return nil
}

// couldBeDay is the value a plausible day given what is known so far. With
// no month the whole 1 to 31 range is plausible; a known month narrows it,
// using year 2000 when no year has been seen.
func (y *ymd) couldBeDay(value int) bool {
	if y.dayIdx >= 0 {
		return false
	}
	if y.monthIdx < 0 {
		return value >= 1 && value <= 31
	}
	month := y.values[y.monthIdx]
	if month < 1 || month > 12 {
		return value >= 1 && value <= 31
	}
	year := 2000
	if y.yearIdx >= 0 {
		year = y.values[y.yearIdx]
	}
	return value >= 1 && value <= gregorian.DaysInMonth(year, month)
}

// resolve decide which collected value is the year, the month, and the day.
// Unset results come back as nil.
func (y *ymd) resolve(yearfirst, dayfirst bool) (year, month, day *int, err error) {
	labelled := 0
	if y.yearIdx >= 0 {
		labelled++
	}
	if y.monthIdx >= 0 {
		labelled++
	}
	if y.dayIdx >= 0 {
		labelled++
	}

	// When every value carries a label, or all but one of three do, the
	// answer is already known; the one gap is found by elimination.
	if (len(y.values) == labelled && labelled > 0) ||
		(len(y.values) == 3 && labelled == 2) {
		return y.resolveFromIndices()
	}

	at := func(i int) *int {
		v := y.values[i]
		return &v
	}

	switch {
	case len(y.values) > 3:
		return nil, nil, nil, newError(KindYearMonthDay, "more than three year, month, day values")

	case len(y.values) == 1 || (y.monthIdx >= 0 && len(y.values) == 2):
		// One value, or two values one of which is a named month
		var other int
		if y.monthIdx >= 0 {
			month = at(y.monthIdx)
			if len(y.values) == 2 {
				other = y.values[1-y.monthIdx]
			} else {
				other = y.values[y.monthIdx]
			}
		} else {
			other = y.values[0]
		}
		if len(y.values) > 1 || y.monthIdx < 0 {
			if other > 31 {
				year = &other
			} else {
				day = &other
			}
		}

	case len(y.values) == 2:
		// Two bare values
		switch {
		case y.values[0] > 31:
			year, month = at(0), at(1)
		case y.values[1] > 31:
			month, year = at(0), at(1)
		case dayfirst && y.values[1] <= 12:
			day, month = at(0), at(1)
		default:
			month, day = at(0), at(1)
		}

	case len(y.values) == 3:
		switch y.monthIdx {
		case 0:
			if y.values[1] > 31 {
				month, year, day = at(0), at(1), at(2)
			} else {
				month, day, year = at(0), at(1), at(2)
			}
		case 1:
			if y.values[0] > 31 || (yearfirst && y.values[2] <= 31) {
				year, month, day = at(0), at(1), at(2)
			} else {
				day, month, year = at(0), at(1), at(2)
			}
		case 2:
			// The ordering here looks backwards but matches long standing
			// behaviour for dates like "25 03 Sep"
			if y.values[1] > 31 {
				day, year, month = at(0), at(1), at(2)
			} else {
				year, day, month = at(0), at(1), at(2)
			}
		default:
			if y.values[0] > 31 || y.yearIdx == 0 ||
				(yearfirst && y.values[1] <= 12 && y.values[2] <= 31) {
				if dayfirst && y.values[2] <= 12 {
					year, day, month = at(0), at(1), at(2)
				} else {
					year, month, day = at(0), at(1), at(2)
				}
			} else if y.values[0] > 12 || (dayfirst && y.values[1] <= 12) {
				day, month, year = at(0), at(1), at(2)
			} else {
				month, day, year = at(0), at(1), at(2)
			}
		}
	}

	return year, month, day, nil
}

// resolveFromIndices extract by label position, inferring a single missing
// label and position by elimination.
func (y *ymd) resolveFromIndices() (year, month, day *int, err error) {
	yearIdx, monthIdx, dayIdx := y.yearIdx, y.monthIdx, y.dayIdx

	if len(y.values) == 3 {
		missing := 0 + 1 + 2
		if yearIdx >= 0 {
			missing -= yearIdx
		}
		if monthIdx >= 0 {
			missing -= monthIdx
		}
		if dayIdx >= 0 {
			missing -= dayIdx
		}
		switch {
		case yearIdx < 0:
			yearIdx = missing
		case monthIdx < 0:
			monthIdx = missing
		case dayIdx < 0:
			dayIdx = missing
		}
	}

	if yearIdx >= 0 {
		v := y.values[yearIdx]
		year = &v
	}
	if monthIdx >= 0 {
		v := y.values[monthIdx]
		month = &v
	}
	if dayIdx >= 0 {
		v := y.values[dayIdx]
		day = &v
	}

	return year, month, day, nil
}
