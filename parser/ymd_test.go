package parser

import (
	"testing"

	"github.com/matryer/is"
)

func resolved(t *testing.T, y *ymd, yearfirst, dayfirst bool) (int, int, int) {
	t.Helper()
	is := is.New(t)

	year, month, day, err := y.resolve(yearfirst, dayfirst)
	is.NoErr(err)

	get := func(v *int) int {
		if v == nil {
			return 0
		}
		return *v
	}
	return get(year), get(month), get(day)
}

func TestAppendLabels(t *testing.T) {
	is := is.New(t)

	y := newYMD()
	// A four digit literal can only be a year and pins the century
	is.NoErr(y.append(1999, "1999", labelNone))
	is.True(y.centurySpecified)
	is.Equal(y.yearIdx, 0)

	// A second year is a conflict
	err := y.append(2000, "2000", labelYear)
	is.True(err != nil)
	kind, ok := ErrorKind(err)
	is.True(ok)
	is.Equal(kind, KindYearMonthDay)

	// A value over 100 cannot keep a month label
	y = newYMD()
	err = y.append(150, "150", labelMonth)
	is.True(err != nil)
	kind, _ = ErrorKind(err)
	is.Equal(kind, KindImpossibleTimestamp)
}

func TestCouldBeDay(t *testing.T) {
	is := is.New(t)

	y := newYMD()
	is.True(y.couldBeDay(31))
	is.True(!y.couldBeDay(0))
	is.True(!y.couldBeDay(32))

	// With a month known the range narrows; no year means year 2000
	is.NoErr(y.append(2, "Feb", labelMonth))
	is.True(y.couldBeDay(29))
	is.True(!y.couldBeDay(30))

	// A known non leap year narrows February further
	is.NoErr(y.append(2003, "2003", labelNone))
	is.True(!y.couldBeDay(29))
	is.True(y.couldBeDay(28))

	// Once a day is present nothing else can be one
	is.NoErr(y.append(15, "15", labelDay))
	is.True(!y.couldBeDay(1))
}

func TestResolvePairs(t *testing.T) {
	is := is.New(t)

	// Month name plus small number: the number is the day
	y := newYMD()
	is.NoErr(y.append(9, "Sep", labelMonth))
	is.NoErr(y.append(3, "03", labelNone))
	year, month, day := resolved(t, y, false, false)
	is.Equal(year, 0)
	is.Equal(month, 9)
	is.Equal(day, 3)

	// Month name plus large number: the number is the year
	y = newYMD()
	is.NoErr(y.append(9, "Sep", labelMonth))
	is.NoErr(y.append(45, "45", labelNone))
	year, month, day = resolved(t, y, false, false)
	is.Equal(year, 45)
	is.Equal(month, 9)
	is.Equal(day, 0)

	// Two bare values obey dayfirst
	y = newYMD()
	is.NoErr(y.append(10, "10", labelNone))
	is.NoErr(y.append(9, "09", labelNone))
	_, month, day = resolved(t, y, false, false)
	is.Equal(month, 10)
	is.Equal(day, 9)

	y = newYMD()
	is.NoErr(y.append(10, "10", labelNone))
	is.NoErr(y.append(9, "09", labelNone))
	_, month, day = resolved(t, y, false, true)
	is.Equal(month, 9)
	is.Equal(day, 10)
}

func TestResolveTriples(t *testing.T) {
	is := is.New(t)

	build := func(a, b, c int, labels ...ymdLabel) *ymd {
		y := newYMD()
		values := []int{a, b, c}
		for i, v := range values {
			label := labelNone
			if i < len(labels) {
				label = labels[i]
			}
			is.NoErr(y.append(v, "", label))
		}
		return y
	}

	// Bare triples follow month-day-year unless something forces otherwise
	year, month, day := resolved(t, build(10, 9, 3), false, false)
	is.Equal(year, 3)
	is.Equal(month, 10)
	is.Equal(day, 9)

	year, month, day = resolved(t, build(10, 9, 3), false, true)
	is.Equal(year, 3)
	is.Equal(month, 9)
	is.Equal(day, 10)

	year, month, day = resolved(t, build(10, 9, 3), true, false)
	is.Equal(year, 10)
	is.Equal(month, 9)
	is.Equal(day, 3)

	// With both flags the year leads and the day comes before the month
	year, month, day = resolved(t, build(10, 9, 3), true, true)
	is.Equal(year, 10)
	is.Equal(month, 3)
	is.Equal(day, 9)

	// A large first value is a year no matter what
	year, month, day = resolved(t, build(99, 1, 2), false, false)
	is.Equal(year, 99)
	is.Equal(month, 1)
	is.Equal(day, 2)

	// Month name in the last position keeps its historic ordering
	year, month, day = resolved(t, build(25, 3, 9, labelNone, labelNone, labelMonth), false, false)
	is.Equal(year, 25)
	is.Equal(month, 9)
	is.Equal(day, 3)

	year, month, day = resolved(t, build(3, 25, 9, labelNone, labelNone, labelMonth), false, false)
	is.Equal(year, 3)
	is.Equal(month, 9)
	is.Equal(day, 25)

	// Month name first with a large middle value
	year, month, day = resolved(t, build(9, 45, 25, labelMonth), false, false)
	is.Equal(year, 45)
	is.Equal(month, 9)
	is.Equal(day, 25)
}

func TestResolveByElimination(t *testing.T) {
	is := is.New(t)

	// Two of three labelled: the third slot is found by elimination
	y := newYMD()
	is.NoErr(y.append(9, "Sep", labelMonth))
	is.NoErr(y.append(25, "25", labelNone))
	is.NoErr(y.append(2003, "2003", labelNone)) // labelled year via century

	year, month, day := resolved(t, y, false, false)
	is.Equal(year, 2003)
	is.Equal(month, 9)
	is.Equal(day, 25)
}

func TestResolveTooMany(t *testing.T) {
	is := is.New(t)

	y := newYMD()
	for _, v := range []int{1, 2, 3, 4} {
		is.NoErr(y.append(v, "", labelNone))
	}
	_, _, _, err := y.resolve(false, false)
	is.True(err != nil)
	kind, _ := ErrorKind(err)
	is.Equal(kind, KindYearMonthDay)
}
