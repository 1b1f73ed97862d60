package weekday

import (
	"testing"

	"github.com/matryer/is"
)

func TestDayOfWeekOf(t *testing.T) {
	is := is.New(t)

	d, err := DayOfWeekOf(2018, 6, 24)
	is.NoErr(err)
	is.Equal(d, Sunday)

	d, err = DayOfWeekOf(2003, 9, 25)
	is.NoErr(err)
	is.Equal(d, Thursday)

	// January and February borrow the prior year
	d, err = DayOfWeekOf(2000, 1, 1)
	is.NoErr(err)
	is.Equal(d, Saturday)

	d, err = DayOfWeekOf(2016, 2, 29)
	is.NoErr(err)
	is.Equal(d, Monday)

	_, err = DayOfWeekOf(2018, 13, 1)
	is.True(err != nil)
}

func TestDifference(t *testing.T) {
	is := is.New(t)

	is.Equal(Sunday.Difference(Sunday), 0)
	is.Equal(Sunday.Difference(Monday), 1)
	is.Equal(Sunday.Difference(Saturday), 6)
	is.Equal(Monday.Difference(Sunday), 6)
	is.Equal(Thursday.Difference(Wednesday), 6)

	// Going there and back is either nothing or a full week
	days := []DayOfWeek{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
	for _, a := range days {
		for _, b := range days {
			sum := a.Difference(b) + b.Difference(a)
			is.True(sum == 0 || sum == 7)
		}
	}
}

func TestFromNumeral(t *testing.T) {
	is := is.New(t)

	is.Equal(FromNumeral(0), Sunday)
	is.Equal(FromNumeral(7), Sunday)
	is.Equal(FromNumeral(8), Monday)
	is.Equal(FromNumeral(-1), Saturday)
}

func TestString(t *testing.T) {
	is := is.New(t)

	is.Equal(Wednesday.String(), "Wednesday")
}
