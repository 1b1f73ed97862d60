package gregorian

import (
	"testing"

	"github.com/matryer/is"
)

func TestIsLeap(t *testing.T) {
	is := is.New(t)

	is.True(IsLeap(2000))
	is.True(IsLeap(2004))
	is.True(IsLeap(1996))
	is.True(!IsLeap(1900))
	is.True(!IsLeap(2003))
	is.True(!IsLeap(2100))
}

func TestDaysInMonth(t *testing.T) {
	is := is.New(t)

	is.Equal(DaysInMonth(2003, 9), 30)
	is.Equal(DaysInMonth(2003, 1), 31)
	is.Equal(DaysInMonth(2003, 2), 28)
	is.Equal(DaysInMonth(2004, 2), 29)
	is.Equal(DaysInMonth(2000, 2), 29)
	is.Equal(DaysInMonth(1900, 2), 28)

	// Out of range months have no days
	is.Equal(DaysInMonth(2003, 0), 0)
	is.Equal(DaysInMonth(2003, 13), 0)
}

func TestDaysInYear(t *testing.T) {
	is := is.New(t)

	is.Equal(DaysInYear(2003), 365)
	is.Equal(DaysInYear(2004), 366)
}
