package lex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSplitSequences check exact token streams for inputs that exercise the
// splitter and the decimal handling
func TestSplitSequences(t *testing.T) {
	cases := []struct {
		input  string
		tokens []string
	}{
		{"Sep.2009.24", []string{"Sep", ".", "2009", ".", "24"}},
		{"Sep.2009;24", []string{"Sep", ".", "2009", ";", "24"}},
		{"Sep.2009,24", []string{"Sep", ".", "2009", ",", "24"}},
		{"24 Sep., 2009", []string{"24", " ", "Sep", ".", ",", " ", "2009"}},
		{"2009.24", []string{"2009.24"}},
		{"2009.24.09", []string{"2009", ".", "24", ".", "09"}},
		{"2018.5.15", []string{"2018", ".", "5", ".", "15"}},
		{"May 5, 2018", []string{"May", " ", "5", ",", " ", "2018"}},
		{"Mar. 5, 2018", []string{"Mar", ".", " ", "5", ",", " ", "2018"}},
		{"19990101T23", []string{"19990101", "T", "23"}},
		{"19990101T2359", []string{"19990101", "T", "2359"}},
		{"September of 2003,", []string{"September", " ", "of", " ", "2003", ","}},
		{"1996.July.10", []string{"1996", ".", "July", ".", "10"}},
		{"13NOV2017", []string{"13", "NOV", "2017"}},
	}

	for _, tc := range cases {
		tokens := Split(tc.input)
		assert.Equal(t, tc.tokens, tokens, "tokens for %q", tc.input)
	}
}

// TestCommaDecimal a comma between digits is a decimal mark and becomes a
// period; a comma at a number boundary stays a separator
func TestCommaDecimal(t *testing.T) {
	assert.Equal(t,
		[]string{"10", ":", "49", ":", "41.502"},
		Split("10:49:41,502"))

	// A trailing comma splits off and stays a comma
	assert.Equal(t,
		[]string{"24", ",", " ", "50", ",", " ", "ABC"},
		Split("24, 50, ABC"))
}

// TestRoundTrip joining the tokens gives back the input when it has no
// comma decimals and only plain spaces
func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"Thu Sep 25 10:36:28 2003",
		"Thu, 25 Sep 2003 10:49:41 -0300",
		"2003-09-25T10:49:41.5-03:00",
		"  July   4 ,  1976   12:01:02   am  ",
		"1996.07.10 AD at 15:08:56 PDT",
		"Jan 1 1999 11:23:34.578",
		"0:00PM, PST",
		"13NOV2017",
		"3rd of May 2001",
		"20080227T21:26:01.123456789",
		"GMT+3",
		"(BRST)",
	}

	for _, input := range inputs {
		tokens := Split(input)
		assert.Equal(t, input, strings.Join(tokens, ""), "round trip for %q", input)
		for _, token := range tokens {
			assert.NotEmpty(t, token, "token in %q", input)
		}
	}
}

// TestIterator Next drains split pieces before moving on and reports the end
// of input
func TestIterator(t *testing.T) {
	tok := New("Sep.2009.24")

	var tokens []string
	for {
		token, ok := tok.Next()
		if !ok {
			break
		}
		tokens = append(tokens, token)
	}
	assert.Equal(t, []string{"Sep", ".", "2009", ".", "24"}, tokens)

	_, ok := tok.Next()
	assert.False(t, ok)
}

func TestEmptyInput(t *testing.T) {
	assert.Nil(t, Split(""))
}
