// Package isolex scans compact ISO-8601 timestamps with a DFA lexer. It
// handles the narrow, well-formed family of inputs (20060102T150405.999-0700
// and friends, with some tolerance for stray separators) much faster than the
// general token walk in the parser package, which remains the place for
// anything resembling natural language.
package isolex

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/imarsman/naturaldate/utility"
)

const (
	baseFormat   = "20060102T150405"
	zuluFormat   = "Z"
	offsetFormat = "-0700"
)

// Token classes for the scanner
const (
	tokDate int = iota // yyyymmdd
	tokTime            // hhmmss
	tokSubsecond       // .9 to .999999999
	tokZone            // +hhmm or -hhmm
	tokShortZone       // +hh or -hh
	tokZulu            // Z
)

// Components the pieces of a timestamp found during a scan, kept as the
// original digit strings for callers that want to inspect them.
type Components struct {
	Source     string // input as given
	Normalized string // input as handed to time.ParseInLocation
	Year       string
	Month      string
	Day        string
	Hour       string
	Minute     string
	Second     string
	Subsecond  string
	Zone       string
}

var lexer *lexmachine.Lexer

// Only for replacing punctuation in the date portion
var reYMDPunctuation = regexp.MustCompile(`^(\d{4})[\-\.\/]?(\d{2})[\-\.\/]?(\d{2})(.*)`)

func init() {
	lexer = newLexer()
}

func token(tokenType int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(tokenType, string(m.Bytes), m), nil
	}
}

func skip(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return nil, nil
}

func newLexer() *lexmachine.Lexer {
	l := lexmachine.NewLexer()
	// Assumes after first and second millennium
	l.Add([]byte(`[12]\d\d\d\d\d\d\d`), token(tokDate))
	l.Add([]byte(`\d\d\d\d\d\d`), token(tokTime))
	// A range of subsecond digit lengths are covered
	l.Add([]byte(`\.\d+`), token(tokSubsecond))
	l.Add([]byte(`[\-\+]\d\d\d\d`), token(tokZone))
	l.Add([]byte(`[\-\+]\d\d`), token(tokShortZone))
	l.Add([]byte(`[zZ]`), token(tokZulu))
	// Skip date/time separator and spaces
	l.Add([]byte(`[tT]`), skip)
	l.Add([]byte(` `), skip)

	err := l.CompileDFA()
	if err != nil {
		l = nil
	}
	return l
}

// normalize strip the punctuation the DFA does not want to see. Dashes and
// slashes in the date part and colons everywhere carry no information once
// the digit groups are fixed width.
func normalize(input string) string {
	if strings.Count(input, "-") > 1 || strings.Count(input, "/") > 1 || strings.Count(input, ".") > 1 {
		input = reYMDPunctuation.ReplaceAllString(input, "$1$2$3$4")
	}

	// Dashes may remain in a time portion, with or without a trailing
	// negative zone offset.
	//   e.g. 2021-01-02T00-00-00Z
	//        2021-01-02T00-00-00-04:00
	c := strings.Count(input, "-")
	if c == 2 || c == 3 {
		input = strings.Replace(input, "-", "", 2)
	}

	return strings.ReplaceAll(input, ":", "")
}

// Scan read an ISO-8601 timestamp and get the time plus its components. The
// location argument is used only when the input carries no zone information.
func Scan(input string, location *time.Location) (time.Time, Components, error) {
	var c Components
	c.Source = input

	if lexer == nil {
		return time.Time{}, Components{}, errors.New("scanner failed to compile")
	}

	normalized := normalize(input)

	scanner, err := lexer.Scanner([]byte(normalized))
	if err != nil {
		return time.Time{}, Components{}, errors.New("cannot scan " + input)
	}

	for tk, err, eof := scanner.Next(); !eof; tk, err, eof = scanner.Next() {
		if err != nil {
			return time.Time{}, Components{}, errors.New("cannot scan " + input)
		}
		match := tk.(*lexmachine.Token)

		switch match.Type {
		case tokDate:
			v := match.Value.(string)
			c.Year = v[0:4]
			c.Month = v[4:6]
			c.Day = v[6:8]
		case tokTime:
			v := match.Value.(string)
			c.Hour = v[0:2]
			c.Minute = v[2:4]
			c.Second = v[4:6]
		case tokSubsecond:
			c.Subsecond = match.Value.(string)
		case tokZone:
			v := match.Value.(string)
			c.Zone = v
			if v == "-0000" {
				c.Zone = "+0000"
			}
		case tokShortZone:
			// Zone with hours only. Pad the minutes.
			v := match.Value.(string)
			c.Zone = utility.BytesToString(v[0], v[1], v[2], '0', '0')
		case tokZulu:
			c.Zone = zuluFormat
		}
	}

	// Allow a bare date with no time and no zone. The location passed in
	// decides the zone in that case.
	if c.Zone == "" && c.Hour == "" {
		c.Hour, c.Minute, c.Second = "00", "00", "00"
	}

	if c.Year == "" || c.Hour == "" {
		return time.Time{}, Components{}, errors.New("cannot scan " + input)
	}

	str := c.Year + c.Month + c.Day + "T" + c.Hour + c.Minute + c.Second
	format := baseFormat
	if c.Subsecond != "" {
		str = str + c.Subsecond
		format = format + "." + strings.Repeat("9", len(c.Subsecond)-1)
	}
	if c.Zone != "" {
		str = str + c.Zone
		if c.Zone == zuluFormat {
			format = format + zuluFormat
		} else {
			format = format + offsetFormat
		}
	}
	c.Normalized = str

	// The location argument only applies when the input had no zone offset
	t, err := time.ParseInLocation(format, str, location)
	if err != nil {
		return time.Time{}, Components{}, errors.New("cannot scan " + input)
	}

	return t, c, nil
}
