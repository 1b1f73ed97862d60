package parser

import (
	"strconv"
	"strings"

	"github.com/imarsman/naturaldate/lex"
)

// Parser walks the token stream for a timestamp string and fills in a
// parseResult. A Parser only holds its ParserInfo, so one Parser can serve
// any number of goroutines; all working state lives in each call.
type Parser struct {
	info *ParserInfo
}

// New get a parser for a ParserInfo. The info is used as given and must not
// be modified afterwards.
func New(info *ParserInfo) *Parser {
	return &Parser{info: info}
}

// Info get the ParserInfo the parser was built with
func (p *Parser) Info() *ParserInfo {
	return p.info
}

// parseTokens run the token walk over timestr. Returns the raw result, the
// token list, and the indices of tokens that were stepped over, for later
// fuzzy reassembly.
func (p *Parser) parseTokens(timestr string, dayfirst, yearfirst, fuzzy bool) (*parseResult, []string, []int, error) {
	info := p.info
	res := &parseResult{}
	y := newYMD()

	tokens := lex.Split(timestr)
	lenL := len(tokens)

	var skipped []int

	i := 0
	for i < lenL {
		token := tokens[i]

		if isNumericToken(token) {
			var err error
			i, err = p.parseNumeric(tokens, i, res, y, fuzzy)
			if err != nil {
				return nil, nil, nil, err
			}
		} else if idx, ok := info.WeekdayIndex(token); ok {
			res.weekday = intPtr(idx)
		} else if month, ok := info.MonthIndex(token); ok {
			if err := y.append(month, token, labelMonth); err != nil {
				return nil, nil, nil, err
			}
			if i+1 < lenL {
				if tokens[i+1] == "-" || tokens[i+1] == "/" {
					// Jan-01[-99]
					sep := tokens[i+1]
					if i+2 >= lenL {
						return nil, nil, nil, newError(KindUnrecognizedFormat, timestr)
					}
					if err := appendAsNumber(y, tokens[i+2]); err != nil {
						return nil, nil, nil, err
					}
					if i+3 < lenL && tokens[i+3] == sep {
						// Jan-01-99
						if i+4 >= lenL {
							return nil, nil, nil, newError(KindUnrecognizedFormat, timestr)
						}
						if err := appendAsNumber(y, tokens[i+4]); err != nil {
							return nil, nil, nil, err
						}
						i += 2
					}
					i += 2
				} else if i+4 < lenL && tokens[i+1] == " " && tokens[i+3] == " " &&
					info.PertainWord(tokens[i+2]) {
					// Jan of 01: the 01 is clearly a year
					if value, err := strconv.Atoi(tokens[i+4]); err == nil {
						year := info.ConvertYear(value, false)
						if err := y.append(year, strconv.Itoa(year), labelYear); err != nil {
							return nil, nil, nil, err
						}
					}
					i += 4
				}
			}
		} else if meridiem, ok := info.AMPMIndex(token); ok {
			valid, err := ampmValid(res, fuzzy)
			if err != nil {
				return nil, nil, nil, err
			}
			if valid {
				res.hour = intPtr(adjustAMPM(*res.hour, meridiem))
				res.ampm = intPtr(meridiem)
			} else if fuzzy {
				skipped = append(skipped, i)
			}
		} else if couldBeTZName(res.hour, res.tzname, res.tzoffset, info, token) {
			res.tzname = token
			if offset, ok := info.TZOffsetFor(token); ok {
				res.tzoffset = intPtr(offset)
			}

			// Something like GMT+3 means local time plus three equals GMT,
			// so the sign of the offset that follows must be inverted.
			if i+1 < lenL && (tokens[i+1] == "+" || tokens[i+1] == "-") {
				if tokens[i+1] == "+" {
					tokens[i+1] = "-"
				} else {
					tokens[i+1] = "+"
				}
				res.tzoffset = nil
				if info.IsUTCZone(res.tzname) {
					res.tzname = ""
				}
			}
		} else if res.hour != nil && (token == "+" || token == "-") {
			sign := 1
			if token == "-" {
				sign = -1
			}
			var err error
			i, err = p.parseOffset(tokens, i, res, sign)
			if err != nil {
				return nil, nil, nil, err
			}
		} else if !(info.JumpWord(token) || fuzzy) {
			return nil, nil, nil, newError(KindUnrecognizedToken, token)
		} else {
			skipped = append(skipped, i)
		}

		i++
	}

	year, month, day, err := y.resolve(yearfirst, dayfirst)
	if err != nil {
		return nil, nil, nil, err
	}
	res.centurySpecified = y.centurySpecified
	res.year, res.month, res.day = year, month, day

	info.validate(res)

	return res, tokens, skipped, nil
}

// appendAsNumber convert a plain numeric token and collect it unlabelled
func appendAsNumber(y *ymd, token string) error {
	n, err := parseTokenNumber(token)
	if err != nil {
		return err
	}
	return y.append(n.whole, token, labelNone)
}

// parseNumeric handle one numeric token. Returns the index of the last token
// consumed; the caller advances past it. The order of the checks matters and
// mirrors the behaviour of the dateutil family of parsers.
func (p *Parser) parseNumeric(tokens []string, idx int, res *parseResult, y *ymd, fuzzy bool) (int, error) {
	info := p.info
	lenL := len(tokens)
	token := tokens[idx]
	lenLi := len(token)

	n, err := parseTokenNumber(token)
	if err != nil {
		return 0, err
	}

	switch {
	case y.len() == 3 && (lenLi == 2 || lenLi == 4) && res.hour == nil &&
		(idx+1 >= lenL || (tokens[idx+1] != ":" && !isHMSWord(info, tokens[idx+1]))):
		// 19990101T23[59]: a complete date followed by a bare time
		hour, err := atoiStrict(token[:2])
		if err != nil {
			return 0, err
		}
		res.hour = intPtr(hour)
		if lenLi == 4 {
			minute, err := atoiStrict(token[2:])
			if err != nil {
				return 0, err
			}
			res.minute = intPtr(minute)
		}
		return idx, nil

	case lenLi == 6 || (lenLi > 6 && strings.IndexByte(token, '.') == 6):
		// YYMMDD or HHMMSS[.ss]
		if y.len() == 0 && !strings.Contains(token, ".") {
			for _, part := range []string{token[:2], token[2:4], token[4:6]} {
				if err := appendAsNumber(y, part); err != nil {
					return 0, err
				}
			}
		} else {
			hour, err := atoiStrict(token[:2])
			if err != nil {
				return 0, err
			}
			minute, err := atoiStrict(token[2:4])
			if err != nil {
				return 0, err
			}
			second, nanos, err := parsems(token[4:])
			if err != nil {
				return 0, err
			}
			res.hour = intPtr(hour)
			res.minute = intPtr(minute)
			res.second = intPtr(second)
			res.nanosecond = intPtr(nanos)
		}
		return idx, nil

	case lenLi == 8 || lenLi == 12 || lenLi == 14:
		// YYYYMMDD[HHMM[SS]]
		year, err := atoiStrict(token[:4])
		if err != nil {
			return 0, err
		}
		if err := y.append(year, token[:4], labelYear); err != nil {
			return 0, err
		}
		for _, part := range []string{token[4:6], token[6:8]} {
			if err := appendAsNumber(y, part); err != nil {
				return 0, err
			}
		}
		if lenLi > 8 {
			hour, err := atoiStrict(token[8:10])
			if err != nil {
				return 0, err
			}
			minute, err := atoiStrict(token[10:12])
			if err != nil {
				return 0, err
			}
			res.hour = intPtr(hour)
			res.minute = intPtr(minute)
			if lenLi > 12 {
				second, err := atoiStrict(token[12:])
				if err != nil {
					return 0, err
				}
				res.second = intPtr(second)
			}
		}
		return idx, nil
	}

	// HH[ ]h or MM[ ]m or SS[.ss][ ]s
	if hmsIdx, ok := findHMSIdx(tokens, idx, info); ok {
		newIdx, unit := parseHMSMarker(tokens, idx, info, hmsIdx)
		if err := assignHMS(res, n, unit); err != nil {
			return 0, err
		}
		return newIdx, nil
	}

	switch {
	case idx+2 < lenL && tokens[idx+1] == ":":
		// HH:MM[:SS[.ss]]
		res.hour = intPtr(n.whole)
		mn, err := parseTokenNumber(tokens[idx+2])
		if err != nil {
			return 0, err
		}
		if err := assignMinSec(res, mn); err != nil {
			return 0, err
		}
		if idx+4 < lenL && tokens[idx+3] == ":" {
			second, nanos, err := parsems(tokens[idx+4])
			if err != nil {
				return 0, err
			}
			res.second = intPtr(second)
			res.nanosecond = intPtr(nanos)
			return idx + 4, nil
		}
		return idx + 2, nil

	case idx+1 < lenL && (tokens[idx+1] == "-" || tokens[idx+1] == "/" || tokens[idx+1] == "."):
		// A separated date such as 01-01[-01] or 01-Jan[-01]
		sep := tokens[idx+1]
		if err := y.append(n.whole, token, labelNone); err != nil {
			return 0, err
		}

		if idx+2 < lenL && !info.JumpWord(tokens[idx+2]) {
			if isNumericToken(tokens[idx+2]) {
				if err := appendAsNumber(y, tokens[idx+2]); err != nil {
					return 0, err
				}
			} else if month, ok := info.MonthIndex(tokens[idx+2]); ok {
				if err := y.append(month, tokens[idx+2], labelMonth); err != nil {
					return 0, err
				}
			} else {
				return 0, newError(KindUnrecognizedFormat, tokens[idx+2])
			}

			idx++

			if idx+2 < lenL && tokens[idx+2] == sep {
				// Three members
				if idx+3 >= lenL {
					return 0, newError(KindUnrecognizedFormat, token)
				}
				if month, ok := info.MonthIndex(tokens[idx+3]); ok {
					if err := y.append(month, tokens[idx+3], labelMonth); err != nil {
						return 0, err
					}
				} else if err := appendAsNumber(y, tokens[idx+3]); err != nil {
					return 0, err
				}
				idx += 2
			}
		}
		return idx + 1, nil

	case idx+1 >= lenL || info.JumpWord(tokens[idx+1]):
		// Number at the end of the stream or followed by filler
		if idx+2 < lenL {
			if meridiem, ok := info.AMPMIndex(tokens[idx+2]); ok {
				// 12 am
				res.hour = intPtr(adjustAMPM(n.whole, meridiem))
				return idx + 2, nil
			}
		}
		// Year, month, or day
		if err := y.append(n.whole, token, labelNone); err != nil {
			return 0, err
		}
		return idx + 1, nil
	}

	if idx+1 < lenL {
		if meridiem, ok := info.AMPMIndex(tokens[idx+1]); ok && n.whole >= 0 && n.whole < 24 {
			// 12am
			res.hour = intPtr(adjustAMPM(n.whole, meridiem))
			return idx + 1, nil
		}
	}

	if y.couldBeDay(n.whole) {
		if err := y.append(n.whole, token, labelNone); err != nil {
			return 0, err
		}
		return idx, nil
	}

	if !fuzzy {
		return 0, newError(KindUnrecognizedFormat, token)
	}
	return idx, nil
}

// parseOffset handle a signed zone offset once an hour is known. Accepts
// -0300, -03:00, and -03 forms; anything else is unsupported.
func (p *Parser) parseOffset(tokens []string, idx int, res *parseResult, sign int) (int, error) {
	info := p.info
	lenL := len(tokens)

	if idx+1 >= lenL {
		return 0, newError(KindTimezoneUnsupported, tokens[idx])
	}

	next := tokens[idx+1]
	var hours, minutes int

	switch {
	case len(next) == 4 && isDigits(next):
		// -0300
		hours = mustAtoi(next[:2])
		minutes = mustAtoi(next[2:])
	case idx+2 < lenL && tokens[idx+2] == ":":
		// -03:00 with strict sizes on both parts
		if idx+3 >= lenL || len(next) > 2 || len(tokens[idx+3]) > 2 ||
			!isDigits(next) || !isDigits(tokens[idx+3]) {
			return 0, newError(KindTimezoneUnsupported, next)
		}
		hours = mustAtoi(next)
		minutes = mustAtoi(tokens[idx+3])
		idx += 2
	case len(next) <= 2 && isDigits(next):
		// -[0]3
		hours = mustAtoi(next)
		minutes = 0
	default:
		return 0, newError(KindTimezoneUnsupported, next)
	}

	offset, err := offsetSeconds(sign, hours, minutes)
	if err != nil {
		return 0, err
	}
	res.tzoffset = &offset

	// A name may trail the offset between parentheses, as in -0300 (BRST)
	if idx+5 < lenL && info.JumpWord(tokens[idx+2]) &&
		tokens[idx+3] == "(" && tokens[idx+5] == ")" &&
		len(tokens[idx+4]) >= 3 &&
		couldBeTZName(res.hour, res.tzname, nil, info, tokens[idx+4]) {
		res.tzname = tokens[idx+4]
		idx += 4
	}

	return idx + 1, nil
}

// couldBeTZName a zone name can only follow a time, must be short, and must
// be upper case ASCII unless it is a known UTC alias.
func couldBeTZName(hour *int, tzname string, tzoffset *int, info *ParserInfo, token string) bool {
	if hour == nil || tzname != "" || tzoffset != nil {
		return false
	}
	if len(token) > 5 || len(token) == 0 {
		return false
	}
	if info.IsUTCZone(token) {
		return true
	}
	for _, r := range token {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// ampmValid whether a meridiem marker can apply right now. Fuzzy parsing
// quietly drops markers that cannot; strict parsing fails.
func ampmValid(res *parseResult, fuzzy bool) (bool, error) {
	if fuzzy && res.ampm != nil {
		return false, nil
	}
	if res.hour == nil {
		if fuzzy {
			return false, nil
		}
		return false, newError(KindAmPmWithoutHour, "no hour specified with am/pm marker")
	}
	if *res.hour < 0 || *res.hour > 12 {
		if fuzzy {
			return false, nil
		}
		return false, newError(KindImpossibleTimestamp, "invalid hour for 12-hour clock")
	}
	return true, nil
}

// adjustAMPM move an hour on the 12-hour clock to the 24-hour clock
func adjustAMPM(hour, meridiem int) int {
	if hour < 12 && meridiem == 1 {
		return hour + 12
	}
	if hour == 12 && meridiem == 0 {
		return 0
	}
	return hour
}

func isHMSWord(info *ParserInfo, token string) bool {
	_, ok := info.HMSIndex(token)
	return ok
}

// findHMSIdx look around a number for an hour/minute/second unit word. A
// marker may follow directly or across a space, or precede the number; for
// the final token a marker two back across a space also counts.
func findHMSIdx(tokens []string, idx int, info *ParserInfo) (int, bool) {
	lenL := len(tokens)

	if idx+1 < lenL && isHMSWord(info, tokens[idx+1]) {
		return idx + 1, true
	}
	if idx+2 < lenL && tokens[idx+1] == " " && isHMSWord(info, tokens[idx+2]) {
		return idx + 2, true
	}
	if idx > 0 && isHMSWord(info, tokens[idx-1]) {
		return idx - 1, true
	}
	if idx > 1 && idx == lenL-1 && tokens[idx-1] == " " && isHMSWord(info, tokens[idx-2]) {
		return idx - 2, true
	}
	return 0, false
}

// parseHMSMarker get the unit for a number given its marker position. A
// marker ahead of the number names the number's own unit and is consumed; a
// marker behind it means the number belongs to the next smaller unit.
func parseHMSMarker(tokens []string, idx int, info *ParserInfo, hmsIdx int) (int, int) {
	unit, _ := info.HMSIndex(tokens[hmsIdx])
	if hmsIdx > idx {
		return hmsIdx, unit
	}
	return idx, unit + 1
}

// assignHMS write a number into the result under an hour/minute/second unit,
// spilling any fraction into the next smaller unit.
func assignHMS(res *parseResult, n tokenNumber, unit int) error {
	switch unit {
	case 0:
		res.hour = intPtr(n.whole)
		if n.hasFraction() {
			minutes, err := n.fractionScaled(60)
			if err != nil {
				return err
			}
			res.minute = intPtr(minutes)
		}
	case 1:
		return assignMinSec(res, n)
	case 2:
		second, nanos, err := parsems(n.repr)
		if err != nil {
			return err
		}
		res.second = intPtr(second)
		res.nanosecond = intPtr(nanos)
	}
	return nil
}

// assignMinSec write a minute value, spilling a fraction into seconds
func assignMinSec(res *parseResult, n tokenNumber) error {
	res.minute = intPtr(n.whole)
	if n.hasFraction() {
		seconds, err := n.fractionScaled(60)
		if err != nil {
			return err
		}
		res.second = intPtr(seconds)
	}
	return nil
}

// isDigits every byte is an ASCII digit
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// atoiStrict convert digits with conversion failure mapped to the parse
// error taxonomy
func atoiStrict(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, newError(KindInvalidNumeric, s)
	}
	return v, nil
}

// mustAtoi convert a string already checked to hold only digits
func mustAtoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
