package parser

import (
	"strings"
	"time"
)

// ParserInfo the lexicon and policy a Parser consults while walking tokens.
// All lexicon keys are stored lowercased and probes are lowercased on the way
// in. A ParserInfo must not be changed once a Parser is using it; shared
// read-only use from many goroutines is fine.
type ParserInfo struct {
	// Jump words and separators the parser may step over
	Jump map[string]bool
	// Weekday names to index, 0 is Monday
	Weekday map[string]int
	// Months names to index, 0 is January
	Months map[string]int
	// HMS hour/minute/second unit words to index, 0 is hours
	HMS map[string]int
	// AMPM meridiem words to index, 0 is am
	AMPM map[string]int
	// UTCZone zone names treated as UTC
	UTCZone map[string]bool
	// Pertain words that tie a month to a year, as in "Jan of 03"
	Pertain map[string]bool
	// TZOffset zone name to offset in seconds east of UTC
	TZOffset map[string]int

	// Dayfirst treat the first value of an ambiguous pair as the day
	Dayfirst bool
	// Yearfirst treat the first value of an ambiguous triple as the year
	Yearfirst bool

	// Year and Century anchor two digit year conversion. They are snapshots:
	// a long lived ParserInfo keeps the window it was built with.
	Year    int
	Century int
}

func wordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[strings.ToLower(w)] = true
	}
	return m
}

func wordTable(groups ...[]string) map[string]int {
	m := make(map[string]int)
	for i, group := range groups {
		for _, w := range group {
			m[strings.ToLower(w)] = i
		}
	}
	return m
}

// NewParserInfo get a ParserInfo with the default English lexicon, the
// current year as the two digit pivot anchor, and both policy flags off.
func NewParserInfo() *ParserInfo {
	year := time.Now().Year()

	return &ParserInfo{
		Jump: wordSet(
			" ", ".", ",", ";", "-", "/", "'",
			"at", "on", "and", "ad", "m", "t", "of",
			"st", "nd", "rd", "th",
		),
		Weekday: wordTable(
			[]string{"Mon", "Monday"},
			[]string{"Tue", "Tuesday"},
			[]string{"Wed", "Wednesday"},
			[]string{"Thu", "Thursday"},
			[]string{"Fri", "Friday"},
			[]string{"Sat", "Saturday"},
			[]string{"Sun", "Sunday"},
		),
		Months: wordTable(
			[]string{"Jan", "January"},
			[]string{"Feb", "February"},
			[]string{"Mar", "March"},
			[]string{"Apr", "April"},
			[]string{"May"},
			[]string{"Jun", "June"},
			[]string{"Jul", "July"},
			[]string{"Aug", "August"},
			[]string{"Sep", "Sept", "September"},
			[]string{"Oct", "October"},
			[]string{"Nov", "November"},
			[]string{"Dec", "December"},
		),
		HMS: wordTable(
			[]string{"h", "hour", "hours"},
			[]string{"m", "minute", "minutes"},
			[]string{"s", "second", "seconds"},
		),
		AMPM: wordTable(
			[]string{"am", "a"},
			[]string{"pm", "p"},
		),
		UTCZone: wordSet("UTC", "GMT", "Z", "z"),
		Pertain: wordSet("of"),
		TZOffset: map[string]int{},

		Year:    year,
		Century: year / 100 * 100,
	}
}

// JumpWord is the token ignorable filler
func (info *ParserInfo) JumpWord(token string) bool {
	return info.Jump[strings.ToLower(token)]
}

// WeekdayIndex get weekday index for a token, 0 is Monday
func (info *ParserInfo) WeekdayIndex(token string) (int, bool) {
	idx, ok := info.Weekday[strings.ToLower(token)]
	return idx, ok
}

// MonthIndex get month number for a token, 1 through 12
func (info *ParserInfo) MonthIndex(token string) (int, bool) {
	idx, ok := info.Months[strings.ToLower(token)]
	if !ok {
		return 0, false
	}
	return idx + 1, true
}

// HMSIndex get unit for a token, 0 hour, 1 minute, 2 second
func (info *ParserInfo) HMSIndex(token string) (int, bool) {
	idx, ok := info.HMS[strings.ToLower(token)]
	return idx, ok
}

// AMPMIndex get meridiem for a token, 0 am, 1 pm
func (info *ParserInfo) AMPMIndex(token string) (int, bool) {
	idx, ok := info.AMPM[strings.ToLower(token)]
	return idx, ok
}

// IsUTCZone is the token a name for UTC
func (info *ParserInfo) IsUTCZone(token string) bool {
	return info.UTCZone[strings.ToLower(token)]
}

// PertainWord is the token a pertain word such as "of"
func (info *ParserInfo) PertainWord(token string) bool {
	return info.Pertain[strings.ToLower(token)]
}

// TZOffsetFor get the offset in seconds east of UTC for a zone name. UTC
// aliases always resolve to zero.
func (info *ParserInfo) TZOffsetFor(name string) (int, bool) {
	if info.IsUTCZone(name) {
		return 0, true
	}
	offset, ok := info.TZOffset[strings.ToLower(name)]
	return offset, ok
}

// ConvertYear pivot a one or two digit year into the window from 50 years
// before to 50 years after the anchor year. Years given with a century are
// returned unchanged.
func (info *ParserInfo) ConvertYear(year int, centurySpecified bool) int {
	if year < 100 && !centurySpecified {
		year += info.Century
		if year >= info.Year+50 {
			year -= 100
		} else if year < info.Year-50 {
			year += 100
		}
	}
	return year
}

// validate normalise a finished result in place. The year is pivoted and
// zone names that mean UTC force the offset to zero.
func (info *ParserInfo) validate(res *parseResult) {
	if res.year != nil {
		year := info.ConvertYear(*res.year, res.centurySpecified)
		res.year = &year
	}

	if (res.tzoffset != nil && *res.tzoffset == 0 && res.tzname == "") ||
		res.tzname == "Z" || res.tzname == "z" {
		res.tzname = "UTC"
		zero := 0
		res.tzoffset = &zero
	} else if res.tzoffset != nil && *res.tzoffset != 0 &&
		res.tzname != "" && info.IsUTCZone(res.tzname) {
		zero := 0
		res.tzoffset = &zero
	}
}
