// Package parser turns free-form, human written timestamp strings such as
// "Thu, 25 Sep 2003 10:49:41 -0300" or "3rd of May 2001" into calendar
// timestamps. Input is split into tokens by the lex package and walked left
// to right, collecting year, month, and day candidates, clock values, and
// zone information, then resolved against a default timestamp for anything
// the input left out.
package parser

import (
	"time"

	"github.com/rickb777/plural"

	"github.com/imarsman/naturaldate/isolex"
)

// Options per-call parsing controls. The zero value asks for strict parsing
// with the parser's own policy flags, an epoch default, and zone resolution
// on.
type Options struct {
	// DayFirst override the ParserInfo policy for ambiguous numeric dates
	// when non-nil
	DayFirst *bool
	// YearFirst override the ParserInfo policy for ambiguous numeric triples
	// when non-nil
	YearFirst *bool
	// Fuzzy step over unknown tokens instead of failing
	Fuzzy bool
	// FuzzyWithTokens implies Fuzzy and returns the text that was stepped
	// over, with adjacent pieces joined
	FuzzyWithTokens bool
	// Default source for unset components. Epoch midnight when nil.
	Default *time.Time
	// IgnoreTZ skip zone resolution entirely and always return a naive time
	IgnoreTZ bool
	// TZInfos zone name to offset seconds east of UTC, consulted for names
	// the lexicon does not know
	TZInfos map[string]int
}

// Result a parsed timestamp. Time holds the parsed components in UTC; Loc is
// non-nil only when the input carried usable zone information. Skipped is
// only filled for FuzzyWithTokens.
type Result struct {
	Time    time.Time
	Loc     *time.Location
	Skipped []string
}

// In get the timestamp adjusted to its own zone when one was found, or the
// naive timestamp when not.
func (r Result) In() time.Time {
	if r.Loc == nil {
		return r.Time
	}
	y, m, d := r.Time.Date()
	h, mn, s := r.Time.Clock()
	return time.Date(y, m, d, h, mn, s, r.Time.Nanosecond(), r.Loc)
}

var defaultParser = New(NewParserInfo())

// Default the shared parser behind the package level Parse, built once with
// the default English lexicon.
func Default() *Parser {
	return defaultParser
}

// Parse a timestamp string with the default lexicon and policy. The returned
// location is nil when the input carried no zone information.
func Parse(timestr string) (time.Time, *time.Location, error) {
	res, err := defaultParser.Parse(timestr, Options{})
	if err != nil {
		return time.Time{}, nil, err
	}
	return res.Time, res.Loc, nil
}

// Parse a timestamp string under the given options
func (p *Parser) Parse(timestr string, opts Options) (Result, error) {
	dayfirst := p.info.Dayfirst
	if opts.DayFirst != nil {
		dayfirst = *opts.DayFirst
	}
	yearfirst := p.info.Yearfirst
	if opts.YearFirst != nil {
		yearfirst = *opts.YearFirst
	}
	fuzzy := opts.Fuzzy || opts.FuzzyWithTokens

	res, tokens, skippedIdxs, err := p.parseTokens(timestr, dayfirst, yearfirst, fuzzy)
	if err != nil {
		return Result{}, err
	}
	if res.empty() {
		return Result{}, newError(KindNoDate, "")
	}

	def := time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	if opts.Default != nil {
		def = *opts.Default
	}

	t, err := buildNaive(res, def)
	if err != nil {
		return Result{}, err
	}

	var loc *time.Location
	if !opts.IgnoreTZ {
		loc, err = buildLocation(res, opts.TZInfos)
		if err != nil {
			return Result{}, err
		}
	}

	var skipped []string
	if opts.FuzzyWithTokens {
		skipped = recombineSkipped(tokens, skippedIdxs)
	}

	return Result{Time: t, Loc: loc, Skipped: skipped}, nil
}

// ParseISO scan a compact ISO-8601 timestamp without running the token
// engine. Useful when inputs are known to be machine written. The location
// applies only when the input has no zone; nil means UTC.
func ParseISO(timestr string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	t, _, err := isolex.Scan(timestr, location)
	if err != nil {
		return time.Time{}, newError(KindUnrecognizedFormat, timestr)
	}
	return t, nil
}

// recombineSkipped join runs of adjacent skipped tokens back into the
// substrings they came from, preserving the original spacing.
func recombineSkipped(tokens []string, skippedIdxs []int) []string {
	var skipped []string
	for i, idx := range skippedIdxs {
		if i > 0 && idx-1 == skippedIdxs[i-1] {
			skipped[len(skipped)-1] += tokens[idx]
		} else {
			skipped = append(skipped, tokens[idx])
		}
	}
	return skipped
}

var skippedTokenNames = plural.FromZero("no tokens skipped", "%v token skipped", "%v tokens skipped")

// SkippedSummary describe the residue of a fuzzy parse in words
func SkippedSummary(skipped []string) string {
	return skippedTokenNames.FormatInt(len(skipped))
}
