// Package lex splits free-form timestamp strings into tokens for the parser.
// The split is lossless. Joining the tokens for an input in order gives back
// the input, with two normalisations: every whitespace character becomes a
// single ASCII space, and a comma acting as a decimal mark becomes a period.
package lex

import (
	"strings"
	"unicode"

	"github.com/imarsman/naturaldate/utility"
)

// Scanner states. Scanning starts with no section active and moves between
// sections as letter, digit, and decimal mark runs are consumed.
const (
	emptySection          int = iota // no token content yet
	alphaSection                     // letters
	alphaDecimalSection              // letters containing a period
	numericSection                   // digits
	numericDecimalSection            // digits containing a decimal mark
)

// Tokenizer an iterator over the tokens of a single input string. Not safe
// for concurrent use and not restartable. Use New and call Next until the
// second return value is false.
type Tokenizer struct {
	input   []rune
	pos     int
	pending []string // split pieces waiting to be emitted
}

// New get a tokenizer for an input string
func New(input string) *Tokenizer {
	return &Tokenizer{input: []rune(input)}
}

// Split get all tokens for an input string
func Split(input string) []string {
	t := New(input)
	var tokens []string
	for {
		token, ok := t.Next()
		if ok == false {
			break
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// Next get the next token. The second return value is false once the input is
// exhausted. Tokens are never empty.
//
// Can't inline due to complexity but is only called through iteration anyway.
func (t *Tokenizer) Next() (string, bool) {
	// Drain any pieces left over from splitting a mixed token before
	// consuming more input.
	if len(t.pending) > 0 {
		token := t.pending[0]
		t.pending = t.pending[1:]
		return token, true
	}
	if t.pos >= len(t.input) {
		return "", false
	}

	var tokenRunes = make([]rune, 0, 10) // runes for token being built
	var seenLetters bool = false         // any letter anywhere in token
	var state int = emptySection         // current scanner section

	// Each character either joins the current token, ends it, or in the
	// empty section is a complete token by itself. A character that ends a
	// token is pushed back so the next call starts with it. One character of
	// pushback is all the scan ever needs.
scan:
	for t.pos < len(t.input) {
		r := t.input[t.pos]
		t.pos++

		switch state {
		case emptySection:
			if unicode.IsDigit(r) {
				state = numericSection
				tokenRunes = append(tokenRunes, r)
			} else if unicode.IsLetter(r) {
				state = alphaSection
				seenLetters = true
				tokenRunes = append(tokenRunes, r)
			} else if unicode.IsSpace(r) {
				// All whitespace is normalised to a single space
				tokenRunes = append(tokenRunes, ' ')
				break scan
			} else {
				tokenRunes = append(tokenRunes, r)
				break scan
			}
		case alphaSection:
			if unicode.IsLetter(r) {
				tokenRunes = append(tokenRunes, r)
			} else if r == '.' {
				state = alphaDecimalSection
				tokenRunes = append(tokenRunes, r)
			} else {
				t.pos--
				break scan
			}
		case alphaDecimalSection:
			if r == '.' || unicode.IsLetter(r) {
				tokenRunes = append(tokenRunes, r)
			} else if unicode.IsDigit(r) && tokenRunes[len(tokenRunes)-1] == '.' {
				state = numericDecimalSection
				tokenRunes = append(tokenRunes, r)
			} else {
				t.pos--
				break scan
			}
		case numericSection:
			if unicode.IsDigit(r) {
				tokenRunes = append(tokenRunes, r)
			} else if r == '.' || (r == ',' && len(tokenRunes) >= 2) {
				state = numericDecimalSection
				tokenRunes = append(tokenRunes, r)
			} else {
				t.pos--
				break scan
			}
		case numericDecimalSection:
			if r == '.' || unicode.IsDigit(r) {
				tokenRunes = append(tokenRunes, r)
			} else if unicode.IsLetter(r) && tokenRunes[len(tokenRunes)-1] == '.' {
				state = alphaDecimalSection
				seenLetters = true
				tokenRunes = append(tokenRunes, r)
			} else {
				t.pos--
				break scan
			}
		}
	}

	var dotCount int = 0
	for _, r := range tokenRunes {
		if r == '.' {
			dotCount++
		}
	}
	last := tokenRunes[len(tokenRunes)-1]
	needsSplit := seenLetters || dotCount > 1 || last == '.' || last == ','

	token := utility.RunesToString(tokenRunes...)

	// A token that ends in a decimal section and mixes letters and digits,
	// carries more than one period, or ends on a decimal mark is really
	// several tokens that the scan could not separate. Break it apart and
	// queue the remainder.
	var tokens []string
	switch state {
	case alphaDecimalSection:
		if needsSplit {
			tokens = decimalSplit(token, false)
		} else {
			tokens = []string{token}
		}
	case numericDecimalSection:
		if needsSplit {
			tokens = decimalSplit(token, false)
		} else {
			tokens = []string{token}
		}
	default:
		tokens = []string{token}
	}

	t.pending = tokens[1:]
	token = tokens[0]

	// A lone comma inside digits is a European style decimal mark
	if state == numericDecimalSection && strings.Contains(token, ".") == false {
		token = strings.ReplaceAll(token, ",", ".")
	}

	return token, true
}

// decimalSplit break a mixed letter/digit/punctuation run into alternating
// runs and single punctuation tokens. When castPeriod is set the punctuation
// came from comma decimal marks and is emitted as a period.
func decimalSplit(token string, castPeriod bool) []string {
	var tokens []string
	var runes []rune
	var state int = emptySection

	flush := func() {
		if len(runes) > 0 {
			tokens = append(tokens, utility.RunesToString(runes...))
			runes = runes[:0]
		}
	}

	for _, r := range token {
		switch state {
		case emptySection:
			if unicode.IsLetter(r) {
				runes = append(runes, r)
				state = alphaSection
			} else if unicode.IsDigit(r) {
				runes = append(runes, r)
				state = numericSection
			} else {
				if castPeriod {
					r = '.'
				}
				tokens = append(tokens, string(r))
			}
		case alphaSection:
			if unicode.IsLetter(r) {
				runes = append(runes, r)
			} else {
				flush()
				if castPeriod {
					r = '.'
				}
				tokens = append(tokens, string(r))
				state = emptySection
			}
		case numericSection:
			if unicode.IsDigit(r) {
				runes = append(runes, r)
			} else {
				flush()
				if castPeriod {
					r = '.'
				}
				tokens = append(tokens, string(r))
				state = emptySection
			}
		}
	}
	flush()

	return tokens
}
