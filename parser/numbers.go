package parser

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/JohnCGriffin/overflow"
	"github.com/cockroachdb/apd"
)

// apdContext precision is generous; token fractions are at most a handful of
// digits.
var apdContext = apd.BaseContext.WithPrecision(30)

// tokenNumber a numeric token taken apart. The literal is kept because its
// length drives dispatch and century detection; the fraction is kept as the
// raw digits so no precision is lost before scaling.
type tokenNumber struct {
	repr  string
	whole int
	frac  string // fraction digits with no leading dot, empty if none
}

// isNumericToken is the token a plain or decimal number. Tokens reaching this
// check have already been normalised by the tokenizer, so a decimal mark is
// always a period.
func isNumericToken(token string) bool {
	if token == "" || !unicode.IsDigit(rune(token[0])) {
		return false
	}
	dots := 0
	for _, r := range token {
		if r == '.' {
			dots++
			if dots > 1 {
				return false
			}
			continue
		}
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// parseTokenNumber take a numeric token apart. Conversion failure, including
// overflow of the integer part, is an InvalidNumeric error.
func parseTokenNumber(token string) (tokenNumber, error) {
	n := tokenNumber{repr: token}

	wholeRepr := token
	if idx := strings.IndexByte(token, '.'); idx >= 0 {
		wholeRepr = token[:idx]
		n.frac = token[idx+1:]
	}

	whole, err := strconv.Atoi(wholeRepr)
	if err != nil {
		return tokenNumber{}, newError(KindInvalidNumeric, token)
	}
	n.whole = whole

	return n, nil
}

// hasFraction is there a nonzero fractional part
func (n tokenNumber) hasFraction() bool {
	for i := 0; i < len(n.frac); i++ {
		if n.frac[i] != '0' {
			return true
		}
	}
	return false
}

// fractionScaled get the whole part of the token fraction times scale, so a
// fraction of .5 scaled by 60 gives 30. Decimal arithmetic avoids binary
// float drift on fractions like .1.
func (n tokenNumber) fractionScaled(scale int64) (int, error) {
	d, _, err := apd.NewFromString("0." + n.frac)
	if err != nil {
		return 0, newError(KindInvalidNumeric, n.repr)
	}

	product := new(apd.Decimal)
	if _, err := apdContext.Mul(product, d, apd.New(scale, 0)); err != nil {
		return 0, newError(KindInvalidNumeric, n.repr)
	}
	if _, err := apdContext.Floor(product, product); err != nil {
		return 0, newError(KindInvalidNumeric, n.repr)
	}

	v, err := product.Int64()
	if err != nil {
		return 0, newError(KindInvalidNumeric, n.repr)
	}
	return int(v), nil
}

// nanoseconds get the fraction as integer nanoseconds, right padded to nine
// digits. Digits beyond nanosecond precision are dropped.
func (n tokenNumber) nanoseconds() (int, error) {
	frac := n.frac
	if frac == "" {
		return 0, nil
	}
	if len(frac) > 9 {
		frac = frac[:9]
	}

	v, err := strconv.Atoi(frac)
	if err != nil {
		return 0, newError(KindInvalidNumeric, n.repr)
	}
	for i := len(frac); i < 9; i++ {
		scaled, ok := overflow.Mul(v, 10)
		if !ok {
			return 0, newError(KindInvalidNumeric, n.repr)
		}
		v = scaled
	}
	return v, nil
}

// parsems split a seconds token such as "41.502" into whole seconds and
// nanoseconds.
func parsems(token string) (seconds int, nanoseconds int, err error) {
	n, err := parseTokenNumber(token)
	if err != nil {
		return 0, 0, err
	}
	nanos, err := n.nanoseconds()
	if err != nil {
		return 0, 0, err
	}
	return n.whole, nanos, nil
}

// offsetSeconds combine offset hours and minutes with a sign into seconds
// east of UTC.
func offsetSeconds(sign, hours, minutes int) (int, error) {
	hs, ok := overflow.Mul(hours, 3600)
	if !ok {
		return 0, newError(KindInvalidNumeric, strconv.Itoa(hours))
	}
	ms, ok := overflow.Mul(minutes, 60)
	if !ok {
		return 0, newError(KindInvalidNumeric, strconv.Itoa(minutes))
	}
	total, ok := overflow.Add(hs, ms)
	if !ok {
		return 0, newError(KindInvalidNumeric, strconv.Itoa(hours))
	}
	return sign * total, nil
}
