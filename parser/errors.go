package parser

// Kind classifies parse failures so callers can react to the cause rather
// than match on message text.
type Kind int

// Parse failure kinds
const (
	// KindAmPmWithoutHour an AM or PM marker was found with no hour to apply
	// it to
	KindAmPmWithoutHour Kind = iota
	// KindImpossibleTimestamp the pieces found cannot form a real timestamp
	KindImpossibleTimestamp
	// KindInvalidNumeric a numeric token could not be converted, including
	// overflow
	KindInvalidNumeric
	// KindUnrecognizedFormat tokens were consumed but did not assemble into
	// anything usable
	KindUnrecognizedFormat
	// KindUnrecognizedToken a token was not recognised and fuzzy mode is off
	KindUnrecognizedToken
	// KindTimezoneUnsupported a zone offset was malformed or a zone name
	// could not be resolved
	KindTimezoneUnsupported
	// KindYearMonthDay year, month, and day assignments conflict or are
	// insufficient
	KindYearMonthDay
	// KindNoDate the input contained nothing date related at all
	KindNoDate
)

var kindMessages = map[Kind]string{
	KindAmPmWithoutHour:     "am/pm marker without an hour",
	KindImpossibleTimestamp: "impossible timestamp",
	KindInvalidNumeric:      "invalid numeric value",
	KindUnrecognizedFormat:  "unrecognized format",
	KindUnrecognizedToken:   "unrecognized token",
	KindTimezoneUnsupported: "timezone format unsupported or not recognized",
	KindYearMonthDay:        "year, month, and day error",
	KindNoDate:              "no date found",
}

// Error a parse failure with a kind and, where useful, the detail that
// triggered it (a reason or the offending token).
type Error struct {
	Kind   Kind
	Detail string
}

// Error get message for error
func (e *Error) Error() string {
	msg := kindMessages[e.Kind]
	if e.Detail != "" {
		return msg + ": " + e.Detail
	}
	return msg
}

func newError(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// ErrorKind get the kind for an error produced by this package. The second
// return value is false for foreign errors.
func ErrorKind(err error) (Kind, bool) {
	if e, ok := err.(*Error); ok {
		return e.Kind, true
	}
	return 0, false
}
