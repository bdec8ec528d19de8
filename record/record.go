// Package record defines the transaction log line grammar and parses
// single lines into typed records.
//
// A log line holds four semicolon-separated fields:
//
//	USER;YYYY-MM-DD HH:MM:SS;CURRENCY;AMOUNT
//
// The user and currency fields are any non-empty run of non-semicolon
// characters. The timestamp must be both shaped correctly and calendar
// valid, so a line like "alice;2023-13-01 10:00:00;USD;1" is rejected
// even though every byte is in range. The amount is a signed decimal
// with an optional fractional part; a trailing dot ("42.") is legal and
// equals the integer part.
//
// Parsing is pure and fail-fast: any deviation from the grammar yields
// a *MalformedError and the caller is expected to abort the whole run.
// A corrupt log must not produce a partial financial statement.
package record

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TimestampLayout is the reference layout for log timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// fieldCount is the number of semicolon-separated fields per line.
const fieldCount = 4

var (
	timestampShape = regexp.MustCompile(`^[0-9]{4}-[0-1][0-9]-[0-3][0-9] [0-2][0-9]:[0-5][0-9]:[0-5][0-9]$`)
	amountShape    = regexp.MustCompile(`^-?[0-9]+\.?[0-9]*$`)
)

// Line is one raw line of log text together with its provenance,
// used for error reporting and verbatim list output.
type Line struct {
	Text string
	File string
	Num  int // 1-indexed line number within File
}

// Record is a single validated transaction.
type Record struct {
	User      string
	Timestamp time.Time
	Currency  string
	Amount    decimal.Decimal

	// Raw preserves the exact input line for verbatim listing.
	Raw Line
}

// Parse validates a raw line against the log grammar and returns the
// typed record. On failure it returns a *MalformedError describing the
// offending field and its position within the line.
func Parse(ln Line) (Record, error) {
	fields := strings.Split(ln.Text, ";")
	if len(fields) != fieldCount {
		return Record{}, newMalformed(ln, 0, "expected 4 semicolon-separated fields, got %d", len(fields))
	}

	user, ts, currency, amount := fields[0], fields[1], fields[2], fields[3]

	if user == "" {
		return Record{}, newMalformed(ln, 0, "empty user field")
	}

	if !timestampShape.MatchString(ts) {
		return Record{}, newMalformed(ln, fieldColumn(fields, 1), "timestamp %q does not match %q", ts, TimestampLayout)
	}
	when, err := time.Parse(TimestampLayout, ts)
	if err != nil {
		// Shaped but not a real calendar instant, e.g. month 13 or day 32.
		return Record{}, newMalformed(ln, fieldColumn(fields, 1), "timestamp %q is not a valid date", ts)
	}

	if currency == "" {
		return Record{}, newMalformed(ln, fieldColumn(fields, 2), "empty currency field")
	}

	if !amountShape.MatchString(amount) {
		return Record{}, newMalformed(ln, fieldColumn(fields, 3), "invalid amount %q", amount)
	}
	// The grammar allows a bare trailing dot, decimal does not.
	value, err := decimal.NewFromString(strings.TrimSuffix(amount, "."))
	if err != nil {
		return Record{}, newMalformed(ln, fieldColumn(fields, 3), "invalid amount %q", amount)
	}

	return Record{
		User:      user,
		Timestamp: when,
		Currency:  currency,
		Amount:    value,
		Raw:       ln,
	}, nil
}

// fieldColumn returns the 1-indexed column at which field i starts.
func fieldColumn(fields []string, i int) int {
	col := 0
	for j := 0; j < i; j++ {
		col += len(fields[j]) + 1 // field plus its trailing semicolon
	}
	return col + 1
}

// CurrencyField extracts the 3rd semicolon-delimited field of a raw
// line without full validation. The assembler sorts candidate lines by
// this key before they are parsed; lines with fewer fields sort by the
// empty string and fail validation afterwards.
func CurrencyField(text string) string {
	fields := strings.SplitN(text, ";", fieldCount)
	if len(fields) < 3 {
		return ""
	}
	return fields[2]
}
