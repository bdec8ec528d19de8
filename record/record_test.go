package record

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

func TestParse_ValidLine(t *testing.T) {
	rec, err := Parse(Line{Text: "alice;2023-01-01 10:00:00;USD;100.00", File: "log", Num: 1})
	assert.NoError(t, err)

	assert.Equal(t, "alice", rec.User)
	assert.Equal(t, "USD", rec.Currency)
	assert.True(t, rec.Amount.Equal(decimal.RequireFromString("100.00")))

	want := time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)
	assert.True(t, rec.Timestamp.Equal(want))
}

func TestParse_PreservesRawLine(t *testing.T) {
	ln := Line{Text: "bob;2024-06-15 23:59:59;BTC;-0.5", File: "trades.log", Num: 42}
	rec, err := Parse(ln)
	assert.NoError(t, err)
	assert.Equal(t, ln, rec.Raw)
}

func TestParse_AmountForms(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "0"},
		{"-20", "-20"},
		{"100.00", "100"},
		{"3.1415", "3.1415"},
		{"42.", "42"}, // trailing dot is part of the grammar
		{"-0.0001", "-0.0001"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			rec, err := Parse(Line{Text: "u;2023-01-01 00:00:00;EUR;" + tt.amount, Num: 1})
			assert.NoError(t, err)
			assert.True(t, rec.Amount.Equal(decimal.RequireFromString(tt.want)))
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"ThreeFields", "alice;2023-01-01 10:00:00;USD"},
		{"FiveFields", "alice;2023-01-01 10:00:00;USD;1;extra"},
		{"EmptyLine", ""},
		{"EmptyUser", ";2023-01-01 10:00:00;USD;1"},
		{"EmptyCurrency", "alice;2023-01-01 10:00:00;;1"},
		{"EmptyAmount", "alice;2023-01-01 10:00:00;USD;"},
		{"NonNumericAmount", "alice;2023-01-01 10:00:00;USD;ten"},
		{"DoubleDotAmount", "alice;2023-01-01 10:00:00;USD;1.2.3"},
		{"PlusSignAmount", "alice;2023-01-01 10:00:00;USD;+5"},
		{"BareDashAmount", "alice;2023-01-01 10:00:00;USD;-"},
		{"MissingSeconds", "alice;2023-01-01 10:00;USD;1"},
		{"UnpaddedDay", "alice;2023-01-1 10:00:00;USD;1"},
		{"Month13", "alice;2023-13-01 10:00:00;USD;1"},
		{"Day32", "alice;2023-01-32 10:00:00;USD;1"},
		{"Hour25", "alice;2023-01-01 25:00:00;USD;1"},
		{"LeapDayNonLeapYear", "alice;2023-02-29 10:00:00;USD;1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(Line{Text: tt.line, File: "log", Num: 7})
			assert.Error(t, err)

			var malformed *MalformedError
			assert.True(t, errors.As(err, &malformed))
			assert.True(t, strings.Contains(malformed.Error(), "log:7"))
		})
	}
}

func TestParse_LeapDayLeapYear(t *testing.T) {
	_, err := Parse(Line{Text: "alice;2024-02-29 10:00:00;USD;1", Num: 1})
	assert.NoError(t, err)
}

func TestCurrencyField(t *testing.T) {
	assert.Equal(t, "USD", CurrencyField("alice;2023-01-01 10:00:00;USD;100.00"))
	assert.Equal(t, "", CurrencyField("no semicolons here"))
	assert.Equal(t, "", CurrencyField("a;b"))
}
