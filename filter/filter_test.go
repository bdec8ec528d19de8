package filter

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/xtfkit/xtf/record"
)

func mustRecord(t *testing.T, line string) record.Record {
	t.Helper()
	rec, err := record.Parse(record.Line{Text: line, Num: 1})
	assert.NoError(t, err)
	return rec
}

func at(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(record.TimestampLayout, s)
	assert.NoError(t, err)
	return ts
}

func TestMatch_User(t *testing.T) {
	spec := New("alice")

	assert.True(t, spec.Match(mustRecord(t, "alice;2023-01-01 10:00:00;USD;1")))
	assert.False(t, spec.Match(mustRecord(t, "bob;2023-01-01 10:00:00;USD;1")))
	// Case-sensitive equality.
	assert.False(t, spec.Match(mustRecord(t, "Alice;2023-01-01 10:00:00;USD;1")))
}

func TestMatch_Currencies(t *testing.T) {
	spec := New("alice", WithCurrencies("BTC", "ETH"))

	assert.True(t, spec.Match(mustRecord(t, "alice;2023-01-01 10:00:00;BTC;1")))
	assert.True(t, spec.Match(mustRecord(t, "alice;2023-01-01 10:00:00;ETH;1")))
	assert.False(t, spec.Match(mustRecord(t, "alice;2023-01-01 10:00:00;USD;1")))
}

func TestMatch_EmptyCurrencySetPassesAll(t *testing.T) {
	spec := New("alice", WithCurrencies())

	assert.True(t, spec.Match(mustRecord(t, "alice;2023-01-01 10:00:00;DOGE;1")))
	assert.Zero(t, len(spec.Currencies()))
}

func TestMatch_StrictBounds(t *testing.T) {
	bound := "2023-01-02 12:00:00"
	rec := mustRecord(t, "alice;"+bound+";USD;1")

	// A record exactly at the -a bound is excluded.
	after := New("alice", WithAfter(at(t, bound)))
	assert.False(t, after.Match(rec))
	assert.True(t, after.Match(mustRecord(t, "alice;2023-01-02 12:00:01;USD;1")))

	// A record exactly at the -b bound is excluded too.
	before := New("alice", WithBefore(at(t, bound)))
	assert.False(t, before.Match(rec))
	assert.True(t, before.Match(mustRecord(t, "alice;2023-01-02 11:59:59;USD;1")))
}

func TestMatch_BothBounds(t *testing.T) {
	spec := New("alice",
		WithAfter(at(t, "2023-01-01 00:00:00")),
		WithBefore(at(t, "2023-02-01 00:00:00")),
	)

	assert.True(t, spec.Match(mustRecord(t, "alice;2023-01-15 09:30:00;USD;1")))
	assert.False(t, spec.Match(mustRecord(t, "alice;2022-12-31 23:59:59;USD;1")))
	assert.False(t, spec.Match(mustRecord(t, "alice;2023-02-01 00:00:00;USD;1")))
}
