package cli

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func TestDateTime_Unmarshal(t *testing.T) {
	var d DateTime
	assert.NoError(t, d.UnmarshalText([]byte("2023-01-02 03:04:05")))
	assert.True(t, d.IsSet())
	assert.True(t, d.Time.Equal(time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)))
}

func TestDateTime_RejectsLooseFormats(t *testing.T) {
	for _, in := range []string{
		"2023-01-02",          // date only
		"2023-1-2 03:04:05",   // unpadded
		"2023-01-02T03:04:05", // ISO 8601 separator
		"2023-13-01 00:00:00", // month 13
		"tomorrow",
	} {
		var d DateTime
		assert.Error(t, d.UnmarshalText([]byte(in)), "accepted %q", in)
		assert.False(t, d.IsSet())
	}
}

func TestReportArgs_Validate(t *testing.T) {
	ok := &ReportArgs{User: "alice", Logs: []string{"a.log"}}
	assert.NoError(t, ok.Validate())

	dup := &ReportArgs{User: "profit", Logs: []string{"a.log"}}
	assert.Error(t, dup.Validate())
}

func TestValidateArgOrder(t *testing.T) {
	tests := []struct {
		name string
		args []string
		ok   bool
	}{
		{"NoArgs", nil, true},
		{"FlagsFirst", []string{"-a", "2023-01-01 00:00:00", "status", "alice", "a.log"}, true},
		{"FlagBetweenCommandAndUser", []string{"status", "--telemetry", "alice", "a.log"}, true},
		{"FlagAfterUserBeforeLogs", []string{"status", "alice", "-c"}, true},
		{"NoCommand", []string{"alice", "a.log", "b.log"}, true},
		{"FlagAfterFirstLog", []string{"status", "alice", "a.log", "-c", "BTC"}, false},
		{"FlagAfterSecondLog", []string{"alice", "a.log", "b.log", "--telemetry"}, false},
		{"HelpWinsAnywhere", []string{"alice", "a.log", "--help"}, true},
		{"ShortHelpWins", []string{"alice", "a.log", "-h"}, true},
		{"ValueFlagConsumesLookalike", []string{"-c", "BTC", "alice", "a.log"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArgOrder(tt.args)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
