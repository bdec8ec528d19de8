package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/xtfkit/xtf/record"
	"github.com/xtfkit/xtf/report"
)

// DateTime is a kong flag value holding a log timestamp. The zero
// value means the flag was not given.
type DateTime struct {
	time.Time

	set bool
}

// UnmarshalText implements encoding.TextUnmarshaler for kong. The
// value must match the log timestamp layout exactly, zero padding
// included.
func (d *DateTime) UnmarshalText(text []byte) error {
	t, err := time.Parse(record.TimestampLayout, string(text))
	if err != nil {
		return fmt.Errorf("invalid datetime %q, expected \"YYYY-MM-DD HH:MM:SS\"", string(text))
	}
	d.Time = t
	d.set = true
	return nil
}

// IsSet reports whether the flag was given on the command line.
func (d *DateTime) IsSet() bool {
	return d.set
}

// ReportArgs holds the positional arguments shared by every report
// command: the target user followed by one or more log files.
type ReportArgs struct {
	User string   `arg:"" help:"User whose records are reported."`
	Logs []string `arg:"" name:"log" help:"Transaction log files, read in the order given." type:"existingfile"`
}

// Validate rejects a second command name in the user position, e.g.
// "xtf status profit alice trades.log".
func (r *ReportArgs) Validate() error {
	if report.IsMode(r.User) {
		return fmt.Errorf("unexpected command %q, at most one command may be given", r.User)
	}
	return nil
}

// valueFlags are the flags that consume the following argument.
var valueFlags = map[string]bool{
	"-a": true, "--after": true,
	"-b": true, "--before": true,
	"-c": true, "--currencies": true,
}

// ValidateArgOrder rejects flags that appear after the log file list
// has begun. Run it on the raw argv before kong parses: kong itself
// accepts flags anywhere, but the log list is a hard boundary here.
// Help anywhere wins and is left for kong to handle.
func ValidateArgOrder(args []string) error {
	logsStarted := false
	positionals := 0
	commandSeen := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			return nil

		case strings.HasPrefix(arg, "-") && arg != "-":
			if logsStarted {
				return fmt.Errorf("unexpected flag %s after log files, flags and commands must precede the log list", arg)
			}
			if valueFlags[arg] {
				i++
			}

		default:
			if !commandSeen && positionals == 0 && report.IsMode(arg) {
				commandSeen = true
				continue
			}
			positionals++
			if positionals >= 2 {
				// USER is positional one; everything after is a log.
				logsStarted = true
			}
		}
	}

	return nil
}
