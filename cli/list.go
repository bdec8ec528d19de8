package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/xtfkit/xtf/record"
	"github.com/xtfkit/xtf/report"
	"github.com/xtfkit/xtf/source"
)

// ListCmd prints matching log lines verbatim, preserving the original
// file-concatenation order.
type ListCmd struct {
	ReportArgs

	Follow bool `short:"f" help:"After listing, keep watching the log for appended records (single plain-text log only)."`
}

func (cmd *ListCmd) Run(kctx *kong.Context, globals *Globals) error {
	if err := runReport(kctx, globals, report.ModeList, &cmd.ReportArgs); err != nil {
		return err
	}

	if !cmd.Follow {
		return nil
	}
	return cmd.follow(kctx, globals)
}

// follow tails the log, pushing appended records through the same
// validate-filter-print path. A malformed appended record is as fatal
// as a malformed historical one.
func (cmd *ListCmd) follow(kctx *kong.Context, globals *Globals) error {
	if len(cmd.Logs) != 1 {
		return fmt.Errorf("--follow requires exactly one log file, got %d", len(cmd.Logs))
	}
	path := cmd.Logs[0]

	if isTerminal(os.Stderr) {
		printInfof(kctx.Stderr, "following %s, interrupt to stop", path)
	}

	spec := buildFilter(globals, cmd.User)

	var opts []source.Option
	if len(globals.Currencies) > 0 {
		opts = append(opts, source.WithCurrencies(globals.Currencies...))
	}
	asm := source.New(cmd.User, opts...)

	err := asm.Follow(context.Background(), path, func(text string, num int) error {
		rec, err := record.Parse(record.Line{Text: text, File: path, Num: num})
		if err != nil {
			renderer := NewErrorRenderer()
			_, _ = fmt.Fprintln(kctx.Stderr, renderer.Render(err))
			printError(kctx.Stderr, "malformed record")
			return NewCommandError(1)
		}
		if !spec.Match(rec) {
			return nil
		}
		_, err = fmt.Fprintln(kctx.Stdout, rec.Raw.Text)
		return err
	})
	if err != nil {
		return err
	}
	return nil
}
