package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/xtfkit/xtf/record"
	"github.com/xtfkit/xtf/source"
)

// DoctorCmd provides doctor utilities for debugging transaction logs.
type DoctorCmd struct {
	Records RecordsCmd `cmd:"" help:"Dump every parsed record of the given logs."`
}

// RecordsCmd parses every line of the given logs, with no user filter,
// and dumps the typed records.
type RecordsCmd struct {
	Logs []string `arg:"" name:"log" help:"Transaction log files, read in the order given." type:"existingfile"`
}

// Run executes the records command.
func (cmd *RecordsCmd) Run(kctx *kong.Context, globals *Globals) error {
	// An empty user matches every line.
	asm := source.New("")
	lines, err := asm.Collect(context.Background(), cmd.Logs)
	if err != nil {
		printError(kctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	printer := repr.New(kctx.Stdout)
	for _, ln := range lines {
		rec, err := record.Parse(ln)
		if err != nil {
			renderer := NewErrorRenderer()
			_, _ = fmt.Fprintln(kctx.Stderr, renderer.Render(err))
			printError(kctx.Stderr, "malformed record")
			return NewCommandError(1)
		}
		printer.Println(rec)
	}

	return nil
}
