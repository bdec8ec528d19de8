package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"

	"github.com/xtfkit/xtf/filter"
	"github.com/xtfkit/xtf/record"
	"github.com/xtfkit/xtf/report"
	"github.com/xtfkit/xtf/source"
	"github.com/xtfkit/xtf/telemetry"
)

// runReport executes the shared report pipeline: assemble the line
// stream, validate every line, filter, then aggregate to stdout.
//
// Validation of the whole stream happens before the first output line,
// so a malformed record anywhere in the input yields exit 1 with zero
// report output, never a partial statement.
func runReport(kctx *kong.Context, globals *Globals, mode report.Mode, args *ReportArgs) error {
	runCtx := context.Background()

	if globals.Telemetry {
		collector := telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		rootTimer := collector.Start(fmt.Sprintf("%s %s", mode, args.User))
		defer func() {
			rootTimer.End()
			_, _ = fmt.Fprintln(kctx.Stderr)
			collector.Report(kctx.Stderr)
		}()
	}

	profit := decimal.Zero
	if mode == report.ModeProfit {
		env, err := report.LoadEnv()
		if err != nil {
			return err
		}
		profit, err = env.ProfitRate()
		if err != nil {
			return err
		}
	}

	spec := buildFilter(globals, args.User)

	recs, err := assembleRecords(runCtx, kctx, globals, mode, args)
	if err != nil {
		return err
	}

	timer := telemetry.StartTimer(runCtx, "aggregate")
	agg := report.NewAggregator(mode, profit, kctx.Stdout)
	for _, rec := range recs {
		if !spec.Match(rec) {
			continue
		}
		if err := agg.Add(rec); err != nil {
			return err
		}
	}
	timer.End()

	return agg.Flush()
}

// assembleRecords collects the candidate lines and validates all of
// them up front. The first malformed line aborts the run.
func assembleRecords(runCtx context.Context, kctx *kong.Context, globals *Globals, mode report.Mode, args *ReportArgs) ([]record.Record, error) {
	var opts []source.Option
	if len(globals.Currencies) > 0 {
		opts = append(opts, source.WithCurrencies(globals.Currencies...))
	}
	if mode.Sorted() {
		opts = append(opts, source.WithSortByCurrency())
	}

	asm := source.New(args.User, opts...)
	lines, err := asm.Collect(runCtx, args.Logs)
	if err != nil {
		printError(kctx.Stderr, err.Error())
		return nil, NewCommandError(1)
	}

	timer := telemetry.StartTimer(runCtx, fmt.Sprintf("validate %d lines", len(lines)))
	defer timer.End()

	recs := make([]record.Record, 0, len(lines))
	for _, ln := range lines {
		rec, err := record.Parse(ln)
		if err != nil {
			renderer := NewErrorRenderer()
			_, _ = fmt.Fprintln(kctx.Stderr, renderer.Render(err))
			printError(kctx.Stderr, "malformed record")
			return nil, NewCommandError(1)
		}
		recs = append(recs, rec)
	}

	return recs, nil
}

// buildFilter derives the immutable filter spec from the parsed flags.
func buildFilter(globals *Globals, user string) *filter.Spec {
	var opts []filter.Option
	if globals.After.IsSet() {
		opts = append(opts, filter.WithAfter(globals.After.Time))
	}
	if globals.Before.IsSet() {
		opts = append(opts, filter.WithBefore(globals.Before.Time))
	}
	if len(globals.Currencies) > 0 {
		opts = append(opts, filter.WithCurrencies(globals.Currencies...))
	}
	return filter.New(user, opts...)
}
