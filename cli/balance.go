package cli

import (
	"github.com/alecthomas/kong"

	"github.com/xtfkit/xtf/report"
)

// ListCurrencyCmd prints each distinct currency once, ascending.
type ListCurrencyCmd struct {
	ReportArgs
}

func (cmd *ListCurrencyCmd) Run(kctx *kong.Context, globals *Globals) error {
	return runReport(kctx, globals, report.ModeListCurrency, &cmd.ReportArgs)
}

// StatusCmd prints the per-currency balance statement.
type StatusCmd struct {
	ReportArgs
}

func (cmd *StatusCmd) Run(kctx *kong.Context, globals *Globals) error {
	return runReport(kctx, globals, report.ModeStatus, &cmd.ReportArgs)
}

// ProfitCmd prints the balance statement with the XTF_PROFIT
// percentage added to positive balances.
type ProfitCmd struct {
	ReportArgs
}

func (cmd *ProfitCmd) Run(kctx *kong.Context, globals *Globals) error {
	return runReport(kctx, globals, report.ModeProfit, &cmd.ReportArgs)
}
