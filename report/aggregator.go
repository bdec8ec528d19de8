package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/xtfkit/xtf/record"
)

// displayScale is the number of fractional digits in printed balances.
const displayScale = 4

var oneHundred = decimal.NewFromInt(100)

// Aggregator consumes the record stream one record at a time and
// writes the report incrementally. For the balance modes it keeps a
// single open per-currency group, which is correct only because the
// stream arrives sorted by currency: equal currencies are contiguous,
// so a currency change closes the previous group for good.
//
// Call Add for every record in stream order, then Flush exactly once
// after the stream ends to close the final group.
type Aggregator struct {
	mode   Mode
	profit decimal.Decimal // percentage, e.g. 20 for 20%
	w      io.Writer

	lastCurrency string
	open         bool
	runningTotal decimal.Decimal
}

// NewAggregator creates an aggregator writing to w. The profit
// percentage is only consulted in ModeProfit.
func NewAggregator(mode Mode, profit decimal.Decimal, w io.Writer) *Aggregator {
	return &Aggregator{
		mode:   mode,
		profit: profit,
		w:      w,
	}
}

// Add processes one record.
func (a *Aggregator) Add(rec record.Record) error {
	switch a.mode {
	case ModeList:
		return a.println(rec.Raw.Text)

	case ModeListCurrency:
		if rec.Currency != a.lastCurrency || !a.open {
			if err := a.println(rec.Currency); err != nil {
				return err
			}
		}
		a.lastCurrency = rec.Currency
		a.open = true
		return nil

	case ModeStatus, ModeProfit:
		if a.open && rec.Currency != a.lastCurrency {
			if err := a.closeGroup(); err != nil {
				return err
			}
		}
		a.runningTotal = a.runningTotal.Add(rec.Amount)
		a.lastCurrency = rec.Currency
		a.open = true
		return nil
	}

	return fmt.Errorf("unknown report mode %q", a.mode)
}

// Flush closes the final open group. It is a separate step from the
// in-loop close: the last group ends with the stream, not with a
// currency change.
func (a *Aggregator) Flush() error {
	if a.mode != ModeStatus && a.mode != ModeProfit {
		return nil
	}
	if !a.open {
		return nil
	}
	return a.closeGroup()
}

// closeGroup prints the finished group's balance and resets the
// running total. The fictitious profit applies at close time only, and
// only to positive totals; losses are never inflated.
func (a *Aggregator) closeGroup() error {
	total := a.runningTotal
	if a.mode == ModeProfit && total.IsPositive() {
		total = total.Add(total.Mul(a.profit.Div(oneHundred)))
	}

	if err := a.println(fmt.Sprintf("%s : %s", a.lastCurrency, total.StringFixed(displayScale))); err != nil {
		return err
	}

	a.runningTotal = decimal.Zero
	a.open = false
	return nil
}

func (a *Aggregator) println(line string) error {
	_, err := fmt.Fprintln(a.w, line)
	return err
}
