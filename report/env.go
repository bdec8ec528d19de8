package report

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// defaultProfit is the fictitious-profit percentage used when
// XTF_PROFIT is unset or empty.
const defaultProfit = "20"

// Env holds the process-environment configuration.
type Env struct {
	// Profit is the raw XTF_PROFIT value, a percentage applied to
	// positive balances in profit mode.
	Profit string `envconfig:"profit"`
}

// LoadEnv reads the XTF_* environment variables.
func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process("xtf", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &env, nil
}

// ProfitRate returns the profit percentage as a decimal. An unset or
// empty XTF_PROFIT falls back to 20; anything non-numeric is an error.
func (e *Env) ProfitRate() (decimal.Decimal, error) {
	raw := e.Profit
	if raw == "" {
		raw = defaultProfit
	}

	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid XTF_PROFIT value %q", e.Profit)
	}
	return rate, nil
}
