// Package report turns the filtered, validated record stream into one
// of the four statement forms.
package report

import "fmt"

// Mode selects which projection of the record stream is printed.
type Mode int

const (
	// ModeList prints every matching raw line verbatim, in input order.
	ModeList Mode = iota

	// ModeListCurrency prints each distinct currency code once,
	// ascending.
	ModeListCurrency

	// ModeStatus prints one balance line per currency.
	ModeStatus

	// ModeProfit prints balances with positive totals inflated by the
	// configured fictitious-profit percentage.
	ModeProfit
)

var modeNames = map[Mode]string{
	ModeList:         "list",
	ModeListCurrency: "list-currency",
	ModeStatus:       "status",
	ModeProfit:       "profit",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Sorted reports whether the mode requires the line stream to be
// sorted by currency before aggregation.
func (m Mode) Sorted() bool {
	return m != ModeList
}

// ParseMode converts a command name to its Mode.
func ParseMode(name string) (Mode, error) {
	for mode, n := range modeNames {
		if n == name {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown report mode %q", name)
}

// IsMode reports whether name is one of the report command names.
func IsMode(name string) bool {
	_, err := ParseMode(name)
	return err == nil
}
