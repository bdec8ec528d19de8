package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines flags shared by all commands. The filter flags must
// precede the log file list on the command line; ValidateArgOrder
// enforces that before kong parses anything.
type Globals struct {
	After      DateTime `short:"a" placeholder:"DATETIME" help:"Only consider records strictly after this instant (\"YYYY-MM-DD HH:MM:SS\")."`
	Before     DateTime `short:"b" placeholder:"DATETIME" help:"Only consider records strictly before this instant (\"YYYY-MM-DD HH:MM:SS\")."`
	Currencies []string `short:"c" placeholder:"CURRENCY" help:"Only consider records in this currency (repeatable)."`
	Telemetry  bool     `help:"Show timing telemetry for the run."`
}

type Commands struct {
	Globals

	List         ListCmd         `cmd:"" default:"withargs" help:"Print matching log lines verbatim (default command)."`
	ListCurrency ListCurrencyCmd `cmd:"" name:"list-currency" help:"Print each distinct currency once, sorted ascending."`
	Status       StatusCmd       `cmd:"" help:"Print the per-currency balance statement."`
	Profit       ProfitCmd       `cmd:"" help:"Print the balance statement with fictitious profit applied to positive balances."`
	Doctor       DoctorCmd       `cmd:"" help:"Doctor utilities for debugging transaction logs."`
}
