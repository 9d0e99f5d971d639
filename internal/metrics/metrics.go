package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	CommandRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "walletlog_command_runs_total", Help: "External tool invocations by outcome"},
		[]string{"tool", "outcome"},
	)
	LedgerRowsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "walletlog_ledger_rows_total", Help: "Rows appended per ledger"},
		[]string{"ledger"},
	)
	ParseFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "walletlog_parse_failures_total", Help: "Tool output that matched no known pattern"},
		[]string{"parser"},
	)
	LastBalance = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: "walletlog_last_balance_sol", Help: "Most recently recorded balance"},
		[]string{"wallet"},
	)
)

// Command outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeFailed      = "failed"
	OutcomeLaunchError = "launch_error"
)

func init() {
	prometheus.MustRegister(CommandRunsTotal, LedgerRowsTotal, ParseFailuresTotal, LastBalance)
}

// WriteTextfile dumps the default registry in the node_exporter textfile format.
// An empty path is a no-op so callers can pass the flag value straight through.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
