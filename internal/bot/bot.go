// Package bot sequences one balance or transfer invocation: load config, validate inputs,
// ensure the ledger, run the tool, parse its output, append a row and print a summary.
//
// Command failures and parse failures are recorded where they happen and mapped to an
// exit code. Every other error travels up to a single boundary that records it as
// "Unhandled: <kind>: <message>" and exits 1.
package bot

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"walletlog-go/internal/ledger"
	"walletlog-go/internal/runner"
)

// Process exit codes. A failed tool run exits with the tool's own code instead.
const (
	ExitOK        = 0
	ExitUnhandled = 1
	ExitParse     = 2
)

// Default file locations, relative to the working directory.
const (
	DefaultConfigPath   = "config.json"
	DefaultBalanceCSV   = "balance.csv"
	DefaultTransfersCSV = "transfers.csv"
	DefaultErrorsCSV    = "errors.csv"
)

// Env carries the collaborators of an invocation. Zero fields get process defaults.
type Env struct {
	Runner runner.Runner
	Stdout io.Writer
	Stderr io.Writer
	Now    func() time.Time
	Log    *zerolog.Logger
}

func (e Env) withDefaults() Env {
	if e.Log == nil {
		nop := zerolog.Nop()
		e.Log = &nop
	}
	if e.Runner == nil {
		e.Runner = runner.NewExec(*e.Log)
	}
	if e.Stdout == nil {
		e.Stdout = os.Stdout
	}
	if e.Stderr == nil {
		e.Stderr = os.Stderr
	}
	if e.Now == nil {
		e.Now = time.Now
	}
	return e
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// invocation is the state shared by the failure paths of one run.
type invocation struct {
	name   string
	env    Env
	errors *ledger.ErrorLog
}

func newInvocation(name string, env Env, errorsCSV string) *invocation {
	env = env.withDefaults()
	return &invocation{
		name:   name,
		env:    env,
		errors: ledger.NewErrorLog(orDefault(errorsCSV, DefaultErrorsCSV), env.Now),
	}
}

// record appends msg to the error ledger and reports whether it landed there. If it did not,
// the operator still sees msg on stderr.
func (inv *invocation) record(msg string) bool {
	if err := inv.errors.Log(msg); err != nil {
		inv.env.Log.Error().Err(err).Str("path", inv.errors.Path()).Msg("write error ledger")
		fmt.Fprintf(inv.env.Stderr, "[ERROR] could not write %s: %v\n%s\n", inv.errors.Path(), err, msg)
		return false
	}
	return true
}

// seeLedger points the operator at the error ledger, or at the stderr copy when the ledger write failed.
func (inv *invocation) seeLedger(logged bool) string {
	if logged {
		return "See " + inv.errors.Path()
	}
	return "Error ledger not writable; details above"
}

func (inv *invocation) commandFailed(argv []string, res runner.Result) int {
	msg := fmt.Sprintf("CMD: %s\nRC: %d\nSTDERR: %s", strings.Join(argv, " "), res.ExitCode, strings.TrimSpace(res.Stderr))
	if out := strings.TrimSpace(res.Stdout); out != "" {
		msg += "\nSTDOUT: " + out
	}
	logged := inv.record(msg)
	inv.env.Log.Debug().Strs("argv", argv).Int("rc", res.ExitCode).Msg("command failed")
	fmt.Fprintf(inv.env.Stderr, "[ERROR] %s failed. %s\n", inv.name, inv.seeLedger(logged))
	return commandExitCode(res.ExitCode)
}

func (inv *invocation) unhandled(err error) int {
	if inv.record(fmt.Sprintf("Unhandled: %s: %v", Kind(err), err)) {
		fmt.Fprintf(inv.env.Stderr, "[ERROR] %v (logged to %s)\n", err, inv.errors.Path())
	} else {
		fmt.Fprintf(inv.env.Stderr, "[ERROR] %v (not logged: %s is not writable)\n", err, inv.errors.Path())
	}
	return ExitUnhandled
}

// commandExitCode passes the tool's code through. Signals report -1, which becomes 1.
func commandExitCode(rc int) int {
	if rc > 0 {
		return rc
	}
	return ExitUnhandled
}
