// Package runner executes external tools and captures what they printed.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"walletlog-go/internal/metrics"
)

// Result is the captured outcome of one child process. A non-zero ExitCode is a normal result.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes argv (program name first) and reports its result.
type Runner interface {
	Run(ctx context.Context, argv []string) (Result, error)
}

// Func adapts a plain function to Runner.
type Func func(ctx context.Context, argv []string) (Result, error)

// Run calls f.
func (f Func) Run(ctx context.Context, argv []string) (Result, error) { return f(ctx, argv) }

// LaunchError reports that the process could not be started at all.
type LaunchError struct {
	Argv []string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch %q: %v", strings.Join(e.Argv, " "), e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

var _ Runner = &Exec{}

// Exec runs commands as real child processes. No timeout is applied; ctx is the only way to stop one.
type Exec struct{ log zerolog.Logger }

// NewExec wraps a zerolog logger used for per-command debug events.
func NewExec(log zerolog.Logger) *Exec { return &Exec{log: log} }

// Run starts argv, waits for it and returns its exit code and decoded output.
func (e *Exec) Run(ctx context.Context, argv []string) (Result, error) {
	if len(argv) == 0 || argv[0] == "" {
		return Result{}, &LaunchError{Argv: argv, Err: errors.New("empty command")}
	}
	tool := filepath.Base(argv[0])

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		metrics.CommandRunsTotal.WithLabelValues(tool, metrics.OutcomeLaunchError).Inc()
		e.log.Debug().Strs("argv", argv).Err(err).Msg("command did not start")
		return Result{}, &LaunchError{Argv: argv, Err: err}
	}

	outcome := metrics.OutcomeOK
	if res.ExitCode != 0 {
		outcome = metrics.OutcomeFailed
	}
	metrics.CommandRunsTotal.WithLabelValues(tool, outcome).Inc()
	e.log.Debug().Strs("argv", argv).Int("rc", res.ExitCode).Int("stdout_bytes", stdout.Len()).Msg("command finished")
	return res, nil
}
