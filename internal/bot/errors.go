package bot

import (
	"errors"
	"fmt"
	"io/fs"

	"walletlog-go/internal/config"
	"walletlog-go/internal/parse"
	"walletlog-go/internal/risk"
	"walletlog-go/internal/runner"
)

// AmountError reports a transfer amount that is not a decimal number.
type AmountError struct {
	Value string
	Err   error
}

func (e *AmountError) Error() string {
	return fmt.Sprintf("invalid transfer amount %q: %v", e.Value, e.Err)
}

func (e *AmountError) Unwrap() error { return e.Err }

// Kind names the failure category of err for the error ledger.
func Kind(err error) string {
	var (
		cfgErr    *config.Error
		launchErr *runner.LaunchError
		parseErr  *parse.Error
		amountErr *AmountError
		pathErr   *fs.PathError
	)
	switch {
	case errors.As(err, &cfgErr):
		return "ConfigError"
	case errors.As(err, &launchErr):
		return "LaunchError"
	case errors.As(err, &parseErr):
		return "ParseError"
	case errors.As(err, &amountErr):
		return "AmountError"
	case errors.Is(err, risk.ErrLimitExceeded):
		return "LimitError"
	case errors.As(err, &pathErr):
		return "IOError"
	default:
		return "Error"
	}
}
