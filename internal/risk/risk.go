// Package risk holds local guard-rails applied before a transfer is handed to the CLI.
package risk

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrLimitExceeded = errors.New("transfer amount exceeds max_transfer_amount")

// Limits caps what a single invocation may send. A zero MaxTransferAmount disables the cap.
type Limits struct {
	MaxTransferAmount decimal.Decimal
}

// ParseLimits reads the configured ceiling; empty means unlimited.
func ParseLimits(maxTransfer string) (Limits, error) {
	if maxTransfer == "" {
		return Limits{}, nil
	}
	d, err := decimal.NewFromString(maxTransfer)
	if err != nil {
		return Limits{}, fmt.Errorf("max_transfer_amount %q: %w", maxTransfer, err)
	}
	return Limits{MaxTransferAmount: d}, nil
}

func (l Limits) Allow(amount decimal.Decimal) bool {
	return l.MaxTransferAmount.IsZero() || amount.LessThanOrEqual(l.MaxTransferAmount)
}

// Check is Allow with an error carrying both values.
func (l Limits) Check(amount decimal.Decimal) error {
	if l.Allow(amount) {
		return nil
	}
	return fmt.Errorf("%w: %s > %s", ErrLimitExceeded, amount, l.MaxTransferAmount)
}
