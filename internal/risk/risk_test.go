package risk

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAllow(t *testing.T) {
	limits := Limits{MaxTransferAmount: decimal.RequireFromString("50")}
	if !limits.Allow(decimal.RequireFromString("49.9")) {
		t.Fatalf("expected amount under limit to pass")
	}
	if !limits.Allow(decimal.RequireFromString("50.000")) {
		t.Fatalf("expected amount equal to limit to pass")
	}
	if limits.Allow(decimal.RequireFromString("50.1")) {
		t.Fatalf("expected amount above limit to fail")
	}
}

func TestZeroLimitIsUnlimited(t *testing.T) {
	limits, err := ParseLimits("")
	if err != nil {
		t.Fatalf("ParseLimits: %v", err)
	}
	if !limits.Allow(decimal.RequireFromString("1000000")) {
		t.Fatalf("expected unlimited when no ceiling configured")
	}
}

func TestCheck(t *testing.T) {
	limits, err := ParseLimits("1.5")
	if err != nil {
		t.Fatalf("ParseLimits: %v", err)
	}
	err = limits.Check(decimal.RequireFromString("2"))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
	if err.Error() != "transfer amount exceeds max_transfer_amount: 2 > 1.5" {
		t.Fatalf("unexpected message: %s", err)
	}
	if _, err := ParseLimits("lots"); err == nil {
		t.Fatalf("expected error for malformed ceiling")
	}
}
