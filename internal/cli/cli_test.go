package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"walletlog-go/internal/bot"
	"walletlog-go/internal/runner"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBalanceFlags(t *testing.T) {
	t.Setenv("SOLANA_RPC_URL", "")
	t.Setenv("SOLANA_CLUSTER", "")
	dir := t.TempDir()
	cfg := writeConfig(t, dir, `{"wallet_pubkey": "W"}`)

	var argv []string
	b := NewBalance()
	b.Runner = runner.Func(func(_ context.Context, a []string) (runner.Result, error) {
		argv = a
		return runner.Result{Stdout: "3.5 SOL\n"}, nil
	})
	var stdout, stderr bytes.Buffer
	b.Cmd.SetOut(&stdout)
	b.Cmd.SetErr(&stderr)

	metricsFile := filepath.Join(dir, "walletlog.prom")
	code := b.Execute([]string{
		"--config", cfg,
		"--wallet", "X",
		"--cluster", "testnet",
		"--balance-csv", filepath.Join(dir, "b.csv"),
		"--errors-csv", filepath.Join(dir, "e.csv"),
		"--metrics-file", metricsFile,
	})
	if code != bot.ExitOK {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if len(argv) != 5 || argv[2] != "X" || argv[4] != "https://api.testnet.solana.com" {
		t.Fatalf("unexpected argv: %q", argv)
	}
	if !strings.HasPrefix(stdout.String(), "Wallet: X | Balance: 3.5 SOL | Time: ") {
		t.Fatalf("unexpected stdout: %q", stdout.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "b.csv")); err != nil {
		t.Fatalf("balance ledger not written: %v", err)
	}

	data, err := os.ReadFile(metricsFile)
	if err != nil {
		t.Fatalf("metrics file not written: %v", err)
	}
	if !strings.Contains(string(data), "walletlog_ledger_rows_total") {
		t.Fatalf("metrics file missing ledger counter:\n%s", data)
	}
}

func TestTransferFlags(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, `{"wallet_pubkey": "W", "token_mint": "M", "recipient_wallet": "T", "transfer_amount": "1"}`)

	b := NewTransfer()
	b.Runner = runner.Func(func(_ context.Context, a []string) (runner.Result, error) {
		return runner.Result{ExitCode: 4, Stderr: "insufficient funds"}, nil
	})
	var stderr bytes.Buffer
	b.Cmd.SetOut(&bytes.Buffer{})
	b.Cmd.SetErr(&stderr)

	code := b.Execute([]string{
		"--config", cfg,
		"--amount", "2",
		"--transfers-csv", filepath.Join(dir, "t.csv"),
		"--errors-csv", filepath.Join(dir, "e.csv"),
	})
	if code != 4 {
		t.Fatalf("expected tool exit code 4, got %d", code)
	}
	if !strings.Contains(stderr.String(), "transfer failed") {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
	data, err := os.ReadFile(filepath.Join(dir, "e.csv"))
	if err != nil {
		t.Fatalf("error ledger not written: %v", err)
	}
	if !strings.Contains(string(data), "insufficient funds") {
		t.Fatalf("error ledger missing tool stderr:\n%s", data)
	}
}

func TestUnknownFlag(t *testing.T) {
	b := NewBalance()
	var stderr bytes.Buffer
	b.Cmd.SetErr(&stderr)

	if code := b.Execute([]string{"--nope"}); code != bot.ExitUnhandled {
		t.Fatalf("expected exit %d, got %d", bot.ExitUnhandled, code)
	}
	if !strings.Contains(stderr.String(), "unknown flag") {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}
