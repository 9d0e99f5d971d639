package bot

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"walletlog-go/internal/config"
	"walletlog-go/internal/ledger"
	"walletlog-go/internal/metrics"
	"walletlog-go/internal/parse"
)

// BalanceOptions are the balance bot's command-line inputs. Empty paths use the defaults.
type BalanceOptions struct {
	ConfigPath string
	Wallet     string // overrides wallet_pubkey
	Cluster    string
	BalanceCSV string
	ErrorsCSV  string
}

// Balance queries the wallet's SOL balance with `solana balance`, appends it to the balance
// ledger and returns the process exit code.
func Balance(ctx context.Context, env Env, opts BalanceOptions) int {
	inv := newInvocation("balance", env, opts.ErrorsCSV)
	code, err := runBalance(ctx, inv, opts)
	if err != nil {
		return inv.unhandled(err)
	}
	return code
}

func runBalance(ctx context.Context, inv *invocation, opts BalanceOptions) (int, error) {
	env := inv.env

	cfg, err := config.Load(orDefault(opts.ConfigPath, DefaultConfigPath))
	if err != nil {
		return 0, err
	}

	wallet := orDefault(opts.Wallet, cfg.WalletPubkey())
	if wallet == "" {
		return 0, config.Missing(config.KeyWalletPubkey, "pass --wallet or set it in the config file")
	}
	tools, endpoint, err := toolSettings(cfg, opts.Cluster)
	if err != nil {
		return 0, err
	}
	if err := checkAddresses(cfg, addressField{config.KeyWalletPubkey, wallet}); err != nil {
		return 0, err
	}

	balances := ledger.New(orDefault(opts.BalanceCSV, DefaultBalanceCSV), ledger.BalanceHeader)
	if err := balances.Ensure(); err != nil {
		return 0, err
	}

	argv := []string{tools.SolanaBin, "balance", wallet, "--url", endpoint}
	res, err := env.Runner.Run(ctx, argv)
	if err != nil {
		return 0, err
	}
	if res.ExitCode != 0 {
		return inv.commandFailed(argv, res), nil
	}

	bal, err := parse.Balance(res.Stdout)
	if err != nil {
		metrics.ParseFailuresTotal.WithLabelValues("balance").Inc()
		logged := inv.record(fmt.Sprintf("ParseError: %v\nRAW: %s", err, res.Stdout))
		fmt.Fprintf(env.Stderr, "[ERROR] failed to parse balance. %s\n", inv.seeLedger(logged))
		return ExitParse, nil
	}

	ts := ledger.Timestamp(env.Now())
	if err := balances.Append([]string{wallet, ts, bal}); err != nil {
		return 0, err
	}
	metrics.LedgerRowsTotal.WithLabelValues("balance").Inc()
	if d, err := decimal.NewFromString(bal); err == nil {
		metrics.LastBalance.WithLabelValues(wallet).Set(d.InexactFloat64())
	}
	env.Log.Debug().Str("wallet", wallet).Str("balance", bal).Msg("balance recorded")

	fmt.Fprintf(env.Stdout, "Wallet: %s | Balance: %s SOL | Time: %s\n", wallet, bal, ts)
	return ExitOK, nil
}
