package bot

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"walletlog-go/internal/config"
	"walletlog-go/internal/dex/solana"
	"walletlog-go/internal/ledger"
	"walletlog-go/internal/metrics"
	"walletlog-go/internal/parse"
	"walletlog-go/internal/risk"
)

// TransferOptions are the transfer bot's command-line inputs. Empty paths use the defaults.
type TransferOptions struct {
	ConfigPath   string
	Amount       string // overrides transfer_amount
	Cluster      string
	TransfersCSV string
	ErrorsCSV    string
}

// Transfer sends an SPL token transfer with `spl-token transfer`, appends it to the transfer
// ledger and returns the process exit code. A transfer whose signature cannot be found in
// the output is still recorded, with an empty signature.
func Transfer(ctx context.Context, env Env, opts TransferOptions) int {
	inv := newInvocation("transfer", env, opts.ErrorsCSV)
	code, err := runTransfer(ctx, inv, opts)
	if err != nil {
		return inv.unhandled(err)
	}
	return code
}

func runTransfer(ctx context.Context, inv *invocation, opts TransferOptions) (int, error) {
	env := inv.env

	cfg, err := config.Load(orDefault(opts.ConfigPath, DefaultConfigPath))
	if err != nil {
		return 0, err
	}

	from := cfg.WalletPubkey()
	mint := cfg.TokenMint()
	to := cfg.RecipientWallet()
	amountStr := orDefault(opts.Amount, cfg.TransferAmount())
	switch {
	case from == "":
		return 0, config.Missing(config.KeyWalletPubkey, "used for logging")
	case mint == "":
		return 0, config.Missing(config.KeyTokenMint, "")
	case to == "":
		return 0, config.Missing(config.KeyRecipientWallet, "")
	case amountStr == "":
		return 0, config.Missing(config.KeyTransferAmount, "pass --amount or set it in the config file")
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return 0, &AmountError{Value: amountStr, Err: err}
	}
	limits, err := risk.ParseLimits(cfg.String(config.KeyMaxTransferAmount))
	if err != nil {
		return 0, &config.Error{Key: config.KeyMaxTransferAmount, Err: err}
	}
	if err := limits.Check(amount); err != nil {
		return 0, err
	}
	tools, endpoint, err := toolSettings(cfg, opts.Cluster)
	if err != nil {
		return 0, err
	}
	if err := checkAddresses(cfg,
		addressField{config.KeyWalletPubkey, from},
		addressField{config.KeyTokenMint, mint},
		addressField{config.KeyRecipientWallet, to},
	); err != nil {
		return 0, err
	}

	transfers := ledger.New(orDefault(opts.TransfersCSV, DefaultTransfersCSV), ledger.TransferHeader)
	if err := transfers.Ensure(); err != nil {
		return 0, err
	}

	argv := []string{
		tools.SPLTokenBin, "transfer", mint, amountStr, to,
		"--fund-recipient", "--allow-unfunded-recipient",
		"--url", endpoint,
	}
	res, err := env.Runner.Run(ctx, argv)
	if err != nil {
		return 0, err
	}
	if res.ExitCode != 0 {
		return inv.commandFailed(argv, res), nil
	}

	sig := parse.Signature(res.Stdout)
	if sig != "" {
		if err := solana.CheckSignature(sig); err != nil {
			env.Log.Warn().Err(err).Str("signature", sig).Msg("signature does not look like a transaction signature")
		}
	}

	ts := ledger.Timestamp(env.Now())
	if err := transfers.Append([]string{from, to, amountStr, sig, ts}); err != nil {
		return 0, err
	}
	metrics.LedgerRowsTotal.WithLabelValues("transfer").Inc()
	env.Log.Debug().Str("from", from).Str("to", to).Str("amount", amountStr).Str("signature", sig).Msg("transfer recorded")

	fmt.Fprintln(env.Stdout, "Transfer OK")
	if sig != "" {
		fmt.Fprintf(env.Stdout, "Signature: %s\n", sig)
	} else {
		fmt.Fprintln(env.Stdout, "(Signature not found in output; logged anyway)")
	}
	fmt.Fprintf(env.Stdout, "Time: %s\n", ts)
	return ExitOK, nil
}
