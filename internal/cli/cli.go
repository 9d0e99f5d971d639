// Package cli builds the cobra commands behind the balancebot and transferbot binaries.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"walletlog-go/internal/bot"
	"walletlog-go/internal/config"
	"walletlog-go/internal/metrics"
	"walletlog-go/internal/runner"
	"walletlog-go/internal/util"
)

// Common holds the flags both bots accept.
type Common struct {
	ConfigPath  string
	ErrorsCSV   string
	Cluster     string
	LogLevel    string
	MetricsFile string
}

// Bind registers the shared flags on fs.
func (c *Common) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", bot.DefaultConfigPath, "Path to config.json")
	fs.StringVar(&c.ErrorsCSV, "errors-csv", bot.DefaultErrorsCSV, "Path to errors CSV log")
	fs.StringVar(&c.Cluster, "cluster", "", "Cluster name or RPC URL (overrides config and SOLANA_RPC_URL)")
	fs.StringVar(&c.LogLevel, "log-level", "warn", "Diagnostic log level written to stderr")
	fs.StringVar(&c.MetricsFile, "metrics-file", "", "Write prometheus metrics to this textfile after the run")
}

// Bot is a bot command together with the exit code of its last run.
type Bot struct {
	Cmd *cobra.Command

	// Runner replaces the real process runner when set.
	Runner runner.Runner

	common Common
	run    func(ctx context.Context, env bot.Env) int
	code   int
}

func newBot(use, short string) *Bot {
	b := &Bot{}
	b.Cmd = &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b.code = b.execute(cmd)
			return nil
		},
	}
	b.common.Bind(b.Cmd.Flags())
	return b
}

func (b *Bot) execute(cmd *cobra.Command) int {
	config.LoadDotenv()
	log := util.NewLogger(b.common.LogLevel, cmd.ErrOrStderr())

	env := bot.Env{
		Runner: b.Runner,
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Log:    &log,
	}
	if env.Runner == nil {
		env.Runner = runner.NewExec(log)
	}
	code := b.run(cmd.Context(), env)

	if err := metrics.WriteTextfile(b.common.MetricsFile); err != nil {
		log.Warn().Err(err).Str("path", b.common.MetricsFile).Msg("write metrics textfile")
	}
	return code
}

// Execute parses args, runs the bot and returns the process exit code.
// The child process is never given a deadline; only killing this process stops it.
func (b *Bot) Execute(args []string) int {
	b.code = bot.ExitOK
	b.Cmd.SetArgs(args)
	if err := b.Cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(b.Cmd.ErrOrStderr(), "[ERROR] %v\n", err)
		return bot.ExitUnhandled
	}
	return b.code
}

// NewBalance builds the balancebot command.
func NewBalance() *Bot {
	b := newBot("balancebot", "Fetch a wallet's SOL balance via the Solana CLI and log it to CSV")
	var opts bot.BalanceOptions
	fs := b.Cmd.Flags()
	fs.StringVar(&opts.Wallet, "wallet", "", "Override wallet pubkey")
	fs.StringVar(&opts.BalanceCSV, "balance-csv", bot.DefaultBalanceCSV, "Path to balance CSV log")

	b.run = func(ctx context.Context, env bot.Env) int {
		opts.ConfigPath = b.common.ConfigPath
		opts.ErrorsCSV = b.common.ErrorsCSV
		opts.Cluster = b.common.Cluster
		return bot.Balance(ctx, env, opts)
	}
	return b
}

// NewTransfer builds the transferbot command.
func NewTransfer() *Bot {
	b := newBot("transferbot", "Send an SPL token transfer via spl-token and log it to CSV")
	var opts bot.TransferOptions
	fs := b.Cmd.Flags()
	fs.StringVar(&opts.Amount, "amount", "", "Amount to transfer (overrides config)")
	fs.StringVar(&opts.TransfersCSV, "transfers-csv", bot.DefaultTransfersCSV, "Path to transfers CSV log")

	b.run = func(ctx context.Context, env bot.Env) int {
		opts.ConfigPath = b.common.ConfigPath
		opts.ErrorsCSV = b.common.ErrorsCSV
		opts.Cluster = b.common.Cluster
		return bot.Transfer(ctx, env, opts)
	}
	return b
}
